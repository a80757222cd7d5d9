package event

// Signal is the payload of notifications that carry no value.
type Signal = struct{}

// Listener is a registered handler. It doubles as the handle used to remove it.
type Listener[T any] struct {
	fn         func(T)
	dispatcher *Dispatcher[T]
}

// Remove unregisters the listener from the dispatcher it was added to.
func (l *Listener[T]) Remove() {
	if l.dispatcher != nil {
		l.dispatcher.Remove(l)
	}
}

// Dispatcher is a synchronous observer registry.
// Handlers run in registration order on the caller's goroutine.
type Dispatcher[T any] struct {
	listeners []*Listener[T]
}

func NewDispatcher[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{}
}

// Add registers fn and returns its handle.
func (d *Dispatcher[T]) Add(fn func(T)) *Listener[T] {
	l := &Listener[T]{fn: fn, dispatcher: d}
	d.listeners = append(d.listeners, l)
	return l
}

// Remove unregisters l. Removing an unknown listener is a no-op.
func (d *Dispatcher[T]) Remove(l *Listener[T]) {
	for i, registered := range d.listeners {
		if registered == l {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			l.dispatcher = nil
			return
		}
	}
}

func (d *Dispatcher[T]) Has(l *Listener[T]) bool {
	for _, registered := range d.listeners {
		if registered == l {
			return true
		}
	}
	return false
}

func (d *Dispatcher[T]) Clear() {
	for _, l := range d.listeners {
		l.dispatcher = nil
	}
	d.listeners = nil
}

func (d *Dispatcher[T]) Len() int {
	return len(d.listeners)
}

// Dispatch calls every handler registered at the time of the call.
// Handlers removed by an earlier handler during the same dispatch are skipped.
func (d *Dispatcher[T]) Dispatch(v T) {
	snapshot := make([]*Listener[T], len(d.listeners))
	copy(snapshot, d.listeners)
	for _, l := range snapshot {
		if l.dispatcher != d {
			continue
		}
		l.fn(v)
	}
}
