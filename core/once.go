package core

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Once holds a value that may be assigned exactly once.
type Once[T any] struct {
	value T
	set   bool
}

// Set stores v. A second call is a programming error and panics.
func (o *Once[T]) Set(v T) {
	if o.set {
		panic(fmt.Sprintf("once: value of type %T already set", v))
	}
	o.value = v
	o.set = true
}

func (o *Once[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o *Once[T]) IsSet() bool {
	return o.set
}

// MustGet returns the value and panics when it was never set.
func (o *Once[T]) MustGet() T {
	if !o.set {
		var zero T
		panic(fmt.Sprintf("once: value of type %T not set", zero))
	}
	return o.value
}

// Registry associates entity ids with their logical wrapper.
// The rendering actor only knows its id; the wrapper is looked up here instead of being back-referenced.
type Registry[T any] struct {
	slots map[donburi.Entity]*Once[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{slots: make(map[donburi.Entity]*Once[T])}
}

// Bind sets the wrapper for e. Binding the same entity twice panics.
func (r *Registry[T]) Bind(e donburi.Entity, wrapper T) {
	slot, ok := r.slots[e]
	if !ok {
		slot = &Once[T]{}
		r.slots[e] = slot
	}
	slot.Set(wrapper)
}

func (r *Registry[T]) Lookup(e donburi.Entity) (T, bool) {
	slot, ok := r.slots[e]
	if !ok {
		var zero T
		return zero, false
	}
	return slot.Get()
}

// Unbind forgets e so the id can be reused by the world.
func (r *Registry[T]) Unbind(e donburi.Entity) {
	delete(r.slots, e)
}

func (r *Registry[T]) Len() int {
	return len(r.slots)
}
