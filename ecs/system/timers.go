package system

import "container/heap"

// Timer is a one-shot callback registered on Timers.
type Timer struct {
	dueMs     float64
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the callback from running. Cancelling a fired timer is a no-op.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Pending reports whether the timer will still fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].dueMs != q[j].dueMs {
		return q[i].dueMs < q[j].dueMs
	}
	return q[i].seq < q[j].seq
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any)   { *q = append(*q, x.(*Timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Timers is a frame-stepped scheduler driven by Update.
// Due timers fire in due-time order, ties in registration order.
// A timer registered from a callback fires in the same Update if its due time is already reached.
type Timers struct {
	nowMs float64
	seq   uint64
	queue timerQueue
}

func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn delayMs after the current time. Negative delays count as zero.
func (ts *Timers) After(delayMs float64, fn func()) *Timer {
	if delayMs < 0 {
		delayMs = 0
	}
	t := &Timer{dueMs: ts.nowMs + delayMs, seq: ts.seq, fn: fn}
	ts.seq++
	heap.Push(&ts.queue, t)
	return t
}

func (ts *Timers) Update(deltaMs float64) {
	ts.nowMs += deltaMs
	for ts.queue.Len() > 0 && ts.queue[0].dueMs <= ts.nowMs {
		t := heap.Pop(&ts.queue).(*Timer)
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
	}
}

func (ts *Timers) NowMs() float64 { return ts.nowMs }

// Len counts timers still queued, cancelled ones included until they are drained.
func (ts *Timers) Len() int { return ts.queue.Len() }
