// Package schedule provides a cancellable one-shot task that runs on a
// Poster, typically the UI loop. It replaces fixed-delay timers: a task runs
// after the work already queued ahead of it, or not at all if cancelled first.
package schedule

import "go.uber.org/atomic"

// Poster queues a function to run later on the UI thread.
type Poster interface {
	Post(fn func())
}

// PosterFunc adapts a function to the Poster interface.
type PosterFunc func(fn func())

func (f PosterFunc) Post(fn func()) { f(fn) }

// Immediate runs posted functions inline on the caller's goroutine.
var Immediate Poster = PosterFunc(func(fn func()) { fn() })

// State is the lifecycle position of a Task.
type State int32

const (
	StateIdle      State = iota // Created, not yet scheduled
	StateScheduled              // Posted, waiting to run
	StateRunning                // Callback executing
	StateDone                   // Callback finished
	StateCancelled              // Cancelled before it ran
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Task is a one-shot deferred action. At most one run ever happens.
type Task struct {
	fn    func()
	state atomic.Int32
}

// NewTask wraps fn in an idle task.
func NewTask(fn func()) *Task {
	return &Task{fn: fn}
}

// Schedule posts the task to p. Only the first call on an idle task posts;
// later calls, or calls after Cancel, return false.
func (t *Task) Schedule(p Poster) bool {
	if !t.state.CompareAndSwap(int32(StateIdle), int32(StateScheduled)) {
		return false
	}
	p.Post(func() { t.run() })
	return true
}

// Run executes the task inline if it has not run or been cancelled.
// Returns true if the callback ran.
func (t *Task) Run() bool {
	if !t.state.CompareAndSwap(int32(StateIdle), int32(StateScheduled)) &&
		t.State() != StateScheduled {
		return false
	}
	return t.run()
}

func (t *Task) run() bool {
	if !t.state.CompareAndSwap(int32(StateScheduled), int32(StateRunning)) {
		return false
	}
	if t.fn != nil {
		t.fn()
	}
	t.state.Store(int32(StateDone))
	return true
}

// Cancel prevents a pending run. Returns true if this call cancelled it;
// false if it already ran, is running, or was cancelled before.
func (t *Task) Cancel() bool {
	for {
		current := t.state.Load()
		if current != int32(StateIdle) && current != int32(StateScheduled) {
			return false
		}
		if t.state.CompareAndSwap(current, int32(StateCancelled)) {
			return true
		}
	}
}

// State reports the current lifecycle state.
func (t *Task) State() State {
	return State(t.state.Load())
}

// Pending reports whether the task may still run.
func (t *Task) Pending() bool {
	s := t.State()
	return s == StateIdle || s == StateScheduled
}

// Done reports whether the callback has finished.
func (t *Task) Done() bool { return t.State() == StateDone }

// Cancelled reports whether the task was cancelled before running.
func (t *Task) Cancelled() bool { return t.State() == StateCancelled }
