package internal

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Loop is the single UI thread. Work is posted from any goroutine and runs
// in post order on whichever goroutine calls Run (or Drain).
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped atomic.Bool
	done    chan struct{}
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. Posting after Stop is a no-op.
func (l *Loop) Post(fn func()) {
	if fn == nil || l.stopped.Load() {
		return
	}

	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run processes posted work until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}
	}
}

// Drain runs everything queued, including work posted while draining, and
// returns the number of functions executed.
func (l *Loop) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return ran
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		if l.stopped.Load() {
			return ran
		}

		fn()
		ran++
	}
}

// Pending returns the number of queued functions.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Stop makes Run return and drops any queued work.
func (l *Loop) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.done)

		l.mu.Lock()
		l.queue = nil
		l.mu.Unlock()
	}
}
