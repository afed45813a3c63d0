package notify

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/schedule"
	"go.uber.org/atomic"
)

// Toast is a transient notice on screen.
type Toast struct {
	ID        int64
	Message   string
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Toaster shows auto-dismissing notices. Show may be called from the UI
// thread only; dismissal timers post back onto it.
type Toaster struct {
	poster   schedule.Poster
	duration time.Duration
	after    func(d time.Duration, fn func())
	now      func() time.Time
	logger   *slog.Logger

	nextID atomic.Int64
	active []Toast
}

// ToasterOption configures a Toaster.
type ToasterOption func(*Toaster)

// WithDuration sets how long each toast stays visible.
func WithDuration(d time.Duration) ToasterOption {
	return func(t *Toaster) {
		if d > 0 {
			t.duration = d
		}
	}
}

// WithTimer replaces time.AfterFunc, mostly for tests.
func WithTimer(after func(d time.Duration, fn func())) ToasterOption {
	return func(t *Toaster) { t.after = after }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ToasterOption {
	return func(t *Toaster) { t.now = now }
}

// WithToastLogger sets the logger toasts are echoed to.
func WithToastLogger(logger *slog.Logger) ToasterOption {
	return func(t *Toaster) { t.logger = logger }
}

// NewToaster creates a toaster posting dismissals to poster.
func NewToaster(poster schedule.Poster, opts ...ToasterOption) *Toaster {
	t := &Toaster{
		poster:   poster,
		duration: constants.DefaultToastDuration,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Show displays message and schedules its dismissal. It never blocks.
func (t *Toaster) Show(message string) {
	id := t.nextID.Inc()
	now := t.now()

	t.active = append(t.active, Toast{
		ID:        id,
		Message:   message,
		ShownAt:   now,
		ExpiresAt: now.Add(t.duration),
	})

	if t.logger != nil {
		t.logger.Info("Toast", "message", message)
	}

	t.after(t.duration, func() {
		t.poster.Post(func() { t.dismiss(id) })
	})
}

// Active returns the toasts currently on screen, oldest first.
func (t *Toaster) Active() []Toast {
	out := make([]Toast, len(t.active))
	copy(out, t.active)
	return out
}

// Latest returns the newest toast, if any.
func (t *Toaster) Latest() (Toast, bool) {
	if len(t.active) == 0 {
		return Toast{}, false
	}
	return t.active[len(t.active)-1], true
}

func (t *Toaster) dismiss(id int64) {
	for i, toast := range t.active {
		if toast.ID == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			return
		}
	}
}
