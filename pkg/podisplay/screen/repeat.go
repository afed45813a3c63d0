package screen

import (
	"time"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
)

// Direction represents a cardinal direction for focus movement.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// VirtualButton returns the button for d.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// Repeater tracks held directions and fires repeats while one is held:
// first after delay, then every interval.
type Repeater struct {
	held struct {
		up, down, left, right bool
	}
	lastRepeat  time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
	now         func() time.Time
}

// NewRepeater creates a Repeater with a 300ms delay and 50ms interval.
func NewRepeater() *Repeater {
	return NewRepeaterWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewRepeaterWithTiming creates a Repeater with custom timing.
func NewRepeaterWithTiming(delay, interval time.Duration) *Repeater {
	r := &Repeater{delay: delay, interval: interval, now: time.Now}
	r.lastRepeat = r.now()
	return r
}

// SetHeld records a press or release. Returns false for non-directional buttons.
func (r *Repeater) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		r.held.up = held
	case constants.VirtualButtonDown:
		r.held.down = held
	case constants.VirtualButtonLeft:
		r.held.left = held
	case constants.VirtualButtonRight:
		r.held.right = held
	default:
		return false
	}

	if held {
		r.lastRepeat = r.now()
	} else {
		r.hasRepeated = false
	}
	return true
}

// Held returns the held direction. Up wins over down, down over left,
// left over right.
func (r *Repeater) Held() Direction {
	switch {
	case r.held.up:
		return DirectionUp
	case r.held.down:
		return DirectionDown
	case r.held.left:
		return DirectionLeft
	case r.held.right:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Update is called once per frame and returns the direction to repeat,
// or DirectionNone.
func (r *Repeater) Update() Direction {
	held := r.Held()
	if held == DirectionNone {
		r.lastRepeat = r.now()
		r.hasRepeated = false
		return DirectionNone
	}

	threshold := r.interval
	if !r.hasRepeated {
		threshold = r.delay
	}

	if r.now().Sub(r.lastRepeat) < threshold {
		return DirectionNone
	}
	r.lastRepeat = r.now()
	r.hasRepeated = true
	return held
}

// Reset clears every held direction.
func (r *Repeater) Reset() {
	r.held.up, r.held.down, r.held.left, r.held.right = false, false, false, false
	r.hasRepeated = false
	r.lastRepeat = r.now()
}
