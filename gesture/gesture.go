package gesture

import "time"

// Contact is a single active touch or pointer position reported by the
// host. Its timestamp is implicit: the recognizer reads its [Clock] when
// the event carrying the contact arrives.
type Contact struct {
	X, Y float64
}

// Direction identifies the dominant axis and sign of a swipe.
type Direction uint8

const (
	DirectionLeft  Direction = iota // deltaX negative, horizontal dominant
	DirectionRight                  // deltaX positive, horizontal dominant
	DirectionUp                     // deltaY negative, vertical dominant
	DirectionDown                   // deltaY positive, vertical dominant
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	default:
		return "down"
	}
}

// Classification windows baked into the recognition rules. A release
// qualifies as a tap only under tapMaxDuration and as a swipe only under
// swipeMaxDuration; neither is configurable through Options.
const (
	tapMaxDuration   = 300 * time.Millisecond
	swipeMaxDuration = 500 * time.Millisecond
)

// --- Gesture contexts ---

// StartContext describes the beginning of a contact sequence. It is a
// notification for feedback (haptics, highlight), not a classified gesture.
type StartContext struct {
	X, Y     float64
	Contacts int
}

// TapContext carries the release position and press duration of a tap or
// double tap.
type TapContext struct {
	X, Y     float64
	Duration time.Duration
}

// LongPressContext carries the contact position at the moment the
// long-press deadline elapsed. Duration is the configured hold time.
type LongPressContext struct {
	X, Y     float64
	Duration time.Duration
}

// SwipeContext describes a completed swipe.
type SwipeContext struct {
	X, Y           float64 // release position
	StartX, StartY float64
	Direction      Direction
	Distance       float64       // straight-line displacement in pixels
	Duration       time.Duration // contact start to release
	Velocity       float64       // pixels per millisecond
	Angle          float64       // atan2(deltaY, deltaX) in degrees
}

// PinchContext is emitted on every move while two contacts are held.
// Scale is the current separation relative to the separation captured when
// the second contact appeared.
type PinchContext struct {
	CenterX, CenterY float64
	Scale            float64
}

// RotateContext is emitted alongside PinchContext when rotation tracking
// is enabled. Rotation is in radians relative to the bearing captured when
// the second contact appeared.
type RotateContext struct {
	CenterX, CenterY float64
	Rotation         float64
}
