package gesture

import (
	"math"
	"time"
)

// session is the recognizer's working state for one contact sequence,
// created on contact start and discarded on end or cancel.
type session struct {
	active         bool
	startX, startY float64
	curX, curY     float64
	startTime      time.Time
	contacts       int
}

// twoContact is the pinch/rotate reference state, valid only while two
// contacts are held. refDist and refAngle are captured at the moment the
// second contact appears.
type twoContact struct {
	active   bool
	refDist  float64
	refAngle float64
	scale    float64
	rotation float64
}

// Recognizer converts a raw stream of contact events into discrete gesture
// notifications using fixed distance and time thresholds. It handles one
// active contact sequence at a time, plus an optional secondary contact for
// pinch and rotate.
//
// All methods must be called from a single goroutine; the recognizer is
// designed for a game's update loop and holds no locks.
type Recognizer struct {
	opts     Options
	clock    Clock
	handlers handlerRegistry

	sess session
	two  twoContact

	// lastTapTime survives session resets; it is the anchor for double-tap
	// detection across two separate contact sequences.
	lastTapTime time.Time

	// Long-press deadline. Armed on contact start, disarmed by any move,
	// by end/cancel, or by firing.
	deadline      time.Time
	deadlineArmed bool
}

// NewRecognizer creates a Recognizer with the given options and the system
// clock.
func NewRecognizer(opts Options) *Recognizer {
	return &Recognizer{opts: opts, clock: systemClock{}}
}

// SetClock replaces the recognizer's time source. Call before feeding any
// contact events.
func (r *Recognizer) SetClock(c Clock) {
	r.clock = c
}

// Options returns the recognizer's configured thresholds.
func (r *Recognizer) Options() Options {
	return r.opts
}

// Active reports whether a contact sequence is currently in flight.
func (r *Recognizer) Active() bool {
	return r.sess.active
}

// ContactStart begins a gesture session from contacts[0], or updates the
// contact count of the session already in flight (a second finger landing
// arrives as another start event). Calls with no contacts are ignored.
//
// Every start disarms any outstanding long-press deadline before arming a
// new one, so at most one deadline is ever pending.
func (r *Recognizer) ContactStart(contacts []Contact) {
	if len(contacts) == 0 {
		return
	}
	now := r.clock.Now()

	if !r.sess.active {
		r.sess = session{
			active:    true,
			startX:    contacts[0].X,
			startY:    contacts[0].Y,
			curX:      contacts[0].X,
			curY:      contacts[0].Y,
			startTime: now,
		}
	}
	r.sess.contacts = len(contacts)

	r.disarmLongPress()
	r.armLongPress(now)

	if len(contacts) >= 2 && (r.opts.PinchEnabled || r.opts.RotateEnabled) {
		dist, angle := contactSpan(contacts[0], contacts[1])
		r.two = twoContact{
			active:   true,
			refDist:  dist,
			refAngle: angle,
			scale:    1,
		}
	}

	r.handlers.sessionStart.fire(StartContext{
		X:        contacts[0].X,
		Y:        contacts[0].Y,
		Contacts: len(contacts),
	})
}

// ContactMove updates the session with new contact positions. Any move,
// regardless of magnitude, disarms the pending long press; there is
// deliberately no tap-threshold tolerance here, matching the shipped
// behavior.
//
// While two contacts are held, every move emits a pinch (and, when
// enabled, a rotate) relative to the reference captured at second-contact
// time. Calls without an active session are ignored.
func (r *Recognizer) ContactMove(contacts []Contact) {
	if len(contacts) == 0 || !r.sess.active {
		return
	}
	now := r.clock.Now()

	// A deadline that elapsed before this event reached us still fires
	// first, as a host timer would have.
	r.fireLongPressIfDue(now)
	r.disarmLongPress()

	r.sess.curX = contacts[0].X
	r.sess.curY = contacts[0].Y
	r.sess.contacts = len(contacts)

	if len(contacts) < 2 {
		// Contact count dropped below two: reference state is gone.
		r.two = twoContact{}
		return
	}
	if !r.two.active {
		return
	}

	dist, angle := contactSpan(contacts[0], contacts[1])
	if r.two.refDist > 0 {
		r.two.scale = dist / r.two.refDist
	}
	r.two.rotation = angle - r.two.refAngle

	cx := (contacts[0].X + contacts[1].X) / 2
	cy := (contacts[0].Y + contacts[1].Y) / 2
	if r.opts.PinchEnabled {
		r.handlers.pinch.fire(PinchContext{CenterX: cx, CenterY: cy, Scale: r.two.scale})
	}
	if r.opts.RotateEnabled {
		r.handlers.rotate.fire(RotateContext{CenterX: cx, CenterY: cy, Rotation: r.two.rotation})
	}
}

// ContactEnd closes the active session and classifies the completed
// sequence. Displacement is measured from the session's start position to
// the last position reported by ContactMove; end events often carry no
// contact points, so none are taken here.
//
// Classification checks in order, first match wins: tap (or double tap when
// the previous tap landed within the double-tap window), then swipe, then
// nothing. The session and any two-contact state are always discarded.
// Calls without an active session are ignored.
func (r *Recognizer) ContactEnd() {
	if !r.sess.active {
		return
	}
	now := r.clock.Now()
	r.fireLongPressIfDue(now)
	r.disarmLongPress()

	duration := now.Sub(r.sess.startTime)
	dx := r.sess.curX - r.sess.startX
	dy := r.sess.curY - r.sess.startY
	dist := math.Hypot(dx, dy)
	startX, startY := r.sess.startX, r.sess.startY
	endX, endY := r.sess.curX, r.sess.curY

	r.sess = session{}
	r.two = twoContact{}

	switch {
	case dist < r.opts.TapThreshold && duration < tapMaxDuration:
		if !r.lastTapTime.IsZero() && now.Sub(r.lastTapTime) < r.opts.DoubleTapWindow {
			// Reset the anchor so a third tap starts over as a plain tap
			// instead of re-firing a double.
			r.lastTapTime = time.Time{}
			r.handlers.doubleTap.fire(TapContext{X: endX, Y: endY, Duration: duration})
		} else {
			r.lastTapTime = now
			r.handlers.tap.fire(TapContext{X: endX, Y: endY, Duration: duration})
		}

	case dist >= r.opts.SwipeThreshold && duration < swipeMaxDuration:
		ms := float64(duration) / float64(time.Millisecond)
		velocity := 0.0
		if ms > 0 {
			velocity = dist / ms
		}
		r.handlers.swipe.fire(SwipeContext{
			X:         endX,
			Y:         endY,
			StartX:    startX,
			StartY:    startY,
			Direction: swipeDirection(dx, dy),
			Distance:  dist,
			Duration:  duration,
			Velocity:  velocity,
			Angle:     math.Atan2(dy, dx) * 180 / math.Pi,
		})
	}
}

// ContactCancel aborts the active session without emitting any gesture.
// Used when the host invalidates the sequence (window focus loss, system
// interruption). Safe to call without an active session.
func (r *Recognizer) ContactCancel() {
	r.disarmLongPress()
	r.sess = session{}
	r.two = twoContact{}
}

// Update drives the long-press deadline from the host's frame loop. Call
// once per tick; Driver does this automatically.
func (r *Recognizer) Update() {
	if r.sess.active {
		r.fireLongPressIfDue(r.clock.Now())
	}
}

// --- Long press ---

func (r *Recognizer) armLongPress(now time.Time) {
	r.deadline = now.Add(r.opts.LongPressDuration)
	r.deadlineArmed = true
}

func (r *Recognizer) disarmLongPress() {
	r.deadlineArmed = false
}

// fireLongPressIfDue emits LongPress once when the armed deadline has
// elapsed. The session stays active: the eventual ContactEnd still runs
// classification, which by then falls outside both the tap and swipe
// windows.
func (r *Recognizer) fireLongPressIfDue(now time.Time) {
	if !r.deadlineArmed || now.Before(r.deadline) {
		return
	}
	r.deadlineArmed = false
	r.handlers.longPress.fire(LongPressContext{
		X:        r.sess.curX,
		Y:        r.sess.curY,
		Duration: r.opts.LongPressDuration,
	})
}

// --- Geometry ---

// contactSpan returns the distance and atan2 bearing from a to b.
func contactSpan(a, b Contact) (dist, angle float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// swipeDirection picks the dominant displacement axis and maps the sign to
// a direction. Vertical wins exact ties.
func swipeDirection(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}
