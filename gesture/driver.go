package gesture

import "github.com/hajimehoshi/ebiten/v2"

// Driver translates Ebitengine touch and mouse state into contact events
// for a Recognizer. Call Update once per frame from the game's Update.
//
// Touches take priority; when no touches are active, the left mouse button
// acts as a single contact so the same gestures work on desktop. The
// recognizer tracks at most two contacts, so additional touches beyond the
// first two are dropped.
type Driver struct {
	rec *Recognizer

	touchIDs  []ebiten.TouchID
	contacts  []Contact
	active    bool // a contact sequence is in flight
	mouse     bool // the in-flight sequence is mouse-driven
	prevCount int
}

// NewDriver creates a Driver feeding the given recognizer.
func NewDriver(rec *Recognizer) *Driver {
	return &Driver{rec: rec}
}

// Recognizer returns the recognizer this driver feeds.
func (d *Driver) Recognizer() *Recognizer {
	return d.rec
}

// Update samples the current input state, forwards contact transitions to
// the recognizer, and advances its long-press deadline.
func (d *Driver) Update() {
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	d.contacts = d.contacts[:0]
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		d.contacts = append(d.contacts, Contact{X: float64(x), Y: float64(y)})
	}
	if len(d.contacts) > 2 {
		d.contacts = d.contacts[:2]
	}

	switch {
	case len(d.contacts) > 0:
		// A finger landing mid-sequence arrives as another start event,
		// which is what captures the pinch reference.
		if !d.active || (!d.mouse && len(d.contacts) > d.prevCount) {
			d.active = true
			d.mouse = false
			d.rec.ContactStart(d.contacts)
		} else {
			d.rec.ContactMove(d.contacts)
		}
		d.prevCount = len(d.contacts)

	case d.active && !d.mouse:
		// All touches lifted.
		d.endSequence()

	default:
		d.updateMouse()
	}

	d.rec.Update()
}

// updateMouse runs the single-contact mouse fallback.
func (d *Driver) updateMouse() {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	c := Contact{X: float64(mx), Y: float64(my)}

	switch {
	case pressed && !d.active:
		d.active = true
		d.mouse = true
		d.prevCount = 1
		d.rec.ContactStart([]Contact{c})
	case pressed && d.mouse:
		d.rec.ContactMove([]Contact{c})
	case !pressed && d.active && d.mouse:
		d.endSequence()
	}
}

func (d *Driver) endSequence() {
	d.active = false
	d.mouse = false
	d.prevCount = 0
	d.rec.ContactEnd()
}

// Cancel aborts the in-flight contact sequence without classification,
// e.g. when the window loses focus.
func (d *Driver) Cancel() {
	if !d.active {
		return
	}
	d.active = false
	d.mouse = false
	d.prevCount = 0
	d.rec.ContactCancel()
}
