// Package gesture classifies raw contact events, touch or pointer, into
// discrete gestures: tap, double tap, long press, swipe, and two-finger
// pinch/rotate.
//
// A [Recognizer] owns the working state for exactly one input surface.
// Construct one per tracked surface; independent recognizers never share
// state. The host feeds it a contact sequence via [Recognizer.ContactStart],
// [Recognizer.ContactMove], and [Recognizer.ContactEnd] (or
// [Recognizer.ContactCancel] when the sequence is invalidated), and
// registers callbacks for the gestures it cares about:
//
//	rec := gesture.NewRecognizer(gesture.DefaultOptions())
//	rec.OnTap(func(ctx gesture.TapContext) {
//		board.Select(ctx.X, ctx.Y)
//	})
//	rec.OnSwipe(func(ctx gesture.SwipeContext) {
//		board.Shift(ctx.Direction)
//	})
//
// For Ebitengine games, [Driver] handles the feeding: it polls touch and
// mouse state each frame and forwards the transitions.
//
//	drv := gesture.NewDriver(rec)
//	// inside ebiten.Game.Update:
//	drv.Update()
//
// The long-press deadline is driven by the host's frame loop rather than a
// background timer, so everything stays on the game's update goroutine.
// Call [Recognizer.Update] (or [Driver.Update], which does it for you) once
// per tick.
package gesture
