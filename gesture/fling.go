package gesture

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fling converts a completed swipe into a decaying scroll offset for
// kinetic board scrolling. Create one from the SwipeContext delivered to an
// OnSwipe callback and call Update each frame until Done.
//
// There is no global animation manager; callers drive Update themselves.
type Fling struct {
	tween *gween.Tween
	dirX  float64
	dirY  float64
	Done  bool
}

// NewFling starts a fling along the swipe's angle at the swipe's release
// velocity, decaying to rest over duration seconds.
func NewFling(swipe SwipeContext, duration float32) *Fling {
	rad := swipe.Angle * math.Pi / 180
	// SwipeContext.Velocity is px/ms; the tween integrates in px/s.
	v := swipe.Velocity * 1000
	return &Fling{
		tween: gween.New(float32(v), 0, duration, ease.OutQuad),
		dirX:  math.Cos(rad),
		dirY:  math.Sin(rad),
	}
}

// Update advances the fling by dt seconds and returns this frame's scroll
// deltas in pixels. After the decay finishes, Done is set and both deltas
// are zero.
func (f *Fling) Update(dt float32) (dx, dy float64) {
	if f.Done {
		return 0, 0
	}
	speed, finished := f.tween.Update(dt)
	f.Done = finished
	step := float64(speed) * float64(dt)
	return f.dirX * step, f.dirY * step
}
