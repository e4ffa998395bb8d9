package panzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetTween holds the active tweens for an animated reset.
type resetTween struct {
	zoom *gween.Tween
	x    *gween.Tween
	y    *gween.Tween
}

// ResetAnimated eases the view back to the Reset transform over duration
// seconds. Call Update each frame to advance it. Any SetZoom, ApplyPanDelta
// or Reset cancels the animation. A non-positive duration resets at once.
func (m *Model) ResetAnimated(duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		m.Reset()
		return
	}
	if fn == nil {
		fn = ease.OutCubic
	}
	target := m.clampZoom(1)
	m.resetTwn = &resetTween{
		zoom: gween.New(float32(m.t.Zoom), float32(target), duration, fn),
		x:    gween.New(float32(m.t.X), 0, duration, fn),
		y:    gween.New(float32(m.t.Y), 0, duration, fn),
	}
}

// Animating reports whether an animated reset is in progress.
func (m *Model) Animating() bool {
	return m.resetTwn != nil
}

// Update advances an animated reset by dt seconds and publishes the
// intermediate transform. The final frame lands exactly on Reset.
func (m *Model) Update(dt float32) {
	tw := m.resetTwn
	if tw == nil {
		return
	}
	z, doneZ := tw.zoom.Update(dt)
	x, doneX := tw.x.Update(dt)
	y, doneY := tw.y.Update(dt)
	if doneZ && doneX && doneY {
		m.Reset()
		return
	}
	// Intermediate frames skip clamping; both endpoints are valid views.
	m.commit(ViewportTransform{Zoom: m.clampZoom(float64(z)), X: float64(x), Y: float64(y)}, false)
}
