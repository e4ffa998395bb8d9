package panzoom

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestResetAnimatedInterpolates(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	m.SetZoom(3)
	m.ApplyPanDelta(100, -60)

	m.ResetAnimated(1, ease.Linear)
	if !m.Animating() {
		t.Fatal("Animating() = false after ResetAnimated")
	}

	m.Update(0.5)
	got := m.Transform()
	if !approxEqual(got.Zoom, 2, 1e-5) || !approxEqual(got.X, 50, 1e-4) || !approxEqual(got.Y, -30, 1e-4) {
		t.Errorf("halfway transform = %v, want zoom 2 at (50, -30)", got)
	}

	m.Update(0.6)
	if m.Animating() {
		t.Error("still animating past the duration")
	}
	if m.Transform() != IdentityTransform {
		t.Errorf("final transform = %v, want identity", m.Transform())
	}
}

func TestResetAnimatedCancelledByInput(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	m.SetZoom(3)
	m.ResetAnimated(1, nil)
	m.SetZoom(4)
	if m.Animating() {
		t.Fatal("SetZoom did not cancel the animation")
	}
	m.Update(0.5)
	if m.Zoom() != 4 {
		t.Errorf("zoom = %v, want 4", m.Zoom())
	}
}

func TestResetAnimatedZeroDuration(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	m.SetZoom(3)
	m.ResetAnimated(0, nil)
	if m.Animating() || m.Transform() != IdentityTransform {
		t.Errorf("zero duration: animating=%v transform=%v", m.Animating(), m.Transform())
	}
}

func TestResetAnimatedSyncsSourceAtEnd(t *testing.T) {
	src := NewSlider(1, 5, 1)
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), src)
	m.SetZoom(3)

	dispatches := 0
	src.OnInput(func(float64) { dispatches++ })

	m.ResetAnimated(0.2, ease.Linear)
	m.Update(0.1)
	if !approxEqual(src.Value(), 2, 1e-5) {
		t.Errorf("source value mid-animation = %v, want 2", src.Value())
	}
	if dispatches != 0 {
		t.Errorf("intermediate frames dispatched input %d times", dispatches)
	}
	m.Update(0.2)
	if src.Value() != 1 || dispatches != 1 {
		t.Errorf("after finish: value = %v, dispatches = %d, want 1, 1", src.Value(), dispatches)
	}
}

func TestUpdateWithoutAnimation(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	changes := 0
	m.OnChange(func(ViewportTransform) { changes++ })
	m.Update(1)
	if changes != 0 {
		t.Errorf("Update without animation published %d times", changes)
	}
}
