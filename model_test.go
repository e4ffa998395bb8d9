package panzoom

import (
	"errors"
	"math"
	"testing"
)

// edges returns where the scaled content lands in container space.
func edges(m *Model, content Rect) (left, top, right, bottom float64) {
	r := m.Transform().ScaledRect(content)
	return r.X, r.Y, r.X + r.Width, r.Y + r.Height
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	if got := m.Transform(); got != IdentityTransform {
		t.Errorf("initial transform = %v, want identity", got)
	}
	lo, hi := m.ZoomRange()
	if lo != 1 || hi != 5 {
		t.Errorf("ZoomRange = %v, %v, want 1, 5", lo, hi)
	}
}

func TestNewModelInvertedRange(t *testing.T) {
	_, err := NewModel(DefaultConfig(), FillBounds(viewport), NewSlider(5, 1, 1))
	if !errors.Is(err, ErrInvalidZoomRange) {
		t.Errorf("NewModel with max < min: err = %v, want ErrInvalidZoomRange", err)
	}

	cfg := DefaultConfig()
	cfg.ZoomMin, cfg.ZoomMax = 3, 2
	if _, err := NewModel(cfg, nil, nil); !errors.Is(err, ErrInvalidZoomRange) {
		t.Errorf("NewModel with inverted config: err = %v, want ErrInvalidZoomRange", err)
	}
}

func TestMustNewModelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewModel did not panic on an invalid range")
		}
	}()
	MustNewModel(DefaultConfig(), nil, NewSlider(5, 1, 1))
}

func TestNewModelSourceRangeWins(t *testing.T) {
	src := NewSlider(0.5, 8, 4)
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), src)
	lo, hi := m.ZoomRange()
	if lo != 0.5 || hi != 8 {
		t.Errorf("ZoomRange = %v, %v, want 0.5, 8", lo, hi)
	}
	if src.Value() != 1 {
		t.Errorf("source value = %v, want 1 after construction", src.Value())
	}
}

func TestSetZoomClampsToRange(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	tests := []struct {
		in, want float64
	}{
		{50, 5},
		{0.1, 1},
		{2.5, 2.5},
		{math.Inf(1), 5},
	}
	for _, tt := range tests {
		m.SetZoom(tt.in)
		if got := m.Zoom(); got != tt.want {
			t.Errorf("SetZoom(%v): zoom = %v, want %v", tt.in, got, tt.want)
		}
	}
	m.SetZoom(math.NaN())
	if got := m.Zoom(); got != 5 {
		t.Errorf("SetZoom(NaN) changed zoom to %v", got)
	}
}

func TestPanNeverShowsGap(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	m.SetZoom(2)

	deltas := [][2]float64{{1000, 0}, {-30, 500}, {-5000, -5000}, {12, 7}, {0, 10000}}
	for _, d := range deltas {
		m.ApplyPanDelta(d[0], d[1])
		left, top, right, bottom := edges(m, viewport)
		if left > viewport.X+epsilon || top > viewport.Y+epsilon ||
			right < viewport.Width-epsilon || bottom < viewport.Height-epsilon {
			t.Errorf("after pan %v: content [%v %v %v %v] leaves a gap", d, left, top, right, bottom)
		}
	}
}

func TestPanSnapsExactlyToEdge(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	m.SetZoom(2)
	m.ApplyPanDelta(1000, -1000)
	got := m.Transform()
	if got.X != 200 || got.Y != -150 {
		t.Errorf("transform = %v, want X=200 Y=-150", got)
	}
	left, _, _, bottom := edges(m, viewport)
	if !approxEqual(left, 0, epsilon) || !approxEqual(bottom, 300, epsilon) {
		t.Errorf("edges = left %v bottom %v, want flush with container", left, bottom)
	}
}

func TestPanAtZoomOneIsNoop(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	changes := 0
	m.OnChange(func(ViewportTransform) { changes++ })
	m.ApplyPanDelta(40, -40)
	if got := m.Transform(); got != IdentityTransform {
		t.Errorf("transform = %v, want identity", got)
	}
	if changes != 0 {
		t.Errorf("OnChange fired %d times for a no-op pan", changes)
	}
}

func TestSmallContentIsCentered(t *testing.T) {
	content := Rect{Width: 200, Height: 100}
	m := newTestModel(t, DefaultConfig(), StaticBounds{Container: viewport, Content: content}, nil)
	m.SetZoom(1.5)
	got := m.Transform()
	if got.X != 100 || got.Y != 100 {
		t.Errorf("transform = %v, want centered at 100, 100", got)
	}
	m.ApplyPanDelta(30, 30)
	if m.Transform() != got {
		t.Errorf("pan moved centered content to %v", m.Transform())
	}
	r := got.ScaledRect(content)
	if c := r.Center(); !approxEqual(c.X, 200, epsilon) || !approxEqual(c.Y, 150, epsilon) {
		t.Errorf("content center = %v, want container center", c)
	}
}

func TestZoomOutSnapsToEdge(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	m.SetZoom(4)
	m.ApplyPanDelta(600, 0) // limit at zoom 4 is 600
	m.SetZoom(2)
	if got := m.Transform().X; got != 200 {
		t.Errorf("X after zoom out = %v, want 200", got)
	}
	m.SetZoom(1)
	if got := m.Transform(); got != IdentityTransform {
		t.Errorf("transform at zoom 1 = %v, want identity", got)
	}
}

func TestDegenerateBounds(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), StaticBounds{}, nil)
	m.SetZoom(3)
	m.ApplyPanDelta(10, 10)
	got := m.Transform()
	if got.Zoom != 3 || got.X != 0 || got.Y != 0 {
		t.Errorf("transform = %v, want zoom 3 with no translation", got)
	}

	m = newTestModel(t, DefaultConfig(), nil, nil)
	m.SetZoom(2)
	if m.Zoom() != 2 {
		t.Errorf("nil bounds: zoom = %v, want 2", m.Zoom())
	}
}

func TestClampNone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClampMode = ClampNone
	m := newTestModel(t, cfg, FillBounds(viewport), nil)
	m.ApplyPanDelta(1000, -20)
	m.SetZoom(2)
	got := m.Transform()
	if got.X != 1000 || got.Y != -20 || got.Zoom != 2 {
		t.Errorf("transform = %v, want free translation 1000, -20", got)
	}
	m.Reclamp()
	if m.Transform() != got {
		t.Error("Reclamp changed an unclamped transform")
	}
}

func TestResetIdempotent(t *testing.T) {
	src := NewSlider(1, 5, 1)
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), src)
	m.SetZoom(3)
	m.ApplyPanDelta(100, 50)

	m.Reset()
	first := m.Transform()
	m.Reset()
	if first != IdentityTransform || m.Transform() != first {
		t.Errorf("Reset = %v then %v, want identity twice", first, m.Transform())
	}
	if src.Value() != 1 {
		t.Errorf("source value = %v, want 1", src.Value())
	}
}

func TestResetClampsZoomIntoRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomMin, cfg.ZoomMax = 2, 4
	m := newTestModel(t, cfg, FillBounds(viewport), nil)
	m.Reset()
	if got := m.Zoom(); got != 2 {
		t.Errorf("zoom after Reset = %v, want 2", got)
	}
}

func TestSetZoomSyncsSource(t *testing.T) {
	src := NewSlider(1, 5, 1)
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), src)
	NewController(m)

	var inputs []float64
	src.OnInput(func(v float64) { inputs = append(inputs, v) })
	changes := 0
	m.OnChange(func(ViewportTransform) { changes++ })

	m.SetZoom(2.5)

	if src.Value() != 2.5 {
		t.Errorf("source value = %v, want 2.5", src.Value())
	}
	if len(inputs) != 1 || inputs[0] != 2.5 {
		t.Errorf("input notifications = %v, want [2.5]", inputs)
	}
	if changes != 1 {
		t.Errorf("OnChange fired %d times, want 1", changes)
	}
}

func TestSourceInputDrivesModel(t *testing.T) {
	src := NewSlider(1, 5, 1)
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), src)
	c := NewController(m)

	dispatches := 0
	src.OnInput(func(float64) { dispatches++ })

	src.Input(3)
	if m.Zoom() != 3 {
		t.Errorf("zoom = %v, want 3", m.Zoom())
	}
	if dispatches != 1 {
		t.Errorf("input dispatched %d times, want 1 (no echo)", dispatches)
	}

	src.Input(10)
	if m.Zoom() != 5 {
		t.Errorf("zoom = %v, want 5 after out-of-range input", m.Zoom())
	}

	c.Close()
	src.Input(2)
	if m.Zoom() != 5 {
		t.Errorf("zoom = %v after Close, want unchanged 5", m.Zoom())
	}
}

func TestReclampAfterResize(t *testing.T) {
	container := viewport
	bounds := BoundsFunc{
		Container: func() Rect { return container },
		Content:   func() Rect { return viewport },
	}
	m := newTestModel(t, DefaultConfig(), bounds, nil)
	m.SetZoom(2)
	m.ApplyPanDelta(-1000, 0)
	if got := m.Transform().X; got != -200 {
		t.Fatalf("X = %v, want -200", got)
	}

	container = Rect{Width: 700, Height: 300}
	m.Reclamp()
	// centering 150, slack 50
	if got := m.Transform().X; got != 100 {
		t.Errorf("X after resize = %v, want 100", got)
	}
}

func TestOnChangeRemove(t *testing.T) {
	m := newTestModel(t, DefaultConfig(), FillBounds(viewport), nil)
	n := 0
	h := m.OnChange(func(ViewportTransform) { n++ })
	m.SetZoom(2)
	h.Remove()
	m.SetZoom(3)
	if n != 1 {
		t.Errorf("OnChange fired %d times, want 1", n)
	}
}
