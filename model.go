package panzoom

import (
	"fmt"
	"math"
)

// Model owns the single authoritative ViewportTransform. Every change goes
// through SetZoom, ApplyPanDelta or Reset, which clamp against the live
// bounds and then publish the result to OnChange subscribers.
//
// A Model is not safe for concurrent use; drive it from the input loop.
type Model struct {
	cfg     Config
	bounds  BoundsProvider
	src     ZoomSource
	zoomMin float64
	zoomMax float64

	t        ViewportTransform
	changed  handlerList[ViewportTransform]
	syncing  bool
	resetTwn *resetTween
}

// NewModel creates a Model at the identity transform. When src is non-nil
// its range replaces cfg.ZoomMin/ZoomMax and its value is set to the
// starting zoom. An inverted zoom range is a configuration error.
func NewModel(cfg Config, bounds BoundsProvider, src ZoomSource) (*Model, error) {
	if src != nil {
		cfg.ZoomMin, cfg.ZoomMax = src.Range()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bounds == nil {
		bounds = StaticBounds{}
	}
	m := &Model{
		cfg:     cfg,
		bounds:  bounds,
		src:     src,
		zoomMin: cfg.ZoomMin,
		zoomMax: cfg.ZoomMax,
	}
	m.t = ViewportTransform{Zoom: m.clampZoom(1)}
	if src != nil {
		src.SetValue(m.t.Zoom)
	}
	return m, nil
}

// MustNewModel is like NewModel but panics on a configuration error.
func MustNewModel(cfg Config, bounds BoundsProvider, src ZoomSource) *Model {
	m, err := NewModel(cfg, bounds, src)
	if err != nil {
		panic(fmt.Sprintf("panzoom: %v", err))
	}
	return m
}

// Config returns the effective configuration, including a zoom range taken
// from the ZoomSource.
func (m *Model) Config() Config {
	return m.cfg
}

// Transform returns the current transform.
func (m *Model) Transform() ViewportTransform {
	return m.t
}

// Zoom returns the current zoom factor.
func (m *Model) Zoom() float64 {
	return m.t.Zoom
}

// ZoomRange returns the bounds SetZoom clamps to.
func (m *Model) ZoomRange() (min, max float64) {
	return m.zoomMin, m.zoomMax
}

// Source returns the ZoomSource the model writes back to, or nil.
func (m *Model) Source() ZoomSource {
	return m.src
}

// OnChange registers a callback that receives every published transform.
func (m *Model) OnChange(fn func(ViewportTransform)) CallbackHandle {
	return m.changed.add(fn)
}

// SetZoom clamps z into the zoom range, re-clamps translation for the new
// scale and publishes. The zoom source is updated and its input
// notification raised so other observers of the source still fire.
func (m *Model) SetZoom(z float64) {
	m.setZoom(z, true)
}

// setZoom applies a zoom change. notify is false when the change came
// from the zoom source itself, which has already notified its observers.
func (m *Model) setZoom(z float64, notify bool) {
	if math.IsNaN(z) {
		return
	}
	// Echo from our own DispatchInput.
	if m.syncing && z == m.t.Zoom {
		return
	}
	m.resetTwn = nil
	next := m.t
	next.Zoom = m.clampZoom(z)
	if m.cfg.ClampMode == ClampSnap {
		h, v := m.axes()
		next.X = h.clampZoomed(next.X, next.Zoom)
		next.Y = v.clampZoomed(next.Y, next.Zoom)
	}
	m.commit(next, notify)
}

// ApplyPanDelta moves the content by (dx, dy). On each axis the move stops
// exactly where the content edge meets the container edge, and content
// smaller than the container stays centered. Degenerate geometry on an
// axis makes that axis a no-op.
func (m *Model) ApplyPanDelta(dx, dy float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}
	m.resetTwn = nil
	next := m.t
	if m.cfg.ClampMode == ClampSnap {
		h, v := m.axes()
		next.X = h.pan(next.X, dx, next.Zoom)
		next.Y = v.pan(next.Y, dy, next.Zoom)
	} else {
		next.X += dx
		next.Y += dy
	}
	if next == m.t {
		return
	}
	m.commit(next, false)
}

// Reset returns to zoom 1 (clamped into range) with no translation and
// publishes. Calling it repeatedly yields the same transform.
func (m *Model) Reset() {
	m.resetTwn = nil
	m.commit(ViewportTransform{Zoom: m.clampZoom(1)}, true)
}

// Reclamp re-applies clamping against the current bounds without changing
// the zoom. Call it after the container is resized.
func (m *Model) Reclamp() {
	if m.cfg.ClampMode != ClampSnap {
		return
	}
	next := m.t
	h, v := m.axes()
	next.X = h.clampZoomed(next.X, next.Zoom)
	next.Y = v.clampZoomed(next.Y, next.Zoom)
	if next == m.t {
		return
	}
	m.commit(next, false)
}

func (m *Model) clampZoom(z float64) float64 {
	return clamp(z, m.zoomMin, m.zoomMax)
}

// axes snapshots the live bounds.
func (m *Model) axes() (axis, axis) {
	container := m.bounds.ContainerRect()
	content := m.bounds.ContentRect()
	return horizontal(container, content), vertical(container, content)
}

// commit stores next, syncs the zoom source and publishes.
func (m *Model) commit(next ViewportTransform, notify bool) {
	zoomChanged := next.Zoom != m.t.Zoom
	m.t = next
	if m.src != nil && (zoomChanged || notify) {
		m.src.SetValue(m.t.Zoom)
		if notify && !m.syncing {
			m.syncing = true
			m.src.DispatchInput()
			m.syncing = false
		}
	}
	m.changed.fire(m.t)
}
