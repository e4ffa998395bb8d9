package panzoom

// zoomTarget is the part of the Model the pinch recognizer drives.
type zoomTarget interface {
	Zoom() float64
	SetZoom(z float64)
}

// pinchRecognizer maps the distance ratio of exactly two contacts onto the
// zoom captured when the second contact arrived.
type pinchRecognizer struct {
	target        zoomTarget
	active        bool
	pointer0      int
	pointer1      int
	startDistance float64
	startZoom     float64
}

// begin baselines a new pinch between two contacts. Any previous baseline
// is discarded.
func (p *pinchRecognizer) begin(id0 int, x0, y0 float64, id1 int, x1, y1 float64) {
	p.active = true
	p.pointer0 = id0
	p.pointer1 = id1
	p.startDistance = distance(x0, y0, x1, y1)
	p.startZoom = p.target.Zoom()
}

// involves reports whether pointerID is one of the pinch contacts.
func (p *pinchRecognizer) involves(pointerID int) bool {
	return p.active && (pointerID == p.pointer0 || pointerID == p.pointer1)
}

// update applies startZoom * current/start. A zero start distance makes
// the event a no-op. Returns the ratio and whether zoom was requested.
func (p *pinchRecognizer) update(x0, y0, x1, y1 float64) (scale float64, ok bool) {
	if !p.active || p.startDistance == 0 {
		return 0, false
	}
	scale = distance(x0, y0, x1, y1) / p.startDistance
	p.target.SetZoom(p.startZoom * scale)
	return scale, true
}

// end deactivates the recognizer. Reports whether a pinch was active.
func (p *pinchRecognizer) end() bool {
	was := p.active
	p.active = false
	p.startDistance = 0
	return was
}
