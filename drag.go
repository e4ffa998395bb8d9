package panzoom

// panTarget is the part of the Model the drag recognizer drives.
type panTarget interface {
	ApplyPanDelta(dx, dy float64)
}

// dragRecognizer turns a single pressed pointer into incremental pan
// deltas. Idle -> Dragging on a press with exactly one contact; Dragging ->
// Idle on release, leave, cancel or a second contact.
type dragRecognizer struct {
	target  panTarget
	active  bool
	pointer int
	lastX   float64
	lastY   float64
}

// press starts dragging when the new press is the only contact and stops
// any drag in progress otherwise.
func (d *dragRecognizer) press(pointerID int, x, y float64, contacts int) (started, stopped bool) {
	if contacts != 1 {
		return false, d.cancel()
	}
	d.active = true
	d.pointer = pointerID
	d.lastX = x
	d.lastY = y
	return true, false
}

// move applies the delta from the previously recorded point and records
// the new one. Deltas are incremental so intermediate clamping does not
// compound.
func (d *dragRecognizer) move(pointerID int, x, y float64) (dx, dy float64, ok bool) {
	if !d.active || pointerID != d.pointer {
		return 0, 0, false
	}
	dx = x - d.lastX
	dy = y - d.lastY
	d.lastX = x
	d.lastY = y
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}
	d.target.ApplyPanDelta(dx, dy)
	return dx, dy, true
}

// release ends the drag if pointerID is the dragging pointer.
// Reports whether a drag ended.
func (d *dragRecognizer) release(pointerID int) bool {
	if !d.active || pointerID != d.pointer {
		return false
	}
	d.active = false
	return true
}

// cancel forces Idle. Reports whether a drag was in progress.
func (d *dragRecognizer) cancel() bool {
	was := d.active
	d.active = false
	return was
}
