package panzoom

import (
	"io"
	"os"
	"time"
)

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	source PointerSource
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	travel float64 // farthest distance from the press point
}

// Controller is the binding layer between raw pointer input and a Model.
// It tracks contacts, feeds every event to the drag, pinch and tap
// recognizers, and wires the model's zoom source so slider input zooms
// the view.
//
// All methods must be called from one goroutine, normally the ebiten
// Update loop. Events must arrive in timestamp order.
type Controller struct {
	model *Model
	cfg   Config

	pointers     [maxPointers]pointerState
	contacts     int
	peakContacts int // most simultaneous contacts since all were last up
	now          time.Duration

	drag  dragRecognizer
	pinch pinchRecognizer
	tap   tapRecognizer

	gesture handlerList[GestureEvent]
	capture handlerList[GestureEvent]
	reset   handlerList[GestureEvent]
	store   EventStore

	sourceHandle CallbackHandle
	injectQueue  []syntheticPointerEvent

	debug    bool
	debugOut io.Writer
}

// NewController binds a Controller to m. If m has a ZoomSource, input
// notifications from it drive m.SetZoom.
func NewController(m *Model) *Controller {
	cfg := m.Config()
	c := &Controller{
		model:    m,
		cfg:      cfg,
		drag:     dragRecognizer{target: m},
		pinch:    pinchRecognizer{target: m},
		tap:      tapRecognizer{window: cfg.DoubleTapWindow, delay: cfg.LongPressDelay},
		debugOut: os.Stderr,
	}
	if src := m.Source(); src != nil {
		c.sourceHandle = src.OnInput(func(v float64) {
			m.setZoom(v, false)
		})
	}
	return c
}

// Model returns the model this controller drives.
func (c *Controller) Model() *Model {
	return c.model
}

// Close unbinds the zoom source and drops all gesture state.
func (c *Controller) Close() {
	c.sourceHandle.Remove()
	c.sourceHandle = CallbackHandle{}
	c.Cancel()
}

// OnGesture registers a callback for every recognized gesture.
func (c *Controller) OnGesture(fn func(GestureEvent)) CallbackHandle {
	return c.gesture.add(fn)
}

// OnCapture registers the capture trigger, fired by a long-press or
// TriggerCapture.
func (c *Controller) OnCapture(fn func(GestureEvent)) CallbackHandle {
	return c.capture.add(fn)
}

// OnReset registers a callback fired after a double-tap or TriggerReset
// has reset the model.
func (c *Controller) OnReset(fn func(GestureEvent)) CallbackHandle {
	return c.reset.add(fn)
}

// SetEventStore sets an optional sink that receives every gesture.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

// Contacts returns the number of pointers currently pressed.
func (c *Controller) Contacts() int {
	return c.contacts
}

// Dragging reports whether the drag recognizer is active.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// Pinching reports whether the pinch recognizer is active.
func (c *Controller) Pinching() bool {
	return c.pinch.active
}

// LongPressPending reports whether a long-press timer is armed.
func (c *Controller) LongPressPending() bool {
	return c.tap.pressTimer.pending()
}

// --- Input processing ---

// HandleEvent processes one raw input event. A long-press that came due
// before ev.Time fires first so ordering matches real time.
func (c *Controller) HandleEvent(ev PointerEvent) {
	c.advance(ev.Time)
	if ev.Action == PointerCancel {
		c.debugf("input cancelled")
		c.Cancel()
		return
	}
	if ev.PointerID < 0 || ev.PointerID >= maxPointers {
		c.debugf("ignoring %s for out-of-range pointer %d", ev.Action, ev.PointerID)
		return
	}
	switch ev.Action {
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
	case PointerUp:
		c.releasePointer(ev, true)
	case PointerLeave:
		c.releasePointer(ev, false)
	}
}

// Tick advances the input clock to now, firing a due long-press.
func (c *Controller) Tick(now time.Duration) {
	c.advance(now)
}

func (c *Controller) advance(now time.Duration) {
	if now > c.now {
		c.now = now
	}
	c.tap.tick(c.now)
}

// Cancel resets every recognizer and forgets all pressed pointers, as on
// loss of input capture. A later gesture starts clean.
func (c *Controller) Cancel() {
	for i := range c.pointers {
		c.pointers[i] = pointerState{}
	}
	c.contacts = 0
	c.peakContacts = 0
	if c.drag.cancel() {
		c.emit(GestureEvent{Type: GesturePanEnd, PointerID: c.drag.pointer, X: c.drag.lastX, Y: c.drag.lastY})
	}
	if c.pinch.end() {
		c.emit(GestureEvent{Type: GesturePinchEnd})
	}
	c.tap.cancel()
}

func (c *Controller) pointerDown(ev PointerEvent) {
	ps := &c.pointers[ev.PointerID]
	if ps.down {
		// Repeated press without release: treat as movement.
		c.pointerMove(ev)
		return
	}
	*ps = pointerState{
		down:   true,
		source: ev.Source,
		startX: ev.X, startY: ev.Y,
		lastX: ev.X, lastY: ev.Y,
	}
	c.contacts++
	if c.contacts > c.peakContacts {
		c.peakContacts = c.contacts
	}

	started, stopped := c.drag.press(ev.PointerID, ev.X, ev.Y, c.contacts)
	if started {
		c.emit(GestureEvent{Type: GesturePanStart, PointerID: ev.PointerID, X: ev.X, Y: ev.Y})
	}
	if stopped {
		c.emit(GestureEvent{Type: GesturePanEnd, PointerID: c.drag.pointer, X: c.drag.lastX, Y: c.drag.lastY})
	}

	switch {
	case c.contacts == 2:
		c.beginPinch()
	case c.contacts > 2 && c.pinch.end():
		c.emit(GestureEvent{Type: GesturePinchEnd})
	}

	if c.contacts == 1 && ev.Source == SourceTouch {
		id, x, y := ev.PointerID, ev.X, ev.Y
		c.tap.press(c.now, 1, func(at time.Duration) {
			c.triggerCapture(GestureEvent{Type: GestureLongPress, PointerID: id, X: x, Y: y, Time: at})
		})
	} else if c.tap.move() {
		c.debugf("long-press cancelled by contact %d", ev.PointerID)
	}
}

func (c *Controller) pointerMove(ev PointerEvent) {
	ps := &c.pointers[ev.PointerID]
	if !ps.down {
		// Hover moves are not part of any gesture.
		return
	}
	if ev.X == ps.lastX && ev.Y == ps.lastY {
		return
	}
	ps.lastX = ev.X
	ps.lastY = ev.Y
	ps.travel = max(ps.travel, distance(ps.startX, ps.startY, ev.X, ev.Y))

	if c.tap.move() {
		c.debugf("long-press cancelled by movement")
	}

	if dx, dy, ok := c.drag.move(ev.PointerID, ev.X, ev.Y); ok {
		c.emit(GestureEvent{
			Type: GesturePan, PointerID: ev.PointerID,
			X: ev.X, Y: ev.Y, DeltaX: dx, DeltaY: dy,
		})
	}

	if c.contacts == 2 && c.pinch.involves(ev.PointerID) {
		p0 := &c.pointers[c.pinch.pointer0]
		p1 := &c.pointers[c.pinch.pointer1]
		if scale, ok := c.pinch.update(p0.lastX, p0.lastY, p1.lastX, p1.lastY); ok {
			c.emit(GestureEvent{
				Type:  GesturePinch,
				X:     (p0.lastX + p1.lastX) / 2,
				Y:     (p0.lastY + p1.lastY) / 2,
				Scale: scale,
			})
		}
	}
}

// releasePointer handles both release and leaving the surface. Only a
// real release may count as a tap.
func (c *Controller) releasePointer(ev PointerEvent, allowTap bool) {
	ps := &c.pointers[ev.PointerID]
	if !ps.down {
		return
	}
	travel := max(ps.travel, distance(ps.startX, ps.startY, ev.X, ev.Y))
	source := ps.source
	*ps = pointerState{lastX: ev.X, lastY: ev.Y}
	c.contacts--

	if c.drag.release(ev.PointerID) {
		c.emit(GestureEvent{Type: GesturePanEnd, PointerID: ev.PointerID, X: ev.X, Y: ev.Y})
	}

	switch {
	case c.contacts == 2:
		// Dropping from three contacts back to two starts a fresh pinch.
		c.beginPinch()
	case c.pinch.end():
		c.emit(GestureEvent{Type: GesturePinchEnd, PointerID: ev.PointerID})
	}

	if c.contacts > 0 {
		c.tap.release(c.now, false)
		return
	}
	tap := allowTap && source == SourceTouch && c.peakContacts == 1 &&
		(c.cfg.TapSlop == 0 || travel <= c.cfg.TapSlop)
	c.peakContacts = 0
	if c.tap.release(c.now, tap) {
		c.triggerReset(GestureEvent{Type: GestureDoubleTap, PointerID: ev.PointerID, X: ev.X, Y: ev.Y, Time: c.now})
	}
}

// beginPinch baselines a pinch on the two pressed pointers.
func (c *Controller) beginPinch() {
	ids := make([]int, 0, 2)
	for i := range c.pointers {
		if c.pointers[i].down {
			ids = append(ids, i)
			if len(ids) == 2 {
				break
			}
		}
	}
	if len(ids) != 2 {
		return
	}
	p0, p1 := &c.pointers[ids[0]], &c.pointers[ids[1]]
	c.pinch.begin(ids[0], p0.lastX, p0.lastY, ids[1], p1.lastX, p1.lastY)
	c.emit(GestureEvent{
		Type: GesturePinchStart,
		X:    (p0.lastX + p1.lastX) / 2,
		Y:    (p0.lastY + p1.lastY) / 2,
	})
}

// --- Triggers ---

// TriggerReset resets the model as a double-tap would and fires OnReset.
func (c *Controller) TriggerReset() {
	c.triggerReset(GestureEvent{Type: GestureDoubleTap, PointerID: -1, Time: c.now})
}

// TriggerCapture fires the capture trigger as a long-press would.
func (c *Controller) TriggerCapture() {
	c.triggerCapture(GestureEvent{Type: GestureLongPress, PointerID: -1, Time: c.now})
}

func (c *Controller) triggerReset(ev GestureEvent) {
	if c.cfg.ResetDuration > 0 {
		c.model.ResetAnimated(float32(c.cfg.ResetDuration.Seconds()), nil)
	} else {
		c.model.Reset()
	}
	c.emit(ev)
	c.reset.fire(ev)
}

func (c *Controller) triggerCapture(ev GestureEvent) {
	c.emit(ev)
	c.capture.fire(ev)
}

// emit stamps the event and fans it out to handlers and the store.
func (c *Controller) emit(ev GestureEvent) {
	if ev.Time == 0 {
		ev.Time = c.now
	}
	ev.Zoom = c.model.Zoom()
	c.debugf("%s pointer=%d at (%.1f, %.1f) zoom=%.3f", ev.Type, ev.PointerID, ev.X, ev.Y, ev.Zoom)
	c.gesture.fire(ev)
	if c.store != nil {
		c.store.EmitEvent(ev)
	}
}
