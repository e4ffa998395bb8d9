package panzoom

import "time"

// syntheticPointerEvent is a queued pointer event without a timestamp.
// The timestamp is assigned when the event is consumed, so scripted input
// runs on the same clock as real input.
type syntheticPointerEvent struct {
	action    PointerAction
	pointerID int
	x, y      float64
}

func sourceFor(pointerID int) PointerSource {
	if pointerID == mousePointer {
		return SourceMouse
	}
	return SourceTouch
}

func (c *Controller) inject(action PointerAction, pointerID int, x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		action: action, pointerID: pointerID, x: x, y: y,
	})
}

// InjectPress queues a press for pointerID (0 = mouse, 1-9 = touch). Each
// queued event is consumed on a separate frame.
func (c *Controller) InjectPress(pointerID int, x, y float64) {
	c.inject(PointerDown, pointerID, x, y)
}

// InjectMove queues a move for pointerID.
func (c *Controller) InjectMove(pointerID int, x, y float64) {
	c.inject(PointerMove, pointerID, x, y)
}

// InjectRelease queues a release for pointerID.
func (c *Controller) InjectRelease(pointerID int, x, y float64) {
	c.inject(PointerUp, pointerID, x, y)
}

// InjectCancel queues an input cancellation.
func (c *Controller) InjectCancel() {
	c.inject(PointerCancel, 0, 0, 0)
}

// InjectTap queues a touch press and release at (x, y). Consumes two frames.
func (c *Controller) InjectTap(x, y float64) {
	c.InjectPress(1, x, y)
	c.InjectRelease(1, x, y)
}

// InjectDrag queues a mouse drag: press at (fromX, fromY), frames-2
// linearly interpolated moves ending at (toX, toY), and a release there.
// The total sequence consumes frames frames. Minimum frames is 3.
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	c.InjectPress(mousePointer, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.InjectMove(mousePointer, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(mousePointer, toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger spacing goes from fromDist to toDist over steps moves.
// Both touch pointers 1 and 2 are pressed, moved and released.
func (c *Controller) InjectPinch(cx, cy, fromDist, toDist float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	half := fromDist / 2
	c.InjectPress(1, cx-half, cy)
	c.InjectPress(2, cx+half, cy)
	for i := 1; i <= steps; i++ {
		d := fromDist + (toDist-fromDist)*float64(i)/float64(steps)
		c.InjectMove(1, cx-d/2, cy)
		c.InjectMove(2, cx+d/2, cy)
	}
	half = toDist / 2
	c.InjectRelease(2, cx+half, cy)
	c.InjectRelease(1, cx-half, cy)
}

// PendingInjected returns the number of queued synthetic events.
func (c *Controller) PendingInjected() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one queued event and handles it at time now.
// Returns true if an event was consumed (real input should be skipped).
func (c *Controller) processInjectedInput(now time.Duration) bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.HandleEvent(PointerEvent{
		Action:    evt.action,
		PointerID: evt.pointerID,
		Source:    sourceFor(evt.pointerID),
		X:         evt.x,
		Y:         evt.y,
		Time:      now,
	})
	return true
}
