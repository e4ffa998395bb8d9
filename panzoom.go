package panzoom

import (
	"math"
	"time"
)

const (
	maxPointers  = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointer = 0
)

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// PointerSource distinguishes mouse input from touch contacts.
type PointerSource uint8

const (
	SourceMouse PointerSource = iota // mouse or pen, drives drag only
	SourceTouch                      // finger contact, drives every recognizer
)

// PointerAction identifies the kind of raw input event.
type PointerAction uint8

const (
	PointerDown   PointerAction = iota // contact pressed
	PointerMove                        // contact moved (pressed or hovering)
	PointerUp                          // contact released
	PointerLeave                       // contact left the interactive surface
	PointerCancel                      // input stream cancelled (capture lost)
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one raw input sample fed into a Controller. Time is the
// monotonic timestamp of the sample, measured from any fixed origin; events
// must be delivered in non-decreasing Time order.
type PointerEvent struct {
	Action    PointerAction
	PointerID int
	Source    PointerSource
	X, Y      float64
	Time      time.Duration
}

// GestureType identifies a recognized gesture.
type GestureType uint8

const (
	GesturePanStart   GestureType = iota // single contact started dragging
	GesturePan                           // drag moved; DeltaX/DeltaY set
	GesturePanEnd                        // drag ended
	GesturePinchStart                    // second contact arrived; baseline taken
	GesturePinch                         // two contacts moved; Scale and Zoom set
	GesturePinchEnd                      // dropped below two contacts
	GestureDoubleTap                     // two quick taps; viewport reset
	GestureLongPress                     // stationary press held; capture requested
)

func (g GestureType) String() string {
	switch g {
	case GesturePanStart:
		return "pan-start"
	case GesturePan:
		return "pan"
	case GesturePanEnd:
		return "pan-end"
	case GesturePinchStart:
		return "pinch-start"
	case GesturePinch:
		return "pinch"
	case GesturePinchEnd:
		return "pinch-end"
	case GestureDoubleTap:
		return "double-tap"
	case GestureLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// GestureEvent carries the data for a recognized gesture.
type GestureEvent struct {
	Type      GestureType
	PointerID int
	X, Y      float64
	// Pan fields (valid for GesturePan)
	DeltaX, DeltaY float64
	// Pinch fields (valid for GesturePinch)
	Scale float64
	// Zoom is the model zoom after the gesture was applied.
	Zoom float64
	Time time.Duration
}

// EventStore receives every recognized gesture. Set one on a Controller to
// forward gestures into another event system (see the ecs subpackage).
type EventStore interface {
	EmitEvent(event GestureEvent)
}

func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
