package panzoom

// BoundsProvider supplies the live geometry the Model clamps against.
// Both rectangles must be in the same coordinate space. ContentRect is the
// untransformed layout box of the content; the Model scales it about its
// center and then translates it. Implementations must report current layout
// on every call since the window can be resized between gestures.
type BoundsProvider interface {
	ContainerRect() Rect
	ContentRect() Rect
}

// StaticBounds is a BoundsProvider with fixed rectangles. Useful for tests
// and for content that never changes size.
type StaticBounds struct {
	Container Rect
	Content   Rect
}

// ContainerRect returns b.Container.
func (b StaticBounds) ContainerRect() Rect { return b.Container }

// ContentRect returns b.Content.
func (b StaticBounds) ContentRect() Rect { return b.Content }

// FillBounds returns StaticBounds whose content box fills the container,
// the common layout for an overlay wrapper.
func FillBounds(container Rect) StaticBounds {
	return StaticBounds{Container: container, Content: container}
}

// BoundsFunc adapts two functions to a BoundsProvider.
type BoundsFunc struct {
	Container func() Rect
	Content   func() Rect
}

// ContainerRect calls f.Container, or returns an empty Rect when unset.
func (f BoundsFunc) ContainerRect() Rect {
	if f.Container == nil {
		return Rect{}
	}
	return f.Container()
}

// ContentRect calls f.Content, or returns an empty Rect when unset.
func (f BoundsFunc) ContentRect() Rect {
	if f.Content == nil {
		return Rect{}
	}
	return f.Content()
}

// axis is one dimension of the container and content boxes.
type axis struct {
	containerMin, containerSize float64
	contentMin, contentSize     float64
}

func horizontal(container, content Rect) axis {
	return axis{container.X, container.Width, content.X, content.Width}
}

func vertical(container, content Rect) axis {
	return axis{container.Y, container.Height, content.Y, content.Height}
}

// degenerate reports whether either box has zero extent on this axis.
func (a axis) degenerate() bool {
	return a.containerSize <= 0 || a.contentSize <= 0
}

// centering is the translation that puts the content center on the
// container center.
func (a axis) centering() float64 {
	return (a.containerMin + a.containerSize/2) - (a.contentMin + a.contentSize/2)
}

// fits reports whether the scaled content is no larger than the container.
func (a axis) fits(zoom float64) bool {
	return a.contentSize*zoom <= a.containerSize
}

// limits returns the translation range that keeps the scaled content
// covering the container. lo flushes the trailing edges, hi the leading
// edges. Only meaningful when fits(zoom) is false.
func (a axis) limits(zoom float64) (lo, hi float64) {
	c := a.centering()
	slack := (a.contentSize*zoom - a.containerSize) / 2
	return c - slack, c + slack
}

// clampZoomed returns the translation after a zoom change: centered when
// the content fits, snapped to an edge when a gap would show, else t.
func (a axis) clampZoomed(t, zoom float64) float64 {
	if a.degenerate() {
		return t
	}
	if a.fits(zoom) {
		return a.centering()
	}
	lo, hi := a.limits(zoom)
	if t > hi {
		return hi
	}
	if t < lo {
		return lo
	}
	return t
}

// pan adds d to t unless doing so would pull the near edge past the
// container edge, in which case t stops exactly at the limit.
func (a axis) pan(t, d, zoom float64) float64 {
	if a.degenerate() {
		return t
	}
	if a.fits(zoom) {
		return a.centering()
	}
	lo, hi := a.limits(zoom)
	switch {
	case d > 0 && t+d >= hi:
		return hi
	case d < 0 && t+d <= lo:
		return lo
	default:
		return t + d
	}
}
