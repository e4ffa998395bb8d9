package panzoom

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// ViewportTransform is the published view state: a uniform zoom about the
// content center followed by a translation in container pixels.
type ViewportTransform struct {
	Zoom float64
	X, Y float64
}

// IdentityTransform is the transform after Reset.
var IdentityTransform = ViewportTransform{Zoom: 1}

// IsIdentity reports whether t leaves the content untouched.
func (t ViewportTransform) IsIdentity() bool {
	return t == IdentityTransform
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] that maps content
// coordinates to container coordinates, scaling about pivot.
//
//	Translate(-pivot) -> Scale(zoom) -> Translate(pivot + (X, Y))
func (t ViewportTransform) Matrix(pivot Vec2) [6]float64 {
	z := t.Zoom
	return [6]float64{
		z, 0, 0, z,
		pivot.X - z*pivot.X + t.X,
		pivot.Y - z*pivot.Y + t.Y,
	}
}

// Apply maps a content-space point to container space.
func (t ViewportTransform) Apply(pivot Vec2, x, y float64) (float64, float64) {
	return transformPoint(t.Matrix(pivot), x, y)
}

// Invert maps a container-space point back to content space. A zero zoom
// yields the point unchanged.
func (t ViewportTransform) Invert(pivot Vec2, x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix(pivot)), x, y)
}

// ScaledRect returns where content lands in container space.
func (t ViewportTransform) ScaledRect(content Rect) Rect {
	m := t.Matrix(content.Center())
	x0, y0 := transformPoint(m, content.X, content.Y)
	return Rect{X: x0, Y: y0, Width: content.Width * t.Zoom, Height: content.Height * t.Zoom}
}

// GeoM returns the transform as an ebiten.GeoM scaling about pivot, ready to
// concatenate after an image's own placement matrix.
func (t ViewportTransform) GeoM(pivot Vec2) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-pivot.X, -pivot.Y)
	g.Scale(t.Zoom, t.Zoom)
	g.Translate(pivot.X+t.X, pivot.Y+t.Y)
	return g
}

// CSS returns the transform as a CSS transform value for an element whose
// transform-origin is its center. The translation is divided by the zoom
// because CSS applies translate after scale.
func (t ViewportTransform) CSS() string {
	z := t.Zoom
	if z == 0 {
		z = 1
	}
	return fmt.Sprintf("scale(%s) translate(%spx, %spx)", fmtFloat(t.Zoom), fmtFloat(t.X/z), fmtFloat(t.Y/z))
}

func (t ViewportTransform) String() string {
	return fmt.Sprintf("zoom=%.3f translate=(%.1f, %.1f)", t.Zoom, t.X, t.Y)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
