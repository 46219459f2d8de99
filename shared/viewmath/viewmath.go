// Package viewmath holds the pure world-space math shared by the viewport
// controller and the streaming manager: axis-aligned rectangles, margin
// expansion and the visibility overlap test.
package viewmath

// Rect is an axis-aligned world-space rectangle. X,Y is the min corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a rect from a min corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect builds a rect from a center point and half extents.
func CenteredRect(cx, cy, halfW, halfH float64) Rect {
	return Rect{X: cx - halfW, Y: cy - halfH, W: halfW * 2, H: halfH * 2}
}

// Expand grows the rect by m on all four sides.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps is the separating-axis test for two AABBs. A separation on either
// axis means no overlap; rects that merely touch do not overlap.
func Overlaps(a, b Rect) bool {
	if a.X+a.W <= b.X || b.X+b.W <= a.X {
		return false
	}
	if a.Y+a.H <= b.Y || b.Y+b.H <= a.Y {
		return false
	}
	return true
}

// Visible reports whether box, expanded by margin on all sides, overlaps the
// viewport rect. Callers must pass the post-clamp viewport rect.
func Visible(view, box Rect, margin float64) bool {
	return Overlaps(view, box.Expand(margin))
}

// Bounds is the world-space clamp region for the camera pan position.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// ClampPoint clamps a point into the bounds.
func (b Bounds) ClampPoint(x, y float64) (float64, float64) {
	return Clamp(x, b.MinX, b.MaxX), Clamp(y, b.MinY, b.MaxY)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
