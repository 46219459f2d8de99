package components

import (
	"math"

	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/shared/viewmath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ViewportData is the shared camera state: world-space pan center, zoom and
// the momentum carried between ticks. The input system writes it through the
// methods below; everything else only reads it.
type ViewportData struct {
	Pan      dmath.Vec2
	Zoom     float64
	MinZoom  float64
	MaxZoom  float64
	Bounds   viewmath.Bounds
	Velocity dmath.Vec2

	ScreenW float64
	ScreenH float64

	// Drag state
	dragging bool
	lastX    float64
	lastY    float64
	moved    float64 // accumulated Manhattan movement since BeginDrag
	// Pinch state
	pinching  bool
	pinchDist float64
}

var Viewport = donburi.NewComponentType[ViewportData]()

// NewViewportData builds a viewport centered in bounds with a sane zoom.
func NewViewportData(screenW, screenH float64, bounds viewmath.Bounds) ViewportData {
	return ViewportData{
		Pan: dmath.Vec2{
			X: (bounds.MinX + bounds.MaxX) / 2,
			Y: (bounds.MinY + bounds.MaxY) / 2,
		},
		Zoom:    1.0,
		MinZoom: cfg.Viewport.MinZoom,
		MaxZoom: cfg.Viewport.MaxZoom,
		Bounds:  bounds,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// BeginDrag records the drag origin, resets the click/drag movement
// accumulator and kills any momentum still in flight.
func (v *ViewportData) BeginDrag(sx, sy float64) {
	v.dragging = true
	v.lastX, v.lastY = sx, sy
	v.moved = 0
	v.Velocity = dmath.Vec2{}
}

// DragMove pans by the negated screen delta (drag right moves the view left),
// scaled by 1/zoom so the drag covers the same screen distance at any zoom.
// The delta is kept as velocity so momentum continues after release.
func (v *ViewportData) DragMove(sx, sy float64) {
	if !v.dragging {
		return
	}
	dx, dy := sx-v.lastX, sy-v.lastY
	v.lastX, v.lastY = sx, sy
	v.moved += math.Abs(dx) + math.Abs(dy)

	s := cfg.Viewport.PanSpeed / v.Zoom
	v.Pan.X -= dx * s
	v.Pan.Y -= dy * s
	v.Velocity.X = -dx * s
	v.Velocity.Y = -dy * s
}

// EndDrag releases the drag; the last move's velocity persists for momentum.
func (v *ViewportData) EndDrag() {
	v.dragging = false
}

// Dragging reports whether a drag is active.
func (v *ViewportData) Dragging() bool {
	return v.dragging
}

// WasClick reports whether the pointer moved less than the click threshold
// since BeginDrag (Manhattan distance in screen px).
func (v *ViewportData) WasClick() bool {
	return v.moved < cfg.Viewport.ClickThreshold
}

// Wheel zooms by 1 + (-deltaY * ZoomSpeed), anchored at the cursor: the world
// point under (sx, sy) stays fixed across the zoom. The zoom clamp is applied
// before the anchor correction so the anchor holds at the zoom limits too.
func (v *ViewportData) Wheel(sx, sy, deltaY float64) {
	v.zoomAnchored(sx, sy, 1+(-deltaY)*cfg.Viewport.ZoomSpeed)
}

// Pinch drives zoom from the change in distance between two touch points,
// anchored at the pinch midpoint. The first call of a gesture only records
// the starting distance.
func (v *ViewportData) Pinch(x1, y1, x2, y2 float64) {
	d := math.Hypot(x2-x1, y2-y1)
	if !v.pinching {
		v.pinching = true
		v.pinchDist = d
		return
	}
	if v.pinchDist <= 0 || d <= 0 {
		v.pinchDist = d
		return
	}
	factor := d / v.pinchDist
	v.pinchDist = d
	v.zoomAnchored((x1+x2)/2, (y1+y2)/2, factor)
}

// EndPinch ends the pinch gesture.
func (v *ViewportData) EndPinch() {
	v.pinching = false
}

// Pinching reports whether a pinch gesture is active.
func (v *ViewportData) Pinching() bool {
	return v.pinching
}

func (v *ViewportData) zoomAnchored(sx, sy, factor float64) {
	wx, wy := v.ScreenToWorld(sx, sy)
	v.Zoom = viewmath.Clamp(v.Zoom*factor, v.MinZoom, v.MaxZoom)
	ax, ay := v.ScreenToWorld(sx, sy)
	v.Pan.X += wx - ax
	v.Pan.Y += wy - ay
}

// Step runs once per tick: applies and decays momentum (suppressed while a
// drag is active), then clamps pan and zoom so every reader this tick sees an
// in-bounds camera.
func (v *ViewportData) Step() {
	if !v.dragging {
		v.Pan.X += v.Velocity.X
		v.Pan.Y += v.Velocity.Y
		v.Velocity.X *= cfg.Viewport.Damping
		v.Velocity.Y *= cfg.Viewport.Damping
		if math.Hypot(v.Velocity.X, v.Velocity.Y) < cfg.Viewport.RestVelocity {
			v.Velocity = dmath.Vec2{}
		}
	}

	// Defensive: a degenerate zoom or NaN pan must clamp, never propagate.
	if math.IsNaN(v.Zoom) || v.Zoom <= 0 {
		v.Zoom = v.MinZoom
	}
	v.Zoom = viewmath.Clamp(v.Zoom, v.MinZoom, v.MaxZoom)
	if math.IsNaN(v.Pan.X) || math.IsNaN(v.Pan.Y) {
		v.Pan.X = (v.Bounds.MinX + v.Bounds.MaxX) / 2
		v.Pan.Y = (v.Bounds.MinY + v.Bounds.MaxY) / 2
		v.Velocity = dmath.Vec2{}
	}
	v.Pan.X, v.Pan.Y = v.Bounds.ClampPoint(v.Pan.X, v.Pan.Y)
}

// ScreenToWorld maps a screen point to world coordinates.
func (v *ViewportData) ScreenToWorld(sx, sy float64) (float64, float64) {
	z := v.Zoom
	if z <= 0 {
		z = v.MinZoom
	}
	return v.Pan.X + (sx-v.ScreenW/2)/z, v.Pan.Y + (sy-v.ScreenH/2)/z
}

// WorldToScreen maps a world point to screen coordinates.
func (v *ViewportData) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx-v.Pan.X)*v.Zoom + v.ScreenW/2, (wy-v.Pan.Y)*v.Zoom + v.ScreenH/2
}

// WorldRect is the world-space rectangle the viewport currently shows,
// derived from pan, zoom and the screen aspect.
func (v *ViewportData) WorldRect() viewmath.Rect {
	z := v.Zoom
	if z <= 0 {
		z = v.MinZoom
	}
	return viewmath.CenteredRect(v.Pan.X, v.Pan.Y, v.ScreenW/(2*z), v.ScreenH/(2*z))
}
