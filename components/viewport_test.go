package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/shared/viewmath"
)

func testViewport() ViewportData {
	return NewViewportData(800, 600, viewmath.Bounds{MinX: 0, MaxX: 2000, MinY: 0, MaxY: 2000})
}

func TestWheelAnchorsCursor(t *testing.T) {
	cursors := []struct{ x, y float64 }{
		{400, 300}, // center
		{0, 0},     // corner
		{123, 456},
		{799, 10},
	}
	for _, c := range cursors {
		vp := testViewport()
		bx, by := vp.ScreenToWorld(c.x, c.y)

		vp.Wheel(c.x, c.y, -1) // zoom in

		ax, ay := vp.ScreenToWorld(c.x, c.y)
		if math.Abs(ax-bx) > 1e-9 || math.Abs(ay-by) > 1e-9 {
			t.Errorf("cursor (%v,%v): world point moved from (%v,%v) to (%v,%v)",
				c.x, c.y, bx, by, ax, ay)
		}
	}
}

func TestWheelAnchorHoldsAtZoomLimit(t *testing.T) {
	vp := testViewport()
	vp.Zoom = vp.MaxZoom

	bx, by := vp.ScreenToWorld(200, 150)
	vp.Wheel(200, 150, -1) // already at max: zoom must not change, nor pan
	ax, ay := vp.ScreenToWorld(200, 150)

	if vp.Zoom != vp.MaxZoom {
		t.Errorf("zoom = %v, want clamped at %v", vp.Zoom, vp.MaxZoom)
	}
	if math.Abs(ax-bx) > 1e-9 || math.Abs(ay-by) > 1e-9 {
		t.Error("anchor correction must use the clamped zoom")
	}
}

func TestStepClampsToBounds(t *testing.T) {
	vp := testViewport()
	vp.Pan.X = 1990
	vp.Pan.Y = 10
	vp.Velocity.X = 500
	vp.Velocity.Y = -500
	vp.Zoom = 10 // above MaxZoom

	for i := 0; i < 5; i++ {
		vp.Step()
		if vp.Pan.X < vp.Bounds.MinX || vp.Pan.X > vp.Bounds.MaxX {
			t.Fatalf("tick %d: pan.X = %v outside bounds", i, vp.Pan.X)
		}
		if vp.Pan.Y < vp.Bounds.MinY || vp.Pan.Y > vp.Bounds.MaxY {
			t.Fatalf("tick %d: pan.Y = %v outside bounds", i, vp.Pan.Y)
		}
		if vp.Zoom < vp.MinZoom || vp.Zoom > vp.MaxZoom {
			t.Fatalf("tick %d: zoom = %v outside limits", i, vp.Zoom)
		}
	}
}

func TestMomentumDecay(t *testing.T) {
	vp := testViewport()
	vp.BeginDrag(400, 300)
	vp.DragMove(390, 295) // velocity (10, 5) at zoom 1
	vp.EndDrag()

	v0 := vp.Velocity.X
	if v0 != 10 {
		t.Fatalf("initial velocity.X = %v, want 10", v0)
	}

	damping := cfg.Viewport.Damping
	for n := 1; n <= 10; n++ {
		vp.Step()
		want := v0 * math.Pow(damping, float64(n))
		if want < cfg.Viewport.RestVelocity {
			break
		}
		if math.Abs(vp.Velocity.X-want) > 1e-9 {
			t.Fatalf("after %d ticks velocity.X = %v, want %v", n, vp.Velocity.X, want)
		}
		if math.Abs(vp.Velocity.X) > math.Abs(v0) {
			t.Fatal("momentum must never exceed the starting velocity")
		}
	}
}

func TestMomentumSuppressedWhileDragging(t *testing.T) {
	vp := testViewport()
	vp.BeginDrag(400, 300)
	vp.DragMove(390, 300)

	panX := vp.Pan.X
	vp.Step() // still dragging: velocity must not be applied
	if vp.Pan.X != panX {
		t.Errorf("pan.X moved by momentum during drag: %v -> %v", panX, vp.Pan.X)
	}
}

func TestClickVsDrag(t *testing.T) {
	vp := testViewport()
	vp.BeginDrag(100, 100)
	vp.DragMove(101, 101) // 2 units of Manhattan movement
	vp.EndDrag()
	if !vp.WasClick() {
		t.Error("2 units of movement should report a click")
	}

	vp.BeginDrag(100, 100)
	vp.DragMove(103, 103) // 6 units, over the 5 unit threshold
	vp.EndDrag()
	if vp.WasClick() {
		t.Error("6 units of movement should not report a click")
	}
}

func TestDragPanScalesInverseZoom(t *testing.T) {
	drag := func(zoom float64) float64 {
		vp := testViewport()
		vp.Zoom = zoom
		start := vp.Pan.X
		vp.BeginDrag(400, 300)
		vp.DragMove(410, 300)
		return vp.Pan.X - start
	}

	at1 := drag(1)
	at2 := drag(2)
	if math.Abs(at1-2*at2) > 1e-9 {
		t.Errorf("pan delta at zoom 1 (%v) should be twice the delta at zoom 2 (%v)", at1, at2)
	}
	if at1 >= 0 {
		t.Error("dragging right must move the view left")
	}
}

func TestPinchAnchorsMidpoint(t *testing.T) {
	vp := testViewport()
	vp.Pinch(300, 300, 500, 300) // records starting distance
	bx, by := vp.ScreenToWorld(400, 300)

	vp.Pinch(250, 300, 550, 300) // fingers spread: zoom in

	ax, ay := vp.ScreenToWorld(400, 300)
	if vp.Zoom <= 1 {
		t.Fatalf("spreading fingers should zoom in, zoom = %v", vp.Zoom)
	}
	if math.Abs(ax-bx) > 1e-9 || math.Abs(ay-by) > 1e-9 {
		t.Error("pinch midpoint world point must stay fixed")
	}
}

func TestStepRecoversFromNaN(t *testing.T) {
	vp := testViewport()
	vp.Pan.X = math.NaN()
	vp.Zoom = math.NaN()

	vp.Step()

	if math.IsNaN(vp.Pan.X) || math.IsNaN(vp.Pan.Y) || math.IsNaN(vp.Zoom) {
		t.Error("Step must clamp away NaN state")
	}
	if vp.Zoom < vp.MinZoom || vp.Zoom > vp.MaxZoom {
		t.Errorf("recovered zoom %v outside limits", vp.Zoom)
	}
}
