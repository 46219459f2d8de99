package systems

import (
	"github.com/automoto/photowall/components"
	"github.com/automoto/photowall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdatePointer polls mouse, wheel and touch state and drives the viewport
// controller. Must run BEFORE UpdateViewport in the system order.
func UpdatePointer(e *ecs.ECS) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	ptr := getOrCreatePointer(e)

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	switch {
	case len(touchIDs) >= 2:
		// Pinch takes precedence over any drag.
		if vp.Dragging() {
			vp.EndDrag()
		}
		x1, y1 := ebiten.TouchPosition(touchIDs[0])
		x2, y2 := ebiten.TouchPosition(touchIDs[1])
		vp.Pinch(float64(x1), float64(y1), float64(x2), float64(y2))

	case len(touchIDs) == 1:
		if vp.Pinching() {
			vp.EndPinch()
		}
		x, y := ebiten.TouchPosition(touchIDs[0])
		sx, sy := float64(x), float64(y)
		if ptr.PrevTouchHeld != 1 || touchIDs[0] != ptr.TouchDragID {
			vp.BeginDrag(sx, sy)
			ptr.TouchDragID = touchIDs[0]
		} else {
			vp.DragMove(sx, sy)
		}
		ptr.LastTouchX, ptr.LastTouchY = sx, sy

	default:
		if vp.Pinching() {
			vp.EndPinch()
		}
		if ptr.PrevTouchHeld == 1 && vp.Dragging() {
			vp.EndDrag()
			if vp.WasClick() {
				focusAt(e, ptr, vp, ptr.LastTouchX, ptr.LastTouchY)
			}
		}
		updateMouse(e, vp, ptr)
	}

	ptr.PrevTouchHeld = len(touchIDs)
}

func updateMouse(e *ecs.ECS, vp *components.ViewportData, ptr *components.PointerData) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		vp.BeginDrag(sx, sy)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		vp.DragMove(sx, sy)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		vp.EndDrag()
		if vp.WasClick() {
			focusAt(e, ptr, vp, sx, sy)
		}
	}

	// Scroll up zooms in, anchored at the cursor.
	if _, wy := ebiten.Wheel(); wy != 0 {
		vp.Wheel(sx, sy, -wy)
	}
}

// focusAt hit-tests the clicked world point through the photo space: a probe
// object collects the cell residents around the point, and the shape test
// makes the pick exact. The first catalog hit wins when photos overlap.
func focusAt(e *ecs.ECS, ptr *components.PointerData, vp *components.ViewportData, sx, sy float64) {
	ptr.FocusedID = ""
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	wx, wy := vp.ScreenToWorld(sx, sy)
	probe := resolv.NewObject(wx, wy, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvPhoto)
	if check == nil {
		return
	}
	point := vector.Vector{wx, wy}
	for _, obj := range check.Objects {
		shape, ok := obj.Shape.(*resolv.ConvexPolygon)
		if !ok || !shape.PointInside(point) {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			ptr.FocusedID = components.Photo.Get(entry).ID
			return
		}
	}
}

// getOrCreatePointer returns the singleton Pointer component, creating if needed
func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}
