package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PointerData carries touch bookkeeping between frames for the input system,
// plus the photo focused by the last click.
type PointerData struct {
	PrevTouchHeld int            // touches active last frame
	TouchDragID   ebiten.TouchID // touch driving the current one-finger drag
	LastTouchX    float64        // last one-finger touch position, for click
	LastTouchY    float64

	FocusedID string // photo id picked by the last click, "" when none
}

var Pointer = donburi.NewComponentType[PointerData]()
