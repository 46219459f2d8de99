package components

import (
	"github.com/automoto/photowall/streaming"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PhotoData mirrors the streaming manager's per-photo output for the render
// layer: the manager pushes (state, opacity, image) here every tick and the
// draw pass only reads. Placement lives in the entity's Object component.
type PhotoData struct {
	ID      string
	State   streaming.LoadState
	Opacity float64
	Image   *ebiten.Image
}

var Photo = donburi.NewComponentType[PhotoData]()
