package systems

import (
	"github.com/automoto/photowall/components"
	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/shared/viewmath"
	"github.com/automoto/photowall/streaming"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Culling skips the matrix setup and draw call for photos currently
// off-screen. A small padding prevents pop-in at the edges.
const cullPadding = 32.0

// DrawPhotos renders every photo box: the faded-in image when loaded, a frame
// placeholder otherwise.
func DrawPhotos(e *ecs.ECS, screen *ebiten.Image) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	view := vp.WorldRect().Expand(cullPadding / vp.Zoom)

	components.Photo.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		box := viewmath.NewRect(o.X, o.Y, o.W, o.H)
		if !viewmath.Overlaps(view, box) {
			return
		}

		photo := components.Photo.Get(entry)
		sx, sy := vp.WorldToScreen(o.X, o.Y)

		if photo.Image == nil {
			drawPlaceholder(screen, sx, sy, o.W*vp.Zoom, o.H*vp.Zoom, photo.State)
			return
		}

		iw := photo.Image.Bounds().Dx()
		ih := photo.Image.Bounds().Dy()
		if iw == 0 || ih == 0 {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(o.W/float64(iw)*vp.Zoom, o.H/float64(ih)*vp.Zoom)
		drawOp.GeoM.Translate(sx, sy)
		drawOp.ColorScale.ScaleAlpha(float32(photo.Opacity))
		screen.DrawImage(photo.Image, drawOp)

		if cfg.Debug.DrawBoxes {
			vector.StrokeRect(screen, float32(sx), float32(sy),
				float32(o.W*vp.Zoom), float32(o.H*vp.Zoom), 1, cfg.LightBlue, false)
		}
	})
}

func drawPlaceholder(screen *ebiten.Image, sx, sy, w, h float64, state streaming.LoadState) {
	clr := cfg.DarkGray
	if state == streaming.Failed {
		clr = cfg.LightRed
	}
	vector.StrokeRect(screen, float32(sx), float32(sy), float32(w), float32(h), 1, clr, false)
}
