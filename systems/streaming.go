package systems

import (
	"github.com/automoto/photowall/assets"
	"github.com/automoto/photowall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ebiten runs a fixed 60 TPS.
const tickSeconds = 1.0 / 60.0

// UpdateStreaming runs one streaming step against a frozen snapshot of the
// post-clamp viewport, then pushes each photo's (state, opacity, image) into
// its component for the draw pass. One-way: the manager never reads back.
func UpdateStreaming(e *ecs.ECS) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	streamEntry, ok := components.Stream.First(e.World)
	if !ok {
		return
	}
	mgr := components.Stream.Get(streamEntry).Manager

	view := components.Viewport.Get(vpEntry).WorldRect()
	mgr.Tick(view, tickSeconds)

	components.Photo.Each(e.World, func(entry *donburi.Entry) {
		photo := components.Photo.Get(entry)
		v, ok := mgr.ViewOf(photo.ID)
		if !ok {
			return
		}
		photo.State = v.State
		photo.Opacity = v.Opacity
		photo.Image = nil
		if h, ok := v.Handle.(*assets.ImageHandle); ok {
			photo.Image = h.Image
		}
	})
}
