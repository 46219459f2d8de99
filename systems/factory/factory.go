package factory

import (
	"github.com/automoto/photowall/archetypes"
	"github.com/automoto/photowall/assets"
	"github.com/automoto/photowall/components"
	"github.com/automoto/photowall/shared/viewmath"
	"github.com/automoto/photowall/streaming"
	"github.com/automoto/photowall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func CreateViewport(ecs *ecs.ECS, screenW, screenH float64, bounds viewmath.Bounds) *donburi.Entry {
	entry := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(entry, components.NewViewportData(screenW, screenH, bounds))
	return entry
}

func CreateStream(ecs *ecs.ECS, mgr *streaming.Manager) *donburi.Entry {
	entry := archetypes.Stream.Spawn(ecs)
	components.Stream.SetValue(entry, components.StreamData{Manager: mgr})
	return entry
}

// CreatePhoto spawns a photo entity at its catalog placement and registers
// its box in the resolv space for click hit-testing.
func CreatePhoto(ecs *ecs.ECS, p assets.Photo) *donburi.Entry {
	entry := archetypes.Photo.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvPhoto)
	obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Photo.SetValue(entry, components.PhotoData{ID: p.ID})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
