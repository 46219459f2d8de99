package systems

import (
	"github.com/automoto/photowall/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewport advances the inertial camera one tick: momentum decay plus
// pan/zoom clamping. Runs after UpdatePointer so every later system this tick
// reads an in-bounds camera.
func UpdateViewport(e *ecs.ECS) {
	if entry, ok := components.Viewport.First(e.World); ok {
		components.Viewport.Get(entry).Step()
	}
}
