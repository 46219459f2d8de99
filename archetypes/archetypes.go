package archetypes

import (
	"github.com/automoto/photowall/components"
	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Photo = newArchetype(
		tags.Photo,
		components.Photo,
		components.Object,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
	Space = newArchetype(
		components.Space,
	)
	Stream = newArchetype(
		components.Stream,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
