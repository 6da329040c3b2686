package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Controller,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
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
