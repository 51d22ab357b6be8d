package archetypes

import (
	"github.com/automoto/scrollctl/components"
	cfg "github.com/automoto/scrollctl/config"
	"github.com/automoto/scrollctl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ScrollView = newArchetype(
		tags.ScrollView,
		components.ScrollView,
	)
	Settings = newArchetype(
		components.Settings,
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
	return ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
}
