package archetypes

import (
	"github.com/automoto/actorcore/components"
	"github.com/automoto/actorcore/tags"
	"github.com/yohamta/donburi"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Solid,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
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

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
