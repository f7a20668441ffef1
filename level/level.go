package level

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/actorcore/archetypes"
	"github.com/automoto/actorcore/assets"
	"github.com/automoto/actorcore/components"
	"github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/entities"
	"github.com/automoto/actorcore/logger"
	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/automoto/actorcore/specs"
	"github.com/automoto/actorcore/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrUnknownSpec is returned when a spawn names a spec that was not loaded.
var ErrUnknownSpec = errors.New("level: unknown actor spec")

// Level owns the entity world and the broad-phase space for one map.
type Level struct {
	World  donburi.World
	Space  *resolv.Space
	Width  int
	Height int

	// actors in step order
	actors []*donburi.Entry
	log    *logrus.Entry
}

// New creates an empty level of the given pixel size.
func New(width, height int) *Level {
	w := donburi.NewWorld()

	space := resolv.NewSpace(width, height, config.Physics.CellSize, config.Physics.CellSize)
	spaceEntry := archetypes.Space.Spawn(w)
	components.Space.Set(spaceEntry, space)

	return &Level{
		World:  w,
		Space:  space,
		Width:  width,
		Height: height,
		log:    logger.For("level"),
	}
}

// Build adds every solid in data to the level.
func (l *Level) Build(data *Data) error {
	for _, r := range data.Solids {
		s, err := r.NewSolid()
		if err != nil {
			return err
		}
		l.AddSolid(s)
	}
	l.log.WithField("solids", len(data.Solids)).Debug("built solids")
	return nil
}

// Populate builds one actor per spawn in data from the matching spec.
// On error the actors created so far stay in the level.
func (l *Level) Populate(data *Data, catalog map[string]*specs.ActorSpec, provider assets.Provider) error {
	for _, sp := range data.Spawns {
		spec, ok := catalog[sp.Spec]
		if !ok {
			return fmt.Errorf("%w: %q for spawn %s", ErrUnknownSpec, sp.Spec, sp.ID)
		}
		actor, err := specs.BuildActor(spec, sp.ID, dmath.Vec2{X: sp.X, Y: sp.Y}, provider)
		if err != nil {
			return fmt.Errorf("level: spawn %s: %w", sp.ID, err)
		}
		l.AddActor(actor)
	}
	return nil
}

// AddSolid registers s with the world and the broad phase.
func (l *Level) AddSolid(s *entities.Solid) *donburi.Entry {
	var extra []donburi.IComponentType
	objTags := []string{tags.ResolvSolid}
	if slope, ok := s.Slope(); ok {
		extra = append(extra, tags.Ramp)
		objTags = append(objTags, tags.ResolvRamp)
		l.log.WithField("start", slope.Start).Trace("ramp solid")
	}
	if _, ok := s.OneWay(); ok {
		objTags = append(objTags, tags.ResolvOneWay)
	}

	entry := archetypes.Solid.Spawn(l.World, extra...)
	components.Solid.SetValue(entry, components.SolidData{Solid: s})
	l.attachObject(entry, s.CollisionBox(), objTags...)
	return entry
}

// AddActor registers a with the world and the broad phase. Actors step in
// the order they were added.
func (l *Level) AddActor(a *entities.Actor) *donburi.Entry {
	entry := archetypes.Actor.Spawn(l.World)
	components.Actor.SetValue(entry, components.ActorData{Actor: a})
	l.attachObject(entry, a.CollisionBox(), tags.ResolvActor)
	l.actors = append(l.actors, entry)
	l.log.WithField("actor", a.ID()).Debug("actor added")
	return entry
}

// RemoveActor takes a out of the level and releases its sprite sheet.
func (l *Level) RemoveActor(a *entities.Actor) bool {
	for i, entry := range l.actors {
		if components.Actor.Get(entry).Actor != a {
			continue
		}
		l.Space.Remove(components.Object.Get(entry).Object)
		l.World.Remove(entry.Entity())
		l.actors = append(l.actors[:i], l.actors[i+1:]...)
		a.Release()
		l.log.WithField("actor", a.ID()).Debug("actor removed")
		return true
	}
	return false
}

// Close removes every actor, releasing their textures.
func (l *Level) Close() {
	for len(l.actors) > 0 {
		l.RemoveActor(components.Actor.Get(l.actors[0]).Actor)
	}
}

func (l *Level) attachObject(entry *donburi.Entry, box gamemath.Rect, objTags ...string) {
	w, h := float64(box.W), float64(box.H)
	obj := resolv.NewObject(float64(box.X), float64(box.Y), w, h, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	l.Space.Add(obj)
}

// Actors returns the actors in step order.
func (l *Level) Actors() []*entities.Actor {
	out := make([]*entities.Actor, 0, len(l.actors))
	for _, entry := range l.actors {
		out = append(out, components.Actor.Get(entry).Actor)
	}
	return out
}

// Actor finds an actor by id.
func (l *Level) Actor(id string) (*entities.Actor, bool) {
	for _, entry := range l.actors {
		if a := components.Actor.Get(entry).Actor; a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// Solids returns every solid in the level.
func (l *Level) Solids() []*entities.Solid {
	var out []*entities.Solid
	components.Solid.Each(l.World, func(entry *donburi.Entry) {
		out = append(out, components.Solid.Get(entry).Solid)
	})
	return out
}

// Step advances the simulation by elapsed seconds. All enabled actors are
// updated first, then each is resolved against the solids it overlaps, one
// solid at a time. Grounded actors with nothing left underneath lose their
// footing. Finally every actor that moved is told its move is finished.
func (l *Level) Step(elapsed float64) {
	for _, entry := range l.actors {
		a := components.Actor.Get(entry).Actor
		if !a.Enabled() {
			continue
		}
		a.Update(elapsed)
		l.syncObject(entry, a)
	}

	for _, entry := range l.actors {
		a := components.Actor.Get(entry).Actor
		if !a.Enabled() {
			continue
		}
		if l.resolve(entry, a) {
			l.syncObject(entry, a)
		}
		if a.IsGrounded() && !l.supported(entry, a) {
			a.SetGrounded(false)
		}
	}

	for _, entry := range l.actors {
		components.Actor.Get(entry).FinishMove()
	}
}

func (l *Level) syncObject(entry *donburi.Entry, a *entities.Actor) {
	obj := components.Object.Get(entry).Object
	box := a.CollisionBox()
	obj.X, obj.Y = float64(box.X), float64(box.Y)
	obj.W, obj.H = float64(box.W), float64(box.H)
	obj.Update()
}

// resolve pushes a out of every solid it overlaps and reports whether it
// was moved.
func (l *Level) resolve(entry *donburi.Entry, a *entities.Actor) bool {
	candidates := l.candidates(entry, a)
	moved := false
	for _, s := range candidates {
		// An earlier push may already have cleared this solid.
		if !a.CollisionBox().Intersects(s.CollisionBox()) {
			continue
		}
		if a.HandleCollision(s) {
			moved = true
		}
	}
	return moved
}

// candidates returns the solids whose boxes really overlap a, largest
// overlap first.
func (l *Level) candidates(entry *donburi.Entry, a *entities.Actor) []*entities.Solid {
	obj := components.Object.Get(entry).Object
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	box := a.CollisionBox()
	var out []*entities.Solid
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if s, ok := solidOf(o); ok && box.Intersects(s.CollisionBox()) {
			out = append(out, s)
		}
	}

	sortCandidates(box, out)
	return out
}

// supported reports whether a solid lies directly under a's box.
func (l *Level) supported(entry *donburi.Entry, a *entities.Actor) bool {
	obj := components.Object.Get(entry).Object
	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return false
	}

	feet := a.CollisionBox().Offset(0, 1)
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if s, ok := solidOf(o); ok && feet.Intersects(s.CollisionBox()) {
			return true
		}
	}
	return false
}

func solidOf(o *resolv.Object) (*entities.Solid, bool) {
	entry, ok := o.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Solid) {
		return nil, false
	}
	s := components.Solid.Get(entry).Solid
	return s, s.Enabled()
}

// sortCandidates orders solids by overlap area with box, largest first,
// then top to bottom, then left to right.
func sortCandidates(box gamemath.Rect, solids []*entities.Solid) {
	sort.SliceStable(solids, func(i, j int) bool {
		bi, bj := solids[i].CollisionBox(), solids[j].CollisionBox()
		ai := gamemath.Intersect(box, bi).Area()
		aj := gamemath.Intersect(box, bj).Area()
		if ai != aj {
			return ai > aj
		}
		if bi.Top() != bj.Top() {
			return bi.Top() < bj.Top()
		}
		return bi.Left() < bj.Left()
	})
}
