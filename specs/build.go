package specs

import (
	"fmt"
	"image"

	"github.com/automoto/actorcore/assets"
	"github.com/automoto/actorcore/assets/animations"
	"github.com/automoto/actorcore/entities"
	dmath "github.com/yohamta/donburi/features/math"
)

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Options converts the spec into entity options for an actor at position.
func (s *ActorSpec) Options(id string, position dmath.Vec2) entities.ActorOptions {
	return entities.ActorOptions{
		ID:               id,
		Position:         position,
		Size:             dmath.Vec2{X: s.Size.Width, Y: s.Size.Height},
		Solid:            boolOr(s.Solid, true),
		Visible:          boolOr(s.Visible, true),
		Enabled:          true,
		Grounded:         s.Grounded,
		SpriteSheet:      s.SpriteSheet,
		FramePeriod:      s.FramePeriod,
		GravityForce:     s.Gravity.Force,
		GravityDirection: s.Gravity.Direction,
		ApplyGravity:     s.Gravity.Enabled,
		MaxFallSpeed:     s.Gravity.MaxFallSpeed,
	}
}

// BuildActor creates an actor from the spec, registers its animations and
// starts the default one.
func BuildActor(spec *ActorSpec, id string, position dmath.Vec2, provider assets.Provider) (*entities.Actor, error) {
	actor, err := entities.NewActor(spec.Options(id, position), provider)
	if err != nil {
		return nil, err
	}
	if err := ApplyAnimations(actor, spec); err != nil {
		actor.Release()
		return nil, err
	}
	return actor, nil
}

// ApplyAnimations replaces the actor's animations with the spec's, cut
// from the actor's sprite sheet. The previously playing animation keeps
// playing if the spec still defines it.
func ApplyAnimations(actor *entities.Actor, spec *ActorSpec) error {
	sequences := make(map[string]*animations.Sequence, len(spec.Animations))
	for _, name := range spec.AnimationNames() {
		a := spec.Animations[name]
		policy, err := animations.ParseLoopPolicy(a.Loop)
		if err != nil {
			return fmt.Errorf("specs: %s animation %q: %w", spec.Name, name, err)
		}
		seq, err := animations.NewSequence(
			actor.Texture(),
			image.Pt(a.Origin.X, a.Origin.Y),
			image.Pt(a.FrameSize.X, a.FrameSize.Y),
			a.FrameCount,
			policy,
		)
		if err != nil {
			return fmt.Errorf("specs: %s animation %q: %w", spec.Name, name, err)
		}
		sequences[name] = seq
	}

	playing := actor.CurrentAnimation()
	actor.ClearAnimations()
	for name, seq := range sequences {
		if err := actor.AddAnimation(name, seq); err != nil {
			return err
		}
	}

	if _, ok := sequences[playing]; ok && playing != "" {
		return actor.PlayAnimation(playing)
	}
	if spec.DefaultAnimation != "" {
		return actor.PlayAnimation(spec.DefaultAnimation)
	}
	return nil
}
