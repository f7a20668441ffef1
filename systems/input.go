package systems

import (
	"errors"

	cfg "github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/entities"
	"github.com/automoto/actorcore/input"
	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateInput polls input and steers the player actor.
// Must run BEFORE the level update in the system order.
func NewUpdateInput(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		ctx.Input.Poll()

		if ctx.Input.JustPressed(input.ActionToggleDebug) {
			ctx.Debug = !ctx.Debug
		}

		player, ok := ctx.player()
		if !ok {
			return
		}

		v := player.Velocity()
		switch {
		case ctx.Input.Pressed(input.ActionMoveLeft):
			v.X = -cfg.Physics.WalkSpeed
		case ctx.Input.Pressed(input.ActionMoveRight):
			v.X = cfg.Physics.WalkSpeed
		default:
			v.X = gamemath.ApplyFriction(v.X, cfg.Physics.Friction)
		}
		player.SetVelocity(v)

		if ctx.Input.JustPressed(input.ActionJump) {
			player.Jump(cfg.Physics.JumpSpeed)
		}

		playState(player)
	}
}

// playState picks the animation matching what the actor is doing. Actors
// without that animation keep their current one.
func playState(a *entities.Actor) {
	name := "idle"
	switch {
	case a.IsJumping() || !a.IsGrounded():
		name = "jump"
	case a.Velocity().X != 0:
		name = "run"
	}
	if err := a.PlayAnimation(name); err != nil && !errors.Is(err, entities.ErrUnknownAnimation) {
		log.WithError(err).Warn("play animation")
	}
}
