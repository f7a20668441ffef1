package systems

import (
	"github.com/automoto/actorcore/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateCamera keeps the player in the middle of the view.
func NewUpdateCamera(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		player, ok := ctx.player()
		if !ok {
			return // no player, keep the camera where it is
		}
		ctx.Camera.Follow(player.Center(), config.C.Width, config.C.Height, ctx.Level.Width, ctx.Level.Height)
	}
}
