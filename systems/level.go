package systems

import (
	"github.com/automoto/actorcore/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var log = logger.For("systems")

// NewUpdateLevel steps the simulation once per tick.
func NewUpdateLevel(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		ctx.Level.Step(1 / float64(ebiten.TPS()))
	}
}
