package systems

import (
	cfg "github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawActors renders every visible actor's current frame.
func NewDrawActors(ctx *Context) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		sink := render.NewScreen(screen, ctx.Camera)
		for _, a := range ctx.Level.Actors() {
			// Viewport culling
			if !sink.Visible(a.DrawRect()) {
				continue
			}
			a.Draw(sink)
		}
	}
}

// NewDrawSolids fills every solid so the level is visible without tiles.
func NewDrawSolids(ctx *Context) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		for _, s := range ctx.Level.Solids() {
			render.DrawSolid(screen, ctx.Camera, s, cfg.SolidFill)
		}
	}
}
