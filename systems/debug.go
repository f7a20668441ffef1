package systems

import (
	"fmt"

	cfg "github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug outlines collision boxes and prints actor state when the
// debug overlay is on.
func NewDrawDebug(ctx *Context) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !ctx.Debug {
			return
		}

		for _, s := range ctx.Level.Solids() {
			render.DrawCollisionBox(screen, ctx.Camera, s.CollisionBox(), cfg.Debug.SolidColor)
			render.DrawSlope(screen, ctx.Camera, s, cfg.Debug.SlopeColor)
			render.DrawOneWay(screen, ctx.Camera, s, cfg.Debug.OneWayColor)
		}

		for _, a := range ctx.Level.Actors() {
			c := cfg.Debug.BoxColor
			if a.IsGrounded() {
				c = cfg.Debug.GroundedTint
			}
			render.DrawCollisionBox(screen, ctx.Camera, a.CollisionBox(), c)
		}

		lines := []string{
			fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			fmt.Sprintf("actors %d  solids %d", len(ctx.Level.Actors()), len(ctx.Level.Solids())),
		}
		if player, ok := ctx.player(); ok {
			pos, vel := player.Position(), player.Velocity()
			lines = append(lines,
				fmt.Sprintf("%s pos %.1f,%.1f vel %.1f,%.1f", player.ID(), pos.X, pos.Y, vel.X, vel.Y),
				fmt.Sprintf("grounded %t jumping %t anim %q", player.IsGrounded(), player.IsJumping(), player.CurrentAnimation()),
			)
		}
		render.DrawHUD(screen, lines, cfg.White)
	}
}
