package systems

import (
	"os"
	"path/filepath"

	"github.com/automoto/actorcore/specs"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewUpdateReload applies edited actor spec files to the live actors built
// from them. specOf maps actor ids to spec names.
func NewUpdateReload(ctx *Context, watcher *specs.Watcher, specOf map[string]string) ecs.System {
	return func(e *ecs.ECS) {
		for _, path := range watcher.Drain() {
			spec, err := specs.LoadActorSpec(os.DirFS(filepath.Dir(path)), filepath.Base(path))
			if err != nil {
				log.WithError(err).Warn("spec reload failed")
				continue
			}

			reloaded := 0
			for _, a := range ctx.Level.Actors() {
				if specOf[a.ID()] != spec.Name {
					continue
				}
				a.Resize(dmath.Vec2{X: spec.Size.Width, Y: spec.Size.Height})
				if err := specs.ApplyAnimations(a, spec); err != nil {
					log.WithError(err).WithField("actor", a.ID()).Warn("spec reload failed")
					continue
				}
				reloaded++
			}
			log.WithField("spec", spec.Name).WithField("actors", reloaded).Info("spec reloaded")
		}
	}
}
