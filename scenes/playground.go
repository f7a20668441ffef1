package scenes

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/actorcore/assets"
	cfg "github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/input"
	"github.com/automoto/actorcore/level"
	"github.com/automoto/actorcore/logger"
	"github.com/automoto/actorcore/render"
	"github.com/automoto/actorcore/specs"
	"github.com/automoto/actorcore/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Playground loads one level, spawns its actors and lets the player
// walk around it.
type Playground struct {
	sceneChanger SceneChanger
	root         string
	assets       fs.FS

	ecs     *ecs.ECS
	ctx     *systems.Context
	watcher *specs.Watcher
	once    sync.Once
	err     error
}

// NewPlayground creates a playground reading its data files below root.
func NewPlayground(sc SceneChanger, root string) *Playground {
	return &Playground{
		sceneChanger: sc,
		root:         root,
		assets:       os.DirFS(root),
	}
}

func (ps *Playground) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}

	ps.ecs.Update()

	if ps.ctx.Input.JustPressed(input.ActionReset) {
		ps.Close()
		ps.sceneChanger.ChangeScene(NewPlayground(ps.sceneChanger, ps.root))
	}
	return nil
}

func (ps *Playground) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops the spec watcher and releases every actor's texture.
func (ps *Playground) Close() {
	if ps.watcher != nil {
		if err := ps.watcher.Close(); err != nil {
			logger.For("scenes").WithError(err).Warn("close spec watcher")
		}
	}
	if ps.ctx != nil {
		ps.ctx.Level.Close()
	}
}

func (ps *Playground) configure() error {
	log := logger.For("scenes")

	paths, err := assets.LoadTextureMap(ps.assets, cfg.Assets.TextureMap)
	if err != nil {
		return err
	}
	cache := assets.NewCache(paths, render.NewTextureLoader(ps.assets), render.UnloadTexture)

	catalog, err := specs.LoadActorSpecs(ps.assets, cfg.Assets.ActorDir)
	if err != nil {
		return err
	}

	data, err := level.LoadData(ps.assets, cfg.Assets.Level)
	if err != nil {
		return err
	}
	if len(data.Spawns) == 0 {
		return fmt.Errorf("scenes: no spawns defined in %s", cfg.Assets.Level)
	}

	l := level.New(data.Width, data.Height)
	if err := l.Build(data); err != nil {
		return err
	}
	if err := l.Populate(data, catalog, cache); err != nil {
		l.Close()
		return err
	}

	specOf := make(map[string]string, len(data.Spawns))
	playerID := data.Spawns[0].ID
	for _, sp := range data.Spawns {
		specOf[sp.ID] = sp.Spec
		if sp.ID == "player" {
			playerID = sp.ID
		}
	}

	ps.ctx = &systems.Context{
		Level:    l,
		Camera:   &render.Camera{},
		PlayerID: playerID,
		Debug:    cfg.Debug.Overlay,
	}

	// The ECS shares the level's world.
	ps.ecs = ecs.NewECS(l.World)
	ps.ecs.AddSystem(systems.NewUpdateInput(ps.ctx))
	ps.ecs.AddSystem(systems.NewUpdateLevel(ps.ctx))
	ps.ecs.AddSystem(systems.NewUpdateCamera(ps.ctx))

	if cfg.Debug.HotReload {
		w, err := specs.NewWatcher(filepath.Join(ps.root, cfg.Assets.ActorDir))
		if err != nil {
			log.WithError(err).Warn("spec hot reload disabled")
		} else {
			ps.watcher = w
			ps.ecs.AddSystem(systems.NewUpdateReload(ps.ctx, w, specOf))
		}
	}

	ps.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawSolids(ps.ctx))
	ps.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawActors(ps.ctx))
	ps.ecs.AddRenderer(systems.LayerDebug, systems.NewDrawDebug(ps.ctx))

	log.WithField("level", cfg.Assets.Level).
		WithField("actors", len(l.Actors())).
		WithField("player", playerID).
		Info("playground ready")
	return nil
}
