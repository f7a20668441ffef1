package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"os"

	"github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/logger"
	"github.com/automoto/actorcore/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(root string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlayground(g, root)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	root := flag.String("root", ".", "directory holding the assets folder")
	configPath := flag.String("config", "assets/data/config.yaml", "config file, relative to root")
	levelPath := flag.String("level", "", "TMX level to load, relative to root")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	err := config.Load(os.DirFS(*root), *configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("file", *configPath).Info("no config file, using defaults")
	case err != nil:
		log.WithError(err).Fatal("load config")
	}
	if *levelPath != "" {
		config.Assets.Level = *levelPath
	}
	if *debug {
		config.Debug.Overlay = true
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("actorcore playground")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(*root)); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
