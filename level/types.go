// Package level loads TMX maps and runs the per-tick simulation of actors
// against static solids.
package level

import (
	"fmt"

	"github.com/automoto/actorcore/entities"
	"github.com/automoto/actorcore/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

// Data holds everything parsed from a TMX level file.
type Data struct {
	Solids []SolidRect
	Spawns []Spawn
	Width  int // pixels
	Height int // pixels
}

// SolidRect is a static solid in map pixels with optional metadata.
type SolidRect struct {
	X, Y, W, H float64

	Slope      string // preset name: "", "45_up_right", "45_up_left"
	SlopeStart int
	SlopeRun   int
	SlopeRise  int
	OneWay     string // PassThrough name, "" for none
}

// Spawn places an actor built from the named spec.
type Spawn struct {
	ID   string
	Spec string
	X, Y float64
}

// NewSolid builds the entity for r with its slope and one-way metadata.
func (r SolidRect) NewSolid() (*entities.Solid, error) {
	s := entities.NewSolid(dmath.Vec2{X: r.X, Y: r.Y}, dmath.Vec2{X: r.W, Y: r.H})

	if start, rate, ok := r.slope(); ok {
		if err := s.SetSlopeData(start, rate); err != nil {
			return nil, fmt.Errorf("level: solid at %v,%v: %w", r.X, r.Y, err)
		}
	}

	if r.OneWay != "" {
		dir, err := entities.ParsePassThrough(r.OneWay)
		if err != nil {
			return nil, fmt.Errorf("level: solid at %v,%v: %w", r.X, r.Y, err)
		}
		if err := s.SetOneWayData(dir); err != nil {
			return nil, fmt.Errorf("level: solid at %v,%v: %w", r.X, r.Y, err)
		}
	}

	return s, nil
}

// slope resolves the preset or the explicit start/run/rise triple.
func (r SolidRect) slope() (int, entities.SlopeRate, bool) {
	switch r.Slope {
	case tags.Slope45UpRight:
		return int(r.H), entities.SlopeRate{Run: 1, Rise: -1}, true
	case tags.Slope45UpLeft:
		return 0, entities.SlopeRate{Run: 1, Rise: 1}, true
	}
	if r.SlopeRun != 0 || r.SlopeRise != 0 {
		return r.SlopeStart, entities.SlopeRate{Run: r.SlopeRun, Rise: r.SlopeRise}, true
	}
	return 0, entities.SlopeRate{}, false
}
