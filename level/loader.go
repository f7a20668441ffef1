package level

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/actorcore/logger"
	"github.com/lafriks/go-tiled"
	"github.com/sirupsen/logrus"
)

const (
	solidLayer = "solids"
	solidGroup = "Solids"
	spawnGroup = "Spawns"
	propSlope  = "slope"
	propStart  = "slopeStart"
	propRun    = "slopeRun"
	propRise   = "slopeRise"
	propOneWay = "oneWay"
	propSpec   = "spec"
)

// LoadData parses a TMX file. Solid tiles come from the "solids" tile
// layer, with metadata taken from the tileset tile properties. Free-form
// solids come from the "Solids" object group and actor spawns from the
// "Spawns" object group.
func LoadData(fsys fs.FS, tmxPath string) (*Data, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("level: load TMX %s: %w", tmxPath, err)
	}

	data := &Data{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != solidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				r := SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					props := tilesetTile.Properties
					r.Slope = props.GetString(propSlope)
					r.SlopeStart = props.GetInt(propStart)
					r.SlopeRun = props.GetInt(propRun)
					r.SlopeRise = props.GetInt(propRise)
					r.OneWay = props.GetString(propOneWay)
				}
				data.Solids = append(data.Solids, r)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case solidGroup:
			for _, o := range og.Objects {
				data.Solids = append(data.Solids, SolidRect{
					X:          o.X,
					Y:          o.Y,
					W:          o.Width,
					H:          o.Height,
					Slope:      o.Properties.GetString(propSlope),
					SlopeStart: o.Properties.GetInt(propStart),
					SlopeRun:   o.Properties.GetInt(propRun),
					SlopeRise:  o.Properties.GetInt(propRise),
					OneWay:     o.Properties.GetString(propOneWay),
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				id := o.Name
				if id == "" {
					id = fmt.Sprintf("spawn-%d", o.ID)
				}
				data.Spawns = append(data.Spawns, Spawn{
					ID:   id,
					Spec: o.Properties.GetString(propSpec),
					X:    o.X,
					Y:    o.Y,
				})
			}
		}
	}

	// Spawn order decides step order, so keep it stable left-to-right.
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	logger.For("level").WithFields(logrus.Fields{
		"file":   tmxPath,
		"solids": len(data.Solids),
		"spawns": len(data.Spawns),
	}).Info("loaded level")

	return data, nil
}

// LoadAll discovers every .tmx file in dir and returns them keyed by stem
// name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Data, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("level: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("level: no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Data, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		data, err := LoadData(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(p), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
