package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout accepted by Load. Sections left out of the
// file keep their current values.
type File struct {
	Window    *Config          `yaml:"window"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Animation *AnimationConfig `yaml:"animation"`
	Actor     *ActorConfig     `yaml:"actor"`
	Assets    *AssetsConfig    `yaml:"assets"`
	Debug     *DebugConfig     `yaml:"debug"`
}

// Load overlays the YAML file at path onto the package globals. Only keys
// present in the file are changed.
func Load(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	// Decoding into pointers to the live values leaves absent keys alone.
	window := *C
	f := File{
		Window:    &window,
		Physics:   &Physics,
		Animation: &Animation,
		Actor:     &Actor,
		Assets:    &Assets,
		Debug:     &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	C = &window

	return validate()
}

func validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("config: window size %dx%d", C.Width, C.Height)
	case C.TPS <= 0:
		return fmt.Errorf("config: tps %d", C.TPS)
	case Physics.CellSize <= 0:
		return fmt.Errorf("config: cell size %d", Physics.CellSize)
	case Animation.FramePeriod < 0:
		return fmt.Errorf("config: frame period %v", Animation.FramePeriod)
	}
	return nil
}
