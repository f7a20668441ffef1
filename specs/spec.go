// Package specs loads actor definitions from YAML and turns them into
// entities.
package specs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/actorcore/assets/animations"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is returned by Validate.
var ErrInvalidSpec = errors.New("specs: invalid actor spec")

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type GravitySpec struct {
	Enabled      bool    `yaml:"enabled"`
	Force        float64 `yaml:"force"`
	Direction    float64 `yaml:"direction"` // radians
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type AnimationSpec struct {
	Origin     PointSpec `yaml:"origin"`
	FrameSize  PointSpec `yaml:"frame_size"`
	FrameCount int       `yaml:"frame_count"`
	Loop       string    `yaml:"loop"`
}

// ActorSpec describes one kind of actor.
type ActorSpec struct {
	Name             string                   `yaml:"name"`
	SpriteSheet      string                   `yaml:"sprite_sheet"`
	Size             SizeSpec                 `yaml:"size"`
	Solid            *bool                    `yaml:"solid"`
	Visible          *bool                    `yaml:"visible"`
	Grounded         bool                     `yaml:"grounded"`
	FramePeriod      float64                  `yaml:"frame_period"`
	Gravity          GravitySpec              `yaml:"gravity"`
	DefaultAnimation string                   `yaml:"default_animation"`
	Animations       map[string]AnimationSpec `yaml:"animations"`
}

// LoadActorSpec reads and validates the spec at name in fsys.
func LoadActorSpec(fsys fs.FS, name string) (*ActorSpec, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("specs: load %s: %w", name, err)
	}

	var spec ActorSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("specs: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("specs: %s: %w", name, err)
	}
	return &spec, nil
}

// LoadActorSpecs loads every .yaml/.yml file in dir, keyed by spec name.
func LoadActorSpecs(fsys fs.FS, dir string) (map[string]*ActorSpec, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("specs: read %s: %w", dir, err)
	}

	out := make(map[string]*ActorSpec)
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		spec, err := LoadActorSpec(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := out[spec.Name]; dup {
			return nil, fmt.Errorf("specs: duplicate actor name %q in %s", spec.Name, dir)
		}
		out[spec.Name] = spec
	}
	return out, nil
}

// Validate checks the spec can build an actor.
func (s *ActorSpec) Validate() error {
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidSpec, s.Size.Width, s.Size.Height)
	}
	if s.FramePeriod < 0 {
		return fmt.Errorf("%w: frame period %v", ErrInvalidSpec, s.FramePeriod)
	}
	for _, name := range s.AnimationNames() {
		a := s.Animations[name]
		if a.FrameCount <= 0 {
			return fmt.Errorf("%w: animation %q frame count %d", ErrInvalidSpec, name, a.FrameCount)
		}
		if _, err := animations.ParseLoopPolicy(a.Loop); err != nil {
			return fmt.Errorf("%w: animation %q: %v", ErrInvalidSpec, name, err)
		}
		if a.FrameSize.X <= 0 || a.FrameSize.Y <= 0 {
			return fmt.Errorf("%w: animation %q frame size %dx%d", ErrInvalidSpec, name, a.FrameSize.X, a.FrameSize.Y)
		}
	}
	if s.DefaultAnimation != "" {
		if _, ok := s.Animations[s.DefaultAnimation]; !ok {
			return fmt.Errorf("%w: default animation %q not defined", ErrInvalidSpec, s.DefaultAnimation)
		}
	}
	return nil
}

// AnimationNames returns the animation names in sorted order.
func (s *ActorSpec) AnimationNames() []string {
	names := make([]string, 0, len(s.Animations))
	for name := range s.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isSpecFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
