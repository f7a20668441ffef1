package specs

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heroYAML = `
name: hero
sprite_sheet: hero
size:
  width: 12
  height: 20
frame_period: 0.125
gravity:
  enabled: true
  force: 0.5
  direction: 1.5707963267948966
  max_fall_speed: 9
default_animation: idle
animations:
  idle:
    origin: {x: 0, y: 0}
    frame_size: {x: 16, y: 24}
    frame_count: 4
    loop: reverse
  run:
    origin: {x: 0, y: 24}
    frame_size: {x: 16, y: 24}
    frame_count: 6
`

func TestLoadActorSpec(t *testing.T) {
	fsys := fstest.MapFS{"actors/hero.yaml": {Data: []byte(heroYAML)}}

	spec, err := LoadActorSpec(fsys, "actors/hero.yaml")
	require.NoError(t, err)

	assert.Equal(t, "hero", spec.Name)
	assert.Equal(t, "hero", spec.SpriteSheet)
	assert.Equal(t, SizeSpec{Width: 12, Height: 20}, spec.Size)
	assert.Nil(t, spec.Solid)
	assert.True(t, spec.Gravity.Enabled)
	assert.Equal(t, 9.0, spec.Gravity.MaxFallSpeed)
	assert.Equal(t, []string{"idle", "run"}, spec.AnimationNames())
	assert.Equal(t, "reverse", spec.Animations["idle"].Loop)
	assert.Equal(t, PointSpec{X: 0, Y: 24}, spec.Animations["run"].Origin)
}

func TestLoadActorSpecNameFromFile(t *testing.T) {
	fsys := fstest.MapFS{"crate.yml": {Data: []byte("size: {width: 8, height: 8}\n")}}

	spec, err := LoadActorSpec(fsys, "crate.yml")
	require.NoError(t, err)
	assert.Equal(t, "crate", spec.Name)
	assert.Empty(t, spec.SpriteSheet)
}

func TestLoadActorSpecErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		invalid  bool
		contains string
	}{
		{"malformed", "size: [", false, "unmarshal bad.yaml"},
		{"zero size", "size: {width: 0, height: 4}", true, "size"},
		{"no frames", "size: {width: 4, height: 4}\nanimations:\n  idle: {frame_size: {x: 4, y: 4}}", true, `"idle" frame count`},
		{"bad frame size", "size: {width: 4, height: 4}\nanimations:\n  idle: {frame_count: 2, frame_size: {x: 4}}", true, "frame size"},
		{"bad loop", "size: {width: 4, height: 4}\nanimations:\n  idle: {frame_count: 2, frame_size: {x: 4, y: 4}, loop: sideways}", true, "sideways"},
		{"missing default", "size: {width: 4, height: 4}\ndefault_animation: walk", true, `"walk" not defined`},
		{"negative period", "size: {width: 4, height: 4}\nframe_period: -0.5", true, "frame period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.yaml": {Data: []byte(tt.contents)}}

			_, err := LoadActorSpec(fsys, "bad.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidSpec)
			}
		})
	}
}

func TestLoadActorSpecs(t *testing.T) {
	fsys := fstest.MapFS{
		"actors/hero.yaml":  {Data: []byte(heroYAML)},
		"actors/crate.yml":  {Data: []byte("size: {width: 8, height: 8}\n")},
		"actors/README.md":  {Data: []byte("not a spec")},
		"actors/old/x.yaml": {Data: []byte("size: [")},
	}

	all, err := LoadActorSpecs(fsys, "actors")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Contains(t, all, "hero")
	assert.Contains(t, all, "crate")
}

func TestLoadActorSpecsDuplicateName(t *testing.T) {
	fsys := fstest.MapFS{
		"actors/a.yaml": {Data: []byte("name: same\nsize: {width: 8, height: 8}\n")},
		"actors/b.yaml": {Data: []byte("name: same\nsize: {width: 8, height: 8}\n")},
	}

	_, err := LoadActorSpecs(fsys, "actors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadActorSpecsMissingDir(t *testing.T) {
	_, err := LoadActorSpecs(fstest.MapFS{}, "actors")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
