package entities

import (
	"image"
	"testing"

	"github.com/automoto/actorcore/assets"
	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeTexture struct{ w, h int }

func (f fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

// countingProvider hands out one shared texture and counts acquire/release
// calls per id.
type countingProvider struct {
	acquired map[string]int
	released map[string]int
	fail     error
}

func newCountingProvider() *countingProvider {
	return &countingProvider{
		acquired: make(map[string]int),
		released: make(map[string]int),
	}
}

func (p *countingProvider) Acquire(id string) (assets.Texture, error) {
	if p.fail != nil {
		return nil, p.fail
	}
	p.acquired[id]++
	return fakeTexture{w: 128, h: 128}, nil
}

func (p *countingProvider) Release(id string) {
	p.released[id]++
}

type drawCall struct {
	src, dst gamemath.Rect
}

type recordingSink struct {
	calls []drawCall
}

func (r *recordingSink) DrawFrame(_ assets.Texture, src, dst gamemath.Rect) {
	r.calls = append(r.calls, drawCall{src: src, dst: dst})
}

func vec(x, y float64) dmath.Vec2 { return dmath.Vec2{X: x, Y: y} }

func newTestActor(t *testing.T, pos, size dmath.Vec2) *Actor {
	t.Helper()
	a, err := NewActor(ActorOptions{
		ID:       "test",
		Position: pos,
		Size:     size,
		Solid:    true,
		Visible:  true,
		Enabled:  true,
	}, nil)
	require.NoError(t, err)
	return a
}
