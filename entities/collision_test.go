package entities

import (
	"testing"

	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestFallingActorLandsOnSolid(t *testing.T) {
	a := newTestActor(t, vec(0, 0), vec(10, 10))
	a.SetVelocity(vec(0, 5))
	floor := NewSolid(vec(0, 8), vec(20, 20))

	a.Update(1.0 / 60)
	require.Equal(t, vec(0, 5), a.Position())
	require.Equal(t, gamemath.NewRect(0, 8, 10, 7), gamemath.Intersect(floor.CollisionBox(), a.CollisionBox()))

	assert.True(t, a.HandleCollision(floor))

	assert.Equal(t, vec(0, -2), a.Position())
	assert.True(t, a.IsGrounded())
	assert.Equal(t, 0.0, a.Velocity().Y)
	assert.Equal(t, gamemath.NewRect(0, -2, 10, 10), a.CollisionBox())
	assert.False(t, a.CollisionBox().Intersects(floor.CollisionBox()))
}

func TestLandingKeepsHorizontalMotion(t *testing.T) {
	a := newTestActor(t, vec(0.5, 0), vec(10, 10))
	a.SetVelocity(vec(1, 5))
	floor := NewSolid(vec(0, 8), vec(20, 20))

	a.Update(1.0 / 60)
	assert.True(t, a.HandleCollision(floor))

	assert.Equal(t, vec(1.5, -2), a.Position())
	assert.Equal(t, vec(1, 0), a.Velocity())
	assert.True(t, a.IsGrounded())
}

func TestSideCollisionOnlyTouchesX(t *testing.T) {
	tests := []struct {
		name     string
		actorPos float64
		solidPos float64
		solidW   float64
		wantX    float64
	}{
		{"wall on the right", 0, 8, 10, -2},
		{"wall on the left", 10, 0, 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestActor(t, vec(tt.actorPos, 0), vec(10, 10))
			a.SetVelocity(vec(4, 3))
			wall := NewSolid(vec(tt.solidPos, 0), vec(tt.solidW, 10))

			assert.True(t, a.HandleCollision(wall))

			assert.Equal(t, vec(tt.wantX, 0), a.Position())
			assert.Equal(t, vec(0, 3), a.Velocity())
			assert.False(t, a.IsGrounded())
		})
	}
}

func TestOddSizedActorUsesBoxCenter(t *testing.T) {
	tests := []struct {
		name         string
		actorSize    dmath.Vec2
		solidPos     dmath.Vec2
		solidSize    dmath.Vec2
		wantPos      dmath.Vec2
		wantVelocity dmath.Vec2
		wantGrounded bool
	}{
		// Box centers coincide at (5,5): no direction, so nothing moves.
		{"equal centers", vec(10, 11), vec(0, -1), vec(10, 12), vec(0, 0), vec(2, 0), false},
		{"landing", vec(9, 11), vec(0, 8), vec(20, 20), vec(0, -3), vec(2, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestActor(t, vec(0, 0), tt.actorSize)
			a.SetVelocity(vec(2, 3))
			s := NewSolid(tt.solidPos, tt.solidSize)

			assert.True(t, a.HandleCollision(s))

			assert.Equal(t, tt.wantPos, a.Position())
			assert.Equal(t, tt.wantVelocity, a.Velocity())
			assert.Equal(t, tt.wantGrounded, a.IsGrounded())
		})
	}
}

func TestCeilingPushesActorDown(t *testing.T) {
	a := newTestActor(t, vec(0, 10), vec(10, 10))
	a.SetVelocity(vec(2, -4))
	ceiling := NewSolid(vec(0, 0), vec(20, 12))

	assert.True(t, a.HandleCollision(ceiling))

	assert.Equal(t, vec(0, 12), a.Position())
	assert.Equal(t, vec(2, 0), a.Velocity())
	assert.False(t, a.IsGrounded())
}

func TestResolvedCollisionIsNotRepeated(t *testing.T) {
	a := newTestActor(t, vec(0, 0), vec(10, 10))
	wall := NewSolid(vec(8, 0), vec(10, 10))

	require.True(t, a.HandleCollision(wall))
	pos := a.Position()

	assert.False(t, a.HandleCollision(wall))
	assert.Equal(t, pos, a.Position())
}

func TestGroundedIsSticky(t *testing.T) {
	a, err := NewActor(ActorOptions{Position: vec(0, 5), Size: vec(10, 10), Grounded: true}, nil)
	require.NoError(t, err)

	floor := NewSolid(vec(0, 8), vec(20, 20))
	assert.True(t, a.HandleCollision(floor))
	assert.True(t, a.IsGrounded())
}

func TestNoResolutionWithoutOverlap(t *testing.T) {
	a := newTestActor(t, vec(0, 0), vec(10, 10))
	a.SetVelocity(vec(3, 3))

	touching := NewSolid(vec(10, 0), vec(10, 10))
	assert.False(t, a.HandleCollision(touching))

	far := NewSolid(vec(100, 100), vec(10, 10))
	assert.False(t, a.HandleCollision(far))

	assert.Equal(t, vec(0, 0), a.Position())
	assert.Equal(t, vec(3, 3), a.Velocity())
}

func TestNoResolutionAgainstNonSolid(t *testing.T) {
	a := newTestActor(t, vec(0, 0), vec(10, 10))
	a.SetVelocity(vec(3, 3))
	ghost := NewEntity(vec(5, 5), vec(10, 10), false, true, true)

	assert.False(t, a.HandleCollision(&ghost))
	assert.False(t, a.HandleCollision(nil))
	assert.Equal(t, vec(0, 0), a.Position())
	assert.Equal(t, vec(3, 3), a.Velocity())
}

func TestSequentialResolutionAgainstCorner(t *testing.T) {
	first := newTestActor(t, vec(0, 5), vec(10, 10))
	second := newTestActor(t, vec(0, 5), vec(10, 10))
	floor := NewSolid(vec(-20, 12), vec(40, 20))
	wall := NewSolid(vec(8, -20), vec(20, 30))

	resolveAll := func(a *Actor, solids ...*Solid) {
		for _, s := range solids {
			if a.CollisionBox().Intersects(s.CollisionBox()) {
				a.HandleCollision(s)
			}
		}
	}

	resolveAll(first, floor, wall)
	resolveAll(second, wall, floor)

	for _, a := range []*Actor{first, second} {
		assert.False(t, a.CollisionBox().Intersects(floor.CollisionBox()))
		assert.False(t, a.CollisionBox().Intersects(wall.CollisionBox()))
	}
}
