package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 1.5, ApplyFriction(2, 0.5))
	assert.Equal(t, -1.5, ApplyFriction(-2, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(0.3, 0.5))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 10.0, ClampSpeed(16, 10))
	assert.Equal(t, -10.0, ClampSpeed(-16, 10))
	assert.Equal(t, 4.0, ClampSpeed(4, 10))
}

func TestGravityVector(t *testing.T) {
	down := GravityVector(0.5, math.Pi/2)
	assert.InDelta(t, 0, down.X, 1e-9)
	assert.InDelta(t, 0.5, down.Y, 1e-9)

	right := GravityVector(2, 0)
	assert.InDelta(t, 2, right.X, 1e-9)
	assert.InDelta(t, 0, right.Y, 1e-9)

	assert.Zero(t, GravityVector(0, math.Pi/2))
}
