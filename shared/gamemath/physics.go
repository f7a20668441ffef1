package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// GravityVector returns the per-tick velocity change for a gravity force
// pulling along direction (radians, screen coordinates: pi/2 points down).
func GravityVector(force, direction float64) dmath.Vec2 {
	if force == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{
		X: math.Cos(direction) * force,
		Y: math.Sin(direction) * force,
	}
}
