package entities

import (
	"github.com/automoto/actorcore/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// HandleCollision pushes the actor out of other along a single axis. It
// returns false, changing nothing, when other is not solid or does not
// overlap the actor.
//
// The X axis is tried first. The actor is moved on Y instead when the X
// push would leave it overlapping, or when the X push is longer than the
// overlap is tall. Landing on a solid below marks the actor grounded.
//
// Overlapping several solids needs one call per solid, applied in order,
// with the overlap re-tested between calls.
func (a *Actor) HandleCollision(other Collidable) bool {
	if other == nil || !other.IsSolid() {
		return false
	}

	box := a.CollisionBox()
	otherBox := other.CollisionBox()
	overlap := gamemath.Intersect(otherBox, box)
	if overlap.Empty() {
		return false
	}

	// Both sides use box centers; a.center is offset for odd sizes.
	myCenter := box.Center()
	otherCenter := otherBox.Center()
	right := otherCenter.X > myCenter.X
	left := otherCenter.X < myCenter.X
	below := otherCenter.Y > myCenter.Y
	above := otherCenter.Y < myCenter.Y

	adjustedX := box.Left()
	if left {
		adjustedX = box.Left() + overlap.W
	}
	if right {
		adjustedX = box.Left() - overlap.W
	}

	proposed := gamemath.NewRect(adjustedX, box.Top(), box.W, box.H)
	totalMove := abs(box.Left() - adjustedX)

	pos := a.position
	if proposed.Intersects(otherBox) || totalMove > overlap.H {
		adjustedY := box.Top()
		if above {
			adjustedY = box.Top() + overlap.H
		}
		if below {
			adjustedY = box.Top() - overlap.H
			a.grounded = true
		}
		a.velocity.Y = 0
		pos = dmath.Vec2{X: pos.X, Y: float64(adjustedY)}
	} else {
		a.velocity.X = 0
		pos = dmath.Vec2{X: float64(adjustedX), Y: pos.Y}
	}

	a.place(pos)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
