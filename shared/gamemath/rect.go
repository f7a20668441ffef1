package gamemath

import (
	"image"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Rect is an integer-snapped axis-aligned rectangle. Collision boxes and
// sprite source/destination rectangles are expressed with it.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a rectangle at (x, y) with size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// SnapRect derives a collision box from a float position and size.
// Both are floored, so negative coordinates snap toward -Inf.
func SnapRect(position, size dmath.Vec2) Rect {
	return Rect{
		X: int(math.Floor(position.X)),
		Y: int(math.Floor(position.Y)),
		W: int(math.Floor(size.X)),
		H: int(math.Floor(size.Y)),
	}
}

func (r Rect) Left() int { return r.X }
func (r Rect) Right() int { return r.X + r.W }
func (r Rect) Top() int { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the integer midpoint of the rectangle.
func (r Rect) Center() image.Point {
	return image.Point{
		X: (r.Left() + r.Right()) / 2,
		Y: (r.Top() + r.Bottom()) / 2,
	}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects reports whether the two rectangles overlap. Rectangles that
// only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return o.Left() < r.Right() &&
		r.Left() < o.Right() &&
		o.Top() < r.Bottom() &&
		r.Top() < o.Bottom()
}

// Intersect returns the overlapping area of a and b, or the zero Rect when
// they do not overlap.
func Intersect(a, b Rect) Rect {
	left := max(a.Left(), b.Left())
	top := max(a.Top(), b.Top())
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())

	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom())
}
