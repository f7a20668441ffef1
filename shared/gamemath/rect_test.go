package gamemath

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSnapRect(t *testing.T) {
	tests := []struct {
		name     string
		position dmath.Vec2
		size     dmath.Vec2
		want     Rect
	}{
		{"whole numbers", dmath.Vec2{X: 3, Y: 4}, dmath.Vec2{X: 10, Y: 12}, Rect{3, 4, 10, 12}},
		{"fractions floor", dmath.Vec2{X: 3.9, Y: 4.2}, dmath.Vec2{X: 10.7, Y: 12.1}, Rect{3, 4, 10, 12}},
		{"negative floors toward -inf", dmath.Vec2{X: -2.5, Y: -0.1}, dmath.Vec2{X: 4, Y: 4}, Rect{-3, -1, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapRect(tt.position, tt.size))
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"corner overlap", NewRect(0, 5, 10, 10), NewRect(0, 8, 20, 20), NewRect(0, 8, 10, 7)},
		{"side overlap", NewRect(0, 0, 10, 10), NewRect(8, 0, 10, 10), NewRect(8, 0, 2, 10)},
		{"disjoint is empty", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Intersect(tt.b, tt.a))
		})
	}
}

func TestRectCenterAndArea(t *testing.T) {
	r := NewRect(0, 8, 20, 20)
	assert.Equal(t, image.Point{X: 10, Y: 18}, r.Center())
	assert.Equal(t, 400, r.Area())
	assert.Equal(t, 0, Rect{}.Area())
	assert.True(t, Rect{W: 3}.Empty())
	assert.Equal(t, NewRect(2, 10, 20, 20), r.Offset(2, 2))
	assert.Equal(t, image.Rect(0, 8, 20, 28), r.Image())
}
