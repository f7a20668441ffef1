package render

import "image"

// Camera is the top-left corner of the view in world coordinates.
type Camera struct {
	X, Y float64
}

// ToScreen converts world coordinates to screen coordinates.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	if c == nil {
		return x, y
	}
	return x - c.X, y - c.Y
}

// Follow centres the view on target, clamped so it never shows past the
// level edges.
func (c *Camera) Follow(target image.Point, viewW, viewH, levelW, levelH int) {
	c.X = clamp(float64(target.X)-float64(viewW)/2, 0, float64(levelW-viewW))
	c.Y = clamp(float64(target.Y)-float64(viewH)/2, 0, float64(levelH-viewH))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
