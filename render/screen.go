// Package render draws the simulation with ebiten.
package render

import (
	"image"

	"github.com/automoto/actorcore/assets"
	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is an animations.Sink that draws onto an ebiten image, offset by
// the camera.
type Screen struct {
	Target *ebiten.Image
	Camera *Camera
	op     ebiten.DrawImageOptions
}

func NewScreen(target *ebiten.Image, camera *Camera) *Screen {
	return &Screen{Target: target, Camera: camera}
}

// DrawFrame copies src from tex, scaled to fill dst. Textures that are not
// ebiten images are skipped.
func (s *Screen) DrawFrame(tex assets.Texture, src, dst gamemath.Rect) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil || src.Empty() || dst.Empty() {
		return
	}
	if !src.Image().In(img.Bounds()) {
		return
	}

	sub := img.SubImage(src.Image()).(*ebiten.Image)
	x, y := s.Camera.ToScreen(float64(dst.X), float64(dst.Y))

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))
	s.op.GeoM.Translate(x, y)
	s.Target.DrawImage(sub, &s.op)
}

// Visible reports whether r, in world coordinates, is on screen.
func (s *Screen) Visible(r gamemath.Rect) bool {
	x, y := s.Camera.ToScreen(float64(r.X), float64(r.Y))
	view := s.Target.Bounds()
	onScreen := image.Rect(int(x), int(y), int(x)+r.W, int(y)+r.H)
	return onScreen.Overlaps(view)
}
