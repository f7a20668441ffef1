package render

import (
	"image/color"

	"github.com/automoto/actorcore/entities"
	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// DrawCollisionBox outlines r, given in world coordinates.
func DrawCollisionBox(screen *ebiten.Image, cam *Camera, r gamemath.Rect, c color.Color) {
	fx, fy := cam.ToScreen(float64(r.X), float64(r.Y))
	x, y := float32(fx), float32(fy)
	w, h := float32(r.W), float32(r.H)

	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// DrawSlope draws the ramp surface of s when it has slope data.
func DrawSlope(screen *ebiten.Image, cam *Camera, s *entities.Solid, c color.Color) {
	slope, ok := s.Slope()
	if !ok {
		return
	}
	box := s.CollisionBox()
	x0, y0 := cam.ToScreen(float64(box.Left()), float64(box.Top()+slope.HeightAt(0)))
	x1, y1 := cam.ToScreen(float64(box.Right()), float64(box.Top()+slope.HeightAt(box.W)))
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, false)
}

// DrawOneWay marks the passable edges of a one-way solid.
func DrawOneWay(screen *ebiten.Image, cam *Camera, s *entities.Solid, c color.Color) {
	data, ok := s.OneWay()
	if !ok {
		return
	}
	box := s.CollisionBox()
	fx, fy := cam.ToScreen(float64(box.X), float64(box.Y))
	x, y := float32(fx), float32(fy)
	w, h := float32(box.W), float32(box.H)

	horizontal, vertical := data.Direction.Axes()
	if vertical {
		vector.FillRect(screen, x, y+h/2, w, 1, c, false)
	}
	if horizontal {
		vector.FillRect(screen, x+w/2, y, 1, h, c, false)
	}
}

// DrawHUD prints lines of debug text in the top-left corner.
func DrawHUD(screen *ebiten.Image, lines []string, c color.Color) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, 4, lineHeight*(i+1), c)
	}
}

// DrawSolid fills the box of s, given in world coordinates.
func DrawSolid(screen *ebiten.Image, cam *Camera, s *entities.Solid, c color.Color) {
	box := s.CollisionBox()
	x, y := cam.ToScreen(float64(box.X), float64(box.Y))
	vector.FillRect(screen, float32(x), float32(y), float32(box.W), float32(box.H), c, false)
}
