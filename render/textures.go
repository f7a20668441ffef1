package render

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"strings"

	"github.com/automoto/actorcore/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const placeholderPrefix = "placeholder:"

var (
	checkerLight = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	checkerDark  = color.RGBA{R: 40, G: 0, B: 40, A: 255}
)

// NewTextureLoader returns an assets.LoadFunc decoding images from fsys.
// A path of the form "placeholder:WxH" yields a generated checkerboard of
// that size instead.
func NewTextureLoader(fsys fs.FS) assets.LoadFunc {
	return func(path string) (assets.Texture, error) {
		if spec, ok := strings.CutPrefix(path, placeholderPrefix); ok {
			var w, h int
			if _, err := fmt.Sscanf(spec, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
				return nil, fmt.Errorf("render: bad placeholder %q", path)
			}
			return checkerboard(w, h, 8), nil
		}

		f, err := fsys.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		img, _, err := ebitenutil.NewImageFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", path, err)
		}
		return img, nil
	}
}

// UnloadTexture frees the GPU memory behind an ebiten texture.
func UnloadTexture(tex assets.Texture) {
	if img, ok := tex.(*ebiten.Image); ok {
		img.Deallocate()
	}
}

func checkerboard(w, h, cell int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(checkerDark)
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				continue
			}
			sub := img.SubImage(image.Rect(x, y, x+cell, y+cell)).(*ebiten.Image)
			sub.Fill(checkerLight)
		}
	}
	return img
}
