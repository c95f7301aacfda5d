// Package texture defines the pixel sources the raycaster samples.
//
// Every texture is a square Grid whose edge is a power of two, so tileable
// surfaces wrap by bitmasking instead of modulo.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math/bits"
	"os"
	"path/filepath"

	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// Size is the default texture edge length.
const Size = 64

// Grid is a square RGBA pixel grid.
type Grid struct {
	Size int
	mask int
	Pix  []color.RGBA
}

// NewGrid creates a transparent grid. The size is rounded up to a power of two.
func NewGrid(size int) *Grid {
	size = ceilPow2(max(size, 1))
	return &Grid{Size: size, mask: size - 1, Pix: make([]color.RGBA, size*size)}
}

// FromImage copies img into a grid of the given size, sampling nearest pixels.
func FromImage(img image.Image, size int) *Grid {
	g := NewGrid(size)
	b := img.Bounds()
	if b.Empty() {
		return g
	}
	for y := 0; y < g.Size; y++ {
		sy := b.Min.Y + y*b.Dy()/g.Size
		for x := 0; x < g.Size; x++ {
			sx := b.Min.X + x*b.Dx()/g.Size
			g.Pix[y*g.Size+x] = color.RGBAModel.Convert(img.At(sx, sy)).(color.RGBA)
		}
	}
	return g
}

// PixelAt returns the pixel at (x, y), wrapping both axes.
func (g *Grid) PixelAt(x, y int) color.RGBA {
	return g.Pix[(y&g.mask)*g.Size+(x&g.mask)]
}

// Set writes a pixel. Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= g.Size || y >= g.Size {
		return
	}
	g.Pix[y*g.Size+x] = c
}

// Image returns a copy of the grid as an *image.RGBA.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			img.SetRGBA(x, y, g.Pix[y*g.Size+x])
		}
	}
	return img
}

func ceilPow2(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// Provider supplies every pixel the renderer draws.
type Provider interface {
	WallPixel(x, y int) color.RGBA
	FloorPixel(x, y int) color.RGBA
	CeilingPixel(x, y int) color.RGBA
	EnemyTexture(k entity.EnemyKind) *Grid
	SpriteTexture(k grid.SpriteKind) *Grid
	WeaponTexture(k entity.WeaponKind) *Grid
}

// Set is a Provider backed by in-memory grids. Missing entries resolve to
// Fallback.
type Set struct {
	Wall, Floor, Ceiling *Grid
	Enemies              map[entity.EnemyKind]*Grid
	Sprites              map[grid.SpriteKind]*Grid
	Weapons              map[entity.WeaponKind]*Grid
	Fallback             *Grid
}

// NewSet creates an empty set whose fallback is a magenta-black checker.
func NewSet() *Set {
	fb := NewGrid(Size)
	for y := 0; y < fb.Size; y++ {
		for x := 0; x < fb.Size; x++ {
			if (x/8+y/8)%2 == 0 {
				fb.Set(x, y, color.RGBA{255, 0, 255, 255})
			} else {
				fb.Set(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return &Set{
		Enemies:  make(map[entity.EnemyKind]*Grid),
		Sprites:  make(map[grid.SpriteKind]*Grid),
		Weapons:  make(map[entity.WeaponKind]*Grid),
		Fallback: fb,
	}
}

func (s *Set) surface(g *Grid) *Grid {
	if g == nil {
		return s.Fallback
	}
	return g
}

// WallPixel samples the wall texture with wraparound.
func (s *Set) WallPixel(x, y int) color.RGBA { return s.surface(s.Wall).PixelAt(x, y) }

// FloorPixel samples the floor texture with wraparound.
func (s *Set) FloorPixel(x, y int) color.RGBA { return s.surface(s.Floor).PixelAt(x, y) }

// CeilingPixel samples the ceiling texture with wraparound.
func (s *Set) CeilingPixel(x, y int) color.RGBA { return s.surface(s.Ceiling).PixelAt(x, y) }

// EnemyTexture returns the billboard for an enemy kind.
func (s *Set) EnemyTexture(k entity.EnemyKind) *Grid { return s.surface(s.Enemies[k]) }

// SpriteTexture returns the billboard for a sprite kind.
func (s *Set) SpriteTexture(k grid.SpriteKind) *Grid { return s.surface(s.Sprites[k]) }

// WeaponTexture returns the first-person overlay for a weapon kind.
func (s *Set) WeaponTexture(k entity.WeaponKind) *Grid { return s.surface(s.Weapons[k]) }

// Load decodes a PNG file into a grid of the given size.
func Load(path string, size int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return FromImage(img, size), nil
}

// LoadSurfaces replaces the wall, floor and ceiling grids with wall.png,
// floor.png and ceiling.png from dir. Missing files keep the current grid.
func (s *Set) LoadSurfaces(dir string) error {
	targets := []struct {
		name string
		dst  **Grid
	}{
		{"wall.png", &s.Wall},
		{"floor.png", &s.Floor},
		{"ceiling.png", &s.Ceiling},
	}
	for _, t := range targets {
		path := filepath.Join(dir, t.name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		g, err := Load(path, Size)
		if err != nil {
			return err
		}
		*t.dst = g
	}
	return nil
}
