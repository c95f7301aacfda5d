// Package placeholders synthesizes the procedural textures the game ships
// with, so it runs without any art assets.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"chosenoffset.com/deepdelve/internal/texture"
)

// TileSize is the standard size for placeholder textures
const TileSize = texture.Size

// ColorPalette defines colors for the dungeon theme
var ColorPalette = struct {
	// Surfaces
	WallStone   color.RGBA
	WallMortar  color.RGBA
	FloorStone  color.RGBA
	FloorCobble color.RGBA
	Ceiling     color.RGBA
	CeilingBeam color.RGBA

	// Features
	Wood        color.RGBA
	GoldTrim    color.RGBA
	Iron        color.RGBA
	ShrineGlow  color.RGBA
	TorchFlame  color.RGBA
	PillarStone color.RGBA
	StairsDark  color.RGBA

	// Weapons
	Steel  color.RGBA
	Handle color.RGBA

	Outline color.RGBA
}{
	WallStone:   color.RGBA{120, 112, 100, 255}, // Weathered block
	WallMortar:  color.RGBA{60, 55, 50, 255},
	FloorStone:  color.RGBA{70, 65, 60, 255}, // Dark stone gray
	FloorCobble: color.RGBA{55, 50, 45, 255},
	Ceiling:     color.RGBA{40, 38, 36, 255},
	CeilingBeam: color.RGBA{75, 55, 40, 255},

	Wood:        color.RGBA{120, 80, 45, 255},
	GoldTrim:    color.RGBA{255, 215, 0, 255},
	Iron:        color.RGBA{90, 90, 100, 255},
	ShrineGlow:  color.RGBA{120, 200, 255, 255},
	TorchFlame:  color.RGBA{255, 150, 40, 255},
	PillarStone: color.RGBA{150, 145, 135, 255},
	StairsDark:  color.RGBA{20, 18, 16, 255},

	Steel:  color.RGBA{190, 195, 205, 255},
	Handle: color.RGBA{90, 60, 35, 255},

	Outline: color.RGBA{15, 12, 10, 255},
}

var transparent = color.RGBA{0, 0, 0, 0}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBlankTile creates a fully transparent tile for billboards
func CreateBlankTile() *image.RGBA {
	return CreateSolidTile(transparent)
}

// CreatePatternedTile creates a tileable surface with a simple pattern and a
// little deterministic grain
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			img.SetRGBA(x, y, grain(baseColor, x, y))
		}
	}

	switch pattern {
	case "bricks":
		// Staggered courses, 16px high and 32px wide
		for y := 0; y < TileSize; y++ {
			course := y / 16
			for x := 0; x < TileSize; x++ {
				offset := 0
				if course%2 == 1 {
					offset = 16
				}
				if y%16 == 0 || (x+offset)%32 == 0 {
					img.SetRGBA(x, y, patternColor)
				}
			}
		}
	case "grid":
		for i := 0; i < TileSize; i += 16 {
			for x := 0; x < TileSize; x++ {
				img.SetRGBA(x, i, patternColor)
				img.SetRGBA(i, x, patternColor)
			}
		}
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					img.SetRGBA(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	case "planks":
		for y := 0; y < TileSize; y++ {
			for x := 0; x < TileSize; x++ {
				if x%16 == 0 {
					img.SetRGBA(x, y, patternColor)
				}
			}
		}
	}

	return img
}

// CreateCircle creates a circular sprite on a transparent background
func CreateCircle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := CreateBlankTile()
	fillCircle(img, TileSize/2, TileSize/2, TileSize/2-2, fillColor, outlineColor)
	return img
}

// fillCircle draws a filled, outlined disc
func fillCircle(img *image.RGBA, cx, cy, radius int, fillColor, outlineColor color.RGBA) {
	for y := cy - radius - 1; y <= cy+radius+1; y++ {
		for x := cx - radius - 1; x <= cx+radius+1; x++ {
			dx := x - cx
			dy := y - cy
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.SetRGBA(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.SetRGBA(x, y, outlineColor)
			}
		}
	}
}

// fillRect draws a solid rectangle with inclusive corners
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	tileCount := len(tiles)
	rows := (tileCount + columns - 1) / columns

	width := columns * TileSize
	height := rows * TileSize

	atlas := image.NewRGBA(image.Rect(0, 0, width, height))

	// Copy each tile into the atlas
	for i, tile := range tiles {
		if tile == nil {
			continue
		}

		col := i % columns
		row := i / columns

		x := col * TileSize
		y := row * TileSize

		destRect := image.Rect(x, y, x+TileSize, y+TileSize)
		draw.Draw(atlas, destRect, tile, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath, err)
	}
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// grain varies a color by a stable per-pixel hash so surfaces look worn
func grain(c color.RGBA, x, y int) color.RGBA {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	f := 0.85 + float64(h>>24)/255*0.25
	if f > 1 {
		return Lighten(c, (f-1)*0.5)
	}
	return Darken(c, f)
}
