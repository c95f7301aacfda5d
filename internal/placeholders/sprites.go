package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/texture"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// creatureStyle describes a billboard enemy. Figures stand on the bottom edge
// so they sit on the floor line when projected.
type creatureStyle struct {
	body, eyes     color.RGBA
	headR, headY   int
	bodyTop, bodyW int
	horns, tusks   bool
	tail, ribs     bool
	ragged         bool
}

var creatureStyles = map[entity.EnemyKind]creatureStyle{
	entity.EnemyRat:      {body: color.RGBA{110, 85, 70, 255}, eyes: color.RGBA{255, 40, 40, 255}, headR: 8, headY: 46, bodyTop: 48, bodyW: 34, tail: true},
	entity.EnemySkeleton: {body: color.RGBA{225, 220, 200, 255}, eyes: color.RGBA{20, 20, 20, 255}, headR: 9, headY: 14, bodyTop: 24, bodyW: 18, ribs: true},
	entity.EnemyGoblin:   {body: color.RGBA{80, 150, 60, 255}, eyes: color.RGBA{255, 230, 60, 255}, headR: 11, headY: 26, bodyTop: 36, bodyW: 24},
	entity.EnemyOrc:      {body: color.RGBA{95, 120, 85, 255}, eyes: color.RGBA{255, 80, 30, 255}, headR: 11, headY: 12, bodyTop: 22, bodyW: 38, tusks: true},
	entity.EnemyWraith:   {body: color.RGBA{90, 70, 130, 255}, eyes: color.RGBA{160, 255, 255, 255}, headR: 10, headY: 14, bodyTop: 22, bodyW: 30, ragged: true},
	entity.EnemyDemon:    {body: color.RGBA{170, 40, 30, 255}, eyes: color.RGBA{255, 220, 0, 255}, headR: 11, headY: 13, bodyTop: 23, bodyW: 36, horns: true, tail: true},
}

// CreateCreature draws an enemy billboard
func CreateCreature(s creatureStyle) *image.RGBA {
	img := CreateBlankTile()
	mid := TileSize / 2
	last := TileSize - 1

	// Body with outline
	x0, x1 := mid-s.bodyW/2, mid+s.bodyW/2
	fillRect(img, x0-1, s.bodyTop-1, x1+1, last, ColorPalette.Outline)
	fillRect(img, x0, s.bodyTop, x1, last, s.body)

	if s.ribs {
		for y := s.bodyTop + 4; y < s.bodyTop+22; y += 4 {
			fillRect(img, x0+2, y, x1-2, y+1, Darken(s.body, 0.6))
		}
		// Gap between the legs
		fillRect(img, mid-2, s.bodyTop+26, mid+2, last, transparent)
	}
	if s.ragged {
		for x := x0 - 1; x <= x1+1; x += 6 {
			fillRect(img, x, last-5, x+2, last, transparent)
		}
	}
	if s.tail {
		thickLine(img, x1, last-2, min(x1+14, last), last-10, 2, Lighten(s.body, 0.3))
	}

	fillCircle(img, mid, s.headY, s.headR, s.body, ColorPalette.Outline)

	if s.horns {
		thickLine(img, mid-s.headR/2, s.headY-s.headR+2, mid-s.headR, s.headY-s.headR-8, 2, ColorPalette.Outline)
		thickLine(img, mid+s.headR/2, s.headY-s.headR+2, mid+s.headR, s.headY-s.headR-8, 2, ColorPalette.Outline)
	}
	if s.tusks {
		fillRect(img, mid-5, s.headY+4, mid-4, s.headY+8, ColorPalette.Steel)
		fillRect(img, mid+4, s.headY+4, mid+5, s.headY+8, ColorPalette.Steel)
	}

	eyeDX := max(s.headR/2, 2)
	fillRect(img, mid-eyeDX-1, s.headY-2, mid-eyeDX+1, s.headY, s.eyes)
	fillRect(img, mid+eyeDX-1, s.headY-2, mid+eyeDX+1, s.headY, s.eyes)
	return img
}

// CreateStairs draws a stairwell opening
func CreateStairs() *image.RGBA {
	img := CreateBlankTile()
	for i := 0; i < 6; i++ {
		y := 30 + i*6
		inset := 14 - i*2
		fillRect(img, inset, y, TileSize-1-inset, y+5, Lighten(ColorPalette.StairsDark, float64(i)*0.06))
		fillRect(img, inset, y, TileSize-1-inset, y, ColorPalette.FloorStone)
	}
	return img
}

// CreateChest draws a banded wooden chest
func CreateChest() *image.RGBA {
	img := CreateBlankTile()
	fillRect(img, 9, 29, 54, 63, ColorPalette.Outline)
	fillRect(img, 10, 30, 53, 63, ColorPalette.Wood)
	fillRect(img, 10, 40, 53, 42, ColorPalette.GoldTrim)
	fillRect(img, 20, 30, 22, 63, Darken(ColorPalette.Wood, 0.7))
	fillRect(img, 41, 30, 43, 63, Darken(ColorPalette.Wood, 0.7))
	fillRect(img, 29, 38, 34, 46, ColorPalette.GoldTrim)
	return img
}

// CreateTrap draws a row of floor spikes
func CreateTrap() *image.RGBA {
	img := CreateBlankTile()
	fillRect(img, 4, 58, 59, 63, Darken(ColorPalette.Iron, 0.6))
	for x := 8; x < TileSize-4; x += 10 {
		for h := 0; h < 14; h++ {
			w := (14 - h) / 4
			fillRect(img, x-w, 57-h, x+w, 57-h, ColorPalette.Iron)
		}
	}
	return img
}

// CreateShrine draws a plinth with a glowing orb
func CreateShrine() *image.RGBA {
	img := CreateBlankTile()
	fillRect(img, 18, 34, 45, 63, ColorPalette.PillarStone)
	fillRect(img, 14, 56, 49, 63, Darken(ColorPalette.PillarStone, 0.8))
	fillCircle(img, 32, 22, 10, ColorPalette.ShrineGlow, Lighten(ColorPalette.ShrineGlow, 0.6))
	return img
}

// CreateTorch draws a standing torch
func CreateTorch() *image.RGBA {
	img := CreateBlankTile()
	fillRect(img, 30, 24, 33, 63, ColorPalette.Wood)
	fillCircle(img, 32, 18, 7, ColorPalette.TorchFlame, Darken(ColorPalette.TorchFlame, 0.7))
	fillCircle(img, 32, 20, 3, color.RGBA{255, 240, 160, 255}, color.RGBA{255, 220, 120, 255})
	return img
}

// CreatePillar draws a floor-to-ceiling column
func CreatePillar() *image.RGBA {
	img := CreatePatternedTile(ColorPalette.PillarStone, Darken(ColorPalette.PillarStone, 0.7), "planks")
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			if x < 14 || x > 49 {
				img.SetRGBA(x, y, transparent)
			}
		}
	}
	return img
}

// weaponShape is the first-person silhouette of a weapon, drawn from the
// bottom-right corner toward the centre of the screen.
type weaponShape struct {
	bladeLen, bladeW int
	guard            bool
	head             string // "", "axe", "mace"
}

var weaponShapes = map[entity.WeaponKind]weaponShape{
	entity.WeaponSword:  {bladeLen: 40, bladeW: 3, guard: true},
	entity.WeaponAxe:    {bladeLen: 34, bladeW: 2, head: "axe"},
	entity.WeaponDagger: {bladeLen: 22, bladeW: 2, guard: true},
	entity.WeaponMace:   {bladeLen: 30, bladeW: 2, head: "mace"},
	entity.WeaponSpear:  {bladeLen: 50, bladeW: 1},
}

// CreateWeapon draws a first-person weapon overlay
func CreateWeapon(s weaponShape) *image.RGBA {
	img := CreateBlankTile()
	// Handle from the corner up to the hilt
	hx, hy := 44, 44
	thickLine(img, 63, 63, hx, hy, 3, ColorPalette.Handle)

	tipX, tipY := hx-s.bladeLen*7/10, hy-s.bladeLen*7/10
	metal := ColorPalette.Steel
	if s.head != "" {
		metal = ColorPalette.Handle
	}
	thickLine(img, hx, hy, tipX, tipY, s.bladeW, metal)

	if s.guard {
		thickLine(img, hx-6, hy+6, hx+6, hy-6, 2, ColorPalette.GoldTrim)
	}
	switch s.head {
	case "axe":
		for i := 0; i < 12; i++ {
			thickLine(img, tipX+i, tipY+i, tipX+i-8, tipY+i+8, 1, ColorPalette.Steel)
		}
	case "mace":
		fillCircle(img, tipX, tipY, 6, ColorPalette.Iron, ColorPalette.Outline)
	}
	if s.head == "" && !s.guard {
		// Spear point
		fillCircle(img, tipX, tipY, 3, ColorPalette.Steel, ColorPalette.Outline)
	}
	return img
}

// thickLine draws a line of square brush width w
func thickLine(img *image.RGBA, x0, y0, x1, y1, w int, col color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	half := w / 2
	for {
		fillRect(img, x0-half, y0-half, x0-half+w-1, y0-half+w-1, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Surfaces returns the wall, floor and ceiling tiles
func Surfaces() (wall, floor, ceiling *image.RGBA) {
	wall = CreatePatternedTile(ColorPalette.WallStone, ColorPalette.WallMortar, "bricks")
	floor = CreatePatternedTile(ColorPalette.FloorStone, ColorPalette.FloorCobble, "grid")
	ceiling = CreatePatternedTile(ColorPalette.Ceiling, ColorPalette.CeilingBeam, "planks")
	return wall, floor, ceiling
}

// SpriteImage returns the billboard for a feature kind
func SpriteImage(k grid.SpriteKind) *image.RGBA {
	switch k {
	case grid.SpriteStairs:
		return CreateStairs()
	case grid.SpriteChest:
		return CreateChest()
	case grid.SpriteTrap:
		return CreateTrap()
	case grid.SpriteShrine:
		return CreateShrine()
	case grid.SpriteTorch:
		return CreateTorch()
	default:
		return CreatePillar()
	}
}

// Provider builds the full procedural texture set
func Provider() *texture.Set {
	set := texture.NewSet()
	wall, floor, ceiling := Surfaces()
	set.Wall = texture.FromImage(wall, TileSize)
	set.Floor = texture.FromImage(floor, TileSize)
	set.Ceiling = texture.FromImage(ceiling, TileSize)

	for _, k := range entity.EnemyKinds {
		set.Enemies[k] = texture.FromImage(CreateCreature(creatureStyles[k]), TileSize)
	}
	for _, k := range grid.SpriteKinds {
		set.Sprites[k] = texture.FromImage(SpriteImage(k), TileSize)
	}
	for _, k := range entity.WeaponKinds {
		set.Weapons[k] = texture.FromImage(CreateWeapon(weaponShapes[k]), TileSize)
	}
	return set
}

// GenerateAndSave writes every placeholder sheet as PNG into dir
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	wall, floor, ceiling := Surfaces()
	sheets := map[string][]*image.RGBA{
		"surfaces.png": {wall, floor, ceiling},
	}
	for _, k := range entity.EnemyKinds {
		sheets["enemies.png"] = append(sheets["enemies.png"], CreateCreature(creatureStyles[k]))
	}
	for _, k := range grid.SpriteKinds {
		sheets["sprites.png"] = append(sheets["sprites.png"], SpriteImage(k))
	}
	for _, k := range entity.WeaponKinds {
		sheets["weapons.png"] = append(sheets["weapons.png"], CreateWeapon(weaponShapes[k]))
	}

	for name, tiles := range sheets {
		path := filepath.Join(dir, name)
		if err := SavePNG(CreateAtlas(tiles, len(tiles)), path); err != nil {
			return err
		}
		fmt.Printf("  wrote %s (%d textures)\n", path, len(tiles))
	}
	return nil
}
