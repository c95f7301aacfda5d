package placeholders

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

func TestProviderCoversEveryKind(t *testing.T) {
	set := Provider()
	for _, k := range entity.EnemyKinds {
		if set.EnemyTexture(k) == set.Fallback {
			t.Errorf("enemy %v has no texture", k)
		}
	}
	for _, k := range grid.SpriteKinds {
		if set.SpriteTexture(k) == set.Fallback {
			t.Errorf("sprite %v has no texture", k)
		}
	}
	for _, k := range entity.WeaponKinds {
		if set.WeaponTexture(k) == set.Fallback {
			t.Errorf("weapon %v has no texture", k)
		}
	}
}

func TestBillboardsHaveTransparency(t *testing.T) {
	set := Provider()
	if a := set.EnemyTexture(entity.EnemyRat).PixelAt(0, 0).A; a != 0 {
		t.Errorf("rat corner should be transparent, alpha %d", a)
	}
	if a := set.EnemyTexture(entity.EnemyRat).PixelAt(TileSize/2, TileSize-1).A; a != 255 {
		t.Errorf("rat body should stand on the bottom edge, alpha %d", a)
	}
	if a := set.WallPixel(5, 5).A; a != 255 {
		t.Errorf("walls must be opaque, alpha %d", a)
	}
}

func TestShadeHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Darken(c, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("unexpected darken %v", got)
	}
	if got := Lighten(c, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("full lighten should be white, got %v", got)
	}
}

func TestGenerateAndSave(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateAndSave(dir); err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}
	for _, name := range []string{"surfaces.png", "enemies.png", "sprites.png", "weapons.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}
