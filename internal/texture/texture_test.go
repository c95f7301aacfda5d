package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

func TestNewGridRoundsToPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{{1, 1}, {2, 2}, {3, 4}, {64, 64}, {65, 128}, {0, 1}}
	for _, tt := range tests {
		if got := NewGrid(tt.in).Size; got != tt.want {
			t.Errorf("NewGrid(%d) expected size %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestPixelAtWraps(t *testing.T) {
	g := NewGrid(8)
	red := color.RGBA{255, 0, 0, 255}
	g.Set(7, 0, red)
	for _, p := range [][2]int{{7, 0}, {-1, 0}, {15, 8}, {-9, -16}} {
		if got := g.PixelAt(p[0], p[1]); got != red {
			t.Errorf("PixelAt(%d,%d) expected red, got %v", p[0], p[1], got)
		}
	}
	g.Set(8, 0, color.RGBA{0, 255, 0, 255}) // ignored
	if g.PixelAt(0, 0) != (color.RGBA{}) {
		t.Error("out-of-range Set must not wrap")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})
	g := FromImage(img, 4)
	if got := g.PixelAt(3, 3); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("expected nearest-neighbour upscale, got %v", got)
	}
	if out := g.Image(); out.Bounds().Dx() != 4 || out.RGBAAt(2, 2) != g.PixelAt(2, 2) {
		t.Error("Image should round-trip the grid")
	}
}

func TestSetFallsBack(t *testing.T) {
	s := NewSet()
	if s.EnemyTexture(entity.EnemyOrc) != s.Fallback || s.SpriteTexture(grid.SpriteChest) != s.Fallback {
		t.Error("missing textures should resolve to the fallback")
	}
	if s.WallPixel(0, 0) != s.Fallback.PixelAt(0, 0) {
		t.Error("missing wall should sample the fallback")
	}
	s.Wall = NewGrid(Size)
	if s.WallPixel(0, 0) != (color.RGBA{}) {
		t.Error("assigned wall should be sampled")
	}
}

func TestLoadSurfacesKeepsMissing(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 200, 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, "wall.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s := NewSet()
	floor := NewGrid(Size)
	s.Floor = floor
	if err := s.LoadSurfaces(dir); err != nil {
		t.Fatalf("LoadSurfaces: %v", err)
	}
	if got := s.WallPixel(10, 10); got != (color.RGBA{0, 0, 200, 255}) {
		t.Errorf("expected loaded wall, got %v", got)
	}
	if s.Floor != floor {
		t.Error("missing floor.png should keep the current floor")
	}
	if s.Ceiling != nil {
		t.Error("missing ceiling.png should leave the ceiling unset")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, Size); err == nil {
		t.Error("expected a decode error")
	}
}
