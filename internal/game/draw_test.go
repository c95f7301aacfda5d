package game

import (
	"image/color"
	"testing"

	"chosenoffset.com/deepdelve/internal/input"
	"chosenoffset.com/deepdelve/internal/render"
)

type fakeGeoM struct {
	sx, sy float64
	tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx += tx; g.ty += ty }
func (g *fakeGeoM) Scale(sx, sy float64)     { g.sx *= sx; g.sy *= sy }
func (g *fakeGeoM) Reset()                   { *g = fakeGeoM{sx: 1, sy: 1} }

type fakeImage struct {
	w, h     int
	disposed bool
	drawn    []fakeGeoM
}

func (i *fakeImage) Size() (int, int)       { return i.w, i.h }
func (i *fakeImage) Fill(color.Color)       {}
func (i *fakeImage) WritePixels(pix []byte) {}
func (i *fakeImage) Dispose()               { i.disposed = true }
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	if opts != nil && opts.GeoM != nil {
		i.drawn = append(i.drawn, *opts.GeoM.(*fakeGeoM))
	}
}

type fakeRenderer struct {
	images  []*fakeImage
	circles int
}

func (r *fakeRenderer) NewImage(w, h int) render.Image {
	img := &fakeImage{w: w, h: h}
	r.images = append(r.images, img)
	return img
}
func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.circles++
}
func (r *fakeRenderer) DrawText(render.Image, string, int, int, color.Color, float64) {}
func (r *fakeRenderer) MeasureText(s string, scale float64) (int, int) {
	return int(float64(6*len(s)) * scale), int(10 * scale)
}

func withFakeGeoM(t *testing.T) {
	prev := render.NewGeoM
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{sx: 1, sy: 1} }
	t.Cleanup(func() { render.NewGeoM = prev })
}

func TestDrawScalesHalfResolutionView(t *testing.T) {
	withFakeGeoM(t)
	r := &fakeRenderer{}
	in := input.NewState()
	m := NewManager(testConfig(), r, in, fixedClock(tick), nil)
	screen := &fakeImage{w: 640, h: 400}

	m.Draw(screen)
	if len(r.images) != 1 || r.images[0].w != 640 || r.images[0].h != 320 {
		t.Fatalf("expected one 640x320 view image, got %+v", r.images)
	}
	if g := screen.drawn[0]; g.sx != 1 || g.sy != 1 {
		t.Errorf("full resolution should draw unscaled, got %vx%v", g.sx, g.sy)
	}
	if r.circles != 1 {
		t.Errorf("expected one player marker on the minimap, got %d", r.circles)
	}

	in.Press(input.ToggleQuality)
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	in.EndTick()
	if !m.HalfResolution || !r.images[0].disposed {
		t.Fatal("toggling quality should release the full-size view image")
	}

	m.Draw(screen)
	half := r.images[len(r.images)-1]
	if half.w != 320 || half.h != 160 {
		t.Errorf("expected a 320x160 view image, got %dx%d", half.w, half.h)
	}
	if g := screen.drawn[1]; g.sx != 2 || g.sy != 2 {
		t.Errorf("half resolution should scale by 2, got %vx%v", g.sx, g.sy)
	}
}
