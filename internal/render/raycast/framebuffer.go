package raycast

import "image/color"

// Framebuffer is a fixed-size RGBA pixel buffer, row-major, 4 bytes per
// pixel. It matches the layout ebiten's WritePixels expects.
type Framebuffer struct {
	Width, Height int
	Pix           []byte
}

// NewFramebuffer allocates a black, opaque buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{Width: width, Height: height, Pix: make([]byte, width*height*4)}
	f.Fill(color.RGBA{0, 0, 0, 255})
	return f
}

// Set writes one pixel. Out-of-range coordinates are dropped.
func (f *Framebuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = 255
}

// At reads one pixel. Out-of-range coordinates read as transparent black.
func (f *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{}
	}
	i := (y*f.Width + x) * 4
	return color.RGBA{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

// Fill paints every pixel.
func (f *Framebuffer) Fill(c color.RGBA) {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
		f.Pix[i+3] = c.A
	}
}

// Tint blends every pixel toward c by amount in [0, 1].
func (f *Framebuffer) Tint(c color.RGBA, amount float64) {
	if amount <= 0 {
		return
	}
	amount = min(amount, 1)
	keep := 1 - amount
	r, g, b := float64(c.R)*amount, float64(c.G)*amount, float64(c.B)*amount
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = uint8(float64(f.Pix[i])*keep + r)
		f.Pix[i+1] = uint8(float64(f.Pix[i+1])*keep + g)
		f.Pix[i+2] = uint8(float64(f.Pix[i+2])*keep + b)
	}
}

// shade scales a color by brightness b, saturating at 255.
func shade(c color.RGBA, b float64) color.RGBA {
	return color.RGBA{clamp8(float64(c.R) * b), clamp8(float64(c.G) * b), clamp8(float64(c.B) * b), c.A}
}

// blend mixes c toward target by t in [0, 1].
func blend(c, target color.RGBA, t float64) color.RGBA {
	k := 1 - t
	return color.RGBA{
		clamp8(float64(c.R)*k + float64(target.R)*t),
		clamp8(float64(c.G)*k + float64(target.G)*t),
		clamp8(float64(c.B)*k + float64(target.B)*t),
		c.A,
	}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
