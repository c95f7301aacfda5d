package raycast

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"chosenoffset.com/deepdelve/internal/texture"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// spentDim is the brightness of opened chests and used shrines.
const spentDim = 0.45

var flashWhite = color.RGBA{255, 255, 255, 255}

// billboard is one camera-facing sprite queued for the current frame.
type billboard struct {
	x, y    float64
	dist    float64 // squared distance, for sorting only
	scale   float64
	tex     *texture.Grid
	dim     float64
	selfLit bool
	flash   float64
}

// collect gathers every enemy and world sprite into r.boards.
func (r *Renderer) collect(v View) {
	r.boards = r.boards[:0]
	e := v.Eye
	add := func(b billboard) {
		dx, dy := b.x-e.X, b.y-e.Y
		b.dist = dx*dx + dy*dy
		r.boards = append(r.boards, b)
	}

	for c, en := range v.World.Enemies {
		if !en.IsAlive() {
			continue
		}
		p := c.Center()
		b := billboard{x: p.X, y: p.Y, scale: r.config.EnemyScale, tex: v.Textures.EnemyTexture(en.Kind), dim: 1}
		if en == v.FlashEnemy {
			b.flash = v.Flash
		}
		add(b)
	}

	for c, s := range v.World.Sprites {
		b := billboard{x: s.X, y: s.Y, scale: s.Kind.Scale(), tex: v.Textures.SpriteTexture(s.Kind), dim: 1}
		switch s.Kind {
		case grid.SpriteChest:
			if v.World.OpenedChests.Has(c) {
				b.dim = spentDim
			}
		case grid.SpriteShrine:
			if v.World.UsedShrines.Has(c) {
				b.dim = spentDim
			}
		case grid.SpriteTorch:
			b.selfLit = true
		}
		add(b)
	}

	// Far to near so nearer billboards overwrite farther ones.
	slices.SortFunc(r.boards, func(a, b billboard) int {
		return cmp.Compare(b.dist, a.dist)
	})
}

func (r *Renderer) drawSprites(v View, horizon float64) {
	r.collect(v)
	e := v.Eye
	w, h := float64(r.config.Width), float64(r.config.Height)

	det := e.PlaneX*e.DirY - e.DirX*e.PlaneY
	if det == 0 {
		return
	}
	inv := 1 / det

	for _, b := range r.boards {
		sx, sy := b.x-e.X, b.y-e.Y
		tx := inv * (e.DirY*sx - e.DirX*sy)
		ty := inv * (-e.PlaneY*sx + e.PlaneX*sy)
		if ty <= r.config.NearClip {
			continue
		}

		screenX := (w / 2) * (1 + tx/ty)
		full := h / ty
		size := full * b.scale
		bottom := horizon + full/2
		top := bottom - size
		left := screenX - size/2

		bright := b.dim
		if !b.selfLit {
			bright *= r.brightness(v, b.x, b.y, ty)
		}
		r.drawBillboard(b, ty, left, top, size, bright)
	}
}

func (r *Renderer) drawBillboard(b billboard, depth, left, top, size, bright float64) {
	ts := b.tex.Size
	x0 := max(int(math.Floor(left)), 0)
	x1 := min(int(math.Ceil(left+size)), r.config.Width)
	y0 := max(int(math.Floor(top)), 0)
	y1 := min(int(math.Ceil(top+size)), r.config.Height)

	for x := x0; x < x1; x++ {
		if depth >= r.depth[x] {
			continue
		}
		texX := int((float64(x) - left) * float64(ts) / size)
		if texX < 0 || texX >= ts {
			continue
		}
		for y := y0; y < y1; y++ {
			texY := int((float64(y) - top) * float64(ts) / size)
			if texY < 0 || texY >= ts {
				continue
			}
			c := b.tex.PixelAt(texX, texY)
			if c.A < r.config.AlphaThreshold {
				continue
			}
			c = shade(c, bright)
			if b.flash > 0 {
				c = blend(c, flashWhite, min(b.flash, 1))
			}
			r.fb.Set(x, y, c)
		}
	}
}

// Billboards reports how many sprites the last frame collected, culled or not.
func (r *Renderer) Billboards() int {
	return len(r.boards)
}
