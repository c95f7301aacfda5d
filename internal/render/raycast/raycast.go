// Package raycast draws the first-person view of a grid world into an RGBA
// framebuffer: textured floor and ceiling, DDA walls with a per-column depth
// buffer, depth-sorted billboards, and the weapon overlay.
//
// Render only reads its View. All state it keeps between frames is scratch
// space.
package raycast

import (
	"image/color"
	"math"

	"chosenoffset.com/deepdelve/internal/camera"
	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/render/lighting"
	"chosenoffset.com/deepdelve/internal/texture"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// farReciprocal stands in for 1/0 when a ray runs parallel to an axis.
const farReciprocal = 1e30

// Config holds the renderer's fixed parameters.
type Config struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	TexSize        int     `json:"-"`
	SideShade      float64 `json:"side_shade"`      // brightness of y-side walls
	AlphaThreshold uint8   `json:"alpha_threshold"` // billboard pixels below are skipped
	NearClip       float64 `json:"near_clip"`       // billboards closer than this are culled
	EnemyScale     float64 `json:"enemy_scale"`
	WeaponScale    float64 `json:"weapon_scale"` // overlay height as a fraction of the screen
}

// DefaultConfig returns the standard 480x300 view.
func DefaultConfig() Config {
	return Config{
		Width:          480,
		Height:         300,
		TexSize:        texture.Size,
		SideShade:      0.7,
		AlphaThreshold: 128,
		NearClip:       0.1,
		EnemyScale:     0.85,
		WeaponScale:    0.55,
	}
}

// Solid answers whether a ray stops in a tile. Out-of-bounds tiles must
// report solid so every ray terminates.
type Solid interface {
	IsSolid(x, y int) bool
}

// Eye is the continuous camera the frame is drawn from.
type Eye struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
	// Horizon shifts the horizon line by a fraction of the screen height.
	Horizon float64
}

// EyeFrom reads the interpolated camera. Shake is an extra horizon offset.
func EyeFrom(c *camera.Camera, shake float64) Eye {
	return Eye{
		X: c.X, Y: c.Y,
		DirX: c.DirX, DirY: c.DirY,
		PlaneX: c.PlaneX, PlaneY: c.PlaneY,
		Horizon: c.Pitch + c.BobOffset() + shake,
	}
}

// View is everything one frame reads.
type View struct {
	World    *grid.World
	Eye      Eye
	Textures texture.Provider
	// Light may be nil for full brightness.
	Light *lighting.Manager

	// FlashEnemy blends toward white by Flash in [0, 1].
	FlashEnemy *entity.Enemy
	Flash      float64
	// DamageFlash tints the whole frame red, in [0, 1].
	DamageFlash float64

	// Weapon is drawn as the first-person overlay when set. Swing in [0, 1]
	// is the remaining attack cooldown and drives the swing animation.
	Weapon *entity.Weapon
	Swing  float64
	Bob    float64
}

// Renderer owns the framebuffer and per-frame scratch buffers.
type Renderer struct {
	config Config
	fb     *Framebuffer
	depth  []float64
	boards []billboard

	// blank stands in when a View carries no textures.
	blank *texture.Set
}

// New creates a renderer of the configured size.
func New(config Config) *Renderer {
	def := DefaultConfig()
	if config.Width <= 0 || config.Height <= 0 {
		config.Width, config.Height = def.Width, def.Height
	}
	if config.TexSize <= 0 {
		config.TexSize = def.TexSize
	}
	return &Renderer{
		config: config,
		fb:     NewFramebuffer(config.Width, config.Height),
		depth:  make([]float64, config.Width),
	}
}

// Framebuffer returns the buffer the last Render wrote.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Depth returns the perpendicular wall distance recorded for each column.
func (r *Renderer) Depth() []float64 {
	return r.depth
}

// Render repaints the whole framebuffer.
func (r *Renderer) Render(v View) {
	if v.Textures == nil {
		if r.blank == nil {
			r.blank = texture.NewSet()
		}
		v.Textures = r.blank
	}
	horizon := float64(r.config.Height)/2 + v.Eye.Horizon*float64(r.config.Height)
	r.drawFloorCeiling(v, horizon)
	r.drawWalls(v, horizon)
	r.drawSprites(v, horizon)
	r.drawWeapon(v)
	r.fb.Tint(color.RGBA{200, 0, 0, 255}, v.DamageFlash*0.45)
}

func (r *Renderer) brightness(v View, x, y, dist float64) float64 {
	if v.Light == nil {
		return 1
	}
	return v.Light.Brightness(x, y, dist)
}

// drawFloorCeiling casts one horizontal span per row. The two extreme rays
// bound the span and the world point is interpolated linearly across it.
func (r *Renderer) drawFloorCeiling(v View, horizon float64) {
	w, h := r.config.Width, r.config.Height
	e := v.Eye
	ts := float64(r.config.TexSize)
	posZ := 0.5 * float64(h)

	rayX0, rayY0 := e.DirX-e.PlaneX, e.DirY-e.PlaneY
	rayX1, rayY1 := e.DirX+e.PlaneX, e.DirY+e.PlaneY

	for y := 0; y < h; y++ {
		p := float64(y) + 0.5 - horizon
		floor := p > 0
		p = math.Abs(p)
		if p < 1e-6 {
			continue
		}
		rowDist := posZ / p

		stepX := rowDist * (rayX1 - rayX0) / float64(w)
		stepY := rowDist * (rayY1 - rayY0) / float64(w)
		wx := e.X + rowDist*rayX0
		wy := e.Y + rowDist*rayY0

		for x := 0; x < w; x++ {
			fx, fy := wx-math.Floor(wx), wy-math.Floor(wy)
			tx, ty := int(ts*fx), int(ts*fy)

			var c color.RGBA
			if floor {
				c = v.Textures.FloorPixel(tx, ty)
			} else {
				c = v.Textures.CeilingPixel(tx, ty)
			}
			r.fb.Set(x, y, shade(c, r.brightness(v, wx, wy, rowDist)))

			wx += stepX
			wy += stepY
		}
	}
}

// Hit is the result of one wall ray.
type Hit struct {
	// Dist is the perpendicular distance to the camera plane.
	Dist       float64
	MapX, MapY int
	// Side is 0 when an x-side (vertical grid line) was crossed, 1 for y.
	Side       int
	WallX      float64 // fractional hit position along the wall face
	RayX, RayY float64
}

// Cast walks one ray through the grid with a DDA and returns the first solid
// tile. cameraX spans [-1, 1] from the left screen edge to the right.
func Cast(world Solid, e Eye, cameraX float64, maxSteps int) Hit {
	rayX := e.DirX + e.PlaneX*cameraX
	rayY := e.DirY + e.PlaneY*cameraX

	mapX, mapY := int(math.Floor(e.X)), int(math.Floor(e.Y))

	deltaX, deltaY := farReciprocal, farReciprocal
	if rayX != 0 {
		deltaX = math.Abs(1 / rayX)
	}
	if rayY != 0 {
		deltaY = math.Abs(1 / rayY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if rayX < 0 {
		stepX = -1
		sideX = (e.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - e.X) * deltaX
	}
	if rayY < 0 {
		stepY = -1
		sideY = (e.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - e.Y) * deltaY
	}

	side := 0
	for i := 0; i < maxSteps; i++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			sideY += deltaY
			mapY += stepY
			side = 1
		}
		if world.IsSolid(mapX, mapY) {
			break
		}
	}

	var dist float64
	if side == 0 {
		dist = sideX - deltaX
	} else {
		dist = sideY - deltaY
	}
	dist = math.Max(dist, 1e-4)

	var wallX float64
	if side == 0 {
		wallX = e.Y + dist*rayY
	} else {
		wallX = e.X + dist*rayX
	}
	wallX -= math.Floor(wallX)

	return Hit{Dist: dist, MapX: mapX, MapY: mapY, Side: side, WallX: wallX, RayX: rayX, RayY: rayY}
}

func (r *Renderer) drawWalls(v View, horizon float64) {
	w, h := r.config.Width, r.config.Height
	ts := r.config.TexSize
	maxSteps := v.World.Width + v.World.Height + 2

	for x := 0; x < w; x++ {
		cameraX := 2*float64(x)/float64(w) - 1
		hit := Cast(v.World, v.Eye, cameraX, maxSteps)
		r.depth[x] = hit.Dist

		texX := int(hit.WallX * float64(ts))
		if (hit.Side == 0 && hit.RayX > 0) || (hit.Side == 1 && hit.RayY < 0) {
			texX = ts - texX - 1
		}

		lineH := float64(h) / hit.Dist
		top := horizon - lineH/2
		start := max(int(top), 0)
		end := min(int(horizon+lineH/2), h-1)

		b := r.brightness(v, v.Eye.X+hit.Dist*hit.RayX, v.Eye.Y+hit.Dist*hit.RayY, hit.Dist)
		if hit.Side == 1 {
			b *= r.config.SideShade
		}

		texStep := float64(ts) / lineH
		for y := start; y <= end; y++ {
			texY := int((float64(y) - top) * texStep)
			r.fb.Set(x, y, shade(v.Textures.WallPixel(texX, texY), b))
		}
	}
}
