package raycast

import "math"

// drawWeapon paints the held weapon in the lower right. A swing raises and
// tilts it toward the centre, and walking bob sways it.
func (r *Renderer) drawWeapon(v View) {
	if v.Weapon == nil {
		return
	}
	tex := v.Textures.WeaponTexture(v.Weapon.Kind)
	w, h := float64(r.config.Width), float64(r.config.Height)
	size := h * r.config.WeaponScale

	swing := math.Sin(math.Min(math.Max(v.Swing, 0), 1) * math.Pi)
	left := w*0.62 - swing*w*0.12 + v.Bob*w*0.5
	top := h - size*0.85 - swing*size*0.25 + math.Abs(v.Bob)*h

	ts := tex.Size
	x0 := max(int(left), 0)
	x1 := min(int(left+size), r.config.Width)
	y0 := max(int(top), 0)
	y1 := min(int(top+size), r.config.Height)
	for y := y0; y < y1; y++ {
		texY := int((float64(y) - top) * float64(ts) / size)
		if texY < 0 || texY >= ts {
			continue
		}
		for x := x0; x < x1; x++ {
			texX := int((float64(x) - left) * float64(ts) / size)
			if texX < 0 || texX >= ts {
				continue
			}
			c := tex.PixelAt(texX, texY)
			if c.A < r.config.AlphaThreshold {
				continue
			}
			r.fb.Set(x, y, c)
		}
	}
}
