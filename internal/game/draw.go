package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/deepdelve/internal/render"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

var (
	hudBackground = color.RGBA{16, 12, 10, 255}
	hudText       = color.RGBA{230, 220, 200, 255}
	hudDim        = color.RGBA{150, 140, 120, 255}
	hudHint       = color.RGBA{255, 220, 120, 255}
	barBack       = color.RGBA{50, 40, 35, 255}
	barHealth     = color.RGBA{190, 40, 40, 255}
	barMana       = color.RGBA{50, 90, 200, 255}
	barXP         = color.RGBA{200, 170, 60, 255}
	barEnemy      = color.RGBA{200, 60, 30, 255}
	overlayShade  = color.RGBA{0, 0, 0, 170}
)

// minimapColors maps each cell class to its minimap colour. Unexplored cells
// are not drawn.
var minimapColors = map[grid.Cell]color.RGBA{
	grid.CellWall:        {90, 80, 70, 230},
	grid.CellFloor:       {35, 30, 28, 230},
	grid.CellPlayer:      {80, 220, 90, 255},
	grid.CellEnemy:       {220, 50, 50, 255},
	grid.CellStairs:      {240, 240, 240, 255},
	grid.CellChest:       {230, 180, 40, 255},
	grid.CellOpenedChest: {110, 90, 40, 230},
	grid.CellTrap:        {170, 60, 170, 255},
	grid.CellShrine:      {80, 200, 230, 255},
	grid.CellUsedShrine:  {50, 90, 100, 230},
	grid.CellDecoration:  {140, 110, 70, 230},
}

const minimapCell = 5

// Draw renders the 3D view and the HUD to the screen.
func (m *Manager) Draw(screen render.Image) {
	fb := m.raycaster.Framebuffer()
	if m.frame == nil {
		m.frame = m.Renderer.NewImage(fb.Width, fb.Height)
	}
	if m.geo == nil {
		m.geo = render.NewGeoM()
	}

	screen.Fill(hudBackground)

	m.raycaster.Render(m.State.View(m.Textures))
	m.frame.WritePixels(fb.Pix)

	// The frame may be smaller than the view area; stretch it to fit.
	fw, fh := m.frame.Size()
	m.geo.Reset()
	m.geo.Scale(float64(m.Config.Render.Width)/float64(fw), float64(m.Config.Render.Height)/float64(fh))
	m.geo.Translate(float64(m.viewX()), 0)
	screen.DrawImage(m.frame, &render.DrawImageOptions{GeoM: m.geo})

	hud := m.State.HUD()
	m.drawMessages(screen, hud)
	m.drawMinimap(screen, hud)
	m.drawEnemy(screen, hud)
	m.drawStatus(screen, hud)
	m.drawPhase(screen, hud)
}

func (m *Manager) viewX() int {
	return (m.ScreenWidth - m.Config.Render.Width) / 2
}

func (m *Manager) bar(screen render.Image, x, y, w, h float32, value, maxValue int, fill color.Color) {
	m.Renderer.FillRect(screen, x, y, w, h, barBack)
	if maxValue > 0 && value > 0 {
		frac := min(float32(value)/float32(maxValue), 1)
		m.Renderer.FillRect(screen, x, y, w*frac, h, fill)
	}
	m.Renderer.StrokeRect(screen, x, y, w, h, 1, hudDim)
}

func (m *Manager) drawMessages(screen render.Image, hud HUDState) {
	x := m.viewX() + 6
	y := m.Config.Render.Height - 6 - 12*len(hud.Messages)
	for i, line := range hud.Messages {
		clr := hudDim
		if i == len(hud.Messages)-1 {
			clr = hudText
		}
		m.Renderer.DrawText(screen, line, x, y+12*i, clr, 1)
	}
	if hud.Hint != "" {
		w, _ := m.Renderer.MeasureText(hud.Hint, 1.2)
		m.Renderer.DrawText(screen, hud.Hint, m.viewX()+(m.Config.Render.Width-w)/2, m.Config.Render.Height/2+40, hudHint, 1.2)
	}
}

func (m *Manager) drawMinimap(screen render.Image, hud HUDState) {
	size := len(hud.Minimap) * minimapCell
	left := float32(m.viewX() + m.Config.Render.Width - size - 6)
	top := float32(6)
	m.Renderer.FillRect(screen, left-2, top-2, float32(size+4), float32(size+4), overlayShade)
	for row, cells := range hud.Minimap {
		for col, c := range cells {
			clr, ok := minimapColors[c]
			if !ok {
				continue
			}
			x, y := left+float32(col*minimapCell), top+float32(row*minimapCell)
			if c == grid.CellPlayer {
				m.Renderer.FillRect(screen, x, y, minimapCell, minimapCell, minimapColors[grid.CellFloor])
				r := float32(minimapCell) / 2
				m.Renderer.FillCircle(screen, x+r, y+r, r, clr)
				continue
			}
			m.Renderer.FillRect(screen, x, y, minimapCell, minimapCell, clr)
		}
	}
}

func (m *Manager) drawEnemy(screen render.Image, hud HUDState) {
	if hud.Enemy == nil {
		return
	}
	const w = 200
	x := float32(m.viewX() + (m.Config.Render.Width-w)/2)
	m.Renderer.DrawText(screen, fmt.Sprintf("%s  %d/%d", hud.Enemy.Name, hud.Enemy.HP, hud.Enemy.MaxHP), int(x), 6, hudText, 1)
	m.bar(screen, x, 20, w, 8, hud.Enemy.HP, hud.Enemy.MaxHP, barEnemy)
}

func (m *Manager) drawStatus(screen render.Image, hud HUDState) {
	top := m.Config.Render.Height + 8
	left := 12

	m.Renderer.DrawText(screen, fmt.Sprintf("HP %d/%d", hud.HP, hud.MaxHP), left, top, hudText, 1)
	m.bar(screen, float32(left+90), float32(top+2), 140, 9, hud.HP, hud.MaxHP, barHealth)
	m.Renderer.DrawText(screen, fmt.Sprintf("MP %d/%d", hud.Mana, hud.MaxMana), left, top+16, hudText, 1)
	m.bar(screen, float32(left+90), float32(top+18), 140, 9, hud.Mana, hud.MaxMana, barMana)
	m.Renderer.DrawText(screen, fmt.Sprintf("LV %d", hud.Level), left, top+32, hudText, 1)
	m.bar(screen, float32(left+90), float32(top+34), 140, 9, hud.XP, hud.XPNext, barXP)

	stats := fmt.Sprintf("Floor %d   Gold %d", hud.Floor, hud.Gold)
	if hud.Defending {
		stats += "   [guarding]"
	}
	m.Renderer.DrawText(screen, stats, left, top+50, hudDim, 1)

	wx := m.ScreenWidth/2 + 20
	m.Renderer.DrawText(screen, hud.Weapon.Name, wx, top, hudText, 1.2)
	m.Renderer.DrawText(screen, fmt.Sprintf("DMG %d  ATK +%d  CRIT %d%%", hud.Weapon.BaseDamage, hud.Weapon.AttackBonus, hud.Weapon.CritChance), wx, top+18, hudDim, 1)
	for i := range hud.Weapons {
		clr := hudDim
		if i == hud.Equipped {
			clr = hudHint
		}
		m.Renderer.DrawText(screen, fmt.Sprintf("%d", i+1), wx+i*22, top+36, clr, 1)
	}
}

func (m *Manager) drawPhase(screen render.Image, hud HUDState) {
	var title string
	switch hud.Phase {
	case PhaseGameOver:
		title = "YOU DIED"
	case PhaseVictory:
		title = "VICTORY"
	default:
		return
	}
	m.Renderer.FillRect(screen, 0, 0, float32(m.ScreenWidth), float32(m.ScreenHeight), overlayShade)
	w, _ := m.Renderer.MeasureText(title, 3)
	m.Renderer.DrawText(screen, title, (m.ScreenWidth-w)/2, m.ScreenHeight/2-40, hudHint, 3)
	sub := fmt.Sprintf("Floor %d, level %d, %d gold. Press Enter to try again.", hud.Floor, hud.Level, hud.Gold)
	w, _ = m.Renderer.MeasureText(sub, 1)
	m.Renderer.DrawText(screen, sub, (m.ScreenWidth-w)/2, m.ScreenHeight/2+10, hudText, 1)
}
