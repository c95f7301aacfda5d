package game

import (
	"log"

	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/input"
	"chosenoffset.com/deepdelve/internal/render"
	"chosenoffset.com/deepdelve/internal/render/raycast"
	"chosenoffset.com/deepdelve/internal/simulation"
	"chosenoffset.com/deepdelve/internal/texture"
)

// Manager drives a run through its phases and restarts it on request.
// It implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	State        *GameState
	Renderer     render.Renderer
	Input        input.Oracle
	Clock        render.Clock
	Textures     texture.Provider

	// NewRoller supplies the randomness for each run. Nil seeds from config.
	NewRoller func() *dice.Roller

	// HalfResolution renders the 3D view at half size and scales it up.
	HalfResolution bool

	raycaster *raycast.Renderer
	frame     render.Image
	geo       render.GeoM
	runs      int
}

// NewManager creates a manager and starts the first run.
func NewManager(config *simulation.Config, r render.Renderer, in input.Oracle, clock render.Clock, textures texture.Provider) *Manager {
	if config == nil {
		config = simulation.DefaultConfig()
	}
	m := &Manager{
		ScreenWidth:  config.Screen.Width,
		ScreenHeight: config.Screen.Height,
		Config:       config,
		Renderer:     r,
		Input:        in,
		Clock:        clock,
		Textures:     textures,
		raycaster:    raycast.New(config.Render),
	}
	m.Restart()
	return m
}

// Restart throws away the current run and begins a new one on floor 1.
func (m *Manager) Restart() {
	var roller *dice.Roller
	if m.NewRoller != nil {
		roller = m.NewRoller()
	}
	m.State = NewGameState(m.Config, roller)
	m.runs++
	log.Printf("Run %d started", m.runs)
}

// Update advances one tick.
func (m *Manager) Update() error {
	if m.Input.Pressed(input.Quit) {
		log.Printf("Quit requested")
		return render.ErrQuit
	}
	if m.Input.Pressed(input.ToggleQuality) {
		m.SetHalfResolution(!m.HalfResolution)
	}

	before := m.State.Phase
	switch before {
	case PhasePlaying:
		m.State.Update(m.Clock.DeltaSeconds(), m.Input)
	case PhaseGameOver, PhaseVictory:
		if m.Input.Pressed(input.Restart) {
			m.Restart()
		}
	}
	if after := m.State.Phase; after != before {
		log.Printf("Phase: %s -> %s", before, after)
	}
	return nil
}

// SetHalfResolution rebuilds the raycaster at full or half the configured
// view size. The upload image is released and recreated on the next Draw.
func (m *Manager) SetHalfResolution(half bool) {
	m.HalfResolution = half
	cfg := m.Config.Render
	if half {
		cfg.Width, cfg.Height = max(cfg.Width/2, 1), max(cfg.Height/2, 1)
	}
	m.raycaster = raycast.New(cfg)
	if m.frame != nil {
		m.frame.Dispose()
		m.frame = nil
	}
	log.Printf("View resolution: %dx%d", cfg.Width, cfg.Height)
}

// Layout keeps a fixed logical screen; the window scales it.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
