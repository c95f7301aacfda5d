// Package lighting computes the brightness of a world point: linear distance
// fog, a slowly drifting torch flicker, and falloff from placed torches.
package lighting

import "math"

// Config tunes the dungeon lighting.
type Config struct {
	Ambient        float64 `json:"ambient"`         // brightness floor at full fog
	FogDistance    float64 `json:"fog_distance"`    // tiles until only ambient light remains
	FlickerSpeed   float64 `json:"flicker_speed"`   // radians per second
	FlickerAmount  float64 `json:"flicker_amount"`  // peak dimming fraction
	TorchRadius    float64 `json:"torch_radius"`    // tiles
	TorchIntensity float64 `json:"torch_intensity"` // added brightness at the torch
}

// DefaultConfig returns the standard dungeon mood.
func DefaultConfig() Config {
	return Config{
		Ambient:        0.08,
		FogDistance:    9,
		FlickerSpeed:   2.3,
		FlickerAmount:  0.12,
		TorchRadius:    3,
		TorchIntensity: 0.45,
	}
}

// LightSource represents a single light source in the game world
type LightSource struct {
	X, Y      float64 // World position in tiles
	Radius    float64
	Intensity float64 // 0.0 to 1.0
}

// Manager handles all light sources on the current floor
type Manager struct {
	config Config
	lights []LightSource
	time   float64
}

// NewManager creates a new lighting manager
func NewManager(config Config) *Manager {
	if config.FogDistance <= 0 {
		config.FogDistance = DefaultConfig().FogDistance
	}
	return &Manager{config: config}
}

// AddTorch places a torch light centred at (x, y)
func (m *Manager) AddTorch(x, y float64) {
	m.lights = append(m.lights, LightSource{
		X:         x,
		Y:         y,
		Radius:    m.config.TorchRadius,
		Intensity: m.config.TorchIntensity,
	})
}

// Lights returns all active light sources
func (m *Manager) Lights() []LightSource {
	return m.lights
}

// ClearLights removes every light (called when a new floor loads)
func (m *Manager) ClearLights() {
	m.lights = m.lights[:0]
}

// Update advances the flicker clock
func (m *Manager) Update(dt float64) {
	m.time += dt
}

// Flicker returns the current torch flicker multiplier in
// [1-FlickerAmount, 1]. Two detuned sines keep the drift irregular.
func (m *Manager) Flicker() float64 {
	t := m.time * m.config.FlickerSpeed
	wave := 0.5 + 0.25*math.Sin(t) + 0.25*math.Sin(t*2.7+1.3)
	return 1 - m.config.FlickerAmount*wave
}

// Fog returns the linear distance falloff in [Ambient, 1].
func (m *Manager) Fog(dist float64) float64 {
	f := 1 - dist/m.config.FogDistance
	return math.Max(m.config.Ambient, math.Min(1, f))
}

// Brightness returns the light multiplier for world point (x, y) seen from
// distance dist. Torches can push it slightly past 1.
func (m *Manager) Brightness(x, y, dist float64) float64 {
	b := m.Fog(dist)
	for _, l := range m.lights {
		dx, dy := x-l.X, y-l.Y
		d2 := dx*dx + dy*dy
		if d2 >= l.Radius*l.Radius {
			continue
		}
		b += l.Intensity * (1 - math.Sqrt(d2)/l.Radius)
	}
	return math.Min(b, 1.3) * m.Flicker()
}
