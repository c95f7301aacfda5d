// Package simulation provides the tuning configuration for a run.
// Values start from compiled defaults, are overlaid by an optional JSON file,
// and finally by DEEPDELVE_* environment variables.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"chosenoffset.com/deepdelve/internal/camera"
	"chosenoffset.com/deepdelve/internal/character"
	"chosenoffset.com/deepdelve/internal/combat"
	"chosenoffset.com/deepdelve/internal/interaction"
	"chosenoffset.com/deepdelve/internal/inventory"
	"chosenoffset.com/deepdelve/internal/render/lighting"
	"chosenoffset.com/deepdelve/internal/render/raycast"
	"chosenoffset.com/deepdelve/internal/world/maze"
)

// Config holds all tuning for a game
type Config struct {
	Screen      ScreenConfig       `json:"screen"`
	World       maze.Config        `json:"world"`
	Movement    camera.Config      `json:"movement"`
	Combat      combat.Config      `json:"combat"`
	Interaction interaction.Config `json:"interaction"`
	Player      character.Config   `json:"player"`
	Lighting    lighting.Config    `json:"lighting"`
	Render      raycast.Config     `json:"render"`
	Inventory   InventoryConfig    `json:"inventory"`
}

// ScreenConfig defines the logical screen and window
type ScreenConfig struct {
	Width       int    `json:"width"`        // logical width, view and HUD
	Height      int    `json:"height"`       // logical height, view and HUD
	WindowScale int    `json:"window_scale"` // window pixels per logical pixel
	TPS         int    `json:"tps"`          // fixed updates per second
	Title       string `json:"title"`
	HUDHeight   int    `json:"hud_height"` // status bar below the 3D view
}

// InventoryConfig defines the weapon roster
type InventoryConfig struct {
	Slots        int `json:"slots"`
	MessageLines int `json:"message_lines"` // message log capacity
}

// Overrides lists the environment variables applied after the file.
// Unset variables leave the field nil.
type Overrides struct {
	Seed        *int64 `env:"DEEPDELVE_SEED"`
	Width       *int   `env:"DEEPDELVE_WIDTH"`
	Height      *int   `env:"DEEPDELVE_HEIGHT"`
	MaxFloor    *int   `env:"DEEPDELVE_MAX_FLOOR"`
	WindowScale *int   `env:"DEEPDELVE_WINDOW_SCALE"`
	TPS         *int   `env:"DEEPDELVE_TPS"`
}

// DefaultConfig returns the standard game
func DefaultConfig() *Config {
	render := raycast.DefaultConfig()
	render.Width, render.Height = 640, 320
	return &Config{
		Screen: ScreenConfig{
			Width:       640,
			Height:      400,
			WindowScale: 2,
			TPS:         60,
			Title:       "Deepdelve",
			HUDHeight:   80,
		},
		World:       maze.DefaultConfig(),
		Movement:    camera.DefaultConfig(),
		Combat:      combat.DefaultConfig(),
		Interaction: interaction.DefaultConfig(),
		Player:      character.DefaultConfig(),
		Lighting:    lighting.DefaultConfig(),
		Render:      render,
		Inventory: InventoryConfig{
			Slots:        inventory.DefaultSlots,
			MessageLines: 8,
		},
	}
}

// LoadConfig loads config from a JSON file and the environment.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	var o Overrides
	if err := ParseEnv(&o); err != nil {
		return nil, err
	}
	config.Apply(o)
	config.normalize()
	return config, nil
}

// ParseEnv loads environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Apply copies every set override into the config.
func (c *Config) Apply(o Overrides) {
	if o.Seed != nil {
		c.World.Seed = *o.Seed
	}
	if o.Width != nil {
		c.World.Width = *o.Width
	}
	if o.Height != nil {
		c.World.Height = *o.Height
	}
	if o.MaxFloor != nil {
		c.Interaction.MaxFloor = *o.MaxFloor
	}
	if o.WindowScale != nil {
		c.Screen.WindowScale = *o.WindowScale
	}
	if o.TPS != nil {
		c.Screen.TPS = *o.TPS
	}
}

// normalize keeps the view inside the screen and repairs unusable values.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		c.Screen.Width, c.Screen.Height = def.Screen.Width, def.Screen.Height
	}
	if c.Screen.HUDHeight < 0 || c.Screen.HUDHeight >= c.Screen.Height {
		c.Screen.HUDHeight = def.Screen.HUDHeight
	}
	if c.Screen.WindowScale <= 0 {
		c.Screen.WindowScale = 1
	}
	if c.Screen.TPS <= 0 {
		c.Screen.TPS = def.Screen.TPS
	}
	c.Render.Width = min(max(c.Render.Width, 1), c.Screen.Width)
	c.Render.Height = min(max(c.Render.Height, 1), c.Screen.Height-c.Screen.HUDHeight)
	if c.World.Width <= 0 {
		c.World.Width = def.World.Width
	}
	if c.World.Height <= 0 {
		c.World.Height = def.World.Height
	}
	c.World.Width = max(c.World.Width, maze.MinSize)
	c.World.Height = max(c.World.Height, maze.MinSize)
	if c.Inventory.Slots <= 0 {
		c.Inventory.Slots = def.Inventory.Slots
	}
	if c.Inventory.MessageLines <= 0 {
		c.Inventory.MessageLines = def.Inventory.MessageLines
	}
	if c.Interaction.MaxFloor <= 0 {
		c.Interaction.MaxFloor = def.Interaction.MaxFloor
	}
}
