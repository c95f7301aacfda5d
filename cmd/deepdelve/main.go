package main

import (
	"flag"
	"log"

	"chosenoffset.com/deepdelve/internal/game"
	"chosenoffset.com/deepdelve/internal/input"
	"chosenoffset.com/deepdelve/internal/placeholders"
	ebitenrender "chosenoffset.com/deepdelve/internal/render/ebiten"
	"chosenoffset.com/deepdelve/internal/simulation"
)

func main() {
	configPath := flag.String("config", "deepdelve.json", "Path to the tuning config (optional)")
	seed := flag.Int64("seed", 0, "Dungeon seed (0 = random every floor)")
	assets := flag.String("assets", "", "Directory with wall.png, floor.png and ceiling.png overrides")
	flag.Parse()

	config, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		config.World.Seed = *seed
	}
	log.Printf("Config loaded: %dx%d floors, seed %d, %d floors deep",
		config.World.Width, config.World.Height, config.World.Seed, config.Interaction.MaxFloor)

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	keyboard := input.NewKeyboard(ebitenrender.NewInputManager(), nil)
	engine := ebitenrender.NewEngine()

	textures := placeholders.Provider()
	if *assets != "" {
		if err := textures.LoadSurfaces(*assets); err != nil {
			log.Printf("Warning: Failed to load textures from %s: %v", *assets, err)
		}
	}

	gameManager := game.NewManager(config, renderer, keyboard, ebitenrender.TickClock{}, textures)

	// Set up the window
	engine.SetWindowSize(config.Screen.Width*config.Screen.WindowScale, config.Screen.Height*config.Screen.WindowScale)
	engine.SetWindowTitle(config.Screen.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(config.Screen.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
