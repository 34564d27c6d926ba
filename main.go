package main

import (
	"log"
	"time"

	"driftshore/internal/config"
	"driftshore/internal/game"
	"driftshore/internal/netsync"
	"driftshore/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Load and initialize tile registry
	world.GlobalTileRegistry = world.NewTileRegistry()
	if err := world.GlobalTileRegistry.LoadTileConfig("assets/tiles.yaml"); err != nil {
		log.Printf("Warning: Failed to load tile config: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg)

	if cfg.Sync.ServerURL != "" {
		delay := time.Duration(cfg.Sync.ReconnectDelay) * time.Second
		client := netsync.NewClient(cfg.Sync.ServerURL, delay, float64(cfg.Building.CellSize))
		g.StartSync(client)
		defer g.StopSync()
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
