package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/saaga0h/towerlight/internal/building"
	"github.com/saaga0h/towerlight/internal/daycycle"
	"github.com/saaga0h/towerlight/internal/render"
	"github.com/saaga0h/towerlight/internal/sim"
	"github.com/saaga0h/towerlight/pkg/config"
)

func main() {
	// Load configuration with hierarchy: defaults → env → flags
	cfg := config.NewConfig()
	cfg.LoadFromEnv()
	cfg.LoadFromFlags()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("Starting towerlight",
		"run_id", uuid.NewString(),
		"floors", cfg.Floors,
		"rooms_per_floor", cfg.RoomsPerFloor,
		"speed_level", cfg.SpeedLevel,
		"solar", cfg.Solar,
		"log_level", cfg.LogLevel)

	b, err := buildBuilding(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Building error: %v\n", err)
		os.Exit(1)
	}

	anchors := daycycle.DefaultAnchors
	if cfg.Solar {
		a, err := daycycle.SolarAnchors(time.Now(), cfg.Latitude, cfg.Longitude)
		if err != nil {
			logger.Warn("Solar mode unavailable, using fixed curve", "error", err)
		} else {
			anchors = a
			logger.Info("Solar anchors",
				"sunrise", fmt.Sprintf("%.2f", a.Sunrise),
				"noon", fmt.Sprintf("%.2f", a.Noon),
				"sunset", fmt.Sprintf("%.2f", a.Sunset))
		}
	}

	clock := daycycle.NewClock(cfg.SpeedLevel)
	simulation := sim.New(clock, anchors, b, logger)

	game, err := render.NewGame(simulation, cfg.WindowWidth, cfg.WindowHeight, cfg.ShowDebug, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Renderer error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("towerlight")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("Game loop ended with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Towerlight shutdown complete")
}

// buildBuilding constructs the room grid from the layout file when one is
// configured, otherwise generates random dwellers from the seed.
func buildBuilding(cfg *config.Config, logger *slog.Logger) (*building.Building, error) {
	if cfg.LayoutFile != "" {
		layout, err := building.LoadLayout(cfg.LayoutFile)
		if err != nil {
			return nil, err
		}
		b, err := layout.Building()
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded building layout",
			"file", cfg.LayoutFile,
			"floors", b.Floors(),
			"rooms_per_floor", b.RoomsPerFloor(),
			"dwellers", b.DwellerCount())
		return b, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dwellers := building.GenerateDwellers(rng, cfg.Floors*cfg.RoomsPerFloor)
	b, err := building.New(cfg.Floors, cfg.RoomsPerFloor, dwellers)
	if err != nil {
		return nil, err
	}
	logger.Info("Generated building", "seed", seed, "dwellers", b.DwellerCount())
	return b, nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
