// Package render draws the building facade with Ebiten. It reads the
// simulation state each frame and feeds nothing back into the core beyond
// the three key events.
package render

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/saaga0h/towerlight/internal/sim"
)

// Game implements ebiten.Game around a Simulation. One Update call is one
// logical frame: edge-triggered input, then a fixed-step simulation tick.
type Game struct {
	sim    *sim.Simulation
	logger *slog.Logger

	width     int
	height    int
	showDebug bool

	face *text.GoTextFace
}

// NewGame creates the render layer for a simulation.
func NewGame(s *sim.Simulation, width, height int, showDebug bool, logger *slog.Logger) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load overlay font: %w", err)
	}

	return &Game{
		sim:       s,
		logger:    logger,
		width:     width,
		height:    height,
		showDebug: showDebug,
		face:      &text.GoTextFace{Source: src, Size: 14},
	}, nil
}

// Update handles input and advances the simulation one fixed step. Keys are
// edge-triggered so holding one down does not runaway-accelerate the clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.sim.SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.sim.SpeedDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showDebug = !g.showDebug
		g.logger.Debug("Debug overlay toggled", "visible", g.showDebug)
	}

	g.sim.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// ClockString formats a fractional hour as HH:MM.
func ClockString(hour float64) string {
	h := int(hour) % 24
	m := int((hour - float64(int(hour))) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
