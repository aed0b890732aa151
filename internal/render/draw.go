package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/saaga0h/towerlight/internal/daycycle"
)

// Draw renders sky, ground, building frame and every window, back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	hour := g.sim.Hour()
	b := g.sim.Building()

	screen.Fill(daycycle.SkyColor(hour))

	w := float32(g.width)
	h := float32(g.height)
	groundH := h / 10
	groundY := h - groundH
	vector.DrawFilledRect(screen, 0, groundY, w, groundH, groundColor, false)

	// Building frame, centered, reaching from a top margin down to the
	// ground line.
	frameW := w * 0.7
	frameX := (w - frameW) / 2
	frameTop := float32(40)
	frameH := groundY - frameTop
	vector.DrawFilledRect(screen, frameX, frameTop, frameW, frameH, buildingFrame, false)

	// Windows. Floor 0 is at the bottom of the facade.
	floors := b.Floors()
	perFloor := b.RoomsPerFloor()
	cellW := frameW / float32(perFloor)
	cellH := frameH / float32(floors)
	padX := cellW / 5
	padY := cellH / 4

	for floor := 0; floor < floors; floor++ {
		y := groundY - float32(floor+1)*cellH + padY
		for slot := 0; slot < perFloor; slot++ {
			x := frameX + float32(slot)*cellW + padX
			room := b.RoomAt(floor, slot)

			c := darkWindow
			switch {
			case room.LightOn:
				c = litWindow
			case room.TVOn:
				c = TVColor(hour, floor*perFloor+slot)
			}
			vector.DrawFilledRect(screen, x, y, cellW-2*padX, cellH-2*padY, c, false)
		}
	}

	if g.showDebug {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	clock := g.sim.Clock()
	line := fmt.Sprintf("%s  day %d  speed %dx  brightness %.2f  lit %d/%d  tps %.0f",
		ClockString(g.sim.Hour()),
		clock.Day(),
		clock.SpeedLevel(),
		g.sim.Brightness(),
		g.sim.Building().LitCount(),
		g.sim.Building().RoomCount(),
		ebiten.ActualTPS())

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(overlayText)
	text.Draw(screen, line, g.face, op)
}
