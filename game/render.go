package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/grapnel/config"
	"github.com/pthm-cable/grapnel/level"
	"github.com/pthm-cable/grapnel/ui"
)

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawLevel()
	g.drawTether()
	g.drawBody()
	if g.debugMode {
		g.drawDebug()
	}

	g.drawHUD()
	g.handleOverlay()

	rl.EndDrawing()
}

// tileColor maps a tile kind to its fill color.
func tileColor(k level.Kind) rl.Color {
	switch k {
	case level.KindStart:
		return rl.Green
	case level.KindFinish:
		return rl.Gold
	default:
		return rl.Color{R: 70, G: 80, B: 90, A: 255}
	}
}

// drawLevel renders the visible slice of the tile grid.
func (g *Game) drawLevel() {
	m := g.sim.Map
	minX, minY, maxX, maxY := g.cam.VisibleWorldBounds()

	c0 := int(minX / m.TileSize)
	c1 := int(maxX/m.TileSize) + 1
	r0 := int(minY / m.TileSize)
	r1 := int(maxY/m.TileSize) + 1
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > m.Width {
		c1 = m.Width
	}
	if r1 > m.Height {
		r1 = m.Height
	}

	size := int32(math.Ceil(m.TileSize * g.cam.Zoom))
	for cy := r0; cy < r1; cy++ {
		for cx := c0; cx < c1; cx++ {
			k := m.KindCell(cx, cy)
			if k == level.KindAir {
				continue
			}
			sx, sy := g.cam.WorldToScreen(float64(cx)*m.TileSize, float64(cy)*m.TileSize)
			rl.DrawRectangle(int32(sx), int32(sy), size, size, tileColor(k))
		}
	}
}

// drawBody renders the body as an oriented triangle inside its box.
func (g *Game) drawBody() {
	b := &g.sim.Body
	sx, sy := g.cam.WorldToScreen(b.Pos.X, b.Pos.Y)

	// Heading (sin t, -cos t) points up at zero orientation, which is the
	// standard math angle rotated by -pi/2.
	ang := b.Orientation - math.Pi/2
	radius := b.Half.X * g.cam.Zoom * 0.9
	drawOrientedTriangle(float32(sx), float32(sy), float32(ang), float32(radius), rl.SkyBlue)
}

// drawOrientedTriangle draws a triangle pointing in the heading direction.
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	cos := float32(math.Cos(float64(heading)))
	sin := float32(math.Sin(float64(heading)))

	frontX := x + cos*radius
	frontY := y + sin*radius

	backAngle := heading + math.Pi*0.8
	backLeftX := x + float32(math.Cos(float64(backAngle)))*radius
	backLeftY := y + float32(math.Sin(float64(backAngle)))*radius

	backAngle = heading - math.Pi*0.8
	backRightX := x + float32(math.Cos(float64(backAngle)))*radius
	backRightY := y + float32(math.Sin(float64(backAngle)))*radius

	v1 := rl.Vector2{X: frontX, Y: frontY}
	v2 := rl.Vector2{X: backLeftX, Y: backLeftY}
	v3 := rl.Vector2{X: backRightX, Y: backRightY}

	// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
	rl.DrawTriangle(v1, v3, v2, color)
	rl.DrawTriangleLines(v1, v2, v3, rl.White)
}

// drawTether renders the grapple line and anchor while attached.
func (g *Game) drawTether() {
	t := &g.sim.Tether
	if !t.Active {
		return
	}
	bx, by := g.cam.WorldToScreen(g.sim.Body.Pos.X, g.sim.Body.Pos.Y)
	ax, ay := g.cam.WorldToScreen(t.Anchor.X, t.Anchor.Y)
	rl.DrawLine(int32(bx), int32(by), int32(ax), int32(ay), rl.RayWhite)
	rl.DrawCircle(int32(ax), int32(ay), float32(4*g.cam.Zoom), rl.Red)
}

// drawDebug renders the collision box, the aim ray and the last sweep axes.
func (g *Game) drawDebug() {
	b := &g.sim.Body

	// Body AABB
	x0, y0 := g.cam.WorldToScreen(b.Pos.X-b.Half.X, b.Pos.Y-b.Half.Y)
	w := 2 * b.Half.X * g.cam.Zoom
	h := 2 * b.Half.Y * g.cam.Zoom
	rl.DrawRectangleLines(int32(x0), int32(y0), int32(w), int32(h), rl.Lime)

	// Aim ray out to tether range
	tip := r2.Add(b.Pos, r2.Scale(config.Cfg().Tether.Range, b.Heading()))
	bx, by := g.cam.WorldToScreen(b.Pos.X, b.Pos.Y)
	tx, ty := g.cam.WorldToScreen(tip.X, tip.Y)
	rl.DrawLine(int32(bx), int32(by), int32(tx), int32(ty), rl.Color{R: 255, G: 255, B: 255, A: 60})

	rl.DrawText("axes: "+g.sim.LastAxes.String(), 10, int32(g.screenHeight)-45, 14, rl.Lime)
	rl.DrawText(fmt.Sprintf("vel: (%.2f, %.2f)", b.Vel.X, b.Vel.Y), 10, int32(g.screenHeight)-65, 14, rl.Lime)
}

// drawHUD assembles HUD data from the sim and renders it.
func (g *Game) drawHUD() {
	rate := config.Cfg().Physics.TickRate
	s := g.sim

	runSec := -1.0
	if s.Timer.Running() {
		runSec = float64(s.Tick-s.Timer.StartTick) / rate
	}
	lastSec := -1.0
	if s.Timer.FinishTicks >= 0 {
		lastSec = float64(s.Timer.FinishTicks) / rate
	}
	bestSec := -1.0
	if s.Timer.BestTicks >= 0 {
		bestSec = float64(s.Timer.BestTicks) / rate
	}

	g.hud.Draw(ui.HUDData{
		Title:       config.Cfg().Screen.Title,
		RunSeconds:  runSec,
		LastSeconds: lastSec,
		BestSeconds: bestSec,
		Tick:        s.Tick,
		Speed:       g.speed,
		FPS:         rl.GetFPS(),
		Paused:      g.clock.Paused(),
		CameraMode:  g.cam.Mode.String(),
	})
	g.hud.DrawControls(int32(g.screenHeight),
		"arrows/AD rotate | W thrust | shift/X tether | R restart | space pause | C camera | tab settings | F1 debug")
}

// handleOverlay draws the settings panel and applies its actions.
func (g *Game) handleOverlay() {
	res := g.overlay.Draw(int32(g.screenWidth), g.cam.Mode)
	if res.ModeChange {
		g.cam.Mode = res.CameraMode
	}
	if res.Restart {
		g.pendingRestart = true
		g.recorder.RecordRestart()
	}
}
