package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grapnel/sim"
)

// nowSeconds returns wall time for the tick clock.
func nowSeconds() float64 {
	return float64(rl.GetTime())
}

// collectInput samples the held state of every simulation action.
// The result is a snapshot; the core never mutates it.
func (g *Game) collectInput() sim.Input {
	var in sim.Input
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		in = in.Set(sim.Left)
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		in = in.Set(sim.Right)
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		in = in.Set(sim.Thrust)
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyX) {
		in = in.Set(sim.Tether)
	}
	if rl.IsKeyDown(rl.KeyR) {
		in = in.Set(sim.Restart)
	}
	if rl.IsKeyDown(rl.KeyQ) {
		in = in.Set(sim.Quit)
	}
	return in
}

// handleControlKeys processes loop-level controls that live outside the
// simulation input set.
func (g *Game) handleControlKeys() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		if g.clock.Paused() {
			g.clock.Resume(nowSeconds())
		} else {
			g.clock.Pause(nowSeconds())
		}
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.speed > 1 {
		g.speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.speed < 10 {
		g.speed++
	}

	// Debug overlay toggle
	if rl.IsKeyPressed(rl.KeyF1) {
		g.debugMode = !g.debugMode
	}

	// Camera mode cycle
	if rl.IsKeyPressed(rl.KeyC) {
		g.cam.Mode = g.cam.Mode.Next()
	}

	// Settings overlay
	if rl.IsKeyPressed(rl.KeyTab) {
		g.overlay.Toggle()
	}

	// Restart presses count toward the session restart stat. The held state
	// still reaches the sim through collectInput.
	if rl.IsKeyPressed(rl.KeyR) {
		g.recorder.RecordRestart()
		slog.Info("run restarted", "tick", g.sim.Tick)
	}

	// Zoom controls: mouse wheel or +/- keys
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.cam.ZoomBy(1.0 + float64(wheelMove)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.cam.Resize(float64(w), float64(h))
}
