package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	RunSeconds  float64 // -1 = no run in progress
	LastSeconds float64 // -1 = no finished run yet
	BestSeconds float64 // -1 = no best yet
	Tick        int64
	Speed       int
	FPS         int32
	Paused      bool
	CameraMode  string
}

// HUD renders the main heads-up display.
type HUD struct {
	cache *TextCache
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{cache: NewTextCache()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	// Run timing
	runText := "Run: --"
	if data.RunSeconds >= 0 {
		runText = h.cache.Float("run", "Run: %.2fs", data.RunSeconds)
	} else if data.LastSeconds >= 0 {
		runText = h.cache.Float("last", "Last: %.2fs", data.LastSeconds)
	}
	rl.DrawText(runText, 10, 35, 16, rl.LightGray)

	bestText := "Best: --"
	if data.BestSeconds >= 0 {
		bestText = h.cache.Float("best", "Best: %.2fs", data.BestSeconds)
	}
	rl.DrawText(bestText, 10, 55, 16, rl.Gold)

	// Simulation info
	rl.DrawText(h.cache.Int("tick", "Tick: %d", data.Tick), 10, 75, 16, rl.LightGray)
	rl.DrawText(h.cache.Int("speed", "Speed: %dx", int64(data.Speed)), 110, 75, 16, rl.LightGray)
	rl.DrawText(h.cache.Int("fps", "FPS: %d", int64(data.FPS)), 210, 75, 16, rl.LightGray)
	rl.DrawText(h.cache.Str("cam", "Camera: %s", data.CameraMode), 10, 95, 16, rl.LightGray)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 115, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
