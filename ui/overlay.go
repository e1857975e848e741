package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grapnel/camera"
)

// OverlayResult reports which overlay controls fired this frame.
type OverlayResult struct {
	Restart    bool
	CameraMode camera.Mode
	ModeChange bool
}

// Overlay is a small raygui settings panel anchored to the top-right corner.
// Toggled with Tab; hidden panels consume no input.
type Overlay struct {
	Visible bool
}

// NewOverlay creates a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Draw renders the overlay and returns which controls fired.
func (o *Overlay) Draw(screenWidth int32, mode camera.Mode) OverlayResult {
	res := OverlayResult{CameraMode: mode}
	if !o.Visible {
		return res
	}

	panelX := float32(screenWidth) - 270
	panelY := float32(10)

	rl.DrawRectangle(int32(panelX)-10, int32(panelY)-10, 270, 130, rl.Color{R: 20, G: 25, B: 30, A: 240})

	rl.DrawText("Settings", int32(panelX), int32(panelY), 16, rl.White)
	panelY += 26

	rl.DrawText("Camera mode", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Mode: "+mode.String()) {
		res.CameraMode = mode.Next()
		res.ModeChange = true
	}
	panelY += 40

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Restart") {
		res.Restart = true
	}

	return res
}
