// levelpreview renders a level file with pan and zoom for map authoring.
// The map is reloaded in place with the Reload button or the R key.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grapnel/camera"
	"github.com/pthm-cable/grapnel/level"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func main() {
	tileSize := flag.Float64("tile-size", 128, "World units per tile")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: levelpreview [-tile-size N] <map file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	m, err := level.Load(path, *tileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "levelpreview: %v\n", err)
		os.Exit(1)
	}

	rl.InitWindow(screenWidth, screenHeight, "Level Preview - "+path)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := camera.New(screenWidth, screenHeight, m.WorldWidth(), m.WorldHeight())
	cam.SetZoom(math.Min(
		screenWidth/m.WorldWidth(),
		screenHeight/m.WorldHeight(),
	))

	loadErr := ""
	for !rl.WindowShouldClose() {
		// Pan speed scales inversely with zoom for natural feel
		panSpeed := 8.0
		if rl.IsKeyDown(rl.KeyRight) {
			cam.Pan(panSpeed, 0)
		}
		if rl.IsKeyDown(rl.KeyLeft) {
			cam.Pan(-panSpeed, 0)
		}
		if rl.IsKeyDown(rl.KeyDown) {
			cam.Pan(0, panSpeed)
		}
		if rl.IsKeyDown(rl.KeyUp) {
			cam.Pan(0, -panSpeed)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(1.0 + float64(wheel)*0.1)
		}

		reload := rl.IsKeyPressed(rl.KeyR)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		drawMap(m, cam)

		rl.DrawText(fmt.Sprintf("%dx%d cells | zoom %.2f | arrows pan, wheel zoom", m.Width, m.Height, cam.Zoom),
			10, 10, 16, rl.White)
		if loadErr != "" {
			rl.DrawText(loadErr, 10, 35, 16, rl.Red)
		}

		if gui.Button(rl.Rectangle{X: screenWidth - 110, Y: 10, Width: 100, Height: 30}, "Reload") {
			reload = true
		}

		rl.EndDrawing()

		if reload {
			next, err := level.Load(path, *tileSize)
			if err != nil {
				loadErr = err.Error()
			} else {
				m = next
				loadErr = ""
			}
		}
	}
}

func drawMap(m *level.TileMap, cam *camera.Camera) {
	size := int32(math.Ceil(m.TileSize * cam.Zoom))
	for cy := 0; cy < m.Height; cy++ {
		for cx := 0; cx < m.Width; cx++ {
			k := m.KindCell(cx, cy)
			if k == level.KindAir {
				continue
			}
			var color rl.Color
			switch k {
			case level.KindStart:
				color = rl.Green
			case level.KindFinish:
				color = rl.Gold
			default:
				color = rl.Color{R: 70, G: 80, B: 90, A: 255}
			}
			sx, sy := cam.WorldToScreen(float64(cx)*m.TileSize, float64(cy)*m.TileSize)
			rl.DrawRectangle(int32(sx), int32(sy), size, size, color)
		}
	}
}
