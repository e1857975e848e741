// Package camera provides a 2D follow camera for viewport control.
package camera

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Mode selects how the camera tracks its target.
type Mode int

const (
	// ModeLock pins the camera center to the target every frame.
	ModeLock Mode = iota
	// ModeSmooth lerps the camera toward the target by a fixed factor.
	ModeSmooth
	// ModeDeadzone only moves when the target leaves a centered rectangle.
	ModeDeadzone
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeLock:
		return "lock"
	case ModeSmooth:
		return "smooth"
	case ModeDeadzone:
		return "deadzone"
	}
	return "unknown"
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "lock":
		return ModeLock, nil
	case "smooth":
		return ModeSmooth, nil
	case "deadzone":
		return ModeDeadzone, nil
	}
	return ModeLock, fmt.Errorf("camera mode %q is not one of lock, smooth, deadzone", s)
}

// Next cycles to the following mode. Used by the mode toggle key.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// Camera controls the viewport into the level. The view is clamped to the
// level bounds; when the level is smaller than the viewport on an axis the
// camera centers that axis instead.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// World dimensions (level extent, for clamping)
	WorldW, WorldH float64

	// Follow behavior
	Mode      Mode
	Smoothing float64 // per-frame lerp factor for ModeSmooth
	DeadzoneW float64 // deadzone rectangle extent for ModeDeadzone
	DeadzoneH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera centered on the world with 1:1 zoom.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	return &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		Mode:      ModeSmooth,
		Smoothing: 0.15,
		DeadzoneW: 300,
		DeadzoneH: 200,
		MinZoom:   0.1,
		MaxZoom:   4.0,
	}
}

// SnapTo centers the camera on the target immediately, regardless of mode,
// then clamps to the level bounds. Used on spawn and restart.
func (c *Camera) SnapTo(target r2.Vec) {
	c.X = target.X
	c.Y = target.Y
	c.clampToWorld()
}

// Follow advances the camera toward the target according to the active mode,
// then clamps to the level bounds.
func (c *Camera) Follow(target r2.Vec) {
	switch c.Mode {
	case ModeLock:
		c.X = target.X
		c.Y = target.Y
	case ModeSmooth:
		c.X += (target.X - c.X) * c.Smoothing
		c.Y += (target.Y - c.Y) * c.Smoothing
	case ModeDeadzone:
		// Move only far enough to bring the target back inside the
		// deadzone rectangle centered on the camera.
		halfW := c.DeadzoneW / 2
		halfH := c.DeadzoneH / 2
		if dx := target.X - c.X; dx > halfW {
			c.X = target.X - halfW
		} else if dx < -halfW {
			c.X = target.X + halfW
		}
		if dy := target.Y - c.Y; dy > halfH {
			c.Y = target.Y - halfH
		} else if dy < -halfH {
			c.Y = target.Y + halfH
		}
	}
	c.clampToWorld()
}

// clampToWorld keeps the visible area inside the level bounds. An axis where
// the level is narrower than the view is centered instead.
func (c *Camera) clampToWorld() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	if 2*halfW >= c.WorldW {
		c.X = c.WorldW / 2
	} else {
		c.X = clamp(c.X, halfW, c.WorldW-halfW)
	}
	if 2*halfH >= c.WorldH {
		c.Y = c.WorldH / 2
	} else {
		c.Y = clamp(c.Y, halfH, c.WorldH-halfH)
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area
// as (minX, minY, maxX, maxY). Used to cull tile drawing.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// Resize updates viewport dimensions and re-clamps the view.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.clampToWorld()
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampToWorld()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampToWorld()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
