package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Body is the single simulated rigid box. The simulation is its only
// mutator; rendering samples it read-only between ticks.
type Body struct {
	Pos r2.Vec
	Vel r2.Vec

	// Orientation in radians, not wrapped. Zero faces up.
	Orientation float64

	// Per-tick tuning, reset to the configured values on restart.
	RotRate float64
	Thrust  float64

	// Half extent of the collision box.
	Half r2.Vec
}

// Heading returns the unit facing vector for the current orientation.
// Orientation 0 points up; positive rotation turns clockwise on screen
// (Y grows downward).
func (b *Body) Heading() r2.Vec {
	return r2.Vec{X: math.Sin(b.Orientation), Y: -math.Cos(b.Orientation)}
}

// Speed returns the current velocity magnitude, for the HUD.
func (b *Body) Speed() float64 {
	return r2.Norm(b.Vel)
}
