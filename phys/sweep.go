package phys

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/grapnel/level"
)

// Axes records which axes collided during a sweep.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisCorner
)

// Has reports whether a contains all axes in want.
func (a Axes) Has(want Axes) bool { return a&want == want }

// String returns a compact form like "xy" or "corner" for debug overlays.
func (a Axes) String() string {
	if a == 0 {
		return "none"
	}
	s := ""
	if a.Has(AxisX) {
		s += "x"
	}
	if a.Has(AxisY) {
		s += "y"
	}
	if a.Has(AxisCorner) {
		s += "+corner"
	}
	return s
}

// BoxOverlapsSolid tests the four corners of the axis-aligned box with the
// given half extent. A solid thinner than the box can sit between the
// corners undetected; that is part of the collision model.
func BoxOverlapsSolid(m *level.TileMap, center, half r2.Vec) bool {
	return m.SolidAt(center.X-half.X, center.Y-half.Y) ||
		m.SolidAt(center.X+half.X, center.Y-half.Y) ||
		m.SolidAt(center.X-half.X, center.Y+half.Y) ||
		m.SolidAt(center.X+half.X, center.Y+half.Y)
}

// SweepBox moves a box from pos by vel in int(|vel|)+1 equal sub-moves,
// resolving collisions per axis at each sub-move:
//
//   - the Y-only move still overlaps: Y collision, Y velocity cancelled,
//     prior Y kept;
//   - the X-only move still overlaps: X collision, likewise;
//   - neither single-axis move overlaps but the combined one does: the box
//     is wedged on a grid corner, the whole sub-move is cancelled and both
//     velocities zeroed.
//
// Sub-moves commit one at a time, so a collision early in the sweep still
// lets later sub-moves progress along the free axis. Iteration i=0 re-checks
// the resting position, so even a sub-unit velocity runs two sub-steps. The
// returned axes are the union over all sub-moves.
func SweepBox(m *level.TileMap, pos, vel, half r2.Vec) (r2.Vec, r2.Vec, Axes) {
	var axes Axes
	if r2.Norm(vel) == 0 {
		return pos, vel, axes
	}

	steps := int(r2.Norm(vel)) + 1
	stepX := vel.X / float64(steps)
	stepY := vel.Y / float64(steps)

	for i := 0; i <= steps; i++ {
		cand := pos
		if i > 0 {
			cand = r2.Vec{X: pos.X + stepX, Y: pos.Y + stepY}
		}
		if !BoxOverlapsSolid(m, cand, half) {
			pos = cand
			continue
		}

		yBlocked := BoxOverlapsSolid(m, r2.Vec{X: pos.X, Y: cand.Y}, half)
		xBlocked := BoxOverlapsSolid(m, r2.Vec{X: cand.X, Y: pos.Y}, half)

		if !xBlocked && !yBlocked {
			axes |= AxisCorner
			vel = r2.Vec{}
			stepX, stepY = 0, 0
			continue
		}
		if yBlocked {
			axes |= AxisY
			vel.Y = 0
			stepY = 0
			cand.Y = pos.Y
		}
		if xBlocked {
			axes |= AxisX
			vel.X = 0
			stepX = 0
			cand.X = pos.X
		}
		pos = cand
	}
	return pos, vel, axes
}
