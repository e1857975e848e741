// Package phys implements the swept geometry queries the simulation runs
// against the tile grid: point traces and axis-decomposed box sweeps.
//
// All step counts derive from truncating the motion vector's length to an
// integer. Motion is sampled, not continuous: a trace can pass between two
// samples without touching a thin solid, and a box only tests its four
// corners. Both approximations are load-bearing; collision timing on
// existing levels depends on them.
package phys

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/grapnel/level"
)

// TraceRay walks the segment from origin to origin+dir in int(|dir|)+1 equal
// increments, sampling the tile under each point including both endpoints.
// It returns the first sample on a solid tile and true, or the segment end
// and false. A zero-length dir returns immediately with no hit.
func TraceRay(m *level.TileMap, origin, dir r2.Vec) (r2.Vec, bool) {
	if r2.Norm(dir) == 0 {
		return origin, false
	}

	steps := int(r2.Norm(dir)) + 1
	delta := r2.Scale(1/float64(steps), dir)

	p := origin
	for i := 0; i <= steps; i++ {
		if m.SolidAt(p.X, p.Y) {
			return p, true
		}
		if i < steps {
			p = r2.Add(p, delta)
		}
	}
	return p, false
}
