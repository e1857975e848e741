package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/grapnel/level"
	"github.com/pthm-cable/grapnel/phys"
)

// TetherState is the grapple constraint. Once attached it forces circular motion
// around a fixed anchor at the tangential speed captured at the moment of
// attachment. The anchor is sticky: it is traced once, on the tick the
// tether becomes active, and never re-traced while held.
type TetherState struct {
	Active bool

	// Anchor is meaningful only while Active.
	Anchor r2.Vec

	// Speed is the signed tangential speed around the anchor.
	Speed float64
}

// perpToward returns the unit vector perpendicular to from-anchor, or a zero
// vector when the body sits exactly on the anchor.
func perpToward(pos, anchor r2.Vec) r2.Vec {
	radial := r2.Sub(pos, anchor)
	if r2.Norm(radial) == 0 {
		return r2.Vec{}
	}
	return r2.Unit(r2.Vec{X: -radial.Y, Y: radial.X})
}

// Update advances the tether state machine one tick. Release beats
// everything: any tick the input is not held, the tether detaches. On the
// attach tick the body's radial velocity is discarded; afterwards the
// velocity is re-aimed along the orbit tangent every tick. The orbit radius
// is not separately constrained and may drift under outside forces.
func (t *TetherState) Update(m *level.TileMap, b *Body, held bool, maxRange float64) {
	if !held {
		t.Active = false
		return
	}

	if t.Active {
		perp := perpToward(b.Pos, t.Anchor)
		b.Vel = r2.Scale(t.Speed, perp)
		return
	}

	hit, ok := phys.TraceRay(m, b.Pos, r2.Scale(maxRange, b.Heading()))
	if !ok {
		return
	}
	t.Active = true
	t.Anchor = hit
	perp := perpToward(b.Pos, t.Anchor)
	t.Speed = r2.Dot(b.Vel, perp)
	b.Vel = r2.Scale(t.Speed, perp)
}
