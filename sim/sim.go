// Package sim owns the fixed-tick simulation state: one body, its tether,
// the run timer, and the per-tick integration pipeline. Everything here is
// single-threaded; the game loop is the only mutator and renderers read the
// exported fields between ticks.
package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/grapnel/level"
	"github.com/pthm-cable/grapnel/phys"
)

// Tuning holds the movement constants applied on spawn and restart.
type Tuning struct {
	RotRate     float64 // radians per tick
	Thrust      float64 // velocity added per tick while held
	Half        r2.Vec  // collision box half extent
	TetherRange float64 // max grapple trace distance
}

// RunResult describes a finished run, surfaced for telemetry.
type RunResult struct {
	Ticks   int64
	EndTick int64
	Best    bool
}

// Sim is the complete simulation state.
type Sim struct {
	Map    *level.TileMap
	Body   Body
	Tether TetherState
	Timer  RunTimer

	// Tick is the index of the next tick to run.
	Tick int64

	// LastAxes holds the previous tick's sweep collisions, for the debug
	// overlay. Gameplay ignores it.
	LastAxes phys.Axes

	tuning  Tuning
	spawn   r2.Vec
	lastRun *RunResult
}

// New builds a simulation over an immutable map with the body at the spawn
// point.
func New(m *level.TileMap, spawn r2.Vec, tn Tuning) *Sim {
	s := &Sim{
		Map:    m,
		Timer:  NewRunTimer(),
		tuning: tn,
		spawn:  spawn,
	}
	s.resetBody()
	return s
}

// Spawn returns the configured spawn point.
func (s *Sim) Spawn() r2.Vec { return s.spawn }

func (s *Sim) resetBody() {
	s.Body = Body{
		Pos:     s.spawn,
		RotRate: s.tuning.RotRate,
		Thrust:  s.tuning.Thrust,
		Half:    s.tuning.Half,
	}
}

// restart returns the body to spawn and clears the run in progress. The
// best time survives.
func (s *Sim) restart() {
	s.resetBody()
	s.Tether = TetherState{}
	s.Timer.Reset()
}

// Step advances exactly one tick: restart, rotation, thrust, tether, swept
// move, then the start/finish check on the tile under the body's center.
func (s *Sim) Step(in Input) {
	if in.Held(Restart) {
		s.restart()
	}

	if in.Held(Left) {
		s.Body.Orientation -= s.Body.RotRate
	}
	if in.Held(Right) {
		s.Body.Orientation += s.Body.RotRate
	}

	if in.Held(Thrust) {
		s.Body.Vel = r2.Add(s.Body.Vel, r2.Scale(s.Body.Thrust, s.Body.Heading()))
	}

	s.Tether.Update(s.Map, &s.Body, in.Held(Tether), s.tuning.TetherRange)

	s.Body.Pos, s.Body.Vel, s.LastAxes = phys.SweepBox(s.Map, s.Body.Pos, s.Body.Vel, s.Body.Half)

	switch s.Map.KindAt(s.Body.Pos) {
	case level.KindStart:
		s.Timer.CrossStart(s.Tick)
	case level.KindFinish:
		if finished, best := s.Timer.CrossFinish(s.Tick); finished {
			s.lastRun = &RunResult{Ticks: s.Timer.FinishTicks, EndTick: s.Tick, Best: best}
		}
	}

	s.Tick++
}

// TakeRunResult returns the run finished since the last call, or nil.
func (s *Sim) TakeRunResult() *RunResult {
	r := s.lastRun
	s.lastRun = nil
	return r
}
