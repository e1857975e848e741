package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestStepRotationAdditive(t *testing.T) {
	s := New(mustParse(t, "0 0\n", 100), r2.Vec{X: 50, Y: 50}, testTuning())

	s.Step(Input{}.Set(Left))
	if got := s.Body.Orientation; math.Abs(got+0.06) > 1e-12 {
		t.Errorf("orientation after left = %v, want -0.06", got)
	}

	s.Step(Input{}.Set(Right))
	if got := s.Body.Orientation; math.Abs(got) > 1e-12 {
		t.Errorf("orientation after right = %v, want 0", got)
	}

	// Both held: the sum cancels.
	s.Step(Input{}.Set(Left).Set(Right))
	if got := s.Body.Orientation; math.Abs(got) > 1e-12 {
		t.Errorf("orientation after both = %v, want 0", got)
	}
}

func TestStepOrientationNotWrapped(t *testing.T) {
	s := New(mustParse(t, "0 0\n", 100), r2.Vec{X: 50, Y: 50}, testTuning())
	for i := 0; i < 200; i++ {
		s.Step(Input{}.Set(Right))
	}
	want := 200 * 0.06 // well past 2*pi, kept unwrapped
	if got := s.Body.Orientation; math.Abs(got-want) > 1e-9 {
		t.Errorf("orientation = %v, want %v", got, want)
	}
}

func TestStepThrustAlongHeading(t *testing.T) {
	s := New(mustParse(t, "0 0 0\n0 0 0\n0 0 0\n", 100), r2.Vec{X: 150, Y: 150}, testTuning())

	// Orientation 0 faces up: thrust accelerates in -Y.
	s.Step(Input{}.Set(Thrust))
	if math.Abs(s.Body.Vel.X) > 1e-12 || math.Abs(s.Body.Vel.Y+0.5) > 1e-12 {
		t.Errorf("vel = %v, want (0, -0.5)", s.Body.Vel)
	}

	// Held again: velocity accumulates.
	s.Step(Input{}.Set(Thrust))
	if math.Abs(s.Body.Vel.Y+1.0) > 1e-12 {
		t.Errorf("vel.Y = %v, want -1.0", s.Body.Vel.Y)
	}
}

func TestStepRestartResetsExactly(t *testing.T) {
	m := mustParse(t, "0 0 0 1\n", 100)
	spawn := r2.Vec{X: 50, Y: 50}
	s := New(m, spawn, testTuning())

	// Establish a best, then mess up all mutable state.
	s.Timer.CrossStart(0)
	s.Timer.CrossFinish(42)
	s.Body.Pos = r2.Vec{X: 250, Y: 80}
	s.Body.Vel = r2.Vec{X: 5, Y: -3}
	s.Body.Orientation = 2.5
	s.Timer.CrossStart(90)
	s.Body.Orientation = math.Pi / 2
	s.Step(Input{}.Set(Tether))
	if !s.Tether.Active {
		t.Fatal("setup: tether should have attached")
	}

	s.Step(Input{}.Set(Restart))

	if s.Body.Pos != spawn {
		t.Errorf("pos = %v, want spawn %v", s.Body.Pos, spawn)
	}
	if s.Body.Vel != (r2.Vec{}) {
		t.Errorf("vel = %v, want zero", s.Body.Vel)
	}
	if s.Body.Orientation != 0 {
		t.Errorf("orientation = %v, want 0", s.Body.Orientation)
	}
	if s.Tether.Active {
		t.Error("tether must clear on restart")
	}
	if s.Timer.StartTick != Unset || s.Timer.FinishTicks != Unset {
		t.Errorf("timer start=%d finish=%d, want unset", s.Timer.StartTick, s.Timer.FinishTicks)
	}
	if s.Timer.BestTicks != 42 {
		t.Errorf("BestTicks = %d, want 42 preserved", s.Timer.BestTicks)
	}
	if s.Body.RotRate != 0.06 || s.Body.Thrust != 0.5 {
		t.Errorf("tuning = (%v, %v), want restored (0.06, 0.5)", s.Body.RotRate, s.Body.Thrust)
	}
}

func TestEndToEndStartFinishRun(t *testing.T) {
	// One row of 10-unit cells: air, air, start, air, air, air, finish,
	// air, air. The body coasts rightward 2 units per tick from x=5.
	m := mustParse(t, "0 0 78 0 0 0 110 0 0\n", 10)
	tn := Tuning{Half: r2.Vec{X: 1, Y: 1}}
	s := New(m, r2.Vec{X: 5, Y: 5}, tn)
	s.Body.Vel = r2.Vec{X: 2, Y: 0}

	// After tick t the body sits at x = 5 + 2*(t+1). It occupies the start
	// cell [20,30) on ticks 7..11 and first reaches the finish cell [60,70)
	// on tick 27.
	for t1 := 0; t1 < 8; t1++ {
		s.Step(Input{})
	}
	if s.Timer.StartTick != 7 {
		t.Fatalf("StartTick after entering start cell = %d, want 7", s.Timer.StartTick)
	}

	for t1 := 8; t1 < 20; t1++ {
		s.Step(Input{})
	}
	// The start line re-armed on every tick inside the cell; air ticks
	// since have not touched the timer.
	if s.Timer.StartTick != 11 {
		t.Fatalf("StartTick after leaving start cell = %d, want 11", s.Timer.StartTick)
	}
	if s.Timer.FinishTicks != Unset {
		t.Fatalf("FinishTicks = %d before reaching finish, want unset", s.Timer.FinishTicks)
	}

	for t1 := 20; t1 < 28; t1++ {
		s.Step(Input{})
	}
	if s.Timer.FinishTicks != 16 {
		t.Errorf("FinishTicks = %d, want 27-11 = 16", s.Timer.FinishTicks)
	}
	if s.Timer.BestTicks != 16 {
		t.Errorf("BestTicks = %d, want 16", s.Timer.BestTicks)
	}
	if s.Timer.Running() {
		t.Error("run must disarm after finish")
	}

	res := s.TakeRunResult()
	if res == nil {
		t.Fatal("expected a run result after finishing")
	}
	if res.Ticks != 16 || res.EndTick != 27 || !res.Best {
		t.Errorf("run result = %+v, want 16 ticks ending tick 27, best", res)
	}
	if s.TakeRunResult() != nil {
		t.Error("run result must be consumed by Take")
	}
}
