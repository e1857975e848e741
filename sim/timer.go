package sim

// Unset marks an empty timer slot.
const Unset int64 = -1

// RunTimer tracks start/finish line crossings in ticks. The start line
// re-arms on every crossing, so rolling back over it restarts the run.
type RunTimer struct {
	StartTick   int64
	FinishTicks int64
	BestTicks   int64
}

// NewRunTimer returns a timer with no run in progress and no recorded best.
func NewRunTimer() RunTimer {
	return RunTimer{StartTick: Unset, FinishTicks: Unset, BestTicks: Unset}
}

// Running reports whether a run is armed.
func (t *RunTimer) Running() bool { return t.StartTick >= 0 }

// CrossStart arms (or re-arms) the run at the given tick.
func (t *RunTimer) CrossStart(tick int64) {
	t.StartTick = tick
}

// CrossFinish completes the run if one is armed. It returns whether a run
// finished and whether it improved the best. Best only ever improves.
func (t *RunTimer) CrossFinish(tick int64) (finished, best bool) {
	if t.StartTick < 0 {
		return false, false
	}
	t.FinishTicks = tick - t.StartTick
	t.StartTick = Unset
	if t.BestTicks < 0 || t.FinishTicks < t.BestTicks {
		t.BestTicks = t.FinishTicks
		return true, true
	}
	return true, false
}

// Reset clears the current run and last finish, keeping the best.
func (t *RunTimer) Reset() {
	t.StartTick = Unset
	t.FinishTicks = Unset
}
