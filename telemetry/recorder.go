package telemetry

import "log/slog"

// Recorder accumulates finished runs over a session and builds the records
// that go to runs.csv and the session summary logged on shutdown.
type Recorder struct {
	tickRate float64

	runs          []RunRecord
	restarts      int // total over the session
	restartsSince int // since the last finished run
	bestTicks     int64
}

// NewRecorder creates a recorder. tickRate converts tick counts to seconds.
func NewRecorder(tickRate float64) *Recorder {
	return &Recorder{
		tickRate:  tickRate,
		bestTicks: -1,
	}
}

// RecordRestart counts a manual restart.
func (r *Recorder) RecordRestart() {
	r.restarts++
	r.restartsSince++
}

// RecordRun registers a finished run and returns its record.
// wallTime is seconds since session start, cameraMode the mode active when
// the run finished.
func (r *Recorder) RecordRun(endTick, ticks int64, best bool, wallTime float64, cameraMode string) RunRecord {
	rec := RunRecord{
		RunIndex:   len(r.runs) + 1,
		EndTick:    endTick,
		Ticks:      ticks,
		Seconds:    float64(ticks) / r.tickRate,
		Best:       best,
		Restarts:   r.restartsSince,
		WallTime:   wallTime,
		CameraMode: cameraMode,
	}
	r.runs = append(r.runs, rec)
	r.restartsSince = 0
	if best {
		r.bestTicks = ticks
	}
	return rec
}

// RunsFinished returns how many runs completed this session.
func (r *Recorder) RunsFinished() int {
	return len(r.runs)
}

// BestTicks returns the session best, or -1 if no run finished.
func (r *Recorder) BestTicks() int64 {
	return r.bestTicks
}

// SessionStats summarizes a play session.
type SessionStats struct {
	RunsFinished int
	Restarts     int
	BestSeconds  float64
	MeanSeconds  float64
	P10Seconds   float64
	P50Seconds   float64
	P90Seconds   float64
}

// Summary aggregates all recorded runs.
func (r *Recorder) Summary() SessionStats {
	s := SessionStats{
		RunsFinished: len(r.runs),
		Restarts:     r.restarts,
		BestSeconds:  -1,
	}
	if r.bestTicks >= 0 {
		s.BestSeconds = float64(r.bestTicks) / r.tickRate
	}

	durations := make([]float64, 0, len(r.runs))
	for _, rec := range r.runs {
		durations = append(durations, rec.Seconds)
	}
	s.MeanSeconds, s.P10Seconds, s.P50Seconds, s.P90Seconds = ComputeRunStats(durations)
	return s
}

// LogSummary logs the session summary using slog.
func (r *Recorder) LogSummary() {
	s := r.Summary()
	slog.Info("session summary",
		"runs_finished", s.RunsFinished,
		"restarts", s.Restarts,
		"best_seconds", s.BestSeconds,
		"mean_seconds", s.MeanSeconds,
		"p10_seconds", s.P10Seconds,
		"p50_seconds", s.P50Seconds,
		"p90_seconds", s.P90Seconds,
	)
}
