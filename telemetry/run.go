// Package telemetry records finished runs and session statistics.
package telemetry

import "log/slog"

// RunRecord describes one completed start-to-finish run.
type RunRecord struct {
	RunIndex   int     `csv:"run"`
	EndTick    int64   `csv:"end_tick"`
	Ticks      int64   `csv:"ticks"`
	Seconds    float64 `csv:"seconds"`
	Best       bool    `csv:"best"`
	Restarts   int     `csv:"restarts"`   // restarts since the previous finish
	WallTime   float64 `csv:"wall_time"`  // seconds since session start
	CameraMode string  `csv:"camera_mode"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("run", r.RunIndex),
		slog.Int64("end_tick", r.EndTick),
		slog.Int64("ticks", r.Ticks),
		slog.Float64("seconds", r.Seconds),
		slog.Bool("best", r.Best),
		slog.Int("restarts", r.Restarts),
	)
}

// LogRun logs the record using slog.
func (r RunRecord) LogRun() {
	slog.Info("run finished",
		"run", r.RunIndex,
		"end_tick", r.EndTick,
		"ticks", r.Ticks,
		"seconds", r.Seconds,
		"best", r.Best,
		"restarts", r.Restarts,
	)
}
