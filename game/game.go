// Package game wires the simulation to raylib: input collection, the
// fixed-tick catch-up driver, the follow camera, rendering and telemetry.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/grapnel/camera"
	"github.com/pthm-cable/grapnel/config"
	"github.com/pthm-cable/grapnel/level"
	"github.com/pthm-cable/grapnel/sim"
	"github.com/pthm-cable/grapnel/telemetry"
	"github.com/pthm-cable/grapnel/ui"

	"gonum.org/v1/gonum/spatial/r2"
)

// Options holds the CLI-level knobs passed through from main.
type Options struct {
	MapPath        string // overrides config level path; empty = config/embedded
	OutputDir      string // empty = CSV output disabled
	Headless       bool
	StepsPerUpdate int // headless ticks per UpdateHeadless call
}

// Game holds the complete game state.
type Game struct {
	sim      *sim.Sim
	clock    *sim.Clock
	cam      *camera.Camera
	hud      *ui.HUD
	overlay  *ui.Overlay
	recorder *telemetry.Recorder
	output   *telemetry.OutputManager

	// State
	speed          int // graphical simulation speed multiplier (1-10)
	stepsPerUpdate int
	debugMode      bool
	quit           bool
	pendingRestart bool // set by the overlay Restart button

	// Window dimensions
	screenWidth, screenHeight float32

	start time.Time
}

// NewGame creates a new game instance. Config must be initialized first.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	m, err := loadLevel(cfg, opts.MapPath)
	if err != nil {
		return nil, err
	}

	air, start, finish, solid := m.Census()
	slog.Info("level loaded",
		"width", m.Width,
		"height", m.Height,
		"air", air,
		"start", start,
		"finish", finish,
		"solid", solid,
	)

	half := cfg.Physics.HalfExtent
	s := sim.New(m, r2.Vec{X: cfg.Level.SpawnX, Y: cfg.Level.SpawnY}, sim.Tuning{
		RotRate:     cfg.Physics.RotRate,
		Thrust:      cfg.Physics.Thrust,
		Half:        r2.Vec{X: half, Y: half},
		TetherRange: cfg.Tether.Range,
	})

	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return nil, err
	}
	cam := camera.New(
		float64(cfg.Screen.Width), float64(cfg.Screen.Height),
		m.WorldWidth(), m.WorldHeight(),
	)
	cam.Mode = mode
	cam.Smoothing = cfg.Camera.Smoothing
	cam.DeadzoneW = cfg.Camera.DeadzoneW
	cam.DeadzoneH = cfg.Camera.DeadzoneH
	cam.SnapTo(s.Body.Pos)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	return &Game{
		sim:            s,
		clock:          sim.NewClock(cfg.Physics.TickRate),
		cam:            cam,
		hud:            ui.NewHUD(),
		overlay:        ui.NewOverlay(),
		recorder:       telemetry.NewRecorder(cfg.Physics.TickRate),
		output:         output,
		speed:          1,
		stepsPerUpdate: stepsPerUpdate,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
		start:          time.Now(),
	}, nil
}

// loadLevel resolves the map source: CLI path, config path, then the
// embedded intro level.
func loadLevel(cfg *config.Config, override string) (*level.TileMap, error) {
	path := cfg.Level.Path
	if override != "" {
		path = override
	}
	if path == "" {
		return level.Default(cfg.Level.TileSize), nil
	}
	m, err := level.Load(path, cfg.Level.TileSize)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	return m, nil
}

// Update runs one frame of the graphical loop: input, as many whole
// simulation ticks as wall time owes, then camera follow.
func (g *Game) Update() {
	g.handleControlKeys()

	in := g.collectInput()
	if in.Held(sim.Quit) {
		g.quit = true
	}
	if g.pendingRestart {
		in = in.Set(sim.Restart)
		g.pendingRestart = false
	}

	if !g.clock.Paused() {
		ticks := g.clock.Advance(nowSeconds()) * g.speed
		for i := 0; i < ticks; i++ {
			g.sim.Step(in)
			g.afterTick()
		}
	}

	g.cam.Follow(g.sim.Body.Pos)
}

// UpdateHeadless runs a fixed batch of ticks without raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.sim.Step(sim.Input{})
		g.afterTick()
	}
}

// afterTick drains the finished-run slot into telemetry.
func (g *Game) afterTick() {
	res := g.sim.TakeRunResult()
	if res == nil {
		return
	}

	rec := g.recorder.RecordRun(
		res.EndTick, res.Ticks, res.Best,
		time.Since(g.start).Seconds(),
		g.cam.Mode.String(),
	)
	if config.Cfg().Telemetry.LogRuns {
		rec.LogRun()
	}
	if res.Best {
		slog.Info("new best time", "ticks", res.Ticks, "seconds", rec.Seconds)
	}
	if err := g.output.WriteRun(rec); err != nil {
		slog.Error("writing run record", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.sim.Tick
}

// ShouldQuit reports whether the quit input fired.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Close logs the session summary and flushes output files.
func (g *Game) Close() error {
	g.recorder.LogSummary()
	return g.output.Close()
}
