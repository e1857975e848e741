package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/grapnel/config"
)

// The graphical path needs a window; these tests cover the headless driver,
// which never touches raylib.

func TestNewGameHeadlessAndTickBatches(t *testing.T) {
	config.MustInit("")
	out := filepath.Join(t.TempDir(), "session")

	g, err := NewGame(Options{Headless: true, StepsPerUpdate: 25, OutputDir: out})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	g.UpdateHeadless()
	g.UpdateHeadless()
	if got := g.Tick(); got != 50 {
		t.Errorf("Tick = %d after two batches of 25, want 50", got)
	}

	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The output directory gets a config snapshot up front.
	if _, err := os.Stat(filepath.Join(out, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "runs.csv")); err != nil {
		t.Errorf("runs.csv missing: %v", err)
	}
}

func TestNewGameRejectsBadMapPath(t *testing.T) {
	config.MustInit("")
	if _, err := NewGame(Options{MapPath: filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Fatal("expected error for missing map file")
	}
}

func TestNewGameStepsPerUpdateFloor(t *testing.T) {
	config.MustInit("")
	g, err := NewGame(Options{Headless: true, StepsPerUpdate: 0})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.UpdateHeadless()
	if got := g.Tick(); got != 1 {
		t.Errorf("Tick = %d, want 1 (steps clamp to at least one)", got)
	}
}
