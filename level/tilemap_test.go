package level

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestParseBasic(t *testing.T) {
	m, err := Parse(strings.NewReader("0 1 0\n78 0 110\n"), 128)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", m.Width, m.Height)
	}
	if got := m.Cell(1, 0); got != 1 {
		t.Errorf("Cell(1,0) = %d, want 1", got)
	}
	if got := m.KindCell(0, 1); got != KindStart {
		t.Errorf("KindCell(0,1) = %v, want start", got)
	}
	if got := m.KindCell(2, 1); got != KindFinish {
		t.Errorf("KindCell(2,1) = %v, want finish", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ragged rows", "0 0 0\n0 0\n"},
		{"value too large", "0 300 0\n"},
		{"negative value", "0 -1 0\n"},
		{"not a number", "0 x 0\n"},
		{"empty map", "\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.in), 128); err == nil {
				t.Fatal("expected parse error, got nil")
			}
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	m, err := Parse(strings.NewReader("0 0\n\n1 1\n"), 128)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Height != 2 {
		t.Fatalf("Height = %d, want 2", m.Height)
	}
}

func TestSolidAtClamps(t *testing.T) {
	// Single solid tile surrounded by air:
	// 0 0 0
	// 0 1 0
	// 0 0 0
	m, err := Parse(strings.NewReader("0 0 0\n0 1 0\n0 0 0\n"), 100)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center tile", 150, 150, true},
		{"air corner", 50, 50, false},
		{"left of map clamps to col 0", -500, 150, false},
		{"right of map clamps to col 2", 9999, 150, false},
		{"above map clamps to row 0", 150, -1, false},
		{"below map clamps to row 2", 150, 1e6, false},
		{"cell boundary belongs to next cell", 200, 150, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.SolidAt(tt.x, tt.y); got != tt.want {
				t.Errorf("SolidAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTileAtAndKindAt(t *testing.T) {
	m, err := Parse(strings.NewReader("0 78 110 7\n"), 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := m.TileAt(r2.Vec{X: 15, Y: 5}); got != TileStart {
		t.Errorf("TileAt start cell = %d, want %d", got, TileStart)
	}
	if got := m.KindAt(r2.Vec{X: 25, Y: 5}); got != KindFinish {
		t.Errorf("KindAt finish cell = %v, want finish", got)
	}
	if got := m.KindAt(r2.Vec{X: 35, Y: 5}); got != KindSolid {
		t.Errorf("KindAt solid cell = %v, want solid", got)
	}
	// Start and finish are not solid for collision.
	if m.SolidAt(15, 5) || m.SolidAt(25, 5) {
		t.Error("start/finish tiles must not be solid")
	}
}

func TestDefaultLevel(t *testing.T) {
	m := Default(128)
	if m.Width == 0 || m.Height == 0 {
		t.Fatal("embedded level is empty")
	}
	_, start, finish, solid := m.Census()
	if start == 0 {
		t.Error("embedded level has no start tiles")
	}
	if finish == 0 {
		t.Error("embedded level has no finish tiles")
	}
	if solid == 0 {
		t.Error("embedded level has no solid tiles")
	}
}
