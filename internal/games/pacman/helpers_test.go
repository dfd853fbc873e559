package pacman

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maps"
)

// newGrid builds a grid from ASCII rows (see maps.FromRows).
func newGrid(t *testing.T, rows ...string) *GridMap {
	t.Helper()
	cells, err := maps.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	g, err := NewGridMap(cells)
	if err != nil {
		t.Fatalf("NewGridMap: %v", err)
	}
	return g
}

// newGame builds and resets a game on the given rows. tweak may adjust the
// default config before the game is created.
func newGame(t *testing.T, tweak func(*config.PacmanConfig), rows ...string) *Game {
	t.Helper()
	cells, err := maps.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	cfg := config.DefaultPacmanConfig()
	if tweak != nil {
		tweak(&cfg)
	}

	g, err := New(cfg, maps.Map{ID: "test", Title: "Test", Cells: cells})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 1})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
