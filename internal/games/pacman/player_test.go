package pacman

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestPlayerHorizontalWrap(t *testing.T) {
	g := newGrid(t,
		"#####",
		"_..._",
		"#####",
	)

	t.Run("left edge", func(t *testing.T) {
		p := NewPlayer(g, core.Pt(0, 1))
		p.Queue(DirLeft)
		p.Tick()
		if p.Position() != core.Pt(4, 1) {
			t.Errorf("Position() = %v, expected (4,1)", p.Position())
		}
	})

	t.Run("right edge", func(t *testing.T) {
		p := NewPlayer(g, core.Pt(4, 1))
		p.Queue(DirRight)
		p.Tick()
		if p.Position() != core.Pt(0, 1) {
			t.Errorf("Position() = %v, expected (0,1)", p.Position())
		}
	})
}

func TestPlayerNoVerticalWrap(t *testing.T) {
	g := newGrid(t,
		"#_#",
		"#P#",
		"###",
	)
	p := NewPlayer(g, core.Pt(1, 1))

	p.Queue(DirUp)
	p.Tick()
	if p.Position() != core.Pt(1, 0) {
		t.Fatalf("Position() = %v, expected (1,0)", p.Position())
	}

	// Above row 0 is off the grid: blocked, not wrapped
	p.Tick()
	if p.Position() != core.Pt(1, 0) {
		t.Errorf("Position() = %v, expected to stay at (1,0)", p.Position())
	}
	if p.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up to be retained", p.Direction())
	}
}

func TestPlayerBlockedTurnDropped(t *testing.T) {
	g := newGrid(t,
		"#####",
		"#P..#",
		"#####",
	)
	p := NewPlayer(g, core.Pt(1, 1))

	p.Queue(DirUp) // wall above
	p.Tick()
	if p.Direction() != DirNone {
		t.Errorf("Direction() = %v, expected none", p.Direction())
	}
	if p.NextDirection() != DirNone {
		t.Errorf("NextDirection() = %v, expected blocked request to be dropped", p.NextDirection())
	}
	if p.Position() != core.Pt(1, 1) {
		t.Errorf("Position() = %v, expected (1,1)", p.Position())
	}

	p.Queue(DirRight)
	p.Tick()
	p.Queue(DirDown) // wall below
	p.Tick()

	if p.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right to be unchanged", p.Direction())
	}
	if p.NextDirection() != DirNone {
		t.Errorf("NextDirection() = %v, expected none", p.NextDirection())
	}
	if p.Position() != core.Pt(3, 1) {
		t.Errorf("Position() = %v, expected (3,1)", p.Position())
	}
}

func TestPlayerOpenTurnApplied(t *testing.T) {
	g := newGrid(t,
		"#####",
		"#P..#",
		"#.###",
		"#####",
	)
	p := NewPlayer(g, core.Pt(1, 1))

	p.Queue(DirDown)
	p.Tick()

	if p.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", p.Direction())
	}
	if p.NextDirection() != DirNone {
		t.Errorf("NextDirection() = %v, expected consumed request", p.NextDirection())
	}
	if p.Position() != core.Pt(1, 2) {
		t.Errorf("Position() = %v, expected (1,2)", p.Position())
	}
}

func TestPlayerQueueOverwrites(t *testing.T) {
	g := newGrid(t,
		"#####",
		"#P..#",
		"#.###",
		"#####",
	)
	p := NewPlayer(g, core.Pt(1, 1))

	p.Queue(DirDown)
	p.Queue(DirRight)
	if p.NextDirection() != DirRight {
		t.Fatalf("NextDirection() = %v, expected the last request", p.NextDirection())
	}
	p.Tick()
	if p.Position() != core.Pt(2, 1) {
		t.Errorf("Position() = %v, expected (2,1)", p.Position())
	}
}

func TestPlayerHoldBlockedTurns(t *testing.T) {
	g := newGrid(t,
		"#####",
		"#P..#",
		"###.#",
		"#####",
	)
	p := NewPlayer(g, core.Pt(1, 1))
	p.holdTurns = true

	p.Queue(DirRight)
	p.Tick() // (2,1)
	p.Queue(DirDown)
	p.Tick() // down blocked, keeps going right to (3,1)

	if p.NextDirection() != DirDown {
		t.Fatalf("NextDirection() = %v, expected held request", p.NextDirection())
	}
	if p.Position() != core.Pt(3, 1) {
		t.Fatalf("Position() = %v, expected (3,1)", p.Position())
	}

	p.Tick()
	if p.Direction() != DirDown || p.Position() != core.Pt(3, 2) {
		t.Errorf("expected held turn to apply: dir=%v pos=%v", p.Direction(), p.Position())
	}
}

func TestPlayerStopsAtWallKeepingDirection(t *testing.T) {
	g := newGrid(t, "####", "#..#", "####")
	p := NewPlayer(g, core.Pt(1, 1))

	p.Queue(DirRight)
	if !p.Tick() {
		t.Fatal("first tick should move")
	}
	if p.Tick() {
		t.Error("second tick should be blocked")
	}
	if p.Position() != core.Pt(2, 1) || p.Direction() != DirRight {
		t.Errorf("expected to rest at (2,1) facing right, got %v %v", p.Position(), p.Direction())
	}
}

func TestPlayerMoveNone(t *testing.T) {
	g := newGrid(t, "...")
	p := NewPlayer(g, core.Pt(1, 0))
	if p.Move(DirNone) {
		t.Error("Move(DirNone) should not move")
	}
}

func TestMouthAngleBounds(t *testing.T) {
	maxAngle := 0.2 * math.Pi
	for ms := int64(0); ms < 2000; ms += 7 {
		a := MouthAngle(ms, 100)
		if a < 0 || a > maxAngle+1e-9 {
			t.Fatalf("MouthAngle(%d) = %f out of [0, %f]", ms, a, maxAngle)
		}
	}
	if MouthAngle(0, 100) != 0 {
		t.Error("mouth should be closed at t=0")
	}
	if MouthAngle(157, 0) == 0 {
		t.Error("non-positive period should fall back to the default")
	}
}

func TestGlyph(t *testing.T) {
	open := 0.2 * math.Pi
	tests := []struct {
		name     string
		dir      Direction
		angle    float64
		expected rune
	}{
		{"closed", DirRight, 0, '●'},
		{"right", DirRight, open, 'ᗧ'},
		{"idle faces right", DirNone, open, 'ᗧ'},
		{"left", DirLeft, open, 'ᗤ'},
		{"up", DirUp, open, 'ᗢ'},
		{"down", DirDown, open, 'ᗜ'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Glyph(tc.dir, tc.angle); got != tc.expected {
				t.Errorf("Glyph(%v, %f) = %q, expected %q", tc.dir, tc.angle, got, tc.expected)
			}
		})
	}
}
