package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame       uint64
	Score       int
	Player      core.Point
	Dir         Direction
	NextDir     Direction
	Adversaries []core.Point
	PelletsLeft int
	GameOver    bool
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	advs := make([]core.Point, len(g.adversaries))
	for i, a := range g.adversaries {
		advs[i] = a.Position()
	}

	return Snapshot{
		Frame:       g.frame,
		Score:       g.score,
		Player:      g.player.Position(),
		Dir:         g.player.Direction(),
		NextDir:     g.player.NextDirection(),
		Adversaries: advs,
		PelletsLeft: g.grid.PelletsLeft(),
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
}
