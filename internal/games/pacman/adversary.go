package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// AdversaryGlyph is the rune every adversary is drawn with.
const AdversaryGlyph = 'ᗣ'

// Adversary wanders the maze at random. It has no memory of its previous
// direction and does not chase the player.
type Adversary struct {
	body
	color core.Color

	// moveTimer counts frames since the last move attempt.
	moveTimer int
	threshold int
	rng       *rand.Rand
}

// NewAdversary creates an adversary at start that moves once every
// threshold+1 frames, drawing its choices from rng.
func NewAdversary(grid *GridMap, start core.Point, color core.Color, threshold int, rng *rand.Rand) *Adversary {
	return &Adversary{
		body:      body{pos: start, grid: grid},
		color:     color,
		threshold: threshold,
		rng:       rng,
	}
}

// Color returns the adversary's color tag.
func (a *Adversary) Color() core.Color {
	return a.color
}

// Candidates returns the open neighbor directions in Up, Down, Left, Right
// order. Unlike the player, adversaries never leave the grid.
func (a *Adversary) Candidates() []Direction {
	out := make([]Direction, 0, len(cardinals))
	for _, dir := range cardinals {
		if a.open(a.pos.Add(dir.Delta())) {
			out = append(out, dir)
		}
	}
	return out
}

// open is canEnter without the horizontal tunnel.
func (a *Adversary) open(p core.Point) bool {
	return a.canEnter(p) && a.grid.InBounds(p.X, p.Y)
}

// Move steps once in dir if the target is inside the grid and not a wall.
func (a *Adversary) Move(dir Direction) bool {
	if dir == DirNone {
		return false
	}
	target := a.pos.Add(dir.Delta())
	if !a.open(target) {
		return false
	}
	a.pos = target
	return true
}

// Update advances the throttle by one frame and, once it has waited past the
// threshold, moves to a uniformly chosen open neighbor. A fully enclosed
// adversary stays where it is.
func (a *Adversary) Update() bool {
	waited := a.moveTimer
	a.moveTimer++
	if waited < a.threshold {
		return false
	}
	a.moveTimer = 0

	moves := a.Candidates()
	if len(moves) == 0 {
		return false
	}
	return a.Move(moves[a.rng.Intn(len(moves))])
}
