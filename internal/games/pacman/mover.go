package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Mover is the capability shared by grid-bound entities.
type Mover interface {
	// Position returns the current grid cell.
	Position() core.Point
	// Move attempts a single step and reports whether it happened.
	Move(dir Direction) bool
}

// body holds the grid position shared by Player and Adversary.
type body struct {
	pos  core.Point
	grid *GridMap
}

func (b *body) Position() core.Point {
	return b.pos
}

// canEnter is the wrap-aware collision check: the row must be inside the
// grid, the column may be one step outside it (tunnel), and the cell must
// not be a wall.
func (b *body) canEnter(p core.Point) bool {
	return p.Y >= 0 && p.Y < b.grid.Rows() && !b.grid.IsWall(p.X, p.Y)
}

// collides reports whether two movers share a cell.
func collides(a, b Mover) bool {
	return a.Position() == b.Position()
}

var (
	_ Mover = (*Player)(nil)
	_ Mover = (*Adversary)(nil)
)
