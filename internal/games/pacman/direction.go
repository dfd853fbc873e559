package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Direction is a unit step on the grid, or DirNone.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// cardinals is the fixed order in which adversaries enumerate moves.
var cardinals = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the direction as a unit vector (zero for DirNone).
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	default:
		return core.Pt(0, 0)
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps an input action to a direction.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
