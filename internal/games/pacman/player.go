package pacman

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Player is the controlled character. It carries a single-slot turn buffer:
// a queued direction replaces any earlier unconsumed one.
type Player struct {
	body
	direction Direction
	next      Direction

	// holdTurns keeps a blocked turn request queued instead of dropping it.
	holdTurns bool

	// phase counts frames for the mouth animation only.
	phase uint64
}

// NewPlayer creates a player standing still at start.
func NewPlayer(grid *GridMap, start core.Point) *Player {
	return &Player{
		body: body{pos: start, grid: grid},
	}
}

// Direction returns the current travel direction.
func (p *Player) Direction() Direction {
	return p.direction
}

// NextDirection returns the queued turn, or DirNone.
func (p *Player) NextDirection() Direction {
	return p.next
}

// Queue requests a turn. It overwrites any previous request.
func (p *Player) Queue(dir Direction) {
	p.next = dir
}

// Move steps once in dir if the target cell can be entered, then applies the
// horizontal wrap.
func (p *Player) Move(dir Direction) bool {
	if dir == DirNone {
		return false
	}
	target := p.pos.Add(dir.Delta())
	if !p.canEnter(target) {
		return false
	}
	p.pos = target
	p.wrap()
	return true
}

// Tick runs one movement tick: apply the queued turn if it is open, then
// keep going straight. Against a wall the player stays put but keeps its
// direction, so the move is retried next tick.
func (p *Player) Tick() bool {
	if p.next != DirNone {
		if p.canEnter(p.pos.Add(p.next.Delta())) {
			p.direction = p.next
			p.next = DirNone
		} else if !p.holdTurns {
			p.next = DirNone
		}
	}
	return p.Move(p.direction)
}

func (p *Player) wrap() {
	cols := p.grid.Cols()
	if p.pos.X < 0 {
		p.pos.X = cols - 1
	}
	if p.pos.X >= cols {
		p.pos.X = 0
	}
}

// advanceAnimation moves the render-only phase forward one frame.
func (p *Player) advanceAnimation() {
	p.phase++
}

// MouthAngle returns the half-opening of the mouth in radians, oscillating
// in [0, 0.2π] with the elapsed time.
func MouthAngle(elapsedMs int64, periodMs int) float64 {
	if periodMs <= 0 {
		periodMs = 100
	}
	return math.Abs(math.Sin(float64(elapsedMs)/float64(periodMs))) * 0.2 * math.Pi
}

// mouthOpenThreshold is the angle above which the open-mouth glyph is drawn.
const mouthOpenThreshold = 0.06 * math.Pi

// Glyph returns the rune for a player facing dir with the given mouth angle.
func Glyph(dir Direction, angle float64) rune {
	if angle < mouthOpenThreshold {
		return '●'
	}
	switch dir {
	case DirUp:
		return 'ᗢ'
	case DirDown:
		return 'ᗜ'
	case DirLeft:
		return 'ᗤ'
	default:
		return 'ᗧ'
	}
}
