// Package pacman implements the pellet-eating maze game: a player steering
// through a fixed tile grid while adversaries wander at random.
package pacman

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maps"
)

const (
	hudHeight = 2 // score line + separator
	cellWidth = 2 // terminal columns per tile, roughly square on screen
)

// Game is the whole session state. It is owned by one driver that calls
// Step and Render from a single goroutine.
type Game struct {
	cfg       config.PacmanConfig
	layout    maps.Map
	palette   []core.Color
	threshold int

	rng      *rand.Rand
	tickRate int
	frame    uint64
	score    int

	grid        *GridMap
	player      *Player
	adversaries []*Adversary

	gameOver bool
	paused   bool
	events   []core.Event

	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// New validates the layout and config and returns a game ready for Reset.
func New(cfg config.PacmanConfig, layout maps.Map) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Adversaries.Colors()
	if err != nil {
		return nil, err
	}
	if _, err := NewGridMap(layout.Cells); err != nil {
		return nil, fmt.Errorf("pacman: map %q: %w", layout.ID, err)
	}

	return &Game{
		cfg:       cfg,
		layout:    layout,
		palette:   palette,
		threshold: cfg.EffectiveThreshold(),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man: " + g.layout.Title
}

// Reset starts a fresh session from the pristine layout. Nothing from the
// previous session survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frame = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.events = nil

	// Cells were validated in New
	g.grid, _ = NewGridMap(g.layout.Cells)

	start, ok := g.grid.PlayerStart()
	if !ok {
		start = g.cfg.Player.FallbackSpawn.Point()
	}
	g.player = NewPlayer(g.grid, start)
	g.player.holdTurns = g.cfg.Player.HoldBlockedTurns

	spawns := g.grid.AdversarySpawns()
	g.adversaries = make([]*Adversary, 0, len(spawns))
	for i, s := range spawns {
		color := g.palette[i%len(g.palette)]
		g.adversaries = append(g.adversaries, NewAdversary(g.grid, s, color, g.threshold, g.rng))
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the layout for new screen dimensions without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	requiredW := g.grid.Cols() * cellWidth
	requiredH := g.grid.Rows() + hudHeight
	g.tooSmall = w < requiredW || h < requiredH

	g.mapOffsetX = core.Clamp((w-requiredW)/2, 0, w)
	g.mapOffsetY = hudHeight
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = nil

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Input bridge: the last direction pressed this frame fills the turn
	// buffer, even while paused
	if dir := directionFor(input.LastDirection()); dir != DirNone && !g.gameOver {
		g.player.Queue(dir)
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.update()

	g.frame++
	g.player.advanceAnimation()

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs the simulation for one frame. It is a no-op once the game is
// over; the frame counter keeps running so rendering stays animated.
func (g *Game) update() {
	if g.gameOver {
		return
	}

	if g.frame%uint64(g.cfg.Player.MoveEveryFrames) == 0 {
		g.player.Tick()
		g.eat()
	}

	for _, a := range g.adversaries {
		a.Update()
	}

	g.checkCollisions()
}

// eat consumes a pellet under the player.
func (g *Game) eat() {
	pos := g.player.Position()
	if g.grid.ConsumePelletAt(pos.X, pos.Y) {
		g.score += g.cfg.Scoring.PelletPoints
		g.emit(core.EventPelletEaten)
	}
}

// checkCollisions ends the game when any adversary shares the player's cell.
func (g *Game) checkCollisions() {
	for _, a := range g.adversaries {
		if collides(a, g.player) {
			g.gameOver = true
			g.emit(core.EventGameOver)
			return
		}
	}
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, Score: g.score})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Grid exposes the tile grid for inspection.
func (g *Game) Grid() *GridMap {
	return g.grid
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Adversaries returns the adversaries in creation order.
func (g *Game) Adversaries() []*Adversary {
	return g.adversaries
}
