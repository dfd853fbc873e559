package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maps"
)

// Tile is the classification of one grid cell.
type Tile uint8

const (
	TilePellet         Tile = maps.CodePellet
	TileWall           Tile = maps.CodeWall
	TileEmpty          Tile = maps.CodeEmpty
	TilePlayerSpawn    Tile = maps.CodePlayerSpawn
	TileAdversarySpawn Tile = maps.CodeAdversarySpawn
)

func (t Tile) String() string {
	switch t {
	case TilePellet:
		return "pellet"
	case TileWall:
		return "wall"
	case TileEmpty:
		return "empty"
	case TilePlayerSpawn:
		return "player_spawn"
	case TileAdversarySpawn:
		return "adversary_spawn"
	default:
		return "unknown"
	}
}

// GridMap is the static tile grid. Its dimensions never change and walls are
// never mutated; pellets turn into empty cells when consumed.
type GridMap struct {
	cols, rows int
	tiles      [][]Tile

	playerStart     core.Point
	hasPlayerStart  bool
	adversarySpawns []core.Point
	pellets         int
}

// NewGridMap builds a grid from integer cell codes and runs the one-time
// spawn scan: every spawn tile becomes empty and its coordinate is recorded.
// The input slice is not modified.
func NewGridMap(cells [][]int) (*GridMap, error) {
	if err := maps.Validate(cells); err != nil {
		return nil, err
	}

	m := &GridMap{
		rows:  len(cells),
		cols:  len(cells[0]),
		tiles: make([][]Tile, len(cells)),
	}

	for y, row := range cells {
		m.tiles[y] = make([]Tile, len(row))
		for x, code := range row {
			t := Tile(code)
			if code == maps.CodePowerPellet {
				t = TilePellet
			}
			m.tiles[y][x] = t
		}
	}

	m.scanSpawns()
	return m, nil
}

// scanSpawns clears spawn markers in row-major order. With several player
// spawns the last one wins.
func (m *GridMap) scanSpawns() {
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			switch m.tiles[y][x] {
			case TilePlayerSpawn:
				m.playerStart = core.Pt(x, y)
				m.hasPlayerStart = true
				m.tiles[y][x] = TileEmpty
			case TileAdversarySpawn:
				m.adversarySpawns = append(m.adversarySpawns, core.Pt(x, y))
				m.tiles[y][x] = TileEmpty
			case TilePellet:
				m.pellets++
			}
		}
	}
}

// Cols returns the grid width.
func (m *GridMap) Cols() int { return m.cols }

// Rows returns the grid height.
func (m *GridMap) Rows() int { return m.rows }

// InBounds reports whether (x, y) lies inside the grid.
func (m *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// TileAt returns the tile at (x, y). Out-of-range coordinates read as empty.
func (m *GridMap) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileEmpty
	}
	return m.tiles[y][x]
}

// IsWall reports whether (x, y) is a wall. Out-of-range coordinates are not
// walls so that the player can pass through the side tunnels.
func (m *GridMap) IsWall(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// ConsumePelletAt turns a pellet at (x, y) into an empty cell.
// Reports whether there was a pellet.
func (m *GridMap) ConsumePelletAt(x, y int) bool {
	if m.TileAt(x, y) != TilePellet {
		return false
	}
	m.tiles[y][x] = TileEmpty
	m.pellets--
	return true
}

// PlayerStart returns the recorded player spawn and whether the map had one.
func (m *GridMap) PlayerStart() (core.Point, bool) {
	return m.playerStart, m.hasPlayerStart
}

// AdversarySpawns returns the adversary spawn cells in row-major order.
func (m *GridMap) AdversarySpawns() []core.Point {
	return append([]core.Point(nil), m.adversarySpawns...)
}

// PelletsLeft returns the number of unconsumed pellets.
func (m *GridMap) PelletsLeft() int {
	return m.pellets
}
