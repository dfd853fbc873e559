// Package maps provides the built-in maze layouts and map file parsing.
// Built-in maps register themselves at init from embedded YAML, allowing the
// CLI to list and pick them without hardcoded dependencies.
package maps

import (
	"embed"
	"fmt"
	"sort"
	"sync"
)

// Cell codes of the integer map format.
const (
	CodePellet         = 0
	CodeWall           = 1
	CodeEmpty          = 2
	CodePowerPellet    = 3 // accepted for compatibility, played as a plain pellet
	CodePlayerSpawn    = 4
	CodeAdversarySpawn = 5
)

// DefaultID is the map used when none is requested.
const DefaultID = "classic"

// Map is a parsed maze layout.
type Map struct {
	ID    string
	Title string
	Cells [][]int // row-major, Cells[y][x]
	Path  string  // source file, empty for built-ins
}

// Size returns the map dimensions as columns, rows.
func (m Map) Size() (cols, rows int) {
	if len(m.Cells) == 0 {
		return 0, 0
	}
	return len(m.Cells[0]), len(m.Cells)
}

// Info contains metadata about a registered map.
type Info struct {
	ID    string
	Title string
	Cols  int
	Rows  int
}

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	registered = make(map[string]Map)
	mu         sync.RWMutex
)

func init() {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("maps: read embedded maps: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("maps: read %s: %v", e.Name(), err))
		}
		m, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("maps: parse %s: %v", e.Name(), err))
		}
		Register(m)
	}
}

// Register adds a map to the registry.
// Panics if a map with the same ID is already registered.
func Register(m Map) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[m.ID]; exists {
		panic(fmt.Sprintf("maps: map %q already registered", m.ID))
	}
	registered[m.ID] = m
}

// List returns information about all registered maps, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for id, m := range registered {
		cols, rows := m.Size()
		result = append(result, Info{
			ID:    id,
			Title: m.Title,
			Cols:  cols,
			Rows:  rows,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of a registered map.
// Returns an error if the map ID is not registered.
func Get(id string) (Map, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := registered[id]
	if !ok {
		return Map{}, fmt.Errorf("maps: unknown map %q", id)
	}
	m.Cells = cloneCells(m.Cells)
	return m, nil
}

// Exists checks if a map with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}

// Resolve picks a map: a file path wins over an id, and an empty id means
// the default map.
func Resolve(id, file string) (Map, error) {
	if file != "" {
		return LoadFile(file)
	}
	if id == "" {
		id = DefaultID
	}
	return Get(id)
}

func cloneCells(cells [][]int) [][]int {
	out := make([][]int, len(cells))
	for y, row := range cells {
		out[y] = append([]int(nil), row...)
	}
	return out
}
