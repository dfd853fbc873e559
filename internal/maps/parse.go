package maps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMap is wrapped by every layout validation failure.
var ErrInvalidMap = errors.New("invalid map")

// yamlMap is the on-disk map format. Exactly one of Grid or Rows is set.
type yamlMap struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Grid  [][]int  `yaml:"grid,omitempty"`
	Rows  []string `yaml:"rows,omitempty"`
}

// asciiCodes maps the characters of the rows format to cell codes.
var asciiCodes = map[rune]int{
	'#': CodeWall,
	'.': CodePellet,
	'o': CodePowerPellet,
	' ': CodeEmpty,
	'_': CodeEmpty,
	'P': CodePlayerSpawn,
	'G': CodeAdversarySpawn,
}

// Parse parses a YAML map definition.
func Parse(data []byte) (Map, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	var cells [][]int
	switch {
	case len(ym.Grid) > 0 && len(ym.Rows) > 0:
		return Map{}, fmt.Errorf("%w: both grid and rows given", ErrInvalidMap)
	case len(ym.Grid) > 0:
		cells = ym.Grid
	case len(ym.Rows) > 0:
		var err error
		if cells, err = FromRows(ym.Rows); err != nil {
			return Map{}, err
		}
	default:
		return Map{}, fmt.Errorf("%w: no grid or rows", ErrInvalidMap)
	}

	if err := Validate(cells); err != nil {
		return Map{}, err
	}

	title := ym.Title
	if title == "" {
		title = ym.ID
	}
	return Map{ID: ym.ID, Title: title, Cells: cells}, nil
}

// LoadFile reads and parses a map file. A missing id defaults to the file
// name without extension.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return Map{}, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	if m.ID == "" {
		m.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if m.Title == "" {
		m.Title = m.ID
	}
	m.Path = path
	return m, nil
}

// FromRows converts the ASCII rows format to cell codes.
func FromRows(rows []string) ([][]int, error) {
	cells := make([][]int, len(rows))
	for y, row := range rows {
		line := make([]int, 0, len(row))
		for x, ch := range []rune(row) {
			code, ok := asciiCodes[ch]
			if !ok {
				return nil, fmt.Errorf("%w: unknown character %q at (%d,%d)", ErrInvalidMap, ch, x, y)
			}
			line = append(line, code)
		}
		cells[y] = line
	}
	return cells, nil
}

// Validate checks that cells form a non-empty rectangle of known codes.
func Validate(cells [][]int) error {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return fmt.Errorf("%w: empty layout", ErrInvalidMap)
	}
	cols := len(cells[0])
	for y, row := range cells {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidMap, y, len(row), cols)
		}
		for x, code := range row {
			if code < CodePellet || code > CodeAdversarySpawn {
				return fmt.Errorf("%w: unknown code %d at (%d,%d)", ErrInvalidMap, code, x, y)
			}
		}
	}
	return nil
}
