package maps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func countCode(cells [][]int, code int) int {
	n := 0
	for _, row := range cells {
		for _, c := range row {
			if c == code {
				n++
			}
		}
	}
	return n
}

func TestBuiltinMapsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "open", "tiny"} {
		if !Exists(id) {
			t.Errorf("built-in map %q not registered", id)
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}

func TestClassicLayout(t *testing.T) {
	m, err := Get(DefaultID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", DefaultID, err)
	}

	cols, rows := m.Size()
	if cols != 20 || rows != 20 {
		t.Errorf("expected 20x20, got %dx%d", cols, rows)
	}
	if n := countCode(m.Cells, CodePlayerSpawn); n != 1 {
		t.Errorf("expected 1 player spawn, got %d", n)
	}
	if n := countCode(m.Cells, CodeAdversarySpawn); n != 4 {
		t.Errorf("expected 4 adversary spawns, got %d", n)
	}
	if m.Cells[16][9] != CodePlayerSpawn {
		t.Errorf("expected player spawn at (9,16), got code %d", m.Cells[16][9])
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a, _ := Get("tiny")
	a.Cells[2][2] = CodeEmpty

	b, _ := Get("tiny")
	if b.Cells[2][2] != CodePellet {
		t.Error("mutating a returned map must not affect the registry")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown map")
	}
}

func TestParseRows(t *testing.T) {
	data := []byte(`
id: t
rows:
  - "###"
  - "#P#"
  - "#G#"
  - "_.o"
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Title != "t" {
		t.Errorf("title should default to id, got %q", m.Title)
	}

	expected := [][]int{
		{1, 1, 1},
		{1, 4, 1},
		{1, 5, 1},
		{2, 0, 3},
	}
	for y := range expected {
		for x := range expected[y] {
			if m.Cells[y][x] != expected[y][x] {
				t.Errorf("cell (%d,%d) = %d, expected %d", x, y, m.Cells[y][x], expected[y][x])
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "id: x\n"},
		{"both formats", "grid: [[1]]\nrows: [\"#\"]\n"},
		{"ragged grid", "grid: [[1, 1], [1]]\n"},
		{"unknown code", "grid: [[1, 9]]\n"},
		{"negative code", "grid: [[-1]]\n"},
		{"unknown char", "rows: [\"#X#\"]\n"},
		{"ragged rows", "rows: [\"###\", \"##\"]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidMap) {
				t.Errorf("Parse() error = %v, expected ErrInvalidMap", err)
			}
		})
	}

	if _, err := Parse([]byte("grid: {")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestLoadFile(t *testing.T) {
	m, err := LoadFile(filepath.Join("testdata", "corridor.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if m.ID != "corridor" {
		t.Errorf("ID should default to file name, got %q", m.ID)
	}
	if m.Title != "Corridor" {
		t.Errorf("Title = %q, expected Corridor", m.Title)
	}
	if m.Path == "" {
		t.Error("Path should be set for file maps")
	}
	cols, rows := m.Size()
	if cols != 7 || rows != 3 {
		t.Errorf("expected 7x3, got %dx%d", cols, rows)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("rows: [\"#?#\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("expected ErrInvalidMap, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		file     string
		expected string
		wantErr  bool
	}{
		{"default", "", "", DefaultID, false},
		{"by id", "tiny", "", "tiny", false},
		{"file wins", "tiny", "testdata/corridor.yaml", "corridor", false},
		{"unknown id", "nope", "", "", true},
		{"missing file", "", "testdata/missing.yaml", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Resolve(tc.id, tc.file)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if m.ID != tc.expected {
				t.Errorf("Resolve() ID = %q, expected %q", m.ID, tc.expected)
			}
		})
	}
}
