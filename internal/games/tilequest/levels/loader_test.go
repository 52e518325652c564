package levels

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tile-quest/internal/games/tilequest/core"
)

const crossLevel = `id: "cross"
name: "Cross"
countdown: 90
rows:
  - "RRB"
  - "G P R"
  - "yellow orange green"
`

func writeLevel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(crossLevel))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.ID != "cross" || lvl.Name != "Cross" {
		t.Errorf("ParseYAML() id/name = %s/%s, expected cross/Cross", lvl.ID, lvl.Name)
	}
	if lvl.Width != 3 || lvl.Height != 3 {
		t.Errorf("size = %dx%d, expected 3x3", lvl.Width, lvl.Height)
	}
	if lvl.Countdown != 90 {
		t.Errorf("Countdown = %v, expected 90", lvl.Countdown)
	}

	expected := [][]core.Color{
		{core.ColorRed, core.ColorRed, core.ColorBlue},
		{core.ColorGreen, core.ColorPurple, core.ColorRed},
		{core.ColorYellow, core.ColorOrange, core.ColorGreen},
	}
	for y := range expected {
		for x := range expected[y] {
			if lvl.Rows[y][x] != expected[y][x] {
				t.Errorf("Rows[%d][%d] = %v, expected %v", y, x, lvl.Rows[y][x], expected[y][x])
			}
		}
	}

	h := lvl.Histogram()
	if h[core.ColorRed] != 3 || h[core.ColorGreen] != 2 || h.Total() != 9 {
		t.Errorf("Histogram() = %v, expected 3 red, 2 green, 9 total", h)
	}

	g := lvl.ToGrid(16)
	if g.W != 3 || g.H != 3 || g.TileSize != 16 {
		t.Errorf("ToGrid() = %dx%d tile %d, expected 3x3 tile 16", g.W, g.H, g.TileSize)
	}
	if tile := g.Get(core.C(1, 1)); tile == nil || tile.Color != core.ColorPurple {
		t.Errorf("ToGrid() center = %v, expected purple tile", tile)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "rows: [unclosed"},
		{"missing id", "rows: [\"RGB\"]"},
		{"no rows", "id: empty"},
		{"unknown color", "id: bad\nrows: [\"RXB\"]"},
		{"ragged rows", "id: ragged\nrows: [\"RGB\", \"RG\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.data)); err == nil {
				t.Errorf("ParseYAML(%q) expected error", tt.data)
			}
		})
	}
}

func TestParseYAMLDefaultsName(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: plain\nrows: [\"RG\"]"))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if lvl.Name != "plain" {
		t.Errorf("Name = %q, expected id as name", lvl.Name)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", "id: b\nrows: [\"RG\", \"BY\"]")
	writeLevel(t, dir, "nested/a.yml", "id: a\nrows: [\"RRR\"]")
	writeLevel(t, dir, "broken.yaml", "id: broken\nrows: [\"RZ\"]")
	writeLevel(t, dir, "notes.txt", "id: ignored")

	loader := NewLoader(dir)
	levels, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("LoadAll() = %d levels, expected 2", len(levels))
	}
	if levels[0].ID != "a" || levels[1].ID != "b" {
		t.Errorf("LoadAll() order = %s, %s, expected a, b", levels[0].ID, levels[1].ID)
	}
	if levels[0].FilePath == "" {
		t.Error("LoadAll() should record FilePath")
	}

	ids, err := loader.ListIDs()
	if err != nil || len(ids) != 2 {
		t.Errorf("ListIDs() = %v, %v, expected 2 ids", ids, err)
	}

	lvl, err := loader.LoadByID("b")
	if err != nil || lvl.Width != 2 || lvl.Height != 2 {
		t.Errorf("LoadByID(b) = %+v, %v, expected 2x2", lvl, err)
	}
	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID(missing) expected error")
	}
}

func TestLoaderErrors(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("LoadAll() on a missing directory expected error")
	}

	dir := t.TempDir()
	writeLevel(t, dir, "level.json", "{}")
	if _, err := NewLoader(dir).LoadFile("level.json"); err == nil {
		t.Error("LoadFile() expected error for unsupported extension")
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("ReadFile() expected error for a missing file")
	}
}

func TestReadFile(t *testing.T) {
	path := writeLevel(t, t.TempDir(), "cross.yaml", crossLevel)
	lvl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if lvl.ID != "cross" || lvl.FilePath != path {
		t.Errorf("ReadFile() = %s at %s, expected cross at %s", lvl.ID, lvl.FilePath, path)
	}
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"pack/one.yaml": {Data: []byte("id: one\nrows: [\"RGB\"]")},
		"pack/two.yaml": {Data: []byte("id: two\nrows: [\"BGR\"]")},
	}
	ids, err := NewFSLoader(fsys).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "one" || ids[1] != "two" {
		t.Errorf("ListIDs() = %v, expected [one two]", ids)
	}
}
