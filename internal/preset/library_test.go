package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/udimtools/udim-mover/internal/udim"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.yaml")
	content := "name: hero body\ntiles:\n  - 1001\n  - 1026\n  - 1062\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Name != "hero body" {
		t.Errorf("Name = %q, expected \"hero body\"", l.Name)
	}

	tiles, err := l.PresetTiles()
	if err != nil {
		t.Fatalf("PresetTiles failed: %v", err)
	}
	if len(tiles) != 3 || tiles[1] != 1026 {
		t.Errorf("tiles = %v, expected [1001 1026 1062]", tiles)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"bad-yaml.yaml", "name: [unclosed\n"},
		{"no-tiles.yaml", "name: empty\ntiles: []\n"},
		{"bad-tile.yaml", "name: broken\ntiles:\n  - 999\n"},
	}

	for _, c := range cases {
		path := filepath.Join(dir, c.name)
		if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%s) should return error", c.name)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of missing file should return error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	tiles := []udim.Tile{1011, 1099}

	if err := Save(path, "props", tiles); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	if l.Name != "props" {
		t.Errorf("Name = %q, expected \"props\"", l.Name)
	}
	got, err := l.PresetTiles()
	if err != nil {
		t.Fatalf("PresetTiles failed: %v", err)
	}
	if len(got) != 2 || got[0] != 1011 || got[1] != 1099 {
		t.Errorf("tiles = %v, expected [1011 1099]", got)
	}
}

func TestSave_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	if err := Save(path, "empty", nil); err == nil {
		t.Error("Save of empty tile list should return error")
	}
	if err := Save(path, "bad", []udim.Tile{42}); err == nil {
		t.Error("Save of invalid tile should return error")
	}
}
