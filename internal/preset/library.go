package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udimtools/udim-mover/internal/udim"
)

// Library is a named collection of preset tiles
type Library struct {
	Name  string `yaml:"name"`
	Tiles []int  `yaml:"tiles"`
}

// PresetTiles returns the library's tiles as validated udim.Tile values
func (l *Library) PresetTiles() ([]udim.Tile, error) {
	tiles := make([]udim.Tile, 0, len(l.Tiles))
	for _, n := range l.Tiles {
		tile := udim.Tile(n)
		if !tile.Valid() {
			return nil, fmt.Errorf("preset library %q: invalid UDIM tile %d", l.Name, n)
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

// Load reads a preset library from a YAML file
func Load(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l Library
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("preset library %s: %w", path, err)
	}
	if len(l.Tiles) == 0 {
		return nil, fmt.Errorf("preset library %s: no tiles", path)
	}
	if _, err := l.PresetTiles(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Save writes a preset library to a YAML file
func Save(path, name string, tiles []udim.Tile) error {
	l := Library{Name: name}
	for _, tile := range tiles {
		if !tile.Valid() {
			return fmt.Errorf("invalid UDIM tile %d", tile)
		}
		l.Tiles = append(l.Tiles, int(tile))
	}
	if len(l.Tiles) == 0 {
		return fmt.Errorf("refusing to save empty preset library %s", path)
	}

	raw, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("preset library %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("preset library %s: %w", path, err)
	}
	return nil
}
