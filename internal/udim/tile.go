package udim

import (
	"fmt"
	"strconv"
)

// Tile is a UDIM tile number. Tiles encode a position on the UV grid as
// T = 1001 + u + 10*v, with U index u in [0,9] and V index v = (T-1001)/10.
type Tile int

const (
	// OriginTile is UDIM 1001, the bottom-left tile of the UDIM grid
	OriginTile Tile = 1001

	// MaxTile is the largest 4-digit UDIM tile number
	MaxTile Tile = 9999

	// TilesPerRow is the number of U columns in a UDIM row
	TilesPerRow = 10
)

// Valid reports whether t is a well-formed 4-digit UDIM tile number
func (t Tile) Valid() bool {
	return t >= OriginTile && t <= MaxTile
}

// String returns the decimal form of the tile number (e.g. "1026")
func (t Tile) String() string {
	return strconv.Itoa(int(t))
}

// Decompose splits the tile number into its U and V grid indices.
// For tile 1026 this yields u=5, v=2. Invalid tiles return an error
// instead of producing out-of-range indices.
func (t Tile) Decompose() (u, v int, err error) {
	if !t.Valid() {
		return 0, 0, fmt.Errorf("UDIM tile out of range [%d, %d]: %d", OriginTile, MaxTile, t)
	}
	offset := int(t - OriginTile)
	return offset % TilesPerRow, offset / TilesPerRow, nil
}

// OffsetFromOrigin returns the whole-tile translation that moves a shell
// sitting on tile 1001 onto t.
func (t Tile) OffsetFromOrigin() (du, dv float64, err error) {
	u, v, err := t.Decompose()
	if err != nil {
		return 0, 0, err
	}
	return float64(u), float64(v), nil
}

// Shift returns the tile du columns and dv rows away from t. Shifts that
// leave the U range are rejected rather than wrapped onto an adjacent row.
func (t Tile) Shift(du, dv int) (Tile, error) {
	u, v, err := t.Decompose()
	if err != nil {
		return 0, err
	}
	u += du
	v += dv
	return TileAt(u, v)
}

// TileAt composes a tile number from U and V grid indices
func TileAt(u, v int) (Tile, error) {
	if u < 0 || u >= TilesPerRow {
		return 0, fmt.Errorf("U index out of range [0, %d]: %d", TilesPerRow-1, u)
	}
	if v < 0 {
		return 0, fmt.Errorf("V index must not be negative: %d", v)
	}
	t := OriginTile + Tile(u) + Tile(v*TilesPerRow)
	if !t.Valid() {
		return 0, fmt.Errorf("tile (%d, %d) exceeds UDIM %d", u, v, MaxTile)
	}
	return t, nil
}

// ParseTile parses the decimal string form of a tile number
func ParseTile(s string) (Tile, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid UDIM tile %q: %w", s, err)
	}
	t := Tile(n)
	if !t.Valid() {
		return 0, fmt.Errorf("UDIM tile out of range [%d, %d]: %s", OriginTile, MaxTile, s)
	}
	return t, nil
}
