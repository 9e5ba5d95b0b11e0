package udim

// Package udim implements UDIM tile arithmetic: decomposing 4-digit tile
// numbers into U/V grid indices, composing them back, and computing the
// translations needed to move UV shells between tiles.
