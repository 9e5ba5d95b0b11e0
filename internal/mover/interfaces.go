package mover

import (
	"context"

	"github.com/udimtools/udim-mover/internal/host"
	"github.com/udimtools/udim-mover/internal/model"
	"github.com/udimtools/udim-mover/internal/udim"
)

// Mover defines the interface for the UV move service.
type Mover interface {
	// SetUpdateCallback registers the move-update callback. The callback
	// receives snapshots that are safe to retain on another goroutine.
	SetUpdateCallback(func(*model.Move))

	// ResetToOrigin snaps the selection's integer-tile alignment back to
	// UDIM 1001
	ResetToOrigin(ctx context.Context) (*model.Move, error)

	// Nudge moves the selection one tile in the given direction
	Nudge(ctx context.Context, dir udim.Direction) (*model.Move, error)

	// JumpTo resets the selection to 1001 and then moves it onto the
	// target tile
	JumpTo(ctx context.Context, tile udim.Tile) (*model.Move, error)

	// Moves returns a snapshot of the session move history, oldest first
	Moves() []*model.Move

	// Host returns the current host binding
	Host() host.Host

	// SetHost swaps the host binding (e.g. after a settings change)
	SetHost(h host.Host)
}
