package model

import (
	"fmt"
	"time"

	"github.com/udimtools/udim-mover/internal/udim"
)

// MoveKind identifies which operation produced a move record
type MoveKind string

const (
	// MoveKindReset snaps the selection back to tile 1001
	MoveKindReset MoveKind = "Reset"

	// MoveKindNudge is a one-tile directional move
	MoveKindNudge MoveKind = "Nudge"

	// MoveKindJump is an absolute move to a target tile
	MoveKindJump MoveKind = "Jump"
)

// Move represents a single UV move issued against the host
type Move struct {
	ID        string
	Kind      MoveKind
	Direction udim.Direction // set for nudges
	Target    udim.Tile      // set for jumps
	DU        float64        // applied U translation
	DV        float64        // applied V translation
	Status    MoveStatus
	LastError string // last error message if any
	IssuedAt  time.Time
	DoneAt    time.Time
}

// GetDisplayLabel returns a short human-readable description of the move
// for the history list.
func (m *Move) GetDisplayLabel() string {
	switch m.Kind {
	case MoveKindReset:
		return "Reset to UDIM 1001"
	case MoveKindNudge:
		return "Nudge " + m.Direction.String()
	case MoveKindJump:
		return "Jump to UDIM " + m.Target.String()
	default:
		return string(m.Kind)
	}
}

// GetDetailText returns the applied deltas, or the failure reason for
// failed moves.
func (m *Move) GetDetailText() string {
	if m.Status == MoveStatusFailed {
		if m.LastError != "" {
			return m.LastError
		}
		return "failed"
	}
	return fmt.Sprintf("dU %+g  dV %+g", m.DU, m.DV)
}
