package mover

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/udimtools/udim-mover/internal/host"
	"github.com/udimtools/udim-mover/internal/model"
	"github.com/udimtools/udim-mover/internal/udim"
)

// MoveIDPrefix prefixes every move ID in the history
const MoveIDPrefix = "move-"

// Service handles UV move operations against the current host binding
type Service struct {
	hostMutex sync.RWMutex
	h         host.Host

	movesMutex sync.RWMutex
	moves      []*model.Move

	onUpdate func(*model.Move) // callback for UI updates
}

// NewService creates a new move service on top of a host binding
func NewService(h host.Host) *Service {
	return &Service{h: h}
}

// SetUpdateCallback sets the callback function for move updates
func (s *Service) SetUpdateCallback(callback func(*model.Move)) {
	s.onUpdate = callback
}

// Host returns the current host binding
func (s *Service) Host() host.Host {
	s.hostMutex.RLock()
	defer s.hostMutex.RUnlock()
	return s.h
}

// SetHost swaps the host binding
func (s *Service) SetHost(h host.Host) {
	s.hostMutex.Lock()
	s.h = h
	s.hostMutex.Unlock()
}

// Moves returns a snapshot of the session move history, oldest first.
// Entries are copies; pending moves in the live history may still change.
func (s *Service) Moves() []*model.Move {
	s.movesMutex.RLock()
	defer s.movesMutex.RUnlock()

	moves := make([]*model.Move, len(s.moves))
	for i, move := range s.moves {
		snapshot := *move
		moves[i] = &snapshot
	}
	return moves
}

// ResetToOrigin queries the first selected UV, floors it, and applies the
// negated integer parts as a translation. This snaps the selection's
// integer-tile alignment back to tile 1001; the fractional position inside
// the tile is preserved.
func (s *Service) ResetToOrigin(ctx context.Context) (*model.Move, error) {
	move := s.newMove(model.MoveKindReset)
	s.trackMove(move)

	du, dv, err := s.applyReset(ctx)
	return s.finishMove(move, du, dv, err)
}

// Nudge applies a one-tile translation in the given direction. Nudges are
// relative: repeated calls accumulate linearly, and a nudge followed by its
// opposite restores the original tile.
func (s *Service) Nudge(ctx context.Context, dir udim.Direction) (*model.Move, error) {
	move := s.newMove(model.MoveKindNudge)
	move.Direction = dir
	du, dv := dir.Delta()
	move.DU, move.DV = du, dv
	s.trackMove(move)

	err := s.Host().TranslateUV(ctx, du, dv)
	return s.finishMove(move, du, dv, err)
}

// JumpTo moves the selection onto the target tile: reset to 1001 first,
// then translate by the tile's decomposed U/V offsets. Reset-then-offset
// makes the jump absolute regardless of the starting tile.
func (s *Service) JumpTo(ctx context.Context, tile udim.Tile) (*model.Move, error) {
	move := s.newMove(model.MoveKindJump)
	move.Target = tile
	s.trackMove(move)

	du, dv, err := tile.OffsetFromOrigin()
	if err != nil {
		return s.finishMove(move, 0, 0, err)
	}

	resetDU, resetDV, err := s.applyReset(ctx)
	if err != nil {
		return s.finishMove(move, resetDU, resetDV, err)
	}

	if err := s.Host().TranslateUV(ctx, du, dv); err != nil {
		return s.finishMove(move, resetDU, resetDV, err)
	}
	return s.finishMove(move, resetDU+du, resetDV+dv, nil)
}

// applyReset performs the reset translation and returns the applied deltas
func (s *Service) applyReset(ctx context.Context) (du, dv float64, err error) {
	h := s.Host()

	u, v, err := h.FirstSelectionUV(ctx)
	if err != nil {
		return 0, 0, err
	}

	du = -math.Floor(u)
	dv = -math.Floor(v)
	if du == 0 && dv == 0 {
		return 0, 0, nil
	}

	if err := h.TranslateUV(ctx, du, dv); err != nil {
		return 0, 0, err
	}
	return du, dv, nil
}

// newMove creates a pending move record
func (s *Service) newMove(kind model.MoveKind) *model.Move {
	return &model.Move{
		ID:       generateMoveID(),
		Kind:     kind,
		Status:   model.MoveStatusPending,
		IssuedAt: time.Now(),
	}
}

// trackMove publishes the pending move to the history and the callback.
// Callers finish initializing the record before tracking it; afterwards
// only finishMove may write to it, under movesMutex.
func (s *Service) trackMove(move *model.Move) {
	s.movesMutex.Lock()
	s.moves = append(s.moves, move)
	s.movesMutex.Unlock()

	s.notifyUpdate(move)
}

// finishMove records the outcome, notifies the UI, and returns the move
func (s *Service) finishMove(move *model.Move, du, dv float64, err error) (*model.Move, error) {
	s.movesMutex.Lock()
	move.DU, move.DV = du, dv
	if err != nil {
		move.Status = model.MoveStatusFailed
		move.LastError = err.Error()
	} else {
		move.Status = model.MoveStatusApplied
	}
	move.DoneAt = time.Now()
	s.movesMutex.Unlock()

	if err != nil {
		log.Printf("Move %s (%s) failed: %v", move.ID, move.Kind, err)
	} else {
		log.Printf("Move %s (%s) applied: dU=%g dV=%g", move.ID, move.Kind, du, dv)
	}

	s.notifyUpdate(move)
	return move, err
}

// notifyUpdate delivers a snapshot of the move to the update callback.
// The callback may hand the record to another goroutine (the UI thread),
// so the live history entry is never shared.
func (s *Service) notifyUpdate(move *model.Move) {
	if s.onUpdate == nil {
		return
	}

	s.movesMutex.RLock()
	snapshot := *move
	s.movesMutex.RUnlock()
	s.onUpdate(&snapshot)
}

// generateMoveID generates a unique move ID using UUID v7 so history
// entries sort chronologically.
func generateMoveID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(MoveIDPrefix+"%d", time.Now().UnixNano())
	}
	return MoveIDPrefix + id.String()
}
