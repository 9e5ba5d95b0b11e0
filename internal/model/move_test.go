package model

import (
	"testing"
	"time"

	"github.com/udimtools/udim-mover/internal/udim"
)

func TestMoveStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   MoveStatus
		finished bool
	}{
		{MoveStatusPending, false},
		{MoveStatusApplied, true},
		{MoveStatusFailed, true},
	}

	for _, test := range tests {
		if test.status.IsFinished() != test.finished {
			t.Errorf("IsFinished(%s) = %v, expected %v", test.status, !test.finished, test.finished)
		}
	}
}

func TestMove_GetDisplayLabel(t *testing.T) {
	tests := []struct {
		move     Move
		expected string
	}{
		{Move{Kind: MoveKindReset}, "Reset to UDIM 1001"},
		{Move{Kind: MoveKindNudge, Direction: udim.DirectionUp}, "Nudge up"},
		{Move{Kind: MoveKindJump, Target: 1026}, "Jump to UDIM 1026"},
	}

	for _, test := range tests {
		if got := test.move.GetDisplayLabel(); got != test.expected {
			t.Errorf("GetDisplayLabel() = %q, expected %q", got, test.expected)
		}
	}
}

func TestMove_GetDetailText(t *testing.T) {
	applied := &Move{Status: MoveStatusApplied, DU: 5, DV: -2}
	if got := applied.GetDetailText(); got != "dU +5  dV -2" {
		t.Errorf("GetDetailText() = %q", got)
	}

	failed := &Move{Status: MoveStatusFailed, LastError: "no UV components selected"}
	if got := failed.GetDetailText(); got != "no UV components selected" {
		t.Errorf("GetDetailText() for failed move = %q", got)
	}

	failedNoErr := &Move{Status: MoveStatusFailed}
	if got := failedNoErr.GetDetailText(); got != "failed" {
		t.Errorf("GetDetailText() for failed move without error = %q", got)
	}
}

func TestMove_Creation(t *testing.T) {
	now := time.Now()
	move := &Move{
		ID:       "move-123",
		Kind:     MoveKindJump,
		Target:   1062,
		Status:   MoveStatusPending,
		IssuedAt: now,
	}

	if move.Status.IsFinished() {
		t.Error("Pending move should not be finished")
	}
	if !move.IssuedAt.Equal(now) {
		t.Errorf("Expected IssuedAt to be %v, got %v", now, move.IssuedAt)
	}
}
