package model

// MoveStatus represents the status of a UV move operation
type MoveStatus string

const (
	// MoveStatusPending means the move has been issued but not yet applied
	MoveStatusPending MoveStatus = "Pending"

	// MoveStatusApplied means the host accepted and applied the translation
	MoveStatusApplied MoveStatus = "Applied"

	// MoveStatusFailed means the move was rejected or the host call failed
	MoveStatusFailed MoveStatus = "Failed"
)

// String returns the string representation of MoveStatus
func (ms MoveStatus) String() string {
	return string(ms)
}

// IsFinished returns true if the move reached a terminal state
func (ms MoveStatus) IsFinished() bool {
	return ms == MoveStatusApplied || ms == MoveStatusFailed
}
