package host

import (
	"context"
	"errors"
)

// ErrNoSelection is returned when the host has no UV-convertible selection
var ErrNoSelection = errors.New("no UV components selected")

// ErrNotConnected is returned when an operation is issued before Connect
var ErrNotConnected = errors.New("host not connected")

// Host defines the interface to a UV-editing host application.
type Host interface {
	// Connect establishes the session with the host
	Connect(ctx context.Context) error

	// Close tears down the session
	Close() error

	// FirstSelectionUV returns the UV position of the first UV vertex
	// converted from the current selection. Returns ErrNoSelection when
	// nothing UV-convertible is selected.
	FirstSelectionUV(ctx context.Context) (u, v float64, err error)

	// TranslateUV translates the UVs of the current selection. The mutation
	// happens in the host document; there is no return value beyond the error.
	TranslateUV(ctx context.Context, du, dv float64) error

	// Describe returns a short human-readable description of the binding
	Describe() string
}
