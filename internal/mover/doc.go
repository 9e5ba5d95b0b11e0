package mover

// Package mover implements the UV move service: resetting selections to
// UDIM 1001, directional one-tile nudges, and absolute jumps to a target
// tile. Every operation is recorded as a move in the session history and
// reported to the UI through an update callback.
