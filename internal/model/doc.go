package model

// Package model holds the shared data types exchanged between the move
// service and the UI: move records and their status lifecycle.
