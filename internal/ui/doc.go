package ui

// Package ui contains the Fyne-based desktop user interface for the tool.
// It wires the button pad to the move service, renders the session move
// history, and hosts the settings dialog. All UI strings are localized via
// Localization.
