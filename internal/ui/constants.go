package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (symbols)
const (
	IconSettings = "⚙"
	IconUp       = "▲"
	IconDown     = "▼"
	IconLeft     = "◀"
	IconRight    = "▶"
	IconOK       = "✓"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 360
	WindowHeight float32 = 460
)

// Preset library file filter extensions
var PresetFileExtensions = []string{".yaml", ".yml"}
