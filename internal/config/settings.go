package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/udimtools/udim-mover/internal/host"
	"github.com/udimtools/udim-mover/internal/udim"
)

// HostMode selects which host binding the tool drives
type HostMode string

const (
	HostModeMaya    HostMode = "maya"
	HostModeBridge  HostMode = "bridge"
	HostModeOffline HostMode = "offline"
)

// Settings keys for Fyne preferences
const (
	KeyHostMode       = "host_mode"
	KeyMayaAddress    = "maya_address"
	KeyBridgeURL      = "bridge_url"
	KeyPresetTiles    = "preset_tiles"
	KeyAutoConnect    = "auto_connect"
	KeyCommandTimeout = "command_timeout_seconds"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultHostMode       = HostModeOffline
	DefaultCommandTimeout = 5
	DefaultAutoConnect    = true
	DefaultLanguage       = "en"

	MinCommandTimeout = 1
	MaxCommandTimeout = 60
)

// DefaultPresetTiles are the two preset tiles the tool historically shipped
// with.
var DefaultPresetTiles = []udim.Tile{1026, 1062}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHostMode returns the configured host mode
func (s *Settings) GetHostMode() HostMode {
	mode := HostMode(s.app.Preferences().String(KeyHostMode))
	switch mode {
	case HostModeMaya, HostModeBridge, HostModeOffline:
		return mode
	default:
		return DefaultHostMode
	}
}

// SetHostMode sets the host mode
func (s *Settings) SetHostMode(mode HostMode) {
	s.app.Preferences().SetString(KeyHostMode, string(mode))
}

// GetHostModeOptions returns the selectable host modes
func (s *Settings) GetHostModeOptions() []HostMode {
	return []HostMode{HostModeMaya, HostModeBridge, HostModeOffline}
}

// GetMayaAddress returns the Maya command port address
func (s *Settings) GetMayaAddress() string {
	addr := s.app.Preferences().String(KeyMayaAddress)
	if addr == "" {
		return host.DefaultMayaAddress
	}
	return addr
}

// SetMayaAddress sets the Maya command port address
func (s *Settings) SetMayaAddress(addr string) {
	s.app.Preferences().SetString(KeyMayaAddress, addr)
}

// GetBridgeURL returns the bridge plugin WebSocket URL
func (s *Settings) GetBridgeURL() string {
	url := s.app.Preferences().String(KeyBridgeURL)
	if url == "" {
		return host.DefaultBridgeURL
	}
	return url
}

// SetBridgeURL sets the bridge plugin WebSocket URL
func (s *Settings) SetBridgeURL(url string) {
	s.app.Preferences().SetString(KeyBridgeURL, url)
}

// GetPresetTiles returns the configured preset tiles, dropping any entry
// that no longer parses as a valid tile.
func (s *Settings) GetPresetTiles() []udim.Tile {
	raw := s.app.Preferences().StringList(KeyPresetTiles)
	if len(raw) == 0 {
		return append([]udim.Tile(nil), DefaultPresetTiles...)
	}

	tiles := make([]udim.Tile, 0, len(raw))
	for _, entry := range raw {
		tile, err := udim.ParseTile(entry)
		if err != nil {
			continue
		}
		tiles = append(tiles, tile)
	}
	if len(tiles) == 0 {
		return append([]udim.Tile(nil), DefaultPresetTiles...)
	}
	return tiles
}

// SetPresetTiles sets the preset tiles
func (s *Settings) SetPresetTiles(tiles []udim.Tile) {
	entries := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		if !tile.Valid() {
			continue
		}
		entries = append(entries, tile.String())
	}
	s.app.Preferences().SetStringList(KeyPresetTiles, entries)
}

// GetAutoConnect returns whether to connect to the host on launch
func (s *Settings) GetAutoConnect() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoConnect, DefaultAutoConnect)
}

// SetAutoConnect sets whether to connect to the host on launch
func (s *Settings) SetAutoConnect(autoConnect bool) {
	s.app.Preferences().SetBool(KeyAutoConnect, autoConnect)
}

// GetCommandTimeoutSeconds returns the per-command host timeout
func (s *Settings) GetCommandTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyCommandTimeout)
	if value <= 0 {
		return DefaultCommandTimeout
	}
	if value < MinCommandTimeout {
		return MinCommandTimeout
	}
	if value > MaxCommandTimeout {
		return MaxCommandTimeout
	}
	return value
}

// SetCommandTimeoutSeconds sets the per-command host timeout, clamped to
// the supported range.
func (s *Settings) SetCommandTimeoutSeconds(seconds int) {
	if seconds < MinCommandTimeout {
		seconds = MinCommandTimeout
	}
	if seconds > MaxCommandTimeout {
		seconds = MaxCommandTimeout
	}
	s.app.Preferences().SetInt(KeyCommandTimeout, seconds)
}

// NewHostBinding constructs the host binding selected by the current
// settings. Offline mode ships a selected demo shell so the pad stays
// usable without a host.
func (s *Settings) NewHostBinding() host.Host {
	timeout := time.Duration(s.GetCommandTimeoutSeconds()) * time.Second

	switch s.GetHostMode() {
	case HostModeMaya:
		return host.NewMayaHost(s.GetMayaAddress(), timeout)
	case HostModeBridge:
		return host.NewBridgeHost(s.GetBridgeURL(), timeout)
	default:
		m := host.NewMemoryHost()
		m.AddShell("demo", 0.5, 0.5)
		_ = m.Select("demo")
		return m
	}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
