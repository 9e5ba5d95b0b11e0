package config

import (
	"context"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/udimtools/udim-mover/internal/host"
	"github.com/udimtools/udim-mover/internal/udim"
)

func TestHostMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHostMode() != DefaultHostMode {
		t.Errorf("Expected default host mode %s, got %s", DefaultHostMode, settings.GetHostMode())
	}

	settings.SetHostMode(HostModeMaya)
	if settings.GetHostMode() != HostModeMaya {
		t.Errorf("Expected host mode maya, got %s", settings.GetHostMode())
	}

	// Unknown stored values fall back to the default
	app.Preferences().SetString(KeyHostMode, "houdini")
	if settings.GetHostMode() != DefaultHostMode {
		t.Errorf("Unknown mode should fall back to %s, got %s", DefaultHostMode, settings.GetHostMode())
	}
}

func TestMayaAddress(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMayaAddress() == "" {
		t.Error("Maya address should have a default")
	}

	settings.SetMayaAddress("10.0.0.5:7777")
	if settings.GetMayaAddress() != "10.0.0.5:7777" {
		t.Errorf("Expected custom address, got %s", settings.GetMayaAddress())
	}
}

func TestBridgeURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetBridgeURL() == "" {
		t.Error("Bridge URL should have a default")
	}

	settings.SetBridgeURL("ws://workstation:9000/udim")
	if settings.GetBridgeURL() != "ws://workstation:9000/udim" {
		t.Errorf("Expected custom URL, got %s", settings.GetBridgeURL())
	}
}

func TestPresetTiles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default presets are the historical 1026 and 1062 buttons
	presets := settings.GetPresetTiles()
	if len(presets) != 2 || presets[0] != 1026 || presets[1] != 1062 {
		t.Errorf("Expected default presets [1026 1062], got %v", presets)
	}

	settings.SetPresetTiles([]udim.Tile{1011, 1099, 1101})
	presets = settings.GetPresetTiles()
	if len(presets) != 3 || presets[0] != 1011 || presets[2] != 1101 {
		t.Errorf("Expected custom presets, got %v", presets)
	}

	// Invalid tiles are dropped on write
	settings.SetPresetTiles([]udim.Tile{1026, 999})
	presets = settings.GetPresetTiles()
	if len(presets) != 1 || presets[0] != 1026 {
		t.Errorf("Expected invalid tiles dropped, got %v", presets)
	}

	// Corrupt stored entries are skipped on read
	app.Preferences().SetStringList(KeyPresetTiles, []string{"garbage", "1033"})
	presets = settings.GetPresetTiles()
	if len(presets) != 1 || presets[0] != 1033 {
		t.Errorf("Expected corrupt entries skipped, got %v", presets)
	}
}

func TestNewHostBinding(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default mode is offline: a memory host with a ready selection
	h := settings.NewHostBinding()
	if _, ok := h.(*host.MemoryHost); !ok {
		t.Fatalf("default binding = %T, expected memory host", h)
	}
	if _, _, err := h.FirstSelectionUV(context.Background()); err != nil {
		t.Errorf("offline binding should have a selected shell, got %v", err)
	}

	settings.SetHostMode(HostModeMaya)
	settings.SetMayaAddress("10.0.0.5:7777")
	if desc := settings.NewHostBinding().Describe(); !strings.Contains(desc, "10.0.0.5:7777") {
		t.Errorf("maya binding describes %q, expected configured address", desc)
	}

	settings.SetHostMode(HostModeBridge)
	if desc := settings.NewHostBinding().Describe(); !strings.Contains(desc, host.DefaultBridgeURL) {
		t.Errorf("bridge binding describes %q, expected default URL", desc)
	}
}

func TestAutoConnect(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoConnect() != DefaultAutoConnect {
		t.Errorf("Expected default auto-connect %v", DefaultAutoConnect)
	}

	settings.SetAutoConnect(false)
	if settings.GetAutoConnect() {
		t.Error("Expected auto-connect false after set")
	}
}

func TestCommandTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCommandTimeoutSeconds() != DefaultCommandTimeout {
		t.Errorf("Expected default timeout %d, got %d", DefaultCommandTimeout, settings.GetCommandTimeoutSeconds())
	}

	settings.SetCommandTimeoutSeconds(30)
	if settings.GetCommandTimeoutSeconds() != 30 {
		t.Errorf("Expected timeout 30, got %d", settings.GetCommandTimeoutSeconds())
	}

	// Test boundary values
	settings.SetCommandTimeoutSeconds(0) // Should be clamped to minimum
	if settings.GetCommandTimeoutSeconds() != MinCommandTimeout {
		t.Error("Timeout should be clamped to minimum")
	}

	settings.SetCommandTimeoutSeconds(600) // Should be clamped to maximum
	if settings.GetCommandTimeoutSeconds() != MaxCommandTimeout {
		t.Error("Timeout should be clamped to maximum")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}
}
