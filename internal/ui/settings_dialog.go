package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/udimtools/udim-mover/internal/config"
	"github.com/udimtools/udim-mover/internal/preset"
	"github.com/udimtools/udim-mover/internal/udim"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	hostModeSelect   *widget.Select
	mayaAddressEntry *widget.Entry
	bridgeURLEntry   *widget.Entry
	timeoutEntry     *widget.Entry
	presetsEntry     *widget.Entry
	autoConnectCheck *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Host mode selection
	modeOptions := []string{}
	for _, mode := range sd.settings.GetHostModeOptions() {
		modeOptions = append(modeOptions, string(mode))
	}
	sd.hostModeSelect = widget.NewSelect(modeOptions, nil)

	// Maya command port address
	sd.mayaAddressEntry = widget.NewEntry()
	sd.mayaAddressEntry.SetPlaceHolder("127.0.0.1:20220")

	// Bridge plugin URL
	sd.bridgeURLEntry = widget.NewEntry()
	sd.bridgeURLEntry.SetPlaceHolder("ws://127.0.0.1:8765/udim")

	// Command timeout
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-60")

	// Preset tiles
	sd.presetsEntry = widget.NewEntry()
	sd.presetsEntry.SetPlaceHolder("1026, 1062")
	sd.presetsEntry.Validator = sd.validatePresets

	importBtn := widget.NewButton(sd.localization.GetText(KeyImportPresets), sd.onImportPresets)
	exportBtn := widget.NewButton(sd.localization.GetText(KeyExportPresets), sd.onExportPresets)
	presetActions := container.NewHBox(importBtn, exportBtn)

	// Auto-connect
	sd.autoConnectCheck = widget.NewCheck(sd.localization.GetText(KeyAutoConnect), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyHostMode)+":"),
		sd.hostModeSelect,

		widget.NewLabel(sd.localization.GetText(KeyMayaAddress)+":"),
		sd.mayaAddressEntry,

		widget.NewLabel(sd.localization.GetText(KeyBridgeURL)+":"),
		sd.bridgeURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyCommandTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyPresetTiles)+":"),
		sd.presetsEntry,
		presetActions,

		widget.NewSeparator(),

		sd.autoConnectCheck,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.hostModeSelect.SetSelected(string(sd.settings.GetHostMode()))
	sd.mayaAddressEntry.SetText(sd.settings.GetMayaAddress())
	sd.bridgeURLEntry.SetText(sd.settings.GetBridgeURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetCommandTimeoutSeconds()))
	sd.presetsEntry.SetText(formatPresetTiles(sd.settings.GetPresetTiles()))
	sd.autoConnectCheck.SetChecked(sd.settings.GetAutoConnect())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// validatePresets validates the comma-separated preset entry
func (sd *SettingsDialog) validatePresets(input string) error {
	_, err := parsePresetTiles(input)
	return err
}

// onImportPresets loads a preset library file into the preset entry
func (sd *SettingsDialog) onImportPresets() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		library, err := preset.Load(path)
		if err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		tiles, err := library.PresetTiles()
		if err != nil {
			dialog.ShowError(err, sd.window)
			return
		}

		sd.presetsEntry.SetText(formatPresetTiles(tiles))
		dialog.ShowInformation(sd.localization.GetText(KeyPresets), sd.localization.GetText(KeyPresetsImported), sd.window)
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter(PresetFileExtensions))
	fd.Show()
}

// onExportPresets saves the preset entry as a preset library file
func (sd *SettingsDialog) onExportPresets() {
	tiles, err := parsePresetTiles(sd.presetsEntry.Text)
	if err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()

		if err := preset.Save(path, sd.localization.GetText(KeyPresets), tiles); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		dialog.ShowInformation(sd.localization.GetText(KeyPresets), sd.localization.GetText(KeyPresetsExported), sd.window)
	}, sd.window)
	fd.SetFileName("udim-presets.yaml")
	fd.SetFilter(storage.NewExtensionFileFilter(PresetFileExtensions))
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save host mode
	if sd.hostModeSelect.Selected != "" {
		sd.settings.SetHostMode(config.HostMode(sd.hostModeSelect.Selected))
	}

	// Save addresses
	if sd.mayaAddressEntry.Text != "" {
		sd.settings.SetMayaAddress(sd.mayaAddressEntry.Text)
	}
	if sd.bridgeURLEntry.Text != "" {
		sd.settings.SetBridgeURL(sd.bridgeURLEntry.Text)
	}

	// Validate and save command timeout
	if timeout, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetCommandTimeoutSeconds(timeout)
	}

	// Validate and save presets
	if tiles, err := parsePresetTiles(sd.presetsEntry.Text); err == nil && len(tiles) > 0 {
		sd.settings.SetPresetTiles(tiles)
	}

	// Save auto-connect and language
	sd.settings.SetAutoConnect(sd.autoConnectCheck.Checked)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// parsePresetTiles parses a comma-separated list of tile numbers
func parsePresetTiles(input string) ([]udim.Tile, error) {
	var tiles []udim.Tile
	for _, field := range strings.Split(input, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		tile, err := udim.ParseTile(field)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}
	return tiles, nil
}

// formatPresetTiles renders tiles as a comma-separated list
func formatPresetTiles(tiles []udim.Tile) string {
	entries := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		entries = append(entries, tile.String())
	}
	return strings.Join(entries, ", ")
}
