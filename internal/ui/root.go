package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/udimtools/udim-mover/internal/config"
	"github.com/udimtools/udim-mover/internal/host"
	"github.com/udimtools/udim-mover/internal/model"
	"github.com/udimtools/udim-mover/internal/mover"
	"github.com/udimtools/udim-mover/internal/udim"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	moverSvc     mover.Mover
	settings     *config.Settings
	localization *Localization

	resetBtn    *widget.Button
	upBtn       *widget.Button
	downBtn     *widget.Button
	leftBtn     *widget.Button
	rightBtn    *widget.Button
	jumpEntry   *widget.Entry
	jumpBtn     *widget.Button
	connectBtn  *widget.Button
	presetBar   *fyne.Container
	presetLabel *widget.Label
	statusLabel *widget.Label
	hostLabel   *widget.Label
	historyList *widget.List

	// Session history shown newest-first
	historyMutex sync.Mutex
	history      []*model.Move

	connected bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, moverSvc mover.Mover) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		moverSvc:     moverSvc,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for move updates
	ui.moverSvc.SetUpdateCallback(ui.onMoveUpdate)

	ui.setupUI()

	if settings.GetAutoConnect() && settings.GetHostMode() != config.HostModeOffline {
		go ui.connectHost()
	} else {
		// Offline and manual modes start usable immediately
		ui.setConnected(ui.settings.GetHostMode() == config.HostModeOffline)
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Reset button on top, matching the classic layout
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyReset), ui.onResetClick)

	// Arrow pad: blank / up / blank, left / down / right
	ui.upBtn = widget.NewButton(IconUp+" "+ui.localization.GetText(KeyMoveUp), func() { ui.onNudgeClick(udim.DirectionUp) })
	ui.downBtn = widget.NewButton(IconDown+" "+ui.localization.GetText(KeyMoveDown), func() { ui.onNudgeClick(udim.DirectionDown) })
	ui.leftBtn = widget.NewButton(IconLeft+" "+ui.localization.GetText(KeyMoveLeft), func() { ui.onNudgeClick(udim.DirectionLeft) })
	ui.rightBtn = widget.NewButton(IconRight+" "+ui.localization.GetText(KeyMoveRight), func() { ui.onNudgeClick(udim.DirectionRight) })

	arrowPad := container.NewGridWithColumns(3,
		widget.NewLabel(""), ui.upBtn, widget.NewLabel(""),
		ui.leftBtn, ui.downBtn, ui.rightBtn,
	)

	// Preset jump buttons
	ui.presetLabel = widget.NewLabel(ui.localization.GetText(KeyPresets))
	ui.presetBar = container.NewHBox()
	ui.rebuildPresetBar()

	// Free-form jump to any tile number
	ui.jumpEntry = widget.NewEntry()
	ui.jumpEntry.SetPlaceHolder("1001")
	ui.jumpEntry.OnSubmitted = func(string) { ui.onJumpSubmit() }
	ui.jumpBtn = widget.NewButton(ui.localization.GetText(KeyJumpTo), ui.onJumpSubmit)
	jumpRow := container.NewBorder(nil, nil, nil, ui.jumpBtn, ui.jumpEntry)

	// Connection status row
	ui.connectBtn = widget.NewButton(ui.localization.GetText(KeyConnect), ui.onConnectClick)
	ui.hostLabel = widget.NewLabel(ui.localization.GetText(KeyDisconnected))
	ui.hostLabel.Truncation = fyne.TextTruncateEllipsis
	statusRow := container.NewBorder(nil, nil, nil, ui.connectBtn, ui.hostLabel)

	// Last operation outcome
	ui.statusLabel = widget.NewLabel(DashPlaceholder)
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	// Move history list
	ui.historyList = widget.NewList(
		func() int {
			ui.historyMutex.Lock()
			defer ui.historyMutex.Unlock()
			return len(ui.history)
		},
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)

	top := container.NewVBox(
		ui.resetBtn,
		widget.NewSeparator(),
		arrowPad,
		widget.NewSeparator(),
		ui.presetLabel,
		ui.presetBar,
		jumpRow,
		widget.NewSeparator(),
		statusRow,
		ui.statusLabel,
		widget.NewLabel(ui.localization.GetText(KeyHistory)),
	)

	content := container.NewBorder(
		top,            // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		ui.historyList, // center - session history
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// rebuildPresetBar recreates the preset jump buttons from settings
func (ui *RootUI) rebuildPresetBar() {
	ui.presetBar.RemoveAll()
	for _, tile := range ui.settings.GetPresetTiles() {
		target := tile // Capture for closure
		btn := widget.NewButton(target.String(), func() { ui.onJumpClick(target) })
		ui.presetBar.Add(btn)
	}
	ui.presetBar.Refresh()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
	ui.upBtn.SetText(IconUp + " " + ui.localization.GetText(KeyMoveUp))
	ui.downBtn.SetText(IconDown + " " + ui.localization.GetText(KeyMoveDown))
	ui.leftBtn.SetText(IconLeft + " " + ui.localization.GetText(KeyMoveLeft))
	ui.rightBtn.SetText(IconRight + " " + ui.localization.GetText(KeyMoveRight))
	ui.presetLabel.SetText(ui.localization.GetText(KeyPresets))
	ui.jumpBtn.SetText(ui.localization.GetText(KeyJumpTo))
	ui.refreshConnectionRow()

	ui.historyList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// Settings changed: rebuild the host binding and preset bar
		ui.applySettings()
	})
	sd.Show()
}

// applySettings rebuilds the host binding and dependent widgets after a
// settings change.
func (ui *RootUI) applySettings() {
	if old := ui.moverSvc.Host(); old != nil {
		_ = old.Close()
	}
	ui.moverSvc.SetHost(ui.settings.NewHostBinding())
	ui.setConnected(ui.settings.GetHostMode() == config.HostModeOffline)
	ui.rebuildPresetBar()
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// onConnectClick toggles the host connection
func (ui *RootUI) onConnectClick() {
	if ui.connected && ui.settings.GetHostMode() != config.HostModeOffline {
		ui.disconnectHost()
		return
	}
	go ui.connectHost()
}

// connectHost connects the current binding and updates the status row
func (ui *RootUI) connectHost() {
	h := ui.moverSvc.Host()
	timeout := time.Duration(ui.settings.GetCommandTimeoutSeconds()) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.Connect(ctx); err != nil {
		log.Printf("Host connect failed: %v", err)
		fyne.Do(func() {
			ui.setConnected(false)
			ui.statusLabel.SetText(ui.localization.GetText(KeyConnectFailed) + ": " + err.Error())
		})
		return
	}

	fyne.Do(func() {
		ui.setConnected(true)
		ui.statusLabel.SetText(DashPlaceholder)
	})
}

// disconnectHost closes the current binding
func (ui *RootUI) disconnectHost() {
	if err := ui.moverSvc.Host().Close(); err != nil {
		log.Printf("Host close failed: %v", err)
	}
	ui.setConnected(false)
}

// setConnected updates the connection state and the status row
func (ui *RootUI) setConnected(connected bool) {
	ui.connected = connected
	ui.refreshConnectionRow()
}

// refreshConnectionRow renders the host description and connect button
func (ui *RootUI) refreshConnectionRow() {
	if ui.connected {
		ui.hostLabel.SetText(ui.localization.GetText(KeyConnected) + MiddleDotSeparator + ui.moverSvc.Host().Describe())
		ui.connectBtn.SetText(ui.localization.GetText(KeyDisconnect))
	} else {
		ui.hostLabel.SetText(ui.localization.GetText(KeyDisconnected))
		ui.connectBtn.SetText(ui.localization.GetText(KeyConnect))
	}
}

// onResetClick handles the reset button
func (ui *RootUI) onResetClick() {
	ui.runMove(func(ctx context.Context) (*model.Move, error) {
		return ui.moverSvc.ResetToOrigin(ctx)
	})
}

// onNudgeClick handles the four arrow buttons
func (ui *RootUI) onNudgeClick(dir udim.Direction) {
	ui.runMove(func(ctx context.Context) (*model.Move, error) {
		return ui.moverSvc.Nudge(ctx, dir)
	})
}

// onJumpSubmit handles the free-form tile entry
func (ui *RootUI) onJumpSubmit() {
	text := strings.TrimSpace(ui.jumpEntry.Text)
	tile, err := udim.ParseTile(text)
	if err != nil {
		ui.statusLabel.SetText(IconError + " " + ui.localization.GetText(KeyInvalidTile) + ": " + text)
		return
	}
	ui.onJumpClick(tile)
}

// onJumpClick handles preset jump buttons
func (ui *RootUI) onJumpClick(tile udim.Tile) {
	ui.runMove(func(ctx context.Context) (*model.Move, error) {
		return ui.moverSvc.JumpTo(ctx, tile)
	})
}

// runMove executes one move off the UI thread with the configured timeout
func (ui *RootUI) runMove(op func(context.Context) (*model.Move, error)) {
	timeout := time.Duration(ui.settings.GetCommandTimeoutSeconds()) * time.Second

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if _, err := op(ctx); err != nil {
			log.Printf("Move failed: %v", err)
		}
	}()
}

// onMoveUpdate handles move updates from the service
func (ui *RootUI) onMoveUpdate(move *model.Move) {
	ui.historyMutex.Lock()
	found := false
	for i, existing := range ui.history {
		if existing.ID == move.ID {
			ui.history[i] = move
			found = true
			break
		}
	}
	if !found {
		// Newest first
		ui.history = append([]*model.Move{move}, ui.history...)
	}
	ui.historyMutex.Unlock()

	fyne.Do(func() {
		ui.statusLabel.SetText(ui.describeMove(move))
		ui.historyList.Refresh()
	})
}

// describeMove renders a move outcome for the status label
func (ui *RootUI) describeMove(move *model.Move) string {
	switch move.Status {
	case model.MoveStatusFailed:
		if errors.Is(errorFromMove(move), host.ErrNoSelection) {
			return IconError + " " + ui.localization.GetText(KeyNoSelection)
		}
		return IconError + " " + move.LastError
	case model.MoveStatusApplied:
		return IconOK + " " + move.GetDisplayLabel() + MiddleDotSeparator + move.GetDetailText()
	default:
		return move.GetDisplayLabel() + "…"
	}
}

// errorFromMove reconstructs the sentinel for known failure messages
func errorFromMove(move *model.Move) error {
	if move.LastError == host.ErrNoSelection.Error() {
		return host.ErrNoSelection
	}
	return errors.New(move.LastError)
}

// createHistoryItem creates a new history row widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	status := widget.NewLabel(DashPlaceholder)
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	detail := widget.NewLabel("")
	detail.Truncation = fyne.TextTruncateEllipsis
	return container.NewBorder(nil, nil, status, detail, label)
}

// updateHistoryItem updates a history row with current data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.historyMutex.Lock()
	if id >= len(ui.history) {
		ui.historyMutex.Unlock()
		return
	}
	move := ui.history[id]
	ui.historyMutex.Unlock()

	row, ok := item.(*fyne.Container)
	if !ok || len(row.Objects) != 3 {
		return
	}

	// NewBorder stores the center object first, then the edges
	label := row.Objects[0].(*widget.Label)
	status := row.Objects[1].(*widget.Label)
	detail := row.Objects[2].(*widget.Label)

	switch move.Status {
	case model.MoveStatusApplied:
		status.SetText(IconOK)
	case model.MoveStatusFailed:
		status.SetText(IconError)
	default:
		status.SetText(DashPlaceholder)
	}
	label.SetText(move.GetDisplayLabel())
	detail.SetText(fmt.Sprintf("%s%s%s", move.IssuedAt.Format("15:04:05"), MiddleDotSeparator, move.GetDetailText()))
}
