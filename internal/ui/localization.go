package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyReset           = "reset"
	KeyMoveUp          = "move_up"
	KeyMoveDown        = "move_down"
	KeyMoveLeft        = "move_left"
	KeyMoveRight       = "move_right"
	KeyJumpTo          = "jump_to"
	KeyPresets         = "presets"
	KeyHistory         = "history"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyFile            = "file"
	KeyConnect         = "connect"
	KeyDisconnect      = "disconnect"
	KeyConnected       = "connected"
	KeyDisconnected    = "disconnected"
	KeyHostMode        = "host_mode"
	KeyMayaAddress     = "maya_address"
	KeyBridgeURL       = "bridge_url"
	KeyCommandTimeout  = "command_timeout"
	KeyPresetTiles     = "preset_tiles"
	KeyImportPresets   = "import_presets"
	KeyExportPresets   = "export_presets"
	KeyAutoConnect     = "auto_connect"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyNoSelection     = "no_selection"
	KeyConnectFailed   = "connect_failed"
	KeyInvalidTile     = "invalid_tile"
	KeyPresetsImported = "presets_imported"
	KeyPresetsExported = "presets_exported"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "UDIM Mover",
		KeyReset:           "Reset UVs to UDIM 1001",
		KeyMoveUp:          "Move Up",
		KeyMoveDown:        "Move Down",
		KeyMoveLeft:        "Move Left",
		KeyMoveRight:       "Move Right",
		KeyJumpTo:          "Move to UDIM",
		KeyPresets:         "Presets",
		KeyHistory:         "History",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyFile:            "File",
		KeyConnect:         "Connect",
		KeyDisconnect:      "Disconnect",
		KeyConnected:       "Connected",
		KeyDisconnected:    "Not connected",
		KeyHostMode:        "Host",
		KeyMayaAddress:     "Maya command port",
		KeyBridgeURL:       "Bridge URL",
		KeyCommandTimeout:  "Command timeout (seconds)",
		KeyPresetTiles:     "Preset tiles (comma separated)",
		KeyImportPresets:   "Import presets…",
		KeyExportPresets:   "Export presets…",
		KeyAutoConnect:     "Connect on launch",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyNoSelection:     "No UV components selected",
		KeyConnectFailed:   "Failed to connect",
		KeyInvalidTile:     "Invalid UDIM tile",
		KeyPresetsImported: "Presets imported",
		KeyPresetsExported: "Presets exported",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "UDIM Mover",
		KeyReset:           "Сбросить UV на UDIM 1001",
		KeyMoveUp:          "Вверх",
		KeyMoveDown:        "Вниз",
		KeyMoveLeft:        "Влево",
		KeyMoveRight:       "Вправо",
		KeyJumpTo:          "Переместить на UDIM",
		KeyPresets:         "Пресеты",
		KeyHistory:         "История",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyFile:            "Файл",
		KeyConnect:         "Подключить",
		KeyDisconnect:      "Отключить",
		KeyConnected:       "Подключено",
		KeyDisconnected:    "Нет подключения",
		KeyHostMode:        "Хост",
		KeyMayaAddress:     "Командный порт Maya",
		KeyBridgeURL:       "URL моста",
		KeyCommandTimeout:  "Таймаут команды (сек)",
		KeyPresetTiles:     "Пресеты тайлов (через запятую)",
		KeyImportPresets:   "Импорт пресетов…",
		KeyExportPresets:   "Экспорт пресетов…",
		KeyAutoConnect:     "Подключаться при запуске",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyNoSelection:     "Не выбраны UV компоненты",
		KeyConnectFailed:   "Не удалось подключиться",
		KeyInvalidTile:     "Неверный UDIM тайл",
		KeyPresetsImported: "Пресеты импортированы",
		KeyPresetsExported: "Пресеты экспортированы",
	}
}
