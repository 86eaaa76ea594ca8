package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyCommandPalette     = "command_palette"
	KeyPalettePlaceholder = "palette_placeholder"
	KeyNoMatch            = "no_match"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyMaxResults         = "max_results"
	KeyFocusMinutes       = "focus_minutes"
	KeyBreakMinutes       = "break_minutes"
	KeyBrowser            = "browser"
	KeyNotifyOnComplete   = "notify_on_complete"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyTimers             = "timers"
	KeyNoTimers           = "no_timers"
	KeyStop               = "stop"
	KeyTimerCompleted     = "timer_completed"
	KeyQuit               = "quit"
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
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "QuickBar",
		KeyCommandPalette:     "Command Palette",
		KeyPalettePlaceholder: "Type a command…",
		KeyNoMatch:            "No matching command",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyMaxResults:         "Palette Rows",
		KeyFocusMinutes:       "Focus Minutes",
		KeyBreakMinutes:       "Break Minutes",
		KeyBrowser:            "Browser",
		KeyNotifyOnComplete:   "Notify when a timer ends",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyTimers:             "Timers",
		KeyNoTimers:           "No timers. Press Ctrl+K and type \"focus\".",
		KeyStop:               "Stop",
		KeyTimerCompleted:     "Timer finished",
		KeyQuit:               "Quit",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "QuickBar",
		KeyCommandPalette:     "Палитра команд",
		KeyPalettePlaceholder: "Введите команду…",
		KeyNoMatch:            "Команда не найдена",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyMaxResults:         "Строк в палитре",
		KeyFocusMinutes:       "Минут фокуса",
		KeyBreakMinutes:       "Минут перерыва",
		KeyBrowser:            "Браузер",
		KeyNotifyOnComplete:   "Уведомлять об окончании таймера",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyTimers:             "Таймеры",
		KeyNoTimers:           "Таймеров нет. Нажмите Ctrl+K и введите \"focus\".",
		KeyStop:               "Стоп",
		KeyTimerCompleted:     "Таймер завершён",
		KeyQuit:               "Выход",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "QuickBar",
		KeyCommandPalette:     "Paleta de Comandos",
		KeyPalettePlaceholder: "Digite um comando…",
		KeyNoMatch:            "Nenhum comando encontrado",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyMaxResults:         "Linhas da Paleta",
		KeyFocusMinutes:       "Minutos de Foco",
		KeyBreakMinutes:       "Minutos de Pausa",
		KeyBrowser:            "Navegador",
		KeyNotifyOnComplete:   "Notificar quando o timer terminar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyTimers:             "Timers",
		KeyNoTimers:           "Nenhum timer. Pressione Ctrl+K e digite \"focus\".",
		KeyStop:               "Parar",
		KeyTimerCompleted:     "Timer concluído",
		KeyQuit:               "Sair",
	}
}
