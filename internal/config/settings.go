package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/quickbar/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyMaxResults            = "palette_max_results"
	KeyLanguage              = "app_language"
	KeyFocusMinutes          = "focus_minutes"
	KeyBreakMinutes          = "break_minutes"
	KeyBrowser               = "browser"
	KeyNotifyOnTimerComplete = "notify_on_timer_complete"
)

// Default values
const (
	DefaultMaxResults            = 8
	DefaultLanguage              = "system"
	DefaultFocusMinutes          = 25
	DefaultBreakMinutes          = 5
	DefaultBrowser               = platform.BrowserChrome
	DefaultNotifyOnTimerComplete = true
)

// Bounds for numeric settings
const (
	MinMaxResults   = 1
	MaxMaxResults   = 50
	MinFocusMinutes = 1
	MaxFocusMinutes = 180
	MinBreakMinutes = 1
	MaxBreakMinutes = 60
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxResults returns how many palette rows are shown at most
func (s *Settings) GetMaxResults() int {
	value := s.app.Preferences().Int(KeyMaxResults)
	if value <= 0 {
		s.SetMaxResults(DefaultMaxResults)
		return DefaultMaxResults
	}
	return value
}

// SetMaxResults sets the palette row limit
func (s *Settings) SetMaxResults(count int) {
	s.app.Preferences().SetInt(KeyMaxResults, clamp(count, MinMaxResults, MaxMaxResults))
}

// GetFocusMinutes returns the focus timer length in minutes
func (s *Settings) GetFocusMinutes() int {
	value := s.app.Preferences().Int(KeyFocusMinutes)
	if value <= 0 {
		s.SetFocusMinutes(DefaultFocusMinutes)
		return DefaultFocusMinutes
	}
	return value
}

// SetFocusMinutes sets the focus timer length
func (s *Settings) SetFocusMinutes(minutes int) {
	s.app.Preferences().SetInt(KeyFocusMinutes, clamp(minutes, MinFocusMinutes, MaxFocusMinutes))
}

// GetBreakMinutes returns the break timer length in minutes
func (s *Settings) GetBreakMinutes() int {
	value := s.app.Preferences().Int(KeyBreakMinutes)
	if value <= 0 {
		s.SetBreakMinutes(DefaultBreakMinutes)
		return DefaultBreakMinutes
	}
	return value
}

// SetBreakMinutes sets the break timer length
func (s *Settings) SetBreakMinutes(minutes int) {
	s.app.Preferences().SetInt(KeyBreakMinutes, clamp(minutes, MinBreakMinutes, MaxBreakMinutes))
}

// GetBrowser returns the browser opened by the "new chrome window" command
func (s *Settings) GetBrowser() string {
	browser := s.app.Preferences().String(KeyBrowser)
	if browser == "" {
		s.SetBrowser(DefaultBrowser)
		return DefaultBrowser
	}
	return browser
}

// SetBrowser sets the browser, ignoring names the platform layer does not know
func (s *Settings) SetBrowser(browser string) {
	for _, known := range platform.SupportedBrowsers() {
		if browser == known {
			s.app.Preferences().SetString(KeyBrowser, browser)
			return
		}
	}
}

// GetBrowserOptions returns available browser options
func (s *Settings) GetBrowserOptions() []string {
	return platform.SupportedBrowsers()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetNotifyOnTimerComplete returns whether a system notification is sent when a timer ends
func (s *Settings) GetNotifyOnTimerComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifyOnTimerComplete, DefaultNotifyOnTimerComplete)
}

// SetNotifyOnTimerComplete sets whether to notify on timer completion
func (s *Settings) SetNotifyOnTimerComplete(notify bool) {
	s.app.Preferences().SetBool(KeyNotifyOnTimerComplete, notify)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
