package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 380
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	maxResultsEntry   *widget.Entry
	focusMinutesEntry *widget.Entry
	breakMinutesEntry *widget.Entry
	browserSelect     *widget.Select
	languageSelect    *widget.Select
	notifyCheck       *widget.Check
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
	sd.maxResultsEntry = widget.NewEntry()
	sd.maxResultsEntry.SetPlaceHolder(strconv.Itoa(config.MinMaxResults) + "-" + strconv.Itoa(config.MaxMaxResults))

	sd.focusMinutesEntry = widget.NewEntry()
	sd.focusMinutesEntry.SetPlaceHolder(strconv.Itoa(config.DefaultFocusMinutes))

	sd.breakMinutesEntry = widget.NewEntry()
	sd.breakMinutesEntry.SetPlaceHolder(strconv.Itoa(config.DefaultBreakMinutes))

	sd.browserSelect = widget.NewSelect(sd.settings.GetBrowserOptions(), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.notifyCheck = widget.NewCheck(sd.localization.GetText(KeyNotifyOnComplete), nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyMaxResults), sd.maxResultsEntry),
		widget.NewFormItem(sd.localization.GetText(KeyFocusMinutes), sd.focusMinutesEntry),
		widget.NewFormItem(sd.localization.GetText(KeyBreakMinutes), sd.breakMinutesEntry),
		widget.NewFormItem(sd.localization.GetText(KeyBrowser), sd.browserSelect),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVBox(form, sd.notifyCheck),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.maxResultsEntry.SetText(strconv.Itoa(sd.settings.GetMaxResults()))
	sd.focusMinutesEntry.SetText(strconv.Itoa(sd.settings.GetFocusMinutes()))
	sd.breakMinutesEntry.SetText(strconv.Itoa(sd.settings.GetBreakMinutes()))
	sd.browserSelect.SetSelected(sd.settings.GetBrowser())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.notifyCheck.SetChecked(sd.settings.GetNotifyOnTimerComplete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Invalid numbers keep the previous value; setters clamp the rest
	if n, err := strconv.Atoi(sd.maxResultsEntry.Text); err == nil {
		sd.settings.SetMaxResults(n)
	}
	if n, err := strconv.Atoi(sd.focusMinutesEntry.Text); err == nil {
		sd.settings.SetFocusMinutes(n)
	}
	if n, err := strconv.Atoi(sd.breakMinutesEntry.Text); err == nil {
		sd.settings.SetBreakMinutes(n)
	}

	if sd.browserSelect.Selected != "" {
		sd.settings.SetBrowser(sd.browserSelect.Selected)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetNotifyOnTimerComplete(sd.notifyCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
