package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/model"
	"github.com/ytget/quickbar/internal/palette"
	"github.com/ytget/quickbar/internal/timer"
)

// PaletteShortcut opens the command palette (Cmd+K on macOS, Ctrl+K elsewhere)
var PaletteShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyK, Modifier: fyne.KeyModifierShortcutDefault}

// RootUI represents the main menu-bar window
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	registry     palette.Matcher
	timerSvc     timer.Timers
	settings     *config.Settings
	localization *Localization

	palette    *Palette
	paletteBtn *widget.Button
	timerList  *widget.List
	emptyLabel *widget.Label
	timers     []*model.TimerTask
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry palette.Matcher, timerSvc timer.Timers, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		registry:     registry,
		timerSvc:     timerSvc,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.timerSvc.SetUpdateCallback(ui.onTimerUpdate)
	ui.timerSvc.SetCompletionCallback(ui.onTimerComplete)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.palette = NewPalette(ui.window, ui.registry, ui.settings.GetMaxResults, ui.localization)

	ui.paletteBtn = widget.NewButton(IconPalette+" "+ui.localization.GetText(KeyCommandPalette), ui.ShowPalette)
	ui.paletteBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.ShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, settingsBtn, ui.paletteBtn)

	ui.timerList = widget.NewList(
		func() int { return len(ui.timers) },
		func() fyne.CanvasObject {
			row := NewTimerRow(ui.localization)
			row.SetOnStop(ui.onStopTimer)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.timers) {
				return
			}
			obj.(*TimerRow).UpdateTask(ui.timers[id])
		},
	)

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoTimers))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Wrapping = fyne.TextWrapWord

	header := widget.NewLabel(ui.localization.GetText(KeyTimers))
	header.TextStyle = fyne.TextStyle{Bold: true}

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator(), header),
		nil,
		nil,
		nil,
		container.NewStack(ui.emptyLabel, ui.timerList),
	)
	ui.window.SetContent(content)

	ui.window.Canvas().AddShortcut(PaletteShortcut, func(fyne.Shortcut) {
		ui.ShowPalette()
	})

	ui.createMenu()
	ui.refreshTimers()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the window menu and, on desktop, the system tray menu
func (ui *RootUI) createMenu() {
	paletteItem := fyne.NewMenuItem(ui.localization.GetText(KeyCommandPalette), ui.ShowPalette)
	paletteItem.Shortcut = PaletteShortcut
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.ShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), paletteItem, settingsItem),
		languageMenu,
	))

	ui.RefreshTrayMenu()
}

// RefreshTrayMenu rebuilds the tray menu from the registered commands
func (ui *RootUI) RefreshTrayMenu() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		return
	}

	items := []*fyne.MenuItem{
		fyne.NewMenuItem(ui.localization.GetText(KeyCommandPalette), func() {
			ui.window.Show()
			ui.ShowPalette()
		}),
		fyne.NewMenuItemSeparator(),
	}
	for _, cmd := range ui.registry.Commands() {
		id := cmd.ID // Capture for closure
		items = append(items, fyne.NewMenuItem(cmd.Name, func() {
			ui.registry.ExecuteByID(id)
		}))
	}

	desk.SetSystemTrayMenu(fyne.NewMenu(AppName, items...))
	// Keep running in the tray when the window is closed
	ui.window.SetCloseIntercept(ui.window.Hide)
}

// StartTicker refreshes remaining times once per interval until done is closed
func (ui *RootUI) StartTicker(done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(TimerRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(ui.timerList.Refresh)
			case <-done:
				return
			}
		}
	}()
}

// ShowPalette opens the command palette overlay
func (ui *RootUI) ShowPalette() {
	ui.palette.Show()
}

// Notify sends a system notification
func (ui *RootUI) Notify(title, content string) {
	ui.app.SendNotification(fyne.NewNotification(title, content))
}

// ShowSettings shows the settings dialog
func (ui *RootUI) ShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// ShowError shows err in a dialog
func (ui *RootUI) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, ui.window)
	})
}

// Quit stops the application
func (ui *RootUI) Quit() {
	ui.app.Quit()
}

// onSettingsSaved applies settings that affect the UI immediately
func (ui *RootUI) onSettingsSaved() {
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.paletteBtn.SetText(IconPalette + " " + ui.localization.GetText(KeyCommandPalette))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoTimers))
	ui.palette.entry.SetPlaceHolder(ui.localization.GetText(KeyPalettePlaceholder))
	ui.timerList.Refresh()
}

// onStopTimer handles the stop button of a timer row
func (ui *RootUI) onStopTimer(taskID string) {
	if err := ui.timerSvc.StopTimer(taskID); err != nil {
		log.Printf("Failed to stop timer %s: %v", taskID, err)
	}
}

// onTimerUpdate is called by the timer service, possibly off the UI goroutine
func (ui *RootUI) onTimerUpdate(*model.TimerTask) {
	fyne.Do(ui.refreshTimers)
}

// onTimerComplete notifies the user when a countdown ends
func (ui *RootUI) onTimerComplete(task *model.TimerTask) {
	if !ui.settings.GetNotifyOnTimerComplete() {
		return
	}
	ui.Notify(ui.localization.GetText(KeyTimerCompleted), task.GetDisplayTitle())
}

// refreshTimers reloads the timer list from the service
func (ui *RootUI) refreshTimers() {
	ui.timers = ui.timerSvc.GetAllTasks()
	if len(ui.timers) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.timerList.Refresh()
}
