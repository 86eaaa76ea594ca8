package ui

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/model"
	"github.com/ytget/quickbar/internal/palette"
	"github.com/ytget/quickbar/internal/timer"
)

func newTestRootUI(t *testing.T) (*RootUI, *palette.Registry, *timer.Service) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	t.Cleanup(window.Close)

	reg := palette.NewRegistry()
	timers := timer.NewService()
	ui := NewRootUI(window, app, reg, timers, config.NewSettings(app))
	return ui, reg, timers
}

func TestRootUI_TimerListFollowsService(t *testing.T) {
	ui, _, timers := newTestRootUI(t)

	if !ui.emptyLabel.Visible() {
		t.Error("Expected empty label with no timers")
	}

	task, err := timers.StartTimer("Focus", 25*time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer timers.StopAll()
	ui.refreshTimers()

	if len(ui.timers) != 1 || ui.timers[0].ID != task.ID {
		t.Fatalf("Expected the started timer in the list, got %d timers", len(ui.timers))
	}
	if ui.emptyLabel.Visible() {
		t.Error("Expected empty label hidden once a timer exists")
	}

	ui.onStopTimer(task.ID)
	if got, _ := timers.GetTask(task.ID); got.Status != model.TaskStatusStopped {
		t.Errorf("Expected timer stopped, got %s", got.Status)
	}
}

func TestRootUI_ShowPalette(t *testing.T) {
	ui, reg, _ := newTestRootUI(t)
	ran := 0
	reg.Register("quit", []string{"exit"}, model.ActionFunc(func() { ran++ }))

	ui.ShowPalette()
	if !ui.palette.Visible() {
		t.Fatal("Expected palette to be visible")
	}

	test.Type(ui.palette.entry, "exit")
	ui.palette.submit()
	if ran != 1 {
		t.Errorf("Expected command to run once, got %d", ran)
	}
}

func TestRootUI_HostMethodsDoNotPanic(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	ui.Notify("title", "content")
	ui.ShowError(errors.New("boom"))
	ui.onTimerComplete(&model.TimerTask{Label: "Focus"})
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	ui.onLanguageChange("pt")

	if ui.settings.GetLanguage() != "pt" {
		t.Errorf("Expected persisted language pt, got %s", ui.settings.GetLanguage())
	}
	if ui.paletteBtn.Text != IconPalette+" Paleta de Comandos" {
		t.Errorf("Expected translated button text, got %q", ui.paletteBtn.Text)
	}
}
