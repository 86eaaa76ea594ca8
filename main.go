package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/quickbar/internal/commands"
	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/palette"
	"github.com/ytget/quickbar/internal/timer"
	"github.com/ytget/quickbar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", ui.AppName, version)

	myApp := app.NewWithID(ui.AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", ui.AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	registry := palette.NewRegistry()
	timerSvc := timer.NewService()

	rootUI := ui.NewRootUI(myWindow, myApp, registry, timerSvc, settings)

	// Commands are registered once, before the first keystroke
	registered := commands.RegisterBuiltins(registry, commands.Deps{
		Host:        rootUI,
		Timers:      timerSvc,
		Preferences: settings,
	})
	fmt.Printf("Registered %d commands\n", len(registered))
	rootUI.RefreshTrayMenu()

	done := make(chan struct{})
	defer close(done)
	rootUI.StartTicker(done)

	myWindow.ShowAndRun()
}
