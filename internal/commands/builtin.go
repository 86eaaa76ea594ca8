package commands

import (
	"log"
	"time"

	"github.com/ytget/quickbar/internal/model"
	"github.com/ytget/quickbar/internal/palette"
	"github.com/ytget/quickbar/internal/platform"
	"github.com/ytget/quickbar/internal/timer"
)

// Timer labels
const (
	FocusLabel = "Focus"
	BreakLabel = "Break"
)

// Host is implemented by the UI shell that owns the window and the app
type Host interface {
	Notify(title, content string)
	ShowSettings()
	ShowError(err error)
	Quit()
}

// Preferences supplies the user-tunable values the built-ins read at invoke time
type Preferences interface {
	GetFocusMinutes() int
	GetBreakMinutes() int
	GetBrowser() string
}

// Definition describes a built-in command before registration
type Definition struct {
	Name    string
	Aliases []string
	Action  model.Action
}

// Deps bundles what the built-in actions need
type Deps struct {
	Host        Host
	Timers      timer.Timers
	Preferences Preferences
	// OpenBrowser defaults to platform.OpenBrowserWindow
	OpenBrowser func(browser string) error
}

// Builtins returns the built-in command definitions in palette order
func Builtins(deps Deps) []Definition {
	openBrowser := deps.OpenBrowser
	if openBrowser == nil {
		openBrowser = platform.OpenBrowserWindow
	}

	return []Definition{
		{
			Name:    "show notification",
			Aliases: []string{"show notif", "notification"},
			Action: model.ActionFunc(func() {
				deps.Host.Notify("QuickBar", "Hello from the command palette")
			}),
		},
		{
			Name:    "new chrome window",
			Aliases: []string{"chrome", "open chrome"},
			Action: model.ActionFunc(func() {
				if err := openBrowser(deps.Preferences.GetBrowser()); err != nil {
					log.Printf("Failed to open browser window: %v", err)
					deps.Host.ShowError(err)
				}
			}),
		},
		{
			Name:    "start focus timer",
			Aliases: []string{"focus", "pomodoro"},
			Action:  startTimer(deps, FocusLabel, deps.Preferences.GetFocusMinutes),
		},
		{
			Name:    "start break timer",
			Aliases: []string{"break", "short break"},
			Action:  startTimer(deps, BreakLabel, deps.Preferences.GetBreakMinutes),
		},
		{
			Name:    "stop timers",
			Aliases: []string{"stop timer", "cancel timers"},
			Action: model.ActionFunc(func() {
				stopped := deps.Timers.StopAll()
				log.Printf("Stopped %d timer(s)", stopped)
			}),
		},
		{
			Name:    "open settings",
			Aliases: []string{"settings", "preferences"},
			Action:  model.ActionFunc(deps.Host.ShowSettings),
		},
		{
			Name:    "quit",
			Aliases: []string{"exit", "close app"},
			Action:  model.ActionFunc(deps.Host.Quit),
		},
	}
}

// RegisterBuiltins registers every built-in command on reg, in order
func RegisterBuiltins(reg palette.Matcher, deps Deps) []*model.Command {
	defs := Builtins(deps)
	registered := make([]*model.Command, 0, len(defs))
	for _, def := range defs {
		registered = append(registered, reg.Register(def.Name, def.Aliases, def.Action))
	}
	return registered
}

// startTimer builds an action that starts a timer whose length is read when invoked
func startTimer(deps Deps, label string, minutes func() int) model.Action {
	return model.ActionFunc(func() {
		if _, err := deps.Timers.StartTimer(label, time.Duration(minutes())*time.Minute); err != nil {
			log.Printf("Failed to start %s timer: %v", label, err)
			deps.Host.ShowError(err)
		}
	})
}
