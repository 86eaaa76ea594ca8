package platform

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Browser names accepted in settings
const (
	BrowserChrome   = "chrome"
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserDefault  = "default"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
)

// Command parameters
const (
	MacOSNewInstanceFlag = "-na"
	MacOSArgsFlag        = "--args"
	WindowsCmdFlag       = "/c"
	NewWindowFlag        = "--new-window"
	FirefoxNewWindowFlag = "-new-window"
	BlankPage            = "about:blank"
)

// macOS application bundle names
var macOSApps = map[string]string{
	BrowserChrome:   "Google Chrome",
	BrowserChromium: "Chromium",
	BrowserFirefox:  "Firefox",
}

// Linux executables, tried in order
var linuxExecutables = map[string][]string{
	BrowserChrome:   {"google-chrome", "google-chrome-stable"},
	BrowserChromium: {"chromium", "chromium-browser"},
	BrowserFirefox:  {"firefox"},
}

// Windows executables resolved through "start"
var windowsExecutables = map[string]string{
	BrowserChrome:   "chrome",
	BrowserChromium: "chromium",
	BrowserFirefox:  "firefox",
}

// lookPath is replaced in tests
var lookPath = exec.LookPath

// BrowserCommand returns the process invocation that opens a new window of browser on goos
func BrowserCommand(goos, browser string) (string, []string, error) {
	if browser == "" {
		browser = BrowserChrome
	}

	if browser == BrowserDefault {
		switch goos {
		case OSDarwin:
			return OpenCommand, []string{BlankPage}, nil
		case OSWindows:
			return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", BlankPage}, nil
		case OSLinux:
			return XDGOpenCommand, []string{BlankPage}, nil
		default:
			return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
		}
	}

	flag := NewWindowFlag
	if browser == BrowserFirefox {
		flag = FirefoxNewWindowFlag
	}

	switch goos {
	case OSDarwin: // macOS
		app, ok := macOSApps[browser]
		if !ok {
			return "", nil, fmt.Errorf("unsupported browser: %s", browser)
		}
		return OpenCommand, []string{MacOSNewInstanceFlag, app, MacOSArgsFlag, flag}, nil
	case OSWindows:
		exe, ok := windowsExecutables[browser]
		if !ok {
			return "", nil, fmt.Errorf("unsupported browser: %s", browser)
		}
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", exe, flag}, nil
	case OSLinux:
		candidates, ok := linuxExecutables[browser]
		if !ok {
			return "", nil, fmt.Errorf("unsupported browser: %s", browser)
		}
		for _, exe := range candidates {
			if _, err := lookPath(exe); err == nil {
				return exe, []string{flag}, nil
			}
		}
		return "", nil, fmt.Errorf("no %s executable found in PATH", browser)
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenBrowserWindow opens a new window of the configured browser without waiting for it to exit
func OpenBrowserWindow(browser string) error {
	name, args, err := BrowserCommand(runtime.GOOS, browser)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	// Reap the child so it does not linger as a zombie
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Browser process %s exited: %v", name, err)
		}
	}()

	return nil
}

// SupportedBrowsers returns the browser names accepted by BrowserCommand
func SupportedBrowsers() []string {
	return []string{BrowserChrome, BrowserChromium, BrowserFirefox, BrowserDefault}
}
