package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Application identity
const (
	AppID   = "com.ytget.quickbar"
	AppName = "QuickBar"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPalette  = "⌘"
	IconStop     = "■"
	IconTimer    = "⏱"
	IconSelected = "›"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 360

	PaletteWidth     float32 = 380
	PaletteRowHeight float32 = 36
	PaletteTopOffset float32 = 40

	StatusLabelWidth    float32 = 84
	RemainingLabelWidth float32 = 72
)

// Refresh behavior
const (
	TimerRefreshInterval = time.Second
)
