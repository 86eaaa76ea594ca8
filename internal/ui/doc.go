package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the command palette overlay, the timer panel, the tray menu and the
// settings dialog to the palette registry. All UI strings are localized via
// Localization.
