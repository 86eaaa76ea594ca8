package platform

// Package platform wraps the few OS-specific process launches the palette
// commands need, such as opening a new browser window, behind plain functions.
