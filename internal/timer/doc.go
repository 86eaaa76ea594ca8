package timer

// Package timer runs the focus and break countdowns started from the palette.
// It owns timer lifecycle and pushes state changes to the UI through callbacks.
