package commands

// Package commands registers the built-in palette commands. Each action is a
// thin closure over the host UI, the timer service or the platform layer.
