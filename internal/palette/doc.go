package palette

// Package palette implements the command registry behind the command palette:
// commands are registered once at startup and ranked against the live query
// on every keystroke with a leftmost-greedy fuzzy subsequence scorer.
