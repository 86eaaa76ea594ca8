package model

import "strings"

// Action is the capability a command carries. The palette only ever invokes it.
type Action interface {
	Invoke()
}

// ActionFunc adapts an ordinary function to the Action interface
type ActionFunc func()

// Invoke calls f
func (f ActionFunc) Invoke() {
	f()
}

// Command represents a single user-invokable palette entry
type Command struct {
	ID      string   // opaque identifier assigned at registration
	Name    string   // display name
	Aliases []string // alternate match targets
	Action  Action   // owned by the registrant
}

// SearchableTerms returns the name followed by all aliases
func (c *Command) SearchableTerms() []string {
	terms := make([]string, 0, len(c.Aliases)+1)
	terms = append(terms, c.Name)
	terms = append(terms, c.Aliases...)
	return terms
}

// GetDisplayAliases returns aliases joined for a secondary label, or "" if none
func (c *Command) GetDisplayAliases() string {
	return strings.Join(c.Aliases, ", ")
}

// Match is a command paired with the score it earned for a query
type Match struct {
	Command *Command
	Score   int
}
