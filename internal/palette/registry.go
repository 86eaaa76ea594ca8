package palette

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/quickbar/internal/model"
)

// CommandIDPrefix prefixes every generated command ID
const CommandIDPrefix = "cmd-"

// Registry holds palette commands in registration order
type Registry struct {
	commands      []*model.Command
	commandsMutex sync.RWMutex
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make([]*model.Command, 0),
	}
}

// Register appends a command and returns it with a freshly assigned ID.
// Duplicate names are allowed.
func (r *Registry) Register(name string, aliases []string, action model.Action) *model.Command {
	cmd := &model.Command{
		ID:      generateCommandID(),
		Name:    name,
		Aliases: append([]string(nil), aliases...),
		Action:  action,
	}

	r.commandsMutex.Lock()
	r.commands = append(r.commands, cmd)
	r.commandsMutex.Unlock()

	return cmd
}

// Commands returns a snapshot of all commands in registration order
func (r *Registry) Commands() []*model.Command {
	r.commandsMutex.RLock()
	defer r.commandsMutex.RUnlock()

	out := make([]*model.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// RankedMatches scores every command against query, most relevant first.
// An empty query returns all commands in registration order with zero scores.
func (r *Registry) RankedMatches(query string) []model.Match {
	commands := r.Commands()
	normalized := Normalize(query)

	if normalized == "" {
		matches := make([]model.Match, len(commands))
		for i, cmd := range commands {
			matches[i] = model.Match{Command: cmd}
		}
		return matches
	}

	matches := make([]model.Match, 0, len(commands))
	for _, cmd := range commands {
		score, ok := bestTermScore(normalized, cmd.SearchableTerms())
		if !ok || score <= 0 {
			continue
		}
		matches = append(matches, model.Match{Command: cmd, Score: score})
	}

	// Stable so identical names keep registration order
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Command.Name < matches[j].Command.Name
	})

	return matches
}

// MatchingCommands returns the commands matching query, most relevant first
func (r *Registry) MatchingCommands(query string) []*model.Command {
	matches := r.RankedMatches(query)

	commands := make([]*model.Command, len(matches))
	for i, m := range matches {
		commands[i] = m.Command
	}
	return commands
}

// BestMatch returns the single highest ranked command for query
func (r *Registry) BestMatch(query string) (*model.Command, bool) {
	if Normalize(query) == "" {
		return nil, false
	}

	matches := r.RankedMatches(query)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0].Command, true
}

// Execute invokes the command's action once. It reports false when there is nothing to run.
func (r *Registry) Execute(cmd *model.Command) bool {
	if cmd == nil || cmd.Action == nil {
		return false
	}

	log.Printf("Executing command %q (%s)", cmd.Name, cmd.ID)
	cmd.Action.Invoke()
	return true
}

// ExecuteBestMatch resolves query to its best match and executes it
func (r *Registry) ExecuteBestMatch(query string) bool {
	cmd, ok := r.BestMatch(query)
	if !ok {
		log.Printf("No command matches %q", query)
		return false
	}
	return r.Execute(cmd)
}

// ExecuteByID executes the command registered under id
func (r *Registry) ExecuteByID(id string) bool {
	r.commandsMutex.RLock()
	var found *model.Command
	for _, cmd := range r.commands {
		if cmd.ID == id {
			found = cmd
			break
		}
	}
	r.commandsMutex.RUnlock()

	return r.Execute(found)
}

// generateCommandID generates a unique command ID using UUID v7
func generateCommandID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(CommandIDPrefix+"%d", time.Now().UnixNano())
	}
	return CommandIDPrefix + id.String()
}
