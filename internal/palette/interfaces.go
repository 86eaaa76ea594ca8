package palette

import (
	"github.com/ytget/quickbar/internal/model"
)

// Matcher defines the interface the UI shell uses to drive the palette.
type Matcher interface {
	Register(name string, aliases []string, action model.Action) *model.Command
	Commands() []*model.Command
	MatchingCommands(query string) []*model.Command
	RankedMatches(query string) []model.Match
	BestMatch(query string) (*model.Command, bool)
	Execute(cmd *model.Command) bool
	ExecuteBestMatch(query string) bool
	ExecuteByID(id string) bool
}
