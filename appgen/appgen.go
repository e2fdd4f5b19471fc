package appgen

import (
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// ActionGenerator is the entry point every search algorithm calls
// instead of a ProblemRepository directly, so opts.SearchMode actually
// selects between the lifted and grounded enumeration strategies.
type ActionGenerator interface {
	Generate(state *packedstate.PackedState) problem.ActionIterator
}

// New selects LiftedGenerator or GroundedGenerator per opts.SearchMode.
func New(repo problem.ProblemRepository, opts config.Options) ActionGenerator {
	if opts.SearchMode == config.Grounded {
		return NewGroundedGenerator(repo)
	}
	return NewLiftedGenerator(repo)
}
