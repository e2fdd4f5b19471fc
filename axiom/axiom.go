package axiom

import (
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// Evaluator closes a packed state under a problem's axiom set, deriving
// every derived atom reachable from the state's current fluent and
// derived atoms.
type Evaluator interface {
	Close(state *packedstate.PackedState)
}

// New selects LiftedEvaluator or GroundedEvaluator per opts.SearchMode.
func New(repo problem.ProblemRepository, opts config.Options) Evaluator {
	if opts.SearchMode == config.Grounded {
		return NewGroundedEvaluator(repo)
	}
	return NewLiftedEvaluator(repo)
}
