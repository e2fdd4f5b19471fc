package appgen

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// conditionedAction pairs a ground action with the precondition atoms it
// exposes through problem.ConditionedAction, positive and negative.
type conditionedAction struct {
	action   problem.GroundAction
	positive []index.AtomIndex
	negative []index.AtomIndex
}

// conditionUniverse resolves every action in actions against
// problem.ConditionedAction. It returns ok == false, dropping the
// partial result, the moment any single action fails to implement the
// optional interface: a generator built over a partially-conditioned
// universe could silently miss actions that do implement it but were
// excluded from a match tree or join test built over the others, so a
// mixed universe always falls back to the repository's own
// ApplicableActions for every action instead of a subset.
func conditionUniverse(actions []problem.GroundAction) ([]conditionedAction, bool) {
	out := make([]conditionedAction, 0, len(actions))
	for _, a := range actions {
		ca, ok := a.(problem.ConditionedAction)
		if !ok {
			return nil, false
		}
		positive, negative := ca.Preconditions()
		out = append(out, conditionedAction{action: a, positive: positive, negative: negative})
	}
	return out, true
}

// satisfies reports whether state meets c's precondition: every positive
// atom holds (as a fluent or derived atom) and every negative atom does
// not.
func (c conditionedAction) satisfies(state *packedstate.PackedState) bool {
	for _, a := range c.positive {
		if !state.HasFluentAtom(a) && !state.HasDerivedAtom(a) {
			return false
		}
	}
	for _, a := range c.negative {
		if state.HasFluentAtom(a) || state.HasDerivedAtom(a) {
			return false
		}
	}
	return true
}
