package appgen

import (
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// LiftedGenerator re-derives applicability on every query instead of
// consulting a precomputed index: its action universe is the
// delete-relaxed reachable set computed once at construction by
// DeleteRelaxedProblemExplorator, and each Generate call walks that
// whole universe testing one action's precondition atoms against state
// at a time, short-circuiting on the first unmet literal. This mirrors
// the real generator's iterative-join binding search, narrowed to
// ground atoms: this module's problem.ProblemRepository boundary never
// exposes predicate or parameter structure, so there is no variable
// binding to join over, only a conjunction of already-ground atoms.
//
// If any action in the universe does not implement
// problem.ConditionedAction, LiftedGenerator cannot test it apart from
// the repository's own applicability check and falls back to
// delegating every query to repo.ApplicableActions.
type LiftedGenerator struct {
	repo     problem.ProblemRepository
	universe []conditionedAction
	resolved bool
}

// NewLiftedGenerator builds a LiftedGenerator over repo's delete-relaxed
// reachable action set.
func NewLiftedGenerator(repo problem.ProblemRepository) *LiftedGenerator {
	universe, resolved := conditionUniverse(NewDeleteRelaxedProblemExplorator(repo).Explore().Actions)
	return &LiftedGenerator{repo: repo, universe: universe, resolved: resolved}
}

// Generate returns a fresh iterator over the actions applicable in state.
func (g *LiftedGenerator) Generate(state *packedstate.PackedState) problem.ActionIterator {
	if !g.resolved {
		return g.repo.ApplicableActions(state)
	}
	var matches []problem.GroundAction
	for _, c := range g.universe {
		if c.satisfies(state) {
			matches = append(matches, c.action)
		}
	}
	return &sliceActionIterator{actions: matches}
}
