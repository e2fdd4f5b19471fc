package axiom

import (
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// LiftedEvaluator closes a packed state under a problem's axiom set by
// exhaustively retesting every ground axiom on every pass, the
// lifted/exhaustive strategy: it never inspects an axiom's body atoms,
// so it is the only evaluator that works against any ProblemRepository
// regardless of whether its axioms implement problem.ConditionedAxiom.
type LiftedEvaluator struct {
	repo problem.ProblemRepository
}

// NewLiftedEvaluator returns a LiftedEvaluator bound to repo's axiom set.
func NewLiftedEvaluator(repo problem.ProblemRepository) *LiftedEvaluator {
	return &LiftedEvaluator{repo: repo}
}

// Close applies every ground axiom to state repeatedly until a full pass
// adds no new derived atom. It mutates state in place; the loop
// terminates because axioms can only add derived atoms, never remove
// them, and the derived universe is finite.
func (e *LiftedEvaluator) Close(state *packedstate.PackedState) {
	for {
		changed := false
		it := e.repo.Axioms()
		for it.Next() {
			if e.repo.ApplyAxiom(state, it.Axiom()) {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}
