package axiom

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// GroundedEvaluator closes a packed state under a problem's axiom set
// using a body-atom trigger index built once at construction: instead of
// retesting every axiom on every pass, it only retests axioms whose body
// mentions an atom that was newly derived in the previous pass (a
// positive atom's head), tracked via a worklist. An axiom with any
// negative body atom is conservatively re-queued every round regardless
// of what changed, since this evaluator has no way to know when a
// not-yet-true atom becomes permanently excluded.
//
// If any axiom does not implement problem.ConditionedAxiom, no trigger
// index can be built and GroundedEvaluator falls back to the same
// exhaustive rescan LiftedEvaluator performs.
type GroundedEvaluator struct {
	repo                problem.ProblemRepository
	index               map[index.AtomIndex][]problem.GroundAxiom
	negativeConditioned []problem.GroundAxiom
	allAxioms           []problem.GroundAxiom
	resolved            bool
}

// NewGroundedEvaluator returns a GroundedEvaluator bound to repo's axiom
// set, building its trigger index immediately.
func NewGroundedEvaluator(repo problem.ProblemRepository) *GroundedEvaluator {
	it := repo.Axioms()
	var all []problem.GroundAxiom
	for it.Next() {
		all = append(all, it.Axiom())
	}

	idx := map[index.AtomIndex][]problem.GroundAxiom{}
	var negativeConditioned []problem.GroundAxiom
	resolved := true
	for _, ax := range all {
		ca, ok := ax.(problem.ConditionedAxiom)
		if !ok {
			resolved = false
			break
		}
		positive, negative := ca.Body()
		for _, a := range positive {
			idx[a] = append(idx[a], ax)
		}
		if len(negative) > 0 {
			negativeConditioned = append(negativeConditioned, ax)
		}
	}
	if !resolved {
		idx = nil
		negativeConditioned = nil
	}

	return &GroundedEvaluator{repo: repo, index: idx, negativeConditioned: negativeConditioned, allAxioms: all, resolved: resolved}
}

func (e *GroundedEvaluator) seed() map[index.AxiomIndex]problem.GroundAxiom {
	set := make(map[index.AxiomIndex]problem.GroundAxiom, len(e.negativeConditioned))
	for _, ax := range e.negativeConditioned {
		set[ax.Index()] = ax
	}
	return set
}

// Close applies every triggered ground axiom to state repeatedly until a
// full pass adds no new derived atom. It mutates state in place.
func (e *GroundedEvaluator) Close(state *packedstate.PackedState) {
	if !e.resolved {
		for {
			changed := false
			for _, ax := range e.allAxioms {
				if e.repo.ApplyAxiom(state, ax) {
					changed = true
				}
			}
			if !changed {
				return
			}
		}
	}

	triggered := e.seed()
	for _, a := range state.FluentAtoms {
		for _, ax := range e.index[a] {
			triggered[ax.Index()] = ax
		}
	}
	for _, a := range state.DerivedAtoms {
		for _, ax := range e.index[a] {
			triggered[ax.Index()] = ax
		}
	}

	for len(triggered) > 0 {
		changed := false
		next := e.seed()
		for _, ax := range triggered {
			if e.repo.ApplyAxiom(state, ax) {
				changed = true
				for _, watcher := range e.index[ax.Head()] {
					next[watcher.Index()] = watcher
				}
			}
		}
		if !changed {
			return
		}
		triggered = next
	}
}
