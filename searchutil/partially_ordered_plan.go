package searchutil

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// CausalLink records that step Consumer's action relies on atom Atom
// having been made true by step Producer (Producer is -1 when Atom held
// in the initial state already).
type CausalLink struct {
	Producer int
	Consumer int
	Atom     index.AtomIndex
}

// PartiallyOrderedPlan relaxes a totally-ordered plan's step sequence
// into the weaker ordering its causal structure actually requires: step
// i must precede step j only when j's action reads an atom that i's
// action (or the initial state) is the most recent producer of at the
// point j executes. Two steps with no causal link between them, direct
// or transitive, may be reordered or executed in parallel without
// affecting plan validity.
//
// An action that does not implement problem.ConditionedAction exposes no
// precondition atoms to link against, so every step before it is
// conservatively treated as a predecessor.
type PartiallyOrderedPlan struct {
	Steps    []PlanStep
	Links    []CausalLink
	precedes [][]bool
}

// NewPartiallyOrderedPlan derives the causal structure of steps by
// replaying actions through repo.ApplyEffects starting from initial,
// tracking for every atom which step (or -1 for the initial state) most
// recently produced it. actions[i] must be the GroundAction executed at
// steps[i]; the two slices must be the same length and in the same
// order a search algorithm actually applied them in.
func NewPartiallyOrderedPlan(repo problem.ProblemRepository, initial []index.AtomIndex, actions []problem.GroundAction, steps []PlanStep) *PartiallyOrderedPlan {
	n := len(steps)
	precedes := make([][]bool, n)
	for i := range precedes {
		precedes[i] = make([]bool, n)
	}

	lastProducer := map[index.AtomIndex]int{}
	for _, a := range initial {
		lastProducer[a] = -1
	}

	cur := packedstate.NewPackedState()
	cur.SetFluentAtoms(append([]index.AtomIndex(nil), initial...))

	var links []CausalLink
	for i, act := range actions {
		if ca, ok := act.(problem.ConditionedAction); ok {
			positive, _ := ca.Preconditions()
			for _, atom := range positive {
				producer, known := lastProducer[atom]
				if !known {
					continue
				}
				links = append(links, CausalLink{Producer: producer, Consumer: i, Atom: atom})
				if producer >= 0 {
					markTransitivePrecedence(precedes, producer, i)
				}
			}
		} else {
			for j := 0; j < i; j++ {
				precedes[j][i] = true
			}
		}

		after := repo.ApplyEffects(&cur, act)
		for _, atom := range after.FluentAtoms {
			if !cur.HasFluentAtom(atom) {
				lastProducer[atom] = i
			}
		}
		cur = after
	}

	return &PartiallyOrderedPlan{Steps: steps, Links: links, precedes: precedes}
}

// markTransitivePrecedence records that producer precedes consumer, and
// that everything already known to precede producer also precedes
// consumer, keeping precedes transitively closed as links accumulate in
// execution order.
func markTransitivePrecedence(precedes [][]bool, producer, consumer int) {
	precedes[producer][consumer] = true
	for k := range precedes {
		if precedes[k][producer] {
			precedes[k][consumer] = true
		}
	}
}

// MustPrecede reports whether step i must execute before step j in
// every valid linearization of the plan.
func (p *PartiallyOrderedPlan) MustPrecede(i, j int) bool {
	return p.precedes[i][j]
}
