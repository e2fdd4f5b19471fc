package appgen

import (
	"github.com/simonstahlberg/mimir-go/axiom"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// RelaxedReachability is the fixed-point result of exploring a problem's
// delete-relaxed reachable set: every fluent and derived atom, and every
// action, that can possibly become true/applicable from the initial
// state if deletes are ignored. Actions is a safe superset of every
// ground action real (non-relaxed) search could ever generate, since
// dropping deletes can only grow the set of states an action is
// applicable in; appgen's grounded generator uses it as the action
// universe its match tree is built over.
type RelaxedReachability struct {
	FluentAtoms  []index.AtomIndex
	DerivedAtoms []index.AtomIndex
	Actions      []problem.GroundAction
}

// DeleteRelaxedProblemExplorator computes RelaxedReachability without
// requiring a delete-free twin of the problem: it repeatedly applies
// every currently-applicable action to a monotonically growing atom
// union (never removing an atom once added), axiom-closes the result,
// and stops when a full pass adds nothing. Since ApplyEffects's deletes
// can only shrink a PackedState and this explorator only ever grows its
// working set by union, the accumulated set after convergence is exactly
// the set reachable when deletes are ignored.
type DeleteRelaxedProblemExplorator struct {
	repo problem.ProblemRepository
	ax   axiom.Evaluator
}

// NewDeleteRelaxedProblemExplorator binds an explorator to repo. It
// always closes axioms with axiom.LiftedEvaluator regardless of the
// caller's configured config.SearchMode: this runs once, at generator
// construction time, over a relaxed problem already discarding deletes,
// so GroundedEvaluator's incremental trigger index buys nothing here.
func NewDeleteRelaxedProblemExplorator(repo problem.ProblemRepository) *DeleteRelaxedProblemExplorator {
	return &DeleteRelaxedProblemExplorator{repo: repo, ax: axiom.NewLiftedEvaluator(repo)}
}

// Explore runs the fixed-point loop to convergence.
func (d *DeleteRelaxedProblemExplorator) Explore() RelaxedReachability {
	fluentAtoms, numeric := d.repo.InitialState()
	relaxed := packedstate.NewPackedState()
	relaxed.SetFluentAtoms(append([]index.AtomIndex(nil), fluentAtoms...))
	relaxed.Numeric = numeric
	d.ax.Close(&relaxed)

	reachedActions := make(map[index.ActionIndex]problem.GroundAction)

	for {
		grew := false
		it := d.repo.ApplicableActions(&relaxed)
		for it.Next() {
			ga := it.Action()
			if _, seen := reachedActions[ga.Index()]; !seen {
				reachedActions[ga.Index()] = ga
				grew = true
			}
			succ := d.repo.ApplyEffects(&relaxed, ga)
			if unionInto(&relaxed, &succ) {
				grew = true
			}
		}
		if !grew {
			break
		}
		d.ax.Close(&relaxed)
	}

	actions := make([]problem.GroundAction, 0, len(reachedActions))
	for _, ga := range reachedActions {
		actions = append(actions, ga)
	}
	return RelaxedReachability{
		FluentAtoms:  relaxed.FluentAtoms,
		DerivedAtoms: relaxed.DerivedAtoms,
		Actions:      actions,
	}
}

// unionInto merges succ's fluent and derived atoms into dst, reporting
// whether dst grew.
func unionInto(dst, succ *packedstate.PackedState) bool {
	before := len(dst.FluentAtoms) + len(dst.DerivedAtoms)
	dst.SetFluentAtoms(append(append([]index.AtomIndex(nil), dst.FluentAtoms...), succ.FluentAtoms...))
	dst.SetDerivedAtoms(append(append([]index.AtomIndex(nil), dst.DerivedAtoms...), succ.DerivedAtoms...))
	after := len(dst.FluentAtoms) + len(dst.DerivedAtoms)
	return after > before
}
