package appgen

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// matchNode is one decision node of a grounded applicable-action match
// tree: actions lists every candidate already fully matched along the
// path leading here, regardless of how the remaining atom tests go.
// A leaf has both branches nil.
type matchNode struct {
	atom    index.AtomIndex
	onTrue  *matchNode
	onFalse *matchNode
	actions []problem.GroundAction
}

func (n *matchNode) collect(state *packedstate.PackedState, out *[]problem.GroundAction) {
	if n == nil {
		return
	}
	*out = append(*out, n.actions...)
	if n.onTrue == nil && n.onFalse == nil {
		return
	}
	if state.HasFluentAtom(n.atom) || state.HasDerivedAtom(n.atom) {
		n.onTrue.collect(state, out)
	} else {
		n.onFalse.collect(state, out)
	}
}

// removeAtom returns candidates minus the first occurrence of atom,
// reporting whether it was found.
func removeAtom(atoms []index.AtomIndex, atom index.AtomIndex) ([]index.AtomIndex, bool) {
	for i, a := range atoms {
		if a == atom {
			out := make([]index.AtomIndex, 0, len(atoms)-1)
			out = append(out, atoms[:i]...)
			out = append(out, atoms[i+1:]...)
			return out, true
		}
	}
	return atoms, false
}

// buildMatchTree recursively partitions candidates by one precondition
// atom at a time: a candidate requiring the atom true/false descends
// into the matching branch with that atom consumed; a candidate
// indifferent to the atom (it doesn't mention it at all) is duplicated
// into both branches unchanged, since its remaining test still has to
// happen somewhere along either path. The split atom at each level is
// simply the first pending literal of the first not-yet-fully-matched
// candidate, a naive but correct pivot choice: it does not minimize tree
// size or duplication the way a frequency-ranked pivot would.
func buildMatchTree(candidates []conditionedAction) *matchNode {
	var matched []problem.GroundAction
	var rest []conditionedAction
	for _, c := range candidates {
		if len(c.positive) == 0 && len(c.negative) == 0 {
			matched = append(matched, c.action)
		} else {
			rest = append(rest, c)
		}
	}
	if len(rest) == 0 {
		return &matchNode{actions: matched}
	}

	var splitAtom index.AtomIndex
	switch {
	case len(rest[0].positive) > 0:
		splitAtom = rest[0].positive[0]
	default:
		splitAtom = rest[0].negative[0]
	}

	var trueCands, falseCands []conditionedAction
	for _, c := range rest {
		if pos, found := removeAtom(c.positive, splitAtom); found {
			trueCands = append(trueCands, conditionedAction{action: c.action, positive: pos, negative: c.negative})
			continue
		}
		if neg, found := removeAtom(c.negative, splitAtom); found {
			falseCands = append(falseCands, conditionedAction{action: c.action, positive: c.positive, negative: neg})
			continue
		}
		trueCands = append(trueCands, c)
		falseCands = append(falseCands, c)
	}

	return &matchNode{
		atom:    splitAtom,
		actions: matched,
		onTrue:  buildMatchTree(trueCands),
		onFalse: buildMatchTree(falseCands),
	}
}

// GroundedGenerator precomputes all ground actions up front (the
// delete-relaxed reachable set, via DeleteRelaxedProblemExplorator) and
// walks a match tree built over their precondition atoms at query time,
// trading construction cost for an amortized lookup that only tests the
// atoms needed to discriminate the surviving candidates instead of every
// action's full precondition on every query.
//
// If any action in the universe does not implement
// problem.ConditionedAction, no tree can be built and GroundedGenerator
// falls back to delegating every query to repo.ApplicableActions.
type GroundedGenerator struct {
	repo problem.ProblemRepository
	tree *matchNode
}

// NewGroundedGenerator builds a GroundedGenerator over repo's
// delete-relaxed reachable action set.
func NewGroundedGenerator(repo problem.ProblemRepository) *GroundedGenerator {
	universe, resolved := conditionUniverse(NewDeleteRelaxedProblemExplorator(repo).Explore().Actions)
	g := &GroundedGenerator{repo: repo}
	if resolved {
		g.tree = buildMatchTree(universe)
	}
	return g
}

// Generate returns a fresh iterator over the actions applicable in state.
func (g *GroundedGenerator) Generate(state *packedstate.PackedState) problem.ActionIterator {
	if g.tree == nil {
		return g.repo.ApplicableActions(state)
	}
	var matches []problem.GroundAction
	g.tree.collect(state, &matches)
	return &sliceActionIterator{actions: matches}
}
