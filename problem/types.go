package problem

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
)

// Literal is a ground atom together with its polarity, used for goal
// conditions and for reporting static-initial positive atoms.
type Literal struct {
	Atom     index.AtomIndex
	Positive bool
}

// CountUnsatisfied reports how many literals of a list fail to hold in a
// packed state; SIW's dynamic-goal strategy compares this count across
// subproblems.
func CountUnsatisfied(goal []Literal, state *packedstate.PackedState) int {
	unsatisfied := 0
	for _, lit := range goal {
		holds := state.HasFluentAtom(lit.Atom) || state.HasDerivedAtom(lit.Atom)
		if holds != lit.Positive {
			unsatisfied++
		}
	}
	return unsatisfied
}

// GroundAction is a schema with all parameters substituted: it carries a
// stable ActionIndex, an action cost, and opaque precondition/effect data
// interpreted only by the owning ProblemRepository. The search substrate
// treats it as an opaque handle passed back into ApplyEffects.
type GroundAction interface {
	Index() index.ActionIndex
	Cost() float64
	Name() string
}

// GroundAxiom is a derivation rule whose head is a derived predicate and
// whose body is a conjunctive condition over fluent and derived atoms.
type GroundAxiom interface {
	Index() index.AxiomIndex
	Head() index.AtomIndex
}

// ConditionedAction is the optional extension a GroundAction may also
// implement to expose the ground atoms its precondition tests, positive
// and negative. appgen's lifted and grounded generators both type-assert
// for it: an action whose repository exposes this builds a real
// precondition index; one that does not falls back to the repository's
// own opaque ApplicableActions filtering for that action.
type ConditionedAction interface {
	GroundAction
	Preconditions() (positive, negative []index.AtomIndex)
}

// ConditionedAxiom is the optional extension a GroundAxiom may also
// implement to expose the ground atoms its body tests, positive and
// negative. axiom's grounded evaluator type-asserts for it to build a
// body-atom trigger index; an axiom whose repository does not implement
// it is always retested on every pass, as the lifted evaluator does.
type ConditionedAxiom interface {
	GroundAxiom
	Body() (positive, negative []index.AtomIndex)
}

// ActionIterator yields each applicable ground action for a state exactly
// once; it is single-pass and valid only until the next StateRepository
// mutation.
type ActionIterator interface {
	// Next advances the iterator, returning false when exhausted.
	Next() bool
	// Action returns the action produced by the most recent Next call.
	Action() GroundAction
}

// AxiomIterator yields every ground axiom in the problem's axiom set, in
// an order suitable for fixed-point closure.
type AxiomIterator interface {
	Next() bool
	Axiom() GroundAxiom
}

// ProblemRepository is the formalism-layer collaborator the search
// substrate consumes: enumeration of ground actions applicable to a
// state, enumeration of ground axioms, a static-initial predicate check,
// a goal-literal list, and numeric effect/metric evaluation. PDDL parsing
// and grounding strategy are entirely the concern of implementations;
// the substrate never inspects predicates, types, or object names.
type ProblemRepository interface {
	packedstate.Owner

	// ApplicableActions returns a fresh, single-pass iterator over the
	// ground actions applicable in state.
	ApplicableActions(state *packedstate.PackedState) ActionIterator

	// Axioms returns a fresh iterator over every ground axiom.
	Axioms() AxiomIterator

	// InitialState returns the problem's initial positive fluent atoms and
	// initial numeric-variable assignments, before axiom closure.
	InitialState() (fluentAtoms []index.AtomIndex, numeric []float64)

	// ApplyEffects applies action's conjunctive and conditional effects to
	// a copy of state, returning the (not yet axiom-closed, not yet
	// interned) result. It never mutates state.
	ApplyEffects(state *packedstate.PackedState, action GroundAction) packedstate.PackedState

	// ApplyAxiom applies a single ground axiom's derivation to state,
	// returning true if it added a new derived atom (used to detect
	// fixed-point termination during axiom closure).
	ApplyAxiom(state *packedstate.PackedState, axiom GroundAxiom) bool

	// EvaluateMetric evaluates the problem's cost/metric function on
	// state. A NaN result must be surfaced by callers as MetricIsNaN.
	EvaluateMetric(state *packedstate.PackedState) float64

	// GoalLiterals returns the problem's (non-quantified, ground) goal
	// literal list.
	GoalLiterals() []Literal

	// StaticGoalHolds reports whether the problem's statically-known
	// (type/arity-derivable) portion of the goal can possibly be
	// satisfied, independent of any particular state. BrFS and A* use
	// this for the unsolvable short-circuit.
	StaticGoalHolds() bool

	// NumFluentAtoms and NumDerivedAtoms size the novelty subsystem's
	// atom universes.
	NumFluentAtoms() int
	NumDerivedAtoms() int

	// ActionCost reports the cost of edge (u, a, v) used to recover the
	// minimum-cost arc when replaying a plan.
	ActionCost(action GroundAction) float64
}

// Heuristic exposes the evaluation and (optional) preferred-action
// capability consumed by A*/GBFS. Implementations are supplied by callers,
// not by this module.
type Heuristic interface {
	// Evaluate returns the heuristic estimate h(state); +Inf marks state
	// as a proven dead end.
	Evaluate(state *packedstate.PackedState) float64
}

// PreferringHeuristic is the optional extension a Heuristic may also
// implement to support GBFS-lazy's "preferred" open-list buckets.
type PreferringHeuristic interface {
	Heuristic
	PreferredActions(state *packedstate.PackedState) map[index.ActionIndex]struct{}
}

// GraphVertex is one vertex of a LabelledGraph submitted to a
// CanonicalGraphOracle: an object vertex or an atom vertex, colored by
// role and predicate/type identity.
type GraphVertex struct {
	Color int
}

// GraphEdge is a directed, argument-position-labelled edge of a
// LabelledGraph.
type GraphEdge struct {
	From, To int
	Label    int
}

// LabelledGraph is the colored directed graph the canonical-form adapter
// builds from a state and submits to the oracle.
type LabelledGraph struct {
	Vertices []GraphVertex
	Edges    []GraphEdge
}

// CanonicalGraphOracle is the Nauty-equivalent collaborator: it takes a
// labelled directed graph and returns a byte-sequence certificate equal
// for isomorphic graphs. The oracle has no query methods besides
// Canonize; the read-before-Canonize guard (ErrCanonizeBeforeQuery) lives
// in canonical.ObjectGraph.Certificate.
type CanonicalGraphOracle interface {
	Canonize(g LabelledGraph) ([]byte, error)
}

// ObjectGraphDescriptor is the optional collaborator a caller supplies to
// the canonical-form adapter: the static typing and argument structure an
// object graph needs to turn a state into a colored graph. It is kept
// separate from ProblemRepository so the search substrate itself never
// depends on predicate or type identity.
type ObjectGraphDescriptor interface {
	// NumObjects returns the number of typed objects in the problem.
	NumObjects() int

	// ObjectColor returns a color identifying object o's declared type.
	ObjectColor(o index.ObjectIndex) int

	// AtomArguments returns the object arguments filling atom's parameter
	// positions, in order. Valid for any atom in [0, NumFluentAtoms()+
	// NumDerivedAtoms()) as well as for every atom returned by StaticAtoms.
	AtomArguments(atom index.AtomIndex) []index.ObjectIndex

	// AtomPredicateColor returns a color identifying atom's predicate,
	// independent of the arguments filling it or its truth value.
	AtomPredicateColor(atom index.AtomIndex) int

	// StaticAtoms returns every ground atom whose truth value never
	// changes during search, consumed by static-SCC pruning.
	StaticAtoms() []index.AtomIndex

	// NumFluentAtoms and NumDerivedAtoms size the dynamic-atom universe,
	// matching ProblemRepository's own counts.
	NumFluentAtoms() int
	NumDerivedAtoms() int
}
