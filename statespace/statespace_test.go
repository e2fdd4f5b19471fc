package statespace

import (
	"testing"

	"github.com/simonstahlberg/mimir-go/canonical"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// spoilAction, unlike chainAction, can also be a sink: spoilAction
// replaces the entire atom set with a single marker atom no other
// action's precondition ever mentions, modelling a genuine dead end.
type spoilAction struct {
	idx      index.ActionIndex
	requires index.AtomIndex
	produces index.AtomIndex
	spoil    bool
}

func (a spoilAction) Index() index.ActionIndex { return a.idx }
func (a spoilAction) Cost() float64            { return 1 }
func (a spoilAction) Name() string             { return "spoil-chain" }
func (a spoilAction) Preconditions() (positive, negative []index.AtomIndex) {
	return []index.AtomIndex{a.requires}, nil
}

type spoilActionIter struct {
	actions []spoilAction
	pos     int
}

func (it *spoilActionIter) Next() bool {
	if it.pos >= len(it.actions) {
		return false
	}
	it.pos++
	return true
}
func (it *spoilActionIter) Action() problem.GroundAction { return it.actions[it.pos-1] }

// spoilRepo: 0 -a0-> 1 -a1-> 2 (goal), with aSpoil reachable from any
// state holding atom0 and collapsing it to a one-atom sink state {99}
// from which nothing is ever applicable again.
type spoilRepo struct {
	actions []spoilAction
}

func (spoilRepo) ProblemName() string { return "spoil-chain" }

func (r spoilRepo) ApplicableActions(s *packedstate.PackedState) problem.ActionIterator {
	var applicable []spoilAction
	for _, a := range r.actions {
		if s.HasFluentAtom(a.requires) {
			applicable = append(applicable, a)
		}
	}
	return &spoilActionIter{actions: applicable}
}
func (spoilRepo) Axioms() problem.AxiomIterator { return emptyAxiomIter{} }
func (spoilRepo) InitialState() ([]index.AtomIndex, []float64) {
	return []index.AtomIndex{0}, nil
}
func (spoilRepo) ApplyEffects(s *packedstate.PackedState, action problem.GroundAction) packedstate.PackedState {
	a := action.(spoilAction)
	out := s.Clone()
	if a.spoil {
		out.SetFluentAtoms([]index.AtomIndex{a.produces})
		return out
	}
	out.SetFluentAtoms(append(append([]index.AtomIndex(nil), out.FluentAtoms...), a.produces))
	return out
}
func (spoilRepo) ApplyAxiom(*packedstate.PackedState, problem.GroundAxiom) bool { return false }
func (spoilRepo) EvaluateMetric(*packedstate.PackedState) float64              { return 0 }
func (spoilRepo) GoalLiterals() []problem.Literal {
	return []problem.Literal{{Atom: 2, Positive: true}}
}
func (spoilRepo) StaticGoalHolds() bool                   { return true }
func (spoilRepo) NumFluentAtoms() int                     { return 100 }
func (spoilRepo) NumDerivedAtoms() int                    { return 0 }
func (spoilRepo) ActionCost(problem.GroundAction) float64 { return 1 }

type emptyAxiomIter struct{}

func (emptyAxiomIter) Next() bool                { return false }
func (emptyAxiomIter) Axiom() problem.GroundAxiom { return nil }

func newSpoilRepo() spoilRepo {
	return spoilRepo{actions: []spoilAction{
		{idx: 0, requires: 0, produces: 1},
		{idx: 1, requires: 1, produces: 2},
		{idx: 2, requires: 0, produces: 99, spoil: true},
	}}
}

func TestBuildMarksDeadEndAsUnsolvableAndComputesDistances(t *testing.T) {
	repo := newSpoilRepo()
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)

	ss, status, err := Build(repo, states, goal, nil, config.Default())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if status != Completed {
		t.Fatalf("status = %v, want Completed", status)
	}
	if ss.NumVertices() != 4 {
		t.Fatalf("NumVertices() = %d, want 4 (initial, mid, goal, dead-end)", ss.NumVertices())
	}

	var deadEnds, goals int
	var deadEndDist int
	var initDist int
	for v := 0; v < ss.NumVertices(); v++ {
		vx := ss.Vertex(index.VertexIndex(v))
		if vx.IsUnsolvable {
			deadEnds++
			deadEndDist = vx.UnitGoalDistance
		}
		if vx.IsGoal {
			goals++
			if vx.UnitGoalDistance != 0 {
				t.Fatalf("goal vertex UnitGoalDistance = %d, want 0", vx.UnitGoalDistance)
			}
		}
		if vx.IsInitial {
			initDist = vx.UnitGoalDistance
		}
	}
	if deadEnds != 1 {
		t.Fatalf("deadEnds = %d, want 1", deadEnds)
	}
	if deadEndDist != -1 {
		t.Fatalf("dead-end UnitGoalDistance = %d, want -1", deadEndDist)
	}
	if goals != 1 {
		t.Fatalf("goals = %d, want 1", goals)
	}
	if initDist != 2 {
		t.Fatalf("initial UnitGoalDistance = %d, want 2 (0 -a0-> 1 -a1-> goal)", initDist)
	}
}

func TestBuildRemoveIfUnsolvableCompactsTheGraph(t *testing.T) {
	repo := newSpoilRepo()
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	opts := config.Default()
	opts.RemoveIfUnsolvable = true

	ss, status, err := Build(repo, states, goal, nil, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if status != Completed {
		t.Fatalf("status = %v, want Completed", status)
	}
	if ss.NumVertices() != 3 {
		t.Fatalf("NumVertices() = %d, want 3 after removing the dead end", ss.NumVertices())
	}
	for v := 0; v < ss.NumVertices(); v++ {
		if ss.Vertex(index.VertexIndex(v)).IsUnsolvable {
			t.Fatalf("vertex %d still marked unsolvable after compaction", v)
		}
	}
}

// coarseDescriptor colors every atom identically regardless of identity,
// so the certificate degenerates to "how many atoms are true" — enough
// to exercise the builder's merge-on-certificate-collision path without
// needing a real graph-isomorphism oracle (canonical's own tests cover
// that).
type coarseDescriptor struct{}

func (coarseDescriptor) NumObjects() int                                   { return 0 }
func (coarseDescriptor) ObjectColor(index.ObjectIndex) int                 { return 0 }
func (coarseDescriptor) AtomArguments(index.AtomIndex) []index.ObjectIndex { return nil }
func (coarseDescriptor) AtomPredicateColor(index.AtomIndex) int            { return 0 }
func (coarseDescriptor) StaticAtoms() []index.AtomIndex                    { return nil }
func (coarseDescriptor) NumFluentAtoms() int                               { return 100 }
func (coarseDescriptor) NumDerivedAtoms() int                              { return 0 }

type identityOracle struct{}

func (identityOracle) Canonize(g problem.LabelledGraph) ([]byte, error) {
	return []byte{byte(len(g.Vertices))}, nil
}

func TestBuildSymmetryPruningMergesSameCertificateStates(t *testing.T) {
	repo := newSpoilRepo()
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	objGraph, err := canonical.New(coarseDescriptor{}, identityOracle{}, repo.GoalLiterals(), false, 16)
	if err != nil {
		t.Fatalf("canonical.New: %v", err)
	}
	opts := config.Default()
	opts.SymmetryPruning = true

	ss, status, err := Build(repo, states, goal, objGraph, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if status != Completed {
		t.Fatalf("status = %v, want Completed", status)
	}
	// {0} (initial) and {99} (spoiled) both have exactly one atom, so
	// they share a certificate and fold into a single vertex; {0,1} and
	// {0,1,2} remain distinct, for 3 vertices total instead of 4.
	if ss.NumVertices() != 3 {
		t.Fatalf("NumVertices() = %d, want 3 under symmetry pruning", ss.NumVertices())
	}
}
