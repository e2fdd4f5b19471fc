package iw

import (
	"testing"

	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/eventhandler"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

type chainAction struct {
	idx      index.ActionIndex
	requires index.AtomIndex
	produces index.AtomIndex
}

func (a chainAction) Index() index.ActionIndex { return a.idx }
func (a chainAction) Cost() float64            { return 1 }
func (a chainAction) Name() string             { return "unlock" }
func (a chainAction) Preconditions() (positive, negative []index.AtomIndex) {
	return []index.AtomIndex{a.requires}, nil
}

type chainActionIter struct {
	actions []chainAction
	pos     int
}

func (it *chainActionIter) Next() bool {
	if it.pos >= len(it.actions) {
		return false
	}
	it.pos++
	return true
}
func (it *chainActionIter) Action() problem.GroundAction { return it.actions[it.pos-1] }

type emptyAxiomIter struct{}

func (emptyAxiomIter) Next() bool                { return false }
func (emptyAxiomIter) Axiom() problem.GroundAxiom { return nil }

type chainRepo struct {
	actions  []chainAction
	goalAtom index.AtomIndex
}

func (chainRepo) ProblemName() string { return "chain" }

func (r chainRepo) ApplicableActions(s *packedstate.PackedState) problem.ActionIterator {
	var applicable []chainAction
	for _, a := range r.actions {
		if s.HasFluentAtom(a.requires) {
			applicable = append(applicable, a)
		}
	}
	return &chainActionIter{actions: applicable}
}
func (chainRepo) Axioms() problem.AxiomIterator { return emptyAxiomIter{} }
func (chainRepo) InitialState() ([]index.AtomIndex, []float64) {
	return []index.AtomIndex{0}, nil
}
func (chainRepo) ApplyEffects(s *packedstate.PackedState, action problem.GroundAction) packedstate.PackedState {
	a := action.(chainAction)
	out := s.Clone()
	out.SetFluentAtoms(append(append([]index.AtomIndex(nil), out.FluentAtoms...), a.produces))
	return out
}
func (chainRepo) ApplyAxiom(*packedstate.PackedState, problem.GroundAxiom) bool { return false }
func (chainRepo) EvaluateMetric(*packedstate.PackedState) float64              { return 0 }
func (r chainRepo) GoalLiterals() []problem.Literal {
	return []problem.Literal{{Atom: r.goalAtom, Positive: true}}
}
func (chainRepo) StaticGoalHolds() bool                   { return true }
func (chainRepo) NumFluentAtoms() int                     { return 20 }
func (chainRepo) NumDerivedAtoms() int                    { return 0 }
func (chainRepo) ActionCost(problem.GroundAction) float64 { return 1 }

func newChainRepo(length int) chainRepo {
	var actions []chainAction
	for i := 0; i < length; i++ {
		actions = append(actions, chainAction{idx: index.ActionIndex(i), requires: index.AtomIndex(i), produces: index.AtomIndex(i + 1)})
	}
	return chainRepo{actions: actions, goalAtom: index.AtomIndex(length)}
}

func TestIWSolvesAtArityOne(t *testing.T) {
	repo := newChainRepo(3)
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	opts := config.Default()
	opts.MaxArity = 2

	search := New(repo, states, goal, eventhandler.NoopEventHandler{}, opts, "test-run")
	result, width := search.Search()

	if result.Status != searchutil.Solved {
		t.Fatalf("Status = %v, want Solved", result.Status)
	}
	if width != 1 {
		t.Fatalf("effective width = %d, want 1 (every new atom is individually novel)", width)
	}
}

func TestIWUnsolvableWhenStaticGoalFails(t *testing.T) {
	repo := newChainRepo(1)
	states := state.NewStateRepository(repo, config.Default())
	goal := staticFalseGoal{}
	opts := config.Default()

	search := New(repo, states, goal, eventhandler.NoopEventHandler{}, opts, "test-run")
	result, width := search.Search()

	if result.Status != searchutil.Unsolvable {
		t.Fatalf("Status = %v, want Unsolvable", result.Status)
	}
	if width != -1 {
		t.Fatalf("width = %d, want -1", width)
	}
}

type staticFalseGoal struct{}

func (staticFalseGoal) TestStaticGoal() bool                          { return false }
func (staticFalseGoal) TestDynamicGoal(*packedstate.PackedState) bool { return false }

func TestIWExhaustedWhenNoArityReachesGoal(t *testing.T) {
	repo := newChainRepo(2)
	repo.goalAtom = index.AtomIndex(99)
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	opts := config.Default()
	opts.MaxArity = 1

	search := New(repo, states, goal, eventhandler.NoopEventHandler{}, opts, "test-run")
	result, width := search.Search()

	if result.Status != searchutil.Exhausted {
		t.Fatalf("Status = %v, want Exhausted", result.Status)
	}
	if width != -1 {
		t.Fatalf("width = %d, want -1", width)
	}
}
