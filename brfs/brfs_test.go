package brfs

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

// chainAction unlocks `produces` once `requires` holds.
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

// chainRepo is a linear unlock chain 0 -> 1 -> 2 -> ... -> goalAtom, one
// action per edge, independent of which atoms the current state holds
// other than the one precondition.
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
func (chainRepo) StaticGoalHolds() bool                  { return true }
func (chainRepo) NumFluentAtoms() int                    { return 20 }
func (chainRepo) NumDerivedAtoms() int                   { return 20 }
func (chainRepo) ActionCost(problem.GroundAction) float64 { return 1 }

func newChainRepo(length int) chainRepo {
	var actions []chainAction
	for i := 0; i < length; i++ {
		actions = append(actions, chainAction{idx: index.ActionIndex(i), requires: index.AtomIndex(i), produces: index.AtomIndex(i + 1)})
	}
	return chainRepo{actions: actions, goalAtom: index.AtomIndex(length)}
}

func TestBrFSFindsShortestPlanAlongChain(t *testing.T) {
	repo := newChainRepo(3)
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	search := New(repo, states, goal, strategy.NoPruning{}, eventhandler.NoopEventHandler{}, config.Default(), "test-run")

	result := search.Search()
	if result.Status != searchutil.Solved {
		t.Fatalf("Status = %v, want Solved", result.Status)
	}
	if len(result.Plan) != 3 {
		t.Fatalf("Plan length = %d, want 3", len(result.Plan))
	}
	for i, step := range result.Plan {
		if step.Action != index.ActionIndex(i) {
			t.Fatalf("Plan[%d].Action = %d, want %d", i, step.Action, i)
		}
	}
	if result.Cost != 3 {
		t.Fatalf("Cost = %v, want 3", result.Cost)
	}
}

func TestBrFSUnsolvableWhenStaticGoalFails(t *testing.T) {
	repo := newChainRepo(1)
	states := state.NewStateRepository(repo, config.Default())
	goal := staticFalseGoal{}
	search := New(repo, states, goal, strategy.NoPruning{}, eventhandler.NoopEventHandler{}, config.Default(), "test-run")

	result := search.Search()
	if result.Status != searchutil.Unsolvable {
		t.Fatalf("Status = %v, want Unsolvable", result.Status)
	}
}

type staticFalseGoal struct{}

func (staticFalseGoal) TestStaticGoal() bool                             { return false }
func (staticFalseGoal) TestDynamicGoal(*packedstate.PackedState) bool { return false }

func TestBrFSExhaustedWhenGoalUnreachable(t *testing.T) {
	repo := newChainRepo(2)
	repo.goalAtom = index.AtomIndex(99)
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	search := New(repo, states, goal, strategy.NoPruning{}, eventhandler.NoopEventHandler{}, config.Default(), "test-run")

	result := search.Search()
	if result.Status != searchutil.Exhausted {
		t.Fatalf("Status = %v, want Exhausted", result.Status)
	}
}

func TestBrFSOutOfStatesWhenBudgetTooSmall(t *testing.T) {
	repo := newChainRepo(5)
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	opts := config.Default()
	opts.MaxNumStates = 2
	search := New(repo, states, goal, strategy.NoPruning{}, eventhandler.NoopEventHandler{}, opts, "test-run")

	result := search.Search()
	if result.Status != searchutil.OutOfStates {
		t.Fatalf("Status = %v, want OutOfStates", result.Status)
	}
}
