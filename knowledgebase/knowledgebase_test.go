package knowledgebase

import (
	"testing"

	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/statespace"
	"github.com/simonstahlberg/mimir-go/strategy"
)

type kbAction struct {
	idx      index.ActionIndex
	requires index.AtomIndex
	produces index.AtomIndex
}

func (a kbAction) Index() index.ActionIndex { return a.idx }
func (a kbAction) Cost() float64            { return 1 }
func (a kbAction) Name() string             { return "advance" }
func (a kbAction) Preconditions() (positive, negative []index.AtomIndex) {
	return []index.AtomIndex{a.requires}, nil
}

type kbActionIter struct {
	actions []kbAction
	pos     int
}

func (it *kbActionIter) Next() bool {
	if it.pos >= len(it.actions) {
		return false
	}
	it.pos++
	return true
}
func (it *kbActionIter) Action() problem.GroundAction { return it.actions[it.pos-1] }

type kbEmptyAxiomIter struct{}

func (kbEmptyAxiomIter) Next() bool                { return false }
func (kbEmptyAxiomIter) Axiom() problem.GroundAxiom { return nil }

type kbRepo struct {
	actions  []kbAction
	goalAtom index.AtomIndex
}

func (kbRepo) ProblemName() string { return "knowledgebase-fixture" }
func (r kbRepo) ApplicableActions(s *packedstate.PackedState) problem.ActionIterator {
	var applicable []kbAction
	for _, a := range r.actions {
		if s.HasFluentAtom(a.requires) {
			applicable = append(applicable, a)
		}
	}
	return &kbActionIter{actions: applicable}
}
func (kbRepo) Axioms() problem.AxiomIterator { return kbEmptyAxiomIter{} }
func (kbRepo) InitialState() ([]index.AtomIndex, []float64) {
	return []index.AtomIndex{0}, nil
}
func (kbRepo) ApplyEffects(s *packedstate.PackedState, action problem.GroundAction) packedstate.PackedState {
	a := action.(kbAction)
	out := s.Clone()
	out.SetFluentAtoms(append(append([]index.AtomIndex(nil), out.FluentAtoms...), a.produces))
	return out
}
func (kbRepo) ApplyAxiom(*packedstate.PackedState, problem.GroundAxiom) bool { return false }
func (kbRepo) EvaluateMetric(*packedstate.PackedState) float64              { return 0 }
func (r kbRepo) GoalLiterals() []problem.Literal {
	return []problem.Literal{{Atom: r.goalAtom, Positive: true}}
}
func (kbRepo) StaticGoalHolds() bool                   { return true }
func (kbRepo) NumFluentAtoms() int                     { return 20 }
func (kbRepo) NumDerivedAtoms() int                    { return 0 }
func (kbRepo) ActionCost(problem.GroundAction) float64 { return 1 }

func newKBChain(length int) kbRepo {
	var actions []kbAction
	for i := 0; i < length; i++ {
		actions = append(actions, kbAction{idx: index.ActionIndex(i), requires: index.AtomIndex(i), produces: index.AtomIndex(i + 1)})
	}
	return kbRepo{actions: actions, goalAtom: index.AtomIndex(length)}
}

func buildKBSpace(t *testing.T, repo kbRepo) *statespace.StateSpace {
	t.Helper()
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	ss, status, err := statespace.Build(repo, states, goal, nil, config.Default())
	if err != nil {
		t.Fatalf("statespace.Build: %v", err)
	}
	if status != statespace.Completed {
		t.Fatalf("status = %v, want Completed", status)
	}
	return ss
}

func TestBuildWithoutTupleGraphsOnlyQuotients(t *testing.T) {
	spaces := []*statespace.StateSpace{buildKBSpace(t, newKBChain(2)), buildKBSpace(t, newKBChain(3))}

	kb, err := Build(spaces, nil, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if kb.Generalized == nil {
		t.Fatalf("Generalized must not be nil")
	}
	if kb.TupleGraphs != nil {
		t.Fatalf("TupleGraphs = %v, want nil when BuildTupleGraphs is false", kb.TupleGraphs)
	}
	wantVertices := spaces[0].NumVertices() + spaces[1].NumVertices()
	if kb.Generalized.NumClassVertices() != wantVertices {
		t.Fatalf("NumClassVertices() = %d, want %d", kb.Generalized.NumClassVertices(), wantVertices)
	}
}

func TestBuildWithTupleGraphsPopulatesOnePerProblem(t *testing.T) {
	spaces := []*statespace.StateSpace{buildKBSpace(t, newKBChain(2)), buildKBSpace(t, newKBChain(3))}

	kb, err := Build(spaces, nil, Options{BuildTupleGraphs: true, TupleGraphOptions: config.Default()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(kb.TupleGraphs) != 2 {
		t.Fatalf("len(TupleGraphs) = %d, want 2", len(kb.TupleGraphs))
	}
	for i, tg := range kb.TupleGraphs {
		if tg == nil || tg.NumVertices() == 0 {
			t.Fatalf("TupleGraphs[%d] = %v, want a populated tuple graph", i, tg)
		}
	}
}
