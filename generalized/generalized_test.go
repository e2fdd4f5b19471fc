package generalized

import (
	"testing"

	"github.com/simonstahlberg/mimir-go/canonical"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/statespace"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// twoChainAction/twoChainRepo build a trivial two-state chain 0 -a-> 1
// (goal), parameterized by a starting atom so two "different" problems
// can be built that are nonetheless certificate-isomorphic.
type twoChainAction struct {
	idx      index.ActionIndex
	requires index.AtomIndex
	produces index.AtomIndex
}

func (a twoChainAction) Index() index.ActionIndex { return a.idx }
func (a twoChainAction) Cost() float64            { return 1 }
func (a twoChainAction) Name() string             { return "advance" }
func (a twoChainAction) Preconditions() (positive, negative []index.AtomIndex) {
	return []index.AtomIndex{a.requires}, nil
}

type twoChainIter struct {
	actions []twoChainAction
	pos     int
}

func (it *twoChainIter) Next() bool {
	if it.pos >= len(it.actions) {
		return false
	}
	it.pos++
	return true
}
func (it *twoChainIter) Action() problem.GroundAction { return it.actions[it.pos-1] }

type emptyAxiomIter struct{}

func (emptyAxiomIter) Next() bool                { return false }
func (emptyAxiomIter) Axiom() problem.GroundAxiom { return nil }

type twoChainRepo struct {
	start, goal index.AtomIndex
}

func (twoChainRepo) ProblemName() string { return "two-chain" }
func (r twoChainRepo) ApplicableActions(s *packedstate.PackedState) problem.ActionIterator {
	if s.HasFluentAtom(r.start) && !s.HasFluentAtom(r.goal) {
		return &twoChainIter{actions: []twoChainAction{{idx: 0, requires: r.start, produces: r.goal}}}
	}
	return &twoChainIter{}
}
func (twoChainRepo) Axioms() problem.AxiomIterator { return emptyAxiomIter{} }
func (r twoChainRepo) InitialState() ([]index.AtomIndex, []float64) {
	return []index.AtomIndex{r.start}, nil
}
func (r twoChainRepo) ApplyEffects(s *packedstate.PackedState, action problem.GroundAction) packedstate.PackedState {
	a := action.(twoChainAction)
	out := s.Clone()
	out.SetFluentAtoms(append(append([]index.AtomIndex(nil), out.FluentAtoms...), a.produces))
	return out
}
func (twoChainRepo) ApplyAxiom(*packedstate.PackedState, problem.GroundAxiom) bool { return false }
func (twoChainRepo) EvaluateMetric(*packedstate.PackedState) float64              { return 0 }
func (r twoChainRepo) GoalLiterals() []problem.Literal {
	return []problem.Literal{{Atom: r.goal, Positive: true}}
}
func (twoChainRepo) StaticGoalHolds() bool                   { return true }
func (twoChainRepo) NumFluentAtoms() int                     { return 10 }
func (twoChainRepo) NumDerivedAtoms() int                    { return 0 }
func (twoChainRepo) ActionCost(problem.GroundAction) float64 { return 1 }

// coarseDescriptor/identityOracle: certificate degenerates to atom count,
// so two chains seeded from different atoms are still isomorphic.
type coarseDescriptor struct{}

func (coarseDescriptor) NumObjects() int                                   { return 0 }
func (coarseDescriptor) ObjectColor(index.ObjectIndex) int                 { return 0 }
func (coarseDescriptor) AtomArguments(index.AtomIndex) []index.ObjectIndex { return nil }
func (coarseDescriptor) AtomPredicateColor(index.AtomIndex) int            { return 0 }
func (coarseDescriptor) StaticAtoms() []index.AtomIndex                    { return nil }
func (coarseDescriptor) NumFluentAtoms() int                               { return 10 }
func (coarseDescriptor) NumDerivedAtoms() int                              { return 0 }

type identityOracle struct{}

func (identityOracle) Canonize(g problem.LabelledGraph) ([]byte, error) {
	return []byte{byte(len(g.Vertices))}, nil
}

// buildChain constructs a twoChainRepo's StateSpace plus a per-vertex
// certificate slice keyed by atom count, mirroring what a caller backed
// by canonical.ObjectGraph would assemble from a FaithfulAbstraction.
func buildChain(t *testing.T, start, goal index.AtomIndex) ProblemInput {
	t.Helper()
	repo := twoChainRepo{start: start, goal: goal}
	states := state.NewStateRepository(repo, config.Default())
	goalStrategy := strategy.NewProblemGoalStrategy(repo)

	ss, status, err := statespace.Build(repo, states, goalStrategy, nil, config.Default())
	if err != nil {
		t.Fatalf("statespace.Build: %v", err)
	}
	if status != statespace.Completed {
		t.Fatalf("status = %v, want Completed", status)
	}

	objGraph, err := canonical.New(coarseDescriptor{}, identityOracle{}, repo.GoalLiterals(), false, 16)
	if err != nil {
		t.Fatalf("canonical.New: %v", err)
	}
	certs := make([][]byte, ss.NumVertices())
	for v := 0; v < ss.NumVertices(); v++ {
		st := states.StateByIndex(ss.Vertex(index.VertexIndex(v)).State)
		cert, err := objGraph.CertificateFor(st.Packed)
		if err != nil {
			t.Fatalf("CertificateFor: %v", err)
		}
		certs[v] = cert
	}
	return ProblemInput{Space: ss, Certificates: certs}
}

func TestBuildWithoutSymmetryPruningUnionsByOffset(t *testing.T) {
	a := buildChain(t, 0, 1)
	b := buildChain(t, 2, 3)

	g := Build([]ProblemInput{a, b}, false)
	if g.NumClassVertices() != a.Space.NumVertices()+b.Space.NumVertices() {
		t.Fatalf("NumClassVertices() = %d, want %d", g.NumClassVertices(), a.Space.NumVertices()+b.Space.NumVertices())
	}
	if g.NumClassEdges() != a.Space.NumEdges()+b.Space.NumEdges() {
		t.Fatalf("NumClassEdges() = %d, want %d", g.NumClassEdges(), a.Space.NumEdges()+b.Space.NumEdges())
	}
	if len(g.SkippedProblems) != 0 {
		t.Fatalf("SkippedProblems = %v, want none", g.SkippedProblems)
	}
}

func TestBuildWithSymmetryPruningSkipsIsomorphicProblem(t *testing.T) {
	a := buildChain(t, 0, 1)
	b := buildChain(t, 2, 3)

	g := Build([]ProblemInput{a, b}, true)
	if len(g.SkippedProblems) != 1 || g.SkippedProblems[0] != 1 {
		t.Fatalf("SkippedProblems = %v, want [1]", g.SkippedProblems)
	}
	// Both chains have the same shape (1-atom initial, 2-atom goal), so
	// the whole second problem folds onto the first: two class vertices
	// total, one class edge.
	if g.NumClassVertices() != 2 {
		t.Fatalf("NumClassVertices() = %d, want 2", g.NumClassVertices())
	}
	if g.NumClassEdges() != 1 {
		t.Fatalf("NumClassEdges() = %d, want 1", g.NumClassEdges())
	}
	if g.VertexLocalToClass[1] != nil {
		t.Fatalf("VertexLocalToClass[1] = %v, want nil for a skipped problem", g.VertexLocalToClass[1])
	}
}

func TestInducedByProblemsRestrictsToOwnVertices(t *testing.T) {
	a := buildChain(t, 0, 1)
	b := buildChain(t, 2, 3)

	g := Build([]ProblemInput{a, b}, false)
	sub := g.InducedByProblems(map[int]bool{0: true})
	if len(sub.Vertices) != a.Space.NumVertices() {
		t.Fatalf("len(sub.Vertices) = %d, want %d", len(sub.Vertices), a.Space.NumVertices())
	}
	for _, e := range sub.Edges {
		if int(e.From) >= a.Space.NumVertices() || int(e.To) >= a.Space.NumVertices() {
			t.Fatalf("induced edge %+v reaches outside problem 0's vertex range", e)
		}
	}
}
