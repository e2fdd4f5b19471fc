package appgen

import (
	"sort"
	"testing"

	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
)

func actionIndices(t *testing.T, repo chainRepo, gen ActionGenerator, state *packedstate.PackedState) []int {
	t.Helper()
	var out []int
	it := gen.Generate(state)
	for it.Next() {
		out = append(out, int(it.Action().Index()))
	}
	sort.Ints(out)
	return out
}

func TestLiftedAndGroundedGeneratorsAgree(t *testing.T) {
	repo := chainRepo{actions: []chainAction{
		{idx: 0, pre: 0, add: 1},
		{idx: 1, pre: 1, add: 2},
		{idx: 2, pre: 2, add: 3},
	}}

	lifted := NewLiftedGenerator(repo)
	grounded := NewGroundedGenerator(repo)

	state := packedstate.NewPackedState()
	state.SetFluentAtoms([]index.AtomIndex{0})

	liftedActions := actionIndices(t, repo, lifted, &state)
	groundedActions := actionIndices(t, repo, grounded, &state)

	if len(liftedActions) != 1 || liftedActions[0] != 0 {
		t.Fatalf("lifted generator = %v, want [0]", liftedActions)
	}
	if len(groundedActions) != len(liftedActions) || groundedActions[0] != liftedActions[0] {
		t.Fatalf("grounded generator = %v, want to match lifted %v", groundedActions, liftedActions)
	}
}

func TestGeneratorsNarrowAsStateAdvances(t *testing.T) {
	repo := chainRepo{actions: []chainAction{
		{idx: 0, pre: 0, add: 1},
		{idx: 1, pre: 1, add: 2},
	}}
	grounded := NewGroundedGenerator(repo)

	atZero := packedstate.NewPackedState()
	atZero.SetFluentAtoms([]index.AtomIndex{0})
	if got := actionIndices(t, repo, grounded, &atZero); len(got) != 1 || got[0] != 0 {
		t.Fatalf("at atom 0: got %v, want [0]", got)
	}

	atOne := packedstate.NewPackedState()
	atOne.SetFluentAtoms([]index.AtomIndex{1})
	if got := actionIndices(t, repo, grounded, &atOne); len(got) != 1 || got[0] != 1 {
		t.Fatalf("at atom 1: got %v, want [1]", got)
	}
}

func TestNewSelectsBySearchMode(t *testing.T) {
	repo := chainRepo{actions: []chainAction{{idx: 0, pre: 0, add: 1}}}

	if _, ok := New(repo, config.Options{SearchMode: config.Lifted}).(*LiftedGenerator); !ok {
		t.Fatalf("expected New with SearchMode: Lifted to return *LiftedGenerator")
	}
	if _, ok := New(repo, config.Options{SearchMode: config.Grounded}).(*GroundedGenerator); !ok {
		t.Fatalf("expected New with SearchMode: Grounded to return *GroundedGenerator")
	}
}
