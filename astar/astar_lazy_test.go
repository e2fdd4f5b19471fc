package astar

import (
	"testing"

	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/eventhandler"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

func TestLazyAStarPrefersCheaperPathOverFewerActions(t *testing.T) {
	repo := chainRepo{
		actions: []chainAction{
			{idx: 0, requires: 0, produces: 1, cost: 5},
			{idx: 1, requires: 1, produces: 2, cost: 5},
			{idx: 2, requires: 0, produces: 2, cost: 100},
		},
		goalAtom: 2,
	}
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	heuristic := countHeuristic{goal: repo.GoalLiterals()}
	search := NewLazy(repo, states, goal, strategy.NoPruning{}, heuristic, eventhandler.NoopEventHandler{}, config.Default(), "test-run")

	result := search.Search()
	if result.Status != searchutil.Solved {
		t.Fatalf("Status = %v, want Solved", result.Status)
	}
	if result.Cost != 10 {
		t.Fatalf("Cost = %v, want 10 (two cheap hops)", result.Cost)
	}
	if len(result.Plan) != 2 {
		t.Fatalf("Plan length = %d, want 2", len(result.Plan))
	}
}

func TestLazyAStarUnsolvableWhenStaticGoalFails(t *testing.T) {
	repo := chainRepo{goalAtom: 0}
	states := state.NewStateRepository(repo, config.Default())
	goal := staticFalseGoal{}
	heuristic := countHeuristic{}
	search := NewLazy(repo, states, goal, strategy.NoPruning{}, heuristic, eventhandler.NoopEventHandler{}, config.Default(), "test-run")

	result := search.Search()
	if result.Status != searchutil.Unsolvable {
		t.Fatalf("Status = %v, want Unsolvable", result.Status)
	}
}

func TestLazyAStarExhaustedWhenGoalUnreachable(t *testing.T) {
	repo := chainRepo{
		actions:  []chainAction{{idx: 0, requires: 0, produces: 1, cost: 1}},
		goalAtom: 99,
	}
	states := state.NewStateRepository(repo, config.Default())
	goal := strategy.NewProblemGoalStrategy(repo)
	heuristic := countHeuristic{goal: repo.GoalLiterals()}
	search := NewLazy(repo, states, goal, strategy.NoPruning{}, heuristic, eventhandler.NoopEventHandler{}, config.Default(), "test-run")

	result := search.Search()
	if result.Status != searchutil.Exhausted {
		t.Fatalf("Status = %v, want Exhausted", result.Status)
	}
}
