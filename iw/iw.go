package iw

import (
	"github.com/simonstahlberg/mimir-go/brfs"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/eventhandler"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// IW is a single Iterated Width search run over one problem instance.
type IW struct {
	repo    problem.ProblemRepository
	states  *state.StateRepository
	goal    strategy.GoalStrategy
	handler eventhandler.EventHandler
	opts    config.Options
	runID   string
}

// New builds an IW run. opts.MaxArity bounds the arities attempted.
func New(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, handler eventhandler.EventHandler, opts config.Options, runID string) *IW {
	return &IW{repo: repo, states: states, goal: goal, handler: handler, opts: opts, runID: runID}
}

// Search tries arity 0, 1, … up to opts.MaxArity rooted at the
// problem's own initial state, returning the first solving run's
// SearchResult and the arity that solved it (the problem's effective
// width, -1 if no arity solved it).
func (w *IW) Search() (searchutil.SearchResult, int) {
	initial, _, err := w.states.GetOrCreateInitialState()
	if err != nil {
		return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: w.runID}, -1
	}
	return w.SearchFrom(initial)
}

// SearchFrom runs Iterated Width rooted at an arbitrary, already
// interned state, the entry point SIW uses for each serialized
// sub-search.
func (w *IW) SearchFrom(initial packedstate.State) (searchutil.SearchResult, int) {
	numAtoms := w.repo.NumFluentAtoms() + w.repo.NumDerivedAtoms()

	for arity := 0; arity <= w.opts.MaxArity; arity++ {
		var pruning strategy.PruningStrategy
		if arity == 0 {
			pruning = strategy.ArityZeroNoveltyPruning{}
		} else {
			p, err := strategy.NewArityKNoveltyPruning(arity, numAtoms)
			if err != nil {
				return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: w.runID}, -1
			}
			pruning = p
		}

		run := brfs.New(w.repo, w.states, w.goal, pruning, w.handler, w.opts, w.runID)
		result := run.SearchFrom(initial)

		switch result.Status {
		case searchutil.Solved:
			return result, arity
		case searchutil.Unsolvable, searchutil.OutOfTime, searchutil.OutOfStates, searchutil.Failed:
			// Unsolvable is arity-independent (the static goal test
			// never consults novelty); the resource/fatal statuses mean
			// retrying with a larger arity would only fail the same way
			// after doing more work.
			return result, -1
		case searchutil.Exhausted:
			// This arity's width was insufficient; try the next one.
			continue
		}
	}

	w.handler.OnExhausted()
	return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: w.runID}, -1
}
