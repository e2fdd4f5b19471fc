package siw

import (
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/eventhandler"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/iw"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// Result extends a SearchResult with the effective width of every
// sub-search SIW ran, in order, so a caller can report the run's
// maximum and average width alongside the final status.
type Result struct {
	searchutil.SearchResult
	Widths []int
}

// MaxWidth returns the largest sub-search width, or -1 if no sub-search
// ran.
func (r Result) MaxWidth() int {
	max := -1
	for _, w := range r.Widths {
		if w > max {
			max = w
		}
	}
	return max
}

// AverageWidth returns the mean sub-search width, or 0 if no sub-search
// ran.
func (r Result) AverageWidth() float64 {
	if len(r.Widths) == 0 {
		return 0
	}
	sum := 0
	for _, w := range r.Widths {
		sum += w
	}
	return float64(sum) / float64(len(r.Widths))
}

// SIW is a single Serialized Iterated Width search run over one problem
// instance.
type SIW struct {
	repo    problem.ProblemRepository
	states  *state.StateRepository
	handler eventhandler.EventHandler
	opts    config.Options
	runID   string
}

// New builds a SIW run.
func New(repo problem.ProblemRepository, states *state.StateRepository, handler eventhandler.EventHandler, opts config.Options, runID string) *SIW {
	return &SIW{repo: repo, states: states, handler: handler, opts: opts, runID: runID}
}

// Search decomposes the problem's goal into a chain of IW sub-searches,
// each one accepting any state that strictly reduces the number of
// unsatisfied top-level goal literals relative to its own starting
// state, concatenating their plans. It fails as soon as one sub-search
// cannot find any such state.
func (s *SIW) Search() Result {
	if !s.repo.StaticGoalHolds() {
		s.handler.OnUnsolvable()
		return Result{SearchResult: searchutil.SearchResult{Status: searchutil.Unsolvable, GoalState: index.NoneState, RunID: s.runID}}
	}

	current, _, err := s.states.GetOrCreateInitialState()
	if err != nil {
		return Result{SearchResult: searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: s.runID}}
	}

	goalLiterals := s.repo.GoalLiterals()
	var fullPlan []searchutil.PlanStep
	var widths []int
	var totalCost float64
	stopwatch := searchutil.NewStopWatch(s.opts.MaxTimeInMs)

	for {
		if stopwatch.Expired() {
			return Result{SearchResult: searchutil.SearchResult{Status: searchutil.OutOfTime, GoalState: index.NoneState, RunID: s.runID}, Widths: widths}
		}
		if s.opts.MaxNumStates > 0 && uint32(s.states.StateCount()) >= s.opts.MaxNumStates {
			return Result{SearchResult: searchutil.SearchResult{Status: searchutil.OutOfStates, GoalState: index.NoneState, RunID: s.runID}, Widths: widths}
		}

		if problem.CountUnsatisfied(goalLiterals, current.Packed) == 0 {
			s.handler.OnSolved(fullPlan)
			return Result{
				SearchResult: searchutil.SearchResult{Status: searchutil.Solved, Plan: fullPlan, GoalState: current.Index, Cost: totalCost, RunID: s.runID},
				Widths:       widths,
			}
		}

		goalCounting := strategy.NewGoalCountingStrategy(goalLiterals, current.Packed)
		run := iw.New(s.repo, s.states, goalCounting, s.handler, s.opts, s.runID)
		result, width := run.SearchFrom(current)

		if result.Status != searchutil.Solved {
			return Result{SearchResult: result, Widths: widths}
		}

		widths = append(widths, width)
		fullPlan = append(fullPlan, result.Plan...)
		totalCost += result.Cost
		current = s.states.StateByIndex(result.GoalState)
	}
}
