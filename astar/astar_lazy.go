package astar

import (
	"math"

	"github.com/simonstahlberg/mimir-go/appgen"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/eventhandler"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/openlist"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchnode"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// LazyPayload is lazy A*'s per-state search metadata. H is math.Inf(1)
// until the state is popped off the open list for the first time: a
// successor is enqueued keyed by g(successor) + h(parent) — the
// parent's already-known heuristic estimate, since the successor's own
// h has not been evaluated yet — and the real h is computed, then
// cached, only once the state is actually popped for expansion. This is
// the "lazy" in lazy A*: it trades the eager variant's guarantee of
// expanding in true f order for evaluating h only on states that are
// actually expanded instead of every state generated.
type LazyPayload struct {
	G                float64
	H                float64
	ParentAction     index.ActionIndex
	ParentActionCost float64
}

func defaultLazyPayload() searchnode.SearchNode[LazyPayload] {
	return searchnode.NewRootNode(LazyPayload{G: math.Inf(1), H: math.Inf(1), ParentAction: index.ActionIndex(index.MaxIndex)})
}

const (
	lazyBucketPreferred = iota
	lazyBucketStandard
	numLazyBuckets = 2
)

// LazyAStar is a single lazy A* search run over one problem instance. A
// fresh LazyAStar must be constructed per Search call. Its open list
// alternates between two buckets, preferred and standard, the narrower
// analogue of GBFS-lazy's six-bucket scheme: successors are split only by
// whether their action is preferred, with no greedy or compatibility
// split.
type LazyAStar struct {
	repo      problem.ProblemRepository
	states    *state.StateRepository
	goal      strategy.GoalStrategy
	pruning   strategy.PruningStrategy
	heuristic problem.Heuristic
	handler   eventhandler.EventHandler
	opts      config.Options
	runID     string
	gen       appgen.ActionGenerator
}

// NewLazy builds a LazyAStar run.
func NewLazy(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, pruning strategy.PruningStrategy, heuristic problem.Heuristic, handler eventhandler.EventHandler, opts config.Options, runID string) *LazyAStar {
	return &LazyAStar{repo: repo, states: states, goal: goal, pruning: pruning, heuristic: heuristic, handler: handler, opts: opts, runID: runID, gen: appgen.New(repo, opts)}
}

// Search runs lazy A* to completion, a timeout, or a resource budget.
func (a *LazyAStar) Search() searchutil.SearchResult {
	if !a.goal.TestStaticGoal() {
		a.handler.OnUnsolvable()
		return searchutil.SearchResult{Status: searchutil.Unsolvable, GoalState: index.NoneState, RunID: a.runID}
	}

	initial, _, err := a.states.GetOrCreateInitialState()
	if err != nil {
		return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: a.runID}
	}
	a.handler.OnStartSearch(initial)

	if a.pruning.TestPruneInitialState(initial.Packed) {
		a.handler.OnPruneState(initial)
		a.handler.OnExhausted()
		return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: a.runID}
	}

	h0 := a.heuristic.Evaluate(initial.Packed)
	bestH := math.Inf(1)
	if h0 < bestH {
		bestH = h0
		a.handler.OnNewBestHValue(h0)
	}
	if math.IsInf(h0, 1) {
		a.handler.OnExhausted()
		return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: a.runID}
	}

	nodes := searchnode.NewSearchNodeTable[LazyPayload]()
	nodes.GetOrCreate(initial.Index, defaultLazyPayload)
	nodes.Set(initial.Index, searchnode.SearchNode[LazyPayload]{
		Status:      searchnode.Open,
		ParentState: index.NoneState,
		Payload:     LazyPayload{G: 0, H: h0, ParentAction: index.ActionIndex(index.MaxIndex)},
	})

	pqs := make([]*openlist.PriorityQueue[key, index.StateIndex], numLazyBuckets)
	queues := make([]openlist.SubQueue[index.StateIndex], numLazyBuckets)
	weights := make([]uint32, numLazyBuckets)
	for i := 0; i < numLazyBuckets; i++ {
		pqs[i] = openlist.NewPriorityQueue[key, index.StateIndex](less)
		queues[i] = pqs[i]
		weights[i] = 1
	}
	alt := openlist.NewAlternatingOpenList[index.StateIndex](queues, weights)

	step := 0
	pqs[lazyBucketStandard].Insert(key{f: h0, g: 0, step: step}, initial.Index)

	preferredHeuristic, hasPreferred := a.heuristic.(problem.PreferringHeuristic)
	stopwatch := searchutil.NewStopWatch(a.opts.MaxTimeInMs)

	for !alt.Empty() {
		if stopwatch.Expired() {
			return searchutil.SearchResult{Status: searchutil.OutOfTime, GoalState: index.NoneState, RunID: a.runID}
		}
		if a.opts.MaxNumStates > 0 && uint32(a.states.StateCount()) >= a.opts.MaxNumStates {
			return searchutil.SearchResult{Status: searchutil.OutOfStates, GoalState: index.NoneState, RunID: a.runID}
		}

		curIdx := alt.Pop()
		curNode := nodes.GetOrCreate(curIdx, defaultLazyPayload)
		if curNode.Status == searchnode.Closed || curNode.Status == searchnode.DeadEnd {
			continue
		}

		curState := a.states.StateByIndex(curIdx)

		if math.IsInf(curNode.Payload.H, 1) {
			realH := a.heuristic.Evaluate(curState.Packed)
			curNode.Payload.H = realH
			nodes.Set(curIdx, curNode)

			if math.IsInf(realH, 1) {
				curNode.Status = searchnode.DeadEnd
				nodes.Set(curIdx, curNode)
				a.handler.OnPruneState(curState)
				continue
			}
			if realH < bestH {
				bestH = realH
				a.handler.OnNewBestHValue(realH)
			}
		}

		if a.goal.TestDynamicGoal(curState.Packed) {
			a.handler.OnExpandGoalState(curState)
			plan, cost := buildLazyPlan(nodes, curIdx)
			a.handler.OnSolved(plan)
			return searchutil.SearchResult{Status: searchutil.Solved, Plan: plan, GoalState: curIdx, Cost: cost, RunID: a.runID}
		}

		a.handler.OnExpandState(curState)
		curNode.Status = searchnode.Closed
		nodes.Set(curIdx, curNode)

		var preferredSet map[index.ActionIndex]struct{}
		if hasPreferred {
			preferredSet = preferredHeuristic.PreferredActions(curState.Packed)
		}

		it := a.gen.Generate(curState.Packed)
		for it.Next() {
			action := it.Action()
			succ, _, isNew, err := a.states.GetOrCreateSuccessorState(curState, action, 0)
			if err != nil {
				return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: a.runID}
			}
			a.handler.OnGenerateState(curState, action.Index(), action.Cost(), succ)

			newG := curNode.Payload.G + action.Cost()
			existing := nodes.GetOrCreate(succ.Index, defaultLazyPayload)
			if newG >= existing.Payload.G {
				continue
			}

			if a.pruning.TestPruneSuccessorState(curState.Packed, succ.Packed, isNew) {
				a.handler.OnPruneState(succ)
				continue
			}

			nodes.Set(succ.Index, searchnode.SearchNode[LazyPayload]{
				Status:      searchnode.Open,
				ParentState: curIdx,
				Payload: LazyPayload{
					G:                newG,
					H:                math.Inf(1),
					ParentAction:     action.Index(),
					ParentActionCost: action.Cost(),
				},
			})

			step++
			bucket := lazyBucketStandard
			if _, preferred := preferredSet[action.Index()]; preferred {
				bucket = lazyBucketPreferred
			}
			pqs[bucket].Insert(key{f: newG + curNode.Payload.H, g: newG, step: step}, succ.Index)
		}
	}

	a.handler.OnExhausted()
	return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: a.runID}
}

// buildLazyPlan walks parent pointers from goalIdx back to the root,
// then reverses the collected steps into root-to-goal order, returning
// the plan's total action cost alongside it.
func buildLazyPlan(nodes *searchnode.SearchNodeTable[LazyPayload], goalIdx index.StateIndex) ([]searchutil.PlanStep, float64) {
	var steps []searchutil.PlanStep
	var cost float64
	cur := goalIdx
	for {
		node := nodes.GetOrCreate(cur, defaultLazyPayload)
		if node.ParentState.IsNone() {
			break
		}
		steps = append(steps, searchutil.PlanStep{
			Action:     node.Payload.ParentAction,
			ActionCost: node.Payload.ParentActionCost,
			Resulting:  cur,
		})
		cost += node.Payload.ParentActionCost
		cur = node.ParentState
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, cost
}
