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

// Payload is A*'s per-state search metadata: the best g cost found so
// far, the heuristic estimate evaluated at that g, and the
// action/resulting-edge needed to replay a plan.
type Payload struct {
	G                float64
	H                float64
	ParentAction     index.ActionIndex
	ParentActionCost float64
}

func defaultPayload() searchnode.SearchNode[Payload] {
	return searchnode.NewRootNode(Payload{G: math.Inf(1), H: math.Inf(1), ParentAction: index.ActionIndex(index.MaxIndex)})
}

// key orders the open list by f ascending, then g descending (prefer the
// state closer to the goal among ties), then by insertion order (FIFO
// among exact ties), matching openlist's documented tuple-key pattern.
type key struct {
	f, g float64
	step int
}

func less(a, b key) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.step < b.step
}

// AStar is a single eager A* search run over one problem instance. A
// fresh AStar must be constructed per Search call.
type AStar struct {
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

// New builds an AStar run.
func New(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, pruning strategy.PruningStrategy, heuristic problem.Heuristic, handler eventhandler.EventHandler, opts config.Options, runID string) *AStar {
	return &AStar{repo: repo, states: states, goal: goal, pruning: pruning, heuristic: heuristic, handler: handler, opts: opts, runID: runID, gen: appgen.New(repo, opts)}
}

// Search runs eager A* to completion, a timeout, or a resource budget.
func (a *AStar) Search() searchutil.SearchResult {
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

	nodes := searchnode.NewSearchNodeTable[Payload]()
	nodes.GetOrCreate(initial.Index, defaultPayload)
	nodes.Set(initial.Index, searchnode.SearchNode[Payload]{
		Status:      searchnode.Open,
		ParentState: index.NoneState,
		Payload:     Payload{G: 0, H: h0, ParentAction: index.ActionIndex(index.MaxIndex)},
	})

	step := 0
	open := openlist.NewPriorityQueue[key, index.StateIndex](less)
	open.Insert(key{f: h0, g: 0, step: step}, initial.Index)
	stopwatch := searchutil.NewStopWatch(a.opts.MaxTimeInMs)

	for !open.Empty() {
		if stopwatch.Expired() {
			return searchutil.SearchResult{Status: searchutil.OutOfTime, GoalState: index.NoneState, RunID: a.runID}
		}
		if a.opts.MaxNumStates > 0 && uint32(a.states.StateCount()) >= a.opts.MaxNumStates {
			return searchutil.SearchResult{Status: searchutil.OutOfStates, GoalState: index.NoneState, RunID: a.runID}
		}

		entry := open.Pop()
		curIdx := entry.Value
		curNode := nodes.GetOrCreate(curIdx, defaultPayload)

		// Stale entry: a better g for this state was found after this
		// entry was inserted; the superseding entry is already queued.
		if entry.Key.g > curNode.Payload.G {
			continue
		}
		if curNode.Status == searchnode.Closed {
			continue
		}

		curState := a.states.StateByIndex(curIdx)
		if a.goal.TestDynamicGoal(curState.Packed) {
			a.handler.OnExpandGoalState(curState)
			plan, cost := buildPlan(nodes, curIdx)
			a.handler.OnSolved(plan)
			return searchutil.SearchResult{Status: searchutil.Solved, Plan: plan, GoalState: curIdx, Cost: cost, RunID: a.runID}
		}

		a.handler.OnExpandState(curState)
		curNode.Status = searchnode.Closed
		nodes.Set(curIdx, curNode)

		it := a.gen.Generate(curState.Packed)
		for it.Next() {
			action := it.Action()
			succ, _, isNew, err := a.states.GetOrCreateSuccessorState(curState, action, 0)
			if err != nil {
				return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: a.runID}
			}

			a.handler.OnGenerateState(curState, action.Index(), action.Cost(), succ)

			newG := curNode.Payload.G + action.Cost()
			existing := nodes.GetOrCreate(succ.Index, defaultPayload)
			if newG >= existing.Payload.G {
				continue
			}

			if a.pruning.TestPruneSuccessorState(curState.Packed, succ.Packed, isNew) {
				a.handler.OnPruneState(succ)
				continue
			}

			h := a.heuristic.Evaluate(succ.Packed)
			if math.IsInf(h, 1) {
				a.handler.OnPruneState(succ)
				continue
			}
			if h < bestH {
				bestH = h
				a.handler.OnNewBestHValue(h)
			}

			nodes.Set(succ.Index, searchnode.SearchNode[Payload]{
				Status:      searchnode.Open,
				ParentState: curIdx,
				Payload: Payload{
					G:                newG,
					H:                h,
					ParentAction:     action.Index(),
					ParentActionCost: action.Cost(),
				},
			})
			step++
			open.Insert(key{f: newG + h, g: newG, step: step}, succ.Index)
		}
	}

	a.handler.OnExhausted()
	return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: a.runID}
}

// buildPlan walks parent pointers from goalIdx back to the root, then
// reverses the collected steps into root-to-goal order, returning the
// plan's total action cost alongside it.
func buildPlan(nodes *searchnode.SearchNodeTable[Payload], goalIdx index.StateIndex) ([]searchutil.PlanStep, float64) {
	var steps []searchutil.PlanStep
	var cost float64
	cur := goalIdx
	for {
		node := nodes.GetOrCreate(cur, defaultPayload)
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
