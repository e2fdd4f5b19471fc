package brfs

import (
	"github.com/simonstahlberg/mimir-go/appgen"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/eventhandler"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchnode"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// Payload is BrFS's per-state search metadata: the discrete distance
// from the root plus the action (and its cost) that produced this state
// from its parent, kept so a solved search can replay a plan without a
// second pass over the problem.
type Payload struct {
	G                int
	ParentAction     index.ActionIndex
	ParentActionCost float64
}

func defaultPayload() searchnode.SearchNode[Payload] {
	return searchnode.NewRootNode(Payload{ParentAction: index.ActionIndex(index.MaxIndex)})
}

// BrFS is a single breadth-first search run over one problem instance.
// A fresh BrFS must be constructed per Search call; it is not safe to
// reuse across runs.
type BrFS struct {
	repo    problem.ProblemRepository
	states  *state.StateRepository
	goal    strategy.GoalStrategy
	pruning strategy.PruningStrategy
	handler eventhandler.EventHandler
	opts    config.Options
	runID   string
	gen     appgen.ActionGenerator
}

// New builds a BrFS run. handler may be eventhandler.NoopEventHandler{}.
// The applicable-action generator opts.SearchMode selects is built once
// here and reused for the whole run.
func New(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, pruning strategy.PruningStrategy, handler eventhandler.EventHandler, opts config.Options, runID string) *BrFS {
	return &BrFS{repo: repo, states: states, goal: goal, pruning: pruning, handler: handler, opts: opts, runID: runID, gen: appgen.New(repo, opts)}
}

// Search runs breadth-first search rooted at the problem's own initial
// state, to completion, a timeout, or a resource budget.
func (b *BrFS) Search() searchutil.SearchResult {
	if !b.goal.TestStaticGoal() {
		b.handler.OnUnsolvable()
		return searchutil.SearchResult{Status: searchutil.Unsolvable, GoalState: index.NoneState, RunID: b.runID}
	}

	initial, _, err := b.states.GetOrCreateInitialState()
	if err != nil {
		return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: b.runID}
	}

	return b.SearchFrom(initial)
}

// SearchFrom runs breadth-first search rooted at an arbitrary, already
// interned state rather than the problem's own initial state, the entry
// point SIW uses to chain sub-searches together. The static goal test is
// still honored first, since it is a property of the problem, not of the
// chosen root.
func (b *BrFS) SearchFrom(initial packedstate.State) searchutil.SearchResult {
	if !b.goal.TestStaticGoal() {
		b.handler.OnUnsolvable()
		return searchutil.SearchResult{Status: searchutil.Unsolvable, GoalState: index.NoneState, RunID: b.runID}
	}

	nodes := searchnode.NewSearchNodeTable[Payload]()
	b.handler.OnStartSearch(initial)

	if b.pruning.TestPruneInitialState(initial.Packed) {
		b.handler.OnPruneState(initial)
		b.handler.OnExhausted()
		return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: b.runID}
	}

	nodes.GetOrCreate(initial.Index, defaultPayload)
	nodes.Set(initial.Index, searchnode.SearchNode[Payload]{
		Status:      searchnode.Open,
		ParentState: index.NoneState,
		Payload:     Payload{G: 0, ParentAction: index.ActionIndex(index.MaxIndex)},
	})

	queue := []index.StateIndex{initial.Index}
	stopwatch := searchutil.NewStopWatch(b.opts.MaxTimeInMs)

	for len(queue) > 0 {
		if stopwatch.Expired() {
			return searchutil.SearchResult{Status: searchutil.OutOfTime, GoalState: index.NoneState, RunID: b.runID}
		}
		if b.opts.MaxNumStates > 0 && uint32(b.states.StateCount()) >= b.opts.MaxNumStates {
			return searchutil.SearchResult{Status: searchutil.OutOfStates, GoalState: index.NoneState, RunID: b.runID}
		}

		curIdx := queue[0]
		queue = queue[1:]

		curState := b.states.StateByIndex(curIdx)
		curNode := nodes.GetOrCreate(curIdx, defaultPayload)
		if curNode.Status == searchnode.Closed {
			continue
		}

		if b.goal.TestDynamicGoal(curState.Packed) {
			b.handler.OnExpandGoalState(curState)
			plan, cost := buildPlan(nodes, curIdx)
			b.handler.OnSolved(plan)
			return searchutil.SearchResult{Status: searchutil.Solved, Plan: plan, GoalState: curIdx, Cost: cost, RunID: b.runID}
		}

		b.handler.OnExpandState(curState)
		curNode.Status = searchnode.Closed
		nodes.Set(curIdx, curNode)

		it := b.gen.Generate(curState.Packed)
		for it.Next() {
			action := it.Action()
			succ, _, isNew, err := b.states.GetOrCreateSuccessorState(curState, action, 0)
			if err != nil {
				return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: b.runID}
			}

			b.handler.OnGenerateState(curState, action.Index(), action.Cost(), succ)

			if b.pruning.TestPruneSuccessorState(curState.Packed, succ.Packed, isNew) {
				b.handler.OnPruneState(succ)
				continue
			}

			succNode := nodes.GetOrCreate(succ.Index, defaultPayload)
			if succNode.Status != searchnode.New {
				continue
			}

			nodes.Set(succ.Index, searchnode.SearchNode[Payload]{
				Status:      searchnode.Open,
				ParentState: curIdx,
				Payload: Payload{
					G:                curNode.Payload.G + 1,
					ParentAction:     action.Index(),
					ParentActionCost: action.Cost(),
				},
			})
			queue = append(queue, succ.Index)
		}

		if len(queue) == 0 || nodes.GetOrCreate(queue[0], defaultPayload).Payload.G > curNode.Payload.G {
			b.handler.OnFinishGLayer(curNode.Payload.G)
		}
	}

	b.handler.OnExhausted()
	return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: b.runID}
}

// buildPlan walks parent pointers from goalIdx back to the root, then
// reverses the collected steps into root-to-goal order. It also returns
// the plan's total action cost.
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
