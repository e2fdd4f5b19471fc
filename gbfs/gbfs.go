package gbfs

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

// Bucket indices for the six alternation queues. A generated successor
// is routed at generation time, before its own h is ever evaluated,
// using only properties known from its parent and the action that
// produced it: whether the exploration strategy accepts the edge
// (compatible), whether the parent itself was an h-improvement over its
// own parent (greedy, inherited unchanged by every child), and whether
// the action belongs to the heuristic's preferred-action set
// (preferred). "Exhaustive" states are compatible, non-greedy
// successors; they still get a preferred/non-preferred split. A
// policy-incompatible state keeps only the preferred/non-preferred split:
// its greedy flag does not affect its bucket.
const (
	bucketCompatibleGreedyPreferred = iota
	bucketCompatibleGreedy
	bucketCompatibleExhaustivePreferred
	bucketCompatibleExhaustive
	bucketPreferred
	bucketStandard
	numBuckets = 6
)

func bucketFor(compatible, greedy, preferred bool) int {
	switch {
	case compatible && greedy && preferred:
		return bucketCompatibleGreedyPreferred
	case compatible && greedy:
		return bucketCompatibleGreedy
	case compatible && preferred:
		return bucketCompatibleExhaustivePreferred
	case compatible:
		return bucketCompatibleExhaustive
	case preferred:
		return bucketPreferred
	default:
		return bucketStandard
	}
}

// Payload is GBFS-lazy's per-state search metadata. H is math.Inf(1)
// until the state is actually popped off the open list for the first
// time: the open-list key a state is queued under is its parent's
// already-known h, a cached estimate, never the state's own (unevaluated)
// h, which is the "lazy" in GBFS-lazy.
type Payload struct {
	ParentAction     index.ActionIndex
	ParentActionCost float64
	H                float64
	Greedy           bool
}

func defaultPayload() searchnode.SearchNode[Payload] {
	return searchnode.NewRootNode(Payload{ParentAction: index.ActionIndex(index.MaxIndex), H: math.Inf(1)})
}

type bucketKey struct {
	h    float64
	step int
}

func lessKey(a, b bucketKey) bool {
	if a.h != b.h {
		return a.h < b.h
	}
	return a.step < b.step
}

// GBFS is a single lazy greedy best-first search run over one problem
// instance. A fresh GBFS must be constructed per Search call.
type GBFS struct {
	repo        problem.ProblemRepository
	states      *state.StateRepository
	goal        strategy.GoalStrategy
	pruning     strategy.PruningStrategy
	exploration strategy.ExplorationStrategy
	heuristic   problem.Heuristic
	handler     eventhandler.EventHandler
	opts        config.Options
	runID       string
	gen         appgen.ActionGenerator
}

// New builds a GBFS run.
func New(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, pruning strategy.PruningStrategy, exploration strategy.ExplorationStrategy, heuristic problem.Heuristic, handler eventhandler.EventHandler, opts config.Options, runID string) *GBFS {
	return &GBFS{repo: repo, states: states, goal: goal, pruning: pruning, exploration: exploration, heuristic: heuristic, handler: handler, opts: opts, runID: runID, gen: appgen.New(repo, opts)}
}

// Search runs lazy GBFS to completion, a timeout, or a resource budget.
func (g *GBFS) Search() searchutil.SearchResult {
	if !g.goal.TestStaticGoal() {
		g.handler.OnUnsolvable()
		return searchutil.SearchResult{Status: searchutil.Unsolvable, GoalState: index.NoneState, RunID: g.runID}
	}

	initial, _, err := g.states.GetOrCreateInitialState()
	if err != nil {
		return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: g.runID}
	}
	g.handler.OnStartSearch(initial)

	if g.pruning.TestPruneInitialState(initial.Packed) {
		g.handler.OnPruneState(initial)
		g.handler.OnExhausted()
		return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: g.runID}
	}

	h0 := g.heuristic.Evaluate(initial.Packed)
	bestH := math.Inf(1)
	if h0 < bestH {
		bestH = h0
		g.handler.OnNewBestHValue(h0)
	}
	if math.IsInf(h0, 1) {
		g.handler.OnExhausted()
		return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: g.runID}
	}

	nodes := searchnode.NewSearchNodeTable[Payload]()
	nodes.GetOrCreate(initial.Index, defaultPayload)
	nodes.Set(initial.Index, searchnode.SearchNode[Payload]{
		Status:      searchnode.Open,
		ParentState: index.NoneState,
		Payload:     Payload{ParentAction: index.ActionIndex(index.MaxIndex), H: h0, Greedy: false},
	})

	pqs := make([]*openlist.PriorityQueue[bucketKey, index.StateIndex], numBuckets)
	queues := make([]openlist.SubQueue[index.StateIndex], numBuckets)
	weights := make([]uint32, numBuckets)
	for i := 0; i < numBuckets; i++ {
		pqs[i] = openlist.NewPriorityQueue[bucketKey, index.StateIndex](lessKey)
		queues[i] = pqs[i]
		weights[i] = g.opts.OpenListWeights[i]
	}
	alt := openlist.NewAlternatingOpenList[index.StateIndex](queues, weights)

	step := 0
	pqs[bucketStandard].Insert(bucketKey{h: h0, step: step}, initial.Index)

	preferredHeuristic, hasPreferred := g.heuristic.(problem.PreferringHeuristic)
	stopwatch := searchutil.NewStopWatch(g.opts.MaxTimeInMs)

	for !alt.Empty() {
		if stopwatch.Expired() {
			return searchutil.SearchResult{Status: searchutil.OutOfTime, GoalState: index.NoneState, RunID: g.runID}
		}
		if g.opts.MaxNumStates > 0 && uint32(g.states.StateCount()) >= g.opts.MaxNumStates {
			return searchutil.SearchResult{Status: searchutil.OutOfStates, GoalState: index.NoneState, RunID: g.runID}
		}

		curIdx := alt.Pop()
		curNode := nodes.GetOrCreate(curIdx, defaultPayload)
		if curNode.Status == searchnode.Closed || curNode.Status == searchnode.DeadEnd {
			continue
		}

		curState := g.states.StateByIndex(curIdx)

		if math.IsInf(curNode.Payload.H, 1) {
			parentNode := nodes.GetOrCreate(curNode.ParentState, defaultPayload)
			realH := g.heuristic.Evaluate(curState.Packed)
			curNode.Payload.H = realH
			curNode.Payload.Greedy = realH < parentNode.Payload.H
			nodes.Set(curIdx, curNode)

			if math.IsInf(realH, 1) {
				curNode.Status = searchnode.DeadEnd
				nodes.Set(curIdx, curNode)
				g.handler.OnPruneState(curState)
				continue
			}
			if realH < bestH {
				bestH = realH
				g.handler.OnNewBestHValue(realH)
			}
		}

		if g.goal.TestDynamicGoal(curState.Packed) {
			g.handler.OnExpandGoalState(curState)
			plan, cost := buildPlan(nodes, curIdx)
			g.handler.OnSolved(plan)
			return searchutil.SearchResult{Status: searchutil.Solved, Plan: plan, GoalState: curIdx, Cost: cost, RunID: g.runID}
		}

		g.handler.OnExpandState(curState)
		curNode.Status = searchnode.Closed
		nodes.Set(curIdx, curNode)

		var preferredSet map[index.ActionIndex]struct{}
		if hasPreferred {
			preferredSet = preferredHeuristic.PreferredActions(curState.Packed)
		}

		it := g.gen.Generate(curState.Packed)
		for it.Next() {
			action := it.Action()
			succ, _, isNew, err := g.states.GetOrCreateSuccessorState(curState, action, 0)
			if err != nil {
				return searchutil.SearchResult{Status: searchutil.Failed, GoalState: index.NoneState, RunID: g.runID}
			}
			g.handler.OnGenerateState(curState, action.Index(), action.Cost(), succ)

			if g.pruning.TestPruneSuccessorState(curState.Packed, succ.Packed, isNew) {
				g.handler.OnPruneState(succ)
				continue
			}

			succNode := nodes.GetOrCreate(succ.Index, defaultPayload)
			if succNode.Status != searchnode.New {
				continue
			}

			compatible := g.exploration.OnGenerateState(curState.Packed, succ.Packed)
			_, preferred := preferredSet[action.Index()]

			nodes.Set(succ.Index, searchnode.SearchNode[Payload]{
				Status:      searchnode.Open,
				ParentState: curIdx,
				Payload: Payload{
					ParentAction:     action.Index(),
					ParentActionCost: action.Cost(),
					H:                math.Inf(1),
				},
			})

			step++
			bucket := bucketFor(compatible, curNode.Payload.Greedy, preferred)
			pqs[bucket].Insert(bucketKey{h: curNode.Payload.H, step: step}, succ.Index)
		}
	}

	g.handler.OnExhausted()
	return searchutil.SearchResult{Status: searchutil.Exhausted, GoalState: index.NoneState, RunID: g.runID}
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
