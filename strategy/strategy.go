package strategy

import "github.com/simonstahlberg/mimir-go/packedstate"

// GoalStrategy tests whether a state satisfies the search's goal
// condition. test_static_goal is evaluated once, before the first state
// is generated, to support the unsolvable short-circuit; test_dynamic_goal
// is evaluated per generated/expanded state.
type GoalStrategy interface {
	TestStaticGoal() bool
	TestDynamicGoal(state *packedstate.PackedState) bool
}

// PruningStrategy decides whether a candidate state should be discarded
// before it is ever opened. test_prune_successor_state additionally
// learns whether succ was newly interned by the state repository
// (isNewSucc), since some variants (DuplicateStatePruning in particular)
// treat re-derivations of an already-known state differently from a
// state seen for the first time.
type PruningStrategy interface {
	TestPruneInitialState(state *packedstate.PackedState) bool
	TestPruneSuccessorState(state, succ *packedstate.PackedState, isNewSucc bool) bool
}

// ExplorationStrategy is consulted when a successor state is generated;
// its boolean result is the "policy-compatible" hook GBFS-lazy's
// alternating open list uses to route a generated state into one of its
// six buckets.
type ExplorationStrategy interface {
	OnGenerateState(parent, succ *packedstate.PackedState) bool
}

// AlwaysCompatibleExploration is the default ExplorationStrategy: every
// generated state is considered policy-compatible, which leaves GBFS-lazy
// routing successors only into its four compatible buckets (split by
// greedy and preferred).
type AlwaysCompatibleExploration struct{}

func (AlwaysCompatibleExploration) OnGenerateState(parent, succ *packedstate.PackedState) bool {
	return true
}
