// Package gbfs implements lazy greedy best-first search: states are
// inserted into the open list keyed only by parent h (no successor
// heuristic evaluation at generation time), and h is computed only once
// a state is actually popped for expansion. Generated states are routed
// into one of six priority buckets by policy-compatibility
// (strategy.ExplorationStrategy) and preferred-action membership
// (problem.PreferringHeuristic), combined via openlist.AlternatingOpenList.
package gbfs
