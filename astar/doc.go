// Package astar implements both A* variants over the lifted state-space
// substrate. AStar is eager: every generated successor's heuristic is
// evaluated before it is queued, giving a true f = g + h priority order
// with lazy deletion of stale entries and reopening on a strict
// g-improvement. LazyAStar defers the heuristic call until a state is
// actually popped for expansion, queuing successors under their
// parent's already-known h instead; its open list alternates between a
// preferred and a standard bucket. Both are driven by a caller supplied
// problem.Heuristic and extract their plan by walking parent pointers
// collected during expansion, the same scheme brfs uses.
package astar
