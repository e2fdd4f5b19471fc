// Package strategy defines the pluggable goal, pruning, and exploration
// tests every search algorithm consults: GoalStrategy,
// PruningStrategy, and ExplorationStrategy, plus the problem-default
// goal strategy and the pruning strategy family (NoPruning,
// DuplicateStatePruning, ArityZeroNoveltyPruning, ArityKNoveltyPruning).
package strategy
