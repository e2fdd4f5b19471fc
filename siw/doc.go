// Package siw implements Serialized Iterated Width: the top-level goal
// is decomposed into a sequence of sub-searches, each run by IW against
// a strategy.GoalCountingStrategy that accepts any state strictly
// closer (by unsatisfied-literal count) to the real goal than the
// sub-search's own starting state. Sub-plans are concatenated; the
// overall search fails as soon as one sub-search cannot make any
// progress.
package siw
