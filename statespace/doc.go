// Package statespace builds the exhaustive reachability graph of a
// problem instance: a forward breadth-first traversal from the initial
// state, optionally folding isomorphic states together via the
// canonical-form adapter, followed by a backward pass that computes
// unit and action-cost goal distances and marks unsolvable vertices.
package statespace
