// Package tuplegraph builds the novelty-preserving layered DAG rooted at
// a state: vertex 0 is the empty tuple at the root, and every further
// vertex is a tuple of atoms that first became novel at some BrFS layer,
// connected to the prior-layer vertices whose states extend into it.
// Arity 0 is a two-vertex special case; arity ≥ 1 builds layer by layer
// using the novelty package's DynamicNoveltyTable, optionally pruning a
// candidate tuple dominated by another candidate in the same layer.
package tuplegraph
