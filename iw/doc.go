// Package iw implements Iterated Width search: for arity 0, 1, 2, …
// up to a configured maximum, it runs a fresh breadth-first search
// pruned by strategy.ArityKNoveltyPruning(arity) and stops at the first
// arity that solves the problem. The arity that succeeds is the
// problem's effective width.
package iw
