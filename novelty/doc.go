// Package novelty implements the IW/SIW novelty machinery:
// TupleIndexMapper (an injective mixed-radix encoding of a sorted k-tuple
// of atom indices into a single integer), the tuple-enumeration helpers,
// DynamicNoveltyTable (the bit array tracking witnessed tuples), and
// FluentAndDerivedMapper (the dense remapping of observed fluent/derived
// atom indices a state's combined atom vector is built from).
//
// Generator simplification: rather than stateful, amortized-O(1)-per-tuple
// external iterators over positions in a state's atom vector, this
// package returns the complete tuple-index slice for a state (or state
// pair) in one call — the same set of tuple indices, in the same
// enumeration order, just eagerly materialized rather than produced one
// at a time. That mirrors how the rest of this codebase's search surfaces
// work (BrFS/A* return a SearchResult, not a stateful cursor) and keeps
// DynamicNoveltyTable's call sites simple; see DESIGN.md for the full
// justification.
package novelty
