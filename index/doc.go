// Package index defines the small unsigned identifier types shared across
// the Mimir search substrate (AtomIndex, ActionIndex, AxiomIndex,
// ObjectIndex, StateIndex, EdgeIndex) and the SegmentedVector primitive
// used by tables that are keyed by one of those identifiers.
//
// All identifiers are plain uint32 values; MaxIndex (all-ones) is the
// sentinel meaning "none" or "not yet assigned". Keeping the identifier
// types distinct (rather than a single alias) lets call sites and doc
// comments stay unambiguous about which index space a value belongs to,
// mirroring how github.com/katalvlaran/lvlath/core keeps Vertex/Edge IDs
// as separate named types instead of bare strings.
package index
