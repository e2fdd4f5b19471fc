// Package searchnode implements the dense, StateIndex-keyed table of
// per-state search metadata shared by every algorithm: SearchNode (status
// + parent pointer + algorithm-specific payload) and SearchNodeTable, a
// thin wrapper over index.SegmentedVector that never reallocates existing
// entries as new states are discovered.
package searchnode
