// Package brfs implements breadth-first search over the lifted
// state-space substrate: a FIFO frontier of StateIndex values, expanded
// in discrete-g layers, with a pluggable goal test and pruning strategy.
// It is the search every other algorithm in this module ultimately
// degrades to when the problem is unweighted (IW and SIW both drive
// their sub-searches through a BrFS instance with a novelty-based
// pruning strategy installed).
package brfs
