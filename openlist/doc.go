// Package openlist implements the priority-queue primitives the search
// algorithms use to pick which state to expand next: a generic min-heap
// PriorityQueue keyed by an ordered Key type, and an AlternatingOpenList
// that round-robins over several sub-queues by weight, grounded on the
// container/heap min-heap pattern used by
// github.com/katalvlaran/lvlath/dijkstra's nodePQ.
package openlist
