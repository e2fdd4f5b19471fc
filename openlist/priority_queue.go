package openlist

import "container/heap"

// Entry pairs a priority Key with an Item, the value returned by Top/Pop.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// PriorityQueue is a min-heap ordered by a caller-supplied Less
// comparator over Key, generalizing lvlath/dijkstra's nodePQ (a
// container/heap min-heap of *nodeItem ordered by nodeItem.dist) to an
// arbitrary, possibly tuple-shaped, key type. A*'s key is
// (f, g, insertion_step); GBFS-lazy's is (h, insertion_step). Both are
// expressed by supplying the right Less function.
type PriorityQueue[K any, V any] struct {
	heap innerHeap[K, V]
}

// NewPriorityQueue returns an empty PriorityQueue ordered by less(a, b):
// less must report whether a sorts strictly before b.
func NewPriorityQueue[K any, V any](less func(a, b K) bool) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{heap: innerHeap[K, V]{less: less}}
}

// Insert pushes (key, value) onto the queue.
func (q *PriorityQueue[K, V]) Insert(key K, value V) {
	heap.Push(&q.heap, Entry[K, V]{Key: key, Value: value})
}

// Top returns the minimum entry without removing it. Panics if empty.
func (q *PriorityQueue[K, V]) Top() Entry[K, V] {
	return q.heap.entries[0]
}

// Pop removes and returns the minimum entry. Panics if empty.
func (q *PriorityQueue[K, V]) Pop() Entry[K, V] {
	return heap.Pop(&q.heap).(Entry[K, V])
}

// Empty reports whether the queue has no entries.
func (q *PriorityQueue[K, V]) Empty() bool { return len(q.heap.entries) == 0 }

// Size returns the number of entries currently queued.
func (q *PriorityQueue[K, V]) Size() int { return len(q.heap.entries) }

// Clear removes every entry.
func (q *PriorityQueue[K, V]) Clear() { q.heap.entries = nil }

// TopValue returns the value half of Top(), satisfying SubQueue.
func (q *PriorityQueue[K, V]) TopValue() V { return q.Top().Value }

// PopValue returns the value half of Pop(), satisfying SubQueue.
func (q *PriorityQueue[K, V]) PopValue() V { return q.Pop().Value }

// innerHeap adapts PriorityQueue to container/heap.Interface.
type innerHeap[K any, V any] struct {
	entries []Entry[K, V]
	less    func(a, b K) bool
}

func (h innerHeap[K, V]) Len() int { return len(h.entries) }
func (h innerHeap[K, V]) Less(i, j int) bool {
	return h.less(h.entries[i].Key, h.entries[j].Key)
}
func (h innerHeap[K, V]) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *innerHeap[K, V]) Push(x interface{}) {
	h.entries = append(h.entries, x.(Entry[K, V]))
}

func (h *innerHeap[K, V]) Pop() interface{} {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[:n-1]
	return item
}
