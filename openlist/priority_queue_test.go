package openlist

import "testing"

func TestPriorityQueueOrdersByKeyAscending(t *testing.T) {
	pq := NewPriorityQueue[int, string](func(a, b int) bool { return a < b })
	pq.Insert(5, "five")
	pq.Insert(1, "one")
	pq.Insert(3, "three")

	if pq.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", pq.Size())
	}
	want := []string{"one", "three", "five"}
	for _, w := range want {
		if pq.Empty() {
			t.Fatalf("queue emptied early")
		}
		if got := pq.PopValue(); got != w {
			t.Fatalf("PopValue() = %q, want %q", got, w)
		}
	}
	if !pq.Empty() {
		t.Fatalf("expected empty queue")
	}
}

func TestPriorityQueueTupleKey(t *testing.T) {
	type key struct{ f, g, step int }
	less := func(a, b key) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		if a.g != b.g {
			return a.g > b.g // prefer larger g among equal f
		}
		return a.step < b.step // earlier insertion wins ties
	}
	pq := NewPriorityQueue[key, string](less)
	pq.Insert(key{f: 5, g: 2, step: 1}, "a")
	pq.Insert(key{f: 5, g: 3, step: 2}, "b")
	pq.Insert(key{f: 2, g: 0, step: 3}, "c")

	if got := pq.PopValue(); got != "c" {
		t.Fatalf("first pop = %q, want c (smallest f)", got)
	}
	if got := pq.PopValue(); got != "b" {
		t.Fatalf("second pop = %q, want b (larger g tie-break)", got)
	}
}
