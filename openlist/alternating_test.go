package openlist

import "testing"

func newIntQueue(values ...int) *PriorityQueue[int, int] {
	q := NewPriorityQueue[int, int](func(a, b int) bool { return a < b })
	for _, v := range values {
		q.Insert(v, v)
	}
	return q
}

func TestAlternatingOpenListRoundRobinsByWeight(t *testing.T) {
	q0 := newIntQueue(100, 101, 102, 103)
	q1 := newIntQueue(200, 201)
	alt := NewAlternatingOpenList[int]([]SubQueue[int]{q0, q1}, []uint32{2, 1})

	var order []int
	for !alt.Empty() {
		order = append(order, alt.Pop())
	}
	want := []int{100, 101, 200, 102, 103, 201}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestAlternatingOpenListSkipsEmptyQueues(t *testing.T) {
	q0 := newIntQueue()
	q1 := newIntQueue(1, 2)
	alt := NewAlternatingOpenList[int]([]SubQueue[int]{q0, q1}, []uint32{1, 1})
	if alt.Empty() {
		t.Fatalf("expected non-empty (q1 has entries)")
	}
	if got := alt.Pop(); got != 1 {
		t.Fatalf("Pop() = %d, want 1 (q0 skipped)", got)
	}
}

func TestAlternatingOpenListSizeAndClear(t *testing.T) {
	q0 := newIntQueue(1, 2, 3)
	q1 := newIntQueue(4, 5)
	alt := NewAlternatingOpenList[int]([]SubQueue[int]{q0, q1}, []uint32{1, 1})
	if alt.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", alt.Size())
	}
	alt.Clear()
	if !alt.Empty() {
		t.Fatalf("expected empty after Clear")
	}
}
