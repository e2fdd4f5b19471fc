package index

import "testing"

func TestSegmentedVectorPushBackAndGet(t *testing.T) {
	v := NewSegmentedVector[int]()
	const n = 5000
	for i := 0; i < n; i++ {
		pos := v.PushBack(i * 2)
		if pos != i {
			t.Fatalf("PushBack position = %d, want %d", pos, i)
		}
	}
	if v.Len() != n {
		t.Fatalf("Len() = %d, want %d", v.Len(), n)
	}
	for i := 0; i < n; i++ {
		if got := v.Get(i); got != i*2 {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i*2)
		}
	}
}

func TestSegmentedVectorSetDoesNotMoveOthers(t *testing.T) {
	v := NewSegmentedVector[string]()
	for i := 0; i < 10; i++ {
		v.PushBack("x")
	}
	v.Set(3, "y")
	if v.Get(3) != "y" || v.Get(2) != "x" || v.Get(4) != "x" {
		t.Fatalf("Set mutated unrelated positions")
	}
}

func TestSegmentedVectorGrowTo(t *testing.T) {
	v := NewSegmentedVector[int]()
	v.PushBack(1)
	v.GrowTo(10)
	if v.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", v.Len())
	}
	if v.Get(0) != 1 {
		t.Fatalf("GrowTo overwrote existing element")
	}
	if v.Get(9) != 0 {
		t.Fatalf("GrowTo did not zero-fill")
	}
}

func TestLocateAcrossSegmentBoundaries(t *testing.T) {
	cases := []int{0, 1, initialSegmentSize - 1, initialSegmentSize, initialSegmentSize*3 - 1, initialSegmentSize * 3}
	seenSeg := map[int]bool{}
	for _, pos := range cases {
		seg, offset := locate(pos)
		if offset < 0 || offset >= segmentCapacity(seg) {
			t.Fatalf("locate(%d) = (seg=%d, offset=%d) out of bounds", pos, seg, offset)
		}
		seenSeg[seg] = true
	}
	if len(seenSeg) < 2 {
		t.Fatalf("expected test cases to span multiple segments")
	}
}
