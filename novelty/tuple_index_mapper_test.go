package novelty

import (
	"testing"

	"github.com/simonstahlberg/mimir-go/index"
)

func TestTupleIndexMapperRoundTrip(t *testing.T) {
	m, err := NewTupleIndexMapper(3, 10)
	if err != nil {
		t.Fatalf("NewTupleIndexMapper: %v", err)
	}
	cases := [][]index.AtomIndex{
		{},
		{2},
		{1, 5},
		{0, 4, 9},
	}
	for _, xs := range cases {
		ti := m.ToTupleIndex(xs)
		got := m.ToAtomIndices(ti)
		if len(got) != len(xs) {
			t.Fatalf("ToAtomIndices(ToTupleIndex(%v)) = %v, want %v", xs, got, xs)
		}
		for i := range xs {
			if got[i] != xs[i] {
				t.Fatalf("ToAtomIndices(ToTupleIndex(%v)) = %v, want %v", xs, got, xs)
			}
		}
	}
}

func TestTupleIndexMapperArityZeroIsConstant(t *testing.T) {
	m, err := NewTupleIndexMapper(0, 10)
	if err != nil {
		t.Fatalf("NewTupleIndexMapper: %v", err)
	}
	if m.ToTupleIndex(nil) != m.EmptyTupleIndex() {
		t.Fatalf("arity-0 ToTupleIndex should always equal EmptyTupleIndex")
	}
}

func TestNewTupleIndexMapperRejectsBadArity(t *testing.T) {
	if _, err := NewTupleIndexMapper(-1, 10); err != ErrArityOutOfRange {
		t.Fatalf("expected ErrArityOutOfRange for negative arity")
	}
	if _, err := NewTupleIndexMapper(MaxArity+1, 10); err != ErrArityOutOfRange {
		t.Fatalf("expected ErrArityOutOfRange for arity > MaxArity")
	}
}
