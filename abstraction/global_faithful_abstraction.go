package abstraction

import "github.com/simonstahlberg/mimir-go/index"

// GlobalStateIndex identifies a vertex in a GlobalFaithfulAbstraction's
// flattened index space, contiguous across every contributing
// FaithfulAbstraction.
type GlobalStateIndex int

// GlobalFaithfulAbstraction flattens a collection of per-problem
// FaithfulAbstractions into one contiguous global vertex index space, so
// a caller working across many abstracted problems at once can refer to
// "global state N" without separately tracking which abstraction and
// local class vertex backs it. It performs no cross-abstraction
// deduplication of its own: two abstractions built from unrelated
// problems keep distinct global indices even if their certificates
// happen to coincide, since certificate equivalence is only meaningful
// within one canonical.ObjectGraph run.
type GlobalFaithfulAbstraction struct {
	abstractions []*FaithfulAbstraction
	offsets      []GlobalStateIndex
	total        GlobalStateIndex
}

// NewGlobalFaithfulAbstraction builds the flat index over abstractions in
// the given order. The order is significant: it determines every
// abstraction's offset into the global index space.
func NewGlobalFaithfulAbstraction(abstractions []*FaithfulAbstraction) *GlobalFaithfulAbstraction {
	offsets := make([]GlobalStateIndex, len(abstractions))
	var next GlobalStateIndex
	for i, fa := range abstractions {
		offsets[i] = next
		next += GlobalStateIndex(fa.NumVertices())
	}
	return &GlobalFaithfulAbstraction{abstractions: abstractions, offsets: offsets, total: next}
}

// NumAbstractions returns the number of abstractions folded into this
// index.
func (g *GlobalFaithfulAbstraction) NumAbstractions() int { return len(g.abstractions) }

// NumGlobalStates returns the total vertex count across every
// contributing abstraction.
func (g *GlobalFaithfulAbstraction) NumGlobalStates() int { return int(g.total) }

// Abstraction returns the FaithfulAbstraction at position i, as supplied
// to NewGlobalFaithfulAbstraction.
func (g *GlobalFaithfulAbstraction) Abstraction(i int) *FaithfulAbstraction { return g.abstractions[i] }

// ToGlobal maps a (abstraction index, local class vertex) pair to its
// flat global index.
func (g *GlobalFaithfulAbstraction) ToGlobal(abstraction int, local index.VertexIndex) GlobalStateIndex {
	return g.offsets[abstraction] + GlobalStateIndex(local)
}

// FromGlobal maps a flat global index back to the (abstraction index,
// local class vertex) pair it came from. Panics if global is out of
// range, since every valid global index was produced by ToGlobal over a
// vertex that actually exists in some contributing abstraction.
func (g *GlobalFaithfulAbstraction) FromGlobal(global GlobalStateIndex) (abstraction int, local index.VertexIndex) {
	if global >= g.total {
		panic("abstraction: global state index out of range")
	}
	for i := len(g.offsets) - 1; i >= 0; i-- {
		if global >= g.offsets[i] {
			return i, index.VertexIndex(global - g.offsets[i])
		}
	}
	panic("abstraction: global state index out of range")
}
