package novelty

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
)

// DynamicNoveltyTable tracks which tuple indices have been witnessed by
// any state tested so far, at a fixed arity, auto-growing its atom
// universe (and therefore its mapper and bit array) whenever an unseen
// atom index exceeds current capacity. The bit array is backed by
// github.com/bits-and-blooms/bitset.
type DynamicNoveltyTable struct {
	atomMapper  *FluentAndDerivedMapper
	tupleMapper *TupleIndexMapper
	bits        *bitset.BitSet
	arity       int
}

// NewDynamicNoveltyTable returns a table for the given arity, sized for
// an initial atom universe of initialNumAtoms (grown later as needed).
func NewDynamicNoveltyTable(arity, initialNumAtoms int) (*DynamicNoveltyTable, error) {
	if initialNumAtoms < 1 {
		initialNumAtoms = 1
	}
	mapper, err := NewTupleIndexMapper(arity, initialNumAtoms)
	if err != nil {
		return nil, err
	}
	return &DynamicNoveltyTable{
		atomMapper:  NewFluentAndDerivedMapper(),
		tupleMapper: mapper,
		bits:        bitset.New(uint(mapper.MaxTupleIndex()) + 1),
		arity:       arity,
	}, nil
}

// resizeToFit doubles the table's atom universe until it can represent
// denseAtomID, rebuilding the tuple mapper and translating every
// witnessed tuple index through the new mapper. Translation is exact
// because a tuple's real (non-placeholder) atoms keep their dense ids
// across a resize; only the placeholder digit and the base change.
func (t *DynamicNoveltyTable) resizeToFit(denseAtomID int) {
	if denseAtomID < t.tupleMapper.NumAtoms() {
		return
	}
	newNumAtoms := t.tupleMapper.NumAtoms()
	for denseAtomID >= newNumAtoms {
		newNumAtoms *= 2
	}

	oldMapper := t.tupleMapper
	newMapper, _ := NewTupleIndexMapper(t.arity, newNumAtoms)
	newBits := bitset.New(uint(newMapper.MaxTupleIndex()) + 1)

	for tupleIdx, ok := t.bits.NextSet(0); ok; tupleIdx, ok = t.bits.NextSet(tupleIdx + 1) {
		atoms := oldMapper.ToAtomIndices(TupleIndex(tupleIdx))
		newBits.Set(uint(newMapper.ToTupleIndex(atoms)))
	}

	t.tupleMapper = newMapper
	t.bits = newBits
}

func (t *DynamicNoveltyTable) maxDenseID(atoms []index.AtomIndex) int {
	max := -1
	for _, a := range atoms {
		if int(a) > max {
			max = int(a)
		}
	}
	return max
}

// TestNoveltyAndUpdateTable tests state alone: OR-ing novelty across its
// generated tuple indices, then setting every corresponding bit. It
// returns true iff at least one tuple index was previously unwitnessed.
func (t *DynamicNoveltyTable) TestNoveltyAndUpdateTable(state *packedstate.PackedState) bool {
	return t.markNovel(t.NovelTupleIndices(state))
}

// NovelTupleIndices returns, without marking anything, the subset of
// state's generated tuple indices not yet witnessed by the table. This
// is TestNoveltyAndUpdateTable's test half, split out so a caller (the
// tuple-graph builder) can test every state of a BrFS layer against the
// same committed table before any of that layer's own discoveries are
// folded in, letting two states in one layer share credit for the same
// newly-novel tuple instead of only the first one seeing it as novel.
func (t *DynamicNoveltyTable) NovelTupleIndices(state *packedstate.PackedState) []TupleIndex {
	combined := t.atomMapper.RemapAndCombineAndSort(state.FluentAtoms, state.DerivedAtoms)
	if max := t.maxDenseID(combined); max >= 0 {
		t.resizeToFit(max)
	}
	tuples := GenerateStateTupleIndices(t.tupleMapper, combined)
	var novel []TupleIndex
	for _, ti := range tuples {
		if !t.bits.Test(uint(ti)) {
			novel = append(novel, ti)
		}
	}
	return novel
}

// MarkTuples sets every tuple index in tuples as witnessed, the commit
// half of the peek/commit split NovelTupleIndices enables.
func (t *DynamicNoveltyTable) MarkTuples(tuples []TupleIndex) {
	for _, ti := range tuples {
		t.bits.Set(uint(ti))
	}
}

// AtomsForTuple decodes a tuple index back into the original
// fluent/derived atom indices it was generated from, used by tuplegraph
// to label a vertex with the atoms that made it novel.
func (t *DynamicNoveltyTable) AtomsForTuple(ti TupleIndex) []index.AtomIndex {
	dense := t.tupleMapper.ToAtomIndices(ti)
	atoms := make([]index.AtomIndex, len(dense))
	for i, d := range dense {
		original, _ := t.atomMapper.Inverse(d)
		atoms[i] = original
	}
	return atoms
}

// TestNoveltyAndUpdateTablePair is the state-pair overload: novelty of
// the transition (state, succState), driven by StatePairTupleIndexGenerator.
func (t *DynamicNoveltyTable) TestNoveltyAndUpdateTablePair(state, succState *packedstate.PackedState) bool {
	previouslyTrue, newlyTrue := t.atomMapper.RemapAndSplit(state.FluentAtoms, state.DerivedAtoms, succState.FluentAtoms, succState.DerivedAtoms)
	max := t.maxDenseID(previouslyTrue)
	if m2 := t.maxDenseID(newlyTrue); m2 > max {
		max = m2
	}
	if max >= 0 {
		t.resizeToFit(max)
	}
	tuples := GenerateStatePairTupleIndices(t.tupleMapper, previouslyTrue, newlyTrue)
	return t.markNovel(tuples)
}

func (t *DynamicNoveltyTable) markNovel(tuples []TupleIndex) bool {
	novel := false
	for _, ti := range tuples {
		if !t.bits.Test(uint(ti)) {
			novel = true
			t.bits.Set(uint(ti))
		}
	}
	return novel
}

// Reset clears every witnessed tuple without discarding the atom/tuple
// mappers.
func (t *DynamicNoveltyTable) Reset() {
	t.bits.ClearAll()
}
