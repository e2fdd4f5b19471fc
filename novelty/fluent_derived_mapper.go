package novelty

import (
	"sort"

	"github.com/simonstahlberg/mimir-go/index"
)

// FluentAndDerivedMapper assigns a dense [0, N) id to each distinct
// observed fluent or derived atom index, the first time it is seen, and
// remembers which universe (fluent or derived) it came from. Its
// combined, sorted output vector is what the tuple generators and
// DynamicNoveltyTable operate on; the mapper exists so the novelty
// subsystem's tuple-index space stays tight even when the underlying
// fluent/derived atom index spaces are sparse.
type FluentAndDerivedMapper struct {
	fluentRemap  map[index.AtomIndex]index.AtomIndex
	derivedRemap map[index.AtomIndex]index.AtomIndex
	inverse      []inverseEntry
}

type inverseEntry struct {
	original index.AtomIndex
	derived  bool
}

// NewFluentAndDerivedMapper returns an empty mapper.
func NewFluentAndDerivedMapper() *FluentAndDerivedMapper {
	return &FluentAndDerivedMapper{
		fluentRemap:  make(map[index.AtomIndex]index.AtomIndex),
		derivedRemap: make(map[index.AtomIndex]index.AtomIndex),
	}
}

// NumObserved returns the current size of the dense id space.
func (f *FluentAndDerivedMapper) NumObserved() int { return len(f.inverse) }

func (f *FluentAndDerivedMapper) remap(original index.AtomIndex, derived bool) index.AtomIndex {
	table := f.fluentRemap
	if derived {
		table = f.derivedRemap
	}
	if id, ok := table[original]; ok {
		return id
	}
	id := index.AtomIndex(len(f.inverse))
	table[original] = id
	f.inverse = append(f.inverse, inverseEntry{original: original, derived: derived})
	return id
}

// Inverse returns the original (fluent-or-derived, as seen at observation
// time) atom index for a dense id, used only by tuple-graph reporting.
func (f *FluentAndDerivedMapper) Inverse(id index.AtomIndex) (original index.AtomIndex, derived bool) {
	e := f.inverse[id]
	return e.original, e.derived
}

func sortedUnique(ids []index.AtomIndex) []index.AtomIndex {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := ids[:0]
	var prev index.AtomIndex
	have := false
	for _, v := range ids {
		if have && v == prev {
			continue
		}
		out = append(out, v)
		prev, have = v, true
	}
	return out
}

// RemapAndCombineAndSort produces the combined sorted dense-id vector for
// a single state's fluent and derived positive atoms.
func (f *FluentAndDerivedMapper) RemapAndCombineAndSort(fluentAtoms, derivedAtoms []index.AtomIndex) []index.AtomIndex {
	combined := make([]index.AtomIndex, 0, len(fluentAtoms)+len(derivedAtoms))
	for _, a := range fluentAtoms {
		combined = append(combined, f.remap(a, false))
	}
	for _, a := range derivedAtoms {
		combined = append(combined, f.remap(a, true))
	}
	return sortedUnique(combined)
}

// RemapAndSplit produces the (previously true, newly true) split required
// by StatePairTupleIndexGenerator: previouslyTrue is state's combined
// dense-id vector; newlyTrue is the subset of succState's combined
// dense-id vector absent from state's.
func (f *FluentAndDerivedMapper) RemapAndSplit(stateFluent, stateDerived, succFluent, succDerived []index.AtomIndex) (previouslyTrue, newlyTrue []index.AtomIndex) {
	previouslyTrue = f.RemapAndCombineAndSort(stateFluent, stateDerived)
	succCombined := f.RemapAndCombineAndSort(succFluent, succDerived)

	prevSet := make(map[index.AtomIndex]struct{}, len(previouslyTrue))
	for _, a := range previouslyTrue {
		prevSet[a] = struct{}{}
	}
	for _, a := range succCombined {
		if _, ok := prevSet[a]; !ok {
			newlyTrue = append(newlyTrue, a)
		}
	}
	return previouslyTrue, newlyTrue
}
