// Package packedstate defines the compact, interned state representation
// shared by every component of the search substrate: PackedState (the
// hashing/interning unit) and State (a non-owning view over a PackedState
// plus the StateIndex assigned to it by a StateRepository).
package packedstate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/simonstahlberg/mimir-go/index"
)

// Owner is the minimal contract a State's back-pointer must satisfy. A
// concrete problem.ProblemRepository implementation always satisfies this
// interface; it is declared here (rather than imported from package
// problem) so that packedstate has no dependency on problem, and problem
// can freely depend on packedstate for its ApplyEffects/EvaluateMetric
// signatures without an import cycle.
type Owner interface {
	// ProblemName identifies the owning problem instance, e.g. for
	// diagnostics and for FaithfulAbstraction's per-problem batch mode.
	ProblemName() string
}

// PackedState is the compact, bit-efficient per-state record: two sorted
// sets of AtomIndex (fluent-positive, derived-positive; static-positive
// atoms are not stored per-state because they are identical for every
// state of a problem) plus a sequence of numeric-variable values.
//
// Equality is structural and Hash is computed over the same structural
// tuple, so two PackedStates are interchangeable for interning purposes
// iff they compare Equal.
type PackedState struct {
	FluentAtoms  []index.AtomIndex
	DerivedAtoms []index.AtomIndex
	Numeric      []float64
}

// NewPackedState returns an empty packed state with no atoms and no
// numeric variables assigned.
func NewPackedState() PackedState {
	return PackedState{}
}

// sortAndDedupe canonicalizes a positive-atom set in place: sorted
// ascending, no duplicates. Both fields of PackedState must always be
// stored this way; Equal and Hash both assume it.
func sortAndDedupe(atoms []index.AtomIndex) []index.AtomIndex {
	sort.Slice(atoms, func(i, j int) bool { return atoms[i] < atoms[j] })
	out := atoms[:0]
	var prev index.AtomIndex
	havePrev := false
	for _, a := range atoms {
		if havePrev && a == prev {
			continue
		}
		out = append(out, a)
		prev = a
		havePrev = true
	}
	return out
}

// SetFluentAtoms canonicalizes and stores the fluent-positive atom set.
func (p *PackedState) SetFluentAtoms(atoms []index.AtomIndex) {
	p.FluentAtoms = sortAndDedupe(atoms)
}

// SetDerivedAtoms canonicalizes and stores the derived-positive atom set.
func (p *PackedState) SetDerivedAtoms(atoms []index.AtomIndex) {
	p.DerivedAtoms = sortAndDedupe(atoms)
}

// HasFluentAtom reports whether idx is present via binary search (the set
// is kept sorted by SetFluentAtoms).
func (p *PackedState) HasFluentAtom(idx index.AtomIndex) bool {
	return containsSorted(p.FluentAtoms, idx)
}

// HasDerivedAtom reports whether idx is present via binary search.
func (p *PackedState) HasDerivedAtom(idx index.AtomIndex) bool {
	return containsSorted(p.DerivedAtoms, idx)
}

func containsSorted(atoms []index.AtomIndex, idx index.AtomIndex) bool {
	i := sort.Search(len(atoms), func(i int) bool { return atoms[i] >= idx })
	return i < len(atoms) && atoms[i] == idx
}

// Equal reports structural equality: identical fluent atoms, identical
// derived atoms, identical numeric values.
func (p *PackedState) Equal(other *PackedState) bool {
	return equalAtomSlices(p.FluentAtoms, other.FluentAtoms) &&
		equalAtomSlices(p.DerivedAtoms, other.DerivedAtoms) &&
		equalFloatSlices(p.Numeric, other.Numeric)
}

func equalAtomSlices(a, b []index.AtomIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloatSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Key renders a PackedState into a string suitable as a map key for
// interning. It is not meant to be parsed back; only equal PackedStates
// produce equal keys.
func (p *PackedState) Key() string {
	var sb strings.Builder
	for _, a := range p.FluentAtoms {
		sb.WriteByte('f')
		sb.WriteString(strconv.FormatUint(uint64(a), 10))
		sb.WriteByte(',')
	}
	sb.WriteByte('|')
	for _, a := range p.DerivedAtoms {
		sb.WriteByte('d')
		sb.WriteString(strconv.FormatUint(uint64(a), 10))
		sb.WriteByte(',')
	}
	sb.WriteByte('|')
	for _, v := range p.Numeric {
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		sb.WriteByte(',')
	}
	return sb.String()
}

// Clone returns a deep copy safe to mutate independently of p.
func (p *PackedState) Clone() PackedState {
	out := PackedState{
		FluentAtoms:  append([]index.AtomIndex(nil), p.FluentAtoms...),
		DerivedAtoms: append([]index.AtomIndex(nil), p.DerivedAtoms...),
		Numeric:      append([]float64(nil), p.Numeric...),
	}
	return out
}

// State is a non-owning view over a PackedState interned by a
// StateRepository, plus the StateIndex assigned to it at interning time
// and a back-pointer to its owning problem. StateRepository exclusively
// owns the PackedState memory; State values are cheap to copy.
type State struct {
	Index   index.StateIndex
	Packed  *PackedState
	Problem Owner
}

// IsValid reports whether the State carries a packed-state pointer.
func (s State) IsValid() bool { return s.Packed != nil }
