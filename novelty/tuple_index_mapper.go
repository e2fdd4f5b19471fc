package novelty

import (
	"errors"

	"github.com/simonstahlberg/mimir-go/index"
)

// MaxArity is the largest tuple arity supported.
const MaxArity = 5

// ErrArityOutOfRange is returned when arity is not in [0, MaxArity].
var ErrArityOutOfRange = errors.New("novelty: arity out of range")

// TupleIndex is the mixed-radix integer encoding of a sorted k-tuple of
// atom indices.
type TupleIndex uint64

// TupleIndexMapper is an injective encoding of a sorted k-tuple of atom
// indices into a single TupleIndex via a mixed-radix factor table. Each
// of the k digit positions ranges over [0, numAtoms]: the values
// [0, numAtoms) are real atom indices, and numAtoms itself is the
// reserved placeholder digit that lets a tuple of size < arity be encoded
// by padding its trailing positions. The base of the mixed-radix system
// is therefore numAtoms+1, not numAtoms — see DESIGN.md for why
// base=numAtoms+1 is the only choice under which
// ToAtomIndices(ToTupleIndex(xs)) round-trips.
type TupleIndexMapper struct {
	arity    int
	numAtoms int
	factors  [MaxArity]uint64
	empty    TupleIndex
}

// NewTupleIndexMapper builds a mapper for the given arity and atom
// universe size.
func NewTupleIndexMapper(arity, numAtoms int) (*TupleIndexMapper, error) {
	if arity < 0 || arity > MaxArity {
		return nil, ErrArityOutOfRange
	}
	m := &TupleIndexMapper{}
	m.initialize(arity, numAtoms)
	return m, nil
}

// initialize (re)computes factors and the empty-tuple index for a given
// (arity, numAtoms) pair; used both by the constructor and by
// DynamicNoveltyTable's doubling resize.
func (m *TupleIndexMapper) initialize(arity, numAtoms int) {
	m.arity = arity
	m.numAtoms = numAtoms
	base := uint64(numAtoms) + 1
	factor := uint64(1)
	for i := 0; i < arity; i++ {
		m.factors[i] = factor
		factor *= base
	}
	m.empty = TupleIndex(0)
	placeholder := uint64(numAtoms)
	for i := 0; i < arity; i++ {
		m.empty += TupleIndex(placeholder * m.factors[i])
	}
}

// Arity returns the tuple size this mapper encodes.
func (m *TupleIndexMapper) Arity() int { return m.arity }

// NumAtoms returns the atom-universe size this mapper was built for.
func (m *TupleIndexMapper) NumAtoms() int { return m.numAtoms }

// EmptyTupleIndex is the all-placeholder encoding: the tuple index every
// state maps to at arity 0, and the padding value used by shorter
// tuples at higher arities.
func (m *TupleIndexMapper) EmptyTupleIndex() TupleIndex { return m.empty }

// MaxTupleIndex returns the largest representable TupleIndex, i.e.
// (numAtoms+1)^arity - 1.
func (m *TupleIndexMapper) MaxTupleIndex() TupleIndex {
	base := uint64(m.numAtoms) + 1
	total := uint64(1)
	for i := 0; i < m.arity; i++ {
		total *= base
	}
	return TupleIndex(total - 1)
}

// ToTupleIndex encodes a sorted tuple of at most Arity() atom indices.
// Positions beyond len(atoms) are padded with the placeholder digit.
func (m *TupleIndexMapper) ToTupleIndex(atoms []index.AtomIndex) TupleIndex {
	var idx uint64
	placeholder := uint64(m.numAtoms)
	for i := 0; i < m.arity; i++ {
		digit := placeholder
		if i < len(atoms) {
			digit = uint64(atoms[i])
		}
		idx += digit * m.factors[i]
	}
	return TupleIndex(idx)
}

// ToAtomIndices decodes tupleIndex back into its (possibly padded) sorted
// atom-index tuple, peeling off the largest factor first and dropping
// placeholder digits.
func (m *TupleIndexMapper) ToAtomIndices(tupleIndex TupleIndex) []index.AtomIndex {
	out := make([]index.AtomIndex, 0, m.arity)
	remaining := uint64(tupleIndex)
	placeholder := uint64(m.numAtoms)
	for i := m.arity - 1; i >= 0; i-- {
		digit := remaining / m.factors[i]
		remaining %= m.factors[i]
		if digit != placeholder {
			out = append(out, index.AtomIndex(digit))
		}
	}
	// Digits were peeled off largest-factor-first (highest tuple
	// position first); reverse to restore ascending order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
