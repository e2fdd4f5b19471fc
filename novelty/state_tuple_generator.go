package novelty

import "github.com/simonstahlberg/mimir-go/index"

// GenerateStateTupleIndices returns every tuple index obtainable from a
// size-≤mapper.Arity() subset of atoms (a sorted, combined
// fluent+derived atom vector — see FluentAndDerivedMapper), with unused
// trailing positions padded by the mapper's placeholder digit.
func GenerateStateTupleIndices(mapper *TupleIndexMapper, atoms []index.AtomIndex) []TupleIndex {
	var out []TupleIndex
	k := mapper.Arity()
	buf := make([]index.AtomIndex, 0, k)
	for m := 0; m <= k; m++ {
		forEachCombination(len(atoms), m, func(positions []int) {
			buf = buf[:0]
			for _, p := range positions {
				buf = append(buf, atoms[p])
			}
			out = append(out, mapper.ToTupleIndex(buf))
		})
	}
	return out
}
