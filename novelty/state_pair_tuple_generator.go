package novelty

import "github.com/simonstahlberg/mimir-go/index"

// GenerateStatePairTupleIndices returns every tuple index of a size-≤k
// subset of previouslyTrue ∪ newlyTrue that contains at least one atom
// from newlyTrue. Both inputs must be sorted ascending and disjoint (true
// of FluentAndDerivedMapper's pair-remap output, since an atom cannot be
// both "already true before the transition" and "newly true after it").
//
// This walks every size-m combination via forEachCombination and filters
// by hasNew after the fact, rather than generating only
// contains-at-least-one-new-atom combinations directly with a two-level
// mask/index-jumper that skips all-previously-true subsets up front.
// Behaviorally equivalent; the jumper variant amortizes better for large
// arities since it never visits a combination only to discard it.
func GenerateStatePairTupleIndices(mapper *TupleIndexMapper, previouslyTrue, newlyTrue []index.AtomIndex) []TupleIndex {
	merged := make([]index.AtomIndex, 0, len(previouslyTrue)+len(newlyTrue))
	isNew := make([]bool, 0, cap(merged))
	i, j := 0, 0
	for i < len(previouslyTrue) || j < len(newlyTrue) {
		switch {
		case j >= len(newlyTrue) || (i < len(previouslyTrue) && previouslyTrue[i] < newlyTrue[j]):
			merged = append(merged, previouslyTrue[i])
			isNew = append(isNew, false)
			i++
		default:
			merged = append(merged, newlyTrue[j])
			isNew = append(isNew, true)
			j++
		}
	}

	var out []TupleIndex
	k := mapper.Arity()
	buf := make([]index.AtomIndex, 0, k)
	for m := 1; m <= k; m++ {
		forEachCombination(len(merged), m, func(positions []int) {
			hasNew := false
			buf = buf[:0]
			for _, p := range positions {
				buf = append(buf, merged[p])
				if isNew[p] {
					hasNew = true
				}
			}
			if hasNew {
				out = append(out, mapper.ToTupleIndex(buf))
			}
		})
	}
	return out
}
