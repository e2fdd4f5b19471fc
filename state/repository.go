package state

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/simonstahlberg/mimir-go/axiom"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchutil"
)

// StateRepository interns PackedState values, closes every state under
// axioms before handing it to a caller, and tracks which fluent/derived
// atoms have ever appeared in a reached state.
type StateRepository struct {
	repo problem.ProblemRepository
	ax   axiom.Evaluator

	interned map[string]index.StateIndex
	states   *index.SegmentedVector[packedstate.PackedState]

	reachedFluent  *roaring.Bitmap
	reachedDerived *roaring.Bitmap
}

// NewStateRepository builds an empty repository over repo, closing every
// state with the axiom.Evaluator opts.SearchMode selects.
func NewStateRepository(repo problem.ProblemRepository, opts config.Options) *StateRepository {
	return &StateRepository{
		repo:           repo,
		ax:             axiom.New(repo, opts),
		interned:       make(map[string]index.StateIndex),
		states:         index.NewSegmentedVector[packedstate.PackedState](),
		reachedFluent:  roaring.New(),
		reachedDerived: roaring.New(),
	}
}

// intern returns the canonical State for packed and whether it was newly
// created, creating a new entry if this is the first time an equal
// PackedState has been seen.
func (r *StateRepository) intern(packed packedstate.PackedState) (packedstate.State, bool) {
	key := packed.Key()
	if idx, ok := r.interned[key]; ok {
		return packedstate.State{Index: idx, Packed: r.statePtr(idx), Problem: r.repo}, false
	}

	idx := index.StateIndex(r.states.Len())
	r.states.PushBack(packed)
	r.interned[key] = idx

	for _, a := range packed.FluentAtoms {
		r.reachedFluent.Add(uint32(a))
	}
	for _, a := range packed.DerivedAtoms {
		r.reachedDerived.Add(uint32(a))
	}

	return packedstate.State{Index: idx, Packed: r.statePtr(idx), Problem: r.repo}, true
}

// statePtr returns a pointer into the segmented vector's backing storage
// for idx. The pointer remains valid because SegmentedVector never
// reallocates a written segment.
func (r *StateRepository) statePtr(idx index.StateIndex) *packedstate.PackedState {
	return r.states.Ptr(int(idx))
}

// GetOrCreateInitialState applies the problem's initial literals and
// numeric assignments to an empty packed state, closes it under axioms,
// and interns it. The returned metric is evaluated on the closed state.
func (r *StateRepository) GetOrCreateInitialState() (packedstate.State, float64, error) {
	fluentAtoms, numeric := r.repo.InitialState()
	packed := packedstate.NewPackedState()
	packed.SetFluentAtoms(append([]index.AtomIndex(nil), fluentAtoms...))
	packed.Numeric = append([]float64(nil), numeric...)
	r.ax.Close(&packed)

	metric := r.repo.EvaluateMetric(&packed)
	if math.IsNaN(metric) {
		return packedstate.State{}, 0, searchutil.ErrMetricIsNaN
	}

	s, _ := r.intern(packed)
	return s, metric, nil
}

// GetOrCreateSuccessorState applies action's effects to state, closes
// the result under axioms, and interns it. isNew reports whether this
// call created a new interned state (false for a re-derivation of a
// state reachable by some other path).
func (r *StateRepository) GetOrCreateSuccessorState(state packedstate.State, action problem.GroundAction, currentMetric float64) (succState packedstate.State, metric float64, isNew bool, err error) {
	succ := r.repo.ApplyEffects(state.Packed, action)
	r.ax.Close(&succ)

	metric = r.repo.EvaluateMetric(&succ)
	if math.IsNaN(metric) {
		return packedstate.State{}, 0, false, searchutil.ErrMetricIsNaN
	}

	succState, isNew = r.intern(succ)
	return succState, metric, isNew, nil
}

// GetState looks up an already-interned packed state without creating a
// new entry, reporting false if it has never been seen.
func (r *StateRepository) GetState(packed *packedstate.PackedState) (packedstate.State, bool) {
	idx, ok := r.interned[packed.Key()]
	if !ok {
		return packedstate.State{}, false
	}
	return packedstate.State{Index: idx, Packed: r.statePtr(idx), Problem: r.repo}, true
}

// IsNewState reports whether packed has not yet been interned. It is a
// read-only probe used by pruning strategies that must distinguish a
// freshly-discovered successor from a re-derivation of a known state.
func (r *StateRepository) IsNewState(packed *packedstate.PackedState) bool {
	_, ok := r.interned[packed.Key()]
	return !ok
}

// StateByIndex returns the State for an already-interned StateIndex.
// Panics if idx >= StateCount().
func (r *StateRepository) StateByIndex(idx index.StateIndex) packedstate.State {
	return packedstate.State{Index: idx, Packed: r.statePtr(idx), Problem: r.repo}
}

// StateCount returns the number of distinct states interned so far.
func (r *StateRepository) StateCount() int { return r.states.Len() }

// ReachedFluentGroundAtoms returns the bitmap of fluent atom indices that
// have appeared positively in any interned state.
func (r *StateRepository) ReachedFluentGroundAtoms() *roaring.Bitmap { return r.reachedFluent }

// ReachedDerivedGroundAtoms returns the bitmap of derived atom indices
// that have appeared positively in any interned state.
func (r *StateRepository) ReachedDerivedGroundAtoms() *roaring.Bitmap { return r.reachedDerived }
