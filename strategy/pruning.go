package strategy

import (
	"github.com/simonstahlberg/mimir-go/novelty"
	"github.com/simonstahlberg/mimir-go/packedstate"
)

// NoPruning accepts every state, initial and successor alike.
type NoPruning struct{}

func (NoPruning) TestPruneInitialState(state *packedstate.PackedState) bool { return false }

func (NoPruning) TestPruneSuccessorState(state, succ *packedstate.PackedState, isNewSucc bool) bool {
	return false
}

// DuplicateStatePruning prunes a successor that was not newly interned by
// the state repository, i.e. one already reachable by some other path.
// The initial state is never pruned.
type DuplicateStatePruning struct{}

func (DuplicateStatePruning) TestPruneInitialState(state *packedstate.PackedState) bool { return false }

func (DuplicateStatePruning) TestPruneSuccessorState(state, succ *packedstate.PackedState, isNewSucc bool) bool {
	return !isNewSucc
}

// ArityZeroNoveltyPruning is IW(0): only the initial state is ever kept
// open, since every other state has novelty 0 by definition (no tuple of
// size 0 can ever be newly witnessed after the first state).
type ArityZeroNoveltyPruning struct{}

func (ArityZeroNoveltyPruning) TestPruneInitialState(state *packedstate.PackedState) bool { return false }

func (ArityZeroNoveltyPruning) TestPruneSuccessorState(state, succ *packedstate.PackedState, isNewSucc bool) bool {
	return true
}

// ArityKNoveltyPruning prunes any state (initial or successor) that fails
// to introduce a novel size-≤k tuple of true atoms, tracked by a
// DynamicNoveltyTable. The initial state is tested as a single state; a
// successor is tested as a (state, succ) pair so that only newly-true
// atoms can contribute a witnessing tuple.
type ArityKNoveltyPruning struct {
	table *novelty.DynamicNoveltyTable
}

// NewArityKNoveltyPruning builds a novelty pruning strategy for the given
// arity, with an initial atom-universe size hint.
func NewArityKNoveltyPruning(arity, initialNumAtoms int) (*ArityKNoveltyPruning, error) {
	table, err := novelty.NewDynamicNoveltyTable(arity, initialNumAtoms)
	if err != nil {
		return nil, err
	}
	return &ArityKNoveltyPruning{table: table}, nil
}

func (p *ArityKNoveltyPruning) TestPruneInitialState(state *packedstate.PackedState) bool {
	return !p.table.TestNoveltyAndUpdateTable(state)
}

func (p *ArityKNoveltyPruning) TestPruneSuccessorState(state, succ *packedstate.PackedState, isNewSucc bool) bool {
	return !p.table.TestNoveltyAndUpdateTablePair(state, succ)
}

// Reset clears the underlying novelty table so the pruning can be reused
// from scratch.
func (p *ArityKNoveltyPruning) Reset() {
	p.table.Reset()
}
