package index

// MaxIndex is the all-ones sentinel meaning "no index" / "none".
const MaxIndex uint32 = ^uint32(0)

// AtomIndex identifies a fully-ground atom within a Problem's atom universe.
type AtomIndex uint32

// ActionIndex identifies a ground action within a Problem.
type ActionIndex uint32

// AxiomIndex identifies a ground axiom within a Problem.
type AxiomIndex uint32

// ObjectIndex identifies a typed object within a Problem.
type ObjectIndex uint32

// StateIndex identifies a state within a StateRepository. StateIndex values
// are contiguous in insertion order: a state's StateIndex equals its
// position in the repository.
type StateIndex uint32

// EdgeIndex identifies an edge within a graph-shaped artifact (StateSpace,
// GeneralizedStateSpace, TupleGraph).
type EdgeIndex uint32

// VertexIndex identifies a vertex within a graph-shaped artifact
// (StateSpace, GeneralizedStateSpace, TupleGraph). It is distinct from
// StateIndex because, under symmetry pruning, several StateIndex values
// (isomorphic states) can map to a single VertexIndex.
type VertexIndex uint32

// IsNone reports whether idx is the MaxIndex sentinel.
func (a AtomIndex) IsNone() bool { return uint32(a) == MaxIndex }

// IsNone reports whether idx is the MaxIndex sentinel.
func (a ActionIndex) IsNone() bool { return uint32(a) == MaxIndex }

// IsNone reports whether idx is the MaxIndex sentinel.
func (a AxiomIndex) IsNone() bool { return uint32(a) == MaxIndex }

// IsNone reports whether idx is the MaxIndex sentinel.
func (a ObjectIndex) IsNone() bool { return uint32(a) == MaxIndex }

// IsNone reports whether idx is the MaxIndex sentinel. A root SearchNode's
// parent_state uses this to mean "no parent".
func (a StateIndex) IsNone() bool { return uint32(a) == MaxIndex }

// IsNone reports whether idx is the MaxIndex sentinel.
func (a EdgeIndex) IsNone() bool { return uint32(a) == MaxIndex }

// IsNone reports whether idx is the MaxIndex sentinel.
func (a VertexIndex) IsNone() bool { return uint32(a) == MaxIndex }

// NoneState is the canonical "no parent state" StateIndex value.
const NoneState = StateIndex(MaxIndex)

// NoneVertex is the canonical "no vertex" VertexIndex value.
const NoneVertex = VertexIndex(MaxIndex)
