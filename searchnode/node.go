package searchnode

import "github.com/simonstahlberg/mimir-go/index"

// Status is a SearchNode's place in the monotone status lattice
// NEW -> OPEN -> (CLOSED | DEAD_END | GOAL), which a node may only leave
// CLOSED/GOAL for OPEN under a strict-g-improvement reopen rule.
type Status uint8

const (
	New Status = iota
	Open
	Closed
	DeadEnd
	Goal
)

func (s Status) String() string {
	switch s {
	case New:
		return "NEW"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	case DeadEnd:
		return "DEAD_END"
	case Goal:
		return "GOAL"
	default:
		return "UNKNOWN"
	}
}

// SearchNode holds one state's search metadata: its status, its parent
// in the search tree (index.NoneState for roots), and an
// algorithm-specific payload (BrFS's discrete g, A*'s (g, h), GBFS's
// (h, greedy)).
type SearchNode[P any] struct {
	Status     Status
	ParentState index.StateIndex
	Payload    P
}

// NewRootNode returns a New-status node with no parent, ready to be
// overwritten once the caller decides its actual status.
func NewRootNode[P any](payload P) SearchNode[P] {
	return SearchNode[P]{Status: New, ParentState: index.NoneState, Payload: payload}
}

// SearchNodeTable is a segmented, StateIndex-keyed table of SearchNode
// records. Reads/writes are O(1); growth preserves existing entries
// because index.SegmentedVector never reallocates a written segment.
type SearchNodeTable[P any] struct {
	nodes *index.SegmentedVector[SearchNode[P]]
}

// NewSearchNodeTable returns an empty table.
func NewSearchNodeTable[P any]() *SearchNodeTable[P] {
	return &SearchNodeTable[P]{nodes: index.NewSegmentedVector[SearchNode[P]]()}
}

// GetOrCreate returns the node for state, extending the table with
// New-status default nodes (as produced by defaultNode) for every state
// up to and including state if it has not been observed before.
func (t *SearchNodeTable[P]) GetOrCreate(state index.StateIndex, defaultNode func() SearchNode[P]) SearchNode[P] {
	pos := int(state)
	for t.nodes.Len() <= pos {
		t.nodes.PushBack(defaultNode())
	}
	return t.nodes.Get(pos)
}

// Set overwrites the node for state. The caller must have already
// brought the table up to size via GetOrCreate.
func (t *SearchNodeTable[P]) Set(state index.StateIndex, node SearchNode[P]) {
	t.nodes.Set(int(state), node)
}

// Len reports how many entries the table currently holds.
func (t *SearchNodeTable[P]) Len() int { return t.nodes.Len() }
