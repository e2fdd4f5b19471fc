package searchutil

import "github.com/simonstahlberg/mimir-go/index"

// SearchStatus is the exit code every search algorithm reports.
// IN_PROGRESS never escapes an algorithm's return value; it exists only
// as the zero value while a search is running.
type SearchStatus int

const (
	// InProgress is the zero value; a running search has not yet reached
	// a terminal status.
	InProgress SearchStatus = iota
	// Solved means a goal state was found and a plan was extracted.
	Solved
	// Unsolvable means the static goal test failed before any expansion.
	Unsolvable
	// Exhausted means the open list ran dry without finding a goal.
	Exhausted
	// OutOfTime means a StopWatch elapsed mid-search.
	OutOfTime
	// OutOfStates means max_num_states was reached.
	OutOfStates
	// Failed is a catch-all for algorithm-specific failure conditions
	// (e.g. a collaborator returned an error mid-search).
	Failed
)

// String renders the status for logs and test failure messages.
func (s SearchStatus) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Solved:
		return "SOLVED"
	case Unsolvable:
		return "UNSOLVABLE"
	case Exhausted:
		return "EXHAUSTED"
	case OutOfTime:
		return "OUT_OF_TIME"
	case OutOfStates:
		return "OUT_OF_STATES"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// PlanStep is one (action, resulting state) pair in a totally-ordered
// plan, recovered by walking the search nodes' parent pointers back from
// the goal state.
type PlanStep struct {
	Action    index.ActionIndex
	ActionCost float64
	Resulting index.StateIndex
}

// SearchResult is the envelope every algorithm returns.
type SearchResult struct {
	Status     SearchStatus
	Plan       []PlanStep
	GoalState  index.StateIndex
	Cost       float64
	RunID      string
}
