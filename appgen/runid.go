package appgen

import "github.com/google/uuid"

// NewRunID mints a fresh identifier for one top-level search invocation,
// threaded as the runID argument every brfs/astar/gbfs/iw/siw constructor
// accepts so its EventHandler callbacks and log lines can be correlated
// back to a single run.
func NewRunID() string {
	return uuid.NewString()
}
