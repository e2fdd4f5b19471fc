package appgen

import "github.com/simonstahlberg/mimir-go/problem"

// sliceActionIterator adapts a pre-computed action slice to
// problem.ActionIterator, shared by LiftedGenerator and GroundedGenerator
// once either has resolved a query to a concrete match list.
type sliceActionIterator struct {
	actions []problem.GroundAction
	pos     int
}

func (it *sliceActionIterator) Next() bool {
	it.pos++
	return it.pos <= len(it.actions)
}

func (it *sliceActionIterator) Action() problem.GroundAction {
	return it.actions[it.pos-1]
}
