package eventhandler

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/searchutil"
)

// EventHandler is the observer every search algorithm drives. No method
// may block or mutate shared state beyond the handler's own bookkeeping;
// algorithms call these synchronously on the search goroutine.
type EventHandler interface {
	OnStartSearch(initial packedstate.State)
	OnExpandState(state packedstate.State)
	OnExpandGoalState(state packedstate.State)
	OnGenerateState(parent packedstate.State, action index.ActionIndex, cost float64, succ packedstate.State)
	OnGenerateStateRelaxed(parent packedstate.State, action index.ActionIndex, succ packedstate.State)
	OnGenerateStateNotRelaxed(parent packedstate.State, action index.ActionIndex, succ packedstate.State)
	OnPruneState(state packedstate.State)
	OnNewBestHValue(h float64)
	OnFinishFLayer(f float64)
	OnFinishGLayer(g int)
	OnSolved(plan []searchutil.PlanStep)
	OnUnsolvable()
	OnExhausted()
	OnEndSearch(stats Statistics)
}

// Statistics is the running counter block every EventHandler
// implementation accumulates from its own callbacks.
type Statistics struct {
	StatesGenerated int
	StatesExpanded  int
	StatesPruned    int
	GoalStatesFound int
	LayersFinished  int
	BestHValue      float64
}

// NoopEventHandler discards every event; it is the default for callers
// that do not need statistics or logging.
type NoopEventHandler struct{}

func (NoopEventHandler) OnStartSearch(packedstate.State)                                     {}
func (NoopEventHandler) OnExpandState(packedstate.State)                                     {}
func (NoopEventHandler) OnExpandGoalState(packedstate.State)                                 {}
func (NoopEventHandler) OnGenerateState(packedstate.State, index.ActionIndex, float64, packedstate.State) {
}
func (NoopEventHandler) OnGenerateStateRelaxed(packedstate.State, index.ActionIndex, packedstate.State) {
}
func (NoopEventHandler) OnGenerateStateNotRelaxed(packedstate.State, index.ActionIndex, packedstate.State) {
}
func (NoopEventHandler) OnPruneState(packedstate.State)       {}
func (NoopEventHandler) OnNewBestHValue(float64)              {}
func (NoopEventHandler) OnFinishFLayer(float64)               {}
func (NoopEventHandler) OnFinishGLayer(int)                   {}
func (NoopEventHandler) OnSolved([]searchutil.PlanStep)       {}
func (NoopEventHandler) OnUnsolvable()                        {}
func (NoopEventHandler) OnExhausted()                         {}
func (NoopEventHandler) OnEndSearch(Statistics)                {}
