package eventhandler

import (
	"go.uber.org/zap"

	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/telemetry"
)

// DefaultEventHandler logs every event as a structured zap line (tagged
// with a run correlation ID) and accumulates a Statistics block.
type DefaultEventHandler struct {
	logger *zap.Logger
	runID  string
	stats  Statistics
}

// NewDefaultEventHandler binds a DefaultEventHandler to logger, tagging
// every log line with runID.
func NewDefaultEventHandler(logger *zap.Logger, runID string) *DefaultEventHandler {
	if logger == nil {
		logger = telemetry.Nop()
	}
	return &DefaultEventHandler{logger: logger, runID: runID}
}

// Statistics returns a snapshot of the counters accumulated so far.
func (h *DefaultEventHandler) Statistics() Statistics { return h.stats }

func (h *DefaultEventHandler) OnStartSearch(initial packedstate.State) {
	h.logger.Info("search started", telemetry.RunField(h.runID), telemetry.StateField(initial.Index))
}

func (h *DefaultEventHandler) OnExpandState(state packedstate.State) {
	h.stats.StatesExpanded++
	h.logger.Debug("state expanded", telemetry.RunField(h.runID), telemetry.StateField(state.Index))
}

func (h *DefaultEventHandler) OnExpandGoalState(state packedstate.State) {
	h.stats.GoalStatesFound++
	h.logger.Info("goal state expanded", telemetry.RunField(h.runID), telemetry.StateField(state.Index))
}

func (h *DefaultEventHandler) OnGenerateState(parent packedstate.State, action index.ActionIndex, cost float64, succ packedstate.State) {
	h.stats.StatesGenerated++
	h.logger.Debug("state generated",
		telemetry.RunField(h.runID),
		telemetry.StateField(parent.Index),
		telemetry.ActionField(action),
		zap.Float64("cost", cost),
		telemetry.StateField(succ.Index),
	)
}

func (h *DefaultEventHandler) OnGenerateStateRelaxed(parent packedstate.State, action index.ActionIndex, succ packedstate.State) {
	h.logger.Debug("relaxed successor generated", telemetry.RunField(h.runID), telemetry.ActionField(action))
}

func (h *DefaultEventHandler) OnGenerateStateNotRelaxed(parent packedstate.State, action index.ActionIndex, succ packedstate.State) {
	h.logger.Debug("successor generated", telemetry.RunField(h.runID), telemetry.ActionField(action))
}

func (h *DefaultEventHandler) OnPruneState(state packedstate.State) {
	h.stats.StatesPruned++
	h.logger.Debug("state pruned", telemetry.RunField(h.runID), telemetry.StateField(state.Index))
}

func (h *DefaultEventHandler) OnNewBestHValue(hValue float64) {
	h.stats.BestHValue = hValue
	h.logger.Info("new best h", telemetry.RunField(h.runID), zap.Float64("h", hValue))
}

func (h *DefaultEventHandler) OnFinishFLayer(f float64) {
	h.stats.LayersFinished++
	h.logger.Debug("f-layer finished", telemetry.RunField(h.runID), zap.Float64("f", f))
}

func (h *DefaultEventHandler) OnFinishGLayer(g int) {
	h.stats.LayersFinished++
	h.logger.Debug("g-layer finished", telemetry.RunField(h.runID), zap.Int("g", g))
}

func (h *DefaultEventHandler) OnSolved(plan []searchutil.PlanStep) {
	h.logger.Info("search solved", telemetry.RunField(h.runID), zap.Int("plan_length", len(plan)))
}

func (h *DefaultEventHandler) OnUnsolvable() {
	h.logger.Info("search unsolvable", telemetry.RunField(h.runID))
}

func (h *DefaultEventHandler) OnExhausted() {
	h.logger.Info("search exhausted", telemetry.RunField(h.runID))
}

func (h *DefaultEventHandler) OnEndSearch(stats Statistics) {
	h.stats = stats
	h.logger.Info("search ended",
		telemetry.RunField(h.runID),
		zap.Int("states_generated", stats.StatesGenerated),
		zap.Int("states_expanded", stats.StatesExpanded),
		zap.Int("states_pruned", stats.StatesPruned),
	)
}
