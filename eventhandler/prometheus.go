package eventhandler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/searchutil"
)

// PrometheusEventHandler mirrors Statistics onto Prometheus counters and
// gauges, registered against a caller-supplied Registerer. It never
// starts an HTTP listener itself; exposing /metrics is the caller's
// concern. The layer-duration histogram is registered but none of this
// handler's methods records an observation into it.
type PrometheusEventHandler struct {
	statesGenerated prometheus.Counter
	statesExpanded  prometheus.Counter
	statesPruned    prometheus.Counter
	goalStatesFound prometheus.Counter
	bestHValue      prometheus.Gauge
	layerDuration   prometheus.Histogram
}

// NewPrometheusEventHandler registers its metrics against reg and
// returns a ready-to-use handler.
func NewPrometheusEventHandler(reg prometheus.Registerer) *PrometheusEventHandler {
	h := &PrometheusEventHandler{
		statesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mimir_states_generated_total",
			Help: "Total number of states generated across all searches.",
		}),
		statesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mimir_states_expanded_total",
			Help: "Total number of states expanded across all searches.",
		}),
		statesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mimir_states_pruned_total",
			Help: "Total number of states discarded by a pruning strategy.",
		}),
		goalStatesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mimir_goal_states_found_total",
			Help: "Total number of goal states reached.",
		}),
		bestHValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mimir_best_h_value",
			Help: "Most recently reported best heuristic value.",
		}),
		layerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "mimir_search_layer_duration_seconds",
			Help: "Wall-clock time spent per finished search layer.",
		}),
	}
	reg.MustRegister(h.statesGenerated, h.statesExpanded, h.statesPruned, h.goalStatesFound, h.bestHValue, h.layerDuration)
	return h
}

func (h *PrometheusEventHandler) OnStartSearch(packedstate.State) {}

func (h *PrometheusEventHandler) OnExpandState(packedstate.State) {
	h.statesExpanded.Inc()
}

func (h *PrometheusEventHandler) OnExpandGoalState(packedstate.State) {
	h.goalStatesFound.Inc()
}

func (h *PrometheusEventHandler) OnGenerateState(packedstate.State, index.ActionIndex, float64, packedstate.State) {
	h.statesGenerated.Inc()
}

func (h *PrometheusEventHandler) OnGenerateStateRelaxed(packedstate.State, index.ActionIndex, packedstate.State) {
}

func (h *PrometheusEventHandler) OnGenerateStateNotRelaxed(packedstate.State, index.ActionIndex, packedstate.State) {
}

func (h *PrometheusEventHandler) OnPruneState(packedstate.State) {
	h.statesPruned.Inc()
}

func (h *PrometheusEventHandler) OnNewBestHValue(hValue float64) {
	h.bestHValue.Set(hValue)
}

func (h *PrometheusEventHandler) OnFinishFLayer(float64) {}

func (h *PrometheusEventHandler) OnFinishGLayer(int) {}

func (h *PrometheusEventHandler) OnSolved([]searchutil.PlanStep) {}

func (h *PrometheusEventHandler) OnUnsolvable() {}

func (h *PrometheusEventHandler) OnExhausted() {}

func (h *PrometheusEventHandler) OnEndSearch(Statistics) {}
