package eventhandler

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
)

var (
	_ EventHandler = NoopEventHandler{}
	_ EventHandler = (*DefaultEventHandler)(nil)
	_ EventHandler = (*PrometheusEventHandler)(nil)
)

func TestDefaultEventHandlerAccumulatesStatistics(t *testing.T) {
	core, _ := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	h := NewDefaultEventHandler(logger, "run-1")

	s0 := packedstate.State{Index: 0}
	s1 := packedstate.State{Index: 1}

	h.OnStartSearch(s0)
	h.OnGenerateState(s0, index.ActionIndex(0), 1.0, s1)
	h.OnExpandState(s1)
	h.OnPruneState(s1)

	stats := h.Statistics()
	if stats.StatesGenerated != 1 {
		t.Fatalf("StatesGenerated = %d, want 1", stats.StatesGenerated)
	}
	if stats.StatesExpanded != 1 {
		t.Fatalf("StatesExpanded = %d, want 1", stats.StatesExpanded)
	}
	if stats.StatesPruned != 1 {
		t.Fatalf("StatesPruned = %d, want 1", stats.StatesPruned)
	}
}
