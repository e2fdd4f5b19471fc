package searchutil

import "time"

// StopWatch is polled once per outer-loop iteration of BrFS/A*/GBFS; on
// elapse the loop returns OutOfTime. A zero timeoutMs means "no limit".
// This is the substrate's only suspension point: there is no preemptive
// cancellation, only cooperative polling.
type StopWatch struct {
	deadline time.Time
	unbound  bool
}

// NewStopWatch starts a StopWatch with the given timeout in milliseconds.
// timeoutMs <= 0 means unbounded.
func NewStopWatch(timeoutMs int) *StopWatch {
	if timeoutMs <= 0 {
		return &StopWatch{unbound: true}
	}
	return &StopWatch{deadline: time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)}
}

// Expired reports whether the deadline has passed.
func (s *StopWatch) Expired() bool {
	if s.unbound {
		return false
	}
	return time.Now().After(s.deadline)
}
