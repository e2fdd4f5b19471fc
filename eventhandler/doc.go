// Package eventhandler defines the algorithm-agnostic observer interface
// every search loop drives, the Statistics block accumulated from those
// callbacks, and two concrete handlers: DefaultEventHandler (zap
// structured logging via the telemetry package) and
// PrometheusEventHandler (Prometheus counters/gauges over the same
// Statistics surface).
package eventhandler
