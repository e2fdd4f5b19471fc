// Package searchutil collects the small cross-cutting types every search
// algorithm shares: the exit/status code enumeration, the SearchResult
// envelope, the StopWatch used to poll timeouts, and the sentinel errors
// for the substrate's fatal (non-outcome) error kinds.
package searchutil
