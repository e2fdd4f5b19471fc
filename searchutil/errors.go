package searchutil

import "errors"

// Sentinel errors for the fatal (non-outcome) error kinds the search
// substrate raises. Search outcomes (OutOfTime, OutOfStates, …)
// are reported as SearchStatus values on SearchResult, never returned as
// errors; only these kinds represent a caller contract violation or a
// genuinely unrecoverable numeric condition.
var (
	// ErrMetricIsNaN is raised by StateRepository when numeric effect
	// evaluation yields NaN on a newly created state.
	ErrMetricIsNaN = errors.New("searchutil: metric evaluated to NaN")

	// ErrArityOutOfRange reports an out-of-range arity. No function in
	// this module returns it; the novelty package reports its own
	// novelty.ErrArityOutOfRange instead.
	ErrArityOutOfRange = errors.New("searchutil: arity out of range")

	// ErrCanonizeBeforeQuery is returned by canonical.ObjectGraph.Certificate
	// when it is called before any Canonize call.
	ErrCanonizeBeforeQuery = errors.New("searchutil: canonicalization queried before canonize")

	// ErrUnimplemented marks an unimplemented entry point. No function in
	// this module currently returns it.
	ErrUnimplemented = errors.New("searchutil: not implemented")
)
