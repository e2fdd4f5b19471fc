package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is returned when a decoded Options value fails
// validation (unknown search mode, max_arity out of range, or a zero
// open-list weight).
var ErrInvalidOptions = errors.New("config: invalid options")

// SearchMode selects the applicable-action generator and axiom evaluator
// variant.
type SearchMode string

const (
	// Grounded precomputes all ground actions/axioms up front and walks a
	// match tree at query time.
	Grounded SearchMode = "grounded"
	// Lifted enumerates parameter bindings against the current state on
	// every query.
	Lifted SearchMode = "lifted"
)

// MaxArity is the largest tuple arity the novelty subsystem supports.
const MaxArity = 5

// Options is the single configuration record threaded into every search
// and builder constructor.
type Options struct {
	SearchMode               SearchMode `yaml:"search_mode"`
	SymmetryPruning          bool       `yaml:"symmetry_pruning"`
	MaxNumStates             uint32     `yaml:"max_num_states"`
	MaxTimeInMs              int        `yaml:"max_time_in_ms"`
	RemoveIfUnsolvable        bool       `yaml:"remove_if_unsolvable"`
	SortAscendingByNumStates bool       `yaml:"sort_ascending_by_num_states"`

	// IW/SIW.
	MaxArity            int  `yaml:"max_arity"`
	PruneDominatedTuples bool `yaml:"prune_dominated_tuples"`

	// GBFS-lazy open-list weights over its six alternating buckets.
	OpenListWeights [6]uint32 `yaml:"openlist_weights"`
}

// Default returns an Options value with the substrate's documented
// defaults: lifted search, no symmetry pruning, unbounded states/time,
// max_arity 2, dominance pruning on, uniform GBFS-lazy weights.
func Default() Options {
	return Options{
		SearchMode:           Lifted,
		SymmetryPruning:      false,
		MaxNumStates:         0,
		MaxTimeInMs:          0,
		RemoveIfUnsolvable:   false,
		MaxArity:             2,
		PruneDominatedTuples: true,
		OpenListWeights:      [6]uint32{1, 1, 1, 1, 1, 1},
	}
}

// Validate checks the invariants Options must satisfy before being
// handed to a constructor.
func (o Options) Validate() error {
	if o.SearchMode != Grounded && o.SearchMode != Lifted {
		return fmt.Errorf("%w: search_mode %q", ErrInvalidOptions, o.SearchMode)
	}
	if o.MaxArity < 0 || o.MaxArity > MaxArity {
		return fmt.Errorf("%w: max_arity %d out of [0,%d]", ErrInvalidOptions, o.MaxArity, MaxArity)
	}
	for _, w := range o.OpenListWeights {
		if w == 0 {
			return fmt.Errorf("%w: openlist_weights entries must be positive", ErrInvalidOptions)
		}
	}
	return nil
}

// Load decodes an Options value from YAML bytes, applying Default() for
// any field not present, then validates the result.
func Load(data []byte) (Options, error) {
	o := Default()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
