package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	data := []byte("search_mode: grounded\nmax_num_states: 1000\nmax_arity: 3\n")
	o, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.SearchMode != Grounded {
		t.Fatalf("SearchMode = %v, want grounded", o.SearchMode)
	}
	if o.MaxNumStates != 1000 {
		t.Fatalf("MaxNumStates = %d, want 1000", o.MaxNumStates)
	}
	if o.MaxArity != 3 {
		t.Fatalf("MaxArity = %d, want 3", o.MaxArity)
	}
	// Untouched field keeps its default.
	if o.OpenListWeights != [6]uint32{1, 1, 1, 1, 1, 1} {
		t.Fatalf("OpenListWeights = %v, want all-ones default", o.OpenListWeights)
	}
}

func TestLoadRejectsInvalidArity(t *testing.T) {
	_, err := Load([]byte("max_arity: 99\n"))
	if !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("Load: got %v, want ErrInvalidOptions", err)
	}
}

func TestLoadRejectsBadSearchMode(t *testing.T) {
	_, err := Load([]byte("search_mode: quantum\n"))
	if !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("Load: got %v, want ErrInvalidOptions", err)
	}
}
