// Package knowledgebase bundles a generalized.GeneralizedStateSpace with
// an optional per-problem collection of tuplegraph.TupleGraphs built over
// the same inputs, mirroring how the two artifacts are produced and
// consumed together once a batch of problems has been abstracted.
package knowledgebase

import (
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/generalized"
	"github.com/simonstahlberg/mimir-go/statespace"
	"github.com/simonstahlberg/mimir-go/tuplegraph"
)

// Options controls both halves of a KnowledgeBase build: the quotient
// construction over the contributing state spaces, and the optional
// per-problem tuple-graph collection.
type Options struct {
	SymmetryPruning   bool
	BuildTupleGraphs  bool
	TupleGraphOptions config.Options
	Dominance         tuplegraph.DominanceFunc
}

// KnowledgeBase is the generalized quotient of a set of problems'
// reachability graphs, plus one tuple graph per problem when requested.
// TupleGraphs is nil when tuple graphs were not requested; otherwise it
// holds one graph per problem, in input order.
type KnowledgeBase struct {
	Generalized *generalized.GeneralizedStateSpace
	TupleGraphs []*tuplegraph.TupleGraph
}

// Build quotients spaces (paired with certificates, required only when
// opts.SymmetryPruning is set) into a GeneralizedStateSpace, then, if
// opts.BuildTupleGraphs is set, builds one tuple graph per problem over
// opts.TupleGraphOptions. A failure building any individual problem's
// tuple graph aborts the whole call, since a partially populated
// TupleGraphs slice would silently misrepresent which problems are
// actually covered.
func Build(spaces []*statespace.StateSpace, certificates [][][]byte, opts Options) (*KnowledgeBase, error) {
	inputs := make([]generalized.ProblemInput, len(spaces))
	for p, ss := range spaces {
		input := generalized.ProblemInput{Space: ss}
		if opts.SymmetryPruning {
			input.Certificates = certificates[p]
		}
		inputs[p] = input
	}
	gss := generalized.Build(inputs, opts.SymmetryPruning)

	kb := &KnowledgeBase{Generalized: gss}
	if !opts.BuildTupleGraphs {
		return kb, nil
	}

	graphs := make([]*tuplegraph.TupleGraph, len(spaces))
	for p, ss := range spaces {
		tg, err := tuplegraph.Build(ss, opts.TupleGraphOptions, opts.Dominance)
		if err != nil {
			return nil, err
		}
		graphs[p] = tg
	}
	kb.TupleGraphs = graphs
	return kb, nil
}
