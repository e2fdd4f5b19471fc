package abstraction

import (
	"github.com/simonstahlberg/mimir-go/canonical"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/statespace"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// FaithfulAbstraction is a StateSpace built with symmetry pruning
// permanently enabled: every vertex is the class of all concrete states
// sharing one canonical-form certificate, and every transition is
// recorded between class representatives.
type FaithfulAbstraction struct {
	*statespace.StateSpace
}

// ClassOf returns the abstract vertex st was folded into, if st has been
// interned.
func (f *FaithfulAbstraction) ClassOf(st index.StateIndex) (index.VertexIndex, bool) {
	v, ok := f.StateToVertex[st]
	return v, ok
}

// ClassOfCertificate returns the class vertex registered for cert, if
// any state bearing it has been seen.
func (f *FaithfulAbstraction) ClassOfCertificate(cert []byte) (index.VertexIndex, bool) {
	v, ok := f.CertificateToVertex[string(cert)]
	return v, ok
}

// Build runs an exhaustive forward traversal over repo with symmetry
// pruning forced on, folding every state into its certificate's class
// vertex. objGraph must not be shared with any other concurrently
// running Build call: each build owns it exclusively for the duration
// of the traversal.
func Build(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, objGraph *canonical.ObjectGraph, opts config.Options) (*FaithfulAbstraction, statespace.Status, error) {
	opts.SymmetryPruning = true
	ss, status, err := statespace.Build(repo, states, goal, objGraph, opts)
	if ss == nil {
		return nil, status, err
	}
	return &FaithfulAbstraction{StateSpace: ss}, status, err
}
