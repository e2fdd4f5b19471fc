package abstraction

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/simonstahlberg/mimir-go/canonical"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/statespace"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// Source is one problem file's worth of inputs to a batch build: the
// repository, the object-graph descriptor and oracle it brings its own
// certificate structure from, and an optional goal strategy (defaults
// to the repository's own goal literals).
type Source struct {
	Name             string
	Repo             problem.ProblemRepository
	ObjectDescriptor problem.ObjectGraphDescriptor
	Oracle           problem.CanonicalGraphOracle
	Goal             strategy.GoalStrategy
	PruneStaticScc   bool
	CertificateCache int
}

// Result is one batch-member outcome. Abstraction is nil when the build
// returned an error or was cancelled before it started; a build that
// timed out or hit the state cap keeps its partial Abstraction, with
// Status saying so. Only error-free, Completed results survive.
type Result struct {
	Name        string
	Abstraction *FaithfulAbstraction
	Status      statespace.Status
	Err         error
}

// BuildBatch runs one Build call per Source concurrently, each owning a
// private StateRepository and ObjectGraph so tasks share nothing
// mutable. Sources whose build fails, times out, or exceeds
// opts.MaxNumStates are dropped from the surviving list; every outcome
// (including drops) is still reported in Results in input order.
// Surviving abstracts the input order, or by ascending state count when
// opts.SortAscendingByNumStates is set.
func BuildBatch(ctx context.Context, sources []Source, opts config.Options) (results []Result, survivors []*FaithfulAbstraction, err error) {
	results = make([]Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = Result{Name: src.Name, Err: gctx.Err()}
				return nil
			default:
			}

			cacheSize := src.CertificateCache
			if cacheSize <= 0 {
				cacheSize = 4096
			}
			objGraph, err := canonical.New(src.ObjectDescriptor, src.Oracle, src.Repo.GoalLiterals(), src.PruneStaticScc, cacheSize)
			if err != nil {
				results[i] = Result{Name: src.Name, Err: err}
				return nil
			}

			goal := src.Goal
			if goal == nil {
				goal = strategy.NewProblemGoalStrategy(src.Repo)
			}

			states := state.NewStateRepository(src.Repo, opts)
			fa, status, buildErr := Build(src.Repo, states, goal, objGraph, opts)
			results[i] = Result{Name: src.Name, Abstraction: fa, Status: status, Err: buildErr}
			return nil
		})
	}
	if waitErr := g.Wait(); waitErr != nil {
		return nil, nil, waitErr
	}

	for _, r := range results {
		if r.Err == nil && r.Status == statespace.Completed && r.Abstraction != nil {
			survivors = append(survivors, r.Abstraction)
		}
	}
	if opts.SortAscendingByNumStates {
		sort.Slice(survivors, func(i, j int) bool { return survivors[i].NumVertices() < survivors[j].NumVertices() })
	}
	return results, survivors, nil
}
