package statespace

import (
	"github.com/simonstahlberg/mimir-go/appgen"
	"github.com/simonstahlberg/mimir-go/canonical"
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchutil"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// Status reports how a Build call ended.
type Status int

const (
	Completed Status = iota
	OutOfTime
	OutOfStates
	Failed
)

// Build runs an exhaustive forward breadth-first traversal from the
// problem's initial state, recording every reachable state and
// transition, then computes goal distances and unsolvable/alive
// membership. objGraph must be non-nil when opts.SymmetryPruning is
// true: every successor is then canonized, and a successor whose
// certificate has already been seen folds into the existing
// representative vertex instead of creating a new one, with parallel
// edges between the same vertex pair elided.
func Build(repo problem.ProblemRepository, states *state.StateRepository, goal strategy.GoalStrategy, objGraph *canonical.ObjectGraph, opts config.Options) (*StateSpace, Status, error) {
	ss := &StateSpace{
		ProblemName:   repo.ProblemName(),
		States:        states,
		vertices:      index.NewSegmentedVector[Vertex](),
		edges:         index.NewSegmentedVector[Edge](),
		StateToVertex: map[index.StateIndex]index.VertexIndex{},
	}
	gen := appgen.New(repo, opts)

	initial, _, err := states.GetOrCreateInitialState()
	if err != nil {
		return nil, Failed, err
	}

	if opts.SymmetryPruning {
		ss.CertificateToVertex = map[string]index.VertexIndex{}
	}
	stateToVertex := ss.StateToVertex
	certToVertex := ss.CertificateToVertex

	ss.InitialVertex = ss.addVertex(initial.Index)
	stateToVertex[initial.Index] = ss.InitialVertex
	if opts.SymmetryPruning {
		cert, err := objGraph.CertificateFor(initial.Packed)
		if err != nil {
			return nil, Failed, err
		}
		certToVertex[string(cert)] = ss.InitialVertex
	}

	queue := []packedstate.State{initial}
	stopwatch := searchutil.NewStopWatch(opts.MaxTimeInMs)

	for len(queue) > 0 {
		if stopwatch.Expired() {
			return ss, OutOfTime, nil
		}
		if opts.MaxNumStates > 0 && uint32(states.StateCount()) >= opts.MaxNumStates {
			return ss, OutOfStates, nil
		}

		cur := queue[0]
		queue = queue[1:]
		curVertex := stateToVertex[cur.Index]

		seenTargets := map[index.VertexIndex]bool{}
		it := gen.Generate(cur.Packed)
		for it.Next() {
			action := it.Action()
			succ, _, _, err := states.GetOrCreateSuccessorState(cur, action, 0)
			if err != nil {
				return nil, Failed, err
			}

			var targetVertex index.VertexIndex
			if opts.SymmetryPruning {
				cert, err := objGraph.CertificateFor(succ.Packed)
				if err != nil {
					return nil, Failed, err
				}
				if v, ok := certToVertex[string(cert)]; ok {
					targetVertex = v
				} else {
					targetVertex = ss.addVertex(succ.Index)
					certToVertex[string(cert)] = targetVertex
					queue = append(queue, succ)
				}
				stateToVertex[succ.Index] = targetVertex
				if seenTargets[targetVertex] {
					continue
				}
				seenTargets[targetVertex] = true
			} else {
				if v, ok := stateToVertex[succ.Index]; ok {
					targetVertex = v
				} else {
					targetVertex = ss.addVertex(succ.Index)
					stateToVertex[succ.Index] = targetVertex
					queue = append(queue, succ)
				}
			}

			ss.addEdge(curVertex, targetVertex, action.Index(), action.Cost())
		}
	}

	ss.finalize(goal)
	if opts.RemoveIfUnsolvable {
		ss.removeUnsolvable()
	}
	return ss, Completed, nil
}
