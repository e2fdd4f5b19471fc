package tuplegraph

import (
	"github.com/simonstahlberg/mimir-go/config"
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/novelty"
	"github.com/simonstahlberg/mimir-go/statespace"
)

// Candidate is one tuple discovered novel at the current BrFS layer: the
// atoms that make it up, the prior-layer tuple-graph vertices that
// extend into it, and the concrete states (by state-space vertex) that
// witness it.
type Candidate struct {
	Index        novelty.TupleIndex
	Atoms        []index.AtomIndex
	PrevVertices map[index.VertexIndex]struct{}
	States       []index.VertexIndex
}

// DominanceFunc reports whether b dominates a, i.e. whether a should be
// dropped from the current layer in b's favor. The default,
// DefaultDominance, drops a candidate whose prior-layer vertex set is a
// strict subset of another candidate's.
type DominanceFunc func(a, b Candidate) bool

// DefaultDominance implements "T' dominates T if T' has a superset of
// the previous-layer vertices that extend it": b dominates a when
// b.PrevVertices is a strict superset of a.PrevVertices. Equal vertex
// sets never dominate each other — two distinct tuples extending the
// same single parent are independent discoveries, not duplicates, and
// both must survive.
func DefaultDominance(a, b Candidate) bool {
	if a.Index == b.Index || len(b.PrevVertices) <= len(a.PrevVertices) {
		return false
	}
	for v := range a.PrevVertices {
		if _, ok := b.PrevVertices[v]; !ok {
			return false
		}
	}
	return true
}

// Build constructs the novelty-preserving tuple graph rooted at ss's
// initial vertex, for the given arity. At arity 0, vertex 0 is the
// empty tuple at the root and vertex 1 (if the root has any successor)
// groups every state within unit distance of it, deemed "subgoal". At
// arity ≥ 1, the graph is built layer by layer over ss's own forward
// edges: each layer's states are tested for novelty against a shared
// DynamicNoveltyTable seeded by every earlier layer, the surviving
// novel tuples (optionally pruned by dominance) each become a new
// vertex wired back to the prior-layer vertices that extend into it,
// and only states assigned to a surviving vertex continue to the next
// layer. A nil dominance defaults to DefaultDominance and is only
// consulted when opts.PruneDominatedTuples is set.
func Build(ss *statespace.StateSpace, opts config.Options, dominance DominanceFunc) (*TupleGraph, error) {
	if dominance == nil {
		dominance = DefaultDominance
	}

	g := &TupleGraph{StateToVertex: map[index.StateIndex]index.VertexIndex{}}
	rootState := ss.Vertex(ss.InitialVertex).State
	g.RootVertex = g.addVertex(nil, []index.StateIndex{rootState})

	if opts.MaxArity == 0 {
		buildArityZero(g, ss)
		return g, nil
	}

	table, err := novelty.NewDynamicNoveltyTable(opts.MaxArity, 1)
	if err != nil {
		return nil, err
	}
	// The root is layer 0; its own tuples are "already explored" and
	// must not be offered as novel to layer 1.
	table.MarkTuples(table.NovelTupleIndices(ss.States.StateByIndex(rootState).Packed))

	// ssVertexToGraphVertex tracks, for every state-space vertex visited
	// so far, which tuple-graph vertex it was assigned to (root included).
	ssVertexToGraphVertex := map[index.VertexIndex]index.VertexIndex{ss.InitialVertex: g.RootVertex}
	visited := map[index.VertexIndex]bool{ss.InitialVertex: true}
	frontier := []index.VertexIndex{ss.InitialVertex}

	for len(frontier) > 0 {
		type discovery struct {
			ssVertex index.VertexIndex
			parent   index.VertexIndex
			tuples   []novelty.TupleIndex
		}

		var newLayer []index.VertexIndex
		for _, v := range frontier {
			for _, eIdx := range ss.OutEdges(v) {
				e := ss.Edge(eIdx)
				if visited[e.To] {
					continue
				}
				visited[e.To] = true
				newLayer = append(newLayer, e.To)
			}
		}
		if len(newLayer) == 0 {
			break
		}

		discoveries := make([]discovery, 0, len(newLayer))
		for _, v := range newLayer {
			packed := ss.States.StateByIndex(ss.Vertex(v).State).Packed
			novel := table.NovelTupleIndices(packed)
			if len(novel) == 0 {
				continue
			}
			// The BrFS parent is recovered from v's in-edges restricted
			// to the previous layer; any qualifying in-edge works, since
			// all of them originate from an already-assigned vertex.
			var parent index.VertexIndex
			for _, eIdx := range ss.InEdges(v) {
				from := ss.Edge(eIdx).From
				if _, ok := ssVertexToGraphVertex[from]; ok {
					parent = from
					break
				}
			}
			discoveries = append(discoveries, discovery{ssVertex: v, parent: parent, tuples: novel})
		}

		candidatesByTuple := map[novelty.TupleIndex]*Candidate{}
		for _, d := range discoveries {
			prevVertex := ssVertexToGraphVertex[d.parent]
			for _, ti := range d.tuples {
				c, ok := candidatesByTuple[ti]
				if !ok {
					c = &Candidate{Index: ti, Atoms: table.AtomsForTuple(ti), PrevVertices: map[index.VertexIndex]struct{}{}}
					candidatesByTuple[ti] = c
				}
				c.PrevVertices[prevVertex] = struct{}{}
				c.States = append(c.States, d.ssVertex)
			}
		}

		// Commit every discovered tuple now, independent of dominance
		// pruning, so a dominated tuple is never rediscovered as novel
		// in a later layer.
		for ti := range candidatesByTuple {
			table.MarkTuples([]novelty.TupleIndex{ti})
		}

		survivors := candidatesByTuple
		if opts.PruneDominatedTuples {
			survivors = pruneDominated(candidatesByTuple, dominance)
		}

		// A state may witness more than one surviving tuple; assign it
		// deterministically to the smallest surviving tuple index.
		stateAssignment := map[index.VertexIndex]novelty.TupleIndex{}
		for ti, c := range survivors {
			for _, sv := range c.States {
				if best, ok := stateAssignment[sv]; !ok || ti < best {
					stateAssignment[sv] = ti
				}
			}
		}

		var nextFrontier []index.VertexIndex
		newVertexByTuple := map[novelty.TupleIndex]index.VertexIndex{}
		for sv, ti := range stateAssignment {
			gv, ok := newVertexByTuple[ti]
			if !ok {
				c := survivors[ti]
				states := make([]index.StateIndex, 0, len(c.States))
				seen := map[index.StateIndex]bool{}
				for _, other := range c.States {
					if stateAssignment[other] != ti {
						continue
					}
					st := ss.Vertex(other).State
					if !seen[st] {
						seen[st] = true
						states = append(states, st)
					}
				}
				gv = g.addVertex(c.Atoms, states)
				newVertexByTuple[ti] = gv
				for prev := range c.PrevVertices {
					g.addEdge(ssVertexToGraphVertex[prev], gv)
				}
			}
			ssVertexToGraphVertex[sv] = gv
			nextFrontier = append(nextFrontier, sv)
		}

		frontier = nextFrontier
	}

	return g, nil
}

// pruneDominated drops every candidate dominated by another candidate
// in the same map, per dominance.
func pruneDominated(candidates map[novelty.TupleIndex]*Candidate, dominance DominanceFunc) map[novelty.TupleIndex]*Candidate {
	survivors := make(map[novelty.TupleIndex]*Candidate, len(candidates))
	for ti, c := range candidates {
		dominated := false
		for otherTi, other := range candidates {
			if otherTi == ti {
				continue
			}
			if dominance(*c, *other) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors[ti] = c
		}
	}
	return survivors
}

// buildArityZero instantiates the two-vertex arity-0 graph: the root,
// and (if any successor exists) a single "subgoal" vertex grouping
// every state at unit distance from the root.
func buildArityZero(g *TupleGraph, ss *statespace.StateSpace) {
	var subgoalStates []index.StateIndex
	seen := map[index.StateIndex]bool{}
	for _, eIdx := range ss.OutEdges(ss.InitialVertex) {
		st := ss.Vertex(ss.Edge(eIdx).To).State
		if !seen[st] {
			seen[st] = true
			subgoalStates = append(subgoalStates, st)
		}
	}
	if len(subgoalStates) == 0 {
		return
	}
	v1 := g.addVertex(nil, subgoalStates)
	g.addEdge(g.RootVertex, v1)
}
