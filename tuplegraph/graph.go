package tuplegraph

import (
	"github.com/simonstahlberg/mimir-go/index"
)

// Vertex is one node of the tuple graph: the tuple of atoms that made it
// novel (nil for the root) and every concrete state that extends into
// it.
type Vertex struct {
	Tuple  []index.AtomIndex
	States []index.StateIndex
}

// TupleGraph is the layered DAG a Build call produces: a dense vertex
// vector, forward adjacency (prior layer → new vertex) and backward
// adjacency (new vertex → prior layer), and the state-to-vertex
// assignment recording the vertex of every state placed in the graph.
type TupleGraph struct {
	RootVertex index.VertexIndex

	vertices      []Vertex
	forward       [][]index.VertexIndex
	backward      [][]index.VertexIndex
	StateToVertex map[index.StateIndex]index.VertexIndex
}

// NumVertices returns the number of vertices in the graph.
func (g *TupleGraph) NumVertices() int { return len(g.vertices) }

// Vertex returns vertex v's record.
func (g *TupleGraph) Vertex(v index.VertexIndex) Vertex { return g.vertices[v] }

// Forward returns the vertices directly reachable from v (the new
// vertices v extends into).
func (g *TupleGraph) Forward(v index.VertexIndex) []index.VertexIndex { return g.forward[v] }

// Backward returns the prior-layer vertices v directly extends from.
func (g *TupleGraph) Backward(v index.VertexIndex) []index.VertexIndex { return g.backward[v] }

func (g *TupleGraph) addVertex(tuple []index.AtomIndex, states []index.StateIndex) index.VertexIndex {
	v := index.VertexIndex(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Tuple: tuple, States: states})
	g.forward = append(g.forward, nil)
	g.backward = append(g.backward, nil)
	for _, s := range states {
		g.StateToVertex[s] = v
	}
	return v
}

func (g *TupleGraph) addEdge(from, to index.VertexIndex) {
	for _, existing := range g.forward[from] {
		if existing == to {
			return
		}
	}
	g.forward[from] = append(g.forward[from], to)
	g.backward[to] = append(g.backward[to], from)
}

// chainFrame is the bookkeeping a BFS over the tuple graph's edges
// keeps per visited vertex: what has been covered by the shortest path
// reaching it so far, and that path's predecessor.
type chainFrame struct {
	coveredAtoms  map[index.AtomIndex]struct{}
	coveredStates map[index.StateIndex]struct{}
	parent        index.VertexIndex
	hasParent     bool
}

func backtrace(visited map[index.VertexIndex]chainFrame, v index.VertexIndex) []index.VertexIndex {
	var chain []index.VertexIndex
	for {
		chain = append([]index.VertexIndex{v}, chain...)
		f := visited[v]
		if !f.hasParent {
			return chain
		}
		v = f.parent
	}
}

func atomSet(atoms []index.AtomIndex) map[index.AtomIndex]struct{} {
	set := make(map[index.AtomIndex]struct{}, len(atoms))
	for _, a := range atoms {
		set[a] = struct{}{}
	}
	return set
}

func stateSet(states []index.StateIndex) map[index.StateIndex]struct{} {
	set := make(map[index.StateIndex]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

func supersetOfAtoms(have, want map[index.AtomIndex]struct{}) bool {
	for a := range want {
		if _, ok := have[a]; !ok {
			return false
		}
	}
	return true
}

func supersetOfStates(have, want map[index.StateIndex]struct{}) bool {
	for s := range want {
		if _, ok := have[s]; !ok {
			return false
		}
	}
	return true
}

// ComputeAdmissibleChain runs a breadth-first search forward from the
// root over the tuple graph's edges, tracking at each vertex the union
// of tuple atoms accumulated along the shortest path reaching it. It
// returns the first (hence shortest) root-to-v path whose accumulated
// atoms are a superset of goalAtoms, as the chain of vertices from root
// to v inclusive.
func (g *TupleGraph) ComputeAdmissibleChain(goalAtoms []index.AtomIndex) ([]index.VertexIndex, bool) {
	want := atomSet(goalAtoms)
	visited := map[index.VertexIndex]chainFrame{
		g.RootVertex: {coveredAtoms: atomSet(g.vertices[g.RootVertex].Tuple)},
	}
	if supersetOfAtoms(visited[g.RootVertex].coveredAtoms, want) {
		return []index.VertexIndex{g.RootVertex}, true
	}

	queue := []index.VertexIndex{g.RootVertex}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curCovered := visited[cur].coveredAtoms

		for _, next := range g.forward[cur] {
			if _, seen := visited[next]; seen {
				continue
			}
			covered := make(map[index.AtomIndex]struct{}, len(curCovered)+len(g.vertices[next].Tuple))
			for a := range curCovered {
				covered[a] = struct{}{}
			}
			for _, a := range g.vertices[next].Tuple {
				covered[a] = struct{}{}
			}
			visited[next] = chainFrame{coveredAtoms: covered, parent: cur, hasParent: true}

			if supersetOfAtoms(covered, want) {
				return backtrace(visited, next), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// ComputeAdmissibleChainForStates is ComputeAdmissibleChain's
// state-query overload: it returns the shortest root-to-v chain whose
// vertices collectively contain every state in targets.
func (g *TupleGraph) ComputeAdmissibleChainForStates(targets []index.StateIndex) ([]index.VertexIndex, bool) {
	want := stateSet(targets)
	visited := map[index.VertexIndex]chainFrame{
		g.RootVertex: {coveredStates: stateSet(g.vertices[g.RootVertex].States)},
	}
	if supersetOfStates(visited[g.RootVertex].coveredStates, want) {
		return []index.VertexIndex{g.RootVertex}, true
	}

	queue := []index.VertexIndex{g.RootVertex}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curCovered := visited[cur].coveredStates

		for _, next := range g.forward[cur] {
			if _, seen := visited[next]; seen {
				continue
			}
			covered := make(map[index.StateIndex]struct{}, len(curCovered)+len(g.vertices[next].States))
			for s := range curCovered {
				covered[s] = struct{}{}
			}
			for _, s := range g.vertices[next].States {
				covered[s] = struct{}{}
			}
			visited[next] = chainFrame{coveredStates: covered, parent: cur, hasParent: true}

			if supersetOfStates(covered, want) {
				return backtrace(visited, next), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}
