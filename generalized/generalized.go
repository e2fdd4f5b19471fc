package generalized

import (
	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/statespace"
)

// ProblemInput is one problem instance's contribution to a
// GeneralizedStateSpace: its own reachability graph, plus each local
// vertex's canonical-form certificate (required under symmetry pruning,
// ignored otherwise).
type ProblemInput struct {
	Space        *statespace.StateSpace
	Certificates [][]byte
}

// EdgeRef is provenance for one contributing local edge: the problem it
// came from and its local EdgeIndex within that problem's StateSpace.
type EdgeRef struct {
	Problem int
	Edge    index.EdgeIndex
}

// ClassEdge is a transition between two class vertices. Members lists
// every per-problem local edge that collapsed into it; under symmetry
// pruning several problems' parallel transitions between the same class
// pair group into one ClassEdge.
type ClassEdge struct {
	From, To index.VertexIndex
	Members  []EdgeRef
}

// VertexRef is provenance for a class vertex: the problem and local
// vertex that first introduced it.
type VertexRef struct {
	Problem int
	Vertex  index.VertexIndex
}

// GeneralizedStateSpace is the quotient of a list of per-problem state
// spaces: a class-vertex graph plus the per-problem local-to-class
// mappings needed to translate back and forth.
type GeneralizedStateSpace struct {
	ClassOrigin []VertexRef
	ClassEdges  []ClassEdge

	// VertexLocalToClass[p][v] is the class vertex local vertex v of
	// problem p maps to. Nil for a problem skipped under symmetry
	// pruning (its initial-state certificate was already present).
	VertexLocalToClass [][]index.VertexIndex
	// EdgeLocalToClass[p][e] is the class edge local edge e of problem p
	// maps to. Nil for a skipped problem.
	EdgeLocalToClass [][]index.EdgeIndex

	// SkippedProblems lists, in input order, the indices of problems
	// whose initial-state certificate was already registered by an
	// earlier problem and were therefore not visited at all.
	SkippedProblems []int

	inputs []ProblemInput
}

// Problem returns the StateSpace for problem index p, as supplied to
// Build, for resolving a VertexRef/EdgeRef's provenance back to concrete
// vertex/edge data.
func (g *GeneralizedStateSpace) Problem(p int) *statespace.StateSpace { return g.inputs[p].Space }

// NumClassVertices returns the number of distinct class vertices.
func (g *GeneralizedStateSpace) NumClassVertices() int { return len(g.ClassOrigin) }

// NumClassEdges returns the number of distinct class edges.
func (g *GeneralizedStateSpace) NumClassEdges() int { return len(g.ClassEdges) }

// Build forms the quotient of inputs, visited in order. Without
// symmetryPruning every local vertex and edge gets its own class
// vertex/edge (a plain union by index offset). With it, vertices sharing
// a certificate fold together, later occurrences map onto the
// already-registered class vertex, a whole problem is skipped once its
// initial vertex's certificate has already been seen, and edges between
// the same class-vertex pair are merged into one ClassEdge regardless of
// which problem contributed them.
func Build(inputs []ProblemInput, symmetryPruning bool) *GeneralizedStateSpace {
	g := &GeneralizedStateSpace{
		VertexLocalToClass: make([][]index.VertexIndex, len(inputs)),
		EdgeLocalToClass:   make([][]index.EdgeIndex, len(inputs)),
		inputs:             inputs,
	}

	if !symmetryPruning {
		buildByOffset(g, inputs)
		return g
	}

	certToClass := map[string]index.VertexIndex{}
	edgeKeyToClass := map[[2]index.VertexIndex]int{}

	for p, in := range inputs {
		n := in.Space.NumVertices()
		initCert := string(in.Certificates[in.Space.InitialVertex])
		if _, seen := certToClass[initCert]; seen {
			g.SkippedProblems = append(g.SkippedProblems, p)
			continue
		}

		local := make([]index.VertexIndex, n)
		for v := 0; v < n; v++ {
			cert := string(in.Certificates[v])
			classV, ok := certToClass[cert]
			if !ok {
				classV = index.VertexIndex(len(g.ClassOrigin))
				certToClass[cert] = classV
				g.ClassOrigin = append(g.ClassOrigin, VertexRef{Problem: p, Vertex: index.VertexIndex(v)})
			}
			local[v] = classV
		}
		g.VertexLocalToClass[p] = local

		numEdges := in.Space.NumEdges()
		localEdges := make([]index.EdgeIndex, numEdges)
		for e := 0; e < numEdges; e++ {
			edge := in.Space.Edge(index.EdgeIndex(e))
			key := [2]index.VertexIndex{local[edge.From], local[edge.To]}
			classE, ok := edgeKeyToClass[key]
			if !ok {
				classE = len(g.ClassEdges)
				edgeKeyToClass[key] = classE
				g.ClassEdges = append(g.ClassEdges, ClassEdge{From: key[0], To: key[1]})
			}
			g.ClassEdges[classE].Members = append(g.ClassEdges[classE].Members, EdgeRef{Problem: p, Edge: index.EdgeIndex(e)})
			localEdges[e] = index.EdgeIndex(classE)
		}
		g.EdgeLocalToClass[p] = localEdges
	}
	return g
}

// buildByOffset implements the no-symmetry-pruning union: every local
// vertex/edge gets a distinct class vertex/edge, numbered by
// concatenating each problem's local indices in input order.
func buildByOffset(g *GeneralizedStateSpace, inputs []ProblemInput) {
	for p, in := range inputs {
		n := in.Space.NumVertices()
		vertexOffset := len(g.ClassOrigin)
		local := make([]index.VertexIndex, n)
		for v := 0; v < n; v++ {
			local[v] = index.VertexIndex(vertexOffset + v)
			g.ClassOrigin = append(g.ClassOrigin, VertexRef{Problem: p, Vertex: index.VertexIndex(v)})
		}
		g.VertexLocalToClass[p] = local

		numEdges := in.Space.NumEdges()
		localEdges := make([]index.EdgeIndex, numEdges)
		for e := 0; e < numEdges; e++ {
			edge := in.Space.Edge(index.EdgeIndex(e))
			classE := index.EdgeIndex(len(g.ClassEdges))
			g.ClassEdges = append(g.ClassEdges, ClassEdge{
				From:    local[edge.From],
				To:      local[edge.To],
				Members: []EdgeRef{{Problem: p, Edge: index.EdgeIndex(e)}},
			})
			localEdges[e] = classE
		}
		g.EdgeLocalToClass[p] = localEdges
	}
}

// InducedSubgraph is a filtered view of a GeneralizedStateSpace: the
// retained class vertices (in ascending order) and every class edge
// whose endpoints are both retained.
type InducedSubgraph struct {
	Vertices []index.VertexIndex
	Edges    []ClassEdge
}

// InducedByClassVertices extracts the subgraph induced by keep: every
// vertex in keep, and every class edge whose endpoints are both in keep.
func (g *GeneralizedStateSpace) InducedByClassVertices(keep map[index.VertexIndex]bool) InducedSubgraph {
	var sub InducedSubgraph
	for v := 0; v < len(g.ClassOrigin); v++ {
		if keep[index.VertexIndex(v)] {
			sub.Vertices = append(sub.Vertices, index.VertexIndex(v))
		}
	}
	for _, e := range g.ClassEdges {
		if keep[e.From] && keep[e.To] {
			sub.Edges = append(sub.Edges, e)
		}
	}
	return sub
}

// InducedByProblems extracts the subgraph induced by the union of every
// class vertex touched by any of the given problem indices.
func (g *GeneralizedStateSpace) InducedByProblems(problems map[int]bool) InducedSubgraph {
	keep := map[index.VertexIndex]bool{}
	for p := range problems {
		if p < 0 || p >= len(g.VertexLocalToClass) {
			continue
		}
		for _, cv := range g.VertexLocalToClass[p] {
			keep[cv] = true
		}
	}
	return g.InducedByClassVertices(keep)
}
