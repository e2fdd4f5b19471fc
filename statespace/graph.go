package statespace

import (
	"math"

	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/openlist"
	"github.com/simonstahlberg/mimir-go/state"
	"github.com/simonstahlberg/mimir-go/strategy"
)

// Vertex is one state of the reachability graph: the interned state it
// represents (the representative, under symmetry pruning), its distances
// to the goal, and its membership bits.
type Vertex struct {
	State              index.StateIndex
	UnitGoalDistance   int     // -1 means unreachable from any goal vertex
	ActionGoalDistance float64 // +Inf means unreachable from any goal vertex
	IsInitial          bool
	IsGoal             bool
	IsUnsolvable       bool
	IsAlive            bool
}

// Edge is a directed transition between two vertices, carrying the
// action (and its cost) that produced it.
type Edge struct {
	From, To   index.VertexIndex
	Action     index.ActionIndex
	ActionCost float64
}

// StateSpace is the arena-backed reachability graph of one problem
// instance: a dense vertex vector and a dense edge vector, with sorted
// out/in-edge index lists maintained per vertex.
type StateSpace struct {
	ProblemName string
	States      *state.StateRepository

	vertices *index.SegmentedVector[Vertex]
	edges    *index.SegmentedVector[Edge]
	outEdges [][]index.EdgeIndex
	inEdges  [][]index.EdgeIndex

	InitialVertex      index.VertexIndex
	GoalVertices       []index.VertexIndex
	UnsolvableVertices []index.VertexIndex

	// StateToVertex maps every interned concrete state discovered during
	// the build to the vertex representing it (its own vertex without
	// symmetry pruning, its representative's vertex with it).
	StateToVertex map[index.StateIndex]index.VertexIndex

	// CertificateToVertex maps every canonical-form certificate seen
	// during the build to its representative vertex. Populated only when
	// the build ran with symmetry pruning; nil otherwise.
	CertificateToVertex map[string]index.VertexIndex
}

// NumVertices returns the number of vertices in the graph.
func (s *StateSpace) NumVertices() int { return s.vertices.Len() }

// NumEdges returns the number of edges in the graph.
func (s *StateSpace) NumEdges() int { return s.edges.Len() }

// Vertex returns vertex v's record.
func (s *StateSpace) Vertex(v index.VertexIndex) Vertex { return s.vertices.Get(int(v)) }

// Edge returns edge e's record.
func (s *StateSpace) Edge(e index.EdgeIndex) Edge { return s.edges.Get(int(e)) }

// OutEdges returns the indices of v's outgoing edges.
func (s *StateSpace) OutEdges(v index.VertexIndex) []index.EdgeIndex { return s.outEdges[v] }

// InEdges returns the indices of v's incoming edges.
func (s *StateSpace) InEdges(v index.VertexIndex) []index.EdgeIndex { return s.inEdges[v] }

func (s *StateSpace) addVertex(stateIdx index.StateIndex) index.VertexIndex {
	v := index.VertexIndex(s.vertices.PushBack(Vertex{
		State:              stateIdx,
		UnitGoalDistance:   -1,
		ActionGoalDistance: math.Inf(1),
	}))
	s.outEdges = append(s.outEdges, nil)
	s.inEdges = append(s.inEdges, nil)
	return v
}

func (s *StateSpace) addEdge(from, to index.VertexIndex, action index.ActionIndex, cost float64) {
	e := index.EdgeIndex(s.edges.PushBack(Edge{From: from, To: to, Action: action, ActionCost: cost}))
	s.outEdges[from] = append(s.outEdges[from], e)
	s.inEdges[to] = append(s.inEdges[to], e)
}

// finalize marks goal/initial membership, computes both goal-distance
// measures via a backward pass, and classifies unsolvable/alive
// vertices from the resulting unit distances.
func (s *StateSpace) finalize(goal strategy.GoalStrategy) {
	n := s.vertices.Len()
	for v := 0; v < n; v++ {
		vx := s.vertices.Get(v)
		st := s.States.StateByIndex(vx.State)
		if goal.TestDynamicGoal(st.Packed) {
			vx.IsGoal = true
			s.GoalVertices = append(s.GoalVertices, index.VertexIndex(v))
		}
		s.vertices.Set(v, vx)
	}

	initVx := s.vertices.Get(int(s.InitialVertex))
	initVx.IsInitial = true
	s.vertices.Set(int(s.InitialVertex), initVx)

	s.computeUnitGoalDistances()
	s.computeActionGoalDistances()

	for v := 0; v < n; v++ {
		vx := s.vertices.Get(v)
		if vx.UnitGoalDistance < 0 {
			vx.IsUnsolvable = true
			s.UnsolvableVertices = append(s.UnsolvableVertices, index.VertexIndex(v))
		} else {
			vx.IsAlive = true
		}
		s.vertices.Set(v, vx)
	}
}

// computeUnitGoalDistances runs a multi-source backward BFS from every
// goal vertex over the reversed edge relation.
func (s *StateSpace) computeUnitGoalDistances() {
	n := s.vertices.Len()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}

	queue := make([]index.VertexIndex, 0, len(s.GoalVertices))
	for _, g := range s.GoalVertices {
		dist[g] = 0
		queue = append(queue, g)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, eIdx := range s.inEdges[v] {
			e := s.edges.Get(int(eIdx))
			if dist[e.From] == -1 {
				dist[e.From] = dist[v] + 1
				queue = append(queue, e.From)
			}
		}
	}

	for v := 0; v < n; v++ {
		vx := s.vertices.Get(v)
		vx.UnitGoalDistance = dist[v]
		s.vertices.Set(v, vx)
	}
}

// computeActionGoalDistances runs a multi-source backward Dijkstra from
// every goal vertex over the reversed edge relation, weighted by
// per-edge action cost. Stale heap entries are detected the same way
// astar.AStar detects them: compare a popped entry's key against the
// vertex's currently recorded best distance.
func (s *StateSpace) computeActionGoalDistances() {
	n := s.vertices.Len()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	pq := openlist.NewPriorityQueue[float64, index.VertexIndex](func(a, b float64) bool { return a < b })
	for _, g := range s.GoalVertices {
		dist[g] = 0
		pq.Insert(0, g)
	}

	for !pq.Empty() {
		entry := pq.Pop()
		v := entry.Value
		if entry.Key > dist[v] {
			continue
		}
		for _, eIdx := range s.inEdges[v] {
			e := s.edges.Get(int(eIdx))
			nd := dist[v] + e.ActionCost
			if nd < dist[e.From] {
				dist[e.From] = nd
				pq.Insert(nd, e.From)
			}
		}
	}

	for v := 0; v < n; v++ {
		vx := s.vertices.Get(v)
		vx.ActionGoalDistance = dist[v]
		s.vertices.Set(v, vx)
	}
}

// removeUnsolvable compacts the graph, dropping every unsolvable vertex
// and any edge incident to one, and remapping the surviving indices.
func (s *StateSpace) removeUnsolvable() {
	n := s.vertices.Len()
	keep := make([]bool, n)
	remap := make([]index.VertexIndex, n)
	newVertices := index.NewSegmentedVector[Vertex]()

	for v := 0; v < n; v++ {
		vx := s.vertices.Get(v)
		if vx.IsUnsolvable {
			remap[v] = index.NoneVertex
			continue
		}
		keep[v] = true
		remap[v] = index.VertexIndex(newVertices.PushBack(vx))
	}

	newEdges := index.NewSegmentedVector[Edge]()
	newOut := make([][]index.EdgeIndex, newVertices.Len())
	newIn := make([][]index.EdgeIndex, newVertices.Len())
	for e := 0; e < s.edges.Len(); e++ {
		edge := s.edges.Get(e)
		if !keep[edge.From] || !keep[edge.To] {
			continue
		}
		nf, nt := remap[edge.From], remap[edge.To]
		idx := index.EdgeIndex(newEdges.PushBack(Edge{From: nf, To: nt, Action: edge.Action, ActionCost: edge.ActionCost}))
		newOut[nf] = append(newOut[nf], idx)
		newIn[nt] = append(newIn[nt], idx)
	}

	for st, v := range s.StateToVertex {
		if r := remap[v]; r.IsNone() {
			delete(s.StateToVertex, st)
		} else {
			s.StateToVertex[st] = r
		}
	}
	for c, v := range s.CertificateToVertex {
		if r := remap[v]; r.IsNone() {
			delete(s.CertificateToVertex, c)
		} else {
			s.CertificateToVertex[c] = r
		}
	}

	s.vertices = newVertices
	s.edges = newEdges
	s.outEdges = newOut
	s.inEdges = newIn
	s.InitialVertex = remap[s.InitialVertex]
	s.GoalVertices = remapVertices(s.GoalVertices, remap)
	s.UnsolvableVertices = nil
}

func remapVertices(list []index.VertexIndex, remap []index.VertexIndex) []index.VertexIndex {
	out := make([]index.VertexIndex, 0, len(list))
	for _, v := range list {
		if r := remap[v]; !r.IsNone() {
			out = append(out, r)
		}
	}
	return out
}
