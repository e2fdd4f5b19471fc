package canonical

import (
	"encoding/binary"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/simonstahlberg/mimir-go/index"
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
	"github.com/simonstahlberg/mimir-go/searchutil"
)

const (
	kindObject = 0
	kindAtom   = 1
)

func objectColor(typeColor int) int {
	return kindObject<<24 | typeColor
}

func atomColor(predicateColor int, isGoal bool) int {
	g := 0
	if isGoal {
		g = 1
	}
	return kindAtom<<24 | predicateColor<<1 | g
}

// ObjectGraph is the canonical-form adapter: it builds a
// problem.LabelledGraph from a packed state and turns it into a
// certificate via an oracle, caching certificates by the state's packed
// key. A single ObjectGraph must not be shared across goroutines; each
// search run (or builder thread-pool task) constructs its own.
type ObjectGraph struct {
	repo   problem.ObjectGraphDescriptor
	oracle problem.CanonicalGraphOracle

	goalAtoms       map[index.AtomIndex]struct{}
	excludedObjects map[index.ObjectIndex]struct{}

	cache *lru.Cache[string, []byte]

	lastCert  []byte
	canonized bool
}

// New builds an ObjectGraph. goal supplies the positive goal literals
// used to color goal-membership on atom vertices. When pruneStatic is
// true, objects whose strongly-connected component in the static-atom
// subgraph never touches a dynamic atom are excluded from every graph
// this adapter builds. cacheSize bounds the number of certificates kept.
func New(repo problem.ObjectGraphDescriptor, oracle problem.CanonicalGraphOracle, goal []problem.Literal, pruneStatic bool, cacheSize int) (*ObjectGraph, error) {
	cache, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		return nil, err
	}

	goalAtoms := make(map[index.AtomIndex]struct{}, len(goal))
	for _, lit := range goal {
		if lit.Positive {
			goalAtoms[lit.Atom] = struct{}{}
		}
	}

	g := &ObjectGraph{repo: repo, oracle: oracle, goalAtoms: goalAtoms, cache: cache}
	if pruneStatic {
		g.excludedObjects = computeStaticSCCExclusions(repo)
	}
	return g, nil
}

// computeStaticSCCExclusions partitions objects by the strongly-connected
// components of the subgraph induced by static atoms (an atom's first
// argument is treated as the source of a directed edge to each of its
// remaining arguments), then excludes every component none of whose
// objects appear as an argument of any dynamic (fluent or derived) atom.
// This is computed once per problem, not once per state.
func computeStaticSCCExclusions(repo problem.ObjectGraphDescriptor) map[index.ObjectIndex]struct{} {
	n := repo.NumObjects()
	adj := make([][]int, n)
	for _, atom := range repo.StaticAtoms() {
		args := repo.AtomArguments(atom)
		for i := 1; i < len(args); i++ {
			u, v := int(args[0]), int(args[i])
			adj[u] = append(adj[u], v)
		}
	}

	touched := make(map[int]bool)
	numDynamicAtoms := repo.NumFluentAtoms() + repo.NumDerivedAtoms()
	for a := 0; a < numDynamicAtoms; a++ {
		for _, o := range repo.AtomArguments(index.AtomIndex(a)) {
			touched[int(o)] = true
		}
	}

	sccOf := tarjanSCC(adj, n)
	sccTouched := make(map[int]bool)
	for o := range touched {
		sccTouched[sccOf[o]] = true
	}

	excluded := make(map[index.ObjectIndex]struct{})
	for o := 0; o < n; o++ {
		if !sccTouched[sccOf[o]] {
			excluded[index.ObjectIndex(o)] = struct{}{}
		}
	}
	return excluded
}

// Canonize builds state's object graph, submits it to the oracle, and
// records the resulting certificate for a subsequent Certificate call.
// Cached certificates skip graph construction and the oracle entirely.
func (g *ObjectGraph) Canonize(state *packedstate.PackedState) error {
	key := state.Key()
	if cert, ok := g.cache.Get(key); ok {
		g.lastCert = cert
		g.canonized = true
		return nil
	}

	lg, colors := g.build(state)
	certBytes, err := g.oracle.Canonize(lg)
	if err != nil {
		g.canonized = false
		return err
	}

	sort.Ints(colors)
	cert := append(append([]byte(nil), certBytes...), encodeColors(colors)...)
	g.lastCert = cert
	g.canonized = true
	g.cache.Add(key, cert)
	return nil
}

// Certificate returns the certificate computed by the most recent
// Canonize call. It returns searchutil.ErrCanonizeBeforeQuery if
// Canonize has not yet run.
func (g *ObjectGraph) Certificate() ([]byte, error) {
	if !g.canonized {
		return nil, searchutil.ErrCanonizeBeforeQuery
	}
	return g.lastCert, nil
}

// CertificateFor is the common Canonize-then-Certificate sequence
// collapsed into one call, the entry point StateSpace/FaithfulAbstraction
// use for every successor state.
func (g *ObjectGraph) CertificateFor(state *packedstate.PackedState) ([]byte, error) {
	if err := g.Canonize(state); err != nil {
		return nil, err
	}
	return g.Certificate()
}

// build maps state to a colored directed graph: one vertex per
// non-excluded object, one vertex per atom currently true in state, and
// an edge from each atom vertex to each of its argument object vertices
// labelled by argument position. It returns the graph and the (unsorted)
// vertex-color sequence.
func (g *ObjectGraph) build(state *packedstate.PackedState) (problem.LabelledGraph, []int) {
	n := g.repo.NumObjects()
	objVertex := make([]int, n)
	var vertices []problem.GraphVertex
	colors := make([]int, 0, n+len(state.FluentAtoms)+len(state.DerivedAtoms))

	for o := 0; o < n; o++ {
		if _, excluded := g.excludedObjects[index.ObjectIndex(o)]; excluded {
			objVertex[o] = -1
			continue
		}
		c := objectColor(g.repo.ObjectColor(index.ObjectIndex(o)))
		objVertex[o] = len(vertices)
		vertices = append(vertices, problem.GraphVertex{Color: c})
		colors = append(colors, c)
	}

	var edges []problem.GraphEdge
	addAtoms := func(atoms []index.AtomIndex) {
		for _, atom := range atoms {
			_, isGoal := g.goalAtoms[atom]
			c := atomColor(g.repo.AtomPredicateColor(atom), isGoal)
			atomVertex := len(vertices)
			vertices = append(vertices, problem.GraphVertex{Color: c})
			colors = append(colors, c)

			for pos, arg := range g.repo.AtomArguments(atom) {
				target := objVertex[int(arg)]
				if target < 0 {
					// A dynamic atom's argument is, by construction of
					// computeStaticSCCExclusions, always in the touched
					// set and therefore never excluded.
					continue
				}
				edges = append(edges, problem.GraphEdge{From: atomVertex, To: target, Label: pos})
			}
		}
	}
	addAtoms(state.FluentAtoms)
	addAtoms(state.DerivedAtoms)

	return problem.LabelledGraph{Vertices: vertices, Edges: edges}, colors
}

// encodeColors serializes a sorted color sequence into a deterministic
// byte suffix appended to the oracle's certificate.
func encodeColors(colors []int) []byte {
	buf := make([]byte, len(colors)*8)
	for i, c := range colors {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(int64(c)))
	}
	return buf
}
