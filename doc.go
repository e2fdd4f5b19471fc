// Package mimir implements a lifted, first-order classical-planning
// state-space exploration engine: breadth-first, A*, greedy best-first,
// Iterated Width, and Serialized Iterated Width search over a packed,
// interned state representation, plus the reachability-graph artifacts
// built on top of a search run — StateSpace, FaithfulAbstraction,
// GeneralizedStateSpace, and TupleGraph.
//
// The substrate is organized into narrow packages under this module root:
//
//	index/       — dense index newtypes and the segmented-vector arena
//	packedstate/ — the compact interned state representation
//	problem/     — the external collaborator interfaces the core consumes
//	state/       — state interning and axiom closure
//	strategy/    — goal, pruning, and exploration strategies
//	novelty/     — tuple-index encoding and the dynamic novelty table
//	canonical/   — the canonical-form graph adapter used for symmetry pruning
//	brfs/astar/gbfs/iw/siw/ — the search algorithms
//	statespace/abstraction/generalized/tuplegraph/ — post-search graph artifacts
//	config/      — the single Options record threaded into every constructor
//	eventhandler/telemetry/ — observability: the observer interface, zap
//	  logging, and Prometheus metrics
//
// No package here implements the formalism layer (PDDL parsing, domains,
// predicates) or a heuristic; those are external collaborators consumed
// through the problem package's interfaces.
package mimir
