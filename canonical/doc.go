// Package canonical implements the canonical-form adapter: ObjectGraph
// turns a packed state into a colored directed graph (object vertices
// colored by type, atom vertices colored by predicate and goal
// membership, argument-position-labelled edges), submits it to a
// problem.CanonicalGraphOracle, and forms the state's certificate from
// the oracle's bytes plus the graph's sorted vertex-color sequence.
// StateSpace, FaithfulAbstraction, and GeneralizedStateSpace all use it
// for certificate-based symmetry reduction.
package canonical
