// Package problem declares the external collaborator contracts the search
// substrate consumes but never implements: the formalism layer (PDDL
// parsing, domains, predicates, ground actions/axioms), the heuristic
// layer, and the canonical-graph kernel. Concrete implementations of
// these interfaces live outside this module; the substrate is written
// entirely against them so it has no compile-time dependency on any
// particular grounding or parsing strategy.
package problem
