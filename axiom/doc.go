// Package axiom picks and runs one of the two axiom-closure strategies
// config.Options.SearchMode names: LiftedEvaluator exhaustively retests
// every ground axiom on every pass, while GroundedEvaluator builds a
// body-atom trigger index once at construction and only retests axioms
// a worklist of newly-derived atoms actually touches. A ProblemRepository
// whose axioms do not implement problem.ConditionedAxiom cannot be
// indexed this way; GroundedEvaluator degrades to LiftedEvaluator's
// exhaustive rescan in that case.
package axiom
