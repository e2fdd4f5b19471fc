// Package appgen picks and runs one of the two applicable-action
// enumeration strategies config.Options.SearchMode names: LiftedGenerator
// re-tests every candidate's precondition atoms against the queried
// state directly, while GroundedGenerator precomputes a match tree over
// the same candidates and walks it. Both build their action universe
// once, at construction, from DeleteRelaxedProblemExplorator's
// delete-relaxed fixed-point exploration, which is also exported on its
// own for estimating reachable ground atoms ahead of a real search. A
// ProblemRepository whose ground actions do not implement
// problem.ConditionedAction cannot be indexed this way; both generators
// degrade to delegating straight to ApplicableActions in that case.
package appgen
