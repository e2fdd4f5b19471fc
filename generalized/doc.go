// Package generalized builds the cross-problem quotient of a domain's
// state spaces: given one StateSpace per problem instance plus each
// vertex's canonical-form certificate, GeneralizedStateSpace merges
// vertices sharing a certificate into a single class vertex and
// transitions between the same class-vertex pair into a single class
// edge, with provenance kept back to the contributing per-problem
// vertices and edges.
package generalized
