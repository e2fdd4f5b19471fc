// Package abstraction builds faithful abstractions: state spaces built
// with symmetry pruning permanently enabled, so every vertex is a class
// of concrete states sharing one canonical-form certificate. Build runs
// one problem at a time; BuildBatch fans a slice of problems out over a
// worker pool and drops any that time out or exceed a state-count cap.
package abstraction
