package strategy

import (
	"github.com/simonstahlberg/mimir-go/packedstate"
	"github.com/simonstahlberg/mimir-go/problem"
)

// ProblemGoalStrategy is the default GoalStrategy: the problem's own
// goal-literal list and static-goal check, with no additional
// quantified structure.
type ProblemGoalStrategy struct {
	repo problem.ProblemRepository
}

// NewProblemGoalStrategy wraps repo's goal literals as a GoalStrategy.
func NewProblemGoalStrategy(repo problem.ProblemRepository) *ProblemGoalStrategy {
	return &ProblemGoalStrategy{repo: repo}
}

func (g *ProblemGoalStrategy) TestStaticGoal() bool {
	return g.repo.StaticGoalHolds()
}

func (g *ProblemGoalStrategy) TestDynamicGoal(state *packedstate.PackedState) bool {
	for _, lit := range g.repo.GoalLiterals() {
		holds := state.HasFluentAtom(lit.Atom) || state.HasDerivedAtom(lit.Atom)
		if holds != lit.Positive {
			return false
		}
	}
	return true
}

// GoalCountingStrategy is SIW's dynamic-goal strategy: it accepts any
// state with strictly fewer unsatisfied top-level goal literals than a
// fixed baseline count captured at construction time.
type GoalCountingStrategy struct {
	goal     []problem.Literal
	baseline int
}

// NewGoalCountingStrategy captures CountUnsatisfied(goal, startState) as
// the baseline a successor subproblem must beat.
func NewGoalCountingStrategy(goal []problem.Literal, startState *packedstate.PackedState) *GoalCountingStrategy {
	return &GoalCountingStrategy{goal: goal, baseline: problem.CountUnsatisfied(goal, startState)}
}

// TestStaticGoal is always true: SIW's sub-searches are never statically
// unsolvable by construction (the baseline itself is a reachable state).
func (g *GoalCountingStrategy) TestStaticGoal() bool { return true }

func (g *GoalCountingStrategy) TestDynamicGoal(state *packedstate.PackedState) bool {
	return problem.CountUnsatisfied(g.goal, state) < g.baseline
}

// UnsatisfiedCount exposes the baseline's own goal-counting value for a
// given state, used by SIW to detect when a subproblem has already
// reached the true goal (CountUnsatisfied == 0).
func (g *GoalCountingStrategy) UnsatisfiedCount(state *packedstate.PackedState) int {
	return problem.CountUnsatisfied(g.goal, state)
}
