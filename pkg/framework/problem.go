package framework

import (
	"golang.org/x/exp/rand"
)

// Problem describes the contract a specific multi-objective problem needs to implement.
// All objectives are minimised.
type Problem interface {
	Name() string

	ObjectiveFuncs() []ObjectiveFunc
	Constraints() []Constraint
	Initialize(popSize int, rng *rand.Rand) []Solution

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func(Solution) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Constraint returns the degree to which a solution violates it: 0 when
// the constraint holds, a negative amount otherwise.
type Constraint func(Solution) float64

// Satisfied adapts a boolean predicate into a Constraint with a unit penalty.
func Satisfied(pred func(Solution) bool) Constraint {
	return func(s Solution) float64 {
		if pred(s) {
			return 0
		}
		return -1
	}
}

// LessOrEqual builds a constraint g(x) <= limit whose violation is the overshoot.
func LessOrEqual(g func(Solution) float64, limit float64) Constraint {
	return func(s Solution) float64 {
		if v := g(s); v > limit {
			return limit - v
		}
		return 0
	}
}
