package pareto

import (
	"github.com/mihai-snyk/moea/pkg/framework"
)

// Unranked is the Rank of an individual no ranking pass has seen yet.
const Unranked = -1

// Individual wraps an evaluated solution with the bookkeeping the
// ranking and density passes write.
type Individual struct {
	Solution   framework.Solution
	Objectives framework.ObjectiveSpacePoint

	// ConstraintViolation is the sum of the negative constraint values,
	// 0 for a feasible solution. ViolatedConstraints counts them.
	ConstraintViolation float64
	ViolatedConstraints int

	// Rank is the index of the front the last ranking pass put the
	// individual in. Density is meaningful only within that front.
	Rank    int
	Density float64
}

func NewIndividual(sol framework.Solution, objectives framework.ObjectiveSpacePoint) *Individual {
	return &Individual{
		Solution:   sol,
		Objectives: objectives,
		Rank:       Unranked,
	}
}

// Feasible reports whether the individual violates no constraint.
func (ind *Individual) Feasible() bool {
	return ind.ConstraintViolation >= 0
}

// Clone returns a shallow copy. The decision vector is shared, the
// objective vector is copied.
func (ind *Individual) Clone() *Individual {
	c := *ind
	c.Objectives = make(framework.ObjectiveSpacePoint, len(ind.Objectives))
	copy(c.Objectives, ind.Objectives)
	return &c
}

// ObjectivesOf extracts the objective vectors of a set of individuals.
func ObjectivesOf(individuals []*Individual) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(individuals))
	for i, ind := range individuals {
		points[i] = ind.Objectives
	}
	return points
}
