package pareto

import (
	"fmt"
	"math"
)

// Comparator orders two individuals by dominance: -1 when a dominates b,
// 1 when b dominates a and 0 when neither does.
type Comparator func(a, b *Individual) (int, error)

// CompareDominance is the constrained dominance relation. A feasible
// individual dominates an infeasible one; between two infeasible ones the
// smaller violation wins. Equal violations, and pairs of feasible
// individuals, fall back to Pareto dominance on the objectives.
func CompareDominance(a, b *Individual) (int, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}
	return constrainedDominance(a, b), nil
}

// constrainedDominance assumes both individuals were validated.
func constrainedDominance(a, b *Individual) int {
	switch aOK, bOK := a.Feasible(), b.Feasible(); {
	case !aOK && !bOK:
		if a.ConstraintViolation > b.ConstraintViolation {
			return -1
		}
		if a.ConstraintViolation < b.ConstraintViolation {
			return 1
		}
	case aOK && !bOK:
		return -1
	case !aOK && bOK:
		return 1
	}

	return compareObjectives(a.Objectives, b.Objectives)
}

// CompareObjectives is plain Pareto dominance, ignoring constraints.
func CompareObjectives(a, b *Individual) (int, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}
	return compareObjectives(a.Objectives, b.Objectives), nil
}

// Dominates reports whether a dominates b under the constrained relation.
// Individuals that cannot be compared dominate nothing.
func Dominates(a, b *Individual) bool {
	c, err := CompareDominance(a, b)
	return err == nil && c < 0
}

func compareObjectives(a, b []float64) int {
	aBetter, bBetter := false, false
	for i := range a {
		if a[i] < b[i] {
			aBetter = true
		} else if b[i] < a[i] {
			bBetter = true
		}
		if aBetter && bBetter {
			return 0
		}
	}
	switch {
	case aBetter:
		return -1
	case bBetter:
		return 1
	}
	return 0
}

// equalObjectives reports whether two objective vectors are identical.
func equalObjectives(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func checkComparable(a, b *Individual) error {
	if err := checkIndividual(a); err != nil {
		return err
	}
	if err := checkIndividual(b); err != nil {
		return err
	}
	if len(a.Objectives) != len(b.Objectives) {
		return fmt.Errorf("%w: %d and %d objectives", ErrObjectiveMismatch, len(a.Objectives), len(b.Objectives))
	}
	return nil
}

func checkIndividual(ind *Individual) error {
	if len(ind.Objectives) == 0 {
		return ErrNoObjectives
	}
	for i, v := range ind.Objectives {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: objective %d", ErrNaNObjective, i)
		}
	}
	if math.IsNaN(ind.ConstraintViolation) {
		return fmt.Errorf("%w: constraint violation", ErrNaNObjective)
	}
	return nil
}

// checkPopulation validates every individual and that all share one
// objective count. It returns that count.
func checkPopulation(pop []*Individual) (int, error) {
	if len(pop) == 0 {
		return 0, nil
	}
	m := len(pop[0].Objectives)
	for i, ind := range pop {
		if err := checkIndividual(ind); err != nil {
			return 0, fmt.Errorf("individual %d: %w", i, err)
		}
		if len(ind.Objectives) != m {
			return 0, fmt.Errorf("%w: individual %d has %d objectives, expected %d", ErrObjectiveMismatch, i, len(ind.Objectives), m)
		}
	}
	return m, nil
}
