package pareto

import (
	"sort"
)

// EfficientNonDominatedSort produces the same fronts as NonDominatedSort
// using the sequential-search variant of efficient non-dominated sorting.
// Individuals are presorted so that no one can be dominated by a later
// one, then each is placed in the first front holding none of its
// dominators. With few fronts the cost approaches O(MN log N).
func EfficientNonDominatedSort(population []*Individual) (Fronts, error) {
	if _, err := checkPopulation(population); err != nil {
		return nil, err
	}
	n := len(population)
	if n == 0 {
		return Fronts{}, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return presortLess(population[order[x]], population[order[y]])
	})

	var frontIdx [][]int
	for _, idx := range order {
		s := population[idx]
		placed := false
		for k := range frontIdx {
			if !dominatedByFront(s, population, frontIdx[k]) {
				frontIdx[k] = append(frontIdx[k], idx)
				placed = true
				break
			}
		}
		if !placed {
			frontIdx = append(frontIdx, []int{idx})
		}
	}

	fronts := make(Fronts, len(frontIdx))
	for rank, members := range frontIdx {
		sort.Ints(members)
		fronts[rank] = make([]*Individual, len(members))
		for k, idx := range members {
			population[idx].Rank = rank
			fronts[rank][k] = population[idx]
		}
	}
	return fronts, nil
}

// dominatedByFront scans the front newest first: the most recently added
// members are the likeliest dominators.
func dominatedByFront(s *Individual, population []*Individual, front []int) bool {
	for k := len(front) - 1; k >= 0; k-- {
		if constrainedDominance(population[front[k]], s) < 0 {
			return true
		}
	}
	return false
}

// presortLess is a linear extension of constrained dominance: feasible
// first, then smaller violation, then objectives lexicographically.
func presortLess(a, b *Individual) bool {
	aOK, bOK := a.Feasible(), b.Feasible()
	if aOK != bOK {
		return aOK
	}
	if !aOK && a.ConstraintViolation != b.ConstraintViolation {
		return a.ConstraintViolation > b.ConstraintViolation
	}
	for i := range a.Objectives {
		if a.Objectives[i] != b.Objectives[i] {
			return a.Objectives[i] < b.Objectives[i]
		}
	}
	return false
}
