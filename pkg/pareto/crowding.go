package pareto

import (
	"fmt"
	"math"
	"sort"
)

// DensityFunc scores every member of one front and writes its Density.
// Larger values mark more isolated members, which survive truncation.
// Previous Density values are discarded. The front's order is left as is.
type DensityFunc func(front []*Individual) error

// CrowdingDistance is NSGA-II's crowding distance: for each objective,
// the members are stably ordered by that objective, the two ends get +Inf
// and every other member adds the normalised gap between its neighbours.
// Fronts of one or two members are all +Inf.
func CrowdingDistance(front []*Individual) error {
	m, err := checkFront(front)
	if err != nil {
		return err
	}

	n := len(front)
	for _, ind := range front {
		ind.Density = 0
	}
	if n <= 2 {
		for _, ind := range front {
			ind.Density = math.Inf(1)
		}
		return nil
	}

	order := make([]int, n)
	for obj := 0; obj < m; obj++ {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(x, y int) bool {
			return front[order[x]].Objectives[obj] < front[order[y]].Objectives[obj]
		})

		first, last := front[order[0]], front[order[n-1]]
		first.Density = math.Inf(1)
		last.Density = math.Inf(1)

		objectiveRange := last.Objectives[obj] - first.Objectives[obj]
		if !(objectiveRange > 0) || isInf(objectiveRange) {
			continue
		}

		for k := 1; k < n-1; k++ {
			gap := front[order[k+1]].Objectives[obj] - front[order[k-1]].Objectives[obj]
			front[order[k]].Density += gap / objectiveRange
		}
	}
	return nil
}

func checkFront(front []*Individual) (int, error) {
	if len(front) == 0 {
		return 0, ErrEmptyFront
	}
	m, err := checkPopulation(front)
	if err != nil {
		return 0, fmt.Errorf("scoring front: %w", err)
	}
	return m, nil
}

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}
