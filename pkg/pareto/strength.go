package pareto

import (
	"sort"
)

// StrengthRanking groups a population by SPEA2 raw fitness. The strength
// of an individual is the number of others it dominates; its raw fitness
// is the summed strength of everyone dominating it. Fronts hold equal raw
// fitness in increasing order, so front 0 is the non-dominated set.
func StrengthRanking(population []*Individual) (Fronts, error) {
	if _, err := checkPopulation(population); err != nil {
		return nil, err
	}
	n := len(population)
	if n == 0 {
		return Fronts{}, nil
	}

	dominates := make([][]bool, n)
	for i := range dominates {
		dominates[i] = make([]bool, n)
	}
	strength := make([]int, n)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			switch constrainedDominance(population[i], population[j]) {
			case -1:
				dominates[i][j] = true
				strength[i]++
			case 1:
				dominates[j][i] = true
				strength[j]++
			}
		}
	}

	raw := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dominates[j][i] {
				raw[i] += strength[j]
			}
		}
	}

	levels := make(map[int][]int)
	for i, r := range raw {
		levels[r] = append(levels[r], i)
	}
	keys := make([]int, 0, len(levels))
	for r := range levels {
		keys = append(keys, r)
	}
	sort.Ints(keys)

	fronts := make(Fronts, len(keys))
	for rank, r := range keys {
		members := levels[r]
		fronts[rank] = make([]*Individual, len(members))
		for k, idx := range members {
			population[idx].Rank = rank
			fronts[rank][k] = population[idx]
		}
	}
	return fronts, nil
}
