package pareto

import (
	"sort"
)

// Fronts partitions a population into ordered fronts. Under the
// dominance-based rankings (NonDominatedSort, EfficientNonDominatedSort)
// front 0 is non-dominated and every member of front k+1 is dominated by
// some member of front k. StrengthRanking groups members by raw fitness
// instead: a member is never placed ahead of one that dominates it, but
// front k need not dominate front k+1.
type Fronts [][]*Individual

// Len returns the number of individuals across all fronts.
func (f Fronts) Len() int {
	n := 0
	for _, front := range f {
		n += len(front)
	}
	return n
}

// Flatten returns all individuals, front by front.
func (f Fronts) Flatten() []*Individual {
	out := make([]*Individual, 0, f.Len())
	for _, front := range f {
		out = append(out, front...)
	}
	return out
}

// RankingFunc partitions a population into fronts and writes each
// member's Rank. Implementations never create or drop individuals.
type RankingFunc func(population []*Individual) (Fronts, error)

// NonDominatedSort is Deb's fast non-dominated sort under constrained
// dominance. Each pair is compared once. Members of a front keep their
// relative input order.
func NonDominatedSort(population []*Individual) (Fronts, error) {
	if _, err := checkPopulation(population); err != nil {
		return nil, err
	}
	n := len(population)
	if n == 0 {
		return Fronts{}, nil
	}

	dominated := make([][]int, n)
	domCount := make([]int, n)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			switch constrainedDominance(population[i], population[j]) {
			case -1:
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			case 1:
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	var current []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			current = append(current, i)
		}
	}

	var fronts Fronts
	for rank := 0; len(current) > 0; rank++ {
		sort.Ints(current)
		front := make([]*Individual, len(current))
		for k, idx := range current {
			population[idx].Rank = rank
			front[k] = population[idx]
		}
		fronts = append(fronts, front)

		var next []int
		for _, idx := range current {
			for _, d := range dominated[idx] {
				domCount[d]--
				if domCount[d] == 0 {
					next = append(next, d)
				}
			}
		}
		current = next
	}

	return fronts, nil
}

// FirstFront returns the non-dominated members of a population.
func FirstFront(population []*Individual) ([]*Individual, error) {
	fronts, err := NonDominatedSort(population)
	if err != nil || len(fronts) == 0 {
		return nil, err
	}
	return fronts[0], nil
}
