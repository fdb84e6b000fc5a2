package pareto

import (
	"fmt"
	"sort"
)

// Replacement picks the survivors of a generation.
type Replacement interface {
	Replace(population, offspring []*Individual, n int) ([]*Individual, error)
}

// RankingAndDensityReplacement ranks parents and offspring together and
// fills the next population front by front. The first front that does not
// fit whole is truncated by density, most isolated first.
type RankingAndDensityReplacement struct {
	Rank    RankingFunc
	Density DensityFunc
}

func NewRankingAndDensityReplacement(rank RankingFunc, density DensityFunc) *RankingAndDensityReplacement {
	return &RankingAndDensityReplacement{
		Rank:    rank,
		Density: density,
	}
}

// NewCrowdingReplacement is the NSGA-II survivor selection.
func NewCrowdingReplacement() *RankingAndDensityReplacement {
	return NewRankingAndDensityReplacement(NonDominatedSort, CrowdingDistance)
}

// Replace returns exactly n individuals taken from population and
// offspring. Every front that contributes survivors has its density
// refreshed. Neither input slice is modified.
func (r *RankingAndDensityReplacement) Replace(population, offspring []*Individual, n int) ([]*Individual, error) {
	pool := make([]*Individual, 0, len(population)+len(offspring))
	pool = append(pool, population...)
	pool = append(pool, offspring...)

	if n < 0 || len(pool) < n {
		return nil, fmt.Errorf("%w: %d requested from a pool of %d", ErrPoolTooSmall, n, len(pool))
	}

	fronts, err := r.Rank(pool)
	if err != nil {
		return nil, fmt.Errorf("ranking replacement pool: %w", err)
	}

	survivors := make([]*Individual, 0, n)
	for _, front := range fronts {
		remaining := n - len(survivors)
		if remaining == 0 {
			break
		}
		if err := r.Density(front); err != nil {
			return nil, fmt.Errorf("scoring front %d: %w", front[0].Rank, err)
		}
		if len(front) <= remaining {
			survivors = append(survivors, front...)
			continue
		}
		survivors = append(survivors, MostIsolated(front, remaining)...)
	}
	return survivors, nil
}

// MostIsolated returns the k members with the largest Density, ties kept in
// front order. The front itself is not reordered.
func MostIsolated(front []*Individual, k int) []*Individual {
	sorted := make([]*Individual, len(front))
	copy(sorted, front)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Density > sorted[j].Density
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}
