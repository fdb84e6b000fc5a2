package operators

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/pareto"
)

// SelectionFunc picks one parent from the mating pool.
type SelectionFunc func(rng *rand.Rand, pool []*pareto.Individual) *pareto.Individual

// Better prefers the lower rank and, within a rank, the more isolated individual.
func Better(a, b *pareto.Individual) bool {
	return a.Rank < b.Rank || (a.Rank == b.Rank && a.Density > b.Density)
}

// Tournament draws size contestants with replacement and keeps the best.
func Tournament(size int) SelectionFunc {
	if size < 2 {
		size = 2 // minimum tournament size
	}
	return func(rng *rand.Rand, pool []*pareto.Individual) *pareto.Individual {
		best := pool[rng.Intn(len(pool))]
		for i := 1; i < size; i++ {
			contestant := pool[rng.Intn(len(pool))]
			if Better(contestant, best) {
				best = contestant
			}
		}
		return best
	}
}

// BinaryTournament is the usual NSGA-II parent selection.
func BinaryTournament() SelectionFunc {
	return Tournament(2)
}

// FromArchive draws from the archive with the given probability and from
// the population otherwise. An empty archive always falls back to the
// population.
func FromArchive(archive pareto.Archive, probability float64, pick SelectionFunc) SelectionFunc {
	return func(rng *rand.Rand, population []*pareto.Individual) *pareto.Individual {
		if archive.Len() > 0 && rng.Float64() < probability {
			return pick(rng, archive.Members())
		}
		return pick(rng, population)
	}
}
