package operators

import (
	"sort"

	"golang.org/x/exp/rand"
)

// CrossoverFunc represents a crossover operation on integer chromosomes
type CrossoverFunc func(rng *rand.Rand, parent1, parent2 []int) (child1, child2 []int)

// OnePointCrossover creates offspring by selecting a random cut point
func OnePointCrossover(rng *rand.Rand, p1, p2 []int) ([]int, []int) {
	child1 := make([]int, len(p1))
	child2 := make([]int, len(p2))

	point := rng.Intn(len(p1))
	copy(child1[:point], p1[:point])
	copy(child2[:point], p2[:point])
	copy(child1[point:], p2[point:])
	copy(child2[point:], p1[point:])

	return child1, child2
}

// TwoPointCrossover creates offspring using two random cut points
func TwoPointCrossover(rng *rand.Rand, p1, p2 []int) ([]int, []int) {
	child1 := make([]int, len(p1))
	child2 := make([]int, len(p2))

	point1 := rng.Intn(len(p1))
	point2 := rng.Intn(len(p1))
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	for i := range p1 {
		if i < point1 || i >= point2 {
			child1[i] = p1[i]
			child2[i] = p2[i]
		} else {
			child1[i] = p2[i]
			child2[i] = p1[i]
		}
	}

	return child1, child2
}

// UniformCrossover creates offspring by randomly selecting from each parent
func UniformCrossover(rng *rand.Rand, p1, p2 []int) ([]int, []int) {
	child1 := make([]int, len(p1))
	child2 := make([]int, len(p2))

	for i := range p1 {
		if rng.Float64() < 0.5 {
			child1[i] = p1[i]
			child2[i] = p2[i]
		} else {
			child1[i] = p2[i]
			child2[i] = p1[i]
		}
	}

	return child1, child2
}

// KPointCrossover returns a k-point crossover. k is capped at len-1 cut
// points for short chromosomes.
func KPointCrossover(k int) CrossoverFunc {
	return func(rng *rand.Rand, p1, p2 []int) ([]int, []int) {
		child1 := make([]int, len(p1))
		child2 := make([]int, len(p2))
		cuts := k
		if cuts > len(p1)-1 {
			cuts = len(p1) - 1
		}

		// Distinct cut points in [1, len).
		points := make([]int, 0, cuts+2)
		points = append(points, 0)
		if cuts > 0 {
			for _, p := range rng.Perm(len(p1) - 1)[:cuts] {
				points = append(points, p+1)
			}
		}
		sort.Ints(points[1:])
		points = append(points, len(p1))

		swap := false
		for i := 0; i < len(points)-1; i++ {
			for j := points[i]; j < points[i+1]; j++ {
				if swap {
					child1[j] = p2[j]
					child2[j] = p1[j]
				} else {
					child1[j] = p1[j]
					child2[j] = p2[j]
				}
			}
			swap = !swap
		}

		return child1, child2
	}
}

// GroupPreservingCrossover treats every gene value of the first parent as
// a group (e.g. the tasks placed on one machine) and inherits each group
// as a unit.
func GroupPreservingCrossover(rng *rand.Rand, p1, p2 []int) ([]int, []int) {
	child1 := make([]int, len(p1))
	child2 := make([]int, len(p2))

	groups := make(map[int][]int)
	var keys []int
	for gene, value := range p1 {
		if _, ok := groups[value]; !ok {
			keys = append(keys, value)
		}
		groups[value] = append(groups[value], gene)
	}

	// Iterate in first-seen order so a seeded rng reproduces the children.
	for _, key := range keys {
		fromFirst := rng.Float64() < 0.5
		for _, gene := range groups[key] {
			if fromFirst {
				child1[gene] = p1[gene]
				child2[gene] = p2[gene]
			} else {
				child1[gene] = p2[gene]
				child2[gene] = p1[gene]
			}
		}
	}

	return child1, child2
}

// CrossoverByName resolves the integer crossover names accepted in run
// configurations.
func CrossoverByName(name string) (CrossoverFunc, bool) {
	switch name {
	case "OnePoint":
		return OnePointCrossover, true
	case "TwoPoint":
		return TwoPointCrossover, true
	case "Uniform":
		return UniformCrossover, true
	case "KPoint":
		return KPointCrossover(3), true
	case "GroupPreserving":
		return GroupPreservingCrossover, true
	}
	return nil, false
}
