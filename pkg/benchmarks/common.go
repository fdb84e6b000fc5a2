package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/moea/pkg/framework"
)

func unitBounds(numVars int) []framework.Bounds {
	b := make([]framework.Bounds, numVars)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

// uniformPopulation samples real vectors uniformly within the bounds.
func uniformPopulation(popSize int, b []framework.Bounds, rng *rand.Rand) []framework.Solution {
	population := make([]framework.Solution, popSize)
	for i := 0; i < popSize; i++ {
		vars := make([]float64, len(b))
		for j := range vars {
			vars[j] = b[j].L + rng.Float64()*(b[j].H-b[j].L)
		}
		population[i] = framework.NewRealSolution(vars, b)
	}
	return population
}

// zdtG is the distance function shared by ZDT1-3.
func zdtG(x []float64) float64 {
	if len(x) < 2 {
		return 1.0
	}
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}

// nonDominated filters a sampled front down to its non-dominated points.
func nonDominated(points []framework.ObjectiveSpacePoint) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, 0, len(points))
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i != j && weaklyBetter(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return out
}

func weaklyBetter(a, b framework.ObjectiveSpacePoint) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}
	return strict
}

// ReferencePoint is the nadir of the front shifted by 10% of its range,
// never less than 0.1, in every objective.
func ReferencePoint(front []framework.ObjectiveSpacePoint) []float64 {
	if len(front) == 0 {
		return nil
	}
	m := len(front[0])
	ref := make([]float64, m)
	for i := 0; i < m; i++ {
		column := make([]float64, len(front))
		for j, p := range front {
			column[j] = p[i]
		}
		lo, hi := floats.Min(column), floats.Max(column)
		ref[i] = hi + math.Max(0.1*(hi-lo), 0.1)
	}
	return ref
}

func nan() float64 {
	return math.NaN()
}
