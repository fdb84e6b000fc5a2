package pareto_test

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/pareto"
)

func newInd(objectives ...float64) *pareto.Individual {
	return pareto.NewIndividual(nil, framework.ObjectiveSpacePoint(objectives))
}

func newInfeasible(violation float64, objectives ...float64) *pareto.Individual {
	ind := newInd(objectives...)
	ind.ConstraintViolation = violation
	ind.ViolatedConstraints = 1
	return ind
}

func objectivesOf(inds []*pareto.Individual) [][]float64 {
	out := make([][]float64, len(inds))
	for i, ind := range inds {
		out[i] = []float64(ind.Objectives)
	}
	return out
}

// randomPopulation draws n individuals on a coarse grid so that duplicates
// and ties show up. A share of them is made infeasible when constrained.
func randomPopulation(rng *rand.Rand, n, m int, constrained bool) []*pareto.Individual {
	pop := make([]*pareto.Individual, n)
	for i := range pop {
		objs := make([]float64, m)
		for j := range objs {
			objs[j] = float64(rng.Intn(10))
		}
		pop[i] = newInd(objs...)
		if constrained && rng.Float64() < 0.3 {
			pop[i].ConstraintViolation = -float64(1 + rng.Intn(3))
			pop[i].ViolatedConstraints = 1
		}
	}
	return pop
}

// layeredPopulation builds fronts of the given sizes. Front k lies on the
// segment x+y = W shifted by k*D along the diagonal, so each point of front
// k is dominated by a neighbour in front k-1 and by nothing in front k.
func layeredPopulation(sizes ...int) [][]*pareto.Individual {
	const w, d = 100.0, 5.0
	layers := make([][]*pareto.Individual, len(sizes))
	for k, n := range sizes {
		layers[k] = make([]*pareto.Individual, n)
		for i := 0; i < n; i++ {
			x := 0.0
			if n > 1 {
				x = float64(i) * w / float64(n-1)
			}
			shift := float64(k) * d
			layers[k][i] = newInd(x+shift, w-x+shift)
		}
	}
	return layers
}
