package operators

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
)

// VariationFunc turns two parents into two children. Parents are never modified.
type VariationFunc func(rng *rand.Rand, p1, p2 framework.Solution) (framework.Solution, framework.Solution)

// Native uses the encoding's own crossover and mutation (SBX and polynomial
// mutation for real vectors, uniform crossover and random reset for integers).
func Native(crossoverRate, mutationRate float64) VariationFunc {
	return func(rng *rand.Rand, p1, p2 framework.Solution) (framework.Solution, framework.Solution) {
		c1, c2 := p1.Crossover(p2, crossoverRate, rng)
		c1.Mutate(mutationRate, rng)
		c2.Mutate(mutationRate, rng)
		return c1, c2
	}
}

// Integer applies an integer chromosome crossover followed by random-reset
// mutation. Both parents must be *framework.IntegerSolution.
func Integer(crossover CrossoverFunc, crossoverRate, mutationRate float64) VariationFunc {
	return func(rng *rand.Rand, p1, p2 framework.Solution) (framework.Solution, framework.Solution) {
		a, b := p1.(*framework.IntegerSolution), p2.(*framework.IntegerSolution)
		var c1, c2 *framework.IntegerSolution
		if len(a.Variables) > 0 && rng.Float64() < crossoverRate {
			v1, v2 := crossover(rng, a.Variables, b.Variables)
			c1 = framework.NewIntegerSolution(v1, a.Bounds)
			c2 = framework.NewIntegerSolution(v2, b.Bounds)
		} else {
			c1 = a.Clone().(*framework.IntegerSolution)
			c2 = b.Clone().(*framework.IntegerSolution)
		}
		c1.Mutate(mutationRate, rng)
		c2.Mutate(mutationRate, rng)
		return c1, c2
	}
}

// ConstraintAware is an integer variation that never increases constraint
// violation: a uniform-crossover swap is kept only when neither child gets
// worse, and a mutated gene tries other values until one is no worse than
// the current assignment.
func ConstraintAware(constraints []framework.Constraint, crossoverRate, mutationRate float64) VariationFunc {
	violation := func(s framework.Solution) float64 {
		total := 0.0
		for _, c := range constraints {
			if v := c(s); v < 0 {
				total += v
			}
		}
		return total
	}

	mutate := func(rng *rand.Rand, sol *framework.IntegerSolution) {
		for i := range sol.Variables {
			if rng.Float64() >= mutationRate {
				continue
			}
			b := sol.Bounds[i]
			span := b.H - b.L + 1
			if span < 2 {
				continue
			}
			original := sol.Variables[i]
			before := violation(sol)
			accepted := false
			for attempt := 0; attempt < span; attempt++ {
				candidate := b.L + rng.Intn(span)
				if candidate == original {
					continue
				}
				sol.Variables[i] = candidate
				if violation(sol) >= before {
					accepted = true
					break
				}
			}
			if !accepted {
				sol.Variables[i] = original
			}
		}
	}

	return func(rng *rand.Rand, p1, p2 framework.Solution) (framework.Solution, framework.Solution) {
		c1 := p1.Clone().(*framework.IntegerSolution)
		c2 := p2.Clone().(*framework.IntegerSolution)

		if rng.Float64() < crossoverRate {
			for i := range c1.Variables {
				if rng.Float64() >= 0.5 || c1.Variables[i] == c2.Variables[i] {
					continue
				}
				before1, before2 := violation(c1), violation(c2)
				c1.Variables[i], c2.Variables[i] = c2.Variables[i], c1.Variables[i]
				if violation(c1) < before1 || violation(c2) < before2 {
					c1.Variables[i], c2.Variables[i] = c2.Variables[i], c1.Variables[i]
				}
			}
		}

		mutate(rng, c1)
		mutate(rng, c2)
		return c1, c2
	}
}
