package framework

import (
	"math"

	"golang.org/x/exp/rand"
)

// Solution is a decision vector. The ranking core never looks inside it;
// variation operators are provided by the encoding itself.
type Solution interface {
	Clone() Solution
	Crossover(other Solution, crossoverRate float64, rng *rand.Rand) (Solution, Solution)
	Mutate(mutationRate float64, rng *rand.Rand)
}

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Bits []bool
}

func NewBinarySolution(bits []bool) *BinarySolution {
	return &BinarySolution{
		Bits: bits,
	}
}

func (s *BinarySolution) Clone() Solution {
	newBits := make([]bool, len(s.Bits))
	copy(newBits, s.Bits)
	return &BinarySolution{
		Bits: newBits,
	}
}

// Crossover implements Solution interface using single-point crossover
func (s *BinarySolution) Crossover(other Solution, crossoverRate float64, rng *rand.Rand) (Solution, Solution) {
	o := other.(*BinarySolution)
	child1 := s.Clone().(*BinarySolution)
	child2 := o.Clone().(*BinarySolution)

	if len(s.Bits) > 0 && rng.Float64() < crossoverRate {
		point := rng.Intn(len(s.Bits))
		for i := point; i < len(s.Bits); i++ {
			child1.Bits[i], child2.Bits[i] = child2.Bits[i], child1.Bits[i]
		}
	}

	return child1, child2
}

// Mutate implements Solution interface using bit-flip mutation
func (s *BinarySolution) Mutate(mutationRate float64, rng *rand.Rand) {
	for i := range s.Bits {
		if rng.Float64() < mutationRate {
			s.Bits[i] = !s.Bits[i]
		}
	}
}

type Bounds struct {
	L float64
	H float64
}

// RealSolution represents a solution with real-valued variables.
type RealSolution struct {
	Variables []float64
	Bounds    []Bounds

	// DistributionIndex is used by both SBX and polynomial mutation.
	// Zero selects the customary value of 20.
	DistributionIndex float64
}

func NewRealSolution(vars []float64, b []Bounds) *RealSolution {
	return &RealSolution{
		Variables: vars,
		Bounds:    b,
	}
}

func (sol *RealSolution) Clone() Solution {
	vars := make([]float64, len(sol.Variables))
	copy(vars, sol.Variables)
	return &RealSolution{
		Variables:         vars,
		Bounds:            sol.Bounds,
		DistributionIndex: sol.DistributionIndex,
	}
}

func (sol *RealSolution) eta() float64 {
	if sol.DistributionIndex <= 0 {
		return 20
	}
	return sol.DistributionIndex
}

// Crossover performs SBX (Simulated Binary Crossover)
func (sol *RealSolution) Crossover(other Solution, crossoverRate float64, rng *rand.Rand) (Solution, Solution) {
	o := other.(*RealSolution)
	child1 := sol.Clone().(*RealSolution)
	child2 := o.Clone().(*RealSolution)

	if rng.Float64() >= crossoverRate {
		return child1, child2
	}

	exp := 1.0 / (sol.eta() + 1)
	for i := range sol.Variables {
		if rng.Float64() > 0.5 {
			continue
		}
		u := rng.Float64()
		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, exp)
		} else {
			beta = math.Pow(1.0/(2*(1.0-u)), exp)
		}

		child1.Variables[i] = 0.5 * ((1+beta)*sol.Variables[i] + (1-beta)*o.Variables[i])
		child2.Variables[i] = 0.5 * ((1-beta)*sol.Variables[i] + (1+beta)*o.Variables[i])

		child1.Variables[i] = clamp(child1.Variables[i], sol.Bounds[i])
		child2.Variables[i] = clamp(child2.Variables[i], sol.Bounds[i])
	}

	return child1, child2
}

// Mutate performs polynomial mutation
func (sol *RealSolution) Mutate(mutationRate float64, rng *rand.Rand) {
	exp := 1.0 / (sol.eta() + 1)
	for i := range sol.Variables {
		if rng.Float64() >= mutationRate {
			continue
		}
		u := rng.Float64()
		var delta float64
		if u <= 0.5 {
			delta = math.Pow(2*u, exp) - 1
		} else {
			delta = 1 - math.Pow(2*(1-u), exp)
		}

		sol.Variables[i] += delta * (sol.Bounds[i].H - sol.Bounds[i].L)
		sol.Variables[i] = clamp(sol.Variables[i], sol.Bounds[i])
	}
}

func clamp(v float64, b Bounds) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// IntBounds is an inclusive integer range.
type IntBounds struct {
	L int
	H int
}

// IntegerSolution encodes assignment-style problems, one gene per variable.
type IntegerSolution struct {
	Variables []int
	Bounds    []IntBounds
}

func NewIntegerSolution(vars []int, b []IntBounds) *IntegerSolution {
	return &IntegerSolution{
		Variables: vars,
		Bounds:    b,
	}
}

func (sol *IntegerSolution) Clone() Solution {
	vars := make([]int, len(sol.Variables))
	copy(vars, sol.Variables)
	return &IntegerSolution{
		Variables: vars,
		Bounds:    sol.Bounds,
	}
}

// Crossover performs uniform crossover.
func (sol *IntegerSolution) Crossover(other Solution, crossoverRate float64, rng *rand.Rand) (Solution, Solution) {
	o := other.(*IntegerSolution)
	child1 := sol.Clone().(*IntegerSolution)
	child2 := o.Clone().(*IntegerSolution)

	if rng.Float64() >= crossoverRate {
		return child1, child2
	}
	for i := range child1.Variables {
		if rng.Float64() < 0.5 {
			child1.Variables[i], child2.Variables[i] = child2.Variables[i], child1.Variables[i]
		}
	}
	return child1, child2
}

// Mutate performs random-reset mutation within each gene's bounds.
func (sol *IntegerSolution) Mutate(mutationRate float64, rng *rand.Rand) {
	for i := range sol.Variables {
		if rng.Float64() < mutationRate {
			b := sol.Bounds[i]
			sol.Variables[i] = b.L + rng.Intn(b.H-b.L+1)
		}
	}
}
