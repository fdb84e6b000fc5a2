package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
)

// DTLZ1 is scalable to any number of objectives
// It has a linear Pareto front and many local fronts
type DTLZ1 struct {
	numVars       int
	numObjectives int
}

// NewDTLZ1 builds the problem. The customary size is
// numVars = numObjectives + 4.
func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	return &DTLZ1{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ1) Name() string {
	return "DTLZ1"
}

func (p *DTLZ1) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		funcs[i] = func(x framework.Solution) float64 {
			return p.objective(x, i)
		}
	}
	return funcs
}

func (p *DTLZ1) g(x []float64) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ1) objective(sol framework.Solution, objIdx int) float64 {
	x := sol.(*framework.RealSolution).Variables
	f := 0.5 * (1 + p.g(x))
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= x[i]
	}
	if objIdx > 0 {
		f *= 1 - x[p.numObjectives-objIdx-1]
	}
	return f
}

func (p *DTLZ1) Constraints() []framework.Constraint {
	return nil
}

func (p *DTLZ1) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	return uniformPopulation(popSize, unitBounds(p.numVars), rng)
}

// TrueParetoFront samples the simplex sum(f_i) = 0.5. Only two and three
// objectives are supported.
func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	switch p.numObjectives {
	case 2:
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			t := float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)}
		}
		return points
	case 3:
		divisions := int(math.Sqrt(float64(2 * numPoints)))
		if divisions < 1 {
			divisions = 1
		}
		var points []framework.ObjectiveSpacePoint
		for i := 0; i <= divisions; i++ {
			for j := 0; j <= divisions-i; j++ {
				a := float64(i) / float64(divisions)
				b := float64(j) / float64(divisions)
				points = append(points, framework.ObjectiveSpacePoint{0.5 * a, 0.5 * b, 0.5 * (1 - a - b)})
			}
		}
		return points
	}
	return nil
}
