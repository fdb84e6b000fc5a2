package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
)

// Srinivas is a two-variable constrained problem. Its feasible region is
// cut by a disc and a line, so runs must handle infeasible individuals.
type Srinivas struct{}

func NewSrinivas() *Srinivas {
	return &Srinivas{}
}

func (p *Srinivas) Name() string {
	return "Srinivas"
}

func (p *Srinivas) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return 2.0 + math.Pow(x[0]-2.0, 2) + math.Pow(x[1]-1.0, 2)
		},
		func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return 9.0*x[0] - math.Pow(x[1]-1.0, 2)
		},
	}
}

func (p *Srinivas) Constraints() []framework.Constraint {
	return []framework.Constraint{
		// x1^2 + x2^2 <= 225
		framework.LessOrEqual(func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return x[0]*x[0] + x[1]*x[1]
		}, 225),
		// x1 - 3 x2 + 10 <= 0
		framework.LessOrEqual(func(s framework.Solution) float64 {
			x := s.(*framework.RealSolution).Variables
			return x[0] - 3.0*x[1] + 10.0
		}, 0),
	}
}

func (p *Srinivas) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	b := []framework.Bounds{{L: -20, H: 20}, {L: -20, H: 20}}
	return uniformPopulation(popSize, b, rng)
}

// TrueParetoFront samples the analytical front: x1 = -2.5 and x2 in
// [2.5, 14.79].
func (p *Srinivas) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	const x1, lo, hi = -2.5, 2.5, 14.79
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x2 := lo + (hi-lo)*float64(i)/float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			2.0 + math.Pow(x1-2.0, 2) + math.Pow(x2-1.0, 2),
			9.0*x1 - math.Pow(x2-1.0, 2),
		}
	}
	return points
}
