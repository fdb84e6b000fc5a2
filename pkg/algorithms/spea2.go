package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/operators"
	"github.com/mihai-snyk/moea/pkg/pareto"
)

const SPEA2Name = "SPEA2"

// SPEA2Config holds configuration parameters for SPEA2.
type SPEA2Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	MutationProbability  float64
	TournamentSize       int
	// K selects the neighbour used by the density estimator, 1 by default.
	K int
}

// NewSPEA2 composes SPEA2 from the same driver as NSGA-II: strength-based
// ranking replaces non-dominated sorting and the k-th nearest neighbour
// distance replaces crowding.
func NewSPEA2(config SPEA2Config, problem framework.Problem, rng *rand.Rand, opts ...Option) (*Driver, error) {
	k := config.K
	if k == 0 {
		k = 1
	}
	density, err := pareto.KNearestNeighbor(k)
	if err != nil {
		return nil, err
	}

	return NewDriver(SPEA2Name, problem,
		Config{
			PopulationSize: config.PopulationSize,
			MaxGenerations: config.MaxGenerations,
		},
		rng,
		operators.Tournament(config.TournamentSize),
		operators.Native(config.CrossoverProbability, config.MutationProbability),
		pareto.NewRankingAndDensityReplacement(pareto.StrengthRanking, density),
		opts...,
	)
}
