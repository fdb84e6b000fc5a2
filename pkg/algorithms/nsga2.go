package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/operators"
	"github.com/mihai-snyk/moea/pkg/pareto"
)

const (
	Name = "NSGA-II"
)

// NSGA2Config holds configuration parameters for NSGA-II
type NSGA2Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	MutationProbability  float64
	TournamentSize       int
	// Ranking defaults to the fast non-dominated sort.
	Ranking pareto.RankingFunc
	// Density defaults to crowding distance.
	Density pareto.DensityFunc
}

// NewNSGAII composes NSGA-II: tournament selection on rank and crowding,
// the encoding's own variation operators, and elitist replacement over
// the merged parent and offspring populations.
func NewNSGAII(config NSGA2Config, problem framework.Problem, rng *rand.Rand, opts ...Option) (*Driver, error) {
	ranking := config.Ranking
	if ranking == nil {
		ranking = pareto.NonDominatedSort
	}
	density := config.Density
	if density == nil {
		density = pareto.CrowdingDistance
	}

	return NewDriver(Name, problem,
		Config{
			PopulationSize: config.PopulationSize,
			MaxGenerations: config.MaxGenerations,
		},
		rng,
		operators.Tournament(config.TournamentSize),
		operators.Native(config.CrossoverProbability, config.MutationProbability),
		pareto.NewRankingAndDensityReplacement(ranking, density),
		opts...,
	)
}
