package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/operators"
	"github.com/mihai-snyk/moea/pkg/pareto"
)

const SteadyStateName = "SS-NSGA-II"

// SteadyStateConfig configures the archive-driven steady-state variant.
type SteadyStateConfig struct {
	PopulationSize       int
	ArchiveSize          int
	MaxEvaluations       int
	CrossoverProbability float64
	MutationProbability  float64
	TournamentSize       int
	// ArchiveSelectionProbability is the chance a parent is drawn from
	// the archive instead of the population.
	ArchiveSelectionProbability float64
}

// NewSteadyStateNSGAII produces one offspring per step. Survivors and the
// bounded archive are both thinned by spatial spread, and parents come
// mostly from the archive.
func NewSteadyStateNSGAII(config SteadyStateConfig, problem framework.Problem, rng *rand.Rand, opts ...Option) (*Driver, error) {
	archive := pareto.NewBoundedArchive(config.ArchiveSize, pareto.SpatialSpread, rng)
	steps := config.MaxEvaluations - config.PopulationSize
	if steps < 0 {
		steps = 0
	}

	base := []Option{WithArchive(archive)}
	return NewDriver(SteadyStateName, problem,
		Config{
			PopulationSize: config.PopulationSize,
			OffspringSize:  1,
			MaxGenerations: steps,
		},
		rng,
		operators.FromArchive(archive, config.ArchiveSelectionProbability, operators.Tournament(config.TournamentSize)),
		operators.Native(config.CrossoverProbability, config.MutationProbability),
		pareto.NewRankingAndDensityReplacement(pareto.EfficientNonDominatedSort, pareto.SpatialSpread),
		append(base, opts...)...,
	)
}
