package app

import (
	"github.com/spf13/pflag"

	"github.com/mihai-snyk/moea/pkg/api/v1alpha1"
)

// Options holds the flags of the run command. A flag set on the command
// line overrides the value read from the configuration file.
type Options struct {
	ConfigFile string

	flags v1alpha1.RunConfiguration
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	f := &o.flags
	fs.StringVar(&o.ConfigFile, "config", "", "Path to a RunConfiguration YAML file.")
	fs.StringVar(&f.Algorithm, "algorithm", "", "Algorithm: NSGA-II, SPEA2 or SS-NSGA-II.")
	fs.StringVar(&f.Problem, "problem", "", "Registered benchmark problem.")
	fs.IntVar(&f.Variables, "variables", 0, "Decision variables, 0 for the problem default.")
	fs.IntVar(&f.Objectives, "objectives", 0, "Objectives of scalable problems, 0 for the problem default.")
	fs.IntVar(&f.PopulationSize, "population-size", 0, "Population size.")
	fs.IntVar(&f.ArchiveSize, "archive-size", 0, "Archive capacity of the steady-state variant.")
	fs.IntVar(&f.Generations, "generations", 0, "Generations to run.")
	fs.IntVar(&f.MaxEvaluations, "max-evaluations", 0, "Evaluation budget of the steady-state variant.")
	fs.Float64Var(&f.CrossoverProbability, "crossover-probability", 0, "Crossover probability.")
	fs.Float64Var(&f.MutationProbability, "mutation-probability", 0, "Mutation probability, 0 for 1/n.")
	fs.IntVar(&f.TournamentSize, "tournament-size", 0, "Tournament size.")
	fs.StringVar(&f.Ranking, "ranking", "", "Ranking: NonDominatedSort, EfficientNonDominatedSort or Strength.")
	fs.StringVar(&f.Density, "density", "", "Density: CrowdingDistance, SpatialSpread or KNearestNeighbor.")
	fs.IntVar(&f.K, "k", 0, "Neighbour used by KNearestNeighbor.")
	fs.StringVar(&f.Crossover, "crossover", "", "Integer crossover: OnePoint, TwoPoint, Uniform, KPoint or GroupPreserving.")
	fs.BoolVar(&f.ConstraintAware, "constraint-aware", false, "Use violation-preserving variation on integer problems.")
	fs.BoolVar(&f.WarmStart, "warm-start", false, "Seed placement problems with greedy solutions.")
	fs.Uint64Var(&f.Seed, "seed", 0, "Random seed.")
	fs.IntVar(&f.Workers, "workers", 0, "Concurrent evaluation workers, 0 for one per CPU.")
	fs.StringVar(&f.OutputDir, "output-dir", "", "Directory receiving FUN.txt and the plot.")
	fs.BoolVar(&f.Plot, "plot", false, "Render the front of two-objective problems as HTML.")
	fs.StringVar(&f.MetricsFile, "metrics-file", "", "Write run metrics in the Prometheus text format.")
	fs.StringVar(&f.Tracing.Endpoint, "otlp-endpoint", "", "OTLP/gRPC collector receiving run traces.")
	fs.BoolVar(&f.Tracing.Insecure, "otlp-insecure", false, "Disable TLS towards the collector.")
	fs.Float64Var(&f.Tracing.SampleRatio, "trace-sample-ratio", 0, "Fraction of runs traced.")
}

// Config loads the configuration file, applies the changed flags on top
// of it, then defaults and validates the result.
func (o *Options) Config(fs *pflag.FlagSet) (*v1alpha1.RunConfiguration, error) {
	var cfg *v1alpha1.RunConfiguration
	var err error
	if o.ConfigFile != "" {
		cfg, err = v1alpha1.LoadRunConfiguration(o.ConfigFile)
	} else {
		cfg, err = v1alpha1.DecodeRunConfiguration(nil)
	}
	if err != nil {
		return nil, err
	}

	f := &o.flags
	overrides := map[string]func(){
		"algorithm":             func() { cfg.Algorithm = f.Algorithm },
		"problem":               func() { cfg.Problem = f.Problem },
		"variables":             func() { cfg.Variables = f.Variables },
		"objectives":            func() { cfg.Objectives = f.Objectives },
		"population-size":       func() { cfg.PopulationSize = f.PopulationSize },
		"archive-size":          func() { cfg.ArchiveSize = f.ArchiveSize },
		"generations":           func() { cfg.Generations = f.Generations },
		"max-evaluations":       func() { cfg.MaxEvaluations = f.MaxEvaluations },
		"crossover-probability": func() { cfg.CrossoverProbability = f.CrossoverProbability },
		"mutation-probability":  func() { cfg.MutationProbability = f.MutationProbability },
		"tournament-size":       func() { cfg.TournamentSize = f.TournamentSize },
		"ranking":               func() { cfg.Ranking = f.Ranking },
		"density":               func() { cfg.Density = f.Density },
		"k":                     func() { cfg.K = f.K },
		"crossover":             func() { cfg.Crossover = f.Crossover },
		"constraint-aware":      func() { cfg.ConstraintAware = f.ConstraintAware },
		"warm-start":            func() { cfg.WarmStart = f.WarmStart },
		"seed":                  func() { cfg.Seed = f.Seed },
		"workers":               func() { cfg.Workers = f.Workers },
		"output-dir":            func() { cfg.OutputDir = f.OutputDir },
		"plot":                  func() { cfg.Plot = f.Plot },
		"metrics-file":          func() { cfg.MetricsFile = f.MetricsFile },
		"otlp-endpoint":         func() { cfg.Tracing.Endpoint = f.Tracing.Endpoint },
		"otlp-insecure":         func() { cfg.Tracing.Insecure = f.Tracing.Insecure },
		"trace-sample-ratio":    func() { cfg.Tracing.SampleRatio = f.Tracing.SampleRatio },
	}
	fs.Visit(func(flag *pflag.Flag) {
		if apply, ok := overrides[flag.Name]; ok {
			apply()
		}
	})

	if err := v1alpha1.Default(cfg); err != nil {
		return nil, err
	}
	if err := v1alpha1.ValidateRunConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
