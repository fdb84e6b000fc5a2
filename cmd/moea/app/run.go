package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moea/pkg/algorithms"
	"github.com/mihai-snyk/moea/pkg/api/v1alpha1"
	"github.com/mihai-snyk/moea/pkg/benchmarks"
	"github.com/mihai-snyk/moea/pkg/benchmarks/placement"
	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/metrics"
	"github.com/mihai-snyk/moea/pkg/operators"
	"github.com/mihai-snyk/moea/pkg/pareto"
	"github.com/mihai-snyk/moea/pkg/tracing"
	"github.com/mihai-snyk/moea/pkg/util"
)

// FrontFile is the name of the objective dump written to the output directory.
const FrontFile = "FUN.txt"

func newRunCommand(out io.Writer) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one optimisation and write the front found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config(cmd.Flags())
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cfg, out)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// Run executes the configured run. cfg must be defaulted and validated.
func Run(ctx context.Context, cfg *v1alpha1.RunConfiguration, out io.Writer) error {
	logger := klog.FromContext(ctx)

	shutdown, err := tracing.Setup(ctx, tracing.Options{
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
		Version:     version,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error(err, "Failed to flush traces")
		}
	}()

	problem, err := benchmarks.New(cfg.Problem, cfg.Variables, cfg.Objectives)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	recorder := metrics.NewRecorder()

	driver, err := newDriver(cfg, problem, rng, recorder)
	if err != nil {
		return err
	}
	logger.Info("Starting optimisation", "algorithm", driver.Name(), "problem", problem.Name(), "seed", cfg.Seed)

	res, err := driver.Run(ctx)
	if err != nil {
		return err
	}
	front := pareto.ObjectivesOf(res.Front)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := util.WriteFrontFile(filepath.Join(cfg.OutputDir, FrontFile), front); err != nil {
		return err
	}
	if cfg.Plot && len(problem.ObjectiveFuncs()) == 2 {
		plotFile := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), driver.Name()))
		if err := util.PlotResults(front, problem, driver.Name(), plotFile); err != nil {
			logger.Error(err, "Failed to plot results")
		}
	}
	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextFile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s on %s: %d non-dominated solutions after %d evaluations in %v\n",
		driver.Name(), problem.Name(), len(front), res.Evaluations, res.Elapsed)
	if trueFront := problem.TrueParetoFront(500); len(trueFront) > 0 {
		igd, hv := benchmarks.Quality(front, trueFront)
		fmt.Fprintf(out, "IGD %.6f, hypervolume %.6f\n", igd, hv)
	}
	return nil
}

func newDriver(cfg *v1alpha1.RunConfiguration, problem framework.Problem, rng *rand.Rand, observer algorithms.Observer) (*algorithms.Driver, error) {
	mutation := cfg.MutationProbability
	if mutation == 0 {
		mutation = 1.0 / float64(decisionVariables(problem))
	}

	opts := []algorithms.Option{
		algorithms.WithEvaluator(algorithms.NewEvaluator(cfg.Workers)),
		algorithms.WithObserver(observer),
	}
	if variation, ok, err := integerVariation(cfg, problem, mutation); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, algorithms.WithVariation(variation))
	}
	if p, ok := problem.(*placement.Problem); ok && cfg.WarmStart {
		opts = append(opts, algorithms.WithInitialSolutions(placement.NewSeeder(p).Seeds(cfg.PopulationSize, rng)))
	}

	switch cfg.Algorithm {
	case algorithms.SPEA2Name:
		return algorithms.NewSPEA2(algorithms.SPEA2Config{
			PopulationSize:       cfg.PopulationSize,
			MaxGenerations:       cfg.Generations,
			CrossoverProbability: cfg.CrossoverProbability,
			MutationProbability:  mutation,
			TournamentSize:       cfg.TournamentSize,
			K:                    cfg.K,
		}, problem, rng, opts...)
	case algorithms.SteadyStateName:
		return algorithms.NewSteadyStateNSGAII(algorithms.SteadyStateConfig{
			PopulationSize:              cfg.PopulationSize,
			ArchiveSize:                 cfg.ArchiveSize,
			MaxEvaluations:              cfg.MaxEvaluations,
			CrossoverProbability:        cfg.CrossoverProbability,
			MutationProbability:         mutation,
			TournamentSize:              cfg.TournamentSize,
			ArchiveSelectionProbability: 0.9,
		}, problem, rng, opts...)
	}

	ranking, err := algorithms.RankingByName(cfg.Ranking)
	if err != nil {
		return nil, err
	}
	density, err := algorithms.DensityByName(cfg.Density, cfg.K)
	if err != nil {
		return nil, err
	}
	return algorithms.NewNSGAII(algorithms.NSGA2Config{
		PopulationSize:       cfg.PopulationSize,
		MaxGenerations:       cfg.Generations,
		CrossoverProbability: cfg.CrossoverProbability,
		MutationProbability:  mutation,
		TournamentSize:       cfg.TournamentSize,
		Ranking:              ranking,
		Density:              density,
	}, problem, rng, opts...)
}

// integerVariation picks the variation requested for integer encodings.
// It reports false when the encoding's own operators should be used.
func integerVariation(cfg *v1alpha1.RunConfiguration, problem framework.Problem, mutation float64) (operators.VariationFunc, bool, error) {
	if cfg.Crossover == "" && !cfg.ConstraintAware {
		return nil, false, nil
	}
	if _, ok := sample(problem).(*framework.IntegerSolution); !ok {
		return nil, false, fmt.Errorf("%s is not an integer problem, crossover and constraint-aware variation do not apply", problem.Name())
	}
	if cfg.ConstraintAware {
		return operators.ConstraintAware(problem.Constraints(), cfg.CrossoverProbability, mutation), true, nil
	}
	crossover, ok := operators.CrossoverByName(cfg.Crossover)
	if !ok {
		return nil, false, fmt.Errorf("unknown integer crossover %q", cfg.Crossover)
	}
	return operators.Integer(crossover, cfg.CrossoverProbability, mutation), true, nil
}

func sample(problem framework.Problem) framework.Solution {
	return problem.Initialize(1, rand.New(rand.NewSource(0)))[0]
}

func decisionVariables(problem framework.Problem) int {
	n := 1
	switch s := sample(problem).(type) {
	case *framework.RealSolution:
		n = len(s.Variables)
	case *framework.IntegerSolution:
		n = len(s.Variables)
	case *framework.BinarySolution:
		n = len(s.Bits)
	}
	if n < 1 {
		n = 1
	}
	return n
}
