package benchmarks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moea/pkg/algorithms"
	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/indicators"
	"github.com/mihai-snyk/moea/pkg/pareto"
	"github.com/mihai-snyk/moea/pkg/util"
)

// AlgorithmFactory builds the driver run on each problem of a suite.
type AlgorithmFactory func(problem framework.Problem, rng *rand.Rand) (*algorithms.Driver, error)

// NSGAIIFactory runs NSGA-II with the given configuration.
func NSGAIIFactory(config algorithms.NSGA2Config) AlgorithmFactory {
	return func(problem framework.Problem, rng *rand.Rand) (*algorithms.Driver, error) {
		return algorithms.NewNSGAII(config, problem, rng)
	}
}

// TestSuite runs a set of benchmark problems
type TestSuite struct {
	problems []framework.Problem
	factory  AlgorithmFactory
	seed     uint64
	// Plot renders a chart for every two-objective problem.
	Plot bool
}

// SuiteResult holds the quality of the front found on one problem.
// Indicators are NaN when the problem has no known true front.
type SuiteResult struct {
	Problem     string
	Algorithm   string
	FrontSize   int
	Evaluations int
	IGD         float64
	Hypervolume float64
}

// NewTestSuite creates a new benchmark test suite. Each problem is run
// with a generator seeded from seed.
func NewTestSuite(factory AlgorithmFactory, seed uint64) *TestSuite {
	return &TestSuite{
		factory: factory,
		seed:    seed,
	}
}

// AddProblem adds a problem to the test suite
func (ts *TestSuite) AddProblem(p framework.Problem) {
	ts.problems = append(ts.problems, p)
}

// AddStandardProblems adds common benchmark problems
func (ts *TestSuite) AddStandardProblems() {
	// ZDT problems with 30 variables (standard)
	ts.AddProblem(NewZDT1(30))
	ts.AddProblem(NewZDT2(30))
	ts.AddProblem(NewZDT3(30))

	// 2 objectives, M + k - 1 variables with k=5 for DTLZ1 and k=10 for DTLZ2
	ts.AddProblem(NewDTLZ1(6, 2))
	ts.AddProblem(NewDTLZ2(11, 2))

	// 3 objectives versions
	ts.AddProblem(NewDTLZ1(7, 3))
	ts.AddProblem(NewDTLZ2(12, 3))

	ts.AddProblem(NewSrinivas())
}

// Run executes the test suite, writing one front file per problem to outputDir.
func (ts *TestSuite) Run(ctx context.Context, outputDir string) ([]SuiteResult, error) {
	logger := klog.FromContext(ctx)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]SuiteResult, 0, len(ts.problems))
	for i, problem := range ts.problems {
		driver, err := ts.factory(problem, rand.New(rand.NewSource(ts.seed+uint64(i))))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", problem.Name(), err)
		}
		logger.Info("Running benchmark", "algorithm", driver.Name(), "problem", problem.Name())

		res, err := driver.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", driver.Name(), problem.Name(), err)
		}
		paretoFront := pareto.ObjectivesOf(res.Front)

		outputFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results", problem.Name(), driver.Name()))
		if err := util.WriteFrontFile(outputFile+".txt", paretoFront); err != nil {
			return nil, err
		}
		if ts.Plot && len(problem.ObjectiveFuncs()) == 2 {
			if err := util.PlotResults(paretoFront, problem, driver.Name(), outputFile+".html"); err != nil {
				logger.Error(err, "Failed to plot results", "problem", problem.Name())
			}
		}

		result := SuiteResult{
			Problem:     problem.Name(),
			Algorithm:   driver.Name(),
			FrontSize:   len(paretoFront),
			Evaluations: res.Evaluations,
		}
		result.IGD, result.Hypervolume = Quality(paretoFront, problem.TrueParetoFront(500))
		logger.Info("Benchmark complete",
			"problem", problem.Name(),
			"frontSize", result.FrontSize,
			"igd", result.IGD,
			"hypervolume", result.Hypervolume)
		results = append(results, result)
	}
	return results, nil
}

// Quality reports the IGD of front against trueFront and its hypervolume
// with respect to ReferencePoint(trueFront). Both are NaN when either set is empty.
func Quality(front, trueFront []framework.ObjectiveSpacePoint) (igd, hv float64) {
	igd, err := indicators.InvertedGenerationalDistance(front, trueFront)
	if err != nil {
		return nan(), nan()
	}
	hv, err = indicators.Hypervolume(front, ReferencePoint(trueFront))
	if err != nil {
		return igd, nan()
	}
	return igd, hv
}
