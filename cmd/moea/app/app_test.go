package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/moea/pkg/api/v1alpha1"
	"github.com/mihai-snyk/moea/pkg/benchmarks"
	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/util"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewMOEACommand(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		// objectives per line of FUN.txt
		objectives int
	}{
		{name: "NSGA-II on ZDT1", args: []string{"--problem=ZDT1", "--variables=5", "--plot"}, objectives: 2},
		{name: "SPEA2 on DTLZ2", args: []string{"--algorithm=SPEA2", "--problem=DTLZ2", "--objectives=3", "--density=KNearestNeighbor"}, objectives: 3},
		{name: "steady state on Srinivas", args: []string{"--algorithm=SS-NSGA-II", "--problem=Srinivas", "--max-evaluations=100", "--archive-size=10"}, objectives: 2},
		{name: "ENS ranking", args: []string{"--problem=ZDT2", "--variables=4", "--ranking=EfficientNonDominatedSort", "--density=SpatialSpread"}, objectives: 2},
		{name: "warm started placement", args: []string{"--problem=Placement", "--variables=12", "--warm-start", "--constraint-aware"}, objectives: 2},
		{name: "placement with group crossover", args: []string{"--problem=Placement", "--variables=12", "--crossover=GroupPreserving", "--workers=2"}, objectives: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			metricsFile := filepath.Join(dir, "moea.prom")
			args := append([]string{"run",
				"--population-size=12",
				"--generations=4",
				"--seed=3",
				"--output-dir=" + dir,
				"--metrics-file=" + metricsFile,
			}, tt.args...)

			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, "non-dominated solutions")

			front, err := util.ReadFrontFile(filepath.Join(dir, FrontFile))
			require.NoError(t, err)
			require.NotEmpty(t, front)
			assert.Len(t, front[0], tt.objectives)

			data, err := os.ReadFile(metricsFile)
			require.NoError(t, err)
			assert.Contains(t, string(data), "moea_run_generations_total")
		})
	}
}

func TestRunWritesPlot(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "--problem=ZDT1", "--variables=3", "--population-size=8", "--generations=2", "--plot", "--output-dir="+dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "ZDT1_NSGA-II_results.html"))
	assert.NoError(t, err)
}

func TestRunCommandRejectsInvalidConfiguration(t *testing.T) {
	tests := [][]string{
		{"run", "--algorithm=MOEA/D"},
		{"run", "--crossover-probability=2"},
		{"run", "--problem=ZDT1", "--crossover=OnePoint", "--generations=1", "--population-size=4"},
		{"run", "--config=/does/not/exist.yaml"},
	}
	for _, args := range tests {
		_, err := execute(t, append(args, "--output-dir="+t.TempDir())...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
apiVersion: moea.mihai-snyk.io/v1alpha1
kind: RunConfiguration
algorithm: SPEA2
problem: ZDT3
populationSize: 30
generations: 2
`), 0o644))

	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	opts := &Options{}
	opts.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config=" + config, "--population-size=10"}))

	cfg, err := opts.Config(fs)
	require.NoError(t, err)
	assert.Equal(t, "SPEA2", cfg.Algorithm)
	assert.Equal(t, "ZDT3", cfg.Problem)
	assert.Equal(t, 10, cfg.PopulationSize)
	assert.Equal(t, 10, cfg.ArchiveSize, "derived defaults follow the overridden value")
	assert.Equal(t, 2, cfg.Generations)
}

func TestDecisionVariables(t *testing.T) {
	assert.Equal(t, 3, decisionVariables(binaryProblem{bits: 3}))
}

type binaryProblem struct {
	bits int
}

func (p binaryProblem) Name() string                                        { return "binary" }
func (p binaryProblem) ObjectiveFuncs() []framework.ObjectiveFunc           { return nil }
func (p binaryProblem) Constraints() []framework.Constraint                 { return nil }
func (p binaryProblem) TrueParetoFront(int) []framework.ObjectiveSpacePoint { return nil }

func (p binaryProblem) Initialize(popSize int, rng *rand.Rand) []framework.Solution {
	population := make([]framework.Solution, popSize)
	for i := range population {
		population[i] = framework.NewBinarySolution(make([]bool, p.bits))
	}
	return population
}

func TestIntegerVariation(t *testing.T) {
	problem, err := benchmarks.New("Placement", 8, 2)
	require.NoError(t, err)

	_, _, err = integerVariation(&v1alpha1.RunConfiguration{Crossover: "NoSuchCrossover", CrossoverProbability: 0.9}, problem, 0.1)
	assert.ErrorContains(t, err, "unknown integer crossover")

	variation, ok, err := integerVariation(&v1alpha1.RunConfiguration{Crossover: "Uniform", CrossoverProbability: 0.9}, problem, 0.1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, variation)

	_, ok, err = integerVariation(&v1alpha1.RunConfiguration{}, problem, 0.1)
	require.NoError(t, err)
	assert.False(t, ok)
}
