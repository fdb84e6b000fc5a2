/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package v1alpha1

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestSetDefaults_RunConfiguration(t *testing.T) {
	tests := []struct {
		name string
		in   *RunConfiguration
		want *RunConfiguration
	}{
		{
			name: "empty",
			in:   &RunConfiguration{},
			want: &RunConfiguration{
				TypeMeta:             metav1.TypeMeta{APIVersion: "moea.mihai-snyk.io/v1alpha1", Kind: "RunConfiguration"},
				Algorithm:            "NSGA-II",
				Problem:              "ZDT1",
				PopulationSize:       100,
				ArchiveSize:          100,
				Generations:          250,
				MaxEvaluations:       25100,
				CrossoverProbability: 0.9,
				TournamentSize:       2,
				Workers:              1,
				OutputDir:            ".",
				Tracing:              TracingConfiguration{SampleRatio: 1},
			},
		},
		{
			name: "set values are kept",
			in: &RunConfiguration{
				Algorithm:      "SS-NSGA-II",
				Problem:        "DTLZ2",
				PopulationSize: 40,
				ArchiveSize:    60,
				Generations:    10,
				MaxEvaluations: 1000,
				Workers:        4,
				Tracing:        TracingConfiguration{Endpoint: "localhost:4317", SampleRatio: 0.5},
			},
			want: &RunConfiguration{
				TypeMeta:             metav1.TypeMeta{APIVersion: "moea.mihai-snyk.io/v1alpha1", Kind: "RunConfiguration"},
				Algorithm:            "SS-NSGA-II",
				Problem:              "DTLZ2",
				PopulationSize:       40,
				ArchiveSize:          60,
				Generations:          10,
				MaxEvaluations:       1000,
				CrossoverProbability: 0.9,
				TournamentSize:       2,
				Workers:              4,
				OutputDir:            ".",
				Tracing:              TracingConfiguration{Endpoint: "localhost:4317", SampleRatio: 0.5},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDefaults_RunConfiguration(tt.in)
			if diff := cmp.Diff(tt.want, tt.in); diff != "" {
				t.Errorf("SetDefaults_RunConfiguration() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateRunConfiguration(t *testing.T) {
	valid := func() *RunConfiguration {
		cfg := &RunConfiguration{}
		SetDefaults_RunConfiguration(cfg)
		return cfg
	}

	require.NoError(t, ValidateRunConfiguration(valid()))

	tests := []struct {
		name    string
		mutate  func(*RunConfiguration)
		wantMsg string
	}{
		{"unknown algorithm", func(c *RunConfiguration) { c.Algorithm = "MOEA/D" }, "algorithm"},
		{"unknown problem", func(c *RunConfiguration) { c.Problem = "ZDT9" }, "problem"},
		{"negative population", func(c *RunConfiguration) { c.PopulationSize = -1 }, "populationSize"},
		{"single objective", func(c *RunConfiguration) { c.Objectives = 1 }, "objectives"},
		{"probability above one", func(c *RunConfiguration) { c.CrossoverProbability = 1.5 }, "crossoverProbability"},
		{"negative mutation", func(c *RunConfiguration) { c.MutationProbability = -0.1 }, "mutationProbability"},
		{"tournament of one", func(c *RunConfiguration) { c.TournamentSize = 1 }, "tournamentSize"},
		{"unknown ranking", func(c *RunConfiguration) { c.Ranking = "Hypervolume" }, "ranking"},
		{"unknown density", func(c *RunConfiguration) { c.Density = "Grid" }, "density"},
		{"negative k", func(c *RunConfiguration) { c.K = -2 }, "k"},
		{"unknown crossover", func(c *RunConfiguration) { c.Crossover = "Cycle" }, "crossover"},
		{"steady state budget", func(c *RunConfiguration) {
			c.Algorithm = "SS-NSGA-II"
			c.MaxEvaluations = 10
		}, "maxEvaluations"},
		{"sample ratio", func(c *RunConfiguration) { c.Tracing.SampleRatio = 2 }, "tracing.sampleRatio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateRunConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := &RunConfiguration{}
	SetDefaults_RunConfiguration(cfg)
	cfg.Algorithm = "unknown"
	cfg.TournamentSize = 1
	cfg.Workers = -1

	err := ValidateRunConfiguration(cfg)
	require.Error(t, err)
	for _, f := range []string{"algorithm", "tournamentSize", "workers"} {
		assert.Contains(t, err.Error(), f)
	}
}

func TestDecodeRunConfiguration(t *testing.T) {
	data := []byte(`
apiVersion: moea.mihai-snyk.io/v1alpha1
kind: RunConfiguration
algorithm: SPEA2
problem: DTLZ2
objectives: 3
populationSize: 50
generations: 20
density: KNearestNeighbor
k: 2
tracing:
  endpoint: collector:4317
  insecure: true
`)
	cfg, err := DecodeRunConfiguration(data)
	require.NoError(t, err)
	assert.Zero(t, cfg.ArchiveSize)
	require.NoError(t, Default(cfg))
	assert.Equal(t, "SPEA2", cfg.Algorithm)
	assert.Equal(t, 3, cfg.Objectives)
	assert.Equal(t, 50, cfg.ArchiveSize, "archive defaults to the population size")
	assert.Equal(t, 50*21, cfg.MaxEvaluations)
	assert.Equal(t, 0.9, cfg.CrossoverProbability)
	assert.True(t, cfg.Tracing.Insecure)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	require.NoError(t, ValidateRunConfiguration(cfg))
}

func TestDecodeRunConfigurationErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "algorithm: NSGA-II\npopulation: 10\n",
		"wrong type":      "populationSize: many\n",
		"foreign version": "apiVersion: moea.mihai-snyk.io/v2\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRunConfiguration([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadRunConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("problem: Placement\nwarmStart: true\n"), 0o644))

	cfg, err := LoadRunConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "Placement", cfg.Problem)
	assert.True(t, cfg.WarmStart)
	assert.Empty(t, cfg.Algorithm)

	_, err = LoadRunConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDeepCopy(t *testing.T) {
	cfg := &RunConfiguration{Algorithm: "SPEA2", Tracing: TracingConfiguration{Endpoint: "x"}}
	c := cfg.DeepCopyObject().(*RunConfiguration)
	c.Tracing.Endpoint = "y"
	assert.Equal(t, "x", cfg.Tracing.Endpoint)
}
