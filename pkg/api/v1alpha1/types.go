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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RunConfiguration describes one optimisation run of the moea command.
type RunConfiguration struct {
	metav1.TypeMeta `json:",inline"`

	// Algorithm is one of NSGA-II, SPEA2 or SS-NSGA-II.
	Algorithm string `json:"algorithm,omitempty"`
	// Problem names a registered benchmark.
	Problem string `json:"problem,omitempty"`
	// Variables and Objectives size scalable problems. Zero selects the
	// customary dimensions.
	Variables  int `json:"variables,omitempty"`
	Objectives int `json:"objectives,omitempty"`

	PopulationSize int `json:"populationSize,omitempty"`
	// ArchiveSize bounds the external archive of the steady-state variant.
	ArchiveSize int `json:"archiveSize,omitempty"`
	Generations int `json:"generations,omitempty"`
	// MaxEvaluations is the budget of the steady-state variant.
	MaxEvaluations int `json:"maxEvaluations,omitempty"`

	CrossoverProbability float64 `json:"crossoverProbability,omitempty"`
	// MutationProbability defaults to 1/n for n decision variables.
	MutationProbability float64 `json:"mutationProbability,omitempty"`
	TournamentSize      int     `json:"tournamentSize,omitempty"`

	// Ranking and Density override the NSGA-II strategies.
	Ranking string `json:"ranking,omitempty"`
	Density string `json:"density,omitempty"`
	// K is the neighbour used by the KNearestNeighbor estimator.
	K int `json:"k,omitempty"`

	// Crossover selects an integer chromosome crossover for integer problems.
	Crossover string `json:"crossover,omitempty"`
	// ConstraintAware switches integer problems to variation that never
	// increases constraint violation.
	ConstraintAware bool `json:"constraintAware,omitempty"`
	// WarmStart seeds the initial population of placement problems with
	// greedy constructions.
	WarmStart bool `json:"warmStart,omitempty"`

	Seed uint64 `json:"seed,omitempty"`
	// Workers evaluating objectives concurrently. 1 evaluates sequentially,
	// 0 uses every CPU.
	Workers int `json:"workers,omitempty"`

	OutputDir string `json:"outputDir,omitempty"`
	// Plot renders the front of two-objective problems as HTML.
	Plot bool `json:"plot,omitempty"`
	// MetricsFile receives the run metrics in the Prometheus text format.
	MetricsFile string `json:"metricsFile,omitempty"`

	Tracing TracingConfiguration `json:"tracing,omitempty"`
}

// TracingConfiguration configures OTLP span export.
type TracingConfiguration struct {
	// Endpoint of the OTLP/gRPC collector. Tracing is off when empty.
	Endpoint    string  `json:"endpoint,omitempty"`
	Insecure    bool    `json:"insecure,omitempty"`
	SampleRatio float64 `json:"sampleRatio,omitempty"`
}
