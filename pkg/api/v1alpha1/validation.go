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
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/moea/pkg/algorithms"
	"github.com/mihai-snyk/moea/pkg/benchmarks"
	"github.com/mihai-snyk/moea/pkg/operators"
)

var knownAlgorithms = sets.New(algorithms.Name, algorithms.SPEA2Name, algorithms.SteadyStateName)

// ValidateRunConfiguration checks a defaulted configuration and reports
// every invalid field at once.
func ValidateRunConfiguration(cfg *RunConfiguration) error {
	var allErrs field.ErrorList

	if !knownAlgorithms.Has(cfg.Algorithm) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("algorithm"), cfg.Algorithm, sets.List(knownAlgorithms)))
	}
	problems := benchmarks.Names()
	if !sets.New(problems...).Has(cfg.Problem) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("problem"), cfg.Problem, problems))
	}

	allErrs = append(allErrs, validateNonNegative(field.NewPath("variables"), cfg.Variables)...)
	allErrs = append(allErrs, validateNonNegative(field.NewPath("objectives"), cfg.Objectives)...)
	if cfg.Objectives == 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("objectives"), cfg.Objectives, "must be at least 2"))
	}
	if cfg.PopulationSize < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("populationSize"), cfg.PopulationSize, "must be positive"))
	}
	allErrs = append(allErrs, validateNonNegative(field.NewPath("archiveSize"), cfg.ArchiveSize)...)
	allErrs = append(allErrs, validateNonNegative(field.NewPath("generations"), cfg.Generations)...)
	allErrs = append(allErrs, validateNonNegative(field.NewPath("workers"), cfg.Workers)...)
	allErrs = append(allErrs, validateNonNegative(field.NewPath("k"), cfg.K)...)
	if cfg.Algorithm == algorithms.SteadyStateName && cfg.MaxEvaluations < cfg.PopulationSize {
		allErrs = append(allErrs, field.Invalid(field.NewPath("maxEvaluations"), cfg.MaxEvaluations, "must cover the initial population"))
	}

	allErrs = append(allErrs, validateProbability(field.NewPath("crossoverProbability"), cfg.CrossoverProbability)...)
	allErrs = append(allErrs, validateProbability(field.NewPath("mutationProbability"), cfg.MutationProbability)...)
	allErrs = append(allErrs, validateProbability(field.NewPath("tracing", "sampleRatio"), cfg.Tracing.SampleRatio)...)
	if cfg.TournamentSize < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("tournamentSize"), cfg.TournamentSize, "must be at least 2"))
	}

	if _, err := algorithms.RankingByName(cfg.Ranking); err != nil {
		allErrs = append(allErrs, field.Invalid(field.NewPath("ranking"), cfg.Ranking, err.Error()))
	}
	if _, err := algorithms.DensityByName(cfg.Density, cfg.K); err != nil {
		allErrs = append(allErrs, field.Invalid(field.NewPath("density"), cfg.Density, err.Error()))
	}
	if cfg.Crossover != "" {
		if _, ok := operators.CrossoverByName(cfg.Crossover); !ok {
			allErrs = append(allErrs, field.Invalid(field.NewPath("crossover"), cfg.Crossover, "unknown integer crossover"))
		}
	}

	return allErrs.ToAggregate()
}

func validateNonNegative(path *field.Path, v int) field.ErrorList {
	if v < 0 {
		return field.ErrorList{field.Invalid(path, v, "must not be negative")}
	}
	return nil
}

func validateProbability(path *field.Path, p float64) field.ErrorList {
	if p < 0 || p > 1 {
		return field.ErrorList{field.Invalid(path, p, "must be between 0 and 1")}
	}
	return nil
}
