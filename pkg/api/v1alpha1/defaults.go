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
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
)

const (
	DefaultAlgorithm            = "NSGA-II"
	DefaultProblem              = "ZDT1"
	DefaultPopulationSize       = 100
	DefaultGenerations          = 250
	DefaultCrossoverProbability = 0.9
	DefaultTournamentSize       = 2
	DefaultOutputDir            = "."
)

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "kind", "RunConfiguration")
	scheme.AddTypeDefaultingFunc(&RunConfiguration{}, func(obj interface{}) {
		SetDefaults_RunConfiguration(obj.(*RunConfiguration))
	})
	return nil
}

func SetDefaults_RunConfiguration(cfg *RunConfiguration) {
	if cfg.APIVersion == "" {
		cfg.APIVersion = SchemeGroupVersion.String()
	}
	if cfg.Kind == "" {
		cfg.Kind = "RunConfiguration"
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if cfg.Problem == "" {
		cfg.Problem = DefaultProblem
	}
	if cfg.PopulationSize == 0 {
		cfg.PopulationSize = DefaultPopulationSize
	}
	if cfg.Generations == 0 {
		cfg.Generations = DefaultGenerations
	}
	if cfg.ArchiveSize == 0 {
		cfg.ArchiveSize = cfg.PopulationSize
	}
	if cfg.MaxEvaluations == 0 {
		cfg.MaxEvaluations = cfg.PopulationSize * (cfg.Generations + 1)
	}
	if cfg.CrossoverProbability == 0 {
		cfg.CrossoverProbability = DefaultCrossoverProbability
	}
	if cfg.TournamentSize == 0 {
		cfg.TournamentSize = DefaultTournamentSize
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = 1
	}
}
