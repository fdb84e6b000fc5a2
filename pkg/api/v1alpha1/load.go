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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadRunConfiguration reads a YAML run configuration, rejecting unknown
// fields. The result is neither defaulted nor validated.
func LoadRunConfiguration(path string) (*RunConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRunConfiguration(data)
}

// DecodeRunConfiguration is LoadRunConfiguration for in-memory YAML.
func DecodeRunConfiguration(data []byte) (*RunConfiguration, error) {
	cfg := &RunConfiguration{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding run configuration: %w", err)
	}
	if cfg.APIVersion != "" && cfg.APIVersion != SchemeGroupVersion.String() {
		return nil, fmt.Errorf("unsupported apiVersion %q, want %q", cfg.APIVersion, SchemeGroupVersion.String())
	}
	return cfg, nil
}

// Default applies the registered defaulting functions.
func Default(cfg *RunConfiguration) error {
	scheme, err := NewScheme()
	if err != nil {
		return err
	}
	scheme.Default(cfg)
	return nil
}
