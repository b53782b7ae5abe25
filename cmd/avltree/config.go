// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type BenchSettings struct {
	// Number of distinct keys in the workload
	Size int `yaml:"size"`
	// Extra lookups/erases of already-seen keys, as a fraction of Size
	DuplicateRatio float64 `yaml:"duplicate_ratio"`
	// RNG seed; 0 picks a time-based seed
	Seed int64 `yaml:"seed"`
	// Compare against the baseline ordered container
	Baseline bool `yaml:"baseline"`
	// Show a progress bar while generating the workload
	ShowProgress bool `yaml:"show_progress"`
}

type BenchConfig struct {
	Bench BenchSettings `yaml:"bench"`
}

var defaultBenchConfig = BenchConfig{
	Bench: BenchSettings{
		Size:           1_000_000,
		DuplicateRatio: 0.5,
		Seed:           0,
		Baseline:       true,
		ShowProgress:   true,
	},
}

// LoadBenchConfig reads the YAML benchmark configuration. A missing or
// unreadable file falls back to the defaults rather than failing.
func LoadBenchConfig(path string) (*BenchConfig, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return &defaultBenchConfig, nil
		}
		path = filepath.Join(homeDir, ".avlbench.yaml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &defaultBenchConfig, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &defaultBenchConfig, nil
	}

	config := defaultBenchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return &defaultBenchConfig, err
	}

	return &config, nil
}
