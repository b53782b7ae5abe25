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
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cybrota/avltree"
	"github.com/google/btree"
)

type phaseResult struct {
	Name     string
	Ops      int
	Duration time.Duration
}

func (p phaseResult) opsPerSec() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return float64(p.Ops) / p.Duration.Seconds()
}

func timePhase(name string, ops int, fn func()) phaseResult {
	start := time.Now()
	fn()
	return phaseResult{Name: name, Ops: ops, Duration: time.Since(start)}
}

// runBench times insert, find, forward/backward traversal and erase over
// a shuffled workload, optionally against the baseline B-tree.
func runBench(config *BenchConfig) error {
	s := config.Bench
	if s.Size <= 0 {
		return fmt.Errorf("workload size must be positive, got %d", s.Size)
	}

	insertKeys := buildWorkload(s)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	findKeys := shuffled(insertKeys, rng)
	eraseKeys := shuffled(insertKeys, rng)

	fmt.Println(titleStyle.Render(fmt.Sprintf(
		"avltree benchmark: %d distinct keys, %.0f%% repeat traffic",
		s.Size, s.DuplicateRatio*100)))

	treeResults := benchTree(insertKeys, findKeys, eraseKeys)

	var baseResults []phaseResult
	if s.Baseline {
		baseResults = benchBaseline(insertKeys, findKeys, eraseKeys)
	}

	printReport(treeResults, baseResults)
	return nil
}

func benchTree(insertKeys, findKeys, eraseKeys []int64) []phaseResult {
	tree := avltree.New[int64]()
	results := make([]phaseResult, 0, 5)

	results = append(results, timePhase("insert", len(insertKeys), func() {
		for _, k := range insertKeys {
			tree.Insert(k)
		}
	}))

	found := 0
	results = append(results, timePhase("find", len(findKeys), func() {
		for _, k := range findKeys {
			if tree.Contains(k) {
				found++
			}
		}
	}))

	var fwd, bwd int64
	results = append(results, timePhase("traverse forward", tree.Len(), func() {
		for it := tree.Begin(); it != tree.End(); it = it.Next() {
			fwd += it.Value()
		}
	}))
	results = append(results, timePhase("traverse backward", tree.Len(), func() {
		for it := tree.RBegin(); it != tree.REnd(); it = it.Next() {
			bwd += it.Value()
		}
	}))
	if fwd != bwd {
		fmt.Printf("%s⚠ traversal checksums disagree: %d vs %d%s\n", Warning, fwd, bwd, Reset)
	}

	results = append(results, timePhase("erase", len(eraseKeys), func() {
		for _, k := range eraseKeys {
			tree.Delete(k)
		}
	}))

	fmt.Printf("%savltree: %d found, checksum %d, %d left after erase%s\n",
		Info, found, fwd, tree.Len(), Reset)
	return results
}

// benchBaseline runs the identical phases against google/btree, the
// stock ordered in-memory container of the Go ecosystem.
func benchBaseline(insertKeys, findKeys, eraseKeys []int64) []phaseResult {
	tr := btree.NewOrderedG[int64](32)
	results := make([]phaseResult, 0, 5)

	results = append(results, timePhase("insert", len(insertKeys), func() {
		for _, k := range insertKeys {
			tr.ReplaceOrInsert(k)
		}
	}))

	found := 0
	results = append(results, timePhase("find", len(findKeys), func() {
		for _, k := range findKeys {
			if tr.Has(k) {
				found++
			}
		}
	}))

	var fwd, bwd int64
	results = append(results, timePhase("traverse forward", tr.Len(), func() {
		tr.Ascend(func(k int64) bool {
			fwd += k
			return true
		})
	}))
	results = append(results, timePhase("traverse backward", tr.Len(), func() {
		tr.Descend(func(k int64) bool {
			bwd += k
			return true
		})
	}))

	results = append(results, timePhase("erase", len(eraseKeys), func() {
		for _, k := range eraseKeys {
			tr.Delete(k)
		}
	}))

	fmt.Printf("%sbaseline: %d found, checksum %d, %d left after erase%s\n",
		Info, found, fwd, tr.Len(), Reset)
	return results
}

func printReport(tree, base []phaseResult) {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-18s %14s %12s", "phase", "avltree", "ops/s")))
	if base != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %14s %8s", "baseline", "ratio")))
	}
	b.WriteString("\n")

	for i, p := range tree {
		row := fmt.Sprintf("%-18s %14s %12.0f", p.Name, p.Duration.Round(time.Microsecond), p.opsPerSec())
		if base != nil && i < len(base) {
			ratio := base[i].Duration.Seconds() / p.Duration.Seconds()
			row += fmt.Sprintf(" %14s %8.2fx", base[i].Duration.Round(time.Microsecond), ratio)
			if ratio >= 1 {
				row = winStyle.Render(row)
			} else {
				row = cellStyle.Render(row)
			}
		} else {
			row = cellStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	fmt.Print(b.String())
}
