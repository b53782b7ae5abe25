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
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

const (
	// Bloom sizing: ~10 bits per expected key keeps the false-positive
	// rate low enough that workload generation rarely discards a fresh key
	bloomBitsPerKey = 10
	bloomHashes     = 5
)

// buildWorkload generates size distinct random keys, optionally mixed
// with repeat references to already-generated keys, shuffled. A bloom
// filter screens candidates so the distinct count is honored without
// holding a full set of seen keys.
func buildWorkload(s BenchSettings) []int64 {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	filter := bloom.New(uint(s.Size)*bloomBitsPerKey, bloomHashes)

	var bar *progressbar.ProgressBar
	if s.ShowProgress {
		bar = progressbar.NewOptions(s.Size,
			progressbar.OptionSetDescription("🌱 Generating workload..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n✅ Workload ready!\n")
			}),
		)
	}

	keys := make([]int64, 0, s.Size+int(float64(s.Size)*s.DuplicateRatio))
	for len(keys) < s.Size {
		k := rng.Int63()
		ks := strconv.FormatInt(k, 10)
		if filter.TestString(ks) {
			// probably seen already; a false positive just costs a retry
			continue
		}
		filter.AddString(ks)
		keys = append(keys, k)
		if bar != nil {
			bar.Add(1)
		}
	}

	// Repeat traffic: re-reference random existing keys
	extra := int(float64(s.Size) * s.DuplicateRatio)
	for i := 0; i < extra; i++ {
		keys = append(keys, keys[rng.Intn(s.Size)])
	}

	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

// shuffled returns a copy of keys in a new random order.
func shuffled(keys []int64, rng *rand.Rand) []int64 {
	out := make([]int64, len(keys))
	copy(out, keys)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
