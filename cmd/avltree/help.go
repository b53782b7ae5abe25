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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

An ordered in-memory container backed by a height-balanced binary search
tree with O(1) min/max access and bidirectional iterators.

Built with Go %s

# 1. Library
* Insert, Delete, Find in O(log n) worst case
* Min/Max in O(1) through sentinel-cached extremes
* Forward and reverse iterators over a ring-threaded structure
* Clone, Clear, DeleteMin/DeleteMax, duplicate-safe Insert

# 2. Commands
* avltree run: small-tree walkthrough with an ASCII structure dump
* avltree bench: timed insert/find/traverse/erase vs a baseline B-tree
* avltree usage: this guide
* avltree version

# 3. Benchmark configuration
Settings load from ~/.avlbench.yaml (or --config):

    bench:
      size: 1000000
      duplicate_ratio: 0.5
      seed: 0
      baseline: true
      show_progress: true

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
