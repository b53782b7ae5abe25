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
	"os"

	"github.com/cybrota/avltree"
)

// runDemo exercises the public container API on a small shuffled range
// and shows the tree shape between operations.
func runDemo(n int) error {
	if n < 3 {
		n = 3
	}

	tree := avltree.New[int]()
	for _, v := range rand.Perm(n) {
		tree.Insert(v + 1)
	}

	fmt.Printf("%sInserted 1..%d in random order (size=%d)%s\n", Green, n, tree.Len(), Reset)
	tree.Dump(os.Stdout)
	if err := tree.CheckInvariants(); err != nil {
		return fmt.Errorf("invariants after insert: %w", err)
	}

	mn, _ := tree.Min()
	mx, _ := tree.Max()
	fmt.Printf("%smin=%d max=%d%s\n", Info, mn, mx, Reset)

	probe := n / 2
	if it := tree.Find(probe); it != tree.End() {
		fmt.Printf("%sfind(%d) -> %d%s\n", Info, probe, it.Value(), Reset)
	}

	// Duplicate insert leaves the tree untouched
	if _, inserted := tree.Insert(probe); inserted {
		return fmt.Errorf("duplicate insert of %d reported as new", probe)
	}
	fmt.Printf("%sinsert(%d) again -> already present, size still %d%s\n", Info, probe, tree.Len(), Reset)

	tree.Delete(probe)
	tree.DeleteMin()
	tree.DeleteMax()
	fmt.Printf("%sAfter delete(%d), deleteMin, deleteMax (size=%d)%s\n", Green, probe, tree.Len(), Reset)
	tree.Dump(os.Stdout)
	if err := tree.CheckInvariants(); err != nil {
		return fmt.Errorf("invariants after erase: %w", err)
	}

	fmt.Printf("%sforward: %v%s\n", Info, tree.Values(), Reset)

	rev := make([]int, 0, tree.Len())
	for it := tree.RBegin(); it != tree.REnd(); it = it.Next() {
		rev = append(rev, it.Value())
	}
	fmt.Printf("%sbackward: %v%s\n", Info, rev, Reset)

	clone := tree.Clone()
	tree.Clear()
	fmt.Printf("%sCleared original (size=%d); clone kept %d values%s\n",
		Green, tree.Len(), clone.Len(), Reset)
	return clone.CheckInvariants()
}
