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

package avltree

import (
	"math/rand"
	"sort"
	"testing"
)

func TestForwardTraversalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := rng.Perm(500)

	tree := New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}

	want := make([]int, len(keys))
	copy(want, keys)
	sort.Ints(want)

	i := 0
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		if it.Value() != want[i] {
			t.Fatalf("forward[%d] = %d; want %d", i, it.Value(), want[i])
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("forward walk visited %d of %d values", i, len(want))
	}
}

func TestBackwardTraversalOrder(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 1, 9, 3, 7} {
		tree.Insert(k)
	}

	want := []int{9, 7, 5, 3, 1}
	i := 0
	for it := tree.RBegin(); it != tree.REnd(); it = it.Next() {
		if it.Value() != want[i] {
			t.Fatalf("backward[%d] = %d; want %d", i, it.Value(), want[i])
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("backward walk visited %d of %d values", i, len(want))
	}
}

func TestIteratorSteppingAtBoundaries(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}

	// Stepping past the maximum lands on End; Next of End stays End.
	it := tree.Find(3)
	if it.Next() != tree.End() {
		t.Error("Next past maximum is not End")
	}
	if tree.End().Next() != tree.End() {
		t.Error("Next of End moved")
	}

	// Prev of End is the maximum, in O(1) via the sentinel thread.
	if got := tree.End().Prev(); got.Value() != 3 {
		t.Errorf("Prev of End = %d; want 3", got.Value())
	}

	// Prev of the minimum is End.
	if tree.Begin().Prev() != tree.End() {
		t.Error("Prev of Begin is not End")
	}

	// Empty tree: decrement from End must stay put.
	empty := New[int]()
	if empty.End().Prev() != empty.End() {
		t.Error("Prev of End on empty tree moved")
	}
}

func TestIteratorRestartable(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{4, 2, 6} {
		tree.Insert(k)
	}

	first := tree.Begin()
	for it := first; it != tree.End(); it = it.Next() {
		_ = it.Value()
	}
	// The original cursor still points at the minimum after a full pass.
	if first.Value() != 2 {
		t.Errorf("restarted cursor = %d; want 2", first.Value())
	}
}

func TestEraseKeepsOtherIteratorsValid(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k)
	}

	itBefore := tree.Find(4)
	itAfter := tree.Find(7)

	// 5 has two children; erase swaps node identities rather than moving
	// values, so surviving references stay valid.
	tree.Delete(5)

	if itBefore.Value() != 4 {
		t.Errorf("iterator at 4 invalidated: value = %d", itBefore.Value())
	}
	if itAfter.Value() != 7 {
		t.Errorf("iterator at 7 invalidated: value = %d", itAfter.Value())
	}
	if got := itBefore.Next().Value(); got != 7 {
		t.Errorf("Next from 4 after erasing 5 = %d; want 7", got)
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestEraseSuccessorReferenceSurvivesSwap(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 7, 9} {
		tree.Insert(k)
	}

	// 7 is the in-order successor of 5; erasing 5 moves 7's node into 5's
	// structural slot but must not invalidate references to it.
	itSucc := tree.Find(7)
	tree.Delete(5)

	if itSucc.Value() != 7 {
		t.Fatalf("successor reference broken: value = %d", itSucc.Value())
	}
	if got := itSucc.Prev().Value(); got != 3 {
		t.Errorf("Prev from 7 after erase = %d; want 3", got)
	}
	if got := itSucc.Next().Value(); got != 8 {
		t.Errorf("Next from 7 after erase = %d; want 8", got)
	}
}

func TestEraseAdjacentSuccessor(t *testing.T) {
	// Build a shape where the successor is the immediate right child:
	//      2
	//     / \
	//    1   3
	//         \
	//          4
	tree := New[int]()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(k)
	}

	itRight := tree.Find(3)
	tree.Delete(2) // successor 3 is 2's direct right child

	if itRight.Value() != 3 {
		t.Fatalf("adjacent successor reference broken: value = %d", itRight.Value())
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}

	want := []int{1, 3, 4}
	got := tree.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order = %v; want %v", got, want)
		}
	}
}

func TestDeleteIter(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}

	tree.DeleteIter(tree.Find(20))
	if tree.Contains(20) || tree.Len() != 2 {
		t.Errorf("DeleteIter(20) failed: Len=%d", tree.Len())
	}

	// Deleting End is a no-op.
	tree.DeleteIter(tree.End())
	if tree.Len() != 2 {
		t.Errorf("DeleteIter(End) mutated the tree: Len=%d", tree.Len())
	}
}

func TestValuePanicsOnEnd(t *testing.T) {
	tree := New[int]()
	defer func() {
		if recover() == nil {
			t.Error("Value on End did not panic")
		}
	}()
	tree.End().Value()
}
