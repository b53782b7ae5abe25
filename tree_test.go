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
	"math"
	"math/rand"
	"testing"
)

type treeTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int
}

func TestTreeOperations(t *testing.T) {
	testCases := []treeTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []int{1},
			KeysToInsert:  []int{2, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []int{3, 2, 1},
			KeysToDelete:  []int{3},
			ExpectedOrder: []int{1, 2},
		},
		{
			Name:          "Two-Child Erase",
			InitialKeys:   []int{5, 3, 8, 1, 4, 7, 9, 2, 6},
			KeysToDelete:  []int{5},
			ExpectedOrder: []int{1, 2, 3, 4, 6, 7, 8, 9},
		},
		{
			Name:          "Erase Absent Key",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{42},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Erase All",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{1, 3, 2},
			ExpectedOrder: []int{},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{4, 2},
			KeysToInsert:  []int{5, 1},
			KeysToDelete:  []int{2},
			ExpectedOrder: []int{1, 4, 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Delete(key)
			}

			if err := tree.CheckInvariants(); err != nil {
				t.Fatalf("invariants violated: %v", err)
			}
			got := tree.Values()
			if len(got) != len(tc.ExpectedOrder) {
				t.Fatalf("in-order = %v; want %v", got, tc.ExpectedOrder)
			}
			for i := range got {
				if got[i] != tc.ExpectedOrder[i] {
					t.Fatalf("in-order = %v; want %v", got, tc.ExpectedOrder)
				}
			}
		})
	}
}

func TestInsertReturnsPosition(t *testing.T) {
	tree := New[int]()

	it, inserted := tree.Insert(10)
	if !inserted || it.Value() != 10 {
		t.Fatalf("Insert(10) = (%v, %v); want (10, true)", it, inserted)
	}

	// Duplicate insert: same position, no growth.
	it2, inserted := tree.Insert(10)
	if inserted {
		t.Error("duplicate Insert(10) reported as new")
	}
	if it2 != it {
		t.Error("duplicate Insert(10) returned a different position")
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d after duplicate insert; want 1", tree.Len())
	}
}

func TestFindAfterInsert(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tree.Insert(v)
		if it := tree.Find(v); it == tree.End() || it.Value() != v {
			t.Fatalf("Find(%d) after Insert(%d) failed", v, v)
		}
	}
	if it := tree.Find(100); it != tree.End() {
		t.Error("Find of absent key should return End")
	}
}

func TestSizeBookkeeping(t *testing.T) {
	tree := New[int]()
	const k = 100

	for i := 0; i < k; i++ {
		tree.Insert(i)
	}
	if tree.Len() != k {
		t.Fatalf("Len() = %d after %d distinct inserts", tree.Len(), k)
	}

	const j = 37
	for i := 0; i < j; i++ {
		tree.Delete(i * 2)
	}
	if tree.Len() != k-j {
		t.Fatalf("Len() = %d after erasing %d; want %d", tree.Len(), j, k-j)
	}

	for i := 0; i < j; i++ {
		if tree.Contains(i * 2) {
			t.Fatalf("erased key %d still found", i*2)
		}
	}
}

func TestMinMaxCaching(t *testing.T) {
	tree := New[int]()
	if _, ok := tree.Min(); ok {
		t.Error("Min on empty tree reported ok")
	}
	if _, ok := tree.Max(); ok {
		t.Error("Max on empty tree reported ok")
	}

	for _, v := range []int{10, 20, 50} {
		tree.Insert(v)
	}
	if got := tree.Begin().Value(); got != 10 {
		t.Errorf("*begin = %d; want 10", got)
	}

	tree.DeleteMax()
	if mx, _ := tree.Max(); mx != 20 {
		t.Errorf("max after DeleteMax = %d; want 20", mx)
	}
	if tree.Find(50) != tree.End() {
		t.Error("50 still findable after DeleteMax")
	}

	tree.DeleteMin()
	if mn, _ := tree.Min(); mn != 20 {
		t.Errorf("min after DeleteMin = %d; want 20", mn)
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestEmptyTreeIsSafe(t *testing.T) {
	tree := New[int]()

	if tree.Begin() != tree.End() {
		t.Error("Begin != End on empty tree")
	}
	if tree.RBegin() != tree.REnd() {
		t.Error("RBegin != REnd on empty tree")
	}

	// All of these must be harmless no-ops.
	tree.Delete(1)
	tree.DeleteMin()
	tree.DeleteMax()
	tree.DeleteIter(tree.End())
	tree.Clear()

	if !tree.Empty() || tree.Len() != 0 {
		t.Errorf("empty tree reports Len=%d Empty=%v", tree.Len(), tree.Empty())
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

// avlHeightBound is the worst-case AVL height for n nodes.
func avlHeightBound(n int) int {
	return int(math.Ceil(1.4405*math.Log2(float64(n)+2) - 0.3277))
}

func TestAscendingInsertStaysBalanced(t *testing.T) {
	const n = 4096
	tree := New[int]()
	for i := 1; i <= n; i++ {
		tree.Insert(i)
	}

	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}

	if h := tree.eng.root.height; h > avlHeightBound(n) {
		t.Errorf("height %d exceeds AVL bound %d for n=%d", h, avlHeightBound(n), n)
	}

	got := tree.Values()
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("in-order[%d] = %d; want %d", i, v, i+1)
		}
	}
}

func TestClearAndReuse(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 64; i++ {
		tree.Insert(i)
	}
	tree.Clear()

	if !tree.Empty() {
		t.Fatal("tree not empty after Clear")
	}
	if tree.Begin() != tree.End() {
		t.Fatal("iterators not reset after Clear")
	}

	for i := 0; i < 16; i++ {
		tree.Insert(i * 3)
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated after reuse: %v", err)
	}
	if tree.Len() != 16 {
		t.Errorf("Len() = %d after reuse; want 16", tree.Len())
	}
}

func TestClone(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		tree.Insert(v)
	}

	clone := tree.Clone()
	if err := clone.CheckInvariants(); err != nil {
		t.Fatalf("clone invariants violated: %v", err)
	}

	// Mutating the original must not touch the clone.
	tree.Delete(3)
	tree.Insert(100)
	if !clone.Contains(3) || clone.Contains(100) {
		t.Error("clone shares state with the original")
	}

	// And the other way round.
	clone.Clear()
	if tree.Len() != 5 {
		t.Errorf("original Len = %d after clearing clone; want 5", tree.Len())
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("original invariants violated: %v", err)
	}
}

func TestMoveFrom(t *testing.T) {
	src := New[int]()
	for _, v := range []int{5, 3, 8} {
		src.Insert(v)
	}
	dst := New[int]()
	dst.Insert(99)

	dst.MoveFrom(src)

	if !src.Empty() {
		t.Errorf("source not empty after move: Len=%d", src.Len())
	}
	if src.Begin() != src.End() {
		t.Error("source iterators not reset after move")
	}
	if dst.Len() != 3 || dst.Contains(99) {
		t.Errorf("destination after move: Len=%d Contains(99)=%v", dst.Len(), dst.Contains(99))
	}
	if err := dst.CheckInvariants(); err != nil {
		t.Fatalf("destination invariants: %v", err)
	}
	if err := src.CheckInvariants(); err != nil {
		t.Fatalf("source invariants: %v", err)
	}

	// The emptied source stays usable.
	src.Insert(1)
	if src.Len() != 1 {
		t.Errorf("source unusable after move: Len=%d", src.Len())
	}
}

func TestCustomComparator(t *testing.T) {
	// Descending order via an inverted comparator.
	tree := NewFunc[int](func(a, b int) bool { return a > b })
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		tree.Insert(v)
	}

	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	want := []int{9, 6, 5, 4, 3, 2, 1}
	got := tree.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v; want %v", got, want)
		}
	}
	if mn, _ := tree.Min(); mn != 9 {
		t.Errorf("Min under inverted comparator = %d; want 9", mn)
	}
}

func TestRandomSoak(t *testing.T) {
	// Insert and erase in random order with invariant checks after every
	// step; small enough to keep the O(n) checker affordable per step.
	rng := rand.New(rand.NewSource(1))
	tree := New[int]()

	perm := rng.Perm(300)
	for _, v := range perm {
		tree.Insert(v)
		if err := tree.CheckInvariants(); err != nil {
			t.Fatalf("insert(%d): %v", v, err)
		}
	}

	erase := rng.Perm(300)
	for i, v := range erase {
		tree.Delete(v)
		if err := tree.CheckInvariants(); err != nil {
			t.Fatalf("delete(%d) (step %d): %v", v, i, err)
		}
	}
	if tree.Len() != 0 {
		t.Fatalf("Len() = %d after erasing everything", tree.Len())
	}
}

func TestLargeRandomChurn(t *testing.T) {
	n := 2_000_000
	if testing.Short() {
		n = 100_000
	}

	rng := rand.New(rand.NewSource(42))
	insertOrder := rng.Perm(n)
	eraseOrder := rng.Perm(n)

	tree := New[int]()
	for _, v := range insertOrder {
		tree.Insert(v)
	}
	if tree.Len() != n {
		t.Fatalf("Len() = %d after %d inserts", tree.Len(), n)
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("invariants after inserts: %v", err)
	}
	if h := tree.eng.root.height; h > avlHeightBound(n) {
		t.Errorf("height %d exceeds AVL bound %d for n=%d", h, avlHeightBound(n), n)
	}

	checkEvery := n / 8
	for i, v := range eraseOrder {
		tree.Delete(v)
		if (i+1)%checkEvery == 0 {
			if err := tree.CheckInvariants(); err != nil {
				t.Fatalf("invariants after %d erases: %v", i+1, err)
			}
		}
	}
	if tree.Len() != 0 {
		t.Fatalf("Len() = %d at the end; want 0", tree.Len())
	}
	if err := tree.CheckInvariants(); err != nil {
		t.Fatalf("final invariants: %v", err)
	}
}
