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

// Package avltree implements an ordered set over any totally-ordered
// value type, backed by a height-balanced (AVL) binary search tree with
// parent pointers and a sentinel boundary node.
//
// Insert, Delete and Find are O(log n) worst case; Min and Max are O(1)
// through the sentinel's cached extremes; full in-order traversal is
// O(n) via bidirectional iterators.
//
// A tree is not safe for concurrent use. Wrap access in a mutex when
// sharing across goroutines.
package avltree

import "cmp"

// Tree is an ordered set of values of type T. The zero value is not
// usable; construct with New or NewFunc.
type Tree[T any] struct {
	eng engine[T]
	end *node[T] // sentinel: parent self-loop, left = min, right = max
}

// New returns an empty tree ordered by the natural < of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Less[T])
}

// NewFunc returns an empty tree ordered by less, which must be a strict
// weak ordering. A comparator that is non-deterministic or
// non-transitive corrupts the structure in ways the tree cannot detect.
func NewFunc[T any](less LessFunc[T]) *Tree[T] {
	if less == nil {
		panic("avltree: nil comparator")
	}
	return &Tree[T]{
		eng: engine[T]{less: less},
		end: newSentinel[T](),
	}
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.eng.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.eng.size == 0
}

// Min returns the smallest value in O(1). ok is false when empty.
func (t *Tree[T]) Min() (v T, ok bool) {
	if t.end.left == t.end {
		return v, false
	}
	return t.end.left.value, true
}

// Max returns the largest value in O(1). ok is false when empty.
func (t *Tree[T]) Max() (v T, ok bool) {
	if t.end.right == t.end {
		return v, false
	}
	return t.end.right.value, true
}

// Begin returns an iterator on the minimum value, or End when empty.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{n: t.end.left}
}

// End returns the past-the-maximum iterator.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{n: t.end}
}

// RBegin returns a reverse iterator on the maximum value, or REnd when
// empty.
func (t *Tree[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{n: t.end.right}
}

// REnd returns the before-the-minimum reverse iterator.
func (t *Tree[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{n: t.end}
}

// Insert adds value to the tree. If an equal value is already present
// the tree is unchanged and the existing position is returned with
// false; otherwise the new position is returned with true.
func (t *Tree[T]) Insert(value T) (Iterator[T], bool) {
	g := t.unthread()
	defer g.restore()

	n, inserted := t.eng.insert(value)
	if !inserted {
		return Iterator[T]{n: n}, false
	}

	// Refresh the cached extremes for the restore step.
	if t.end.left == t.end || t.eng.less(value, t.end.left.value) {
		t.end.left = n
	}
	if t.end.right == t.end || t.eng.less(t.end.right.value, value) {
		t.end.right = n
	}
	return Iterator[T]{n: n}, true
}

// Find returns an iterator on the value equal to the argument, or End
// when absent.
func (t *Tree[T]) Find(value T) Iterator[T] {
	return Iterator[T]{n: t.findNode(value)}
}

// Contains reports whether an equal value is present.
func (t *Tree[T]) Contains(value T) bool {
	return t.findNode(value) != t.end
}

func (t *Tree[T]) findNode(value T) *node[T] {
	g := t.unthread()
	defer g.restore()

	n := t.eng.find(value)
	if n == nil {
		return t.end
	}
	return n
}

// Delete removes the value equal to the argument. Removing an absent
// value is a no-op; the return reports whether anything was removed.
func (t *Tree[T]) Delete(value T) bool {
	n := t.findNode(value)
	if n == t.end {
		return false
	}
	t.deleteNode(n)
	return true
}

// DeleteIter removes the value at pos. Removing End is a no-op. Only
// iterators referencing the removed node are invalidated.
func (t *Tree[T]) DeleteIter(pos Iterator[T]) {
	if !pos.Valid() {
		return
	}
	t.deleteNode(pos.n)
}

// DeleteMin removes the smallest value. No-op when empty.
func (t *Tree[T]) DeleteMin() {
	t.deleteNode(t.end.left)
}

// DeleteMax removes the largest value. No-op when empty.
func (t *Tree[T]) DeleteMax() {
	t.deleteNode(t.end.right)
}

func (t *Tree[T]) deleteNode(n *node[T]) {
	if n == nil || n.isPlaceholder() {
		return
	}
	if t.eng.size == 1 {
		t.Clear()
		return
	}

	// A removed extreme hands its role to its logical neighbor. This is
	// resolved before any structural change, while the ring threads still
	// make one-step moves cheap. A two-children node is never an extreme,
	// so the swap inside erase cannot disturb these.
	newMin, newMax := t.end.left, t.end.right
	if n == newMin {
		newMin = increment(n)
	}
	if n == newMax {
		newMax = decrement(n)
	}

	g := t.unthread()
	defer g.restore()

	t.end.left, t.end.right = newMin, newMax
	t.eng.erase(n)
}

// Clear removes all values and resets the sentinel to the empty state.
// The tree remains usable.
func (t *Tree[T]) Clear() {
	g := t.unthread()
	defer g.restore() // no-op once the sentinel is reset

	t.eng.clear()
	t.end.reset()
}

// Clone returns a deep copy: fresh nodes with the same structure and the
// clone's own sentinel threaded to its minimum and maximum. The
// comparator is shared.
func (t *Tree[T]) Clone() *Tree[T] {
	g := t.unthread()
	defer g.restore()

	c := NewFunc[T](t.eng.less)
	if t.eng.root == nil {
		return c
	}

	c.eng.root = c.eng.clone(t.eng.root, nil)
	c.eng.size = t.eng.size
	c.end.left = c.eng.root.leftmost()
	c.end.right = c.eng.root.rightmost()
	c.end.left.left = c.end
	c.end.right.right = c.end
	return c
}

// MoveFrom transfers other's contents into t without copying nodes: the
// root, count and sentinel threads move over and other is left empty but
// usable. Any previous contents of t are cleared. The comparator moves
// with the nodes that were ordered by it.
func (t *Tree[T]) MoveFrom(other *Tree[T]) {
	if t == other {
		return
	}
	t.Clear()
	t.eng.less = other.eng.less
	if other.Empty() {
		return
	}

	t.eng.root = other.eng.root
	t.eng.size = other.eng.size
	t.end.left = other.end.left
	t.end.right = other.end.right
	t.end.left.left = t.end
	t.end.right.right = t.end

	other.eng.root = nil
	other.eng.size = 0
	other.end.reset()
}

// Values returns all values in ascending order. Mostly a convenience for
// tests and tooling; prefer iterators for streaming access.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for it := t.Begin(); it != t.End(); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}
