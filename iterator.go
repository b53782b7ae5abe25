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

// Iterator is a bidirectional cursor over tree nodes in comparator
// order. Iterators compare with ==; two iterators are equal exactly when
// they reference the same node. The end iterator references the
// sentinel and must not be dereferenced.
//
// Erasing a node invalidates only iterators referencing that node; all
// other iterators remain valid.
type Iterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a real node (not end).
func (it Iterator[T]) Valid() bool {
	return it.n != nil && !it.n.isPlaceholder()
}

// Value returns the referenced value. Panics on the end iterator.
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		panic("avltree: Value called on end iterator")
	}
	return it.n.value
}

// Next returns the iterator advanced to the in-order successor. Stepping
// past the maximum lands on end; Next of end is end.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: increment(it.n)}
}

// Prev returns the iterator moved to the in-order predecessor. Prev of
// end is the maximum (O(1) via the sentinel thread); Prev of the minimum
// is end.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: decrement(it.n)}
}

// ReverseIterator walks the tree in strictly decreasing comparator
// order. Its Next is the forward iterator's Prev.
type ReverseIterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a real node (not rend).
func (it ReverseIterator[T]) Valid() bool {
	return it.n != nil && !it.n.isPlaceholder()
}

// Value returns the referenced value. Panics on the rend iterator.
func (it ReverseIterator[T]) Value() T {
	if !it.Valid() {
		panic("avltree: Value called on rend iterator")
	}
	return it.n.value
}

// Next returns the iterator moved one step toward the minimum.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{n: decrement(it.n)}
}

// Prev returns the iterator moved one step toward the maximum.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{n: increment(it.n)}
}

// increment steps to the in-order successor. On the sentinel it is a
// no-op. With a right child it descends to the leftmost node of the
// right subtree (the maximum's right child is the sentinel, which stops
// the descent immediately). Otherwise it climbs until it departs a node
// through a left edge and lands on that parent.
func increment[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	if n.isPlaceholder() {
		return n
	}

	if n.right != nil {
		n = n.right
		if !n.isPlaceholder() {
			for n.left != nil {
				n = n.left
			}
		}
		return n
	}

	for {
		p := n.parent
		if p == nil {
			return n
		}
		if p.left == n {
			return p
		}
		n = p
	}
}

// decrement steps to the in-order predecessor. From the sentinel it
// jumps straight to the cached maximum, unless the tree is empty in
// which case it stays put.
func decrement[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	if n.isPlaceholder() {
		if n.right.isPlaceholder() {
			return n
		}
		return n.right
	}

	if n.left != nil {
		n = n.left
		if !n.isPlaceholder() {
			for n.right != nil {
				n = n.right
			}
		}
		return n
	}

	for {
		p := n.parent
		if p == nil {
			return n
		}
		if p.right == n {
			return p
		}
		n = p
	}
}
