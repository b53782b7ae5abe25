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

// LessFunc orders values in the tree. It must implement a strict weak
// ordering: a deterministic, transitive "less than". Two values a, b with
// !less(a, b) && !less(b, a) are treated as equal.
type LessFunc[T any] func(a, b T) bool

// engine owns the root and node count and carries the balancing
// machinery. It only ever sees nil-terminated subtrees: the facade
// detaches the sentinel ring before handing control here.
type engine[T any] struct {
	root *node[T]
	size int
	less LessFunc[T]
	free freeList[T]
}

// find descends from the root. Equal-under-comparator stops the descent.
func (e *engine[T]) find(value T) *node[T] {
	n := e.root
	for n != nil {
		switch {
		case e.less(value, n.value):
			n = n.left
		case e.less(n.value, value):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insert links value as a new leaf, refreshes ancestor heights and
// rebalances from the leaf's parent. When an equal value already exists
// the tree is left untouched and the existing node is returned with
// false.
func (e *engine[T]) insert(value T) (*node[T], bool) {
	if e.root == nil {
		e.root = e.free.newNode(value)
		e.size = 1
		return e.root, true
	}

	var leaf *node[T]
	cur := e.root

	for leaf == nil {
		switch {
		case e.less(value, cur.value):
			if cur.left == nil {
				leaf = e.free.newNode(value)
				cur.left = leaf
				leaf.parent = cur
			} else {
				cur = cur.left
			}
		case e.less(cur.value, value):
			if cur.right == nil {
				leaf = e.free.newNode(value)
				cur.right = leaf
				leaf.parent = cur
			} else {
				cur = cur.right
			}
		default:
			return cur, false
		}
	}

	e.size++
	leaf.updateHeightToRoot()
	e.rebalance(leaf.parent)
	return leaf, true
}

// swapNodes exchanges the structural position of two nodes: all three
// links plus the cached height. Values stay with their nodes, so any
// outside reference to either node remains valid after the exchange.
// When b is a's direct child (the erase-successor case) the blind swap
// leaves a's parent link aliasing a itself; that is patched explicitly.
func (e *engine[T]) swapNodes(a, b *node[T]) {
	a.parent, b.parent = b.parent, a.parent
	a.left, b.left = b.left, a.left
	a.right, b.right = b.right, a.right
	a.height, b.height = b.height, a.height

	if a.parent == a {
		a.parent = b
		if b.right == b {
			b.right = a
		} else {
			b.left = a
		}
	} else if b.parent == b {
		b.parent = a
		if a.right == a {
			a.right = b
		} else {
			a.left = b
		}
	}

	if a.parent != nil && a.parent != b {
		if a.parent.left == b {
			a.parent.left = a
		} else {
			a.parent.right = a
		}
	}
	if b.parent != nil && b.parent != a {
		if b.parent.left == a {
			b.parent.left = b
		} else {
			b.parent.right = b
		}
	}

	if a.left != nil {
		a.left.parent = a
	}
	if a.right != nil {
		a.right.parent = a
	}
	if b.left != nil {
		b.left.parent = b
	}
	if b.right != nil {
		b.right.parent = b
	}
}

// erase unlinks n from the tree and reclaims it. A node with two
// children first swaps position with its in-order successor, so the node
// actually spliced out has at most one child and references to the
// successor stay valid. The caller guarantees n is a live node of this
// tree.
func (e *engine[T]) erase(n *node[T]) {
	if n == nil {
		return
	}
	if e.size == 1 {
		e.free.freeNode(n)
		e.root = nil
		e.size = 0
		return
	}

	if n.left != nil && n.right != nil {
		e.swapNodes(n, n.successor())
	}

	parent := n.parent
	if parent == nil {
		// n is the root with at most one child: promote the child.
		child := n.left
		if child == nil {
			child = n.right
		}
		child.parent = nil
		e.root = child
		e.free.freeNode(n)
		parent = child
	} else {
		child := n.right
		if child == nil {
			child = n.left
		}
		if parent.left == n {
			parent.left = child
		} else {
			parent.right = child
		}
		if child != nil {
			child.parent = parent
		}
		e.free.freeNode(n)
		parent.updateHeightToRoot()
	}

	e.rebalance(parent)
	e.size--
}

// rotateLeft makes n's right child the subtree root and n its left
// child; the former left child of the new root becomes n's right child.
// Heights are recomputed bottom-up. The new root's parent link is left
// for the caller to fix.
func rotateLeft[T any](n *node[T]) *node[T] {
	pivot := n.right

	n.right = pivot.left
	if n.right != nil {
		n.right.parent = n
	}

	pivot.left = n
	n.parent = pivot

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[T any](n *node[T]) *node[T] {
	pivot := n.left

	n.left = pivot.right
	if n.left != nil {
		n.left.parent = n
	}

	pivot.right = n
	n.parent = pivot

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// smallLeftRotate rotates n left and re-attaches the resulting subtree
// root into n's former parent slot, or makes it the tree root when n had
// no parent. Returns the new subtree root.
func (e *engine[T]) smallLeftRotate(n *node[T]) *node[T] {
	parent := n.parent
	sub := rotateLeft(n)
	sub.parent = parent

	if parent == nil {
		return sub
	}
	if parent.left == n {
		parent.left = sub
	} else {
		parent.right = sub
	}
	parent.updateHeightToRoot()
	return sub
}

// smallRightRotate is the mirror of smallLeftRotate.
func (e *engine[T]) smallRightRotate(n *node[T]) *node[T] {
	parent := n.parent
	sub := rotateRight(n)
	sub.parent = parent

	if parent == nil {
		return sub
	}
	if parent.left == n {
		parent.left = sub
	} else {
		parent.right = sub
	}
	parent.updateHeightToRoot()
	return sub
}

// bigLeftRotate handles the right child being left-heavy: right-rotate
// the right child first, then left-rotate n.
func (e *engine[T]) bigLeftRotate(n *node[T]) *node[T] {
	n.right = e.smallRightRotate(n.right)
	n.updateHeightToRoot()
	return e.smallLeftRotate(n)
}

// bigRightRotate is the mirror of bigLeftRotate.
func (e *engine[T]) bigRightRotate(n *node[T]) *node[T] {
	n.left = e.smallLeftRotate(n.left)
	n.updateHeightToRoot()
	return e.smallRightRotate(n)
}

// balanceNode restores the AVL invariant at n if violated, choosing a
// single or double rotation from the child's balance-factor sign.
// Returns the subtree root after any rotation, or n unchanged.
func (e *engine[T]) balanceNode(n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.right.balanceFactor() >= 0 {
			n = e.smallLeftRotate(n)
		} else {
			n = e.bigLeftRotate(n)
		}
	case bf < -1:
		if n.left.balanceFactor() <= 0 {
			n = e.smallRightRotate(n)
		} else {
			n = e.bigRightRotate(n)
		}
	}

	return n
}

// rebalance walks from n up to the top, balancing each ancestor. An
// ancestor that ends up with no parent is the tree's root.
func (e *engine[T]) rebalance(n *node[T]) {
	for cur := n; cur != nil; {
		cur = e.balanceNode(cur)
		if cur.parent == nil {
			e.root = cur
		}
		cur = cur.parent
	}
}

// clone deep-copies the subtree rooted at n, preserving structure and
// cached heights.
func (e *engine[T]) clone(n, parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	m := &node[T]{value: n.value, height: n.height, parent: parent}
	m.left = e.clone(n.left, m)
	m.right = e.clone(n.right, m)
	return m
}

// destroy frees every node of the subtree post-order. The sentinel is
// never reachable here: the facade detaches the ring first.
func (e *engine[T]) destroy(n *node[T]) {
	if n == nil {
		return
	}
	e.destroy(n.left)
	e.destroy(n.right)
	e.free.freeNode(n)
}

// clear drops the whole tree.
func (e *engine[T]) clear() {
	e.destroy(e.root)
	e.root = nil
	e.size = 0
}
