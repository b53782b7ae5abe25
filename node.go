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

// node is a tree vertex. The same shape doubles as the sentinel: the
// sentinel is the one node whose parent points to itself, and its
// left/right links cache the tree's minimum and maximum nodes.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	height int
}

// isPlaceholder reports whether n is the sentinel. Only the sentinel has
// a parent self-loop; real nodes never do.
func (n *node[T]) isPlaceholder() bool {
	return n != nil && n.parent == n
}

func (n *node[T]) leftHeight() int {
	if n.left == nil {
		return 0
	}
	return n.left.height
}

func (n *node[T]) rightHeight() int {
	if n.right == nil {
		return 0
	}
	return n.right.height
}

// balanceFactor is rightHeight - leftHeight. The AVL invariant keeps it
// within [-1, +1] between operations.
func (n *node[T]) balanceFactor() int {
	return n.rightHeight() - n.leftHeight()
}

// updateHeight recomputes this node's cached height from its direct
// children only.
func (n *node[T]) updateHeight() {
	n.height = 1 + max(n.leftHeight(), n.rightHeight())
}

// updateHeightToRoot recomputes this node's height and then walks the
// parent chain recomputing each ancestor, stopping as soon as an
// ancestor's height is unchanged: heights further up cannot be affected.
func (n *node[T]) updateHeightToRoot() {
	n.updateHeight()
	for p := n.parent; p != nil; p = p.parent {
		before := p.height
		p.updateHeight()
		if p.height == before {
			break
		}
	}
}

// successor returns the leftmost node of the right subtree, or n itself
// when there is no right child. This is a local building block; full
// in-order stepping lives in iterator.go.
func (n *node[T]) successor() *node[T] {
	if n.right == nil {
		return n
	}
	s := n.right
	for s.left != nil {
		s = s.left
	}
	return s
}

// predecessor mirrors successor on the left subtree.
func (n *node[T]) predecessor() *node[T] {
	if n.left == nil {
		return n
	}
	p := n.left
	for p.right != nil {
		p = p.right
	}
	return p
}

// leftmost descends left links to the smallest node of the subtree.
func (n *node[T]) leftmost() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost descends right links to the largest node of the subtree.
func (n *node[T]) rightmost() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
