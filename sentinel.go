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

// The sentinel is a node-shaped boundary marker owned by the tree facade.
// Its parent always points to itself (the placeholder marker), its left
// caches the minimum real node and its right the maximum. The minimum's
// left link and the maximum's right link point back at the sentinel,
// closing the structure into a ring so that begin/end and reverse
// stepping are O(1).
//
// The sentinel is allocated once per tree and never passes through the
// node free list.

func newSentinel[T any]() *node[T] {
	s := &node[T]{}
	s.reset()
	return s
}

// reset re-points the sentinel at itself, the empty-tree state.
func (s *node[T]) reset() {
	s.parent = s
	s.left = s
	s.right = s
	s.height = 0
}

// threadGuard brackets pointer-walking operations. While held, the ring
// back-links (minimum.left and maximum.right) are detached to nil so that
// plain nil-terminated descent, recursive copy and recursive destroy
// cannot wander into the sentinel. restore re-threads whatever the
// current extremes are, so it is safe to run after the extremes moved or
// the tree emptied; it must run on every exit path (use defer).
type threadGuard[T any] struct {
	end *node[T]
}

func (t *Tree[T]) unthread() threadGuard[T] {
	if t.end.left != t.end {
		t.end.left.left = nil
		t.end.right.right = nil
	}
	return threadGuard[T]{end: t.end}
}

func (g threadGuard[T]) restore() {
	if g.end.left != g.end {
		g.end.left.left = g.end
		g.end.right.right = g.end
	}
}
