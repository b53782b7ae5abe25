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

// freeListSize caps how many reclaimed nodes a tree keeps around for
// reuse. Erase-heavy workloads churn nodes; a small per-tree pool avoids
// a round trip through the allocator for them.
const freeListSize = 32

// freeList is a per-tree pool of reclaimed nodes. Trees are
// single-goroutine by contract, so no locking here. The sentinel must
// never be routed through this pool.
type freeList[T any] struct {
	nodes []*node[T]
}

// newNode returns a reclaimed node when one is available, otherwise a
// fresh leaf. Either way the result is a detached leaf of height 1.
func (f *freeList[T]) newNode(value T) *node[T] {
	i := len(f.nodes) - 1
	if i < 0 {
		return &node[T]{value: value, height: 1}
	}
	n := f.nodes[i]
	f.nodes[i] = nil
	f.nodes = f.nodes[:i]
	n.value = value
	n.height = 1
	return n
}

// freeNode severs all links and zeroes the value so reclaimed nodes hold
// no references, then pools the node if there is room.
func (f *freeList[T]) freeNode(n *node[T]) {
	var zero T
	n.value = zero
	n.left = nil
	n.right = nil
	n.parent = nil
	n.height = 0
	if f.nodes == nil {
		f.nodes = make([]*node[T], 0, freeListSize)
	}
	if len(f.nodes) < cap(f.nodes) {
		f.nodes = append(f.nodes, n)
	}
}
