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
	"errors"
	"fmt"
)

// CheckInvariants verifies the full set of structural invariants: parent
// back-links, cached heights, the AVL balance bound, strict BST
// ordering, node count and sentinel threading. It is O(n) and meant for
// tests and diagnostics, not for hot paths.
func (t *Tree[T]) CheckInvariants() error {
	if err := t.checkStructure(); err != nil {
		return err
	}
	return t.checkOrder()
}

// checkStructure walks the raw pointers under the thread guard.
func (t *Tree[T]) checkStructure() error {
	if t.end.parent != t.end {
		return errors.New("sentinel parent self-loop broken")
	}

	if t.eng.root == nil {
		if t.eng.size != 0 {
			return fmt.Errorf("empty tree reports size %d", t.eng.size)
		}
		if t.end.left != t.end || t.end.right != t.end {
			return errors.New("sentinel extremes not self on empty tree")
		}
		return nil
	}

	g := t.unthread()
	defer g.restore()

	if t.eng.root.parent != nil {
		return errors.New("root has a parent")
	}

	count := 0
	if _, err := checkSubtree(t.eng.root, nil, &count); err != nil {
		return err
	}
	if count != t.eng.size {
		return fmt.Errorf("size %d but %d reachable nodes", t.eng.size, count)
	}

	if t.end.left != t.eng.root.leftmost() {
		return errors.New("sentinel left is not the minimum node")
	}
	if t.end.right != t.eng.root.rightmost() {
		return errors.New("sentinel right is not the maximum node")
	}
	return nil
}

// checkSubtree returns the true height of the subtree while validating
// each node's parent link, cached height and balance factor.
func checkSubtree[T any](n, parent *node[T], count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	if n.parent != parent {
		return 0, fmt.Errorf("node %v: bad parent link", n.value)
	}

	lh, err := checkSubtree(n.left, n, count)
	if err != nil {
		return 0, err
	}
	rh, err := checkSubtree(n.right, n, count)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(lh, rh); n.height != want {
		return 0, fmt.Errorf("node %v: cached height %d, actual %d", n.value, n.height, want)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("node %v: balance factor %d", n.value, bf)
	}
	return 1 + max(lh, rh), nil
}

// checkOrder walks the threaded ring with iterators and verifies strict
// ascending order, matching count, and agreement between the forward and
// backward walks.
func (t *Tree[T]) checkOrder() error {
	seen := 0
	prev := t.End()
	for it := t.Begin(); it != t.End(); it = it.Next() {
		if prev != t.End() && !t.eng.less(prev.Value(), it.Value()) {
			return fmt.Errorf("in-order violation: %v before %v", prev.Value(), it.Value())
		}
		prev = it
		seen++
		if seen > t.eng.size {
			return errors.New("forward walk exceeds tree size; ring corrupt")
		}
	}
	if seen != t.eng.size {
		return fmt.Errorf("forward walk saw %d of %d nodes", seen, t.eng.size)
	}

	seen = 0
	for it := t.RBegin(); it != t.REnd(); it = it.Next() {
		seen++
		if seen > t.eng.size {
			return errors.New("backward walk exceeds tree size; ring corrupt")
		}
	}
	if seen != t.eng.size {
		return fmt.Errorf("backward walk saw %d of %d nodes", seen, t.eng.size)
	}
	return nil
}
