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
	"fmt"
	"io"
)

type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Dump writes an ASCII rendering of the tree to w, right subtree above
// left, one node per line with its height and balance factor. Returns
// the tree depth. Diagnostics only.
func (t *Tree[T]) Dump(w io.Writer) int {
	g := t.unthread()
	defer g.restore()

	return dumpSubtree(w, t.eng.root, "", atRoot)
}

func dumpSubtree[T any](w io.Writer, n *node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		pad := "       "
		if br == atLeft {
			pad = "|      "
		}
		rd = dumpSubtree(w, n.right, prefix+pad, atRight)
	}

	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d b=%+d\n", n.value, n.height, n.balanceFactor())

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == atRight {
			pad = "|      "
		}
		ld = dumpSubtree(w, n.left, prefix+pad, atLeft)
	}

	return 1 + max(rd, ld)
}
