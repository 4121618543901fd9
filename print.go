// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lazytree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

const tombstoneMark = " (deleted)"

// PrintVisitor returns a VisitFn that writes each value to w followed by a
// single space.
func PrintVisitor[E any](w io.Writer) VisitFn[E] {
	return func(v E) {
		fmt.Fprint(w, v, " ")
	}
}

// String renders the shape of the tree, tombstones included.
func (t *LazyTree[E]) String() string {
	if t.root == nil {
		return "(empty)\n"
	}
	tree := treeprint.NewWithRoot(nodeLabel(t.root))
	addChildren(tree, t.root)
	return tree.String()
}

// Fprint writes the shape of the tree to w.
func (t *LazyTree[E]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func addChildren[E any](tree treeprint.Tree, n *node[E]) {
	if n.isLeaf() {
		return
	}
	for _, ch := range []struct {
		meta string
		n    *node[E]
	}{{"L", n.left}, {"R", n.right}} {
		if ch.n == nil {
			tree.AddMetaNode(ch.meta, "·")
			continue
		}
		if ch.n.isLeaf() {
			tree.AddMetaNode(ch.meta, nodeLabel(ch.n))
			continue
		}
		addChildren(tree.AddMetaBranch(ch.meta, nodeLabel(ch.n)), ch.n)
	}
}

func nodeLabel[E any](n *node[E]) string {
	label := fmt.Sprint(n.value)
	if n.deleted {
		label += tombstoneMark
	}
	return label
}
