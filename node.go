// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lazytree

// node is a single tree node. A node is owned by exactly one parent link,
// or by the tree itself when it is the root.
type node[E any] struct {
	value E
	left  *node[E]
	right *node[E]

	// deleted marks the node as tombstoned. Tombstoned nodes keep their
	// place in the tree until they are hard removed or garbage collected.
	deleted bool
}

func newNode[E any](value E) *node[E] {
	return &node[E]{value: value}
}

func (n *node[E]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[E]) isLive() bool {
	return !n.deleted
}

// only returns the single child of a node with at most one child.
func (n *node[E]) only() *node[E] {
	if n.left != nil {
		return n.left
	}
	return n.right
}

// clone deep copies the subtree rooted at n, tombstones included, and
// reports the number of nodes copied through count.
func (n *node[E]) clone(count *int) *node[E] {
	if n == nil {
		return nil
	}
	*count++
	return &node[E]{
		value:   n.value,
		left:    n.left.clone(count),
		right:   n.right.clone(count),
		deleted: n.deleted,
	}
}
