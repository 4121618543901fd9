// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lazytree

import (
	"golang.org/x/exp/constraints"
)

// CompareFunc orders two values, returning a negative number when a sorts
// before b, a positive number when a sorts after b and zero when they are
// equal.
type CompareFunc[E any] func(a, b E) int

// LazyTree is an unbalanced binary search tree that supports lazy deletion.
// Removed values are tombstoned in place and stay part of the structure
// until they are hard removed or reclaimed by CollectGarbage.
//
// A LazyTree is not safe for concurrent use.
type LazyTree[E any] struct {
	root *node[E]
	cmp  CompareFunc[E]

	// size counts live nodes, sizeHard counts every node.
	size     int
	sizeHard int
}

// New returns an empty tree ordered by the natural ordering of E.
func New[E constraints.Ordered]() *LazyTree[E] {
	return NewFunc[E](compareOrdered[E])
}

// NewFunc returns an empty tree ordered by cmp.
func NewFunc[E any](cmp CompareFunc[E]) *LazyTree[E] {
	if cmp == nil {
		panic("lazytree: nil compare function")
	}
	return &LazyTree[E]{cmp: cmp}
}

func compareOrdered[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsEmpty reports whether the tree holds no live values.
func (t *LazyTree[E]) IsEmpty() bool {
	return t.size == 0
}

// Size returns the number of live values.
func (t *LazyTree[E]) Size() int {
	return t.size
}

// SizeHard returns the number of nodes, live and tombstoned.
func (t *LazyTree[E]) SizeHard() int {
	return t.sizeHard
}

// Tombstones returns the number of nodes waiting to be garbage collected.
func (t *LazyTree[E]) Tombstones() int {
	return t.sizeHard - t.size
}

// Height returns the number of edges on the longest path from the root to
// a leaf, counting tombstoned nodes. An empty tree has height -1.
func (t *LazyTree[E]) Height() int {
	return height(t.root)
}

// Clear drops every node.
func (t *LazyTree[E]) Clear() {
	t.root = nil
	t.size = 0
	t.sizeHard = 0
}

// Find returns the stored value equal to x. Tombstoned values are not
// visible and yield ErrNotFound.
func (t *LazyTree[E]) Find(x E) (E, error) {
	var zero E
	n := t.iterativeSearch(x)
	if n == nil {
		return zero, ErrNotFound
	}
	return n.value, nil
}

// Contains reports whether a live value equal to x is in the tree.
func (t *LazyTree[E]) Contains(x E) bool {
	return t.iterativeSearch(x) != nil
}

// FindMin returns the smallest live value.
func (t *LazyTree[E]) FindMin() (E, error) {
	var zero E
	n := minimum(t.root)
	if n == nil {
		return zero, ErrEmptyTree
	}
	return n.value, nil
}

// FindMax returns the largest live value.
func (t *LazyTree[E]) FindMax() (E, error) {
	var zero E
	n := maximum(t.root)
	if n == nil {
		return zero, ErrEmptyTree
	}
	return n.value, nil
}

// Insert adds x to the tree. A tombstoned node equal to x is revived in
// place. Insert returns false when a live value equal to x already exists.
func (t *LazyTree[E]) Insert(x E) bool {
	oldSize := t.size
	t.root = t.recursiveInsert(t.root, x)
	return t.size != oldSize
}

// Remove lazily deletes x by tombstoning its node. It returns false when x
// is absent or already tombstoned.
func (t *LazyTree[E]) Remove(x E) bool {
	n := t.iterativeSearch(x)
	if n == nil {
		return false
	}
	n.deleted = true
	t.size--
	return true
}

// RemoveHard physically unlinks the node equal to x, whether it is live or
// tombstoned, and reports whether a node was removed.
//
// RemoveHard only maintains SizeHard. Removing a live value this way leaves
// Size counting it; callers that hard remove live values must expect Size to
// drift from the number of live nodes.
func (t *LazyTree[E]) RemoveHard(x E) bool {
	var removed bool
	t.root = t.recursiveDeleteHard(t.root, x, &removed)
	return removed
}

// CollectGarbage physically removes every tombstoned node. Only SizeHard
// shrinks. The result reports whether Size changed, which it does not for
// a consistent tree.
func (t *LazyTree[E]) CollectGarbage() bool {
	oldSize := t.size
	t.root = t.recursiveCollect(t.root)
	return t.size != oldSize
}

// Clone returns a deep copy of the tree. Tombstones are copied along with
// the values, and the copy shares no nodes with t.
func (t *LazyTree[E]) Clone() *LazyTree[E] {
	nt := &LazyTree[E]{
		cmp:  t.cmp,
		size: t.size,
	}
	nt.root = t.root.clone(&nt.sizeHard)
	return nt
}
