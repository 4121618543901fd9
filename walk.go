// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lazytree

// VisitFn is called with each visited value during a traversal.
type VisitFn[E any] func(v E)

// WalkFn is used when walking the tree. Returning true terminates the walk.
type WalkFn[E any] func(v E) bool

// TraverseSoft calls fn in ascending order for every live value. fn must
// not modify the tree.
func (t *LazyTree[E]) TraverseSoft(fn VisitFn[E]) {
	recursiveWalk(t.root, false, visitAll(fn))
}

// TraverseHard calls fn in ascending order for every value, tombstones
// included. fn must not modify the tree.
func (t *LazyTree[E]) TraverseHard(fn VisitFn[E]) {
	recursiveWalk(t.root, true, visitAll(fn))
}

// Walk visits live values in ascending order until fn returns true. It
// reports whether the walk was terminated early.
func (t *LazyTree[E]) Walk(fn WalkFn[E]) bool {
	return recursiveWalk(t.root, false, fn)
}

// WalkHard is like Walk but also visits tombstoned values.
func (t *LazyTree[E]) WalkHard(fn WalkFn[E]) bool {
	return recursiveWalk(t.root, true, fn)
}

// Items returns the live values in ascending order.
func (t *LazyTree[E]) Items() []E {
	out := make([]E, 0, t.size)
	t.TraverseSoft(func(v E) {
		out = append(out, v)
	})
	return out
}

// ItemsHard returns every value, tombstones included, in ascending order.
func (t *LazyTree[E]) ItemsHard() []E {
	out := make([]E, 0, t.sizeHard)
	t.TraverseHard(func(v E) {
		out = append(out, v)
	})
	return out
}

func visitAll[E any](fn VisitFn[E]) WalkFn[E] {
	return func(v E) bool {
		fn(v)
		return false
	}
}

// recursiveWalk is used to do an in-order walk of a node recursively.
// Tombstoned nodes are only visited when hard is set. Returns true if the
// walk should be aborted.
func recursiveWalk[E any](n *node[E], hard bool, fn WalkFn[E]) bool {
	if n == nil {
		return false
	}
	if recursiveWalk(n.left, hard, fn) {
		return true
	}
	if (hard || n.isLive()) && fn(n.value) {
		return true
	}
	return recursiveWalk(n.right, hard, fn)
}
