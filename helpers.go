// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package lazytree

// iterativeSearch returns the live node equal to x, or nil.
func (t *LazyTree[E]) iterativeSearch(x E) *node[E] {
	n := t.root
	for n != nil {
		c := t.cmp(x, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		case n.deleted:
			return nil
		default:
			return n
		}
	}
	return nil
}

func (t *LazyTree[E]) recursiveInsert(n *node[E], x E) *node[E] {
	if n == nil {
		t.size++
		t.sizeHard++
		return newNode(x)
	}

	c := t.cmp(x, n.value)
	switch {
	case c < 0:
		n.left = t.recursiveInsert(n.left, x)
	case c > 0:
		n.right = t.recursiveInsert(n.right, x)
	case n.deleted:
		// Revive the tombstone instead of allocating.
		n.deleted = false
		t.size++
	}
	return n
}

// recursiveDeleteHard unlinks the node equal to x from the subtree rooted at
// n and returns the new subtree root.
func (t *LazyTree[E]) recursiveDeleteHard(n *node[E], x E, removed *bool) *node[E] {
	if n == nil {
		return nil
	}

	c := t.cmp(x, n.value)
	switch {
	case c < 0:
		n.left = t.recursiveDeleteHard(n.left, x, removed)
	case c > 0:
		n.right = t.recursiveDeleteHard(n.right, x, removed)
	case n.left != nil && n.right != nil:
		// Pull the successor up and remove it from the right subtree. The
		// node always comes out live, whatever the successor's state was.
		n.value = minimumHard(n.right).value
		n.deleted = false
		n.right = t.recursiveDeleteHard(n.right, n.value, removed)
	default:
		t.sizeHard--
		*removed = true
		return n.only()
	}
	return n
}

// recursiveCollect removes every tombstoned node below and including n,
// children first, and returns the new subtree root.
func (t *LazyTree[E]) recursiveCollect(n *node[E]) *node[E] {
	if n == nil {
		return nil
	}

	n.left = t.recursiveCollect(n.left)
	n.right = t.recursiveCollect(n.right)
	if n.isLive() {
		return n
	}

	t.sizeHard--
	if n.left == nil || n.right == nil {
		return n.only()
	}

	// Both subtrees are clean by now, so the successor is live.
	var succ *node[E]
	n.right, succ = detachMinimum(n.right)
	n.value = succ.value
	n.deleted = false
	return n
}

// detachMinimum unlinks the leftmost node of the subtree rooted at n. It
// returns the new subtree root and the detached node.
func detachMinimum[E any](n *node[E]) (*node[E], *node[E]) {
	if n.left == nil {
		return n.right, n
	}
	var leftmost *node[E]
	n.left, leftmost = detachMinimum(n.left)
	return n, leftmost
}

// minimum returns the smallest live node below n, skipping tombstones.
func minimum[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	if found := minimum(n.left); found != nil {
		return found
	}
	if n.isLive() {
		return n
	}
	return minimum(n.right)
}

// maximum returns the largest live node below n, skipping tombstones.
func maximum[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	if found := maximum(n.right); found != nil {
		return found
	}
	if n.isLive() {
		return n
	}
	return maximum(n.left)
}

// minimumHard returns the leftmost node below n, tombstoned or not.
func minimumHard[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximumHard returns the rightmost node below n, tombstoned or not.
func maximumHard[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func height[E any](n *node[E]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}
