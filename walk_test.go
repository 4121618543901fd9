package lazytree

import (
	"bytes"
	"slices"
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestWalk_Terminates(t *testing.T) {
	tree := New[int]()
	insertAll(tree, 4, 2, 6, 1, 3, 5, 7)
	tree.Remove(3)

	var seen []int
	aborted := tree.Walk(func(v int) bool {
		seen = append(seen, v)
		return v >= 4
	})
	require.True(t, aborted)
	require.Equal(t, []int{1, 2, 4}, seen)

	seen = nil
	aborted = tree.WalkHard(func(v int) bool {
		seen = append(seen, v)
		return v >= 4
	})
	require.True(t, aborted)
	require.Equal(t, []int{1, 2, 3, 4}, seen)

	require.False(t, tree.Walk(func(int) bool { return false }))
}

func TestPrintVisitor(t *testing.T) {
	tree := New[int]()
	insertAll(tree, 10, 5, 15)
	tree.Remove(5)

	var buf bytes.Buffer
	tree.TraverseSoft(PrintVisitor[int](&buf))
	require.Equal(t, "10 15 ", buf.String())

	buf.Reset()
	tree.TraverseHard(PrintVisitor[int](&buf))
	require.Equal(t, "5 10 15 ", buf.String())
}

// treeOp is a single random operation applied by the property tests. The
// low two bits select the operation and the rest pick a key from a small
// range so that keys collide often.
type treeOp uint16

func (o treeOp) kind() int { return int(o & 3) }
func (o treeOp) key() int  { return int(o>>2) % 32 }

// model tracks every key in the tree and whether it is live.
type model map[int]bool

func (m model) keys(liveOnly bool) []int {
	out := []int{}
	for k, live := range m {
		if live || !liveOnly {
			out = append(out, k)
		}
	}
	sort.Ints(out)
	return out
}

func applyOps(tree *LazyTree[int], m model, ops []treeOp) {
	for _, op := range ops {
		k := op.key()
		switch op.kind() {
		case 0, 1:
			tree.Insert(k)
			m[k] = true
		case 2:
			if tree.Remove(k) {
				m[k] = false
			}
		case 3:
			tree.CollectGarbage()
			for k, live := range m {
				if !live {
					delete(m, k)
				}
			}
		}
	}
}

func TestLazyTree_MatchesModel(t *testing.T) {
	check := func(ops []treeOp) bool {
		tree := New[int]()
		m := model{}
		applyOps(tree, m, ops)

		soft := m.keys(true)
		hard := m.keys(false)
		return tree.Size() <= tree.SizeHard() &&
			tree.Size() == len(soft) &&
			tree.SizeHard() == len(hard) &&
			slices.Equal(soft, tree.Items()) &&
			slices.Equal(hard, tree.ItemsHard())
	}

	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestLazyTree_CollectGarbageProperties(t *testing.T) {
	check := func(ops []treeOp) bool {
		tree := New[int]()
		applyOps(tree, model{}, ops)

		size := tree.Size()
		if tree.CollectGarbage() {
			return false
		}
		if tree.Size() != size || tree.SizeHard() != size {
			return false
		}

		// A second pass leaves the tree untouched.
		shape := tree.String()
		tree.CollectGarbage()
		return shape == tree.String() && tree.SizeHard() == size
	}

	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestLazyTree_MinMaxMatchModel(t *testing.T) {
	check := func(ops []treeOp) bool {
		tree := New[int]()
		m := model{}
		applyOps(tree, m, ops)

		soft := m.keys(true)
		lo, errLo := tree.FindMin()
		hi, errHi := tree.FindMax()
		if len(soft) == 0 {
			return errLo == ErrEmptyTree && errHi == ErrEmptyTree
		}
		return errLo == nil && errHi == nil &&
			lo == soft[0] && hi == soft[len(soft)-1]
	}

	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestLazyTree_CloneMatchesOriginal(t *testing.T) {
	check := func(ops, more []treeOp) bool {
		tree := New[int]()
		applyOps(tree, model{}, ops)
		clone := tree.Clone()

		if clone.Size() != tree.Size() || clone.SizeHard() != tree.SizeHard() ||
			clone.String() != tree.String() {
			return false
		}

		// Mutating the clone leaves the original alone.
		before := tree.String()
		size, sizeHard := tree.Size(), tree.SizeHard()
		applyOps(clone, model{}, more)
		return tree.String() == before &&
			tree.Size() == size && tree.SizeHard() == sizeHard
	}

	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}
