package equaset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/collect_ive_go/equaset"
	"github.com/on-the-ground/collect_ive_go/equality"
)

func TestTreeEquaSet_IteratesAscending(t *testing.T) {
	coll := equaset.NativeSorted[int]()

	s := coll.SortedSet(3, 1, 4, 1, 5, 9, 2, 6)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, s.ToSlice())
	assert.Equal(t, "TreeEquaSet(1, 2, 3, 4, 5, 6, 9)", s.String())
}

func TestTreeEquaSet_PolicyOrderAndFirstWins(t *testing.T) {
	coll := equaset.NewSortedCollections[string](equality.StringIgnoringCase())

	s := coll.SortedSet("b", "A", "B")

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"A", "b"}, s.ToSlice(), "first spelling survives, order is the policy's")
}

func TestTreeEquaSet_MinMax(t *testing.T) {
	coll := equaset.NativeSorted[int]()
	s := coll.SortedSet(3, 1, 2)

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, 1, lo)

	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, 3, hi)

	_, ok = coll.EmptySortedSet().Min()
	assert.False(t, ok)
	_, ok = coll.EmptySortedSet().Max()
	assert.False(t, ok)
}

func TestTreeEquaSet_AlgebraStaysSorted(t *testing.T) {
	coll := equaset.NativeSorted[int]()
	a := coll.SortedSet(5, 3, 1)
	b := coll.SortedSet(4, 2)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Union(b).ToSlice())
	assert.Equal(t, []int{1, 3, 5}, a.Diff(b).ToSlice())
	assert.True(t, a.Intersect(b).IsEmpty())
}

func TestTreeEquaSet_OrderedTraversal(t *testing.T) {
	coll := equaset.NativeSorted[int]()
	s := coll.SortedSet(5, 1, 4, 2, 3)

	assert.Equal(t, []int{1, 2}, s.Take(2).ToSlice())
	assert.Equal(t, []int{4, 5}, s.TakeRight(2).ToSlice())
	assert.Equal(t, []int{1, 2}, s.TakeWhile(func(v int) bool { return v < 3 }).ToSlice())
	assert.Equal(t, []int{3, 4, 5}, s.DropWhile(func(v int) bool { return v < 3 }).ToSlice())

	windows := s.Sliding(3)
	require.Len(t, windows, 3)
	assert.Equal(t, []int{1, 2, 3}, windows[0].ToSlice())
	assert.Equal(t, []int{3, 4, 5}, windows[2].ToSlice())
}

func TestTreeEquaSet_SubsetsCount(t *testing.T) {
	coll := equaset.NativeSorted[int]()
	s := coll.SortedSet(1, 2, 3)

	total := 0
	for range s.Subsets() {
		total++
	}
	assert.Equal(t, 8, total)
}

func TestTreeEquaSet_CrossPolicyComparisonIsFalseNotPanic(t *testing.T) {
	a := equaset.NativeSorted[int]().SortedSet(1)
	b := equaset.NativeSorted[int]().SortedSet(1)

	assert.False(t, a.CanEqual(b))
	assert.False(t, a.Equals(b))
	assert.Panics(t, func() { a.Union(b) })
}
