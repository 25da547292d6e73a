package equaset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/collect_ive_go/equaset"
	"github.com/on-the-ground/collect_ive_go/equality"
)

func TestEquaSet_DeduplicatesUnderPolicy(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())

	s := coll.Set("one", "two", "two", "three", "Three")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("THREE"))
}

func TestEquaSet_FirstWinsOnConstruction(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())

	s := coll.Set("Hi", "HI", "hi")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"Hi"}, s.ToSlice())
}

func TestEquaSet_MembershipRespectsPolicy(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	s := coll.Set("hi", "ho")

	// Policy-equal values are indistinguishable to Contains.
	assert.Equal(t, s.Contains("hi"), s.Contains("HI"))
	assert.Equal(t, s.Contains("nope"), s.Contains("NOPE"))
}

func TestEquaSet_DiffScenarios(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())

	empty := coll.Set("hi", "ho").Diff(coll.Set("HI", "HO"))
	assert.True(t, empty.IsEmpty())
	assert.Same(t, coll, empty.Collections())

	got := coll.Set("hi", "ho", "let's", "go").Diff(coll.Set("bo", "no", "go", "ho"))
	assert.True(t, got.Equals(coll.Set("hi", "let's")))
}

func TestEquaSet_DiffMembershipLaw(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	a := coll.Set("a", "b", "c", "d")
	b := coll.Set("C", "D", "e")
	diff := a.Diff(b)

	for _, x := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.Equal(t, a.Contains(x) && !b.Contains(x), diff.Contains(x), "element %q", x)
	}
}

func TestEquaSet_UnionCommutative(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	a := coll.Set("hi", "ho")
	b := coll.Set("HO", "hu")

	assert.True(t, a.Union(b).Equals(b.Union(a)))
	assert.Equal(t, 3, a.Union(b).Len())
}

func TestEquaSet_IntersectSubsetOfBoth(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	a := coll.Set("hi", "ho", "ha")
	b := coll.Set("HO", "HA", "hu")

	inter := a.Intersect(b)
	assert.True(t, inter.SubsetOf(a))
	assert.True(t, inter.SubsetOf(b))
	assert.Equal(t, 2, inter.Len())
}

func TestEquaSet_AddRemove(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	s := coll.EmptySet().Add("a", "B")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Add("A").Equals(s), "adding an equivalent element changes nothing")
	assert.Equal(t, 1, s.Remove("b").Len())
	assert.Equal(t, 2, s.Len(), "sets are immutable")
}

func TestEquaSet_CrossVariantEquality(t *testing.T) {
	policy := equality.StringIgnoringCase()
	coll := equaset.NewCollections[string](policy)
	sorted := equaset.NewSortedCollections[string](policy)

	hashSet := coll.Set("b", "A", "c")
	treeSet := sorted.SortedSet("C", "a", "B")

	assert.True(t, hashSet.Equals(treeSet))
	assert.True(t, treeSet.Equals(hashSet))
	assert.Equal(t, hashSet.HashCode(), treeSet.HashCode())
}

func TestEquaSet_CanEqualSymmetric(t *testing.T) {
	policy := equality.StringIgnoringCase()
	coll := equaset.NewCollections[string](policy)
	sorted := equaset.NewSortedCollections[string](policy)
	otherPolicy := equaset.NewCollections[string](equality.StringIgnoringCase())

	a := coll.Set("x")
	b := sorted.SortedSet("y")
	c := otherPolicy.Set("x")

	assert.True(t, a.CanEqual(b))
	assert.True(t, b.CanEqual(a))

	// Structurally identical but distinct policy instances are incompatible,
	// in both directions, without panicking.
	assert.False(t, a.CanEqual(c))
	assert.False(t, c.CanEqual(a))
	assert.False(t, a.Equals(c))
	assert.False(t, c.Equals(a))
}

func TestEquaSet_DistinctFactoriesSamePolicyInteroperate(t *testing.T) {
	policy := equality.StringIgnoringCase()
	first := equaset.NewCollections[string](policy)
	second := equaset.NewCollections[string](policy)
	require.NotEqual(t, first.ID(), second.ID())

	union := first.Set("hi").Union(second.Set("HO"))
	assert.Equal(t, 2, union.Len())
	assert.Same(t, first, union.Collections())
}

func TestEquaSet_CrossPolicyAlgebraPanics(t *testing.T) {
	a := equaset.NewCollections[string](equality.StringIgnoringCase()).Set("hi")
	b := equaset.NewCollections[string](equality.StringIgnoringCase()).Set("hi")

	assert.Panics(t, func() { a.Union(b) })
	assert.Panics(t, func() { a.Intersect(b) })
	assert.Panics(t, func() { a.Diff(b) })
	assert.Panics(t, func() { a.SubsetOf(b) })
}

func TestEquaSet_TryVariantsReturnError(t *testing.T) {
	a := equaset.NewCollections[string](equality.StringIgnoringCase()).Set("hi")
	b := equaset.NewCollections[string](equality.StringIgnoringCase()).Set("hi")

	_, err := a.TryUnion(b)
	assert.ErrorIs(t, err, equaset.ErrIncompatiblePolicies)
	_, err = a.TryDiff(b)
	assert.ErrorIs(t, err, equaset.ErrIncompatiblePolicies)
	_, err = a.TryIntersect(b)
	assert.ErrorIs(t, err, equaset.ErrIncompatiblePolicies)

	got, err := a.TryUnion(a.Collections().Set("ho"))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestEquaSet_GroupedSizes(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	s := coll.Set("a", "b", "c")

	groups := s.Grouped(2)
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].Len())
	assert.Equal(t, 1, groups[1].Len())

	assert.Panics(t, func() { s.Grouped(0) })
	assert.Panics(t, func() { s.Sliding(-1) })
	assert.Panics(t, func() { s.SlidingBy(2, 0) })
}

func TestEquaSet_Sliding(t *testing.T) {
	coll := equaset.Native[int]()
	s := coll.Set(1, 2, 3, 4)

	windows := s.Sliding(2)
	require.Len(t, windows, 3)
	for _, w := range windows {
		assert.Equal(t, 2, w.Len())
	}
}

func TestEquaSet_Subsets(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	s := coll.Set("a", "b", "c")

	bySize := map[int]int{}
	total := 0
	for sub := range s.Subsets() {
		bySize[sub.Len()]++
		total++
		assert.True(t, sub.SubsetOf(s))
	}
	assert.Equal(t, 8, total)
	assert.Equal(t, map[int]int{0: 1, 1: 3, 2: 3, 3: 1}, bySize)

	pairs := 0
	for sub := range s.SubsetsN(2) {
		assert.Equal(t, 2, sub.Len())
		pairs++
	}
	assert.Equal(t, 3, pairs)
}

func TestEquaSet_SubsetsFreshPerCall(t *testing.T) {
	coll := equaset.Native[int]()
	s := coll.Set(1, 2)

	for range s.Subsets() {
		break
	}
	n := 0
	for range s.Subsets() {
		n++
	}
	assert.Equal(t, 4, n, "each Subsets call yields an independent sequence")
}

func TestEquaSet_PartitionAndFilter(t *testing.T) {
	coll := equaset.Native[int]()
	s := coll.Set(1, 2, 3, 4, 5)

	even, odd := s.Partition(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, 2, even.Len())
	assert.Equal(t, 3, odd.Len())
	assert.True(t, even.Union(odd).Equals(s))

	assert.Equal(t, 3, s.Count(func(v int) bool { return v%2 == 1 }))
	assert.True(t, s.Exists(func(v int) bool { return v == 4 }))
	assert.True(t, s.Forall(func(v int) bool { return v > 0 }))

	v, ok := s.Find(func(v int) bool { return v > 4 })
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestEquaSet_TakeDropSplit(t *testing.T) {
	coll := equaset.Native[int]()
	s := coll.Set(1, 2, 3, 4, 5)

	assert.Equal(t, 2, s.Take(2).Len())
	assert.Equal(t, 3, s.Drop(2).Len())
	assert.Equal(t, 5, s.Take(10).Len())
	assert.Equal(t, 0, s.Drop(10).Len())

	lhs, rhs := s.SplitAt(2)
	assert.Equal(t, 2, lhs.Len())
	assert.Equal(t, 3, rhs.Len())
	assert.True(t, lhs.Union(rhs).Equals(s))

	assert.Equal(t, 2, s.Slice(1, 3).Len())
	assert.Equal(t, 2, s.TakeRight(2).Len())
	assert.Equal(t, 3, s.DropRight(2).Len())
}

func TestEquaSet_FoldAndReduce(t *testing.T) {
	coll := equaset.Native[int]()
	s := coll.Set(1, 2, 3)

	sum := s.Fold(0, func(a, b int) int { return a + b })
	assert.Equal(t, 6, sum)

	v, ok := s.Reduce(func(a, b int) int { return a + b })
	require.True(t, ok)
	assert.Equal(t, 6, v)

	_, ok = coll.EmptySet().Reduce(func(a, b int) int { return a + b })
	assert.False(t, ok)

	total := equaset.FoldLeft(equaset.Set[int](s), 0.0, func(acc float64, v int) float64 {
		return acc + float64(v)
	})
	assert.InDelta(t, 6.0, total, 1e-9)
}

func TestEquaSet_GroupByAndToMap(t *testing.T) {
	coll := equaset.Native[int]()
	s := coll.Set(1, 2, 3, 4, 5)

	groups := equaset.GroupBy(coll, equaset.Set[int](s), func(v int) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	})
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups["even"].Len())
	assert.Equal(t, 3, groups["odd"].Len())

	m := equaset.ToMap(equaset.Set[int](s), func(v int) (int, int) { return v, v * v })
	assert.Equal(t, 25, m[5])
	assert.Len(t, m, 5)
}

func TestEquaSet_BoxRoundTrip(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())
	s := coll.Set("Hi", "Ho")

	rebuilt := coll.SetOfBoxes(s.ToBoxSlice()...)
	assert.True(t, rebuilt.Equals(s))

	values := map[string]bool{}
	for b := range s.Boxes() {
		values[b.String()] = true
	}
	assert.Equal(t, map[string]bool{"Hi": true, "Ho": true}, values)
}

func TestEquaSet_StringForm(t *testing.T) {
	coll := equaset.NewCollections[string](equality.StringIgnoringCase())

	assert.Equal(t, "EquaSet()", coll.EmptySet().String())
	assert.Equal(t, "EquaSet(hi)", coll.Set("hi").String())
}

func TestEquaSet_NilPolicyPanics(t *testing.T) {
	assert.Panics(t, func() { equaset.NewCollections[string](nil) })
	assert.Panics(t, func() { equaset.NewSortedCollections[string](nil) })
}

func TestEquaSet_PanicCarriesSentinel(t *testing.T) {
	a := equaset.NewCollections[string](equality.StringIgnoringCase()).Set("hi")
	b := equaset.NewCollections[string](equality.StringIgnoringCase()).Set("hi")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, equaset.ErrIncompatiblePolicies))
	}()
	a.Union(b)
}
