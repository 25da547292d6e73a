package equaset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/on-the-ground/collect_ive_go/equaset"
	"github.com/on-the-ground/collect_ive_go/equality"
)

func TestCollections_DistinctIdentities(t *testing.T) {
	policy := equality.StringIgnoringCase()

	a := equaset.NewCollections[string](policy)
	b := equaset.NewCollections[string](policy)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Same(t, policy, a.Policy())
}

func TestCollections_NativeMirrorsNativeEquality(t *testing.T) {
	coll := equaset.Native[string]()

	s := coll.Set("Hi", "hi")
	assert.Equal(t, 2, s.Len(), "native equality is case sensitive")
	assert.True(t, s.Contains("hi"))
	assert.False(t, s.Contains("HI"))
}

func TestCollections_WithLogger(t *testing.T) {
	logger := zap.NewExample()
	coll := equaset.NewCollections[string](equality.StringIgnoringCase(), equaset.WithLogger(logger))

	require.NotNil(t, coll)
	assert.Equal(t, 1, coll.Set("hi").Len())
}

func TestSortedCollections_MintsCompatibleBoxesAndSets(t *testing.T) {
	policy := equality.StringIgnoringCase()
	sorted := equaset.NewSortedCollections[string](policy)
	hashed := equaset.NewCollections[string](policy)

	tree := sorted.SortedSet("b", "a")
	hash := hashed.SetOfBoxes(tree.ToBoxSlice()...)

	assert.True(t, tree.Equals(hash))
}

func TestCollections_EmptySingletonsAreEmpty(t *testing.T) {
	coll := equaset.Native[int]()
	sorted := equaset.NativeSorted[int]()

	assert.True(t, coll.EmptySet().IsEmpty())
	assert.True(t, coll.EmptyFastSet().IsEmpty())
	assert.True(t, sorted.EmptySortedSet().IsEmpty())
	assert.Equal(t, "EquaSet()", coll.EmptySet().String())
}
