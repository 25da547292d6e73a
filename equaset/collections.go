package equaset

import (
	"cmp"

	"github.com/benbjohnson/immutable"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/collect_ive_go/equality"
)

// Option configures a factory at construction time.
type Option func(*factoryConfig)

type factoryConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a structured logger to the factory. The default is a
// no-op logger; the library performs no I/O unless a caller opts in.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *factoryConfig) {
		cfg.logger = logger
	}
}

func newFactoryConfig(opts []Option) factoryConfig {
	cfg := factoryConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Collections mints hash-backed sets governed by one hashing policy.
type Collections[T any] struct {
	policy equality.HashingEquality[T]
	id     string
	logger *zap.Logger
}

// NewCollections builds a factory over the given policy.
// Panics if policy is nil.
func NewCollections[T any](policy equality.HashingEquality[T], opts ...Option) *Collections[T] {
	if policy == nil {
		panic("equaset: collections policy must not be nil")
	}
	cfg := newFactoryConfig(opts)
	c := &Collections[T]{
		policy: policy,
		id:     uuid.New().String(),
		logger: cfg.logger,
	}
	c.logger.Debug("created collections", zap.String("collectionsId", c.id))
	return c
}

// Native builds a factory over the natural policy of a comparable type:
// native == membership, no customization.
func Native[T comparable](opts ...Option) *Collections[T] {
	return NewCollections(equality.Natural[T](), opts...)
}

// ID returns the factory's identity token.
func (c *Collections[T]) ID() string { return c.id }

// Policy returns the policy every set from this factory is governed by.
func (c *Collections[T]) Policy() equality.HashingEquality[T] { return c.policy }

// Box wraps a value together with this factory's policy.
func (c *Collections[T]) Box(v T) EquaBox[T] {
	return EquaBox[T]{Value: v, eq: c.policy}
}

// EmptySet returns the empty hash-backed set of this factory.
func (c *Collections[T]) EmptySet() *EquaSet[T] {
	return &EquaSet[T]{
		coll:  c,
		items: immutable.NewMap[EquaBox[T], struct{}](boxHasher[T]{policy: c.policy}),
	}
}

// Set builds a hash-backed set from the given elements, deduplicating under
// the policy. Dedup is first-wins: of several policy-equal arguments, the
// first occurrence is the one stored.
func (c *Collections[T]) Set(elems ...T) *EquaSet[T] {
	return c.EmptySet().Add(elems...)
}

// SetOfBoxes rebuilds a set from boxed values, re-deduplicating the raw
// values under this factory's policy. The boxes may come from any factory.
func (c *Collections[T]) SetOfBoxes(boxes ...EquaBox[T]) *EquaSet[T] {
	s := c.EmptySet()
	for _, b := range boxes {
		s = s.Add(b.Value)
	}
	return s
}

// EmptyFastSet returns the empty insertion-order-preserving set.
func (c *Collections[T]) EmptyFastSet() *FastEquaSet[T] {
	return &FastEquaSet[T]{
		coll:  c,
		items: immutable.NewMap[EquaBox[T], struct{}](boxHasher[T]{policy: c.policy}),
		order: immutable.NewList[EquaBox[T]](),
	}
}

// FastSet builds an insertion-order-preserving set from the given elements.
// Dedup is first-wins, and the first occurrence also fixes the position.
func (c *Collections[T]) FastSet(elems ...T) *FastEquaSet[T] {
	return c.EmptyFastSet().Add(elems...)
}

// FastSetOfBoxes rebuilds a fast set from boxed values under this factory's
// policy.
func (c *Collections[T]) FastSetOfBoxes(boxes ...EquaBox[T]) *FastEquaSet[T] {
	s := c.EmptyFastSet()
	for _, b := range boxes {
		s = s.Add(b.Value)
	}
	return s
}

// SortedCollections mints tree-backed sets governed by one ordering policy.
type SortedCollections[T any] struct {
	policy equality.OrderingEquality[T]
	id     string
	logger *zap.Logger
}

// NewSortedCollections builds a sorted factory over the given policy.
// Panics if policy is nil.
func NewSortedCollections[T any](policy equality.OrderingEquality[T], opts ...Option) *SortedCollections[T] {
	if policy == nil {
		panic("equaset: sorted collections policy must not be nil")
	}
	cfg := newFactoryConfig(opts)
	c := &SortedCollections[T]{
		policy: policy,
		id:     uuid.New().String(),
		logger: cfg.logger,
	}
	c.logger.Debug("created sorted collections", zap.String("collectionsId", c.id))
	return c
}

// NativeSorted builds a sorted factory over the natural order of an ordered
// type.
func NativeSorted[T cmp.Ordered](opts ...Option) *SortedCollections[T] {
	return NewSortedCollections[T](equality.NaturalOrdered[T](), opts...)
}

// ID returns the factory's identity token.
func (c *SortedCollections[T]) ID() string { return c.id }

// Policy returns the policy every set from this factory is governed by.
func (c *SortedCollections[T]) Policy() equality.OrderingEquality[T] { return c.policy }

// Box wraps a value together with this factory's policy.
func (c *SortedCollections[T]) Box(v T) EquaBox[T] {
	return EquaBox[T]{Value: v, eq: c.policy}
}

// EmptySortedSet returns the empty tree-backed set of this factory.
func (c *SortedCollections[T]) EmptySortedSet() *TreeEquaSet[T] {
	return &TreeEquaSet[T]{
		coll:  c,
		items: immutable.NewSortedMap[EquaBox[T], struct{}](boxComparer[T]{policy: c.policy}),
	}
}

// SortedSet builds a tree-backed set from the given elements, deduplicating
// under the policy, first-wins.
func (c *SortedCollections[T]) SortedSet(elems ...T) *TreeEquaSet[T] {
	return c.EmptySortedSet().Add(elems...)
}

// SortedSetOfBoxes rebuilds a tree set from boxed values under this
// factory's policy.
func (c *SortedCollections[T]) SortedSetOfBoxes(boxes ...EquaBox[T]) *TreeEquaSet[T] {
	s := c.EmptySortedSet()
	for _, b := range boxes {
		s = s.Add(b.Value)
	}
	return s
}

// boxHasher adapts a HashingEquality to the backing map's hasher.
type boxHasher[T any] struct {
	policy equality.HashingEquality[T]
}

func (h boxHasher[T]) Hash(key EquaBox[T]) uint32 {
	return uint32(h.policy.HashOf(key.Value))
}

func (h boxHasher[T]) Equal(a, b EquaBox[T]) bool {
	return h.policy.AreEqual(a.Value, b.Value)
}

// boxComparer adapts an OrderingEquality to the backing tree's comparer.
type boxComparer[T any] struct {
	policy equality.OrderingEquality[T]
}

func (c boxComparer[T]) Compare(a, b EquaBox[T]) int {
	return c.policy.Compare(a.Value, b.Value)
}
