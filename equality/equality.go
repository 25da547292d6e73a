package equality

// Equality decides whether two values are equal under a custom policy.
//
// The second argument is deliberately untyped: a policy may choose to equate
// values across types. AreEqual must be reflexive for same-typed values under
// the policy's own rules; it need not agree with the native == operator.
type Equality[T any] interface {
	AreEqual(a T, b any) bool
}

// HashingEquality is an Equality whose values can live in hash-backed
// storage. AreEqual(a, b) must imply HashOf(a) == HashOf(b).
type HashingEquality[T any] interface {
	Equality[T]
	HashOf(a T) uint64
}

// OrderingEquality is an Equality whose values carry a total order.
// Compare(a, b) == 0 must hold exactly when AreEqual(a, b) does.
type OrderingEquality[T any] interface {
	Equality[T]
	Compare(a, b T) int
}

// HashingOrderingEquality carries both the hash and the order. A single
// policy instance of this kind can back a hash-backed and a tree-backed
// collection at once, which is what makes the two variants comparable.
type HashingOrderingEquality[T any] interface {
	HashingEquality[T]
	OrderingEquality[T]
}

// HashingFromFuncs builds a hashing policy from two functions. The caller
// vouches for hash consistency with areEqual.
func HashingFromFuncs[T any](areEqual func(a T, b any) bool, hashOf func(a T) uint64) HashingEquality[T] {
	return &funcHashing[T]{areEqual: areEqual, hashOf: hashOf}
}

// OrderingFromFuncs builds an ordering policy from a comparison function.
// AreEqual is derived from compare, so the compare==0 ⇔ areEqual contract
// holds by construction; non-T second arguments are never equal.
func OrderingFromFuncs[T any](compare func(a, b T) int) OrderingEquality[T] {
	return &funcOrdering[T]{compare: compare}
}

type funcHashing[T any] struct {
	areEqual func(a T, b any) bool
	hashOf   func(a T) uint64
}

func (f *funcHashing[T]) AreEqual(a T, b any) bool { return f.areEqual(a, b) }
func (f *funcHashing[T]) HashOf(a T) uint64        { return f.hashOf(a) }

type funcOrdering[T any] struct {
	compare func(a, b T) int
}

func (f *funcOrdering[T]) AreEqual(a T, b any) bool {
	bt, ok := b.(T)
	return ok && f.compare(a, bt) == 0
}

func (f *funcOrdering[T]) Compare(a, b T) int { return f.compare(a, b) }
