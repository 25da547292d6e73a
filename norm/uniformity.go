package norm

import (
	"cmp"

	eq "github.com/on-the-ground/collect_ive_go/equality"
)

// Uniformity is a Normalization with an extra law: it is idempotent, and two
// values with the same normalized form may soundly be treated as equal. The
// type is deliberately distinct from Normalization so that a plain transform
// is never widened into a Uniformity by accident; the caller who constructs a
// Uniformity vouches for the law.
type Uniformity[T any] func(T) T

// Normalized applies the transform.
func (u Uniformity[T]) Normalized(v T) T {
	return u(v)
}

// Normalization downgrades the uniformity to a plain Normalization.
func (u Uniformity[T]) Normalization() Normalization[T] {
	return Normalization[T](u)
}

// And composes with an arbitrary Normalization. The result is a plain
// Normalization: composing with an unknown transform forfeits the
// idempotence guarantee.
func (u Uniformity[T]) And(next Normalization[T]) Normalization[T] {
	return u.Normalization().And(next)
}

// AndUniformity composes two uniformities into one. The caller remains
// responsible for the combined transform being idempotent; for transforms
// that commute (such as trimming and lowercasing strings) this holds.
func (u Uniformity[T]) AndUniformity(next Uniformity[T]) Uniformity[T] {
	return func(v T) T {
		return next(u(v))
	}
}

// Equality promotes a uniformity to a hashing policy without a base
// comparison: two values are equal iff their normalized forms are natively
// equal, and hashing observes the normalized form.
func Equality[T comparable](u Uniformity[T]) eq.HashingEquality[T] {
	base := eq.Natural[T]()
	return Normalization[T](u).ToHashingEquality(base)
}

// OrderedEquality promotes a uniformity over an ordered type to a policy
// that also carries the natural total order of the normalized forms.
func OrderedEquality[T cmp.Ordered](u Uniformity[T]) eq.HashingOrderingEquality[T] {
	base := eq.NaturalOrdered[T]()
	return &uniformOrdered[T]{norm: Normalization[T](u), base: base}
}

type uniformOrdered[T cmp.Ordered] struct {
	norm Normalization[T]
	base eq.HashingOrderingEquality[T]
}

func (uo *uniformOrdered[T]) AreEqual(a T, b any) bool {
	if bt, ok := b.(T); ok {
		return uo.base.AreEqual(uo.norm(a), uo.norm(bt))
	}
	return uo.base.AreEqual(uo.norm(a), b)
}

func (uo *uniformOrdered[T]) HashOf(a T) uint64 {
	return uo.base.HashOf(uo.norm(a))
}

func (uo *uniformOrdered[T]) Compare(a, b T) int {
	return uo.base.Compare(uo.norm(a), uo.norm(b))
}
