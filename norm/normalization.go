package norm

import (
	"github.com/on-the-ground/collect_ive_go/equality"
)

// Normalization is a pure transform applied to a value before it is compared.
// Composition via And is associative; application order is left to right.
type Normalization[T any] func(T) T

// Normalized applies the transform.
func (n Normalization[T]) Normalized(v T) T {
	return n(v)
}

// And returns a Normalization that applies the receiver first, then next.
func (n Normalization[T]) And(next Normalization[T]) Normalization[T] {
	return func(v T) T {
		return next(n(v))
	}
}

// ToEquality derives an equality policy that compares normalized values
// using base. Arguments that are not of type T are handed to base as-is.
func (n Normalization[T]) ToEquality(base equality.Equality[T]) equality.Equality[T] {
	return &normalizingEquality[T]{norm: n, base: base}
}

// ToHashingEquality derives a hashing policy whose AreEqual and HashOf both
// observe the normalized value, keeping the two mutually consistent as long
// as base keeps them consistent.
func (n Normalization[T]) ToHashingEquality(base equality.HashingEquality[T]) equality.HashingEquality[T] {
	return &normalizingHashingEquality[T]{
		normalizingEquality: normalizingEquality[T]{norm: n, base: base},
		base:                base,
	}
}

// ToOrderingEquality derives an ordering policy that orders normalized values
// using base.
func (n Normalization[T]) ToOrderingEquality(base equality.OrderingEquality[T]) equality.OrderingEquality[T] {
	return &normalizingOrderingEquality[T]{
		normalizingEquality: normalizingEquality[T]{norm: n, base: base},
		base:                base,
	}
}

type normalizingEquality[T any] struct {
	norm Normalization[T]
	base equality.Equality[T]
}

func (ne *normalizingEquality[T]) AreEqual(a T, b any) bool {
	if bt, ok := b.(T); ok {
		return ne.base.AreEqual(ne.norm(a), ne.norm(bt))
	}
	return ne.base.AreEqual(ne.norm(a), b)
}

type normalizingHashingEquality[T any] struct {
	normalizingEquality[T]
	base equality.HashingEquality[T]
}

func (nh *normalizingHashingEquality[T]) HashOf(a T) uint64 {
	return nh.base.HashOf(nh.norm(a))
}

type normalizingOrderingEquality[T any] struct {
	normalizingEquality[T]
	base equality.OrderingEquality[T]
}

func (no *normalizingOrderingEquality[T]) Compare(a, b T) int {
	return no.base.Compare(no.norm(a), no.norm(b))
}
