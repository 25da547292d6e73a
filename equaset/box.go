package equaset

import (
	"fmt"

	"github.com/on-the-ground/collect_ive_go/equality"
)

// EquaBox pairs a raw value with the equality policy that governs it.
// Equality and hashing of boxes are delegated entirely to the policy, never
// to the value's native equality or the box's own identity.
type EquaBox[T any] struct {
	Value T
	eq    equality.Equality[T]
}

// Policy returns the policy governing this box.
func (b EquaBox[T]) Policy() equality.Equality[T] { return b.eq }

// Equals reports whether the two boxed values are equal under their shared
// policy. Boxes governed by different policy instances are never equal, even
// when the policies are structurally identical.
func (b EquaBox[T]) Equals(other EquaBox[T]) bool {
	return samePolicy(b.eq, other.eq) && b.eq.AreEqual(b.Value, other.Value)
}

// HashCode returns the policy hash of the boxed value.
func (b EquaBox[T]) HashCode() uint64 {
	return elementHash(b.eq, b.Value)
}

// String renders the underlying value's own string form, not the box's.
func (b EquaBox[T]) String() string {
	return fmt.Sprintf("%v", b.Value)
}
