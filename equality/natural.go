package equality

import (
	"cmp"
	"hash/maphash"
)

// naturalSeed is shared by every natural policy so that equal values hash
// identically across independently constructed policy instances.
var naturalSeed = maphash.MakeSeed()

// instanceToken keeps policy structs non-zero-size: distinct zero-size
// allocations may share an address, and policy identity is reference
// identity.
type instanceToken [1]byte

// Natural returns the default policy for a comparable type: native == and a
// hash of the value itself. Each call returns a fresh policy instance; two
// collections are only interoperable when built over the same instance, so
// callers who want compatible collections must share the returned value.
func Natural[T comparable]() HashingEquality[T] {
	return &natural[T]{}
}

// NaturalOrdered returns the default policy for an ordered type, adding the
// native total order to Natural's equality and hash.
func NaturalOrdered[T cmp.Ordered]() HashingOrderingEquality[T] {
	return &naturalOrdered[T]{}
}

type natural[T comparable] struct {
	_ instanceToken
}

func (n *natural[T]) AreEqual(a T, b any) bool {
	bt, ok := b.(T)
	return ok && a == bt
}

func (n *natural[T]) HashOf(a T) uint64 {
	return maphash.Comparable(naturalSeed, a)
}

type naturalOrdered[T cmp.Ordered] struct {
	natural[T]
}

func (n *naturalOrdered[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}
