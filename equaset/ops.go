package equaset

// Type-changing operations live here as free functions: a Go method cannot
// introduce new type parameters. Element transforms (map/flatMap) are
// deliberately absent from the set surface — mapping can merge equivalence
// classes, so it must go through the view path and be re-deduplicated by
// forcing into a factory.

// FoldLeft folds the elements in the set's iteration order into an
// accumulator of a different type.
func FoldLeft[T, B any](s Set[T], z B, op func(acc B, v T) B) B {
	acc := z
	for v := range s.All() {
		acc = op(acc, v)
	}
	return acc
}

// FoldRight folds the elements in reverse iteration order.
func FoldRight[T, B any](s Set[T], z B, op func(v T, acc B) B) B {
	elems := s.ToSlice()
	acc := z
	for i := len(elems) - 1; i >= 0; i-- {
		acc = op(elems[i], acc)
	}
	return acc
}

// GroupBy splits s by the key function. Each group is rebuilt as a set of
// the target factory, deduplicated under the target's policy.
func GroupBy[T any, K comparable](target *Collections[T], s Set[T], key func(T) K) map[K]*EquaSet[T] {
	groups := make(map[K]*EquaSet[T])
	for v := range s.All() {
		k := key(v)
		g, ok := groups[k]
		if !ok {
			g = target.EmptySet()
		}
		groups[k] = g.Add(v)
	}
	return groups
}

// ToMap converts a set of pair-like elements into a native map. Later
// entries with a colliding key win, mirroring native map construction.
func ToMap[T any, K comparable, V any](s Set[T], split func(T) (K, V)) map[K]V {
	out := make(map[K]V, s.Len())
	for e := range s.All() {
		k, v := split(e)
		out[k] = v
	}
	return out
}
