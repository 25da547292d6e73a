package equaset

import (
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/on-the-ground/collect_ive_go/equality"
)

// EquaSet is the hash-backed set variant. Iteration order is undefined but
// stable for a given value.
type EquaSet[T any] struct {
	coll  *Collections[T]
	items *immutable.Map[EquaBox[T], struct{}]
}

func (s *EquaSet[T]) sealed() {}

// Collections returns the factory this set is bound to.
func (s *EquaSet[T]) Collections() *Collections[T] { return s.coll }

// Policy returns the governing equality policy.
func (s *EquaSet[T]) Policy() equality.Equality[T] { return s.coll.policy }

func (s *EquaSet[T]) Len() int      { return s.items.Len() }
func (s *EquaSet[T]) IsEmpty() bool { return s.items.Len() == 0 }

// Contains reports membership under the policy.
func (s *EquaSet[T]) Contains(v T) bool {
	_, ok := s.items.Get(s.coll.Box(v))
	return ok
}

// Add returns a set additionally containing the given elements. Elements
// already present under the policy are ignored (first-wins).
func (s *EquaSet[T]) Add(elems ...T) *EquaSet[T] {
	items := s.items
	for _, v := range elems {
		b := s.coll.Box(v)
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
		}
	}
	if items == s.items {
		return s
	}
	return &EquaSet[T]{coll: s.coll, items: items}
}

// Remove returns a set without the policy-equivalents of the given elements.
func (s *EquaSet[T]) Remove(elems ...T) *EquaSet[T] {
	items := s.items
	for _, v := range elems {
		items = items.Delete(s.coll.Box(v))
	}
	if items == s.items {
		return s
	}
	return &EquaSet[T]{coll: s.coll, items: items}
}

// Union returns the policy-union of both operands, bound to the receiver's
// factory. Panics with ErrIncompatiblePolicies for cross-policy operands.
func (s *EquaSet[T]) Union(other Set[T]) *EquaSet[T] {
	mustCompatible(s.coll.logger, "union", Set[T](s), other)
	items := s.items
	for b := range other.Boxes() {
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
		}
	}
	return &EquaSet[T]{coll: s.coll, items: items}
}

// Intersect returns the elements of the receiver that are members of other.
func (s *EquaSet[T]) Intersect(other Set[T]) *EquaSet[T] {
	mustCompatible(s.coll.logger, "intersect", Set[T](s), other)
	return s.Filter(other.Contains)
}

// Diff returns the elements of the receiver that are not members of other.
func (s *EquaSet[T]) Diff(other Set[T]) *EquaSet[T] {
	mustCompatible(s.coll.logger, "diff", Set[T](s), other)
	return s.FilterNot(other.Contains)
}

// SubsetOf reports whether every element of the receiver is a member of
// other.
func (s *EquaSet[T]) SubsetOf(other Set[T]) bool {
	mustCompatible(s.coll.logger, "subsetOf", Set[T](s), other)
	return subsetOf[T](s, other)
}

// TryUnion is Union with an error instead of a panic.
func (s *EquaSet[T]) TryUnion(other Set[T]) (*EquaSet[T], error) {
	if err := compatibleErr("union", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Union(other), nil
}

// TryIntersect is Intersect with an error instead of a panic.
func (s *EquaSet[T]) TryIntersect(other Set[T]) (*EquaSet[T], error) {
	if err := compatibleErr("intersect", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Intersect(other), nil
}

// TryDiff is Diff with an error instead of a panic.
func (s *EquaSet[T]) TryDiff(other Set[T]) (*EquaSet[T], error) {
	if err := compatibleErr("diff", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Diff(other), nil
}

func (s *EquaSet[T]) CanEqual(other Set[T]) bool {
	return other != nil && samePolicy(s.Policy(), other.Policy())
}

func (s *EquaSet[T]) Equals(other Set[T]) bool { return setsEqual[T](s, other) }
func (s *EquaSet[T]) HashCode() uint64         { return setHash[T](s) }

// All yields the elements; the sequence is replayable.
func (s *EquaSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for itr := s.items.Iterator(); !itr.Done(); {
			k, _, _ := itr.Next()
			if !yield(k.Value) {
				return
			}
		}
	}
}

// Boxes yields the elements still paired with the policy.
func (s *EquaSet[T]) Boxes() iter.Seq[EquaBox[T]] {
	return func(yield func(EquaBox[T]) bool) {
		for itr := s.items.Iterator(); !itr.Done(); {
			k, _, _ := itr.Next()
			if !yield(k) {
				return
			}
		}
	}
}

func (s *EquaSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

func (s *EquaSet[T]) ToBoxSlice() []EquaBox[T] { return s.boxSlice() }

// View returns a lazy pipeline over the elements.
func (s *EquaSet[T]) View() View[T] { return View[T]{seq: s.All()} }

func (s *EquaSet[T]) String() string { return formatSet("EquaSet", s.All()) }

// Filter returns the elements satisfying pred, as a set of the same factory.
func (s *EquaSet[T]) Filter(pred func(T) bool) *EquaSet[T] {
	kept := s.items
	for itr := s.items.Iterator(); !itr.Done(); {
		k, _, _ := itr.Next()
		if !pred(k.Value) {
			kept = kept.Delete(k)
		}
	}
	if kept == s.items {
		return s
	}
	return &EquaSet[T]{coll: s.coll, items: kept}
}

// FilterNot returns the elements rejected by pred.
func (s *EquaSet[T]) FilterNot(pred func(T) bool) *EquaSet[T] {
	return s.Filter(func(v T) bool { return !pred(v) })
}

// Partition splits into (satisfying, rejecting) in one pass.
func (s *EquaSet[T]) Partition(pred func(T) bool) (*EquaSet[T], *EquaSet[T]) {
	return s.Filter(pred), s.FilterNot(pred)
}

// Span splits at the first element, in iteration order, that fails pred.
func (s *EquaSet[T]) Span(pred func(T) bool) (*EquaSet[T], *EquaSet[T]) {
	boxes := s.boxSlice()
	i := 0
	for ; i < len(boxes); i++ {
		if !pred(boxes[i].Value) {
			break
		}
	}
	return s.withBoxes(boxes[:i]), s.withBoxes(boxes[i:])
}

// SplitAt splits at position n in iteration order.
func (s *EquaSet[T]) SplitAt(n int) (*EquaSet[T], *EquaSet[T]) {
	boxes := s.boxSlice()
	n = clamp(n, 0, len(boxes))
	return s.withBoxes(boxes[:n]), s.withBoxes(boxes[n:])
}

func (s *EquaSet[T]) Take(n int) *EquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[:clamp(n, 0, len(boxes))])
}

func (s *EquaSet[T]) TakeRight(n int) *EquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[len(boxes)-clamp(n, 0, len(boxes)):])
}

func (s *EquaSet[T]) TakeWhile(pred func(T) bool) *EquaSet[T] {
	lhs, _ := s.Span(pred)
	return lhs
}

func (s *EquaSet[T]) Drop(n int) *EquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[clamp(n, 0, len(boxes)):])
}

func (s *EquaSet[T]) DropRight(n int) *EquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[:len(boxes)-clamp(n, 0, len(boxes))])
}

func (s *EquaSet[T]) DropWhile(pred func(T) bool) *EquaSet[T] {
	_, rhs := s.Span(pred)
	return rhs
}

// Slice keeps positions [from, until) in iteration order.
func (s *EquaSet[T]) Slice(from, until int) *EquaSet[T] {
	boxes := s.boxSlice()
	from = clamp(from, 0, len(boxes))
	until = clamp(until, from, len(boxes))
	return s.withBoxes(boxes[from:until])
}

// Grouped splits into chunks of at most size elements, the last possibly
// smaller. Panics when size is not positive.
func (s *EquaSet[T]) Grouped(size int) []*EquaSet[T] {
	return s.setsOf(chunked(s.boxSlice(), size))
}

// Sliding yields the fixed-size windows advanced by one position. Panics
// when size is not positive.
func (s *EquaSet[T]) Sliding(size int) []*EquaSet[T] {
	return s.SlidingBy(size, 1)
}

// SlidingBy yields the fixed-size windows advanced by step positions.
// Panics when size or step is not positive.
func (s *EquaSet[T]) SlidingBy(size, step int) []*EquaSet[T] {
	return s.setsOf(slidingWindows(s.boxSlice(), size, step))
}

// Subsets yields every subset, the empty set first and the full set last:
// 2^n subsets in total. Each call produces a fresh, independent sequence.
func (s *EquaSet[T]) Subsets() iter.Seq[*EquaSet[T]] {
	boxes := s.boxSlice()
	return func(yield func(*EquaSet[T]) bool) {
		for sub := range subsetsSeq(boxes) {
			if !yield(s.withBoxes(sub)) {
				return
			}
		}
	}
}

// SubsetsN yields the subsets of exactly n elements.
func (s *EquaSet[T]) SubsetsN(n int) iter.Seq[*EquaSet[T]] {
	boxes := s.boxSlice()
	return func(yield func(*EquaSet[T]) bool) {
		for sub := range combinationsSeq(boxes, n) {
			if !yield(s.withBoxes(sub)) {
				return
			}
		}
	}
}

// Fold combines the elements with op starting from z. The iteration order is
// the variant's; for this variant op should be associative and commutative.
func (s *EquaSet[T]) Fold(z T, op func(T, T) T) T { return s.FoldLeft(z, op) }

func (s *EquaSet[T]) FoldLeft(z T, op func(acc, v T) T) T {
	acc := z
	for v := range s.All() {
		acc = op(acc, v)
	}
	return acc
}

func (s *EquaSet[T]) FoldRight(z T, op func(v, acc T) T) T {
	boxes := s.boxSlice()
	acc := z
	for i := len(boxes) - 1; i >= 0; i-- {
		acc = op(boxes[i].Value, acc)
	}
	return acc
}

// Reduce combines the elements with op. ok is false for the empty set.
func (s *EquaSet[T]) Reduce(op func(T, T) T) (v T, ok bool) {
	boxes := s.boxSlice()
	if len(boxes) == 0 {
		return v, false
	}
	acc := boxes[0].Value
	for _, b := range boxes[1:] {
		acc = op(acc, b.Value)
	}
	return acc, true
}

func (s *EquaSet[T]) Count(pred func(T) bool) int {
	n := 0
	for v := range s.All() {
		if pred(v) {
			n++
		}
	}
	return n
}

func (s *EquaSet[T]) Exists(pred func(T) bool) bool {
	for v := range s.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

func (s *EquaSet[T]) Forall(pred func(T) bool) bool {
	return !s.Exists(func(v T) bool { return !pred(v) })
}

func (s *EquaSet[T]) Find(pred func(T) bool) (v T, ok bool) {
	for e := range s.All() {
		if pred(e) {
			return e, true
		}
	}
	return v, false
}

func (s *EquaSet[T]) ForEach(fn func(T)) {
	for v := range s.All() {
		fn(v)
	}
}

func (s *EquaSet[T]) boxSlice() []EquaBox[T] {
	boxes := make([]EquaBox[T], 0, s.Len())
	for itr := s.items.Iterator(); !itr.Done(); {
		k, _, _ := itr.Next()
		boxes = append(boxes, k)
	}
	return boxes
}

func (s *EquaSet[T]) withBoxes(boxes []EquaBox[T]) *EquaSet[T] {
	out := s.coll.EmptySet()
	items := out.items
	for _, b := range boxes {
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
		}
	}
	out.items = items
	return out
}

func (s *EquaSet[T]) setsOf(groups [][]EquaBox[T]) []*EquaSet[T] {
	out := make([]*EquaSet[T], len(groups))
	for i, g := range groups {
		out[i] = s.withBoxes(g)
	}
	return out
}

func clamp(n, lo, hi int) int {
	switch {
	case n < lo:
		return lo
	case n > hi:
		return hi
	default:
		return n
	}
}
