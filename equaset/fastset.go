package equaset

import (
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/on-the-ground/collect_ive_go/equality"
)

// FastEquaSet is the hash-backed variant that additionally remembers
// insertion order: iteration visits elements in the order their equivalence
// class first appeared.
type FastEquaSet[T any] struct {
	coll  *Collections[T]
	items *immutable.Map[EquaBox[T], struct{}]
	order *immutable.List[EquaBox[T]]
}

func (s *FastEquaSet[T]) sealed() {}

// Collections returns the factory this set is bound to.
func (s *FastEquaSet[T]) Collections() *Collections[T] { return s.coll }

// Policy returns the governing equality policy.
func (s *FastEquaSet[T]) Policy() equality.Equality[T] { return s.coll.policy }

func (s *FastEquaSet[T]) Len() int      { return s.items.Len() }
func (s *FastEquaSet[T]) IsEmpty() bool { return s.items.Len() == 0 }

func (s *FastEquaSet[T]) Contains(v T) bool {
	_, ok := s.items.Get(s.coll.Box(v))
	return ok
}

// Add appends the elements not yet present under the policy; the first
// occurrence of an equivalence class fixes both the stored value and its
// position.
func (s *FastEquaSet[T]) Add(elems ...T) *FastEquaSet[T] {
	items, order := s.items, s.order
	for _, v := range elems {
		b := s.coll.Box(v)
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
			order = order.Append(b)
		}
	}
	if items == s.items {
		return s
	}
	return &FastEquaSet[T]{coll: s.coll, items: items, order: order}
}

// Remove drops the policy-equivalents of the given elements, preserving the
// order of the remainder.
func (s *FastEquaSet[T]) Remove(elems ...T) *FastEquaSet[T] {
	items := s.items
	for _, v := range elems {
		items = items.Delete(s.coll.Box(v))
	}
	if items == s.items {
		return s
	}
	order := immutable.NewList[EquaBox[T]]()
	for itr := s.order.Iterator(); !itr.Done(); {
		_, b := itr.Next()
		if _, ok := items.Get(b); ok {
			order = order.Append(b)
		}
	}
	return &FastEquaSet[T]{coll: s.coll, items: items, order: order}
}

// Union appends other's elements missing from the receiver, bound to the
// receiver's factory. Panics with ErrIncompatiblePolicies for cross-policy
// operands.
func (s *FastEquaSet[T]) Union(other Set[T]) *FastEquaSet[T] {
	mustCompatible(s.coll.logger, "union", Set[T](s), other)
	items, order := s.items, s.order
	for b := range other.Boxes() {
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
			order = order.Append(b)
		}
	}
	return &FastEquaSet[T]{coll: s.coll, items: items, order: order}
}

// Intersect keeps the receiver's elements that are members of other.
func (s *FastEquaSet[T]) Intersect(other Set[T]) *FastEquaSet[T] {
	mustCompatible(s.coll.logger, "intersect", Set[T](s), other)
	return s.Filter(other.Contains)
}

// Diff keeps the receiver's elements that are not members of other.
func (s *FastEquaSet[T]) Diff(other Set[T]) *FastEquaSet[T] {
	mustCompatible(s.coll.logger, "diff", Set[T](s), other)
	return s.FilterNot(other.Contains)
}

// SubsetOf reports whether every element is a member of other.
func (s *FastEquaSet[T]) SubsetOf(other Set[T]) bool {
	mustCompatible(s.coll.logger, "subsetOf", Set[T](s), other)
	return subsetOf[T](s, other)
}

// TryUnion is Union with an error instead of a panic.
func (s *FastEquaSet[T]) TryUnion(other Set[T]) (*FastEquaSet[T], error) {
	if err := compatibleErr("union", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Union(other), nil
}

// TryIntersect is Intersect with an error instead of a panic.
func (s *FastEquaSet[T]) TryIntersect(other Set[T]) (*FastEquaSet[T], error) {
	if err := compatibleErr("intersect", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Intersect(other), nil
}

// TryDiff is Diff with an error instead of a panic.
func (s *FastEquaSet[T]) TryDiff(other Set[T]) (*FastEquaSet[T], error) {
	if err := compatibleErr("diff", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Diff(other), nil
}

func (s *FastEquaSet[T]) CanEqual(other Set[T]) bool {
	return other != nil && samePolicy(s.Policy(), other.Policy())
}

func (s *FastEquaSet[T]) Equals(other Set[T]) bool { return setsEqual[T](s, other) }
func (s *FastEquaSet[T]) HashCode() uint64         { return setHash[T](s) }

// All yields the elements in insertion order; the sequence is replayable.
func (s *FastEquaSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for itr := s.order.Iterator(); !itr.Done(); {
			_, b := itr.Next()
			if !yield(b.Value) {
				return
			}
		}
	}
}

// Boxes yields the elements in insertion order, still paired with the
// policy.
func (s *FastEquaSet[T]) Boxes() iter.Seq[EquaBox[T]] {
	return func(yield func(EquaBox[T]) bool) {
		for itr := s.order.Iterator(); !itr.Done(); {
			_, b := itr.Next()
			if !yield(b) {
				return
			}
		}
	}
}

func (s *FastEquaSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

func (s *FastEquaSet[T]) ToBoxSlice() []EquaBox[T] { return s.boxSlice() }

// View returns a lazy pipeline over the elements.
func (s *FastEquaSet[T]) View() View[T] { return View[T]{seq: s.All()} }

func (s *FastEquaSet[T]) String() string { return formatSet("FastEquaSet", s.All()) }

// Filter keeps the elements satisfying pred, preserving their order.
func (s *FastEquaSet[T]) Filter(pred func(T) bool) *FastEquaSet[T] {
	var kept []EquaBox[T]
	for _, b := range s.boxSlice() {
		if pred(b.Value) {
			kept = append(kept, b)
		}
	}
	if len(kept) == s.Len() {
		return s
	}
	return s.withBoxes(kept)
}

// FilterNot keeps the elements rejected by pred.
func (s *FastEquaSet[T]) FilterNot(pred func(T) bool) *FastEquaSet[T] {
	return s.Filter(func(v T) bool { return !pred(v) })
}

// Partition splits into (satisfying, rejecting).
func (s *FastEquaSet[T]) Partition(pred func(T) bool) (*FastEquaSet[T], *FastEquaSet[T]) {
	return s.Filter(pred), s.FilterNot(pred)
}

// Span splits at the first element, in insertion order, that fails pred.
func (s *FastEquaSet[T]) Span(pred func(T) bool) (*FastEquaSet[T], *FastEquaSet[T]) {
	boxes := s.boxSlice()
	i := 0
	for ; i < len(boxes); i++ {
		if !pred(boxes[i].Value) {
			break
		}
	}
	return s.withBoxes(boxes[:i]), s.withBoxes(boxes[i:])
}

// SplitAt splits at position n in insertion order.
func (s *FastEquaSet[T]) SplitAt(n int) (*FastEquaSet[T], *FastEquaSet[T]) {
	boxes := s.boxSlice()
	n = clamp(n, 0, len(boxes))
	return s.withBoxes(boxes[:n]), s.withBoxes(boxes[n:])
}

func (s *FastEquaSet[T]) Take(n int) *FastEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[:clamp(n, 0, len(boxes))])
}

func (s *FastEquaSet[T]) TakeRight(n int) *FastEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[len(boxes)-clamp(n, 0, len(boxes)):])
}

func (s *FastEquaSet[T]) TakeWhile(pred func(T) bool) *FastEquaSet[T] {
	lhs, _ := s.Span(pred)
	return lhs
}

func (s *FastEquaSet[T]) Drop(n int) *FastEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[clamp(n, 0, len(boxes)):])
}

func (s *FastEquaSet[T]) DropRight(n int) *FastEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[:len(boxes)-clamp(n, 0, len(boxes))])
}

func (s *FastEquaSet[T]) DropWhile(pred func(T) bool) *FastEquaSet[T] {
	_, rhs := s.Span(pred)
	return rhs
}

// Slice keeps positions [from, until) in insertion order.
func (s *FastEquaSet[T]) Slice(from, until int) *FastEquaSet[T] {
	boxes := s.boxSlice()
	from = clamp(from, 0, len(boxes))
	until = clamp(until, from, len(boxes))
	return s.withBoxes(boxes[from:until])
}

// Grouped splits into chunks of at most size elements in insertion order.
// Panics when size is not positive.
func (s *FastEquaSet[T]) Grouped(size int) []*FastEquaSet[T] {
	return s.setsOf(chunked(s.boxSlice(), size))
}

// Sliding yields the fixed-size windows advanced by one position.
func (s *FastEquaSet[T]) Sliding(size int) []*FastEquaSet[T] {
	return s.SlidingBy(size, 1)
}

// SlidingBy yields the fixed-size windows advanced by step positions.
// Panics when size or step is not positive.
func (s *FastEquaSet[T]) SlidingBy(size, step int) []*FastEquaSet[T] {
	return s.setsOf(slidingWindows(s.boxSlice(), size, step))
}

// Subsets yields every subset: 2^n in total, each call a fresh sequence.
func (s *FastEquaSet[T]) Subsets() iter.Seq[*FastEquaSet[T]] {
	boxes := s.boxSlice()
	return func(yield func(*FastEquaSet[T]) bool) {
		for sub := range subsetsSeq(boxes) {
			if !yield(s.withBoxes(sub)) {
				return
			}
		}
	}
}

// SubsetsN yields the subsets of exactly n elements.
func (s *FastEquaSet[T]) SubsetsN(n int) iter.Seq[*FastEquaSet[T]] {
	boxes := s.boxSlice()
	return func(yield func(*FastEquaSet[T]) bool) {
		for sub := range combinationsSeq(boxes, n) {
			if !yield(s.withBoxes(sub)) {
				return
			}
		}
	}
}

func (s *FastEquaSet[T]) Fold(z T, op func(T, T) T) T { return s.FoldLeft(z, op) }

func (s *FastEquaSet[T]) FoldLeft(z T, op func(acc, v T) T) T {
	acc := z
	for v := range s.All() {
		acc = op(acc, v)
	}
	return acc
}

func (s *FastEquaSet[T]) FoldRight(z T, op func(v, acc T) T) T {
	boxes := s.boxSlice()
	acc := z
	for i := len(boxes) - 1; i >= 0; i-- {
		acc = op(boxes[i].Value, acc)
	}
	return acc
}

// Reduce combines the elements with op in insertion order. ok is false for
// the empty set.
func (s *FastEquaSet[T]) Reduce(op func(T, T) T) (v T, ok bool) {
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

func (s *FastEquaSet[T]) Count(pred func(T) bool) int {
	n := 0
	for v := range s.All() {
		if pred(v) {
			n++
		}
	}
	return n
}

func (s *FastEquaSet[T]) Exists(pred func(T) bool) bool {
	for v := range s.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

func (s *FastEquaSet[T]) Forall(pred func(T) bool) bool {
	return !s.Exists(func(v T) bool { return !pred(v) })
}

func (s *FastEquaSet[T]) Find(pred func(T) bool) (v T, ok bool) {
	for e := range s.All() {
		if pred(e) {
			return e, true
		}
	}
	return v, false
}

func (s *FastEquaSet[T]) ForEach(fn func(T)) {
	for v := range s.All() {
		fn(v)
	}
}

func (s *FastEquaSet[T]) boxSlice() []EquaBox[T] {
	boxes := make([]EquaBox[T], 0, s.Len())
	for itr := s.order.Iterator(); !itr.Done(); {
		_, b := itr.Next()
		boxes = append(boxes, b)
	}
	return boxes
}

func (s *FastEquaSet[T]) withBoxes(boxes []EquaBox[T]) *FastEquaSet[T] {
	out := s.coll.EmptyFastSet()
	items, order := out.items, out.order
	for _, b := range boxes {
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
			order = order.Append(b)
		}
	}
	out.items, out.order = items, order
	return out
}

func (s *FastEquaSet[T]) setsOf(groups [][]EquaBox[T]) []*FastEquaSet[T] {
	out := make([]*FastEquaSet[T], len(groups))
	for i, g := range groups {
		out[i] = s.withBoxes(g)
	}
	return out
}
