package equaset

import (
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/on-the-ground/collect_ive_go/equality"
)

// TreeEquaSet is the tree-backed sorted variant. Iteration visits elements
// in ascending order of the policy's Compare.
type TreeEquaSet[T any] struct {
	coll  *SortedCollections[T]
	items *immutable.SortedMap[EquaBox[T], struct{}]
}

func (s *TreeEquaSet[T]) sealed() {}

// Collections returns the sorted factory this set is bound to.
func (s *TreeEquaSet[T]) Collections() *SortedCollections[T] { return s.coll }

// Policy returns the governing equality policy.
func (s *TreeEquaSet[T]) Policy() equality.Equality[T] { return s.coll.policy }

func (s *TreeEquaSet[T]) Len() int      { return s.items.Len() }
func (s *TreeEquaSet[T]) IsEmpty() bool { return s.items.Len() == 0 }

func (s *TreeEquaSet[T]) Contains(v T) bool {
	_, ok := s.items.Get(s.coll.Box(v))
	return ok
}

// Add returns a set additionally containing the given elements, first-wins
// under the policy.
func (s *TreeEquaSet[T]) Add(elems ...T) *TreeEquaSet[T] {
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
	return &TreeEquaSet[T]{coll: s.coll, items: items}
}

// Remove returns a set without the policy-equivalents of the given elements.
func (s *TreeEquaSet[T]) Remove(elems ...T) *TreeEquaSet[T] {
	items := s.items
	for _, v := range elems {
		items = items.Delete(s.coll.Box(v))
	}
	if items == s.items {
		return s
	}
	return &TreeEquaSet[T]{coll: s.coll, items: items}
}

// Union returns the policy-union of both operands, bound to the receiver's
// factory. Panics with ErrIncompatiblePolicies for cross-policy operands.
func (s *TreeEquaSet[T]) Union(other Set[T]) *TreeEquaSet[T] {
	mustCompatible(s.coll.logger, "union", Set[T](s), other)
	items := s.items
	for b := range other.Boxes() {
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
		}
	}
	return &TreeEquaSet[T]{coll: s.coll, items: items}
}

// Intersect keeps the receiver's elements that are members of other.
func (s *TreeEquaSet[T]) Intersect(other Set[T]) *TreeEquaSet[T] {
	mustCompatible(s.coll.logger, "intersect", Set[T](s), other)
	return s.Filter(other.Contains)
}

// Diff keeps the receiver's elements that are not members of other.
func (s *TreeEquaSet[T]) Diff(other Set[T]) *TreeEquaSet[T] {
	mustCompatible(s.coll.logger, "diff", Set[T](s), other)
	return s.FilterNot(other.Contains)
}

// SubsetOf reports whether every element is a member of other.
func (s *TreeEquaSet[T]) SubsetOf(other Set[T]) bool {
	mustCompatible(s.coll.logger, "subsetOf", Set[T](s), other)
	return subsetOf[T](s, other)
}

// TryUnion is Union with an error instead of a panic.
func (s *TreeEquaSet[T]) TryUnion(other Set[T]) (*TreeEquaSet[T], error) {
	if err := compatibleErr("union", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Union(other), nil
}

// TryIntersect is Intersect with an error instead of a panic.
func (s *TreeEquaSet[T]) TryIntersect(other Set[T]) (*TreeEquaSet[T], error) {
	if err := compatibleErr("intersect", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Intersect(other), nil
}

// TryDiff is Diff with an error instead of a panic.
func (s *TreeEquaSet[T]) TryDiff(other Set[T]) (*TreeEquaSet[T], error) {
	if err := compatibleErr("diff", Set[T](s), other); err != nil {
		return nil, err
	}
	return s.Diff(other), nil
}

func (s *TreeEquaSet[T]) CanEqual(other Set[T]) bool {
	return other != nil && samePolicy(s.Policy(), other.Policy())
}

func (s *TreeEquaSet[T]) Equals(other Set[T]) bool { return setsEqual[T](s, other) }
func (s *TreeEquaSet[T]) HashCode() uint64         { return setHash[T](s) }

// Min returns the smallest element under the policy's order. ok is false
// for the empty set.
func (s *TreeEquaSet[T]) Min() (v T, ok bool) {
	itr := s.items.Iterator()
	if itr.Done() {
		return v, false
	}
	b, _, _ := itr.Next()
	return b.Value, true
}

// Max returns the largest element under the policy's order. ok is false for
// the empty set.
func (s *TreeEquaSet[T]) Max() (v T, ok bool) {
	boxes := s.boxSlice()
	if len(boxes) == 0 {
		return v, false
	}
	return boxes[len(boxes)-1].Value, true
}

// All yields the elements in ascending order; the sequence is replayable.
func (s *TreeEquaSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for itr := s.items.Iterator(); !itr.Done(); {
			k, _, _ := itr.Next()
			if !yield(k.Value) {
				return
			}
		}
	}
}

// Boxes yields the elements in ascending order, still paired with the
// policy.
func (s *TreeEquaSet[T]) Boxes() iter.Seq[EquaBox[T]] {
	return func(yield func(EquaBox[T]) bool) {
		for itr := s.items.Iterator(); !itr.Done(); {
			k, _, _ := itr.Next()
			if !yield(k) {
				return
			}
		}
	}
}

func (s *TreeEquaSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

func (s *TreeEquaSet[T]) ToBoxSlice() []EquaBox[T] { return s.boxSlice() }

// View returns a lazy pipeline over the elements in ascending order.
func (s *TreeEquaSet[T]) View() View[T] { return View[T]{seq: s.All()} }

func (s *TreeEquaSet[T]) String() string { return formatSet("TreeEquaSet", s.All()) }

// Filter keeps the elements satisfying pred.
func (s *TreeEquaSet[T]) Filter(pred func(T) bool) *TreeEquaSet[T] {
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
	return &TreeEquaSet[T]{coll: s.coll, items: kept}
}

// FilterNot keeps the elements rejected by pred.
func (s *TreeEquaSet[T]) FilterNot(pred func(T) bool) *TreeEquaSet[T] {
	return s.Filter(func(v T) bool { return !pred(v) })
}

// Partition splits into (satisfying, rejecting).
func (s *TreeEquaSet[T]) Partition(pred func(T) bool) (*TreeEquaSet[T], *TreeEquaSet[T]) {
	return s.Filter(pred), s.FilterNot(pred)
}

// Span splits at the first element, in ascending order, that fails pred.
func (s *TreeEquaSet[T]) Span(pred func(T) bool) (*TreeEquaSet[T], *TreeEquaSet[T]) {
	boxes := s.boxSlice()
	i := 0
	for ; i < len(boxes); i++ {
		if !pred(boxes[i].Value) {
			break
		}
	}
	return s.withBoxes(boxes[:i]), s.withBoxes(boxes[i:])
}

// SplitAt splits at position n in ascending order.
func (s *TreeEquaSet[T]) SplitAt(n int) (*TreeEquaSet[T], *TreeEquaSet[T]) {
	boxes := s.boxSlice()
	n = clamp(n, 0, len(boxes))
	return s.withBoxes(boxes[:n]), s.withBoxes(boxes[n:])
}

func (s *TreeEquaSet[T]) Take(n int) *TreeEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[:clamp(n, 0, len(boxes))])
}

func (s *TreeEquaSet[T]) TakeRight(n int) *TreeEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[len(boxes)-clamp(n, 0, len(boxes)):])
}

func (s *TreeEquaSet[T]) TakeWhile(pred func(T) bool) *TreeEquaSet[T] {
	lhs, _ := s.Span(pred)
	return lhs
}

func (s *TreeEquaSet[T]) Drop(n int) *TreeEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[clamp(n, 0, len(boxes)):])
}

func (s *TreeEquaSet[T]) DropRight(n int) *TreeEquaSet[T] {
	boxes := s.boxSlice()
	return s.withBoxes(boxes[:len(boxes)-clamp(n, 0, len(boxes))])
}

func (s *TreeEquaSet[T]) DropWhile(pred func(T) bool) *TreeEquaSet[T] {
	_, rhs := s.Span(pred)
	return rhs
}

// Slice keeps positions [from, until) in ascending order.
func (s *TreeEquaSet[T]) Slice(from, until int) *TreeEquaSet[T] {
	boxes := s.boxSlice()
	from = clamp(from, 0, len(boxes))
	until = clamp(until, from, len(boxes))
	return s.withBoxes(boxes[from:until])
}

// Grouped splits into chunks of at most size elements in ascending order.
// Panics when size is not positive.
func (s *TreeEquaSet[T]) Grouped(size int) []*TreeEquaSet[T] {
	return s.setsOf(chunked(s.boxSlice(), size))
}

// Sliding yields the fixed-size windows advanced by one position.
func (s *TreeEquaSet[T]) Sliding(size int) []*TreeEquaSet[T] {
	return s.SlidingBy(size, 1)
}

// SlidingBy yields the fixed-size windows advanced by step positions.
// Panics when size or step is not positive.
func (s *TreeEquaSet[T]) SlidingBy(size, step int) []*TreeEquaSet[T] {
	return s.setsOf(slidingWindows(s.boxSlice(), size, step))
}

// Subsets yields every subset: 2^n in total, each call a fresh sequence.
func (s *TreeEquaSet[T]) Subsets() iter.Seq[*TreeEquaSet[T]] {
	boxes := s.boxSlice()
	return func(yield func(*TreeEquaSet[T]) bool) {
		for sub := range subsetsSeq(boxes) {
			if !yield(s.withBoxes(sub)) {
				return
			}
		}
	}
}

// SubsetsN yields the subsets of exactly n elements.
func (s *TreeEquaSet[T]) SubsetsN(n int) iter.Seq[*TreeEquaSet[T]] {
	boxes := s.boxSlice()
	return func(yield func(*TreeEquaSet[T]) bool) {
		for sub := range combinationsSeq(boxes, n) {
			if !yield(s.withBoxes(sub)) {
				return
			}
		}
	}
}

func (s *TreeEquaSet[T]) Fold(z T, op func(T, T) T) T { return s.FoldLeft(z, op) }

func (s *TreeEquaSet[T]) FoldLeft(z T, op func(acc, v T) T) T {
	acc := z
	for v := range s.All() {
		acc = op(acc, v)
	}
	return acc
}

func (s *TreeEquaSet[T]) FoldRight(z T, op func(v, acc T) T) T {
	boxes := s.boxSlice()
	acc := z
	for i := len(boxes) - 1; i >= 0; i-- {
		acc = op(boxes[i].Value, acc)
	}
	return acc
}

// Reduce combines the elements with op in ascending order. ok is false for
// the empty set.
func (s *TreeEquaSet[T]) Reduce(op func(T, T) T) (v T, ok bool) {
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

func (s *TreeEquaSet[T]) Count(pred func(T) bool) int {
	n := 0
	for v := range s.All() {
		if pred(v) {
			n++
		}
	}
	return n
}

func (s *TreeEquaSet[T]) Exists(pred func(T) bool) bool {
	for v := range s.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

func (s *TreeEquaSet[T]) Forall(pred func(T) bool) bool {
	return !s.Exists(func(v T) bool { return !pred(v) })
}

func (s *TreeEquaSet[T]) Find(pred func(T) bool) (v T, ok bool) {
	for e := range s.All() {
		if pred(e) {
			return e, true
		}
	}
	return v, false
}

func (s *TreeEquaSet[T]) ForEach(fn func(T)) {
	for v := range s.All() {
		fn(v)
	}
}

func (s *TreeEquaSet[T]) boxSlice() []EquaBox[T] {
	boxes := make([]EquaBox[T], 0, s.Len())
	for itr := s.items.Iterator(); !itr.Done(); {
		k, _, _ := itr.Next()
		boxes = append(boxes, k)
	}
	return boxes
}

func (s *TreeEquaSet[T]) withBoxes(boxes []EquaBox[T]) *TreeEquaSet[T] {
	out := s.coll.EmptySortedSet()
	items := out.items
	for _, b := range boxes {
		if _, ok := items.Get(b); !ok {
			items = items.Set(b, struct{}{})
		}
	}
	out.items = items
	return out
}

func (s *TreeEquaSet[T]) setsOf(groups [][]EquaBox[T]) []*TreeEquaSet[T] {
	out := make([]*TreeEquaSet[T], len(groups))
	for i, g := range groups {
		out[i] = s.withBoxes(g)
	}
	return out
}
