package equaset

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/on-the-ground/collect_ive_go/equality"
)

// ErrIncompatiblePolicies is the cause carried by every failure to combine
// or compare collections whose policies are not the same policy instance.
var ErrIncompatiblePolicies = errors.New("incompatible equality policies")

// Set is the read surface shared by every set variant. It is a sealed
// interface: only this package's variants implement it, which is what lets
// binary operations trust the box representation of their operands.
type Set[T any] interface {
	// Len returns the number of policy-equivalence classes in the set.
	Len() int
	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool
	// Contains reports membership under the set's policy.
	Contains(v T) bool
	// All yields the elements in the variant's iteration order.
	All() iter.Seq[T]
	// Boxes yields the elements still paired with their policy.
	Boxes() iter.Seq[EquaBox[T]]
	// ToSlice copies the elements into a fresh slice.
	ToSlice() []T
	// ToBoxSlice copies the boxed elements into a fresh slice.
	ToBoxSlice() []EquaBox[T]
	// CanEqual reports whether comparing with other makes sense: true iff
	// both sets are governed by the same policy instance, regardless of
	// variant. It never panics.
	CanEqual(other Set[T]) bool
	// Equals reports policy-membership equality with other. It is false,
	// never a panic, for any cross-policy comparison; iteration order and
	// the concrete variant are irrelevant.
	Equals(other Set[T]) bool
	// HashCode is order-independent and consistent with Equals.
	HashCode() uint64
	// View returns a lazy pipeline over the elements.
	View() View[T]
	// Policy returns the governing equality policy.
	Policy() equality.Equality[T]

	fmt.Stringer

	sealed()
}

// samePolicy reports whether two policy interface values hold the very same
// policy instance. Structurally identical but distinct instances are not the
// same policy; uncomparable dynamic types are never the same.
func samePolicy[T any](a, b equality.Equality[T]) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// elementHash hashes a value under its policy. Ordering-only policies fall
// back to a hash of the rendered value; the fallback is consistent within
// one policy instance, which is all HashCode needs.
func elementHash[T any](eq equality.Equality[T], v T) uint64 {
	if h, ok := eq.(equality.HashingEquality[T]); ok {
		return h.HashOf(v)
	}
	return xxhash.Sum64String(fmt.Sprintf("%v", v))
}

// mustCompatible guards binary set operations. Cross-policy algebra is a
// contract violation and fails fast rather than producing a wrong answer.
func mustCompatible[T any](logger *zap.Logger, op string, receiver, other Set[T]) {
	if other != nil && samePolicy(receiver.Policy(), other.Policy()) {
		return
	}
	logger.Warn("rejected cross-policy set operation", zap.String("op", op))
	panic(fmt.Errorf("%w: %s requires operands built over the same policy instance", ErrIncompatiblePolicies, op))
}

// compatibleErr is the non-panicking guard used by the Try variants.
func compatibleErr[T any](op string, receiver, other Set[T]) error {
	if other != nil && samePolicy(receiver.Policy(), other.Policy()) {
		return nil
	}
	return fmt.Errorf("%w: %s requires operands built over the same policy instance", ErrIncompatiblePolicies, op)
}

func setsEqual[T any](a, b Set[T]) bool {
	if b == nil || !a.CanEqual(b) || a.Len() != b.Len() {
		return false
	}
	for v := range a.All() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}

// setHash xors the element hashes so the result is independent of iteration
// order and of the concrete variant.
func setHash[T any](s Set[T]) uint64 {
	var h uint64
	for b := range s.Boxes() {
		h ^= b.HashCode()
	}
	return h
}

func subsetOf[T any](sub, super Set[T]) bool {
	for v := range sub.All() {
		if !super.Contains(v) {
			return false
		}
	}
	return true
}

// formatSet renders the contract form: kind prefix, parenthesized,
// comma-joined element list.
func formatSet[T any](prefix string, elems iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('(')
	first := true
	for v := range elems {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// chunked splits boxes into groups of at most size, the last possibly
// smaller. Panics when size is not positive.
func chunked[T any](boxes []EquaBox[T], size int) [][]EquaBox[T] {
	if size <= 0 {
		panic(fmt.Sprintf("grouped: size should be greater than 0, got %d", size))
	}
	var groups [][]EquaBox[T]
	for start := 0; start < len(boxes); start += size {
		end := min(start+size, len(boxes))
		groups = append(groups, boxes[start:end])
	}
	return groups
}

// slidingWindows yields the fixed-size windows of boxes advanced by step.
// Panics when size or step is not positive.
func slidingWindows[T any](boxes []EquaBox[T], size, step int) [][]EquaBox[T] {
	if size <= 0 {
		panic(fmt.Sprintf("sliding: size should be greater than 0, got %d", size))
	}
	if step <= 0 {
		panic(fmt.Sprintf("sliding: step should be greater than 0, got %d", step))
	}
	var windows [][]EquaBox[T]
	for start := 0; start < len(boxes); start += step {
		end := min(start+size, len(boxes))
		windows = append(windows, boxes[start:end])
		if end >= len(boxes) {
			break
		}
	}
	return windows
}

// subsetsSeq yields all 2^n subsets of boxes, smallest first. Each call
// produces a fresh, independent sequence.
func subsetsSeq[T any](boxes []EquaBox[T]) iter.Seq[[]EquaBox[T]] {
	return func(yield func([]EquaBox[T]) bool) {
		for k := 0; k <= len(boxes); k++ {
			if !yieldCombinations(boxes, k, yield) {
				return
			}
		}
	}
}

// combinationsSeq yields the size-k subsets of boxes.
func combinationsSeq[T any](boxes []EquaBox[T], k int) iter.Seq[[]EquaBox[T]] {
	return func(yield func([]EquaBox[T]) bool) {
		yieldCombinations(boxes, k, yield)
	}
}

func yieldCombinations[T any](boxes []EquaBox[T], k int, yield func([]EquaBox[T]) bool) bool {
	if k < 0 || k > len(boxes) {
		return true
	}
	picked := make([]EquaBox[T], 0, k)
	var rec func(start int) bool
	rec = func(start int) bool {
		if len(picked) == k {
			out := make([]EquaBox[T], k)
			copy(out, picked)
			return yield(out)
		}
		for i := start; i < len(boxes); i++ {
			picked = append(picked, boxes[i])
			if !rec(i + 1) {
				return false
			}
			picked = picked[:len(picked)-1]
		}
		return true
	}
	return rec(0)
}
