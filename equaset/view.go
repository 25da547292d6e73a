package equaset

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// View is a lazy, replayable pipeline over elements. No transform in the
// chain runs until a terminal operation (ToSlice, String, Equals, a Force
// variant, or ranging over All) consumes it, and every consumption re-runs
// the whole chain from the source.
//
// A view has bag semantics: duplicates produced along the chain survive
// until the view is forced into a factory, which is where deduplication
// under the target policy happens. Transforms must be pure; an impure
// transform makes repeated consumption observable.
type View[T any] struct {
	seq iter.Seq[T]
}

// ViewOf builds a view over the given elements as-is, duplicates included.
func ViewOf[T any](elems ...T) View[T] {
	src := make([]T, len(elems))
	copy(src, elems)
	return View[T]{seq: func(yield func(T) bool) {
		for _, v := range src {
			if !yield(v) {
				return
			}
		}
	}}
}

// All exposes the pipeline as a replayable sequence.
func (v View[T]) All() iter.Seq[T] { return v.seq }

// Filter defers a predicate stage.
func (v View[T]) Filter(pred func(T) bool) View[T] {
	return View[T]{seq: func(yield func(T) bool) {
		for e := range v.seq {
			if pred(e) && !yield(e) {
				return
			}
		}
	}}
}

// Scan defers a running-accumulation stage: the output starts with z and
// contains one accumulated value per input element.
func (v View[T]) Scan(z T, op func(acc, e T) T) View[T] {
	return ScanLeft(v, z, op)
}

// ToSlice runs the chain once and collects the produced elements.
func (v View[T]) ToSlice() []T {
	var out []T
	for e := range v.seq {
		out = append(out, e)
	}
	return out
}

// Force runs the chain and deduplicates the result under the target
// factory's policy, returning a hash-backed set.
func (v View[T]) Force(target *Collections[T]) *EquaSet[T] {
	return target.Set(v.ToSlice()...)
}

// ForceFast is Force into the insertion-order-preserving variant; the
// chain's production order becomes the set's order.
func (v View[T]) ForceFast(target *Collections[T]) *FastEquaSet[T] {
	return target.FastSet(v.ToSlice()...)
}

// ForceSorted runs the chain and deduplicates under the sorted target's
// policy, returning a tree-backed set.
func (v View[T]) ForceSorted(target *SortedCollections[T]) *TreeEquaSet[T] {
	return target.SortedSet(v.ToSlice()...)
}

// Equals consumes both pipelines and compares the produced element
// sequences. Two differently-constructed but equivalent pipelines compare
// equal; chain identity is irrelevant.
func (v View[T]) Equals(other View[T]) bool {
	return reflect.DeepEqual(v.ToSlice(), other.ToSlice())
}

// HashCode consumes the chain and hashes the produced element sequence.
// Pipelines that are Equals have equal hash codes.
func (v View[T]) HashCode() uint64 {
	d := xxhash.New()
	for e := range v.seq {
		_, _ = fmt.Fprintf(d, "%v;", e)
	}
	return d.Sum64()
}

// String consumes the chain once and renders the produced elements.
func (v View[T]) String() string {
	return formatSet("LazyBag", v.seq)
}

// Map defers an element transform; the stage runs only when the resulting
// view is consumed.
func Map[A, B any](v View[A], f func(A) B) View[B] {
	return View[B]{seq: func(yield func(B) bool) {
		for e := range v.All() {
			if !yield(f(e)) {
				return
			}
		}
	}}
}

// FlatMap defers a one-to-many transform, concatenating the produced
// slices in order.
func FlatMap[A, B any](v View[A], f func(A) []B) View[B] {
	return View[B]{seq: func(yield func(B) bool) {
		for e := range v.All() {
			for _, b := range f(e) {
				if !yield(b) {
					return
				}
			}
		}
	}}
}

// Collect defers a combined filter-and-map stage: elements for which f
// reports false are dropped.
func Collect[A, B any](v View[A], f func(A) (B, bool)) View[B] {
	return View[B]{seq: func(yield func(B) bool) {
		for e := range v.All() {
			if b, ok := f(e); ok && !yield(b) {
				return
			}
		}
	}}
}

// ScanLeft defers a left-to-right running accumulation. The output has one
// more element than the input: z first, the final accumulation last.
func ScanLeft[A, B any](v View[A], z B, op func(acc B, e A) B) View[B] {
	return View[B]{seq: func(yield func(B) bool) {
		acc := z
		if !yield(acc) {
			return
		}
		for e := range v.All() {
			acc = op(acc, e)
			if !yield(acc) {
				return
			}
		}
	}}
}

// ScanRight defers a right-to-left running accumulation. The output has one
// more element than the input: the final accumulation first, z last. The
// upstream is buffered when the stage runs, not before.
func ScanRight[A, B any](v View[A], z B, op func(e A, acc B) B) View[B] {
	return View[B]{seq: func(yield func(B) bool) {
		elems := v.ToSlice()
		out := make([]B, len(elems)+1)
		out[len(elems)] = z
		for i := len(elems) - 1; i >= 0; i-- {
			out[i] = op(elems[i], out[i+1])
		}
		for _, b := range out {
			if !yield(b) {
				return
			}
		}
	}}
}

// Pair is the product of two values, used by the zip family.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the product of three values, used by Unzip3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip pairs the two pipelines positionally, stopping at the shorter one.
func Zip[A, B any](va View[A], vb View[B]) View[Pair[A, B]] {
	return View[Pair[A, B]]{seq: func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(vb.All())
		defer stop()
		for a := range va.All() {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{First: a, Second: b}) {
				return
			}
		}
	}}
}

// ZipAll pairs the two pipelines positionally, padding the shorter one with
// the given defaults.
func ZipAll[A, B any](va View[A], vb View[B], defaultA A, defaultB B) View[Pair[A, B]] {
	return View[Pair[A, B]]{seq: func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(vb.All())
		defer stop()
		for a := range va.All() {
			b, ok := next()
			if !ok {
				b = defaultB
			}
			if !yield(Pair[A, B]{First: a, Second: b}) {
				return
			}
		}
		for {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{First: defaultA, Second: b}) {
				return
			}
		}
	}}
}

// ZipWithIndex pairs each produced element with its position in the chain's
// output.
func ZipWithIndex[A any](v View[A]) View[Pair[A, int]] {
	return View[Pair[A, int]]{seq: func(yield func(Pair[A, int]) bool) {
		i := 0
		for a := range v.All() {
			if !yield(Pair[A, int]{First: a, Second: i}) {
				return
			}
			i++
		}
	}}
}

// Unzip splits a view of pairs into two views; each output re-traverses the
// upstream independently.
func Unzip[A, B any](v View[Pair[A, B]]) (View[A], View[B]) {
	return Map(v, func(p Pair[A, B]) A { return p.First }),
		Map(v, func(p Pair[A, B]) B { return p.Second })
}

// Unzip3 splits a view of triples into three views.
func Unzip3[A, B, C any](v View[Triple[A, B, C]]) (View[A], View[B], View[C]) {
	return Map(v, func(t Triple[A, B, C]) A { return t.First }),
		Map(v, func(t Triple[A, B, C]) B { return t.Second }),
		Map(v, func(t Triple[A, B, C]) C { return t.Third })
}
