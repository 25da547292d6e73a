// Package equaset provides immutable set collections whose membership is
// decided by an equality policy instead of the element type's native ==.
//
// A Collections (or SortedCollections) value is a factory: it pairs one
// policy with an unforgeable identity and is the sole source of sets and
// boxes governed by that policy. Two sets are combinable or comparable only
// when their policies are the same policy instance; the factory is the unit
// of interoperability.
//
// Set variants:
//   - EquaSet: hash-backed, iteration order undefined.
//   - FastEquaSet: hash-backed, iteration in insertion order.
//   - TreeEquaSet: tree-backed, iteration ascending by the policy's order.
//
// All variants are persistent values. Every operation returns a new set
// bound to the receiver's factory; nothing is mutated in place.
//
// Views are lazy, replayable pipelines over a set's elements. A view has bag
// semantics until it is forced into a factory, which is the moment
// deduplication under the target policy happens. Transform functions handed
// to a view must be pure: a pipeline is re-run from its source on every
// traversal, so an impure transform makes results consumption-order
// dependent.
package equaset
