// Package equality defines equality as a value, not a language primitive.
//
// An equality policy answers "are these two equal?" independently of the
// element type's native == operator. Collections built by this module consult
// a policy for every membership question, which is what makes deduplication,
// set algebra and hashing swappable per collection rather than fixed per type.
//
// Three policy kinds exist:
//   - Equality[T]: bare pairwise equality.
//   - HashingEquality[T]: adds a hash code for hash-backed storage.
//   - OrderingEquality[T]: adds a total order for tree-backed storage.
//
// Contract obligations rest on the policy author and are not checked at
// runtime:
//   - AreEqual(a, b) implies HashOf(a) == HashOf(b).
//   - Compare(a, b) == 0 iff AreEqual(a, b).
//
// Supplying an inconsistent pair is undefined behavior; the collections
// deliberately do not pay a runtime tax to defend against it.
package equality
