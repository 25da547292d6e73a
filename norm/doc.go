// Package norm provides pure, deterministic value transforms that are applied
// before comparison.
//
// A Normalization is not just a convenience function.
// A Normalization is a tool that *forces the developer to ask*:
//
//	→ "Which differences between two values do I actually care about?"
//	→ "Can membership be decided on the normalized form alone?"
//
// The answer to the second question is what separates a Normalization from a
// Uniformity. Every Uniformity is a Normalization, but a Uniformity
// additionally promises idempotence: normalizing an already-normalized value
// changes nothing. That promise is strong enough that the normalized form by
// itself can serve as an equality decision procedure, which is why a
// Uniformity can be promoted to an equality policy without naming a base
// comparison.
//
// Features:
//   - Normalization[T]: composable transform (And chains left to right).
//   - Uniformity[T]: idempotent transform, promotable on its own.
//   - Promotions to the equality package's policy interfaces.
//   - Ready-made string uniformities (Trimmed, Lowercased, Uppercased).
//
// All transforms must be referentially transparent. A Normalization that
// reads a clock or mutates shared state breaks every collection built on it.
package norm
