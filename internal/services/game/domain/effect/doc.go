// Package effect models the typed, valued, timed modifiers applied to actors.
//
// Every effect Type belongs to exactly one Category. The classification and the
// display labels live in a registry built once at package initialization from a
// constant table; it is never mutated afterwards, so lookups are safe from any
// goroutine without locking.
//
// Durations are either Instant (applied once by the caller and never tracked),
// Permanent (never expire) or a number of remaining turns. Timed effects are
// advanced with Shorten once per game turn; the collection that owns an effect
// removes it once Expired reports true.
//
// The binary encoding of an Effect is nine bytes: the type ordinal as one byte
// followed by the value and the flat duration as little-endian fixed32 words.
// Instant and Permanent travel as -1 and -2. Type and Category ordinals are part
// of the wire format and must never be reordered.
package effect
