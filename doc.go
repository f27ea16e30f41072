// Package hashtrace generates synthetic operation traces
// for exercising hash tables and other associative containers.
//
// A trace is a stream of insert, lookup, and remove records over
// a fixed range of integer keys. Keys are drawn uniformly at random
// (with replacement) and each draw is reported according to the
// state of that key, so a consumer can replay the trace against
// the container under test and expect every lookup and removal
// to target a key that is present.
//
// Glossary and invariants:
//
//   - Live key
//
//     A key that has been inserted and not yet removed.
//
//   - Count
//
//     The number of times a live key has been drawn since its insertion,
//     counting the insert itself.
//     Always within [1, cap] while the key is live.
//
//   - Cap
//
//     The count at which the next draw of a live key
//     removes it instead of reporting another lookup.
//
// Lifecycle of a key:
//
//	not live -> insert -> live(1) -> lookup* -> live(cap) -> remove -> not live
//
// A removed key may be drawn again on the very next step,
// which starts a new lifecycle with an insert.
// With a cap of 1 no lookups are ever produced.
//
// Trace format, one record per line:
//
//	+<key>	insert
//	?<key>	lookup
//	-<key>	remove
//
// Keys are written in decimal, with no leading zeros or separators.
package hashtrace
