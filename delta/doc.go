// Package delta implements QSH's three stateful delta-decoded numeric
// types: Relative (running signed sum), Growing (running unsigned sum with
// an escape path for negative or outsized deltas), and GrowingDateTime
// (Growing reinterpreted as a millisecond delta against a wall-clock
// baseline that occasionally resets).
//
// Every type here carries its accumulator across calls and across frame
// boundaries — callers decode a whole stream with one long-lived instance
// per field, never a fresh one per frame.
package delta
