// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package seq defines cursor-based access to linear sequences at three
// capability tiers, mirroring the forward/bidirectional/random-access
// distinction that in-place rearrangement algorithms care about.
//
// A position is an opaque handle of some comparable type P; equality is the
// only operation every tier supports on positions directly.  The sequence
// value itself supplies stepping and element access.  Adapters never own the
// backing storage, they only provide a mutable view of storage owned by the
// caller.
//
// The tiers form a strict hierarchy: every Indexed sequence is Bidirectional,
// and every Bidirectional sequence is Forward.  Algorithms declare the
// weakest tier they can work with, so passing a sequence to an algorithm that
// needs a capability the sequence lacks is a compile error, not a runtime
// one.
package seq

// Forward is the weakest tier: single-direction stepping and element access
// through a cursor.  It models a singly-linked traversal.  Distances are not
// computable except by counting steps (see Count).
type Forward[P comparable, E any] interface {
	// Next returns the position immediately after p.  Stepping past the
	// end-of-sequence position is a caller error.
	Next(p P) P
	// Get returns the element at p.
	Get(p P) E
	// Set replaces the element at p.
	Set(p P, v E)
	// Swap exchanges the elements at p and q.
	Swap(p, q P)
}

// Bidirectional adds backward stepping.  Distances still cost one step each.
type Bidirectional[P comparable, E any] interface {
	Forward[P, E]
	// Prev returns the position immediately before p.  Stepping before the
	// first position is a caller error.
	Prev(p P) P
}

// Indexed adds constant-time offset arithmetic between positions, modeling
// contiguous or random-access storage.
type Indexed[P comparable, E any] interface {
	Bidirectional[P, E]
	// Advance returns the position n steps after p (n may be negative).
	Advance(p P, n int) P
	// Distance returns the number of steps from p to q.  q must be reachable
	// from p by forward stepping.
	Distance(p, q P) int
}

// Count returns the number of forward steps from first to last, by stepping.
// This is the only way to measure a span at the Forward tier.
func Count[P comparable, E any](s Forward[P, E], first, last P) int {
	n := 0
	for first != last {
		first = s.Next(first)
		n++
	}
	return n
}

// Step returns the position n forward steps after p.
func Step[P comparable, E any](s Forward[P, E], p P, n int) P {
	for ; n > 0; n-- {
		p = s.Next(p)
	}
	return p
}

// Values collects the elements of [first, last) into a fresh slice.  It is
// meant for tests and debugging, not hot paths.
func Values[P comparable, E any](s Forward[P, E], first, last P) []E {
	var out []E
	for p := first; p != last; p = s.Next(p) {
		out = append(out, s.Get(p))
	}
	return out
}
