// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rotate

import "github.com/grailbio/rotate/seq"

// Forward rotates [first, last) around middle using only forward stepping
// and position equality (the Gries-Mills juggling method).  It performs
// exactly distance(first, last) element swaps and allocates nothing.
//
// middle must be reachable from first, and last from middle, by forward
// stepping; a no-op when first == middle or middle == last.
func Forward[P comparable, E any](s seq.Forward[P, E], first, middle, last P) {
	if first == middle || middle == last {
		return
	}
	// Swap the two cursors in lockstep.  When the read cursor falls off the
	// end it wraps to the current middle; the middle marker chases first so
	// that the wrap target shrinks as prefixes become final.
	next := middle
	for first != next {
		s.Swap(first, next)
		first, next = s.Next(first), s.Next(next)
		if next == last {
			next = middle
		} else if first == middle {
			middle = next
		}
	}
}

// ForwardCounted is the counted variant of Forward: it measures the two
// span lengths once (by stepping, the only way at this tier) and then swaps
// min(forward, backward) elements per pass with counted loops, trading the
// per-step position-equality tests of Forward for one extra measuring walk.
// The resulting element order is identical to Forward's.
func ForwardCounted[P comparable, E any](s seq.Forward[P, E], first, middle, last P) {
	if first == middle || middle == last {
		return
	}
	f := seq.Count(s, first, middle)
	b := seq.Count(s, middle, last)
	for f != 0 && b != 0 {
		if f <= b {
			// Swap the whole left span into the head of the right span.
			// The swapped-in prefix is final; recur on what follows it.
			p, q := first, middle
			for i := 0; i < f; i++ {
				s.Swap(p, q)
				p, q = s.Next(p), s.Next(q)
			}
			first, middle = p, q
			b -= f
		} else {
			// Swap the tail of the left span into the right span, placing
			// those elements at their final positions at the back.
			p := seq.Step(s, first, f-b)
			mid := p
			q := middle
			for i := 0; i < b; i++ {
				s.Swap(p, q)
				p, q = s.Next(p), s.Next(q)
			}
			middle = mid
			f -= b
		}
	}
}
