// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rotate

import "github.com/grailbio/rotate/seq"

// Reverse reverses the elements of [first, last) in place.
func Reverse[P comparable, E any](s seq.Bidirectional[P, E], first, last P) {
	for first != last {
		last = s.Prev(last)
		if first == last {
			return
		}
		s.Swap(first, last)
		first = s.Next(first)
	}
}

// Bidirectional rotates [first, last) around middle with three reversal
// passes: reverse each segment, then reverse the whole.  Roughly
// 2*distance(first, last) swaps, all of them in cache-friendly linear
// sweeps, with no auxiliary storage.  This is the fallback strategy for
// sequences that cannot be indexed, and for short or cycle-poor indexed
// sequences where cycle-following does not pay for its bookkeeping.
func Bidirectional[P comparable, E any](s seq.Bidirectional[P, E], first, middle, last P) {
	if first == middle || middle == last {
		return
	}
	Reverse(s, first, middle)
	Reverse(s, middle, last)
	Reverse(s, first, last)
}
