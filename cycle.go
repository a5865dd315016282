// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rotate

import "github.com/grailbio/rotate/seq"

// Cycles rotates [first, last) around middle by following the permutation
// cycles of the rotation, for sequences with constant-time positional
// arithmetic.  With forward = distance(first, middle) and backward =
// distance(middle, last), the rotation decomposes into exactly
// gcd(forward, backward) cycles covering all elements; each cycle is walked
// with a single temporary, so every element is moved exactly once:
// forward+backward moves in total, the in-place optimum.
//
// Equal-length halves degenerate into a plain pairwise block swap and are
// special-cased as such.
func Cycles[P comparable, E any](s seq.Indexed[P, E], first, middle, last P) {
	if first == middle || middle == last {
		return
	}
	f := s.Distance(first, middle)
	b := s.Distance(middle, last)
	if f == b {
		swapRanges(s, first, middle, f)
		return
	}
	n := f + b
	g := gcd(f, b)
	for c := 0; c < g; c++ {
		// Walk one cycle.  Offset i receives the element at offset i+f,
		// wrapping by subtracting backward (i+f-n == i-b) when that would
		// run past the end.
		tmp := s.Get(s.Advance(first, c))
		cur := c
		for {
			next := cur + f
			if next >= n {
				next -= n
			}
			if next == c {
				break
			}
			s.Set(s.Advance(first, cur), s.Get(s.Advance(first, next)))
			cur = next
		}
		s.Set(s.Advance(first, cur), tmp)
	}
}

// CyclesBuffered is Cycles with a caller-provided scratch buffer.  The
// buffer is only read and written within the call; ownership stays with the
// caller and the sequence is never aliased by it.
//
// Two fast paths short-circuit the cycle machinery entirely: when either
// span fits the buffer, the rotation is one buffered linear pass (stash the
// short span, slide the long one, unstash).  Otherwise the cycle walk of
// Cycles runs on contiguous chunks of min(gcd, len(buf)) cycle starts at a
// time, cutting the loop overhead by the chunk width.  An empty buffer
// degrades to plain Cycles.  The element order produced is identical to
// Cycles in all cases.
func CyclesBuffered[P comparable, E any](s seq.Indexed[P, E], first, middle, last P, buf []E) {
	if first == middle || middle == last {
		return
	}
	f := s.Distance(first, middle)
	b := s.Distance(middle, last)
	if f == b {
		swapRanges(s, first, middle, f)
		return
	}
	if len(buf) == 0 {
		Cycles(s, first, middle, last)
		return
	}
	if b <= len(buf) {
		// Short right span: stash it, slide [first, middle) up by backward,
		// unstash at the front.  The slide moves elements toward higher
		// positions, so the copy direction depends on whether the old and
		// new extents of the left span overlap.
		readRange(s, middle, buf[:b])
		if b >= f {
			moveRange(s, s.Advance(first, b), first, f)
		} else {
			moveRangeBackward(s, s.Advance(first, b), first, f)
		}
		writeRange(s, first, buf[:b])
		return
	}
	if f <= len(buf) {
		// Short left span, symmetric: slide [middle, last) down to first.
		// The destination trails the source here, so a forward copy is
		// always overlap-safe.
		readRange(s, first, buf[:f])
		moveRange(s, first, middle, b)
		writeRange(s, s.Advance(first, b), buf[:f])
		return
	}
	n := f + b
	g := gcd(f, b)
	chunk := min(g, len(buf))
	for c := 0; c < g; c += chunk {
		k := min(chunk, g-c)
		// Chunks of cycle starts travel together: every stop of the walk is
		// at an offset congruent to c modulo g, so a block of k <= g
		// consecutive offsets never straddles the wrap point and block
		// moves never overlap.
		readRange(s, s.Advance(first, c), buf[:k])
		cur := c
		for {
			next := cur + f
			if next >= n {
				next -= n
			}
			if next == c {
				break
			}
			moveRange(s, s.Advance(first, cur), s.Advance(first, next), k)
			cur = next
		}
		writeRange(s, s.Advance(first, cur), buf[:k])
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// swapRanges exchanges the n elements starting at p with those starting
// at q.  The ranges must not overlap.
func swapRanges[P comparable, E any](s seq.Indexed[P, E], p, q P, n int) {
	for i := 0; i < n; i++ {
		s.Swap(p, q)
		p, q = s.Next(p), s.Next(q)
	}
}

// readRange copies len(buf) elements starting at p into buf.
func readRange[P comparable, E any](s seq.Indexed[P, E], p P, buf []E) {
	for i := range buf {
		buf[i] = s.Get(p)
		p = s.Next(p)
	}
}

// writeRange copies buf into the sequence starting at p.
func writeRange[P comparable, E any](s seq.Indexed[P, E], p P, buf []E) {
	for i := range buf {
		s.Set(p, buf[i])
		p = s.Next(p)
	}
}

// moveRange copies n elements from src to dst, front to back.  Safe for
// overlapping ranges only when dst precedes src.
func moveRange[P comparable, E any](s seq.Indexed[P, E], dst, src P, n int) {
	for i := 0; i < n; i++ {
		s.Set(dst, s.Get(src))
		dst, src = s.Next(dst), s.Next(src)
	}
}

// moveRangeBackward copies n elements from src to dst, back to front.  Safe
// for overlapping ranges only when src precedes dst.
func moveRangeBackward[P comparable, E any](s seq.Indexed[P, E], dst, src P, n int) {
	dst, src = s.Advance(dst, n), s.Advance(src, n)
	for i := 0; i < n; i++ {
		dst, src = s.Prev(dst), s.Prev(src)
		s.Set(dst, s.Get(src))
	}
}
