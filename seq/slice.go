// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seq

// Slice adapts a Go slice to the Indexed tier.  Positions are plain indices;
// len(s) is the past-the-end position.  The adapter borrows the slice, it
// does not copy it: element mutations through the adapter are visible to the
// caller and vice versa.
//
// Out-of-range positions fault the usual way slice indexing does; no
// additional validation is performed.
type Slice[E any] []E

// Next implements Forward.
func (s Slice[E]) Next(p int) int { return p + 1 }

// Prev implements Bidirectional.
func (s Slice[E]) Prev(p int) int { return p - 1 }

// Get implements Forward.
func (s Slice[E]) Get(p int) E { return s[p] }

// Set implements Forward.
func (s Slice[E]) Set(p int, v E) { s[p] = v }

// Swap implements Forward.
func (s Slice[E]) Swap(p, q int) { s[p], s[q] = s[q], s[p] }

// Advance implements Indexed.
func (s Slice[E]) Advance(p, n int) int { return p + n }

// Distance implements Indexed.
func (s Slice[E]) Distance(p, q int) int { return q - p }

// Begin returns the first position.
func (s Slice[E]) Begin() int { return 0 }

// End returns the past-the-end position.
func (s Slice[E]) End() int { return len(s) }
