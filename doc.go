// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rotate provides in-place left-rotation of linear sequences: after
// rotating around a pivot, the element at the pivot becomes the first
// element, and the relative order within the two original segments is
// preserved.  Equivalently, for a sequence S of length n and pivot p, the
// result is result[i] = S[(i+p) % n].
//
// Three strategy families are provided, one per capability tier of
// package seq:
//
// - Forward / ForwardCounted: the Gries-Mills juggling method, the only
// option when positions can merely step forward and compare equal.  Exactly
// n swaps, no auxiliary storage.
//
// - Bidirectional: the three-reversal method.  Roughly 2n swaps, but the
// passes are simple linear sweeps, which makes it the strategy of choice for
// short sequences even when indexing is available.
//
// - Cycles / CyclesBuffered: GCD cycle-following for indexed sequences.
// Exactly n element moves, the in-place optimum; the buffered form moves
// chunks of cycles through a small scratch buffer and short-circuits into a
// single linear pass when either side of the pivot fits the buffer.
//
// Slice, Indexed and their Tuned variants pick among the strategies using
// size and cycle-count heuristics; the cutoffs are exposed through Tuning
// because their best values are hardware dependent.
//
// None of the operations validate their range arguments: passing a pivot
// position that is not reachable between first and last is a caller error
// with undefined results, consistent with the no-op/no-error contract of the
// package (the only recognized special cases are the trivial rotations
// around the first or past-the-end position, which leave the sequence
// untouched).  The operations are single-threaded and assume exclusive
// access to the sequence for the duration of the call.
package rotate
