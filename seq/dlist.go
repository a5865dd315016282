// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package seq

// DNode is one cell of a doubly-linked DList.
type DNode[E any] struct {
	Value      E
	prev, next *DNode[E]
}

// DList is a doubly-linked sequence exposing the Bidirectional tier (and
// nothing more: there is no constant-time distance between positions).  Like
// container/list it is implemented as a ring with a sentinel root node; the
// sentinel doubles as the past-the-end position, so Prev(End()) is the last
// element.  The stdlib container/list predates generics and traffics in
// interface{} values, hence this small typed replacement.
type DList[E any] struct {
	root DNode[E]
	len  int
}

// NewDList returns an empty list.
func NewDList[E any]() *DList[E] {
	l := &DList[E]{}
	l.root.prev = &l.root
	l.root.next = &l.root
	return l
}

// DListOf builds a DList holding the given values in order.
func DListOf[E any](values ...E) *DList[E] {
	l := NewDList[E]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Append adds a value at the end of the list.
func (l *DList[E]) Append(v E) {
	n := &DNode[E]{Value: v, prev: l.root.prev, next: &l.root}
	l.root.prev.next = n
	l.root.prev = n
	l.len++
}

// Begin returns the first position.  For an empty list Begin() == End().
func (l *DList[E]) Begin() *DNode[E] { return l.root.next }

// End returns the past-the-end position (the sentinel).
func (l *DList[E]) End() *DNode[E] { return &l.root }

// Len returns the number of elements, in O(1).
func (l *DList[E]) Len() int { return l.len }

// Next implements Forward.
func (l *DList[E]) Next(p *DNode[E]) *DNode[E] { return p.next }

// Prev implements Bidirectional.
func (l *DList[E]) Prev(p *DNode[E]) *DNode[E] { return p.prev }

// Get implements Forward.
func (l *DList[E]) Get(p *DNode[E]) E { return p.Value }

// Set implements Forward.
func (l *DList[E]) Set(p *DNode[E], v E) { p.Value = v }

// Swap implements Forward.  Element values are exchanged, links stay put.
func (l *DList[E]) Swap(p, q *DNode[E]) { p.Value, q.Value = q.Value, p.Value }
