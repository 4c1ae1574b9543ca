// SPDX-License-Identifier: MIT

// Package matrix - shared iterator state.
//
// Purpose:
//   - cursor[T] is the engine behind every exported iterator kind. A kind only
//     adds methods that take or return its own type (Add, Distance, Equal, ...),
//     so iterators of different kinds cannot be mixed at compile time.
//
// Model:
//   - tr:      translator (order + shape) shared by all iterators of the same
//     matrix, order and generation.
//   - [lo,hi]: scope inside the translator's linear order (whole matrix, one row,
//     one column, one diagonal). hi is the forward end sentinel.
//   - pos:     offset in the iterator's own direction, 0 <= pos <= hi-lo.
//     Forward: global = lo+pos. Reverse: global = hi-1-pos (pos == hi-lo is rend).
//   - m, gen:  weak binding to the owning matrix, checked on every use.
//
// Behavior highlights:
//   - Movement saturates inside [0, hi-lo]; it never fails.
//   - Dereference/comparison validate binding and generation first.

package matrix

import (
	"fmt"
	"math"
)

// cursor is embedded by every iterator kind.
type cursor[T any] struct {
	m      *Matrix[T]
	gen    uint64
	tr     *translator
	lo, hi int
	pos    int
	rev    bool
}

// iterErrorf wraps err with the iterator operation tag.
func iterErrorf(op string, err error) error {
	return fmt.Errorf("iterator.%s: %w", op, err)
}

// newCursor positions a cursor at linear index global of tr inside [lo, hi].
// Forward cursors accept global in [lo, hi]; reverse cursors accept global in
// [lo-1, hi-1] where lo-1 stands for rend.
func newCursor[T any](m *Matrix[T], tr *translator, lo, hi, global int, rev bool) cursor[T] {
	c := cursor[T]{m: m, gen: m.gen, tr: tr, lo: lo, hi: hi, rev: rev}
	if rev {
		c.pos = hi - 1 - global
	} else {
		c.pos = global - lo
	}

	return c
}

// span is the number of dereferenceable positions in scope.
func (c cursor[T]) span() int { return c.hi - c.lo }

// global returns the position in the translator's linear order.
func (c cursor[T]) global() int {
	if c.rev {
		return c.hi - 1 - c.pos
	}

	return c.lo + c.pos
}

// emptyBinding reports whether the cursor is a zero value or was created on a
// matrix with no elements. Such cursors are interchangeable.
func (c cursor[T]) emptyBinding() bool {
	return c.m == nil || c.tr == nil || c.tr.size() == 0
}

// Next moves one step forward, staying at end when already there.
func (c *cursor[T]) Next() { c.Advance(1) }

// Prev moves one step backward, staying at begin when already there.
func (c *cursor[T]) Prev() { c.Advance(-1) }

// Advance moves n steps (n may be negative), saturating at begin and end.
// Zero-value iterators do not move.
func (c *cursor[T]) Advance(n int) {
	if c.m == nil {
		return
	}
	c.pos = saturate(c.pos, n, 0, c.span())
}

// IsEnd reports whether the iterator sits on its end sentinel. Zero-value
// iterators are always at end.
func (c cursor[T]) IsEnd() bool { return c.pos >= c.span() }

// IsBegin reports whether the iterator sits on the first position of its scope.
func (c cursor[T]) IsBegin() bool { return c.pos == 0 }

// Index returns the offset from the beginning of the scope in the iterator's
// own direction; end returns the scope length.
func (c cursor[T]) Index() int { return c.pos }

// Position returns the current cell, or EndPosition at end.
func (c cursor[T]) Position() Position {
	if c.IsEnd() || c.tr == nil {
		return EndPosition
	}
	r, col := c.tr.cell(c.global())

	return Position{Row: r, Col: col}
}

// Row returns the current row, or -1 at end.
func (c cursor[T]) Row() int { return c.Position().Row }

// Col returns the current column, or -1 at end.
func (c cursor[T]) Col() int { return c.Position().Col }

// IsValidWithMatrix reports whether the iterator may be used with m: it is
// bound to m at m's current generation, or it is unbound/empty and m has no
// elements.
func (c cursor[T]) IsValidWithMatrix(m *Matrix[T]) bool {
	if c.m != nil && c.m == m {
		return c.gen == m.gen
	}

	return c.emptyBinding() && m.Len() == 0
}

// check validates the binding before a dereference.
func (c cursor[T]) check(op string) error {
	if c.m == nil {
		return iterErrorf(op, fmt.Errorf("%w: unbound iterator", ErrInvalidIteratorUse))
	}
	if c.gen != c.m.gen {
		return iterErrorf(op, ErrStaleIterator)
	}

	return nil
}

// ptrAt returns the element n steps away from the current position.
// Errors: ErrInvalidIteratorUse for unbound iterators and for targets outside
// [begin, end); ErrStaleIterator after a reshape.
func (c cursor[T]) ptrAt(op string, n int) (*T, error) {
	if err := c.check(op); err != nil {
		return nil, err
	}
	if n < -c.pos || n >= c.span()-c.pos {
		return nil, iterErrorf(op, fmt.Errorf("%w: offset %d outside [begin,end) from %d", ErrInvalidIteratorUse, n, c.pos))
	}
	t := c
	t.pos += n
	r, col := c.tr.cell(t.global())

	return &c.m.st.data[c.m.st.slot(r, col)], nil
}

// Ptr returns a mutable reference to the current element.
func (c cursor[T]) Ptr() (*T, error) { return c.ptrAt("Ptr", 0) }

// Value returns the current element.
func (c cursor[T]) Value() (T, error) {
	p, err := c.ptrAt("Value", 0)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Set overwrites the current element.
func (c cursor[T]) Set(v T) error {
	p, err := c.ptrAt("Set", 0)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// At returns the element n steps away, like it[n].
func (c cursor[T]) At(n int) (T, error) {
	p, err := c.ptrAt("At", n)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// PtrAt returns a mutable reference to the element n steps away.
func (c cursor[T]) PtrAt(n int) (*T, error) { return c.ptrAt("PtrAt", n) }

// distance returns c - o in steps of the iterator's direction.
// Errors: ErrInvalidIteratorUse when the iterators are not related (different
// non-empty matrices, unbound vs non-empty, different translators);
// ErrStaleIterator when either side outlived a reshape.
func (c cursor[T]) distance(op string, o cursor[T]) (int, error) {
	if c.emptyBinding() && o.emptyBinding() {
		return 0, nil
	}
	if c.m == nil || o.m == nil {
		return 0, iterErrorf(op, fmt.Errorf("%w: unbound iterator against a non-empty matrix", ErrInvalidIteratorUse))
	}
	if c.m != o.m {
		return 0, iterErrorf(op, fmt.Errorf("%w: iterators of different matrices", ErrInvalidIteratorUse))
	}
	if c.gen != c.m.gen || o.gen != o.m.gen {
		return 0, iterErrorf(op, ErrStaleIterator)
	}
	if c.tr != o.tr {
		return 0, iterErrorf(op, fmt.Errorf("%w: iterators of different traversals", ErrInvalidIteratorUse))
	}
	if c.rev {
		return o.global() - c.global(), nil
	}

	return c.global() - o.global(), nil
}

// compare returns -1, 0 or +1 ordering c against o in iterator direction.
func (c cursor[T]) compare(op string, o cursor[T]) (int, error) {
	d, err := c.distance(op, o)
	if err != nil {
		return 0, err
	}
	switch {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	default:
		return 0, nil
	}
}

// negate returns -n, saturating math.MinInt to math.MaxInt.
func negate(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}

	return -n
}
