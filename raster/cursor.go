// Package raster implements the unclipped rasterizer shapes: axis-aligned,
// diagonal and general-octant Bresenham cursors, plus the Cursor protocol
// they all share. It is the direct descendant of agg_go's
// internal/primitives line/ellipse Bresenham interpolators, generalized from
// a single fixed coordinate type to any geom.CoordType and extended with
// double-ended (head/tail) iteration and exact clipped construction.
package raster

import "github.com/mekoch/rasterline/geom"

// Cursor is a stateful handle over the pixels of a half-open line segment.
// It never yields the segment's original end pixel, only ever yields a
// pixel once across interleaved Head/Tail pops, and Len is always exact.
// Cursors are value types: they own no heap memory beyond their own fields
// and borrow nothing from the Region that may have clipped them.
type Cursor[T geom.CoordType] interface {
	// Head returns the next pixel a PopHead call would yield, without
	// consuming it. ok is false once the cursor is empty.
	Head() (p geom.Point[T], ok bool)
	// PopHead yields and consumes the next pixel in original-segment order.
	PopHead() (p geom.Point[T], ok bool)
	// Tail returns the last remaining pixel without consuming it.
	Tail() (p geom.Point[T], ok bool)
	// PopTail yields and consumes the last remaining pixel, in reverse
	// order relative to PopHead.
	PopTail() (p geom.Point[T], ok bool)
	// Len reports the exact number of pixels not yet popped.
	Len() uint64
	// IsEmpty reports Len() == 0.
	IsEmpty() bool
}

// emptyCursor is the Cursor for a coincident-endpoint (Empty-kind) segment,
// and the trivially-exhausted state every other cursor collapses to once
// head and tail meet.
type emptyCursor[T geom.CoordType] struct{}

// Empty returns the always-exhausted Cursor used for coincident endpoints
// and for "fully outside" clip results that callers choose to represent as
// an empty cursor rather than a (Cursor, false) pair.
func Empty[T geom.CoordType]() Cursor[T] { return emptyCursor[T]{} }

func (emptyCursor[T]) Head() (geom.Point[T], bool)    { return geom.Point[T]{}, false }
func (emptyCursor[T]) PopHead() (geom.Point[T], bool) { return geom.Point[T]{}, false }
func (emptyCursor[T]) Tail() (geom.Point[T], bool)    { return geom.Point[T]{}, false }
func (emptyCursor[T]) PopTail() (geom.Point[T], bool) { return geom.Point[T]{}, false }
func (emptyCursor[T]) Len() uint64                    { return 0 }
func (emptyCursor[T]) IsEmpty() bool                  { return true }
