package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion is wrapped by every Region constructor that rejects an
// empty or inverted rectangle. Construction-time rejection is the only
// failure mode a Region has; once built it is immutable and every method on
// it is total.
var ErrInvalidRegion = errors.New("geom: invalid region")

// Region is an inclusive axis-aligned rectangle on the T grid. A Region
// built by NewClip/NewClipFromSize always has Xmin=Ymin=0 (a Clip); one built
// by NewViewport/NewViewportFromSize may have an arbitrary minimum corner (a
// Viewport). The spec this package implements treats a Clip as "semantically
// a Viewport whose minimum corner is zero", so this type does not carry a
// separate tag for the two -- callers that care can compare Xmin/Ymin to the
// zero value of T.
type Region[T CoordType] struct {
	Xmin, Ymin, Xmax, Ymax T
}

// NewViewport builds a Region from an explicit min/max corner pair. It fails
// if the corners are inverted on either axis.
func NewViewport[T CoordType](xmin, ymin, xmax, ymax T) (Region[T], error) {
	if xmin > xmax || ymin > ymax {
		return Region[T]{}, fmt.Errorf("%w: min corner (%v,%v) exceeds max corner (%v,%v)",
			ErrInvalidRegion, xmin, ymin, xmax, ymax)
	}
	return Region[T]{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax}, nil
}

// NewViewportFromSize builds a Region from a minimum corner and a size. It
// fails if either dimension is zero, or if the resulting max corner would
// overflow T.
func NewViewportFromSize[T CoordType](xmin, ymin, w, h T) (Region[T], error) {
	var zero T
	if w == zero || h == zero {
		return Region[T]{}, fmt.Errorf("%w: zero size %vx%v", ErrInvalidRegion, w, h)
	}
	xmax := xmin + (w - 1)
	ymax := ymin + (h - 1)
	if xmax < xmin || ymax < ymin {
		return Region[T]{}, fmt.Errorf("%w: size %vx%v at origin (%v,%v) overflows the coordinate type",
			ErrInvalidRegion, w, h, xmin, ymin)
	}
	return Region[T]{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax}, nil
}

// NewClip builds a zero-origin Region from a max corner. For signed T it
// fails if either argument is negative; for unsigned T this check is
// trivially satisfied.
func NewClip[T CoordType](xmax, ymax T) (Region[T], error) {
	var zero T
	if xmax < zero || ymax < zero {
		return Region[T]{}, fmt.Errorf("%w: negative extent (%v,%v)", ErrInvalidRegion, xmax, ymax)
	}
	return Region[T]{Xmax: xmax, Ymax: ymax}, nil
}

// NewClipFromSize builds a zero-origin Region from a width and height. It
// fails if either dimension is zero.
func NewClipFromSize[T CoordType](w, h T) (Region[T], error) {
	var zero T
	return NewViewportFromSize[T](zero, zero, w, h)
}

// Contains reports whether p lies within the inclusive bounds of r.
func (r Region[T]) Contains(p Point[T]) bool {
	return p.X >= r.Xmin && p.X <= r.Xmax && p.Y >= r.Ymin && p.Y <= r.Ymax
}

// ContainsXY is the coordinate-pair form of Contains.
func (r Region[T]) ContainsXY(x, y T) bool {
	return x >= r.Xmin && x <= r.Xmax && y >= r.Ymin && y <= r.Ymax
}

// Project maps a point known to lie inside r to a zero-based, non-negative
// offset pair (x-Xmin, y-Ymin). ok is false if p is not inside r. The offset
// pair is returned as uint64 rather than "the unsigned counterpart of T",
// since Go generics have no type-level function computing that type from T;
// uint64 is wide enough to hold the offset for every supported T, which is
// what every caller of a *_proj entry point actually needs (a buffer index).
func (r Region[T]) Project(p Point[T]) (x, y uint64, ok bool) {
	if !r.Contains(p) {
		return 0, 0, false
	}
	return WidenDiff(p.X, r.Xmin), WidenDiff(p.Y, r.Ymin), true
}

// Width returns the number of columns the region spans.
func (r Region[T]) Width() uint64 { return WidenDiff(r.Xmax, r.Xmin) + 1 }

// Height returns the number of rows the region spans.
func (r Region[T]) Height() uint64 { return WidenDiff(r.Ymax, r.Ymin) + 1 }
