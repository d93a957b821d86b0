package raster

import "github.com/mekoch/rasterline/geom"

// axisCursor is the shared representation for all four axis specializations
// (horizontal/vertical, forward/backward). headPos and tailPos are always
// the inclusive bounds of the remaining run along the varying axis, which
// sidesteps ever needing an exclusive "one past the end" coordinate that
// could overflow T at its extremes.
type axisCursor[T geom.CoordType] struct {
	headPos, tailPos T
	constant         T
	step             int8 // direction PopHead advances headPos: +1 or -1
	vertical         bool // true: varying axis is Y, constant is X
	remaining        uint64
}

// newAxisFromBounds builds an axisCursor directly from an inclusive
// [first, lastIncl] run walked in the given step direction. NewAxisFromBounds
// exports it for clip/kuzmin.go, which computes clipped bounds itself and
// needs to construct the resulting cursor without re-deriving them.
func newAxisFromBounds[T geom.CoordType](constant, first, lastIncl T, step int8, vertical bool) *axisCursor[T] {
	var remaining uint64
	if step > 0 {
		remaining = geom.WidenDiff(lastIncl, first) + 1
	} else {
		remaining = geom.WidenDiff(first, lastIncl) + 1
	}
	return &axisCursor[T]{
		headPos: first, tailPos: lastIncl,
		constant: constant, step: step, vertical: vertical,
		remaining: remaining,
	}
}

// NewAxisFromBounds is the clip package's entry point for building an
// already-clipped axis cursor from inclusive bounds.
func NewAxisFromBounds[T geom.CoordType](constant, first, lastIncl T, step int8, vertical bool) Cursor[T] {
	return newAxisFromBounds(constant, first, lastIncl, step, vertical)
}

func (c *axisCursor[T]) point(v T) geom.Point[T] {
	if c.vertical {
		return geom.Point[T]{X: c.constant, Y: v}
	}
	return geom.Point[T]{X: v, Y: c.constant}
}

func (c *axisCursor[T]) Head() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	return c.point(c.headPos), true
}

func (c *axisCursor[T]) PopHead() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	p := c.point(c.headPos)
	c.remaining--
	if c.remaining > 0 {
		if c.step > 0 {
			c.headPos++
		} else {
			c.headPos--
		}
	}
	return p, true
}

func (c *axisCursor[T]) Tail() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	return c.point(c.tailPos), true
}

func (c *axisCursor[T]) PopTail() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	p := c.point(c.tailPos)
	c.remaining--
	if c.remaining > 0 {
		if c.step > 0 {
			c.tailPos--
		} else {
			c.tailPos++
		}
	}
	return p, true
}

func (c *axisCursor[T]) Len() uint64   { return c.remaining }
func (c *axisCursor[T]) IsEmpty() bool { return c.remaining == 0 }

// lastInclusive converts a half-open [x1, x2) bound pair into the step
// direction and inclusive last coordinate axisCursor needs.
func lastInclusive[T geom.CoordType](first, exclusiveEnd T) (last T, step int8) {
	if exclusiveEnd > first {
		return exclusiveEnd - 1, 1
	}
	return exclusiveEnd + 1, -1
}

// NewAxisX builds a horizontal cursor (y held constant) from x1 toward x2,
// exclusive of x2, in whichever direction x2 implies. It fails iff x1 == x2.
func NewAxisX[T geom.CoordType](y, x1, x2 T) (Cursor[T], bool) {
	if x1 == x2 {
		return nil, false
	}
	last, step := lastInclusive(x1, x2)
	return newAxisFromBounds(y, x1, last, step, false), true
}

// NewAxisXForward requires x2 > x1.
func NewAxisXForward[T geom.CoordType](y, x1, x2 T) (Cursor[T], bool) {
	if x2 <= x1 {
		return nil, false
	}
	return newAxisFromBounds(y, x1, x2-1, 1, false), true
}

// NewAxisXBackward requires x2 < x1.
func NewAxisXBackward[T geom.CoordType](y, x1, x2 T) (Cursor[T], bool) {
	if x2 >= x1 {
		return nil, false
	}
	return newAxisFromBounds(y, x1, x2+1, -1, false), true
}

// NewAxisY builds a vertical cursor (x held constant) from y1 toward y2,
// exclusive of y2. It fails iff y1 == y2.
func NewAxisY[T geom.CoordType](x, y1, y2 T) (Cursor[T], bool) {
	if y1 == y2 {
		return nil, false
	}
	last, step := lastInclusive(y1, y2)
	return newAxisFromBounds(x, y1, last, step, true), true
}

// NewAxisYForward requires y2 > y1.
func NewAxisYForward[T geom.CoordType](x, y1, y2 T) (Cursor[T], bool) {
	if y2 <= y1 {
		return nil, false
	}
	return newAxisFromBounds(x, y1, y2-1, 1, true), true
}

// NewAxisYBackward requires y2 < y1.
func NewAxisYBackward[T geom.CoordType](x, y1, y2 T) (Cursor[T], bool) {
	if y2 >= y1 {
		return nil, false
	}
	return newAxisFromBounds(x, y1, y2+1, -1, true), true
}
