package raster

import "github.com/mekoch/rasterline/geom"

// diagonalCursor walks x and y together, one step each per advance. Like
// axisCursor it stores inclusive head/tail bounds on one axis (x) to avoid
// ever materializing an exclusive end that could overflow T.
type diagonalCursor[T geom.CoordType] struct {
	headX, headY T
	tailX, tailY T
	sx, sy       int8
	remaining    uint64
}

func newDiagonalCursor[T geom.CoordType](firstX, firstY, lastX, lastY T, sx, sy int8) *diagonalCursor[T] {
	var remaining uint64
	if sx > 0 {
		remaining = geom.WidenDiff(lastX, firstX) + 1
	} else {
		remaining = geom.WidenDiff(firstX, lastX) + 1
	}
	return &diagonalCursor[T]{
		headX: firstX, headY: firstY,
		tailX: lastX, tailY: lastY,
		sx: sx, sy: sy, remaining: remaining,
	}
}

// NewDiagonalFromBounds builds a clipped diagonal cursor from its inclusive
// first and last pixels; used by clip/kuzmin.go.
func NewDiagonalFromBounds[T geom.CoordType](firstX, firstY, lastX, lastY T, sx, sy int8) Cursor[T] {
	return newDiagonalCursor(firstX, firstY, lastX, lastY, sx, sy)
}

func (c *diagonalCursor[T]) Head() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	return geom.Point[T]{X: c.headX, Y: c.headY}, true
}

func (c *diagonalCursor[T]) PopHead() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	p := geom.Point[T]{X: c.headX, Y: c.headY}
	c.remaining--
	if c.remaining > 0 {
		if c.sx > 0 {
			c.headX++
		} else {
			c.headX--
		}
		if c.sy > 0 {
			c.headY++
		} else {
			c.headY--
		}
	}
	return p, true
}

func (c *diagonalCursor[T]) Tail() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	return geom.Point[T]{X: c.tailX, Y: c.tailY}, true
}

func (c *diagonalCursor[T]) PopTail() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	p := geom.Point[T]{X: c.tailX, Y: c.tailY}
	c.remaining--
	if c.remaining > 0 {
		if c.sx > 0 {
			c.tailX--
		} else {
			c.tailX++
		}
		if c.sy > 0 {
			c.tailY--
		} else {
			c.tailY++
		}
	}
	return p, true
}

func (c *diagonalCursor[T]) Len() uint64   { return c.remaining }
func (c *diagonalCursor[T]) IsEmpty() bool { return c.remaining == 0 }

// ClassifyDiagonal reports the quadrant signs for a diagonal (|dx|=|dy|!=0)
// segment, and false if the segment isn't diagonal. Exported for
// clip/kuzmin.go, which needs the signs to derive t-range clipping.
func ClassifyDiagonal[T geom.CoordType](x1, y1, x2, y2 T) (sx, sy int8, ok bool) {
	dx, sx := geom.Delta(x1, x2)
	dy, sy := geom.Delta(y1, y2)
	if dx == 0 || dx != dy {
		return 0, 0, false
	}
	return sx, sy, true
}

// DiagonalLastBounds converts a half-open diagonal segment's exclusive end
// into its inclusive last pixel.
func DiagonalLastBounds[T geom.CoordType](x1, y1, x2, y2 T, sx, sy int8) (lastX, lastY T) {
	if sx > 0 {
		lastX = x2 - 1
	} else {
		lastX = x2 + 1
	}
	if sy > 0 {
		lastY = y2 - 1
	} else {
		lastY = y2 + 1
	}
	return lastX, lastY
}

// NewDiagonal builds the general diagonal cursor, valid in any of the four
// quadrants. It fails unless |x2-x1| == |y2-y1| != 0.
func NewDiagonal[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	sx, sy, ok := ClassifyDiagonal(x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	lastX, lastY := DiagonalLastBounds(x1, y1, x2, y2, sx, sy)
	return newDiagonalCursor(x1, y1, lastX, lastY, sx, sy), true
}

func newDiagonalSpecialization[T geom.CoordType](x1, y1, x2, y2 T, wantSX, wantSY int8) (Cursor[T], bool) {
	sx, sy, ok := ClassifyDiagonal(x1, y1, x2, y2)
	if !ok || sx != wantSX || sy != wantSY {
		return nil, false
	}
	lastX, lastY := DiagonalLastBounds(x1, y1, x2, y2, sx, sy)
	return newDiagonalCursor(x1, y1, lastX, lastY, sx, sy), true
}

// NewDiagonal0 requires the +x/+y quadrant (x2 > x1, y2 > y1).
func NewDiagonal0[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newDiagonalSpecialization(x1, y1, x2, y2, 1, 1)
}

// NewDiagonal1 requires the -x/+y quadrant (x2 < x1, y2 > y1).
func NewDiagonal1[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newDiagonalSpecialization(x1, y1, x2, y2, -1, 1)
}

// NewDiagonal2 requires the -x/-y quadrant (x2 < x1, y2 < y1).
func NewDiagonal2[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newDiagonalSpecialization(x1, y1, x2, y2, -1, -1)
}

// NewDiagonal3 requires the +x/-y quadrant (x2 > x1, y2 < y1).
func NewDiagonal3[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newDiagonalSpecialization(x1, y1, x2, y2, 1, -1)
}
