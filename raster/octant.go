package raster

import "github.com/mekoch/rasterline/geom"

// octantTable maps each of the eight octant indices to its step signs and
// whether its major axis is x. Index layout follows the sign of (dx,dy) and
// then whether |dx|>|dy|, matching the spec's octant_index encoding:
//
//	0: sx=+1 sy=+1 majorX   1: sx=+1 sy=+1 majorY
//	2: sx=-1 sy=+1 majorY   3: sx=-1 sy=+1 majorX
//	4: sx=-1 sy=-1 majorX   5: sx=-1 sy=-1 majorY
//	6: sx=+1 sy=-1 majorY   7: sx=+1 sy=-1 majorX
var octantTable = [8]struct {
	SX, SY   int8
	MajorIsX bool
}{
	{1, 1, true},
	{1, 1, false},
	{-1, 1, false},
	{-1, 1, true},
	{-1, -1, true},
	{-1, -1, false},
	{1, -1, false},
	{1, -1, true},
}

// OctantIndex returns the table index for the given step signs and major
// axis, or -1 if no octant matches (which cannot happen for any (sx,sy) in
// {-1,+1}^2 and any bool, but is checked defensively since this is also used
// to validate a caller-supplied index).
func OctantIndex(sx, sy int8, majorIsX bool) int {
	for i, o := range octantTable {
		if o.SX == sx && o.SY == sy && o.MajorIsX == majorIsX {
			return i
		}
	}
	return -1
}

// Classify determines the octant of a general (non-axis, non-diagonal)
// segment. ok is false for axis-aligned or diagonal inputs, which belong to
// the other two rasterizer families instead.
func Classify[T geom.CoordType](x1, y1, x2, y2 T) (idx int, sx, sy int8, majorIsX bool, major, minor uint64, ok bool) {
	dx, sx := geom.Delta(x1, x2)
	dy, sy := geom.Delta(y1, y2)
	if dx == 0 || dy == 0 || dx == dy {
		return 0, 0, 0, false, 0, 0, false
	}
	if dx > dy {
		major, minor, majorIsX = dx, dy, true
	} else {
		major, minor, majorIsX = dy, dx, false
	}
	idx = OctantIndex(sx, sy, majorIsX)
	return idx, sx, sy, majorIsX, major, minor, true
}

// ClassifyUniform is Classify without the axis/diagonal exclusion: it
// accepts any non-coincident segment, including those with dx==0, dy==0 or
// dx==dy, by treating them as degenerate octants (minor==0 or minor==major).
// The midpoint formulas in geom.OffsetAt/ErrorAt are valid at both
// degeneracies (a zero minor delta never advances the minor axis; an equal
// minor delta advances it every step), so newOctantCursor needs no special
// casing to walk them. This is what line.New falls back to when
// config.Options.EnableFastPaths is off, to cross-check the specialized
// axis/diagonal cursors against the single general derivation in tests.
func ClassifyUniform[T geom.CoordType](x1, y1, x2, y2 T) (sx, sy int8, majorIsX bool, major, minor uint64, ok bool) {
	dx, sx := geom.Delta(x1, x2)
	dy, sy := geom.Delta(y1, y2)
	if dx == 0 && dy == 0 {
		return 0, 0, false, 0, 0, false
	}
	if dx >= dy {
		major, minor, majorIsX = dx, dy, true
	} else {
		major, minor, majorIsX = dy, dx, false
	}
	return sx, sy, majorIsX, major, minor, true
}

// NewUniform builds an octant-style cursor for any non-coincident segment,
// including axis-aligned and diagonal ones, via the single general midpoint
// derivation (see ClassifyUniform).
func NewUniform[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	sx, sy, majorIsX, major, minor, ok := ClassifyUniform(x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	return newOctantCursor(x1, y1, sx, sy, majorIsX, major, minor), true
}

// octantCursor implements the general Bresenham midpoint algorithm. It
// tracks two fully independent walkers sharing one remaining-pixel count:
// a forward one seeded at the segment's first pixel with the standard
// e0 = 2*minor-major, and a backward one seeded at the segment's last pixel
// with geom.ReverseErrorAt and stepping with negated signs. This mirrors
// agg_go's line_bresenham_interpolator's single-direction stepping rule,
// run twice from each end; the ReverseErrorAt seed is what makes the
// backward walker retrace the forward walker's pixels in reverse.
type octantCursor[T geom.CoordType] struct {
	headX, headY T
	tailX, tailY T
	sx, sy       int8 // forward step signs; tail steps with the negation
	majorIsX     bool
	major, minor int64
	eHead, eTail int64
	remaining    uint64
}

func step[T geom.CoordType](x, y *T, sx, sy int8, majorIsX bool, major, minor int64, e *int64) {
	if majorIsX {
		if sx > 0 {
			*x++
		} else {
			*x--
		}
		if *e >= 0 {
			if sy > 0 {
				*y++
			} else {
				*y--
			}
			*e += 2 * (minor - major)
		} else {
			*e += 2 * minor
		}
		return
	}
	if sy > 0 {
		*y++
	} else {
		*y--
	}
	if *e >= 0 {
		if sx > 0 {
			*x++
		} else {
			*x--
		}
		*e += 2 * (minor - major)
	} else {
		*e += 2 * minor
	}
}

func newOctantCursor[T geom.CoordType](x1, y1 T, sx, sy int8, majorIsX bool, major, minor uint64) *octantCursor[T] {
	lastT := major - 1
	minorOffset := geom.OffsetAt[T](major, minor, lastT)

	var tailX, tailY T
	if majorIsX {
		tailX = stepBy(x1, sx, lastT)
		tailY = stepBy(y1, sy, minorOffset)
	} else {
		tailY = stepBy(y1, sy, lastT)
		tailX = stepBy(x1, sx, minorOffset)
	}

	e0 := int64(2*minor) - int64(major)
	return &octantCursor[T]{
		headX: x1, headY: y1,
		tailX: tailX, tailY: tailY,
		sx: sx, sy: sy, majorIsX: majorIsX,
		major: int64(major), minor: int64(minor),
		eHead: e0, eTail: geom.ReverseErrorAt[T](major, minor, lastT, minorOffset),
		remaining: major,
	}
}

// stepBy advances v by sign*count, where count is a non-negative magnitude
// known (by construction, from Classify) to keep the result within T's
// domain, since it never exceeds the original segment's own extent.
func stepBy[T geom.CoordType](v T, sign int8, count uint64) T {
	if sign > 0 {
		return v + T(count)
	}
	return v - T(count)
}

// NewOctant builds the general octant cursor, valid for any segment that is
// neither axis-aligned nor diagonal. It always succeeds for such segments;
// it fails (returns ok=false) only when the shape precondition isn't met.
func NewOctant[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	_, sx, sy, majorIsX, major, minor, ok := Classify(x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	return newOctantCursor(x1, y1, sx, sy, majorIsX, major, minor), true
}

func newOctantSpecialization[T geom.CoordType](x1, y1, x2, y2 T, want int) (Cursor[T], bool) {
	idx, sx, sy, majorIsX, major, minor, ok := Classify(x1, y1, x2, y2)
	if !ok || idx != want {
		return nil, false
	}
	return newOctantCursor(x1, y1, sx, sy, majorIsX, major, minor), true
}

// NewOctant0 through NewOctant7 each require the segment to classify into
// exactly the named octant (see octantTable above).
func NewOctant0[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 0)
}
func NewOctant1[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 1)
}
func NewOctant2[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 2)
}
func NewOctant3[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 3)
}
func NewOctant4[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 4)
}
func NewOctant5[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 5)
}
func NewOctant6[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 6)
}
func NewOctant7[T geom.CoordType](x1, y1, x2, y2 T) (Cursor[T], bool) {
	return newOctantSpecialization[T](x1, y1, x2, y2, 7)
}

// NewOctantClipped builds a cursor directly from already-clipped entry/exit
// pixels and a seed error, as derived by clip/kuzmin.go. headX/headY is the
// clipped entry pixel, tailX/tailY the clipped exit (last included) pixel,
// and eHead/eTail their respective seed errors (computed independently by
// the caller via geom.ErrorAt and geom.ReverseErrorAt, since the clipped
// tail is not in general the unclipped segment's own last pixel).
func NewOctantClipped[T geom.CoordType](headX, headY, tailX, tailY T, sx, sy int8, majorIsX bool, major, minor uint64, eHead, eTail int64, length uint64) Cursor[T] {
	return &octantCursor[T]{
		headX: headX, headY: headY,
		tailX: tailX, tailY: tailY,
		sx: sx, sy: sy, majorIsX: majorIsX,
		major: int64(major), minor: int64(minor),
		eHead: eHead, eTail: eTail,
		remaining: length,
	}
}

func (c *octantCursor[T]) Head() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	return geom.Point[T]{X: c.headX, Y: c.headY}, true
}

func (c *octantCursor[T]) PopHead() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	p := geom.Point[T]{X: c.headX, Y: c.headY}
	c.remaining--
	if c.remaining > 0 {
		step(&c.headX, &c.headY, c.sx, c.sy, c.majorIsX, c.major, c.minor, &c.eHead)
	}
	return p, true
}

func (c *octantCursor[T]) Tail() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	return geom.Point[T]{X: c.tailX, Y: c.tailY}, true
}

func (c *octantCursor[T]) PopTail() (geom.Point[T], bool) {
	if c.remaining == 0 {
		return geom.Point[T]{}, false
	}
	p := geom.Point[T]{X: c.tailX, Y: c.tailY}
	c.remaining--
	if c.remaining > 0 {
		step(&c.tailX, &c.tailY, -c.sx, -c.sy, c.majorIsX, c.major, c.minor, &c.eTail)
	}
	return p, true
}

func (c *octantCursor[T]) Len() uint64   { return c.remaining }
func (c *octantCursor[T]) IsEmpty() bool { return c.remaining == 0 }
