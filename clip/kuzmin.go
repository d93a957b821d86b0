// Package clip implements Kuzmin's integer-exact line clipping against a
// geom.Region, for each of the axis, diagonal and octant rasterizer families
// in raster/. It mirrors agg_go's rasterizer_outline_aa clipping split by
// shape: a cheap interval intersection for axis-aligned and diagonal
// segments, and the full Kuzmin entry/exit derivation (geom.OffsetAt,
// geom.ErrorAt) for the general octant case.
package clip

import (
	"github.com/mekoch/rasterline/geom"
	"github.com/mekoch/rasterline/line"
	"github.com/mekoch/rasterline/raster"
)

// Point reports whether (x, y) lies inside r.
func Point[T geom.CoordType](r geom.Region[T], x, y T) bool {
	return r.ContainsXY(x, y)
}

// PointProj reports the region-relative offset of (x, y), or ok=false if it
// lies outside r.
func PointProj[T geom.CoordType](r geom.Region[T], x, y T) (u, v uint64, ok bool) {
	return r.Project(geom.Pt(x, y))
}

func unclippedLast[T geom.CoordType](first, exclusiveEnd T) (last T, step int8) {
	if exclusiveEnd > first {
		return exclusiveEnd - 1, 1
	}
	return exclusiveEnd + 1, -1
}

// clipRange1D intersects the inclusive run from p0 toward p1 (stepping by
// step, +1 or -1) with the inclusive bound [lo, hi]. ok is false if the
// intersection is empty.
func clipRange1D[T geom.CoordType](p0, p1 T, step int8, lo, hi T) (cp0, cp1 T, ok bool) {
	loBound, hiBound := p0, p1
	if step < 0 {
		loBound, hiBound = p1, p0
	}
	if loBound < lo {
		loBound = lo
	}
	if hiBound > hi {
		hiBound = hi
	}
	if loBound > hiBound {
		return cp0, cp1, false
	}
	if step > 0 {
		return loBound, hiBound, true
	}
	return hiBound, loBound, true
}

// LineAxis clips a horizontal or vertical segment. ok is false if the
// endpoints are not axis-shaped, or if the clipped result is empty.
func LineAxis[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[T], bool) {
	switch {
	case x1 == x2 && y1 != y2:
		if x1 < r.Xmin || x1 > r.Xmax {
			return nil, false
		}
		last, step := unclippedLast(y1, y2)
		cf, cl, ok := clipRange1D(y1, last, step, r.Ymin, r.Ymax)
		if !ok {
			return nil, false
		}
		return raster.NewAxisFromBounds[T](x1, cf, cl, step, true), true
	case y1 == y2 && x1 != x2:
		if y1 < r.Ymin || y1 > r.Ymax {
			return nil, false
		}
		last, step := unclippedLast(x1, x2)
		cf, cl, ok := clipRange1D(x1, last, step, r.Xmin, r.Xmax)
		if !ok {
			return nil, false
		}
		return raster.NewAxisFromBounds[T](y1, cf, cl, step, false), true
	default:
		return nil, false
	}
}

func axisOffset[T geom.CoordType](from, to T, sign int8) uint64 {
	if sign > 0 {
		return geom.WidenDiff(to, from)
	}
	return geom.WidenDiff(from, to)
}

// LineDiagonal clips a |Δx|=|Δy| segment by intersecting the x-axis and
// y-axis clip ranges and converting each back to an offset along the
// segment (its single free parameter t), per spec §4.4.
func LineDiagonal[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[T], bool) {
	sx, sy, ok := raster.ClassifyDiagonal(x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	lastX, lastY := raster.DiagonalLastBounds(x1, y1, x2, y2, sx, sy)

	cfx, clx, ok := clipRange1D(x1, lastX, sx, r.Xmin, r.Xmax)
	if !ok {
		return nil, false
	}
	cfy, cly, ok := clipRange1D(y1, lastY, sy, r.Ymin, r.Ymax)
	if !ok {
		return nil, false
	}

	tHeadX, tTailX := axisOffset(x1, cfx, sx), axisOffset(x1, clx, sx)
	tHeadY, tTailY := axisOffset(y1, cfy, sy), axisOffset(y1, cly, sy)

	tHead := tHeadX
	if tHeadY > tHead {
		tHead = tHeadY
	}
	tTail := tTailX
	if tTailY < tTail {
		tTail = tTailY
	}
	if tHead > tTail {
		return nil, false
	}

	headX, headY := stepBy(x1, sx, tHead), stepBy(y1, sy, tHead)
	tailX, tailY := stepBy(x1, sx, tTail), stepBy(y1, sy, tTail)
	return raster.NewDiagonalFromBounds[T](headX, headY, tailX, tailY, sx, sy), true
}

func stepBy[T geom.CoordType](v T, sign int8, count uint64) T {
	if sign > 0 {
		return v + T(count)
	}
	return v - T(count)
}

// LineOctant clips a general segment via Kuzmin's method: the entry pixel
// is the lexicographically-greatest candidate among the unclipped start and
// the region's near-edge crossings, the exit pixel the least candidate past
// the region's far edges, and the seed error is recovered from the
// unclipped origin via geom.ErrorAt, per spec §4.7.
//
// Rather than reducing to the canonical (sx=+1,sy=+1) octant by reflection,
// this carries the actual signs straight through the clamp arithmetic: the
// major axis offset range is bounded by a closed-form clamp (the major
// coordinate is linear in t), and the minor axis offset range is bounded by
// inverting geom.OffsetAt's monotonic t -> minor-offset function via
// bisection. Both bounds are then intersected with the segment's own
// [0, major) extent. Every comparison and subtraction here operates on T
// directly or goes through geom.WidenDiff, never through a narrowing cast to
// int64 -- T's own ordering is already correct for every supported width
// (including uint64/uintptr above math.MaxInt64), and WidenDiff is what
// keeps a "negative" difference from being computed in T itself.
func LineOctant[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[T], bool) {
	_, sx, sy, majorIsX, major, minor, ok := raster.Classify(x1, y1, x2, y2)
	if !ok {
		return nil, false
	}

	if maxT(x1, x2) < r.Xmin || minT(x1, x2) > r.Xmax || maxT(y1, y2) < r.Ymin || minT(y1, y2) > r.Ymax {
		return nil, false
	}

	tHead, tTail := uint64(0), major-1
	var ok2 bool
	if majorIsX {
		tHead, tTail, ok2 = clampMajorOwnAxis(x1, sx, major, r.Xmin, r.Xmax)
		if !ok2 {
			return nil, false
		}
		lo, hi, ok3 := clampMinorBand[T](y1, sy, major, minor, r.Ymin, r.Ymax)
		if !ok3 {
			return nil, false
		}
		tHead, tTail = tighten(tHead, tTail, lo, hi)
	} else {
		tHead, tTail, ok2 = clampMajorOwnAxis(y1, sy, major, r.Ymin, r.Ymax)
		if !ok2 {
			return nil, false
		}
		lo, hi, ok3 := clampMinorBand[T](x1, sx, major, minor, r.Xmin, r.Xmax)
		if !ok3 {
			return nil, false
		}
		tHead, tTail = tighten(tHead, tTail, lo, hi)
	}
	if tHead > tTail {
		return nil, false
	}

	minorAtHead := geom.OffsetAt[T](major, minor, tHead)
	minorAtTail := geom.OffsetAt[T](major, minor, tTail)

	var headX, headY, tailX, tailY T
	if majorIsX {
		headX, headY = stepBy(x1, sx, tHead), stepBy(y1, sy, minorAtHead)
		tailX, tailY = stepBy(x1, sx, tTail), stepBy(y1, sy, minorAtTail)
	} else {
		headY, headX = stepBy(y1, sy, tHead), stepBy(x1, sx, minorAtHead)
		tailY, tailX = stepBy(y1, sy, tTail), stepBy(x1, sx, minorAtTail)
	}

	eHead := geom.ErrorAt[T](major, minor, tHead+1, minorAtHead)
	eTail := geom.ReverseErrorAt[T](major, minor, tTail, minorAtTail)
	length := tTail - tHead + 1

	return raster.NewOctantClipped[T](headX, headY, tailX, tailY, sx, sy, majorIsX, major, minor, eHead, eTail, length), true
}

func maxT[T geom.CoordType](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minT[T geom.CoordType](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// boundedLowerOffset returns max(0, target-floor) as a width-safe uint64,
// given T-native floor and target. It never subtracts within T itself (which
// would overflow whenever target < floor), instead routing the case that
// actually needs a magnitude through geom.WidenDiff.
func boundedLowerOffset[T geom.CoordType](floor, target T) uint64 {
	if target > floor {
		return geom.WidenDiff(target, floor)
	}
	return 0
}

// boundedUpperOffset returns target-ceilingRef as a width-safe uint64,
// together with ok=false if target < ceilingRef (no non-negative offset
// exists). Like boundedLowerOffset, the subtraction only ever happens once
// target >= ceilingRef is known, so geom.WidenDiff's precondition holds.
func boundedUpperOffset[T geom.CoordType](ceilingRef, target T) (off uint64, ok bool) {
	if target < ceilingRef {
		return 0, false
	}
	return geom.WidenDiff(target, ceilingRef), true
}

// clampMajorOwnAxis bounds the major-axis offset range t such that
// start+sign*t stays within [lo, hi], intersected with [0, extent). start,
// lo and hi are compared and subtracted natively in T (T's own ordering is
// already correct for every supported width, including uint64/uintptr past
// math.MaxInt64) or through geom.WidenDiff -- never through a cast to int64,
// which would reinterpret a large unsigned value as negative and silently
// invert these comparisons.
func clampMajorOwnAxis[T geom.CoordType](start T, sign int8, extent uint64, lo, hi T) (tLo, tHi uint64, ok bool) {
	var rawHi uint64
	if sign > 0 {
		tLo = boundedLowerOffset(start, lo)
		rawHi, ok = boundedUpperOffset(start, hi)
	} else {
		tLo = boundedLowerOffset(hi, start)
		rawHi, ok = boundedUpperOffset(lo, start)
	}
	if !ok {
		return 0, 0, false
	}
	maxOff := extent - 1
	if rawHi > maxOff {
		rawHi = maxOff
	}
	if tLo > rawHi {
		return 0, 0, false
	}
	return tLo, rawHi, true
}

// clampMinorBand bounds the major-axis offset range t such that the minor
// coordinate start+sign*OffsetAt(major,minor,t) stays within [lo, hi], by
// first bounding the achievable OffsetAt band (natively in T / via
// geom.WidenDiff, same rationale as clampMajorOwnAxis) and then inverting
// that band through geom.OffsetAt's monotonic t -> minor-offset function.
func clampMinorBand[T geom.CoordType](start T, sign int8, major, minor uint64, lo, hi T) (tLo, tHi uint64, ok bool) {
	var minOff, maxOff uint64
	if sign > 0 {
		minOff = boundedLowerOffset(start, lo)
		maxOff, ok = boundedUpperOffset(start, hi)
	} else {
		minOff = boundedLowerOffset(hi, start)
		maxOff, ok = boundedUpperOffset(lo, start)
	}
	if !ok {
		return 0, 0, false
	}
	if maxOff > minor {
		maxOff = minor
	}
	if minOff > maxOff {
		return 0, 0, false
	}
	tLo = invertOffsetLowerBound[T](major, minor, minOff, 0, major-1)
	if geom.OffsetAt[T](major, minor, tLo) < minOff {
		return 0, 0, false
	}
	tHi = invertOffsetUpperBound[T](major, minor, maxOff, 0, major-1)
	if tLo > tHi {
		return 0, 0, false
	}
	return tLo, tHi, true
}

func invertOffsetLowerBound[T geom.CoordType](major, minor, minOff, lo, hi uint64) uint64 {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if geom.OffsetAt[T](major, minor, mid) >= minOff {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func invertOffsetUpperBound[T geom.CoordType](major, minor, maxOff, lo, hi uint64) uint64 {
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if geom.OffsetAt[T](major, minor, mid) <= maxOff {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func tighten(head, tail, lo, hi uint64) (uint64, uint64) {
	if lo > head {
		head = lo
	}
	if hi < tail {
		tail = hi
	}
	return head, tail
}

// Line dispatches to LineAxis, LineDiagonal or LineOctant according to the
// segment's classification, mirroring line.New's unclipped dispatch.
func Line[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[T], bool) {
	switch line.Classify(x1, y1, x2, y2).Orientation {
	case line.OrientationEmpty:
		return nil, false
	case line.OrientationAxis:
		return LineAxis(r, x1, y1, x2, y2)
	case line.OrientationDiagonal:
		return LineDiagonal(r, x1, y1, x2, y2)
	default:
		return LineOctant(r, x1, y1, x2, y2)
	}
}
