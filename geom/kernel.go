package geom

import (
	"math/big"

	"github.com/mekoch/rasterline/config"
)

// FloorDiv performs Euclidean (floor) division of a by b: the result always
// rounds toward negative infinity, unlike Go's native "/" which truncates
// toward zero. b must be positive; every caller in this library divides by
// 2*major, which is always positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorDivBig(a, b *big.Int) *big.Int {
	q, m := new(big.Int), new(big.Int)
	// big.Int.DivMod implements Euclidean division: the remainder is always
	// in [0, |b|). With a strictly positive divisor that is exactly floor
	// division, so no adjustment is needed here the way FloorDiv needs one.
	q.DivMod(a, b, m)
	return q
}

// wantsWide picks the math/big path: for 64-bit T when Enable64BitOctant is
// on, and for narrower T whenever major reaches 2^31, where the int64
// products of the fast path could overflow.
func wantsWide[T CoordType](major uint64) bool {
	if is64Wide[T]() {
		return config.Get().Enable64BitOctant
	}
	return major >= 1<<31
}

// OffsetAt returns the minor-axis offset (0-based, measured from the
// segment's start) at major-axis offset t, for a canonical octant with the
// given major/minor deltas (major >= minor >= 0, major > 0). This is
// Kuzmin's y_at(x) formula generalized so either axis can play "major":
// for a y-major segment callers pass the y delta as major, the x delta as
// minor, and a y offset as t, and get back an x offset.
//
//	OffsetAt(major, minor, t) = floor((2*minor*t - major) / (2*major)) + 1
//
// The result is monotonically non-decreasing in t and always lies in
// [0, minor], which is what lets clip/kuzmin.go treat it as an invertible
// boundary the same way it treats the linear major-axis constraint.
func OffsetAt[T CoordType](major, minor, t uint64) uint64 {
	if wantsWide[T](major) {
		return offsetAtWide(major, minor, t)
	}
	return offsetAtFast(major, minor, t)
}

func offsetAtFast(major, minor, t uint64) uint64 {
	num := 2*int64(minor)*int64(t) - int64(major)
	den := 2 * int64(major)
	return uint64(FloorDiv(num, den) + 1)
}

func offsetAtWide(major, minor, t uint64) uint64 {
	num := new(big.Int).Mul(big.NewInt(2), new(big.Int).SetUint64(minor))
	num.Mul(num, new(big.Int).SetUint64(t))
	num.Sub(num, new(big.Int).SetUint64(major))
	den := new(big.Int).Mul(big.NewInt(2), new(big.Int).SetUint64(major))
	q := floorDivBig(num, den)
	q.Add(q, big.NewInt(1))
	return q.Uint64()
}

// ErrorAt returns the Bresenham decision error the canonical forward octant
// algorithm (major >= minor >= 0, step +1/+1) holds while at the pixel at
// major-axis offset dMajor-1, given that pixel's minor-axis offset dMinor --
// i.e. the value the step loop's "e >= 0" test consults to decide the
// transition out of that pixel. A clipped cursor
// entering at major-axis offset t (minor-axis offset OffsetAt(major,minor,t))
// is seeded with dMajor = t+1, dMinor = that same minor offset:
//
//	e' = 2*minor*dMajor - 2*major*dMinor - major
func ErrorAt[T CoordType](major, minor, dMajor, dMinor uint64) int64 {
	if wantsWide[T](major) {
		return errorAtWide(major, minor, dMajor, dMinor)
	}
	return errorAtFast(major, minor, dMajor, dMinor)
}

func errorAtFast(major, minor, dMajor, dMinor uint64) int64 {
	return 2*int64(minor)*int64(dMajor) - 2*int64(major)*int64(dMinor) - int64(major)
}

func errorAtWide(major, minor, dMajor, dMinor uint64) int64 {
	t1 := new(big.Int).Mul(big.NewInt(2), new(big.Int).SetUint64(minor))
	t1.Mul(t1, new(big.Int).SetUint64(dMajor))
	t2 := new(big.Int).Mul(big.NewInt(2), new(big.Int).SetUint64(major))
	t2.Mul(t2, new(big.Int).SetUint64(dMinor))
	t1.Sub(t1, t2)
	t1.Sub(t1, new(big.Int).SetUint64(major))
	return t1.Int64()
}

// ReverseErrorAt returns the error a backward-walking octant cursor must be
// seeded with to retrace, via the same major/minor step rule with negated
// signs, the pixels leading back from the pixel at major-axis offset dMajor,
// minor-axis offset dMinor (both counted from the segment's head). The
// backward walk steps the minor axis exactly where the forward walk did, so
// the same "e >= 0" rule applies: e'' >= 0 holds iff the forward walk
// reached (dMajor, dMinor) with a minor-axis step.
//
//	e'' = 2*major*dMinor - 2*minor*(dMajor-1) - major - 1
func ReverseErrorAt[T CoordType](major, minor, dMajor, dMinor uint64) int64 {
	if wantsWide[T](major) {
		return reverseErrorAtWide(major, minor, dMajor, dMinor)
	}
	return reverseErrorAtFast(major, minor, dMajor, dMinor)
}

func reverseErrorAtFast(major, minor, dMajor, dMinor uint64) int64 {
	return 2*int64(major)*int64(dMinor) - 2*int64(minor)*(int64(dMajor)-1) - int64(major) - 1
}

func reverseErrorAtWide(major, minor, dMajor, dMinor uint64) int64 {
	t1 := new(big.Int).Mul(big.NewInt(2), new(big.Int).SetUint64(major))
	t1.Mul(t1, new(big.Int).SetUint64(dMinor))
	t2 := new(big.Int).Mul(big.NewInt(2), new(big.Int).SetUint64(minor))
	t2.Mul(t2, new(big.Int).Sub(new(big.Int).SetUint64(dMajor), big.NewInt(1)))
	t1.Sub(t1, t2)
	t1.Sub(t1, new(big.Int).SetUint64(major))
	t1.Sub(t1, big.NewInt(1))
	return t1.Int64()
}
