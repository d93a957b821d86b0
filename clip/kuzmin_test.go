package clip

import (
	"testing"

	"github.com/mekoch/rasterline/geom"
	"github.com/mekoch/rasterline/raster"
)

func drain[T geom.CoordType](t *testing.T, c raster.Cursor[T]) []geom.Point[T] {
	t.Helper()
	var out []geom.Point[T]
	for {
		p, ok := c.PopHead()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func TestPointAndPointProj(t *testing.T) {
	r, _ := geom.NewClip[int32](9, 9)
	if !Point(r, 5, 5) {
		t.Error("Point(5,5) inside a 0..9 clip should be true")
	}
	if Point(r, 10, 5) {
		t.Error("Point(10,5) outside a 0..9 clip should be false")
	}
	u, v, ok := PointProj(r, 5, 5)
	if !ok || u != 5 || v != 5 {
		t.Errorf("PointProj(5,5) = (%d,%d,%v), want (5,5,true)", u, v, ok)
	}
}

// TestLineDiagonalClippedInterior is scenario S3: clipping a diagonal against
// an interior region yields exactly the pixels inside it.
func TestLineDiagonalClippedInterior(t *testing.T) {
	r, _ := geom.NewViewport[int32](2, 2, 8, 8)
	c, ok := Line(r, 0, 0, 10, 10)
	if !ok {
		t.Fatal("Line(0,0,10,10) clipped against [2,8]x[2,8] should succeed")
	}
	if c.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", c.Len())
	}
	pts := drain(t, c)
	for i, p := range pts {
		want := int32(2 + i)
		if p.X != want || p.Y != want {
			t.Errorf("pixel %d = (%d,%d), want (%d,%d)", i, p.X, p.Y, want, want)
		}
	}
}

// TestLineDiagonalFullyOutside is scenario S5: a diagonal entirely outside
// the clip region yields no cursor.
func TestLineDiagonalFullyOutside(t *testing.T) {
	r, _ := geom.NewViewport[int32](0, 0, 9, 9)
	if _, ok := Line(r, 20, 20, 30, 30); ok {
		t.Error("Line(20,20,30,30) clipped against [0,9]x[0,9] should fail")
	}
}

// TestLineOctantClipped is scenario S4: a general octant segment clipped
// against a region, checked against hand-derived entry/exit pixels.
func TestLineOctantClipped(t *testing.T) {
	r, _ := geom.NewViewport[int32](0, 0, 63, 47)
	c, ok := LineOctant(r, -128, -100, 100, 80)
	if !ok {
		t.Fatal("LineOctant(-128,-100,100,80) clipped against [0,63]x[0,47] should succeed")
	}
	if c.Len() != 59 {
		t.Fatalf("Len() = %d, want 59", c.Len())
	}
	head, _ := c.Head()
	if head.X != 0 || head.Y != 1 {
		t.Errorf("entry pixel = (%d,%d), want (0,1)", head.X, head.Y)
	}
	tail, _ := c.Tail()
	if tail.X != 58 || tail.Y != 47 {
		t.Errorf("exit pixel = (%d,%d), want (58,47)", tail.X, tail.Y)
	}
}

func TestLineOctantRejectsFullyOutside(t *testing.T) {
	r, _ := geom.NewViewport[int32](0, 0, 9, 9)
	if _, ok := LineOctant(r, 100, 100, 200, 150); ok {
		t.Error("LineOctant far outside the region should fail")
	}
}

// TestLineOctantUint64AboveMaxInt64 targets the exact width-overflow class
// of bug LineOctant must not reproduce: every coordinate and region bound
// here sits above math.MaxInt64, so a bare int64(v) conversion would
// reinterpret them as negative and corrupt every comparison/clamp the
// trivial-reject check and clampMajorOwnAxis/clampMinorBand perform.
func TestLineOctantUint64AboveMaxInt64(t *testing.T) {
	const base = ^uint64(0) - 1000 // far above math.MaxInt64
	r, err := geom.NewViewport[uint64](base+5, base, base+15, base+10)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}
	c, ok := LineOctant(r, base, base, base+20, base+10)
	if !ok {
		t.Fatal("LineOctant should succeed for a segment whose bounding box overlaps the region")
	}
	if c.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", c.Len())
	}
	head, _ := c.Head()
	if head.X != base+5 || head.Y != base+3 {
		t.Errorf("entry pixel = (%d,%d), want (%d,%d)", head.X, head.Y, base+5, base+3)
	}
	tail, _ := c.Tail()
	if tail.X != base+15 || tail.Y != base+8 {
		t.Errorf("exit pixel = (%d,%d), want (%d,%d)", tail.X, tail.Y, base+15, base+8)
	}
}

// TestLineOctantUint64FullyOutsideAboveMaxInt64 checks the trivial-reject
// path specifically: both the segment and the region sit above
// math.MaxInt64, and a naive int64 cast would make the segment's bounding
// box compare as "negative", which could flip a genuinely-outside segment
// into a false positive or vice versa.
func TestLineOctantUint64FullyOutsideAboveMaxInt64(t *testing.T) {
	const base = ^uint64(0) - 1000
	r, err := geom.NewViewport[uint64](base, base, base+10, base+10)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}
	if _, ok := LineOctant(r, base+500, base+500, base+520, base+510); ok {
		t.Error("LineOctant should reject a segment entirely outside the region")
	}
}

// TestLineOctantUintptrAboveMaxInt64 is the uintptr counterpart of
// TestLineOctantUint64AboveMaxInt64, exercising the same clamp arithmetic at
// pointer width.
func TestLineOctantUintptrAboveMaxInt64(t *testing.T) {
	const base = uintptr(^uint64(0) - 1000)
	r, err := geom.NewViewport[uintptr](base+5, base, base+15, base+10)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}
	c, ok := LineOctant(r, base, base, base+20, base+10)
	if !ok {
		t.Fatal("LineOctant should succeed for a segment whose bounding box overlaps the region")
	}
	if c.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", c.Len())
	}
	head, _ := c.Head()
	if head.X != base+5 || head.Y != base+3 {
		t.Errorf("entry pixel = (%d,%d), want (%d,%d)", head.X, head.Y, base+5, base+3)
	}
}

// TestLineOctantInt8AndUint8Extremes exercises clip.LineOctant at the low
// end of the supported widths, in each case with a clip region that forces
// a real entry/exit derivation rather than a pass-through.
func TestLineOctantInt8AndUint8Extremes(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		// Ymin/Ymax span the segment's full reachable y-range (-128..127) so
		// only the x clamp binds; the entry/exit offsets then reduce to the
		// plain major-axis subtraction this sub-test is checking.
		r, err := geom.NewViewport[int8](-120, -128, 100, 127)
		if err != nil {
			t.Fatalf("NewViewport error: %v", err)
		}
		c, ok := LineOctant(r, -128, -128, 127, -1)
		if !ok {
			t.Fatal("LineOctant[int8] should succeed")
		}
		head, _ := c.Head()
		if head.X != -120 {
			t.Errorf("entry pixel X = %d, want -120 (clipped at Xmin)", head.X)
		}
		tail, _ := c.Tail()
		if tail.X != 100 {
			t.Errorf("exit pixel X = %d, want 100 (clipped at Xmax)", tail.X)
		}
	})

	t.Run("uint8", func(t *testing.T) {
		r, err := geom.NewViewport[uint8](10, 0, 245, 100)
		if err != nil {
			t.Fatalf("NewViewport error: %v", err)
		}
		c, ok := LineOctant(r, 0, 0, 255, 100)
		if !ok {
			t.Fatal("LineOctant[uint8] should succeed")
		}
		head, _ := c.Head()
		if head.X != 10 {
			t.Errorf("entry pixel X = %d, want 10 (clipped at Xmin)", head.X)
		}
		tail, _ := c.Tail()
		if tail.X != 245 {
			t.Errorf("exit pixel X = %d, want 245 (clipped at Xmax)", tail.X)
		}
	})
}

func TestLineAxisClipped(t *testing.T) {
	r, _ := geom.NewViewport[int32](2, 0, 8, 20)
	c, ok := LineAxis(r, 5, -10, 5, 30)
	if !ok {
		t.Fatal("LineAxis vertical clip should succeed")
	}
	head, _ := c.Head()
	tail, _ := c.Tail()
	if head.Y != 0 || tail.Y != 20 {
		t.Errorf("clipped vertical run = %v..%v, want y 0..20", head, tail)
	}
}

// TestViewportProjectionEquivalence is scenario S6: translating both a line
// and its clip region by the same offset must yield identical projected
// pixel sequences.
func TestViewportProjectionEquivalence(t *testing.T) {
	rv, err := geom.NewViewport[int32](16, 32, 271, 271)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}
	rc, err := geom.NewViewport[int32](0, 0, 255, 239)
	if err != nil {
		t.Fatalf("NewViewport error: %v", err)
	}

	c1, ok1 := LineProj(rv, -16, -32, 336, 288)
	c2, ok2 := LineProj(rc, -32, -64, 320, 256)
	if ok1 != ok2 {
		t.Fatalf("ok mismatch: %v vs %v", ok1, ok2)
	}
	if !ok1 {
		t.Fatal("expected both clips to succeed")
	}
	if c1.Len() != c2.Len() {
		t.Fatalf("Len mismatch: %d vs %d", c1.Len(), c2.Len())
	}
	p1 := drain(t, c1)
	p2 := drain(t, c2)
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pixel %d mismatch: %v vs %v", i, p1[i], p2[i])
		}
	}
}
