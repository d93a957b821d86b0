package line

import (
	"testing"

	"github.com/mekoch/rasterline/config"
)

func TestClassifyEmpty(t *testing.T) {
	if k := Classify[int32](3, 3, 3, 3); k.Orientation != OrientationEmpty {
		t.Errorf("Classify(coincident) = %v, want empty", k)
	}
}

func TestClassifyAxis(t *testing.T) {
	if k := Classify[int32](0, 0, 0, 5); k.Orientation != OrientationAxis || k.Direction != DirectionForward {
		t.Errorf("Classify(vertical forward) = %v, want axis/forward", k)
	}
	if k := Classify[int32](0, 5, 0, 0); k.Orientation != OrientationAxis || k.Direction != DirectionBackward {
		t.Errorf("Classify(vertical backward) = %v, want axis/backward", k)
	}
	if k := Classify[int32](0, 0, 5, 0); k.Orientation != OrientationAxis || k.Direction != DirectionForward {
		t.Errorf("Classify(horizontal forward) = %v, want axis/forward", k)
	}
}

func TestClassifyDiagonal(t *testing.T) {
	k := Classify[int32](0, 0, 5, 5)
	if k.Orientation != OrientationDiagonal || k.Quadrant != QuadrantPP {
		t.Errorf("Classify(diagonal ++) = %v, want diagonal/++", k)
	}
	k = Classify[int32](0, 0, -5, -5)
	if k.Orientation != OrientationDiagonal || k.Quadrant != QuadrantMM {
		t.Errorf("Classify(diagonal --) = %v, want diagonal/--", k)
	}
}

func TestClassifyOctant(t *testing.T) {
	k := Classify[int32](0, 0, 10, 5)
	if k.Orientation != OrientationOctant || k.Quadrant != QuadrantPP || k.OctantIndex != 0 {
		t.Errorf("Classify(0,0,10,5) = %v, want octant/++ index 0", k)
	}
}

func TestNewDispatchEmpty(t *testing.T) {
	c := New[int32](4, 4, 4, 4)
	if !c.IsEmpty() {
		t.Error("New(coincident) should yield an empty cursor")
	}
}

func TestNewDispatchAxis(t *testing.T) {
	c := New[int32](0, 0, 0, 4)
	if c.Len() != 4 {
		t.Fatalf("New(vertical) Len() = %d, want 4", c.Len())
	}
	p, _ := c.Head()
	if p.X != 0 || p.Y != 0 {
		t.Errorf("New(vertical) head = %v, want (0,0)", p)
	}
}

func TestNewDispatchDiagonal(t *testing.T) {
	c := New[int32](0, 0, 5, 5)
	if c.Len() != 5 {
		t.Fatalf("New(diagonal) Len() = %d, want 5", c.Len())
	}
}

func TestNewDispatchOctant(t *testing.T) {
	c := New[int32](0, 0, 10, 5)
	if c.Len() != 10 {
		t.Fatalf("New(octant) Len() = %d, want 10", c.Len())
	}
	p, _ := c.Head()
	if p.X != 0 || p.Y != 0 {
		t.Errorf("New(octant) head = %v, want (0,0)", p)
	}
}

// TestNewUniformFallbackMatchesFastPath checks that disabling EnableFastPaths
// yields the same pixel sequences for axis and diagonal segments as the
// dedicated specializations do -- the toggle is a performance knob only.
func TestNewUniformFallbackMatchesFastPath(t *testing.T) {
	prev := config.Get()
	defer config.Set(prev)

	cases := [][4]int32{
		{0, 0, 0, 4},
		{0, 0, 4, 0},
		{0, 0, 5, 5},
		{0, 0, -5, -5},
		{0, 0, 10, 5},
	}
	for _, c := range cases {
		config.Set(config.Options{EnableFastPaths: true})
		fast := New[int32](c[0], c[1], c[2], c[3])
		config.Set(config.Options{EnableFastPaths: false})
		uniform := New[int32](c[0], c[1], c[2], c[3])

		if fast.Len() != uniform.Len() {
			t.Fatalf("%v: Len mismatch %d vs %d", c, fast.Len(), uniform.Len())
		}
		for {
			fp, fok := fast.PopHead()
			up, uok := uniform.PopHead()
			if fok != uok {
				t.Fatalf("%v: exhaustion mismatch", c)
			}
			if !fok {
				break
			}
			if fp != up {
				t.Errorf("%v: pixel mismatch %v vs %v", c, fp, up)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	k := Classify[int32](0, 0, 10, 5)
	if k.String() != "octant/++" {
		t.Errorf("Kind.String() = %q, want %q", k.String(), "octant/++")
	}
}
