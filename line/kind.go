// Package line classifies and constructs unclipped raster.Cursor values for
// an arbitrary integer segment, dispatching to the axis, diagonal or octant
// family in raster/ the way agg_go's rasterizer_outline chooses between its
// specialized line interpolators based on the segment's slope.
package line

import (
	"github.com/mekoch/rasterline/config"
	"github.com/mekoch/rasterline/geom"
	"github.com/mekoch/rasterline/raster"
)

// Orientation names the broad shape family a segment falls into.
type Orientation int

const (
	OrientationEmpty Orientation = iota
	OrientationAxis
	OrientationDiagonal
	OrientationOctant
)

func (o Orientation) String() string {
	switch o {
	case OrientationEmpty:
		return "empty"
	case OrientationAxis:
		return "axis"
	case OrientationDiagonal:
		return "diagonal"
	case OrientationOctant:
		return "octant"
	default:
		return "unknown"
	}
}

// Direction names the sign of travel along a single axis.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Quadrant names one of the four sign combinations of (dx,dy) for diagonal
// and octant segments.
type Quadrant int

const (
	QuadrantNone Quadrant = iota
	QuadrantPP            // +x, +y
	QuadrantMP            // -x, +y
	QuadrantMM            // -x, -y
	QuadrantPM            // +x, -y
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantPP:
		return "++"
	case QuadrantMP:
		return "-+"
	case QuadrantMM:
		return "--"
	case QuadrantPM:
		return "+-"
	default:
		return "none"
	}
}

func quadrantOf(sx, sy int8) Quadrant {
	switch {
	case sx > 0 && sy > 0:
		return QuadrantPP
	case sx < 0 && sy > 0:
		return QuadrantMP
	case sx < 0 && sy < 0:
		return QuadrantMM
	case sx > 0 && sy < 0:
		return QuadrantPM
	default:
		return QuadrantNone
	}
}

// Kind is the full classification of a segment: its shape family plus
// whichever of Direction (axis) or Quadrant (diagonal/octant) applies.
type Kind struct {
	Orientation Orientation
	Direction   Direction
	Quadrant    Quadrant
	// OctantIndex is the raster.octantTable index, valid only when
	// Orientation == OrientationOctant.
	OctantIndex int
}

func (k Kind) String() string {
	switch k.Orientation {
	case OrientationAxis:
		return "axis/" + k.Direction.String()
	case OrientationDiagonal:
		return "diagonal/" + k.Quadrant.String()
	case OrientationOctant:
		return "octant/" + k.Quadrant.String()
	default:
		return k.Orientation.String()
	}
}

// Classify determines the Kind of the segment (x1,y1)-(x2,y2) without
// constructing a cursor.
func Classify[T geom.CoordType](x1, y1, x2, y2 T) Kind {
	if x1 == x2 && y1 == y2 {
		return Kind{Orientation: OrientationEmpty}
	}
	if x1 == x2 {
		dir := DirectionForward
		if y2 < y1 {
			dir = DirectionBackward
		}
		return Kind{Orientation: OrientationAxis, Direction: dir}
	}
	if y1 == y2 {
		dir := DirectionForward
		if x2 < x1 {
			dir = DirectionBackward
		}
		return Kind{Orientation: OrientationAxis, Direction: dir}
	}
	if sx, sy, ok := raster.ClassifyDiagonal(x1, y1, x2, y2); ok {
		return Kind{Orientation: OrientationDiagonal, Quadrant: quadrantOf(sx, sy)}
	}
	idx, sx, sy, _, _, _, ok := raster.Classify(x1, y1, x2, y2)
	if !ok {
		// unreachable: every non-axis, non-diagonal pair classifies.
		return Kind{Orientation: OrientationEmpty}
	}
	return Kind{Orientation: OrientationOctant, Quadrant: quadrantOf(sx, sy), OctantIndex: idx}
}

// New builds the unclipped Cursor for the segment [,(x1,y1) (x2,y2)), always
// succeeding: coincident endpoints yield raster.Empty. When
// config.Options.EnableFastPaths is off, axis-aligned and diagonal segments
// are built through the same general midpoint derivation the octant family
// uses (raster.NewUniform) instead of their dedicated specializations --
// pure performance, never a different pixel sequence.
func New[T geom.CoordType](x1, y1, x2, y2 T) raster.Cursor[T] {
	k := Classify(x1, y1, x2, y2)
	if k.Orientation == OrientationEmpty {
		return raster.Empty[T]()
	}
	if !config.Get().EnableFastPaths {
		c, _ := raster.NewUniform[T](x1, y1, x2, y2)
		return c
	}
	switch k.Orientation {
	case OrientationAxis:
		if x1 == x2 {
			c, _ := raster.NewAxisY[T](x1, y1, y2)
			return c
		}
		c, _ := raster.NewAxisX[T](y1, x1, x2)
		return c
	case OrientationDiagonal:
		c, _ := raster.NewDiagonal[T](x1, y1, x2, y2)
		return c
	default:
		c, _ := raster.NewOctant[T](x1, y1, x2, y2)
		return c
	}
}
