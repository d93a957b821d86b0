package clip

import (
	"github.com/mekoch/rasterline/geom"
	"github.com/mekoch/rasterline/raster"
)

// projCursor re-expresses a Cursor[T] clipped against r as a Cursor[uint64]
// of region-relative, zero-based offsets, per spec §6's "*_proj" entry
// points. Every pixel the inner cursor yields is known (by construction,
// since it came from a clip against r) to satisfy r.Contains, so Project
// never fails here.
type projCursor[T geom.CoordType] struct {
	inner raster.Cursor[T]
	r     geom.Region[T]
}

func newProjCursor[T geom.CoordType](inner raster.Cursor[T], r geom.Region[T]) raster.Cursor[uint64] {
	return &projCursor[T]{inner: inner, r: r}
}

func (c *projCursor[T]) project(p geom.Point[T]) geom.Point[uint64] {
	u, v, _ := c.r.Project(p)
	return geom.Point[uint64]{X: u, Y: v}
}

func (c *projCursor[T]) Head() (geom.Point[uint64], bool) {
	p, ok := c.inner.Head()
	if !ok {
		return geom.Point[uint64]{}, false
	}
	return c.project(p), true
}

func (c *projCursor[T]) PopHead() (geom.Point[uint64], bool) {
	p, ok := c.inner.PopHead()
	if !ok {
		return geom.Point[uint64]{}, false
	}
	return c.project(p), true
}

func (c *projCursor[T]) Tail() (geom.Point[uint64], bool) {
	p, ok := c.inner.Tail()
	if !ok {
		return geom.Point[uint64]{}, false
	}
	return c.project(p), true
}

func (c *projCursor[T]) PopTail() (geom.Point[uint64], bool) {
	p, ok := c.inner.PopTail()
	if !ok {
		return geom.Point[uint64]{}, false
	}
	return c.project(p), true
}

func (c *projCursor[T]) Len() uint64   { return c.inner.Len() }
func (c *projCursor[T]) IsEmpty() bool { return c.inner.IsEmpty() }

// LineAxisProj is LineAxis followed by projection into r's coordinate frame.
func LineAxisProj[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[uint64], bool) {
	c, ok := LineAxis(r, x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	return newProjCursor[T](c, r), true
}

// LineDiagonalProj is LineDiagonal followed by projection.
func LineDiagonalProj[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[uint64], bool) {
	c, ok := LineDiagonal(r, x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	return newProjCursor[T](c, r), true
}

// LineOctantProj is LineOctant followed by projection.
func LineOctantProj[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[uint64], bool) {
	c, ok := LineOctant(r, x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	return newProjCursor[T](c, r), true
}

// LineProj is Line followed by projection.
func LineProj[T geom.CoordType](r geom.Region[T], x1, y1, x2, y2 T) (raster.Cursor[uint64], bool) {
	c, ok := Line(r, x1, y1, x2, y2)
	if !ok {
		return nil, false
	}
	return newProjCursor[T](c, r), true
}
