package raster

import (
	"image"
	"iter"
)

// Bresenham walks the integer points of a line segment, both endpoints
// included. Error terms are kept doubled so everything stays integral.
type Bresenham struct {
	x, y   int
	x1, y1 int
	dx, dy int // 2·|Δ|
	sx, sy int
	err    int
}

// NewBresenham starts a walk at (x0, y0) towards (x1, y1).
func NewBresenham(x0, y0, x1, y1 int) *Bresenham {
	b := &Bresenham{
		x: x0, y: y0,
		x1: x1, y1: y1,
		dx: 2 * abs(x1-x0),
		dy: 2 * abs(y1-y0),
		sx: sign(x1 - x0),
		sy: sign(y1 - y0),
	}
	if b.dx >= b.dy {
		b.err = -b.dx / 2
	} else {
		b.err = -b.dy / 2
	}
	return b
}

// Point is the current position.
func (b *Bresenham) Point() image.Point { return image.Pt(b.x, b.y) }

// Done reports whether the current position is the end point.
func (b *Bresenham) Done() bool { return b.x == b.x1 && b.y == b.y1 }

// Step advances one point along the major axis.
func (b *Bresenham) Step() {
	if b.Done() {
		return
	}
	if b.dx >= b.dy {
		b.x += b.sx
		b.err += b.dy
		if b.err >= 0 {
			b.y += b.sy
			b.err -= b.dx
		}
		return
	}
	b.y += b.sy
	b.err += b.dx
	if b.err >= 0 {
		b.x += b.sx
		b.err -= b.dy
	}
}

// Line yields every point from (x0, y0) to (x1, y1) inclusive.
func Line(x0, y0, x1, y1 int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		b := NewBresenham(x0, y0, x1, y1)
		for {
			if !yield(b.Point()) || b.Done() {
				return
			}
			b.Step()
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
