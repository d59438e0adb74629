// Package geom provides the small set of 2D primitives the collision and
// combat systems are built on: vectors, axis-aligned rectangles, and circles.
package geom

import "math"

// Vec2 is a 2D point or direction in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit-length copy of v. The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// DistanceTo returns the euclidean distance between two points.
func (v Vec2) DistanceTo(other Vec2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Rect is an axis-aligned rectangle defined by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the left/top edge are inside, points on the right/bottom edge
// are outside, so adjacent rectangles do not both claim a shared edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Circle is a circle defined by its center and radius.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether the point (x, y) lies inside the circle.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// IntersectsRect reports whether the circle overlaps the rectangle. The
// test clamps the circle center onto the rectangle and compares the
// clamped distance against the radius.
func (c Circle) IntersectsRect(r Rect) bool {
	cx := clamp(c.X, r.X, r.X+r.W)
	cy := clamp(c.Y, r.Y, r.Y+r.H)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.R*c.R
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
