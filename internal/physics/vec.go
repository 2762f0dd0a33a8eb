package physics

import "github.com/chewxy/math32"

// Vec2 is a 2D point or vector in simulation units (one unit per pixel, velocities per frame).
type Vec2 struct {
	X, Y float32
}

// V is shorthand for Vec2{x, y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector of v. ok is false for the zero vector,
// in which case the zero vector is returned.
func (v Vec2) Normalize() (n Vec2, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Perp returns v rotated 90 degrees counter-clockwise: (-y, x).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}
