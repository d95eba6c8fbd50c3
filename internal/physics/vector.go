package physics

import "math"

// Vec2 is a 2D point or direction in logical screen pixels.
// Values are copied on assignment; none of the methods mutate the receiver.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v and false when v has no length.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l <= CollisionAxisTolerance {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a vector of the given length pointing along theta.
func FromAngle(theta, length float64) Vec2 {
	return Vec2{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}

// Rotate rotates v around the origin by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
