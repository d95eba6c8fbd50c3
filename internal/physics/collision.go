package physics

import "math"

// Circle is the collision shape shared by every entity.
type Circle struct {
	Center Vec2
	Radius float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Overlaps reports whether the centers are closer than the sum of radii.
// Touching circles do not overlap.
func Overlaps(a, b Circle) bool {
	return Distance(a.Center, b.Center) < a.Radius+b.Radius
}
