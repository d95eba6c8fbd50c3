package physics

// Integrate advances pos by vel over dt seconds.
func Integrate(pos, vel Vec2, dt float64) Vec2 {
	return Vec2{X: pos.X + vel.X*dt, Y: pos.Y + vel.Y*dt}
}

// Damp applies exponential friction: the velocity is scaled, not reduced by a constant.
func Damp(vel Vec2, friction float64) Vec2 {
	return vel.Scale(friction)
}

// WrapAxis teleports a coordinate that left [0, dim) to the opposite edge by
// offsetting it with ±dim. Coordinates already in range are returned as is.
func WrapAxis(v, dim float64) float64 {
	if dim <= 0 {
		return v
	}
	if v < 0 {
		v += dim
	} else if v >= dim {
		v -= dim
	}
	return v
}

// Wrap applies WrapAxis to both coordinates of pos.
func Wrap(pos Vec2, width, height float64) Vec2 {
	return Vec2{X: WrapAxis(pos.X, width), Y: WrapAxis(pos.Y, height)}
}
