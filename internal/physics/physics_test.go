package physics

import (
	"math"
	"testing"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func TestVec2_AddScaleDoNotMutate(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := a.Add(Vec2{X: 3, Y: 4}).Scale(2)

	if a != (Vec2{X: 1, Y: 2}) {
		t.Fatalf("receiver mutated: %+v", a)
	}
	if b != (Vec2{X: 8, Y: 12}) {
		t.Fatalf("b = %+v, want {8 12}", b)
	}

	c := a
	c.X = 10
	if a.X != 1 {
		t.Fatalf("copy shares state with original")
	}
}

func TestVec2_NormalizeZeroLength(t *testing.T) {
	if _, ok := (Vec2{}).Normalize(); ok {
		t.Fatalf("Normalize of zero vector reported ok")
	}

	u, ok := Vec2{X: 3, Y: 4}.Normalize()
	if !ok {
		t.Fatalf("Normalize(3,4) not ok")
	}
	approxEqual(t, u.X, 0.6, 1e-12, "u.x")
	approxEqual(t, u.Y, 0.8, 1e-12, "u.y")
}

func TestFromAngleAndRotate(t *testing.T) {
	v := FromAngle(math.Pi/2, 400)
	approxEqual(t, v.X, 0, 1e-9, "v.x")
	approxEqual(t, v.Y, 400, 1e-9, "v.y")

	r := Vec2{X: 1, Y: 0}.Rotate(math.Pi)
	approxEqual(t, r.X, -1, 1e-12, "r.x")
	approxEqual(t, r.Y, 0, 1e-12, "r.y")
}

func TestWrapAxis(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		dim  float64
		want float64
	}{
		{"in range", 10, 100, 10},
		{"zero", 0, 100, 0},
		{"left of zero", -5, 100, 95},
		{"exactly dim", 100, 100, 0},
		{"past dim", 103, 100, 3},
		{"non-positive dim ignored", -5, 0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAxis(tt.v, tt.dim)
			approxEqual(t, got, tt.want, 1e-12, "wrap")
		})
	}
}

func TestWrap_IdempotentInRange(t *testing.T) {
	for x := 0.0; x < 800; x += 37.5 {
		for y := 0.0; y < 600; y += 41.25 {
			p := Vec2{X: x, Y: y}
			if got := Wrap(p, 800, 600); got != p {
				t.Fatalf("Wrap(%v) = %v, want unchanged", p, got)
			}
			w := Wrap(Vec2{X: x - 800, Y: y + 600}, 800, 600)
			if w.X < 0 || w.X >= 800 || w.Y < 0 || w.Y >= 600 {
				t.Fatalf("Wrap out of range: %v", w)
			}
			if Wrap(w, 800, 600) != w {
				t.Fatalf("Wrap not idempotent at %v", w)
			}
		}
	}
}

func TestIntegrateAndDamp(t *testing.T) {
	pos := Integrate(Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: -50}, 0.1)
	approxEqual(t, pos.X, 20, 1e-9, "pos.x")
	approxEqual(t, pos.Y, 5, 1e-9, "pos.y")

	vel := Damp(Vec2{X: 100, Y: -50}, ShipFriction)
	approxEqual(t, vel.X, 98, 1e-9, "vel.x")
	approxEqual(t, vel.Y, -49, 1e-9, "vel.y")
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{
			name: "bullet inside enemy",
			a:    Circle{Center: Vec2{X: 100, Y: 100}, Radius: BulletRadius},
			b:    Circle{Center: Vec2{X: 102, Y: 100}, Radius: EnemyRadius},
			want: true,
		},
		{
			name: "ship touching enemy",
			a:    Circle{Center: Vec2{X: 50, Y: 50}, Radius: ShipRadius},
			b:    Circle{Center: Vec2{X: 55, Y: 50}, Radius: EnemyRadius},
			want: true,
		},
		{
			name: "exactly touching is not overlap",
			a:    Circle{Center: Vec2{X: 0, Y: 0}, Radius: 3},
			b:    Circle{Center: Vec2{X: 5, Y: 0}, Radius: 2},
			want: false,
		},
		{
			name: "far apart",
			a:    Circle{Center: Vec2{X: 0, Y: 0}, Radius: 3},
			b:    Circle{Center: Vec2{X: 300, Y: 0}, Radius: 16},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
