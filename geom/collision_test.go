package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestCirclesCollide(t *testing.T) {
	tests := []struct {
		name string
		a, b BoundingCircle
		want bool
	}{
		{"Overlapping", BoundingCircle{Vec(0, 0), 5}, BoundingCircle{Vec(6, 0), 5}, true},
		{"Touching counts", BoundingCircle{Vec(0, 0), 5}, BoundingCircle{Vec(10, 0), 5}, true},
		{"Touching diagonal", BoundingCircle{Vec(0, 0), 2.5}, BoundingCircle{Vec(3, 4), 2.5}, true},
		{"Apart", BoundingCircle{Vec(0, 0), 5}, BoundingCircle{Vec(10.001, 0), 5}, false},
		{"Same center zero radius", BoundingCircle{Vec(1, 1), 0}, BoundingCircle{Vec(1, 1), 0}, true},
		{"Contained", BoundingCircle{Vec(0, 0), 10}, BoundingCircle{Vec(1, 1), 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesCollide(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected CirclesCollide(a, b) to be %v, got %v", tt.want, got)
			}
			if got := tt.a.CollidesWith(tt.b); got != tt.want {
				t.Errorf("Expected a.CollidesWith(b) to be %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCirclesCollideSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := BoundingCircle{Vec(rng.Float64()*100, rng.Float64()*100), rng.Float64() * 20}
		b := BoundingCircle{Vec(rng.Float64()*100, rng.Float64()*100), rng.Float64() * 20}
		if CirclesCollide(a, b) != CirclesCollide(b, a) {
			t.Fatalf("Collision not symmetric for %+v and %+v", a, b)
		}
	}
}

func TestTriangleCollidesCircle(t *testing.T) {
	tri := NewBoundingTriangle(Vec(0, -10), Vec(-10, 10), Vec(10, 10))

	tests := []struct {
		name   string
		circle BoundingCircle
		want   bool
	}{
		{"Center inside zero radius", BoundingCircle{Vec(0, 0), 0}, true},
		{"Center inside big radius", BoundingCircle{Vec(0, 5), 50}, true},
		{"Crosses bottom edge", BoundingCircle{Vec(0, 13), 4}, true},
		{"Touches bottom edge", BoundingCircle{Vec(0, 14), 4}, true},
		{"Just below bottom edge", BoundingCircle{Vec(0, 14.01), 4}, false},
		{"Touches vertex", BoundingCircle{Vec(0, -12), 2}, true},
		{"Beyond vertex", BoundingCircle{Vec(0, -12.5), 2}, false},
		{"Far away", BoundingCircle{Vec(100, 100), 5}, false},
		{"Outside beside slanted edge", BoundingCircle{Vec(-9, -9), 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TriangleCollidesCircle(tri, tt.circle); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTriangleCollidesCircleWindingAgnostic(t *testing.T) {
	clockwise := NewBoundingTriangle(Vec(0, -10), Vec(10, 10), Vec(-10, 10))
	counter := NewBoundingTriangle(Vec(0, -10), Vec(-10, 10), Vec(10, 10))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		c := BoundingCircle{Vec(rng.Float64()*40-20, rng.Float64()*40-20), rng.Float64() * 3}
		if clockwise.CollidesWith(c) != counter.CollidesWith(c) {
			t.Fatalf("Winding changed result for %+v", c)
		}
	}
}

func TestCenterInsideAlwaysCollides(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		tri := NewBoundingTriangle(
			Vec(rng.Float64()*100, rng.Float64()*100),
			Vec(rng.Float64()*100, rng.Float64()*100),
			Vec(rng.Float64()*100, rng.Float64()*100),
		)
		if math.Abs(sign(tri.Point1, tri.Point2, tri.Point3)) < 1 {
			continue
		}
		// Barycentric interior point
		u, v := rng.Float64()*0.8+0.1, rng.Float64()*0.8+0.1
		if u+v >= 0.95 {
			u, v = u/2, v/2
		}
		w := 1 - u - v
		center := tri.Point1.Scale(u).Add(tri.Point2.Scale(v)).Add(tri.Point3.Scale(w))

		if !TriangleCollidesCircle(tri, BoundingCircle{Center: center}) {
			t.Fatalf("Expected interior point %+v to collide with %+v", center, tri)
		}
	}
}

func TestDegenerateTriangle(t *testing.T) {
	tests := []struct {
		name   string
		tri    BoundingTriangle
		circle BoundingCircle
		want   bool
	}{
		{"Point triangle far circle", NewBoundingTriangle(Vec(5, 5), Vec(5, 5), Vec(5, 5)), BoundingCircle{Vec(50, 50), 1}, false},
		{"Point triangle inside circle", NewBoundingTriangle(Vec(5, 5), Vec(5, 5), Vec(5, 5)), BoundingCircle{Vec(6, 5), 1}, true},
		{"Collinear far circle", NewBoundingTriangle(Vec(0, 0), Vec(5, 0), Vec(10, 0)), BoundingCircle{Vec(5, 20), 1}, false},
		{"Collinear touching circle", NewBoundingTriangle(Vec(0, 0), Vec(5, 0), Vec(10, 0)), BoundingCircle{Vec(5, 1), 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TriangleCollidesCircle(tt.tri, tt.circle); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCircleIntersectsZeroLengthEdge(t *testing.T) {
	c := BoundingCircle{Vec(3, 4), 5}
	if !circleIntersectsEdge(c, Vec(0, 0), Vec(0, 0)) {
		t.Errorf("Expected zero-length edge on the circle boundary to intersect")
	}
	if circleIntersectsEdge(c, Vec(-1, 0), Vec(-1, 0)) {
		t.Errorf("Expected zero-length edge outside the circle to miss")
	}
}

func TestVectorNormalize(t *testing.T) {
	if _, ok := Zero.Normalize(); ok {
		t.Errorf("Expected zero vector to have no direction")
	}
	unit, ok := Vec(3, 4).Normalize()
	if !ok {
		t.Fatalf("Expected non-zero vector to normalize")
	}
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", unit.Length())
	}
}

func TestRotateAround(t *testing.T) {
	got := Vec(10, 0).RotateAround(Zero, math.Pi/2)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-10) > 1e-9 {
		t.Errorf("Expected (0, 10), got %+v", got)
	}
	got = Vec(5, 5).RotateAround(Vec(5, 5), 1.3)
	if got != Vec(5, 5) {
		t.Errorf("Expected pivot to stay fixed, got %+v", got)
	}
}

func TestRectRandomPoint(t *testing.T) {
	r := Rect{X: 0, Y: -20, Width: 800, Height: 10}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		if p := r.RandomPoint(rng); !r.Contains(p) {
			t.Fatalf("Expected %+v inside %+v", p, r)
		}
	}
}
