package geom

// BoundingCircle is a circular hitbox. Radius is never negative.
type BoundingCircle struct {
	Center Vector2
	Radius float64
}

// NewBoundingCircle creates a circle, clamping negative radii to zero
func NewBoundingCircle(center Vector2, radius float64) BoundingCircle {
	if radius < 0 {
		radius = 0
	}
	return BoundingCircle{Center: center, Radius: radius}
}

// CollidesWith checks if two circles touch or overlap
func (c BoundingCircle) CollidesWith(other BoundingCircle) bool {
	return CirclesCollide(c, other)
}

// CollidesWithTriangle checks the circle against a triangle
func (c BoundingCircle) CollidesWithTriangle(t BoundingTriangle) bool {
	return TriangleCollidesCircle(t, c)
}

// BoundingTriangle is a triangular hitbox. Vertex winding does not matter.
type BoundingTriangle struct {
	Point1 Vector2
	Point2 Vector2
	Point3 Vector2
}

// NewBoundingTriangle creates a triangle from its three vertices
func NewBoundingTriangle(p1, p2, p3 Vector2) BoundingTriangle {
	return BoundingTriangle{Point1: p1, Point2: p2, Point3: p3}
}

// CollidesWith checks if the triangle touches a circle
func (t BoundingTriangle) CollidesWith(c BoundingCircle) bool {
	return TriangleCollidesCircle(t, c)
}

// Translate moves every vertex by offset
func (t BoundingTriangle) Translate(offset Vector2) BoundingTriangle {
	return BoundingTriangle{
		Point1: t.Point1.Add(offset),
		Point2: t.Point2.Add(offset),
		Point3: t.Point3.Add(offset),
	}
}

// Rect is an axis-aligned region used as a particle source
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside the rectangle (edges included)
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// RandomPoint picks a uniformly distributed point inside the rectangle
func (r Rect) RandomPoint(rng interface{ Float64() float64 }) Vector2 {
	return Vector2{
		X: r.X + rng.Float64()*r.Width,
		Y: r.Y + rng.Float64()*r.Height,
	}
}
