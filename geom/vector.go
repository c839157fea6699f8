package geom

import "math"

// Vector2 represents a 2D vector
type Vector2 struct {
	X, Y float64
}

var (
	// Zero is the origin
	Zero = Vector2{}

	// UnitX points right
	UnitX = Vector2{X: 1}

	// UnitY points down the screen
	UnitY = Vector2{Y: 1}
)

// Vec creates a vector from its components
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared avoids the square root when only comparisons are needed
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the euclidean length
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceSquared returns the squared distance between two points
func (v Vector2) DistanceSquared(o Vector2) float64 {
	return v.Sub(o).LengthSquared()
}

// Distance returns the distance between two points
func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector in the direction of v.
// ok is false for the zero vector, whose direction is undefined.
func (v Vector2) Normalize() (unit Vector2, ok bool) {
	length := v.Length()
	if length == 0 {
		return Zero, false
	}
	return Vector2{X: v.X / length, Y: v.Y / length}, true
}

// RotateAround rotates v about pivot by angle radians (clockwise on screen, y down)
func (v Vector2) RotateAround(pivot Vector2, angle float64) Vector2 {
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)

	translated := v.Sub(pivot)
	rotated := Vector2{
		X: translated.X*cosTheta - translated.Y*sinTheta,
		Y: translated.X*sinTheta + translated.Y*cosTheta,
	}
	return rotated.Add(pivot)
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Lerp linearly interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
