package geom

// CirclesCollide checks if two circles are colliding.
// Touching circles count as colliding. Compares squared distances to avoid a square root.
func CirclesCollide(a, b BoundingCircle) bool {
	radii := a.Radius + b.Radius
	return radii*radii >= a.Center.DistanceSquared(b.Center)
}

// TriangleCollidesCircle checks if a triangle and a circle overlap.
// The circle collides if its center is inside the triangle or if any edge
// passes within its radius.
func TriangleCollidesCircle(t BoundingTriangle, c BoundingCircle) bool {
	if !isDegenerate(t) && PointInTriangle(c.Center, t.Point1, t.Point2, t.Point3) {
		return true
	}

	return circleIntersectsEdge(c, t.Point1, t.Point2) ||
		circleIntersectsEdge(c, t.Point2, t.Point3) ||
		circleIntersectsEdge(c, t.Point3, t.Point1)
}

// PointInTriangle uses the three-sign test: the point is outside only when
// it sees both a clockwise and a counter-clockwise edge. A zero sign (point on
// an edge line) never makes it outside on its own.
func PointInTriangle(pt, v1, v2, v3 Vector2) bool {
	d1 := sign(pt, v1, v2)
	d2 := sign(pt, v2, v3)
	d3 := sign(pt, v3, v1)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// sign returns twice the signed area of (p1, p2, p3).
// Positive means counter-clockwise, negative clockwise, 0 collinear.
func sign(p1, p2, p3 Vector2) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// isDegenerate reports a zero-area triangle. Every point would pass the
// sign test against it, so only its edges are used for collision.
func isDegenerate(t BoundingTriangle) bool {
	return sign(t.Point1, t.Point2, t.Point3) == 0
}

// circleIntersectsEdge finds the closest point on segment v1-v2 to the circle
// center by clamping the projection parameter to [0,1]
func circleIntersectsEdge(c BoundingCircle, v1, v2 Vector2) bool {
	edge := v2.Sub(v1)
	edgeLengthSquared := edge.LengthSquared()
	radiusSquared := c.Radius * c.Radius

	// Zero-length edge: plain point-to-circle test
	if edgeLengthSquared == 0 {
		return c.Center.DistanceSquared(v1) <= radiusSquared
	}

	t := c.Center.Sub(v1).Dot(edge) / edgeLengthSquared
	t = max(0, min(1, t))

	projection := v1.Add(edge.Scale(t))
	return c.Center.DistanceSquared(projection) <= radiusSquared
}
