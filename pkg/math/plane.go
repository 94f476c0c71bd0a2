package math

import "strings"

// rayCastBias shortens every hit parameter so the returned point sits just
// in front of the surface instead of on (or behind) it.
const rayCastBias = 0.999999

// Line is a ray with an origin and a direction.
// Direction need not be normalized.
type Line struct {
	Origin    Vector3
	Direction Vector3
}

// NewLine creates a line from origin and direction.
func NewLine(origin, direction Vector3) Line {
	return Line{Origin: origin, Direction: direction}
}

// PointAt returns Origin + Direction*t.
func (l Line) PointAt(t float32) Vector3 {
	return l.Origin.Add(l.Direction.Mul(t))
}

// Plane is the set of points P with Normal·P = D.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane creates a plane from a normal and offset. The normal is used as given.
func NewPlane(normal Vector3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromComponents creates the plane x*X + y*Y + z*Z = d.
func NewPlaneFromComponents(x, y, z, d float32) Plane {
	return Plane{Normal: Vector3{x, y, z}, D: d}
}

// NewPlaneFromPoints creates the plane through origin spanned by u and v.
// The normal is Normal(u, v), so it is unit length.
func NewPlaneFromPoints(origin, u, v Vector3) Plane {
	n := Normal(u, v)
	return Plane{Normal: n, D: Dot(n, origin)}
}

// Distance returns Normal·p - D. It is the signed distance when Normal is unit length.
func (p Plane) Distance(point Vector3) float32 {
	return Dot(p.Normal, point) - p.D
}

// String formats the plane as "+1x-2y+3z=4".
func (p Plane) String() string {
	var sb strings.Builder
	writeSigned(&sb, p.Normal.X)
	sb.WriteByte('x')
	writeSigned(&sb, p.Normal.Y)
	sb.WriteByte('y')
	writeSigned(&sb, p.Normal.Z)
	sb.WriteString("z=")
	sb.WriteString(formatFloat(p.D))
	return sb.String()
}

func writeSigned(sb *strings.Builder, f float32) {
	if f >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(formatFloat(f))
}

// Intersection is a ray-plane hit.
type Intersection struct {
	Point Vector3
	T     float32 // parameter along the normalized direction
}

// RayCast intersects line with plane.
// The direction is normalized on a copy; line itself is never changed.
// It returns false, with a zero Intersection, when the ray is parallel to the plane.
// Hits behind the origin are reported with a negative T.
func RayCast(line Line, plane Plane) (Intersection, bool) {
	dir := line.Direction.Unit()

	denominator := Dot(plane.Normal, dir)
	if denominator == 0 {
		return Intersection{}, false
	}

	numerator := plane.D - Dot(plane.Normal, line.Origin)
	t := (numerator / denominator) * rayCastBias

	return Intersection{
		Point: line.Origin.Add(dir.Mul(t)),
		T:     t,
	}, true
}
