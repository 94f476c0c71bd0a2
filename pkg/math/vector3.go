// Package math provides float32 vector, plane and matrix types for 3D geometry.
package math

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Vector3 is a 3D vector. Operations never modify the receiver.
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates a vector from its components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Magnitude returns the Euclidean length.
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length, avoiding the square root.
func (v Vector3) MagnitudeSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns v scaled to length 1.
// The zero vector has no direction and produces non-finite components.
func (v Vector3) Unit() Vector3 {
	return v.Div(v.Magnitude())
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Sum(v, other)
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Subtract(v, other)
}

// Mul returns v * k.
func (v Vector3) Mul(k float32) Vector3 {
	return Scale(v, k)
}

// Div returns v / k, computed as v * (1/k).
func (v Vector3) Div(k float32) Vector3 {
	return Scale(v, 1/k)
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// String formats the vector as "<x,y,z>".
func (v Vector3) String() string {
	return "<" + formatFloat(v.X) + "," + formatFloat(v.Y) + "," + formatFloat(v.Z) + ">"
}

// Sum returns a + b.
func Sum(a, b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Subtract returns a - b.
func Subtract(a, b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a with every component multiplied by k.
func Scale(a Vector3, k float32) Vector3 {
	return Vector3{a.X * k, a.Y * k, a.Z * k}
}

// ScalarMul returns k * v.
func ScalarMul(k float32, v Vector3) Vector3 {
	return Scale(v, k)
}

// ScalarDiv is the scalar-on-the-left division k / v.
// It does not divide k by each component: it returns v * (1/k),
// so ScalarDiv(2, <4,6,8>) is <2,3,4>. Existing callers rely on this.
func ScalarDiv(k float32, v Vector3) Vector3 {
	return Scale(v, 1/k)
}

// Dot returns the dot product.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product u × v.
func Cross(u, v Vector3) Vector3 {
	return Vector3{
		u.Y*v.Z - v.Y*u.Z,
		v.X*u.Z - u.X*v.Z,
		u.X*v.Y - v.X*u.Y,
	}
}

// Normal returns the unit vector perpendicular to u and v (right-hand rule).
// Swapping the operands negates the result.
func Normal(u, v Vector3) Vector3 {
	return Cross(u, v).Unit()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
