// Package picking turns screen positions into world-space rays and picks points on planes.
package picking

import (
	"github.com/Faultbox/planecast/pkg/math"
)

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
// The direction is normalized unless near and far unproject to the same point.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) math.Line {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)

	dir := far.Sub(near)
	if dir.MagnitudeSquared() > 0 {
		dir = dir.Unit()
	}

	return math.NewLine(near, dir)
}

func unproject(invViewProj math.Mat4, x, y, z float32) math.Vector3 {
	p := invViewProj.MulVec4(math.Vec4{x, y, z, 1})
	if p[3] != 0 {
		return math.Vector3{X: p[0] / p[3], Y: p[1] / p[3], Z: p[2] / p[3]}
	}
	return math.Vector3{X: p[0], Y: p[1], Z: p[2]}
}

// PickPlane intersects the ray with the plane.
// ok is false when the ray is parallel to the plane or the hit lies behind the origin.
func PickPlane(ray math.Line, plane math.Plane) (hit math.Intersection, ok bool) {
	hit, ok = math.RayCast(ray, plane)
	if !ok || hit.T < 0 {
		return math.Intersection{}, false
	}
	return hit, true
}

// PickGround intersects the ray with the horizontal plane Y = height.
func PickGround(ray math.Line, height float32) (math.Vector3, bool) {
	hit, ok := PickPlane(ray, math.NewPlaneFromComponents(0, 1, 0, height))
	return hit.Point, ok
}
