package picking

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/Faultbox/planecast/pkg/math"
)

// Camera is a perspective camera looking from Eye toward Center.
type Camera struct {
	Eye, Center, Up math.Vector3
	FovY            float32 // vertical field of view, radians
	Near, Far       float32
	Width, Height   float32 // viewport in pixels
}

// DefaultCamera returns a 60 degree, 800x600 camera with Y up. Eye and Center are left zero.
func DefaultCamera() Camera {
	return Camera{
		Up:     math.Vector3{X: 0, Y: 1, Z: 0},
		FovY:   math32.Pi / 3,
		Near:   0.1,
		Far:    100,
		Width:  800,
		Height: 600,
	}
}

// Validate reports a camera that cannot produce a view-projection matrix.
func (c Camera) Validate() error {
	view := c.Center.Sub(c.Eye)
	switch {
	case view.MagnitudeSquared() == 0:
		return errors.New("eye and center coincide")
	case math.Cross(view, c.Up).MagnitudeSquared() == 0:
		return errors.New("up is parallel to the view direction")
	case c.Width <= 0 || c.Height <= 0:
		return errors.New("viewport must be positive")
	case c.FovY <= 0 || c.FovY >= math32.Pi:
		return errors.New("fov must be between 0 and 180 degrees")
	case c.Near <= 0 || c.Far <= c.Near:
		return errors.New("need 0 < near < far")
	}
	return nil
}

// ViewProjection returns projection * view.
func (c Camera) ViewProjection() math.Mat4 {
	view := math.LookAt(c.Eye, c.Center, c.Up)
	proj := math.Perspective(c.FovY, c.Width/c.Height, c.Near, c.Far)
	return proj.Mul(view)
}

// Ray returns the world-space ray through pixel (x, y).
func (c Camera) Ray(x, y float32) math.Line {
	return ScreenToRay(x, y, c.Width, c.Height, c.ViewProjection().Inverse())
}
