package picking

import (
	"testing"

	"github.com/Faultbox/planecast/pkg/math"
)

func testCameraValue() Camera {
	c := DefaultCamera()
	c.Eye = math.Vector3{X: 0, Y: 10, Z: 10}
	return c
}

func TestCameraRayMatchesScreenToRay(t *testing.T) {
	c := testCameraValue()

	got := c.Ray(400, 300)
	want := ScreenToRay(400, 300, 800, 600, testCamera())
	if !near(got.Origin, want.Origin, 1e-4) || !near(got.Direction, want.Direction, 1e-4) {
		t.Errorf("Camera.Ray() = %+v, want %+v", got, want)
	}
}

func TestCameraPicksGroundUnderCenter(t *testing.T) {
	c := testCameraValue()

	p, ok := PickGround(c.Ray(c.Width/2, c.Height/2), 0)
	if !ok {
		t.Fatal("PickGround() missed")
	}
	if !near(p, math.Vector3{}, 0.01) {
		t.Errorf("PickGround() = %v, want ~origin", p)
	}

	// a pixel above the center lands farther away along -Z
	far, ok := PickGround(c.Ray(c.Width/2, c.Height/4), 0)
	if !ok {
		t.Fatal("PickGround() above center missed")
	}
	if far.Z >= p.Z {
		t.Errorf("upper pixel hit %v, want beyond %v", far, p)
	}
}

func TestCameraValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Camera)
		wantErr bool
	}{
		{"valid", func(c *Camera) {}, false},
		{"eye at center", func(c *Camera) { c.Eye = c.Center }, true},
		{"up along view", func(c *Camera) { c.Eye = math.Vector3{X: 0, Y: 10, Z: 0} }, true},
		{"zero viewport", func(c *Camera) { c.Width = 0 }, true},
		{"flat fov", func(c *Camera) { c.FovY = 0 }, true},
		{"far before near", func(c *Camera) { c.Far = c.Near }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCameraValue()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
