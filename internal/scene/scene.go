// Package scene loads named planes and rays from YAML and casts every ray against every plane.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/planecast/internal/picking"
	"github.com/Faultbox/planecast/pkg/math"
)

// ErrInvalid is wrapped by every validation error returned from Parse.
var ErrInvalid = errors.New("invalid scene")

// Plane is a named plane.
type Plane struct {
	Name  string
	Plane math.Plane
}

// Ray is a named line.
type Ray struct {
	Name string
	Line math.Line
}

// Scene is a validated set of planes and rays, in document order.
// Camera is nil unless the document has a camera section.
type Scene struct {
	Planes []Plane
	Rays   []Ray
	Camera *picking.Camera
}

// document mirrors the YAML layout.
type document struct {
	Planes []planeSpec `yaml:"planes"`
	Rays   []raySpec   `yaml:"rays"`
	Camera *cameraSpec `yaml:"camera"`
}

// planeSpec accepts exactly one of three forms:
// normal (+ d), coefficients [x, y, z, d], or origin + u + v.
// d belongs to the normal form only.
type planeSpec struct {
	Name         string    `yaml:"name"`
	Normal       []float32 `yaml:"normal"`
	D            *float32  `yaml:"d"`
	Coefficients []float32 `yaml:"coefficients"`
	Origin       []float32 `yaml:"origin"`
	U            []float32 `yaml:"u"`
	V            []float32 `yaml:"v"`
}

type raySpec struct {
	Name      string    `yaml:"name"`
	Origin    []float32 `yaml:"origin"`
	Direction []float32 `yaml:"direction"`
}

// cameraSpec fills picking.DefaultCamera; eye and center are required.
type cameraSpec struct {
	Eye    []float32 `yaml:"eye"`
	Center []float32 `yaml:"center"`
	Up     []float32 `yaml:"up"`
	Fov    *float32  `yaml:"fov"` // degrees
	Near   *float32  `yaml:"near"`
	Far    *float32  `yaml:"far"`
	Width  *float32  `yaml:"width"`
	Height *float32  `yaml:"height"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	s := &Scene{
		Planes: make([]Plane, 0, len(doc.Planes)),
		Rays:   make([]Ray, 0, len(doc.Rays)),
	}

	seen := make(map[string]bool)
	for i, entry := range doc.Planes {
		if err := checkName(seen, entry.Name); err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		p, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("plane %q: %w", entry.Name, err)
		}
		s.Planes = append(s.Planes, Plane{Name: entry.Name, Plane: p})
	}

	seen = make(map[string]bool)
	for i, entry := range doc.Rays {
		if err := checkName(seen, entry.Name); err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		l, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("ray %q: %w", entry.Name, err)
		}
		s.Rays = append(s.Rays, Ray{Name: entry.Name, Line: l})
	}

	if doc.Camera != nil {
		c, err := doc.Camera.build()
		if err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		s.Camera = &c
	}

	return s, nil
}

func checkName(seen map[string]bool, name string) error {
	if name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalid)
	}
	if seen[name] {
		return fmt.Errorf("%w: duplicate name %q", ErrInvalid, name)
	}
	seen[name] = true
	return nil
}

func (p planeSpec) build() (math.Plane, error) {
	normalForm := p.Normal != nil
	coeffForm := p.Coefficients != nil
	pointsForm := p.Origin != nil || p.U != nil || p.V != nil

	forms := 0
	for _, f := range []bool{normalForm, coeffForm, pointsForm} {
		if f {
			forms++
		}
	}
	if forms != 1 {
		return math.Plane{}, fmt.Errorf("%w: want exactly one of normal, coefficients or origin/u/v, got %d", ErrInvalid, forms)
	}

	if p.D != nil && !normalForm {
		return math.Plane{}, fmt.Errorf("%w: d only applies to the normal form", ErrInvalid)
	}

	switch {
	case normalForm:
		n, err := vector("normal", p.Normal)
		if err != nil {
			return math.Plane{}, err
		}
		var d float32
		if p.D != nil {
			d = *p.D
		}
		return math.NewPlane(n, d), nil
	case coeffForm:
		c := p.Coefficients
		if len(c) != 4 {
			return math.Plane{}, fmt.Errorf("%w: coefficients need 4 values, got %d", ErrInvalid, len(c))
		}
		return math.NewPlaneFromComponents(c[0], c[1], c[2], c[3]), nil
	default:
		origin, err := vector("origin", p.Origin)
		if err != nil {
			return math.Plane{}, err
		}
		u, err := vector("u", p.U)
		if err != nil {
			return math.Plane{}, err
		}
		v, err := vector("v", p.V)
		if err != nil {
			return math.Plane{}, err
		}
		if math.Cross(u, v).MagnitudeSquared() == 0 {
			return math.Plane{}, fmt.Errorf("%w: u and v are parallel", ErrInvalid)
		}
		return math.NewPlaneFromPoints(origin, u, v), nil
	}
}

func (r raySpec) build() (math.Line, error) {
	origin, err := vector("origin", r.Origin)
	if err != nil {
		return math.Line{}, err
	}
	dir, err := vector("direction", r.Direction)
	if err != nil {
		return math.Line{}, err
	}
	if dir.MagnitudeSquared() == 0 {
		return math.Line{}, fmt.Errorf("%w: direction is zero", ErrInvalid)
	}
	return math.NewLine(origin, dir), nil
}

func (c cameraSpec) build() (picking.Camera, error) {
	cam := picking.DefaultCamera()

	var err error
	if cam.Eye, err = vector("eye", c.Eye); err != nil {
		return cam, err
	}
	if cam.Center, err = vector("center", c.Center); err != nil {
		return cam, err
	}
	if c.Up != nil {
		if cam.Up, err = vector("up", c.Up); err != nil {
			return cam, err
		}
	}
	if c.Fov != nil {
		cam.FovY = *c.Fov * math32.Pi / 180
	}
	setIf(&cam.Near, c.Near)
	setIf(&cam.Far, c.Far)
	setIf(&cam.Width, c.Width)
	setIf(&cam.Height, c.Height)

	if err := cam.Validate(); err != nil {
		return cam, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cam, nil
}

func setIf(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

func vector(field string, c []float32) (math.Vector3, error) {
	if len(c) != 3 {
		return math.Vector3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalid, field, len(c))
	}
	return math.NewVector3(c[0], c[1], c[2]), nil
}
