package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/planecast/internal/logger"
	"github.com/Faultbox/planecast/internal/picking"
	"github.com/Faultbox/planecast/pkg/math"
)

// Result is the outcome of casting one ray against one plane.
// Point and T are zero when Hit is false.
type Result struct {
	Ray   string       `yaml:"ray"`
	Plane string       `yaml:"plane"`
	Hit   bool         `yaml:"hit"`
	Point math.Vector3 `yaml:"point"`
	T     float32      `yaml:"t"`
}

// ErrNoCamera is returned by Pick for scenes without a camera section.
var ErrNoCamera = errors.New("scene has no camera")

// Evaluate casts every ray against every plane, ray-major in document order.
func Evaluate(s *Scene) []Result {
	log := logger.For("scene")
	results := make([]Result, 0, len(s.Rays)*len(s.Planes))
	for _, r := range s.Rays {
		for _, p := range s.Planes {
			hit, ok := math.RayCast(r.Line, p.Plane)
			log.Debug("ray cast",
				zap.String("ray", r.Name),
				zap.String("plane", p.Name),
				zap.Bool("hit", ok),
				zap.Stringer("point", hit.Point),
				zap.Float32("t", hit.T),
			)
			results = append(results, Result{
				Ray:   r.Name,
				Plane: p.Name,
				Hit:   ok,
				Point: hit.Point,
				T:     hit.T,
			})
		}
	}
	return results
}

// Pick casts the camera ray through pixel (x, y) against every plane.
// Unlike Evaluate, hits behind the camera count as misses.
func Pick(s *Scene, x, y float32) ([]Result, error) {
	if s.Camera == nil {
		return nil, ErrNoCamera
	}

	log := logger.For("picking")
	ray := s.Camera.Ray(x, y)
	name := fmt.Sprintf("pixel(%g,%g)", x, y)
	log.Debug("camera ray",
		zap.String("ray", name),
		zap.Stringer("origin", ray.Origin),
		zap.Stringer("direction", ray.Direction),
	)

	results := make([]Result, 0, len(s.Planes))
	for _, p := range s.Planes {
		hit, ok := picking.PickPlane(ray, p.Plane)
		log.Debug("pick",
			zap.String("plane", p.Name),
			zap.Bool("hit", ok),
			zap.Float32("t", hit.T),
		)
		results = append(results, Result{
			Ray:   name,
			Plane: p.Name,
			Hit:   ok,
			Point: hit.Point,
			T:     hit.T,
		})
	}
	return results, nil
}

// Hits returns only the results that intersect.
func Hits(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Hit {
			out = append(out, r)
		}
	}
	return out
}
