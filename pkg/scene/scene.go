// Package scene assembles geometry, materials, lights, and a camera into
// renderable worlds.
package scene

import (
	"github.com/example/go-ray-tracer/pkg/core"
	"github.com/example/go-ray-tracer/pkg/renderer"
)

// Scene bundles a world, its lights, a background, and a camera setup
type Scene struct {
	World     core.Hittable
	LightList core.Sampleable
	Backdrop  func(ray core.Ray) core.Vec3
	Camera    renderer.CameraConfig
}

// Root returns the world geometry
func (s *Scene) Root() core.Hittable {
	return s.World
}

// Lights returns the sampleable light geometry, or nil when the scene has
// no explicit lights to importance-sample.
func (s *Scene) Lights() core.Sampleable {
	return s.LightList
}

// Background returns the radiance carried by rays that escape the scene
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	if s.Backdrop == nil {
		return core.Vec3{}
	}
	return s.Backdrop(ray)
}

// GradientBackground blends white to light blue by ray direction height
func GradientBackground(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	white := core.Vec3{X: 1.0, Y: 1.0, Z: 1.0}
	blue := core.Vec3{X: 0.5, Y: 0.7, Z: 1.0}
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}

// BlackBackground absorbs every escaping ray
func BlackBackground(ray core.Ray) core.Vec3 {
	return core.Vec3{}
}
