package material

import (
	"math"

	"github.com/example/go-ray-tracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at the given surface coordinates and 3D point.
	// UV is used for image textures, the point for procedural textures.
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor is a uniform color texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checkerboard pattern
// driven by the sign of a sinusoid over world coordinates
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Value selects the even or odd texture based on the hit position
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}
