package material

import (
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
)

// DiffuseLight is an emission-only material for area lights
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emit)}
}

// NewTexturedDiffuseLight creates a light whose emission varies by texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface; lights absorb all incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF is zero since lights never scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color when the front face is struck, black
// otherwise
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(u, v, point)
}
