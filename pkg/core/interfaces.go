package core

import "math/rand"

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit tests the ray against the object within (tMin, tMax) and returns
	// the nearest intersection, if any. The random generator is used by
	// probabilistic objects such as participating media.
	Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool)
	// BoundingBox returns a box enclosing the object over [time0, time1]
	BoundingBox(time0, time1 float64) AABB
}

// Sampleable is a Hittable that supports importance sampling directions
// toward itself, typically a light source
type Sampleable interface {
	Hittable
	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin toward this object
	PDFValue(origin, direction Vec3) float64
	// RandomToward returns a random direction from origin toward this object
	RandomToward(origin Vec3, random *rand.Rand) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, oriented against the ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface coordinates of the hit
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray (specular materials only)
	Attenuation Vec3 // Color attenuation
	PDF         PDF  // Sampling density for diffuse materials (nil for specular)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// Material describes how a surface scatters incoming light
type Material interface {
	// Scatter computes a scattered ray for the hit, returning false if the
	// ray was absorbed
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
	// ScatteringPDF returns the density of the material scattering rayIn at
	// the hit into the scattered direction
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit HitRecord, u, v float64, point Vec3) Vec3
}

// PDF describes a probability density over directions
type PDF interface {
	// Value returns the density of the given direction
	Value(direction Vec3) float64
	// Generate returns a direction sampled from the density
	Generate(random *rand.Rand) Vec3
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
