package core

import (
	"math"
	"math/rand"
)

// CosinePDF is a cosine-weighted density over the hemisphere around a normal
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted PDF about the given normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, zero below
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate returns a cosine-weighted direction about the normal
func (p *CosinePDF) Generate(random *rand.Rand) Vec3 {
	return p.uvw.Local(RandomCosineDirection(random))
}

// SpherePDF is the uniform density over the full sphere of directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value returns the constant density 1/(4π)
func (p *SpherePDF) Value(direction Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniformly distributed direction
func (p *SpherePDF) Generate(random *rand.Rand) Vec3 {
	return RandomUnitVector(random)
}

// HittablePDF importance-samples directions from a fixed origin toward an
// object, typically a light source
type HittablePDF struct {
	target Sampleable
	origin Vec3
}

// NewHittablePDF creates a PDF that samples directions toward target
func NewHittablePDF(target Sampleable, origin Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value returns the solid-angle density of the direction toward the target
func (p *HittablePDF) Value(direction Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate returns a random direction toward the target
func (p *HittablePDF) Generate(random *rand.Rand) Vec3 {
	return p.target.RandomToward(p.origin, random)
}

// MixturePDF mixes two sampling strategies with equal weight
type MixturePDF struct {
	p0, p1 PDF
}

// NewMixturePDF creates an equal-weight mixture of two PDFs
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p0: p0, p1: p1}
}

// Value returns the arithmetic mean of the two constituent densities
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.p0.Value(direction) + 0.5*p.p1.Value(direction)
}

// Generate draws from either constituent with probability 1/2
func (p *MixturePDF) Generate(random *rand.Rand) Vec3 {
	if random.Float64() < 0.5 {
		return p.p0.Generate(random)
	}
	return p.p1.Generate(random)
}
