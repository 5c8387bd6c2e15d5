package material

import (
	"math"

	"github.com/example/go-ray-tracer/pkg/core"
)

// NoiseKind selects how Perlin noise is filtered and combined
type NoiseKind int

const (
	// NoiseUnfiltered uses the nearest lattice value, producing blocks
	NoiseUnfiltered NoiseKind = iota
	// NoiseTrilinear linearly interpolates the surrounding lattice values
	NoiseTrilinear
	// NoiseSmoothed applies Hermite smoothing before interpolation
	NoiseSmoothed
	// NoiseWithRandomVectors is classic Perlin noise over lattice unit vectors
	NoiseWithRandomVectors
	// NoiseTurbulence sums noise octaves at increasing frequency
	NoiseTurbulence
	// NoiseMarble produces sinusoidal banding perturbed by turbulence
	NoiseMarble
)

// Octaves summed for turbulence and marble patterns
const turbulenceDepth = 7

// NoiseTexture is a procedural texture driven by Perlin noise
type NoiseTexture struct {
	Noise *Perlin
	Kind  NoiseKind
	Scale float64
}

// NewNoiseTexture creates a noise texture with the given variant and
// frequency scale
func NewNoiseTexture(noise *Perlin, kind NoiseKind, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Kind: kind, Scale: scale}
}

// Value returns a grayscale color for the noise variant at the given point
func (t *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	white := core.NewVec3(1, 1, 1)
	scaled := point.Multiply(t.Scale)

	switch t.Kind {
	case NoiseUnfiltered:
		return white.Multiply(t.Noise.NoiseUnfiltered(scaled))
	case NoiseTrilinear:
		return white.Multiply(t.Noise.NoiseTrilinear(scaled))
	case NoiseSmoothed:
		return white.Multiply(t.Noise.NoiseSmoothed(scaled))
	case NoiseWithRandomVectors:
		// Vector noise is in [-1, 1]; remap to a displayable value
		return white.Multiply(0.5 * (1.0 + t.Noise.Noise(scaled)))
	case NoiseTurbulence:
		return white.Multiply(t.Noise.Turbulence(scaled, turbulenceDepth))
	case NoiseMarble:
		banding := math.Sin(t.Scale*point.Z + 10.0*t.Noise.Turbulence(point, turbulenceDepth))
		return white.Multiply(0.5 * (1.0 + banding))
	default:
		return white
	}
}
