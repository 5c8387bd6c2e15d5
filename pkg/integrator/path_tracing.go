// Package integrator implements the recursive Monte Carlo radiance
// estimator at the heart of the renderer.
package integrator

import (
	"math"
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
)

// Intersections closer than this are ignored to avoid shadow acne
const tMinEpsilon = 0.001

// PathTracer estimates radiance by recursively sampling light transport
// paths, importance-sampling scatter directions against the scene's lights
type PathTracer struct {
	MaxDepth int // Maximum recursion depth before a path is terminated
}

// NewPathTracer creates a path tracer with the given depth limit
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor computes the radiance carried by a ray through the scene.
// Termination is a hard depth cutoff rather than Russian roulette; a
// terminated path contributes no energy.
func (pt *PathTracer) RayColor(ray core.Ray, scene core.Scene, random *rand.Rand, depth int) core.Vec3 {
	// Bounce limit reached, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Root().Hit(ray, tMinEpsilon, math.Inf(1), random)
	if !isHit {
		return scene.Background(ray)
	}

	emitted := pt.emittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		// Absorbed: only the emission survives
		return emitted
	}

	if scatter.IsSpecular() {
		// Specular directions are deterministic given the material's own
		// random draws; no density weighting applies
		return scatter.Attenuation.MultiplyVec(
			pt.RayColor(scatter.Scattered, scene, random, depth-1))
	}

	// Mix the material's own density with light sampling when the scene
	// designates light sources
	var pdf core.PDF = scatter.PDF
	if lights := scene.Lights(); lights != nil {
		pdf = core.NewMixturePDF(core.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAt(hit.Point, pdf.Generate(random), ray.Time)
	pdfValue := pdf.Value(scattered.Direction)
	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)

	// Zero-density directions (tangent or below the surface) would divide
	// to NaN/Inf; their contribution is defined to be zero
	if pdfValue <= 0 || scatteringPDF <= 0 {
		return emitted
	}

	incoming := pt.RayColor(scattered, scene, random, depth-1)
	contribution := scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(incoming)

	return emitted.Add(contribution)
}

// emittedLight returns the material's emission at the hit, black for
// non-emissive materials
func (pt *PathTracer) emittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(core.Emitter); ok {
		return emitter.Emitted(ray, *hit, hit.U, hit.V, hit.Point)
	}
	return core.Vec3{}
}
