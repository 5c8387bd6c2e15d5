package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/example/go-ray-tracer/pkg/core"
)

func makeHit(point, normal core.Vec3, ray core.Ray) core.HitRecord {
	hit := core.HitRecord{Point: point, T: 1.0}
	hit.SetFaceNormal(ray, normal)
	return hit
}

func TestLambertian_Scatter_ReturnsCosinePDF(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	lambertian := NewLambertian(core.NewVec3(0.8, 0.2, 0.3))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	scatter, didScatter := lambertian.Scatter(ray, hit, random)
	if !didScatter {
		t.Fatal("Expected lambertian to scatter")
	}
	if scatter.IsSpecular() {
		t.Error("Expected a diffuse scatter with a PDF")
	}
	expected := core.NewVec3(0.8, 0.2, 0.3)
	if math.Abs(scatter.Attenuation.X-expected.X) > 1e-12 ||
		math.Abs(scatter.Attenuation.Y-expected.Y) > 1e-12 ||
		math.Abs(scatter.Attenuation.Z-expected.Z) > 1e-12 {
		t.Errorf("Expected attenuation %v, got %v", expected, scatter.Attenuation)
	}

	// Generated directions stay above the surface and their PDF matches
	// the material's own scattering density
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(random)
		scattered := core.NewRay(hit.Point, direction)

		pdfValue := scatter.PDF.Value(direction)
		scatteringPDF := lambertian.ScatteringPDF(ray, hit, scattered)
		if math.Abs(pdfValue-scatteringPDF) > 1e-9 {
			t.Fatalf("PDF value %f disagrees with scattering density %f", pdfValue, scatteringPDF)
		}
	}
}

func TestLambertian_ScatteringPDF_BelowSurfaceIsZero(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	scattered := core.NewRay(hit.Point, core.NewVec3(0, -1, 0))
	if got := lambertian.ScatteringPDF(ray, hit, scattered); got != 0 {
		t.Errorf("Expected zero density below the surface, got %f", got)
	}
}

func TestMetal_Scatter_PerfectMirror(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	scatter, didScatter := metal.Scatter(ray, hit, random)
	if !didScatter {
		t.Fatal("Expected metal to scatter")
	}
	if !scatter.IsSpecular() {
		t.Error("Expected a specular scatter without a PDF")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	got := scatter.Scattered.Direction.Normalize()
	if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 || math.Abs(got.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected mirror reflection %v, got %v", expected, got)
	}
}

func TestMetal_Scatter_GrazingFuzzAbsorbed(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0)

	// A grazing reflection heavily perturbed by fuzz frequently dips below
	// the surface and is absorbed
	ray := core.NewRay(core.NewVec3(-10, 0.01, 0), core.NewVec3(10, -0.01, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	absorbed := 0
	for i := 0; i < 200; i++ {
		if _, didScatter := metal.Scatter(ray, hit, random); !didScatter {
			absorbed++
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}

func TestMetal_Scatter_KeepsRayTime(t *testing.T) {
	random := rand.New(rand.NewSource(4))
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)

	ray := core.NewRayAt(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.6)
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	scatter, _ := metal.Scatter(ray, hit, random)
	if scatter.Scattered.Time != 0.6 {
		t.Errorf("Expected scattered time 0.6, got %f", scatter.Scattered.Time)
	}
}

func TestNewMetal_ClampsFuzz(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Fuzz != 1.0 {
		t.Errorf("Expected fuzz clamped to 1, got %f", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Fuzz != 0.0 {
		t.Errorf("Expected fuzz clamped to 0, got %f", m.Fuzz)
	}
}

func TestDielectric_Scatter_UnityRatioPassesThrough(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	glass := NewDielectric(1.0)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	// With matching indices the Schlick reflectance at normal incidence is
	// zero, so the ray always continues straight
	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(ray, hit, random)
		if !didScatter {
			t.Fatal("Expected dielectric to always scatter")
		}
		direction := scatter.Scattered.Direction.Normalize()
		if math.Abs(direction.X) > 1e-9 || math.Abs(direction.Y+1) > 1e-9 || math.Abs(direction.Z) > 1e-9 {
			t.Fatalf("Expected the ray to continue straight, got %v", direction)
		}
	}

	// Same on exit: a back-face hit with ratio 1.0 does not bend either
	exit := core.HitRecord{Point: core.NewVec3(0, 0, 0), T: 1.0}
	exit.SetFaceNormal(ray, core.NewVec3(0, -1, 0))
	scatter, didScatter := glass.Scatter(ray, exit, random)
	if !didScatter {
		t.Fatal("Expected dielectric to scatter on exit")
	}
	direction := scatter.Scattered.Direction.Normalize()
	if math.Abs(direction.Y+1) > 1e-9 {
		t.Errorf("Expected the exiting ray to continue straight, got %v", direction)
	}
}

func TestDielectric_Scatter_TotalInternalReflection(t *testing.T) {
	random := rand.New(rand.NewSource(6))
	glass := NewDielectric(1.5)

	// Exiting glass at a shallow angle: 1.5·sin(45°) > 1, so refraction is
	// impossible and the ray must reflect
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), T: 1.0}
	hit.SetFaceNormal(ray, core.NewVec3(0, -1, 0)) // back face: exiting

	if hit.FrontFace {
		t.Fatal("Expected a back-face hit for an exiting ray")
	}

	scatter, didScatter := glass.Scatter(ray, hit, random)
	if !didScatter {
		t.Fatal("Expected dielectric to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	got := scatter.Scattered.Direction.Normalize()
	if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, got)
	}
}

func TestReflectance_Bounds(t *testing.T) {
	// Normal incidence on glass gives the classic 4 percent
	if got := Reflectance(1.0, 1.0/1.5); math.Abs(got-0.04) > 1e-9 {
		t.Errorf("Expected reflectance 0.04 at normal incidence, got %f", got)
	}

	// Grazing incidence approaches full reflection
	if got := Reflectance(0.0, 1.0/1.5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", got)
	}
}

func TestDiffuseLight_EmitsFrontFaceOnly(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	front := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)
	if got := light.Emitted(ray, front, 0, 0, front.Point); got.X != 4 {
		t.Errorf("Expected front-face emission (4,4,4), got %v", got)
	}

	back := front
	back.FrontFace = false
	if got := light.Emitted(ray, back, 0, 0, back.Point); got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("Expected no back-face emission, got %v", got)
	}
}

func TestDiffuseLight_NeverScatters(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	if _, didScatter := light.Scatter(ray, hit, random); didScatter {
		t.Error("Expected lights to absorb incoming rays")
	}
}

func TestIsotropic_UniformDensity(t *testing.T) {
	random := rand.New(rand.NewSource(8))
	isotropic := NewIsotropic(core.NewVec3(0.7, 0.7, 0.7))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := makeHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ray)

	scatter, didScatter := isotropic.Scatter(ray, hit, random)
	if !didScatter {
		t.Fatal("Expected isotropic to scatter")
	}

	expected := 1.0 / (4.0 * math.Pi)
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(random)
		if got := scatter.PDF.Value(direction); math.Abs(got-expected) > 1e-12 {
			t.Fatalf("Expected uniform density %f, got %f", expected, got)
		}
		scattered := core.NewRay(hit.Point, direction)
		if got := isotropic.ScatteringPDF(ray, hit, scattered); math.Abs(got-expected) > 1e-12 {
			t.Fatalf("Expected scattering density %f, got %f", expected, got)
		}
	}
}

func TestChecker_AlternatesBySign(t *testing.T) {
	checker := NewChecker(
		NewSolidColor(core.NewVec3(1, 1, 1)),
		NewSolidColor(core.NewVec3(0, 0, 0)),
	)

	// sin(10·0.05)³ > 0 selects even, flipping one coordinate's sign
	// selects odd
	even := checker.Value(0, 0, core.NewVec3(0.05, 0.05, 0.05))
	odd := checker.Value(0, 0, core.NewVec3(-0.05, 0.05, 0.05))

	if even.X != 1 {
		t.Errorf("Expected the even texture, got %v", even)
	}
	if odd.X != 0 {
		t.Errorf("Expected the odd texture, got %v", odd)
	}
}
