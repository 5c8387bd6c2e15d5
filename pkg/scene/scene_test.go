package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/example/go-ray-tracer/pkg/core"
	"github.com/example/go-ray-tracer/pkg/integrator"
	"github.com/example/go-ray-tracer/pkg/renderer"
)

func TestGradientBackground(t *testing.T) {
	// Straight up is the sky blue, straight down is white
	up := GradientBackground(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	if math.Abs(up.X-0.5) > 1e-9 || math.Abs(up.Y-0.7) > 1e-9 || math.Abs(up.Z-1.0) > 1e-9 {
		t.Errorf("Expected sky blue looking up, got %v", up)
	}

	down := GradientBackground(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)))
	if math.Abs(down.X-1.0) > 1e-9 || math.Abs(down.Y-1.0) > 1e-9 || math.Abs(down.Z-1.0) > 1e-9 {
		t.Errorf("Expected white looking down, got %v", down)
	}
}

func TestScene_Background_NilBackdropIsBlack(t *testing.T) {
	s := &Scene{}
	if got := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != (core.Vec3{}) {
		t.Errorf("Expected black without a backdrop, got %v", got)
	}
}

func TestNewCornellBox(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	s := NewCornellBox(1.0)

	if s.Lights() == nil {
		t.Fatal("Expected the Cornell box to designate its ceiling light")
	}
	if got := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); got != (core.Vec3{}) {
		t.Errorf("Expected a black background, got %v", got)
	}

	// The standard camera ray must enter the box and hit a wall
	camera, err := renderer.NewCamera(s.Camera)
	if err != nil {
		t.Fatalf("Unexpected camera error: %v", err)
	}
	ray := camera.GetRay(0.5, 0.5, random)
	hit, isHit := s.Root().Hit(ray, 0.001, math.Inf(1), random)
	if !isHit {
		t.Fatal("Expected the center camera ray to hit the box interior")
	}
	if hit.Point.Z < 0 || hit.Point.Z > 556 {
		t.Errorf("Expected a hit inside the box, got %v", hit.Point)
	}

	// Looking straight down from inside the box finds the floor
	floorRay := core.NewRay(core.NewVec3(278, 278, 278), core.NewVec3(0, -1, 0))
	hit, isHit = s.Root().Hit(floorRay, 0.001, math.Inf(1), random)
	if !isHit {
		t.Fatal("Expected a floor hit")
	}
	if math.Abs(hit.Point.Y) > 1e-9 {
		t.Errorf("Expected the floor at y=0, got %v", hit.Point)
	}
}

func TestNewCornellBox_CeilingLightEmitsDownward(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	s := NewCornellBox(1.0)
	pt := integrator.NewPathTracer(5)

	// Straight up into the light from below: emission 15
	ray := core.NewRay(core.NewVec3(278, 100, 279.5), core.NewVec3(0, 1, 0))
	color := pt.RayColor(ray, s, random, 5)
	if math.Abs(color.X-15) > 1e-9 {
		t.Errorf("Expected emission 15 looking into the light, got %v", color)
	}
}

func TestNewCornellSmoke(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	s := NewCornellSmoke(1.0)

	if s.Lights() == nil {
		t.Fatal("Expected the smoke variant to keep the ceiling light")
	}

	// A ray through the short box region must eventually scatter in the
	// medium or pass through to a wall; either way it hits something.
	ray := core.NewRay(core.NewVec3(212, 82, -100), core.NewVec3(0, 0, 1))
	if _, isHit := s.Root().Hit(ray, 0.001, math.Inf(1), random); !isHit {
		t.Error("Expected the smoke scene to intersect a forward ray")
	}
}

func TestNewWeekendScene(t *testing.T) {
	random := rand.New(rand.NewSource(4))
	s, err := NewWeekendScene(42, 16.0/9.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.Lights() != nil {
		t.Error("Expected no designated lights in the sky-lit scene")
	}

	// The ground sphere is always beneath the camera
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, isHit := s.Root().Hit(ray, 0.001, math.Inf(1), random)
	if !isHit {
		t.Fatal("Expected a ground hit")
	}
	if hit.Point.Y > 1.0 {
		t.Errorf("Expected a hit at ground level, got %v", hit.Point)
	}
}

func TestNewWeekendScene_SameSeedSameLayout(t *testing.T) {
	random := rand.New(rand.NewSource(5))

	a, err := NewWeekendScene(42, 16.0/9.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := NewWeekendScene(42, 16.0/9.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Identical seeds must place identical spheres: probe with a bundle of
	// rays and compare the hit distances.
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(13, 2, 3)
		direction := core.RandomVec3(-1, 1, random)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		hitA, okA := a.Root().Hit(ray, 0.001, math.Inf(1), random)
		hitB, okB := b.Root().Hit(ray, 0.001, math.Inf(1), random)
		if okA != okB {
			t.Fatalf("Ray %d: layouts disagree on hit/miss", i)
		}
		if okA && math.Abs(hitA.T-hitB.T) > 1e-9 {
			t.Fatalf("Ray %d: hit distances differ: %f vs %f", i, hitA.T, hitB.T)
		}
	}
}

func TestNewPerlinSpheres(t *testing.T) {
	random := rand.New(rand.NewSource(6))
	s := NewPerlinSpheres(42, 16.0/9.0)

	ray := core.NewRay(core.NewVec3(13, 2, 3), core.NewVec3(0, 2, 0).Subtract(core.NewVec3(13, 2, 3)))
	if _, isHit := s.Root().Hit(ray, 0.001, math.Inf(1), random); !isHit {
		t.Error("Expected the camera-to-sphere ray to hit")
	}

	up := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	if up == (core.Vec3{}) {
		t.Error("Expected a gradient sky, got black")
	}
}

func TestNewSimpleLight(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	s := NewSimpleLight(42, 16.0/9.0)

	if s.Lights() == nil {
		t.Fatal("Expected designated lights")
	}
	if got := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != (core.Vec3{}) {
		t.Errorf("Expected a black background, got %v", got)
	}

	// The light sphere at (0,7,0) is sampleable from the marble sphere
	direction := s.Lights().RandomToward(core.NewVec3(0, 2, 0), random)
	if direction.Y <= 0 {
		t.Errorf("Expected sampled directions to point up at the light, got %v", direction)
	}
}
