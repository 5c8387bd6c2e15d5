package scene

import (
	"fmt"
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
	"github.com/example/go-ray-tracer/pkg/geometry"
	"github.com/example/go-ray-tracer/pkg/material"
	"github.com/example/go-ray-tracer/pkg/renderer"
)

// NewWeekendScene builds the classic cover scene: a checkered ground plane,
// a grid of small random spheres, and three large feature spheres. The grid
// layout is driven entirely by the given seed. The world is wrapped in a BVH
// since the scene holds several hundred objects.
func NewWeekendScene(seed int64, aspectRatio float64) (*Scene, error) {
	random := rand.New(rand.NewSource(seed))

	checker := material.NewChecker(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	ground := material.NewTexturedLambertian(checker)

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMaterial := random.Float64()
			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(0, 1, random).MultiplyVec(core.RandomVec3(0, 1, random))
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				objects = append(objects, geometry.NewMovingSphere(
					center, center1, 0.0, 1.0, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(0.5, 1, random)
				fuzz := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	world, err := geometry.NewBVH(objects, 0.0, 1.0, random)
	if err != nil {
		return nil, fmt.Errorf("scene: building weekend scene: %w", err)
	}

	return &Scene{
		World:    world,
		Backdrop: GradientBackground,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   aspectRatio,
			Aperture:      0.1,
			FocusDistance: 10.0,
			Time0:         0.0,
			Time1:         1.0,
		},
	}, nil
}
