package scene

import (
	"github.com/example/go-ray-tracer/pkg/core"
	"github.com/example/go-ray-tracer/pkg/geometry"
	"github.com/example/go-ray-tracer/pkg/material"
	"github.com/example/go-ray-tracer/pkg/renderer"
)

// NewPerlinSpheres builds two marble-textured spheres under a gradient sky.
// The noise tables are generated from the given seed.
func NewPerlinSpheres(seed int64, aspectRatio float64) *Scene {
	noise := material.NewPerlin(seed)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(noise, material.NoiseMarble, 4.0))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		World:    world,
		Backdrop: GradientBackground,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   aspectRatio,
			Aperture:      0.0,
			FocusDistance: 10.0,
		},
	}
}

// NewSimpleLight builds the perlin spheres lit by a rectangular area light
// against a black background.
func NewSimpleLight(seed int64, aspectRatio float64) *Scene {
	noise := material.NewPerlin(seed)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(noise, material.NoiseMarble, 4.0))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	lightRect := geometry.NewXYRect(3, 5, 1, 3, -2, light)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		lightRect,
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	lights := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))

	return &Scene{
		World:     world,
		LightList: lights,
		Backdrop:  BlackBackground,
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(26, 3, 6),
			LookAt:        core.NewVec3(0, 2, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   aspectRatio,
			Aperture:      0.0,
			FocusDistance: 10.0,
		},
	}
}
