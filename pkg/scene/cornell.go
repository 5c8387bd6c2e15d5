package scene

import (
	"github.com/example/go-ray-tracer/pkg/core"
	"github.com/example/go-ray-tracer/pkg/geometry"
	"github.com/example/go-ray-tracer/pkg/material"
	"github.com/example/go-ray-tracer/pkg/renderer"
)

// cornellCamera is the standard view into the 555-unit Cornell box
func cornellCamera(aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 278, Y: 278, Z: -800},
		LookAt:        core.Vec3{X: 278, Y: 278, Z: 0},
		Up:            core.Vec3{X: 0, Y: 1, Z: 0},
		VFov:          40.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.0,
		FocusDistance: 10.0,
	}
}

// cornellWalls builds the five walls and the ceiling light, and returns the
// world list together with the light rect used for importance sampling.
func cornellWalls() (*geometry.HittableList, *geometry.XZRect) {
	red := material.NewLambertian(core.Vec3{X: 0.65, Y: 0.05, Z: 0.05})
	white := material.NewLambertian(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})
	green := material.NewLambertian(core.Vec3{X: 0.12, Y: 0.45, Z: 0.15})
	light := material.NewDiffuseLight(core.Vec3{X: 15, Y: 15, Z: 15})

	lightRect := geometry.NewXZRect(213, 343, 227, 332, 554, light)

	world := geometry.NewHittableList()
	world.Add(geometry.NewYZRect(0, 555, 0, 555, 555, green))
	world.Add(geometry.NewYZRect(0, 555, 0, 555, 0, red))
	world.Add(geometry.NewFlipFace(lightRect))
	world.Add(geometry.NewXZRect(0, 555, 0, 555, 0, white))
	world.Add(geometry.NewXZRect(0, 555, 0, 555, 555, white))
	world.Add(geometry.NewXYRect(0, 555, 0, 555, 555, white))

	return world, lightRect
}

// NewCornellBox builds the classic Cornell box with two rotated boxes and a
// ceiling light.
func NewCornellBox(aspectRatio float64) *Scene {
	world, lightRect := cornellWalls()
	white := material.NewLambertian(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})

	var tall core.Hittable = geometry.NewBox(core.Vec3{}, core.Vec3{X: 165, Y: 330, Z: 165}, white)
	tall = geometry.NewRotateY(tall, 15, 0, 0)
	tall = geometry.NewTranslate(tall, core.Vec3{X: 265, Y: 0, Z: 295})
	world.Add(tall)

	var short core.Hittable = geometry.NewBox(core.Vec3{}, core.Vec3{X: 165, Y: 165, Z: 165}, white)
	short = geometry.NewRotateY(short, -18, 0, 0)
	short = geometry.NewTranslate(short, core.Vec3{X: 130, Y: 0, Z: 65})
	world.Add(short)

	return &Scene{
		World:     world,
		LightList: lightRect,
		Backdrop:  BlackBackground,
		Camera:    cornellCamera(aspectRatio),
	}
}

// NewCornellSmoke builds the Cornell box variant where the boxes are
// replaced by participating media, one white and one black.
func NewCornellSmoke(aspectRatio float64) *Scene {
	world, lightRect := cornellWalls()
	white := material.NewLambertian(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})

	var tall core.Hittable = geometry.NewBox(core.Vec3{}, core.Vec3{X: 165, Y: 330, Z: 165}, white)
	tall = geometry.NewRotateY(tall, 15, 0, 0)
	tall = geometry.NewTranslate(tall, core.Vec3{X: 265, Y: 0, Z: 295})
	world.Add(geometry.NewConstantMedium(tall, 0.01, material.NewIsotropic(core.Vec3{})))

	var short core.Hittable = geometry.NewBox(core.Vec3{}, core.Vec3{X: 165, Y: 165, Z: 165}, white)
	short = geometry.NewRotateY(short, -18, 0, 0)
	short = geometry.NewTranslate(short, core.Vec3{X: 130, Y: 0, Z: 65})
	world.Add(geometry.NewConstantMedium(short, 0.01, material.NewIsotropic(core.Vec3{X: 1, Y: 1, Z: 1})))

	return &Scene{
		World:     world,
		LightList: lightRect,
		Backdrop:  BlackBackground,
		Camera:    cornellCamera(aspectRatio),
	}
}
