package scene

import (
	"github.com/user/go-raytracer/pkg/core"
	"github.com/user/go-raytracer/pkg/geometry"
	"github.com/user/go-raytracer/pkg/material"
	"github.com/user/go-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: a diffuse sphere flanked by a
// hollow glass sphere and a metal sphere above a large diffuse ground
func NewDefaultScene() *Scene {
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		// Negative radius flips the normals, turning the outer glass
		// sphere into a hollow shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	lookFrom := core.NewVec3(-2, 2, 1)
	lookAt := core.NewVec3(0, 0, -1)

	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            40.0,
		LookFrom:        lookFrom,
		LookAt:          lookAt,
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDistance:   lookAt.Subtract(lookFrom).Length(),
	}

	return &Scene{
		Name:         "default",
		CameraConfig: cameraConfig,
		World:        world,
	}
}
