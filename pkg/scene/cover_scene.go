package scene

import (
	"math/rand"

	"github.com/user/go-raytracer/pkg/core"
	"github.com/user/go-raytracer/pkg/geometry"
	"github.com/user/go-raytracer/pkg/material"
	"github.com/user/go-raytracer/pkg/renderer"
)

// NewCoverScene creates a field of small random spheres around three large
// ones, exercising motion blur on the diffuse spheres and depth of field on
// the camera. Construction is seeded so the scene is reproducible.
func NewCoverScene() *Scene {
	random := rand.New(rand.NewSource(1984))

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue // Keep clear of the large metal sphere
			}

			chooseMaterial := random.Float64()
			switch {
			case chooseMaterial < 0.8:
				// Diffuse, drifting upward over the shutter interval
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0.2,
					material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2,
					material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2,
					material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
			material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
			material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	cameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20.0,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
	}

	return &Scene{
		Name:         "cover",
		CameraConfig: cameraConfig,
		World:        world,
	}
}
