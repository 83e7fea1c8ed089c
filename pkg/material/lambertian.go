package material

import (
	"math/rand"

	"github.com/user/go-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can cancel the normal almost exactly; fall back
	// to the normal so the scattered ray never degenerates to zero length.
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRayAt(hit.Point, scatterDirection, rayIn.Time)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
