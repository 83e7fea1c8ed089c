package geometry

import (
	"math"

	"github.com/user/go-raytracer/pkg/core"
)

// Sphere represents a sphere shape, optionally moving linearly over the
// shutter interval. A negative radius flips the outward normal, which is the
// standard trick for hollow glass shells.
type Sphere struct {
	center    core.Vec3
	centerVec core.Vec3 // displacement from center at time 0 to time 1
	moving    bool
	Radius    float64
	Material  core.Material
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		center:   center,
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere that moves from center0 at time 0 to
// center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		center:    center0,
		centerVec: center1.Subtract(center0),
		moving:    true,
		Radius:    radius,
		Material:  material,
	}
}

// Center returns the sphere center at the given ray time
func (s *Sphere) Center(time float64) core.Vec3 {
	if !s.moving {
		return s.center
	}
	return s.center.Add(s.centerVec.Multiply(time))
}

// Hit tests if a ray intersects with the sphere.
// Substituting R(t) = O + t*D into |X - C|² = r² gives a quadratic
// a*t² + 2b*t + c = 0 with a = D·D, b = (O-C)·D, c = (O-C)·(O-C) - r².
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal follows the sign of the radius, so a negative-radius
	// sphere reports inverted normals.
	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
