package core

// Ray represents a ray with an origin, a direction, and the time at which it
// samples the scene. Time selects where moving objects are evaluated and is
// what makes motion blur possible.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64 // in [0, 1]
}

// NewRay creates a new ray at time 0
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAt creates a new ray with an explicit time sample
func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
