package geometry

import "github.com/user/go-raytracer/pkg/core"

// World is a linear aggregate of hittable objects. Objects are tested in
// insertion order while the search interval narrows to the closest hit found
// so far, so the nearest intersection wins regardless of ordering.
type World struct {
	Objects []core.Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...core.Hittable) *World {
	return &World{Objects: objects}
}

// Add appends objects to the world
func (w *World) Add(objects ...core.Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Clear removes all objects from the world
func (w *World) Clear() {
	w.Objects = nil
}

// Hit finds the closest intersection among all objects in the world
func (w *World) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tRange.Max

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
