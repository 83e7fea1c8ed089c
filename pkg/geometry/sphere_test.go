package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/user/go-raytracer/pkg/core"
	"github.com/user/go-raytracer/pkg/material"
)

func testMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		ray       core.Ray
		tRange    core.Interval
		wantHit   bool
		expectedT float64
	}{
		{
			name:      "Direct hit takes the smaller root",
			ray:       ray,
			tRange:    core.NewInterval(0.001, math.Inf(1)),
			wantHit:   true,
			expectedT: 0.5,
		},
		{
			name:      "Smaller root excluded, larger root taken",
			ray:       ray,
			tRange:    core.NewInterval(0.6, math.Inf(1)),
			wantHit:   true,
			expectedT: 1.5,
		},
		{
			name:    "Both roots beyond interval",
			ray:     ray,
			tRange:  core.NewInterval(0.001, 0.4),
			wantHit: false,
		},
		{
			name:    "Boundary is exclusive",
			ray:     ray,
			tRange:  core.NewInterval(0.5, 1.5),
			wantHit: false,
		},
		{
			name:    "Ray pointing away",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			tRange:  core.NewInterval(0.001, math.Inf(1)),
			wantHit: false,
		},
		{
			name:    "Ray missing sideways",
			ray:     core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1)),
			tRange:  core.NewInterval(0.001, math.Inf(1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, tt.tRange)
			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-12 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.Material == nil {
				t.Error("Hit record should reference the sphere's material")
			}
			// The oriented normal always opposes the ray
			if hit.Normal.Dot(tt.ray.Direction) > 0 {
				t.Errorf("Normal %v points along the ray", hit.Normal)
			}
		})
	}
}

func TestSphere_NormalOrientation(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())

	// Hit from outside: front face, normal toward the camera
	outside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := sphere.Hit(outside, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected outside ray to hit")
	}
	if !hit.FrontFace {
		t.Error("Hit from outside should be front face")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	// Hit from inside: back face, normal flipped inward
	inside := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1))
	hit, isHit = sphere.Hit(inside, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected inside ray to hit")
	}
	if hit.FrontFace {
		t.Error("Hit from inside should be back face")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected flipped normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_NegativeRadiusInvertsNormals(t *testing.T) {
	// A negative-radius sphere reports inverted normals, so a hit from
	// outside registers as a back face. This is the hollow glass trick.
	sphere := NewSphere(core.NewVec3(0, 0, -1), -0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit on negative-radius sphere")
	}
	if math.Abs(hit.T-0.5) > 1e-12 {
		t.Errorf("Expected t=0.5, got %v", hit.T)
	}
	if hit.FrontFace {
		t.Error("Outside hit on inverted sphere should be back face")
	}
	// The stored normal still opposes the ray
	if hit.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("Normal %v points along the ray", hit.Normal)
	}
}

func TestSphere_MovingCenter(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -1), core.NewVec3(0, 1, -1), 0.5, testMaterial())

	tests := []struct {
		time     float64
		expected core.Vec3
	}{
		{0.0, core.NewVec3(0, 0, -1)},
		{0.5, core.NewVec3(0, 0.5, -1)},
		{1.0, core.NewVec3(0, 1, -1)},
	}
	for _, tt := range tests {
		if center := sphere.Center(tt.time); center.Subtract(tt.expected).Length() > 1e-12 {
			t.Errorf("Center(%v): expected %v, got %v", tt.time, tt.expected, center)
		}
	}

	// A ray at time 1 intersects the sphere at its displaced position
	ray := core.NewRayAt(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), 1.0)
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected time-1 ray to hit the displaced sphere")
	}
	if math.Abs(hit.T-0.5) > 1e-12 {
		t.Errorf("Expected t=0.5, got %v", hit.T)
	}

	// The same ray at time 0 misses: the sphere has not moved yet
	ray = core.NewRayAt(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), 0.0)
	if _, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1))); isHit {
		t.Error("Time-0 ray should miss the undisplaced sphere")
	}
}

func TestSphere_RandomRaysRespectInterval(t *testing.T) {
	// Every reported parameter must lie strictly inside the search interval
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, testMaterial())
	random := rand.New(rand.NewSource(42))
	tRange := core.NewInterval(0.001, math.Inf(1))

	for i := 0; i < 500; i++ {
		direction := core.RandomUnitVector(random)
		ray := core.NewRay(core.NewVec3(0, 0, 0), direction)
		if hit, isHit := sphere.Hit(ray, tRange); isHit {
			if !tRange.Surrounds(hit.T) {
				t.Fatalf("Reported t=%v outside open interval", hit.T)
			}
			if hit.Normal.Dot(direction) > 0 {
				t.Fatalf("Normal %v points along ray %v", hit.Normal, direction)
			}
		}
	}
}
