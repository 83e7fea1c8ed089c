package renderer

import (
	"math"
	"math/rand"

	"github.com/user/go-raytracer/pkg/core"
)

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	AspectRatio     float64   // Width over height
	Width           int       // Image width in pixels (height is derived)
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Aperture cone angle in degrees (0 = pinhole)
	FocusDistance   float64   // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90.0,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDistance:   1.0,
	}
}

// Camera generates stochastically sampled primary rays for rendering.
// All derived state is computed once in NewCamera and read-only afterward,
// so a camera is safe to share across render workers.
type Camera struct {
	config       CameraConfig
	width        int
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the next pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the next pixel down
	u, v, w      core.Vec3 // Camera orthonormal basis
	defocusDiskU core.Vec3 // Defocus disk horizontal radius vector
	defocusDiskV core.Vec3 // Defocus disk vertical radius vector
}

// NewCamera creates a camera and computes its viewport geometry
func NewCamera(config CameraConfig) *Camera {
	width := config.Width
	height := max(1, int(float64(width)/config.AspectRatio))

	center := config.LookFrom

	// Orthonormal basis: w points from the target back toward the camera
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport dimensions on the focus plane. The width uses the actual
	// pixel ratio rather than AspectRatio, which is only an ideal.
	h := math.Tan(degreesToRadians(config.VFov) / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Viewport edge vectors: U spans left to right, V top to bottom
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle)/2)

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a randomly sampled ray for the pixel at (i, j).
// The target is jittered within the pixel square for anti-aliasing, the
// origin is sampled on the defocus disk for depth of field, and the time is
// sampled uniformly in [0, 1) for motion blur.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	px := random.Float64() - 0.5
	py := random.Float64() - 0.5
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + px)).
		Add(c.pixelDeltaV.Multiply(float64(j) + py))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.sampleDefocusDisk(random)
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), random.Float64())
}

// sampleDefocusDisk returns a random origin on the camera aperture disk
func (c *Camera) sampleDefocusDisk(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// degreesToRadians converts an angle from degrees to radians
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
