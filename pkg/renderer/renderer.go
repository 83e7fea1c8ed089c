package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/user/go-raytracer/pkg/core"
)

// Sky gradient endpoints for rays that escape the scene
var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// RenderConfig contains configuration for the parallel render driver
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; row j uses Seed+j so output is reproducible
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		Seed:       42,
	}
}

// Renderer traces a scene through a camera and produces a raster image.
// The world and all materials are read-only for the duration of a render and
// are shared by every worker; each scanline gets its own random generator.
type Renderer struct {
	camera    *Camera
	world     core.Hittable
	config    RenderConfig
	logger    core.Logger
	completed atomic.Int64 // Scanlines finished so far, for progress polling
}

// NewRenderer creates a renderer for the given camera and world
func NewRenderer(camera *Camera, world core.Hittable, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		camera: camera,
		world:  world,
		config: config,
		logger: logger,
	}
}

// ScanlinesCompleted returns the number of scanlines rendered so far.
// Safe to call concurrently with Render; advisory only.
func (r *Renderer) ScanlinesCompleted() int64 {
	return r.completed.Load()
}

// Render traces every pixel and returns the finished raster.
// Scanlines are independent units of work fanned out across workers; each
// worker writes only its own rows, so the raster needs no locking and the
// result is identical regardless of worker count or completion order.
func (r *Renderer) Render() (*Raster, RenderStats) {
	start := time.Now()

	width, height := r.camera.Width(), r.camera.Height()
	samplesPerPixel := r.camera.Config().SamplesPerPixel

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	r.completed.Store(0)
	raster := NewRaster(width, height)

	r.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		width, height, samplesPerPixel, numWorkers)

	rows := make(chan int, height)
	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(j, raster)
				r.completed.Add(1)
			}
		}()
	}

	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		Width:        width,
		Height:       height,
		TotalPixels:  width * height,
		TotalSamples: width * height * samplesPerPixel,
		NumWorkers:   numWorkers,
		Elapsed:      time.Since(start),
	}
	return raster, stats
}

// renderRow renders one scanline with a generator derived from the base
// seed and the row index, keeping rows independent and deterministic
func (r *Renderer) renderRow(j int, raster *Raster) {
	random := rand.New(rand.NewSource(r.config.Seed + int64(j)))
	width := r.camera.Width()
	config := r.camera.Config()

	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < config.SamplesPerPixel; sample++ {
			ray := r.camera.GetRay(i, j, random)
			colorAccum = colorAccum.Add(r.rayColor(ray, config.MaxDepth, random))
		}
		raster.Set(i, j, colorAccum.Divide(float64(config.SamplesPerPixel)))
	}
}

// rayColor returns the color seen along a ray, recursing on scattered rays
// until the bounce budget runs out
func (r *Renderer) rayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The lower bound of 0.001 skips hits right at the ray origin, which
	// would otherwise cause shadow acne on the surface we just left.
	hit, isHit := r.world.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return SkyGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(r.rayColor(scatter.Scattered, depth-1, random))
}

// SkyGradient returns the background color for a ray that hits nothing: a
// vertical blend from white at the horizon to light blue overhead
func SkyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Multiply(1.0 - t).Add(skyBlue.Multiply(t))
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
