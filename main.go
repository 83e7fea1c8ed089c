package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/user/go-raytracer/pkg/renderer"
	"github.com/user/go-raytracer/pkg/scene"
)

// createScene builds the named scene
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cover":
		return scene.NewCoverScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed for reproducible output")
	output := flag.String("output", "image.ppm", "Output PPM file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Monte Carlo Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres (diffuse, hollow glass, metal) over a ground sphere")
		fmt.Println("  cover   - Field of random spheres with motion blur and depth of field")
		return
	}

	// Create scene based on command line argument
	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Apply command line overrides to the scene's camera
	cameraConfig := selectedScene.CameraConfig
	if *width > 0 {
		cameraConfig.Width = *width
	}
	if *samples > 0 {
		cameraConfig.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		cameraConfig.MaxDepth = *depth
	}

	logger := renderer.NewDefaultLogger()
	camera := renderer.NewCamera(cameraConfig)
	r := renderer.NewRenderer(camera, selectedScene.World, renderer.RenderConfig{
		NumWorkers: *workers,
		Seed:       *seed,
	}, logger)

	// Poll the scanline counter while the render runs
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				remaining := int64(camera.Height()) - r.ScanlinesCompleted()
				logger.Printf("Scanlines remaining: %d\n", remaining)
			}
		}
	}()

	raster, stats := r.Render()
	close(done)

	logger.Printf("Render completed in %v (%.0f samples/sec)\n",
		stats.Elapsed, stats.SamplesPerSecond())

	// A partial file is not valid output, so any failure here is fatal
	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *output, err)
		os.Exit(1)
	}
	defer file.Close()

	if err := renderer.WritePPM(file, raster); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", *output)
}
