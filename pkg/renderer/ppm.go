package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/user/go-raytracer/pkg/core"
)

// Raster holds linear-light pixel colors in row-major order, top to bottom
type Raster struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewRaster creates a black raster of the given dimensions
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel color at (x, y)
func (r *Raster) At(x, y int) core.Vec3 {
	return r.Pixels[y*r.Width+x]
}

// Set stores the pixel color at (x, y)
func (r *Raster) Set(x, y int, color core.Vec3) {
	r.Pixels[y*r.Width+x] = color
}

// Channel intensities are clamped below 1 so quantization never reaches 256
var intensity = core.NewInterval(0.000, 0.999)

// WritePPM serializes the raster as a plain-text PPM "P3" image.
// Channels are gamma corrected (gamma 2.0), clamped and quantized to [0, 255].
// Any write error aborts the output; a partial file is not valid output.
func WritePPM(w io.Writer, raster *Raster) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", raster.Width, raster.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for j := 0; j < raster.Height; j++ {
		for i := 0; i < raster.Width; i++ {
			red, green, blue := EncodeColor(raster.At(i, j))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", red, green, blue); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing PPM output: %w", err)
	}
	return nil
}

// EncodeColor converts a linear color to gamma-corrected integer channels
func EncodeColor(color core.Vec3) (red, green, blue int) {
	red = int(256 * intensity.Clamp(linearToGamma(color.X)))
	green = int(256 * intensity.Clamp(linearToGamma(color.Y)))
	blue = int(256 * intensity.Clamp(linearToGamma(color.Z)))
	return red, green, blue
}

// linearToGamma applies gamma 2.0 encoding to one channel
func linearToGamma(c float64) float64 {
	if c > 0 {
		return math.Sqrt(c)
	}
	return 0
}
