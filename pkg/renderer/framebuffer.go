package renderer

import (
	"image"
	"image/color"

	"github.com/example/go-ray-tracer/pkg/core"
)

// Pixel accumulates radiance samples for one image location
type Pixel struct {
	ColorSum    core.Vec3 // Sum of sampled radiance
	SampleCount int       // Number of samples taken
}

// FrameBuffer is a grid of per-pixel radiance accumulators. During a render
// each worker owns a disjoint set of rows, so no locking is needed; after
// the render it is a plain read-only result.
type FrameBuffer struct {
	width  int
	height int
	pixels []Pixel
}

// NewFrameBuffer creates a zeroed frame buffer of the given dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
}

// Width returns the image width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the image height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// AddSample accumulates one radiance sample at (x, y)
func (fb *FrameBuffer) AddSample(x, y int, color core.Vec3) {
	p := &fb.pixels[y*fb.width+x]
	p.ColorSum = p.ColorSum.Add(color)
	p.SampleCount++
}

// At returns the raw radiance sum and sample count at (x, y). Converting
// these into displayable values (averaging, gamma, clamping, encoding) is
// the caller's concern.
func (fb *FrameBuffer) At(x, y int) (core.Vec3, int) {
	p := fb.pixels[y*fb.width+x]
	return p.ColorSum, p.SampleCount
}

// Color returns the mean sampled radiance at (x, y)
func (fb *FrameBuffer) Color(x, y int) core.Vec3 {
	p := fb.pixels[y*fb.width+x]
	if p.SampleCount == 0 {
		return core.Vec3{}
	}
	return p.ColorSum.Multiply(1.0 / float64(p.SampleCount))
}

// ToImage converts the averaged buffer into an 8-bit image, applying gamma
// 2.0 correction and clamping to the displayable range
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))

	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.Color(x, y).GammaCorrect(2.0).Clamp(0.0, 0.999)
			img.Set(x, y, color.RGBA{
				R: uint8(256 * c.X),
				G: uint8(256 * c.Y),
				B: uint8(256 * c.Z),
				A: 255,
			})
		}
	}

	return img
}
