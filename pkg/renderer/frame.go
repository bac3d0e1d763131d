package renderer

import (
	"image"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// Frame holds linear pixel colors, rows ordered top to bottom.
// Every pixel has its own slot, so workers rendering disjoint tiles never
// touch the same memory.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color at column x, row y (y = 0 is the top row)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at column x, row y
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// Bounds returns the pixel rectangle covered by the frame
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// Image converts the frame into a gamma-encoded 8-bit image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.At(x, y).RGBA())
		}
	}
	return img
}
