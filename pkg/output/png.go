package output

import (
	"image/png"
	"io"

	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

// WritePNG encodes the gamma-corrected frame as a PNG image
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	return png.Encode(w, frame.Image())
}
