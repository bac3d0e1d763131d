package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

// WritePPM writes the frame as a plain-text (P3) PPM image: the header
// followed by one "R G B" line per pixel, rows top to bottom
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return err
	}
	for _, pixel := range frame.Pixels {
		// bufio keeps the first error, Flush reports it
		bw.WriteString(pixel.String())
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
