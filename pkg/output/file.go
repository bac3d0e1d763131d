package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Stdout is the destination name that selects standard output (P3)
const Stdout = "-"

// Encoder writes a frame in a specific image format
type Encoder func(w io.Writer, frame *renderer.Frame) error

// EncoderFor picks an encoder from the destination's file extension.
// Standard output always receives P3.
func EncoderFor(destination string) (Encoder, error) {
	if destination == Stdout {
		return WritePPM, nil
	}

	switch ext := strings.ToLower(filepath.Ext(destination)); ext {
	case ".ppm":
		return WritePPM, nil
	case ".png":
		return WritePNG, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes the frame to destination, or to stdout when destination is "-"
func Save(destination string, frame *renderer.Frame, stdout io.Writer) error {
	encode, err := EncoderFor(destination)
	if err != nil {
		return err
	}

	if destination == Stdout {
		return encode(stdout, frame)
	}

	f, err := os.Create(destination)
	if err != nil {
		return err
	}
	if err := encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
