package output

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

func testFrame() *renderer.Frame {
	frame := renderer.NewFrame(2, 2)
	frame.Set(0, 0, core.NewColor(1, 1, 1))
	frame.Set(1, 0, core.NewColor(1, 0, 0.5))
	frame.Set(0, 1, core.NewColor(0.5, 0.7, 1.0))
	return frame
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testFrame()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 255 255\n" +
		"255 0 186\n" +
		"186 217 255\n" +
		"0 0 0\n"
	if buf.String() != expected {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestWritePPM_LineCount(t *testing.T) {
	frame := renderer.NewFrame(7, 3)
	var buf bytes.Buffer
	if err := WritePPM(&buf, frame); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3+7*3 {
		t.Errorf("Expected %d lines, got %d", 3+7*3, len(lines))
	}
	if lines[1] != "7 3" {
		t.Errorf("Expected dimensions line \"7 3\", got %q", lines[1])
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePPM_ReportsWriteError(t *testing.T) {
	// Large enough to overflow the bufio buffer before Flush
	frame := renderer.NewFrame(200, 200)
	if err := WritePPM(failingWriter{}, frame); err == nil {
		t.Error("Expected the write error to be returned")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testFrame()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}

	r, g, b, _ := img.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 186 {
		t.Errorf("Unexpected pixel (1,0): %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestEncoderFor(t *testing.T) {
	tests := []struct {
		destination string
		wantErr     bool
	}{
		{"-", false},
		{"image.ppm", false},
		{"IMAGE.PNG", false},
		{"render.jpg", true},
		{"noextension", true},
	}

	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			_, err := EncoderFor(tt.destination)
			if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error %v", err)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	frame := testFrame()

	ppmPath := filepath.Join(dir, "out.ppm")
	if err := Save(ppmPath, frame, nil); err != nil {
		t.Fatalf("Save ppm failed: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n2 2\n255\n") {
		t.Errorf("Unexpected file header %q", string(data[:12]))
	}

	pngPath := filepath.Join(dir, "out.png")
	if err := Save(pngPath, frame, nil); err != nil {
		t.Fatalf("Save png failed: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("Saved file is not a PNG: %v", err)
	}

	var stdout bytes.Buffer
	if err := Save(Stdout, frame, &stdout); err != nil {
		t.Fatalf("Save to stdout failed: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "P3\n") {
		t.Error("Stdout should receive P3")
	}
}
