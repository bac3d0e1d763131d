package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/world"
)

// Hit interval lower bound, keeps scattered rays from re-hitting their origin
const shadowAcneEpsilon = 0.001

var skyTop = core.NewColor(0.5, 0.7, 1.0)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the full-size 16:9 render settings
func DefaultSamplingConfig() SamplingConfig {
	width := 2048
	return SamplingConfig{
		Width:           width,
		Height:          ImageHeight(width, 16.0/9.0),
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// ImageHeight derives the pixel height for a width and aspect ratio, truncating
func ImageHeight(width int, aspectRatio float64) int {
	return int(float64(width) / aspectRatio)
}

// Validate checks that the configuration can produce an image
func (c SamplingConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	return nil
}

// Hittable is anything rays can be intersected with; *world.World satisfies it
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*world.HitRecord, bool)
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() Hittable
	GetCameraConfig() CameraConfig
	GetSamplingConfig() SamplingConfig
}

// RayColor estimates the radiance arriving along ray, following at most depth
// bounces. Attenuation is accumulated along the path and applied to the sky
// color once the path escapes; absorption or an exhausted budget yields black.
// A hit on an entity without a material panics with ErrMissingMaterial.
func RayColor(ray core.Ray, hittable Hittable, depth int, sampler core.Sampler) core.Color {
	throughput := core.White

	for ; depth > 0; depth-- {
		hit, isHit := hittable.Hit(ray, shadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyColor(SkyColor(ray))
		}

		if hit.Material == nil {
			panic(fmt.Errorf("%w at %v", ErrMissingMaterial, hit.Point))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit.HitRecord, sampler)
		if !didScatter {
			return core.Black
		}

		throughput = throughput.MultiplyColor(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Black
}

// SkyColor returns the background gradient, white at the bottom blending to
// light blue at the top, based on the ray's normalized y component
func SkyColor(ray core.Ray) core.Color {
	unitDirection := core.UnitVector(ray.Direction)
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.White.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}

// Raytracer renders a whole frame on the calling goroutine with a single sampler
type Raytracer struct {
	scene   Scene
	camera  *Camera
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, sampler core.Sampler, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:   scene,
		camera:  NewCamera(scene.GetCameraConfig()),
		config:  scene.GetSamplingConfig(),
		sampler: sampler,
		logger:  logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// RenderPass renders every pixel in scanline order, bottom image row first,
// reporting the scanlines still to go before each one
func (rt *Raytracer) RenderPass() (*Frame, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, err
	}
	hittable := rt.scene.GetWorld()
	if hittable == nil {
		return nil, ErrNoWorld
	}

	frame := NewFrame(rt.config.Width, rt.config.Height)
	pr := &pixelRenderer{
		camera:   rt.camera,
		hittable: hittable,
		config:   rt.config,
	}

	for j := rt.config.Height - 1; j >= 0; j-- {
		rt.logger.Infof("Scanlines remaining: %d", j+1)
		y := rt.config.Height - 1 - j
		for i := 0; i < rt.config.Width; i++ {
			frame.Set(i, y, pr.samplePixel(i, j, rt.sampler))
		}
	}

	return frame, nil
}

// pixelRenderer computes averaged pixel colors for a fixed camera and world
type pixelRenderer struct {
	camera   *Camera
	hittable Hittable
	config   SamplingConfig
}

// samplePixel averages SamplesPerPixel jittered samples for pixel (i, j),
// where j counts rows upwards from the bottom of the image
func (pr *pixelRenderer) samplePixel(i, j int, sampler core.Sampler) core.Color {
	pixelColor := core.Black
	for sample := 0; sample < pr.config.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Get1D()) / float64(pr.config.Width-1)
		v := (float64(j) + sampler.Get1D()) / float64(pr.config.Height-1)
		ray := pr.camera.GetRay(u, v, sampler)
		pixelColor.AddInPlace(RayColor(ray, pr.hittable, pr.config.MaxDepth, sampler))
	}
	pixelColor.DivideInPlace(float64(pr.config.SamplesPerPixel))
	return pixelColor
}
