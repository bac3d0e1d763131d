package scene

import (
	"math"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(core.Clamp(r, 0, 1), core.Clamp(g, 0, 1), core.Clamp(blue, 0, 1))
}

// NewSphereGridScene creates a gridSize x gridSize field of small metal
// spheres whose hue varies along x and chroma along z. Every other row
// bounces during the shutter interval.
func NewSphereGridScene(gridSize int, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.LookFrom = core.NewVec3(0, 6, 13.5)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0.3, 0)
	defaultCameraConfig.VFov = 40.0
	defaultCameraConfig.Aperture = 0.02
	defaultCameraConfig.FocusDistance = defaultCameraConfig.LookFrom.Subtract(defaultCameraConfig.LookAt).Length()

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	w := newGroundWorld()

	// Fit the grid into a 9x9 area centered on the origin
	targetArea := 9.0
	spacing := targetArea / float64(max(gridSize-1, 1))
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0
			z := float64(j)*spacing - targetArea/2.0
			center := core.NewVec3(x, sphereRadius, z)

			fi := float64(i) / float64(max(gridSize-1, 1))
			fj := float64(j) / float64(max(gridSize-1, 1))
			hue := fi * 360.0
			chroma := minChroma + fj*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			mat := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			end := center
			if j%2 == 1 {
				end = center.Add(core.NewVec3(0, 4*sphereRadius, 0))
			}
			w.Add(geometry.NewMovingSphere(center, end, sphereRadius, 0.0, cameraConfig.Time1), mat)
		}
	}

	return newScene(w, cameraConfig)
}
