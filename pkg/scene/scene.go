package scene

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
	"github.com/df07/go-motionblur-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          *world.World
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// GetWorld returns the entities to intersect, or nil when none is set
func (s *Scene) GetWorld() renderer.Hittable {
	if s.World == nil {
		return nil
	}
	return s.World
}

// GetCameraConfig returns the camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetSamplingConfig returns the sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// Bounds returns the box enclosing every entity while the shutter is open
func (s *Scene) Bounds() (core.AABB, bool) {
	if s.World == nil {
		return core.AABB{}, false
	}
	return s.World.BoundingBox(s.CameraConfig.Time0, s.CameraConfig.Time1)
}

// newScene builds a scene with the default camera and sampling settings,
// applying the first camera override if one is given
func newScene(w *world.World, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.Height = renderer.ImageHeight(samplingConfig.Width, cameraConfig.AspectRatio)

	return &Scene{
		World:          w,
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
	}
}
