package scene

import (
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
	"github.com/df07/go-motionblur-raytracer/pkg/world"
)

// NewSimpleScene creates the ground and the three feature spheres without
// the random grid
func NewSimpleScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	w := newGroundWorld()
	for _, entity := range featureSpheres() {
		w.Add(entity.Shape, entity.Material)
	}
	return newScene(w, cameraOverrides...)
}

// NewEmptyScene creates a scene with no entities; every ray sees the sky
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return newScene(world.New(), cameraOverrides...)
}
