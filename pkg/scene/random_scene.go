package scene

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
	"github.com/df07/go-motionblur-raytracer/pkg/world"
)

const (
	largeRadius = 1.0
	smallRadius = 0.2
)

// Vertical travel of the small spheres over their [0, 1] time window
var bounce = core.NewVec3(0, 9.8, 0)

// featureSpheres are the three large spheres placed in front of the camera
func featureSpheres() []world.Entity {
	return []world.Entity{
		{
			Shape:    geometry.NewSphere(core.NewVec3(0, largeRadius, 0), largeRadius),
			Material: material.NewDielectric(1.5),
		},
		{
			Shape:    geometry.NewSphere(core.NewVec3(-4, largeRadius, 0), largeRadius),
			Material: material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)),
		},
		{
			Shape:    geometry.NewSphere(core.NewVec3(4, largeRadius, 0), largeRadius),
			Material: material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0),
		},
	}
}

// newGroundWorld creates a world containing the large grey ground sphere
func newGroundWorld() *world.World {
	w := world.New()
	w.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))
	return w
}

// NewRandomScene creates the ground, three feature spheres and a 22x22 grid
// of small moving spheres with randomly chosen materials. The same seed
// always produces the same scene.
func NewRandomScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	sampler := core.NewSeededSampler(seed)

	w := newGroundWorld()
	features := featureSpheres()
	for _, entity := range features {
		w.Add(entity.Shape, entity.Material)
	}

	minDistance := largeRadius + smallRadius
	minDistanceSquared := minDistance * minDistance

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center0 := core.NewVec3(
				float64(a)+core.RandomRange(sampler, 0, 0.9),
				smallRadius+core.RandomRange(sampler, 0, 0.5),
				float64(b)+core.RandomRange(sampler, 0, 0.9),
			)

			if tooClose(center0, features, minDistanceSquared) {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				// Diffuse
				albedo := core.RandomColor(sampler).MultiplyColor(core.RandomColor(sampler))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				// Metal
				albedo := core.RandomColorRange(sampler, 0.5, 1.0)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				// Glass
				mat = material.NewDielectric(1.5)
			}

			w.Add(geometry.NewMovingSphere(center0, center0.Add(bounce), smallRadius, 0.0, 1.0), mat)
		}
	}

	return newScene(w, cameraOverrides...)
}

// tooClose reports whether center lies within minDistanceSquared of any
// feature sphere, measured in the ground (xz) plane
func tooClose(center core.Vec3, features []world.Entity, minDistanceSquared float64) bool {
	centerXZ := core.NewVec3(center.X, 0, center.Z)
	for _, entity := range features {
		sphere := entity.Shape.(*geometry.Sphere)
		featureXZ := core.NewVec3(sphere.Center0.X, 0, sphere.Center0.Z)
		if featureXZ.Subtract(centerXZ).LengthSquared() < minDistanceSquared {
			return true
		}
	}
	return false
}
