package world

import (
	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
)

// Entity pairs a shape with the material used to shade it
type Entity struct {
	Shape    geometry.Shape
	Material material.Material
}

// HitRecord is a geometric hit plus the material of the entity that was hit
type HitRecord struct {
	geometry.HitRecord
	Material material.Material
}

// World is an ordered collection of entities searched linearly
type World struct {
	Entities []Entity
}

// New creates an empty world
func New() *World {
	return &World{}
}

// Add appends a shape/material pair. Insertion order decides ties.
func (w *World) Add(shape geometry.Shape, mat material.Material) {
	w.Entities = append(w.Entities, Entity{Shape: shape, Material: mat})
}

// Len returns the number of entities
func (w *World) Len() int {
	return len(w.Entities)
}

// Hit returns the closest intersection in (tMin, tMax) across all entities.
// Each shape is tested against the closest distance found so far, so an
// equal-distance hit later in the list never replaces an earlier one.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	closestSoFar := tMax

	for _, entity := range w.Entities {
		if hit, isHit := entity.Shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closest = &HitRecord{HitRecord: *hit, Material: entity.Material}
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box enclosing every entity over [time0, time1].
// An empty world, or one containing an unbounded shape, reports false.
func (w *World) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(w.Entities) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, entity := range w.Entities {
		entityBox, ok := entity.Shape.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = entityBox
		} else {
			box = core.SurroundingBox(box, entityBox)
		}
	}
	return box, true
}
