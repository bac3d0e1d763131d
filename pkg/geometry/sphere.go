package geometry

import (
	"math"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// Sphere represents a sphere whose center moves linearly from Center0 at
// Time0 to Center1 at Time1
type Sphere struct {
	Center0 core.Vec3
	Center1 core.Vec3
	Radius  float64
	Time0   float64
	Time1   float64
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return NewMovingSphere(center, center, radius, 0.0, 1.0)
}

// NewMovingSphere creates a sphere with two keyframe centers
func NewMovingSphere(center0, center1 core.Vec3, radius, time0, time1 float64) *Sphere {
	return &Sphere{
		Center0: center0,
		Center1: center1,
		Radius:  radius,
		Time0:   time0,
		Time1:   time1,
	}
}

// Center returns the interpolated center at the given time.
// Times outside [Time0, Time1] extrapolate along the same line.
func (s *Sphere) Center(time float64) core.Vec3 {
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	center := s.Center(ray.Time)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients using the half-b form
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// Tangent rays (discriminant exactly zero) and NaN count as a miss
	if !(discriminant > 0) {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !(root < tMax && root > tMin) {
		root = (-halfB + sqrtD) / a
		if !(root < tMax && root > tMin) {
			return nil, false
		}
	}

	hitRecord := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the union of the boxes at time0 and time1
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)

	center0 := s.Center(time0)
	box0 := core.NewAABB(center0.Subtract(radius), center0.Add(radius))

	center1 := s.Center(time1)
	box1 := core.NewAABB(center1.Subtract(radius), center1.Add(radius))

	return core.SurroundingBox(box0, box1), true
}
