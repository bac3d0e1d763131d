package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
	"github.com/df07/go-motionblur-raytracer/pkg/geometry"
	"github.com/df07/go-motionblur-raytracer/pkg/material"
	"github.com/df07/go-motionblur-raytracer/pkg/world"
)

// testScene is a minimal Scene for renderer tests
type testScene struct {
	hittable Hittable
	camera   CameraConfig
	sampling SamplingConfig
}

func (s *testScene) GetWorld() Hittable                { return s.hittable }
func (s *testScene) GetCameraConfig() CameraConfig     { return s.camera }
func (s *testScene) GetSamplingConfig() SamplingConfig { return s.sampling }

// absorbingMaterial never scatters
type absorbingMaterial struct{}

func (absorbingMaterial) Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// upwardMaterial scatters straight up with a fixed attenuation
type upwardMaterial struct {
	attenuation core.Color
}

func (m upwardMaterial) Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0), rayIn.Time),
		Attenuation: m.attenuation,
	}, true
}

// floorHittable reports a hit at y=1 for any ray starting below it
type floorHittable struct {
	mat   material.Material
	calls int
}

func (f *floorHittable) Hit(ray core.Ray, tMin, tMax float64) (*world.HitRecord, bool) {
	f.calls++
	if ray.Origin.Y >= 1 {
		return nil, false
	}
	return &world.HitRecord{
		HitRecord: geometry.HitRecord{
			Point:     core.NewVec3(ray.Origin.X, 1, ray.Origin.Z),
			Normal:    core.NewVec3(0, -1, 0),
			T:         1,
			FrontFace: true,
		},
		Material: f.mat,
	}, true
}

func TestRayColor_ZeroDepthIsBlack(t *testing.T) {
	sphereWorld := world.New()
	sphereWorld.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))

	tests := []struct {
		name     string
		hittable Hittable
		depth    int
	}{
		{"empty world", world.New(), 0},
		{"sphere world", sphereWorld, 0},
		{"negative depth", sphereWorld, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
			if got := RayColor(ray, tt.hittable, tt.depth, core.NewSeededSampler(1)); got != core.Black {
				t.Errorf("Expected black, got %v", got)
			}
		})
	}
}

func TestRayColor_SkyGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1)},
		{"horizon", core.NewVec3(0, 0, -1), core.NewColor(0.75, 0.85, 1.0)},
		{"unnormalized up", core.NewVec3(0, 10, 0), core.NewColor(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction, 0)
			got := RayColor(ray, world.New(), 50, core.NewSeededSampler(1))
			if !colorApproxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRayColor_AbsorptionIsBlack(t *testing.T) {
	floor := &floorHittable{mat: absorbingMaterial{}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	if got := RayColor(ray, floor, 10, core.NewSeededSampler(1)); got != core.Black {
		t.Errorf("Absorbed ray should be black, got %v", got)
	}
	if floor.calls != 1 {
		t.Errorf("Absorption should stop the path after one hit, got %d", floor.calls)
	}
}

func TestRayColor_AttenuationMultipliesSky(t *testing.T) {
	floor := &floorHittable{mat: upwardMaterial{attenuation: core.NewColor(0.5, 0.25, 1)}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	got := RayColor(ray, floor, 2, core.NewSeededSampler(1))
	expected := core.NewColor(0.25, 0.175, 1.0)
	if !colorApproxEqual(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// One bounce of budget is spent on the hit, leaving none for the sky
	floor.calls = 0
	if got := RayColor(ray, floor, 1, core.NewSeededSampler(1)); got != core.Black {
		t.Errorf("Depth 1 should run out after scattering, got %v", got)
	}
}

func TestRayColor_MissingMaterialPanics(t *testing.T) {
	w := world.New()
	w.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 1), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected a panic for a hit without material")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingMaterial) {
			t.Errorf("Expected ErrMissingMaterial, got %v", r)
		}
	}()

	RayColor(ray, w, 5, core.NewSeededSampler(1))
}

func TestRayColor_EnclosedDiffuseDepthOneIsBlack(t *testing.T) {
	w := world.New()
	w.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 100), material.NewLambertian(core.NewColor(0.9, 0.9, 0.9)))
	sampler := core.NewSeededSampler(4)

	for i := 0; i < 100; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.RandomUnitVector(sampler), 0)
		if got := RayColor(ray, w, 1, sampler); got != core.Black {
			t.Fatalf("Expected black inside a diffuse sphere at depth 1, got %v", got)
		}
	}
}

func TestRaytracer_RenderPassEmptyWorldMatchesSky(t *testing.T) {
	scene := &testScene{
		hittable: world.New(),
		camera:   DefaultCameraConfig(),
		sampling: SamplingConfig{Width: 4, Height: 3, SamplesPerPixel: 1, MaxDepth: 50},
	}
	sampler := core.ConstantSampler{Value: 0.5}

	frame, err := NewRaytracer(scene, sampler, nil).RenderPass()
	if err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}

	camera := NewCamera(scene.camera)
	for y := 0; y < 3; y++ {
		j := 2 - y
		for i := 0; i < 4; i++ {
			u := (float64(i) + 0.5) / 3
			v := (float64(j) + 0.5) / 2
			expected := SkyColor(camera.GetRay(u, v, sampler))
			if got := frame.At(i, y); got != expected {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", i, y, expected, got)
			}
		}
	}

	// The camera points slightly downward, so the top row sees more blue
	if frame.At(0, 0).R >= frame.At(0, 2).R {
		t.Errorf("Top row should be bluer than the bottom row: %v vs %v", frame.At(0, 0), frame.At(0, 2))
	}
}

func TestRaytracer_RenderPassValidatesConfig(t *testing.T) {
	tests := []struct {
		name     string
		sampling SamplingConfig
		hittable Hittable
		expected error
	}{
		{"width of one", SamplingConfig{Width: 1, Height: 4, SamplesPerPixel: 1}, world.New(), ErrInvalidDimensions},
		{"zero height", SamplingConfig{Width: 4, Height: 0, SamplesPerPixel: 1}, world.New(), ErrInvalidDimensions},
		{"no samples", SamplingConfig{Width: 4, Height: 4, SamplesPerPixel: 0}, world.New(), ErrInvalidSamples},
		{"no world", SamplingConfig{Width: 4, Height: 4, SamplesPerPixel: 1}, nil, ErrNoWorld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := &testScene{hittable: tt.hittable, camera: DefaultCameraConfig(), sampling: tt.sampling}
			_, err := NewRaytracer(scene, core.NewSeededSampler(1), nil).RenderPass()
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestDefaultSamplingConfig(t *testing.T) {
	config := DefaultSamplingConfig()
	if config.Width != 2048 || config.Height != 1152 {
		t.Errorf("Expected 2048x1152, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel != 100 || config.MaxDepth != 50 {
		t.Errorf("Unexpected sampling %+v", config)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestImageHeight(t *testing.T) {
	tests := []struct {
		width    int
		aspect   float64
		expected int
	}{
		{400, 16.0 / 9.0, 225},
		{2048, 16.0 / 9.0, 1152},
		{100, 3.0 / 2.0, 66},
		{10, 1.0, 10},
	}

	for _, tt := range tests {
		if got := ImageHeight(tt.width, tt.aspect); got != tt.expected {
			t.Errorf("ImageHeight(%d, %f) = %d, want %d", tt.width, tt.aspect, got, tt.expected)
		}
	}
}

func colorApproxEqual(a, b core.Color, tolerance float64) bool {
	return vecApproxEqual(core.NewVec3(a.R, a.G, a.B), core.NewVec3(b.R, b.G, b.B), tolerance)
}
