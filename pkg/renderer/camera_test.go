package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 4),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		60, 1.0, 4, 0,
	)

	// The image-plane center maps to the view direction
	ray := camera.GetRay(0.5, 0.5, newTestSampler(1))
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected center ray direction %v, got %v", want, ray.Direction)
	}
	if ray.Origin != core.NewVec3(0, 0, 4) {
		t.Errorf("Expected origin (0,0,4) with a zero lens radius, got %v", ray.Origin)
	}
}

func TestCamera_CornersSpanTheFov(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90, 1.0, 1, 0,
	)
	sampler := newTestSampler(2)

	// With a 90 degree vertical fov at focal length 1 the viewport half
	// height is 1, so the top edge ray rises at 45 degrees
	top := camera.GetRay(0.5, 1.0, sampler)
	if math.Abs(top.Direction.Y-(-top.Direction.Z)) > 1e-12 {
		t.Errorf("Expected 45 degree top edge ray, got %v", top.Direction)
	}

	bottom := camera.GetRay(0.5, 0.0, sampler)
	if math.Abs(bottom.Direction.Y+(-bottom.Direction.Z)) > 1e-12 {
		t.Errorf("Expected -45 degree bottom edge ray, got %v", bottom.Direction)
	}

	left := camera.GetRay(0.0, 0.5, sampler)
	right := camera.GetRay(1.0, 0.5, sampler)
	if math.Abs(left.Direction.X+right.Direction.X) > 1e-12 {
		t.Errorf("Expected symmetric horizontal edges, got %v and %v", left.Direction, right.Direction)
	}
}

func TestCamera_AspectRatioWidensViewport(t *testing.T) {
	sampler := newTestSampler(3)
	horizontalSpread := func(aspect float64) float64 {
		camera := NewCamera(
			core.NewVec3(0, 0, 0),
			core.NewVec3(0, 0, -1),
			core.NewVec3(0, 1, 0),
			60, aspect, 1, 0,
		)
		right := camera.GetRay(1.0, 0.5, sampler)
		return right.Direction.X / -right.Direction.Z
	}

	if wide, square := horizontalSpread(16.0/9.0), horizontalSpread(1.0); wide <= square {
		t.Errorf("Expected a wider aspect to spread rays further: %f vs %f", wide, square)
	}
}

func TestCamera_ZeroLensRadiusIsDeterministic(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(1, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		45, 16.0/9.0, 3, 0,
	)

	first := camera.GetRay(0.3, 0.7, newTestSampler(4))
	second := camera.GetRay(0.3, 0.7, newTestSampler(99))
	if first != second {
		t.Errorf("Expected identical rays with a pinhole camera: %v vs %v", first, second)
	}
}

func TestCamera_LensRadiusOffsetsOrigin(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 4)
	camera := NewCamera(
		lookFrom,
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		60, 1.0, 4, 0.5,
	)
	sampler := newTestSampler(5)

	moved := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(lookFrom).Length()
		if offset > 0.5*math.Sqrt2+1e-12 {
			t.Fatalf("Lens offset %f exceeds the aperture", offset)
		}
		if offset > 1e-9 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected the lens to jitter the ray origin")
	}
}

func TestCamera_RaysReachTheFocalPlane(t *testing.T) {
	// Every lens sample must produce a ray aimed at the focal plane region;
	// with the image-plane center fixed, defocused rays still pass near the
	// focal point
	lookFrom := core.NewVec3(0, 0, 4)
	focal := 4.0
	camera := NewCamera(
		lookFrom,
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		60, 1.0, focal, 0.2,
	)
	sampler := newTestSampler(6)

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		// Advance to the focal plane z=0
		tPlane := -ray.Origin.Z / ray.Direction.Z
		point := ray.At(tPlane)
		if point.Subtract(core.NewVec3(0, 0, 0)).Length() > 0.3 {
			t.Fatalf("Defocused ray lands %v, too far from the focal point", point)
		}
	}
}
