package core

import (
	"math"
	"math/rand"
)

// Sampler provides random draws for rendering algorithms.
// Can be swapped out for deterministic sequences in tests.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleTent draws a tent-filtered value in [0, 1]. Relative to uniform
// jitter the triangular distribution concentrates sub-pixel samples near
// the pixel center, which softens aliasing without blurring.
func SampleTent(sampler Sampler) float64 {
	u := sampler.Get1D() * 2.0
	if u < 1.0 {
		return math.Sqrt(u) / 2.0
	}
	return 1.0 - math.Sqrt(2.0-u)/2.0
}

// SampleUnitDisk draws a point inside the unit disk by rejection:
// candidates are taken uniformly from [0,1) x [0,1) and the first with
// squared length below one wins, so samples come from the positive
// quadrant of the disk.
func SampleUnitDisk(sampler Sampler) Vec2 {
	for {
		p := sampler.Get2D()
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SampleUnitVector draws a uniformly distributed unit vector by rejecting
// candidates from the centered unit cube that are too short to normalize
// reliably.
func SampleUnitVector(sampler Sampler) Vec3 {
	for {
		v := Vec3{
			X: sampler.Get1D() - 0.5,
			Y: sampler.Get1D() - 0.5,
			Z: sampler.Get1D() - 0.5,
		}
		if v.LengthSquared() > 1e-12 {
			return v.Normalize()
		}
	}
}

// SampleCosineHemisphere draws a cosine-weighted direction in the
// hemisphere around a unit normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	r := math.Sqrt(sample.X)
	theta := 2.0 * math.Pi * sample.Y

	// Disk coordinates projected up onto the hemisphere
	x := r * math.Cos(theta)
	y := r * math.Sin(theta)
	z := math.Sqrt(1.0 - sample.X)

	tangent, bitangent := OrthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(z))
}

// OrthonormalBasis builds a tangent and bitangent perpendicular to a unit
// normal. The helper axis is chosen away from the normal's dominant
// component to keep the cross product well conditioned.
func OrthonormalBasis(normal Vec3) (tangent, bitangent Vec3) {
	if math.Abs(normal.X) > 0.1 {
		tangent = NewVec3(0, 1, 0).Cross(normal).Normalize()
	} else {
		tangent = NewVec3(1, 0, 0).Cross(normal).Normalize()
	}
	bitangent = normal.Cross(tangent)
	return tangent, bitangent
}
