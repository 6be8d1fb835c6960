package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

const (
	// fuzz perturbs glossy reflections; raised to the specular exponent so
	// high exponents converge toward a perfect mirror
	fuzz = 0.1

	// ambientStrength scales the unconditional ambient term
	ambientStrength = 0.1

	// emissiveGain scales emissive colors so lights read as bright even
	// after a few attenuating bounces
	emissiveGain = 5.0

	// sinEpsilon below which refraction degenerates to the straight-through
	// direction instead of building an in-plane basis
	sinEpsilon = 1e-7
)

// Material is a pure value record describing how a surface responds to
// light. It has no identity beyond its field values: primitives each carry
// their own copy and derived materials are new values.
type Material struct {
	Ambient            core.Vec3 // components in [0, 1]
	Diffuse            core.Vec3 // components in [0, 1]
	Specular           core.Vec3 // components may exceed 1 for bright highlights
	Emissive           core.Vec3
	TransmissionFilter core.Vec3
	Dissolve           float64 // transparency fraction in [0, 1]
	SpecularExponent   float64
	OpticalDensity     float64 // refractive index, >= 1
}

// ScatteredRay couples an outgoing ray with the per-channel attenuation
// applied to the color gathered along it
type ScatteredRay struct {
	Ray         core.Ray
	Coefficient core.Vec3
}

// HitRecord contains information about a ray-primitive intersection.
// The material is copied by value from the hit primitive.
type HitRecord struct {
	Point    core.Vec3
	Normal   core.Vec3 // unit length
	T        float64
	Material Material
}

// NewHitRecord creates a hit record, renormalizing the normal so the
// unit-length invariant holds for interpolated triangle normals too
func NewHitRecord(point, normal core.Vec3, t float64, mat Material) HitRecord {
	return HitRecord{Point: point, Normal: normal.Normalize(), T: t, Material: mat}
}

// Scatter splits an incoming ray at a surface into up to three outgoing
// rays: a cosine-weighted diffuse bounce, a fuzz-perturbed mirror
// reflection and a refracted transmission. Channels whose coefficient has
// no positive component are pruned so the integrator never recurses into
// contributions that cannot affect the image.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) []ScatteredRay {
	scattered := make([]ScatteredRay, 0, 3)
	normal := hit.Normal
	origin := hit.Point

	diffuseCoeff := m.Diffuse.Multiply(0.5 * (1.0 - m.Dissolve))
	if diffuseCoeff.MaxComponent() > 0 {
		direction := core.SampleCosineHemisphere(normal, sampler.Get2D())
		scattered = append(scattered, ScatteredRay{
			Ray:         core.NewRay(origin, direction),
			Coefficient: diffuseCoeff,
		})
	}

	specularCoeff := m.Specular.Multiply(0.5 * (1.0 - m.Dissolve))
	if specularCoeff.MaxComponent() > 0 {
		direction := rayIn.Direction.Reflect(normal)
		perturbation := core.SampleUnitVector(sampler).Multiply(math.Pow(fuzz, m.SpecularExponent))
		direction = direction.Add(perturbation).Normalize()
		scattered = append(scattered, ScatteredRay{
			Ray:         core.NewRay(origin, direction),
			Coefficient: specularCoeff,
		})
	}

	transmissiveCoeff := m.TransmissionFilter.Multiply(m.Dissolve)
	if transmissiveCoeff.MaxComponent() > 0 {
		if direction, ok := m.refract(rayIn, normal); ok {
			scattered = append(scattered, ScatteredRay{
				Ray:         core.NewRay(origin, direction),
				Coefficient: transmissiveCoeff,
			})
		}
	}

	return scattered
}

// AmbientColor returns the ambient contribution added at every hit
func (m Material) AmbientColor() core.Vec3 {
	return m.Ambient.Multiply((1.0 - m.Dissolve) * ambientStrength)
}

// EmissiveColor returns the emitted contribution added at every hit
func (m Material) EmissiveColor() core.Vec3 {
	return m.Emissive.Multiply(emissiveGain)
}

// refract computes the transmitted direction through the surface using a
// Snell's-law construction in the plane spanned by the incoming direction
// and the normal. The boolean is false on total internal reflection.
func (m Material) refract(rayIn core.Ray, normal core.Vec3) (core.Vec3, bool) {
	cosTheta := rayIn.Direction.Dot(normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	if cosTheta > 0 {
		// Exiting the medium into vacuum
		sinPhi := sinTheta * m.OpticalDensity
		if sinPhi > 1.0 {
			return core.Vec3{}, false
		}
		if sinPhi < sinEpsilon {
			return normal, true
		}
		cosPhi := math.Sqrt(1.0 - sinPhi*sinPhi)
		u := normal.Cross(rayIn.Direction.Cross(normal)).Normalize()
		return u.Multiply(sinPhi).Add(normal.Multiply(cosPhi)).Normalize(), true
	}

	// Entering the medium
	sinPhi := sinTheta / m.OpticalDensity
	if sinPhi < sinEpsilon {
		return normal.Negate(), true
	}
	cosPhi := math.Sqrt(1.0 - sinPhi*sinPhi)
	u := normal.Cross(rayIn.Direction.Cross(normal)).Normalize()
	v := normal.Negate()
	return u.Multiply(sinPhi).Add(v.Multiply(cosPhi)).Normalize(), true
}
