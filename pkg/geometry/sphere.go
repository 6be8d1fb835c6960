package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Sphere represents a sphere with an attached material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects the sphere. With a unit ray direction the
// intersection equation reduces to t² + 2t(d·oc) + (|oc|² − r²) = 0, so
// only the half-b form of the quadratic is needed.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant <= 0 {
		return nil, false
	}

	// Prefer the nearer root, fall back to the farther one
	sqrtD := math.Sqrt(discriminant)
	root := -halfB - sqrtD
	if root < tMin || root > tMax {
		root = -halfB + sqrtD
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit := material.NewHitRecord(point, normal, root, s.Material)
	return &hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
