package geometry

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// parallelEpsilon bounds the Möller-Trumbore determinant below which the
// ray is treated as parallel to the triangle plane
const parallelEpsilon = 1e-8

// Triangle represents a triangle with per-vertex normals and an attached
// material. When the mesh supplies no vertex normals the face normal is
// replicated across all three vertices.
type Triangle struct {
	V0, V1, V2 core.Vec3
	N0, N1, N2 core.Vec3
	Material   material.Material
	bbox       core.AABB
}

// NewTriangle creates a triangle using the flat face normal at every vertex
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return NewTriangleWithNormals(v0, v1, v2, faceNormal, faceNormal, faceNormal, mat)
}

// NewTriangleWithNormals creates a triangle with per-vertex shading normals
func NewTriangleWithNormals(v0, v1, v2, n0, n1, n2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0.Normalize(), N1: n1.Normalize(), N2: n2.Normalize(),
		Material: mat,
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Hit tests if a ray intersects the triangle using the Möller-Trumbore
// algorithm. The shading normal is the barycentric interpolation of the
// vertex normals.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(e2)
	a := e1.Dot(h)
	if a > -parallelEpsilon && a < parallelEpsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	v := f * s.Dot(h)
	if v < 0.0 || v > 1.0 {
		return nil, false
	}

	q := s.Cross(e1)
	w := f * ray.Direction.Dot(q)
	if w < 0.0 || v+w > 1.0 {
		return nil, false
	}

	tParam := f * e2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	normal := t.N0.Multiply(1.0 - v - w).
		Add(t.N1.Multiply(v)).
		Add(t.N2.Multiply(w))

	hit := material.NewHitRecord(ray.At(tParam), normal, tParam, t.Material)
	return &hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
