package geometry

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Primitive is the capability set shared by everything a ray can hit:
// an intersection test over a parameter interval and an axis-aligned
// bounding box for BVH construction.
type Primitive interface {
	// Hit returns the nearest intersection with t in [tMin, tMax),
	// or (nil, false) when the ray misses
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns the primitive's axis-aligned bounds
	BoundingBox() core.AABB
}
