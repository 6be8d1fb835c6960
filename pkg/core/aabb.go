package core

import "math"

// degenerateDirEpsilon is the threshold below which a ray direction
// component is treated as parallel to the slab axis.
const degenerateDirEpsilon = 1e-8

// AABB represents an axis-aligned bounding box. Boxes are never mutated
// after creation; merging produces a new box.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests whether the ray intersects the box, using the slab method
// across the three axes. For an axis where the ray direction is degenerate
// (parallel to the slab), the origin must lie within [min, max] on that
// axis, boundaries included; otherwise there can be no intersection.
func (aabb AABB) Hit(ray Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if math.Abs(direction) < degenerateDirEpsilon {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		t0 := (min - origin) / direction
		t1 := (max - origin) / direction
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)

		// Fail fast once the interval is empty or entirely behind the origin
		if tMin > tMax || tMax <= 0 {
			return false
		}
	}

	return true
}

// Merge returns an AABB that contains both this box and another
func (aabb AABB) Merge(other AABB) AABB {
	return AABB{
		Min: aabb.Min.Min(other.Min),
		Max: aabb.Max.Max(other.Max),
	}
}

// HalfSurfaceArea returns half the surface area of the box,
// the quantity the surface-area heuristic compares during BVH builds
func (aabb AABB) HalfSurfaceArea() float64 {
	size := aabb.Max.Subtract(aabb.Min)
	return size.X*size.Y + size.Y*size.Z + size.Z*size.X
}

// Contains reports whether the other box lies entirely within this one
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// IsValid returns true if min <= max holds on every axis
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
