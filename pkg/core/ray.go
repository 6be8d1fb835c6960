package core

// Ray represents a ray with an origin and a unit-length direction.
// Rays are immutable values: a new one is constructed for every camera
// sample and every scattering event.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is renormalized so that the
// unit-length invariant holds regardless of what the caller passes in.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
