package renderer

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Camera is a thin-lens camera. It maps normalized image-plane coordinates
// to world-space rays, jittering the ray origin across the lens aperture
// for depth of field.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera at lookFrom facing lookAt. The basis vector w
// points from lookAt back toward lookFrom, so the camera looks down -w.
// Note that v is normalize(up), not re-orthogonalized against u and w:
// when up is not perpendicular to the view direction the basis is skewed.
// This matches the reference renderer's behavior.
func NewCamera(lookFrom, lookAt, up core.Vec3, verticalFovDegrees, aspectRatio, focalLength, lensRadius float64) *Camera {
	theta := verticalFovDegrees * math.Pi / 180.0
	h := math.Tan(theta/2.0) * focalLength
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := up.Normalize()

	lowerLeftCorner := lookFrom.
		Subtract(u.Multiply(viewportWidth / 2.0)).
		Subtract(v.Multiply(viewportHeight / 2.0)).
		Subtract(w.Multiply(focalLength))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(viewportWidth),
		vertical:        v.Multiply(viewportHeight),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      lensRadius,
	}
}

// GetRay generates a ray through normalized image coordinates s, t in
// [0, 1]. The origin is offset by a random point on the lens disk; light
// leaving a point on the focal plane reaches the whole aperture, so the
// offset defocuses everything off that plane.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	lens := core.SampleUnitDisk(sampler)
	offset := c.u.Multiply(lens.X * c.lensRadius).
		Add(c.v.Multiply(lens.Y * c.lensRadius))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin.Add(offset), direction)
}
