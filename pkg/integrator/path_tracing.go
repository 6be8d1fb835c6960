package integrator

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/scene"
)

const (
	// tMin offsets secondary rays off the surface they scattered from
	tMin = 0.001
	// tMax bounds how far a ray is traced
	tMax = 1000.0
)

// PathTracer evaluates ray colors by recursive Monte Carlo path tracing.
// Recursion is plain call-stack recursion truncated after MaxDepth
// scattering events: the estimator's bias is bounded by the depth cutoff
// rather than eliminated by Russian roulette.
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a path tracer that scatters at most maxDepth
// times per camera ray. A depth of zero shades every hit by its local
// ambient and emissive terms alone.
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor estimates the color arriving along a ray. Rays that escape the
// scene contribute black. Every hit contributes its material's ambient and
// emissive terms unconditionally; while fewer than MaxDepth scattering
// events have occurred the material's scattered rays are evaluated
// recursively and accumulated, each weighted by its attenuation
// coefficient.
func (pt *PathTracer) RayColor(ray core.Ray, scn *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	hit, ok := scn.Hit(ray, tMin, tMax)
	if !ok {
		return core.Vec3{}
	}

	color := hit.Material.AmbientColor().Add(hit.Material.EmissiveColor())
	if depth >= pt.MaxDepth {
		return color
	}

	for _, scattered := range hit.Material.Scatter(ray, *hit, sampler) {
		gathered := pt.RayColor(scattered.Ray, scn, sampler, depth+1)
		color = color.Add(gathered.MultiplyVec(scattered.Coefficient))
	}
	return color
}
