package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

// Scene owns the primitive collection and the acceleration structure built
// over it. During a render the scene is shared read-only across workers;
// nothing here mutates once BuildBVH has run.
type Scene struct {
	primitives []geometry.Primitive
	bvh        *geometry.BVHNode
	built      bool

	// Textures is the scene-owned lookup table for any texture IDs the
	// materials reference. It replaces ambient global texture state.
	Textures *material.TextureAtlas
}

// New creates an empty scene
func New() *Scene {
	return &Scene{Textures: material.NewTextureAtlas()}
}

// Add appends primitives to the scene. Adding invalidates any previously
// built BVH, so BuildBVH must be called again before the next query.
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.primitives = append(s.primitives, primitives...)
	s.bvh = nil
	s.built = false
}

// Primitives returns the scene's primitive list. Callers must treat it as
// read-only while a render is in flight.
func (s *Scene) Primitives() []geometry.Primitive {
	return s.primitives
}

// PrimitiveCount returns the number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.primitives)
}

// BuildBVH constructs the acceleration structure over the current
// primitive set, replacing any previous tree atomically. It must be called
// before Hit; rebuilding from a reordered primitive list yields identical
// query results.
func (s *Scene) BuildBVH() {
	s.bvh = geometry.NewBVH(s.primitives)
	s.built = true
}

// BVH returns the built acceleration structure, or nil before BuildBVH
func (s *Scene) BVH() *geometry.BVHNode {
	return s.bvh
}

// Hit returns the nearest intersection in [tMin, tMax). Querying a scene
// whose BVH has not been built is a programming error, not a miss, so it
// fails loudly rather than degrading to an unaccelerated scan.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !s.built {
		panic("scene: Hit called before BuildBVH")
	}
	if s.bvh == nil {
		return nil, false // built, but the scene is empty
	}
	return s.bvh.Hit(ray, tMin, tMax)
}
