package scene

import (
	"fmt"
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

// CameraSpec carries the viewpoint a preset scene was authored for.
// The renderer turns it into a camera once the aspect ratio is known.
type CameraSpec struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VerticalFov float64 // degrees
	FocalLength float64
	LensRadius  float64
}

// Preset builds a named test scene and returns it together with its
// camera spec. The returned scene already has its BVH built.
func Preset(name string) (*Scene, CameraSpec, error) {
	switch name {
	case "spheres":
		s, cam := newSpheresScene()
		return s, cam, nil
	case "cornell":
		s, cam := newCornellScene()
		return s, cam, nil
	default:
		return nil, CameraSpec{}, fmt.Errorf("unknown scene %q (available: %v)", name, PresetNames())
	}
}

// PresetNames lists the available preset scenes in stable order
func PresetNames() []string {
	names := []string{"spheres", "cornell"}
	sort.Strings(names)
	return names
}

// newSpheresScene places a plaster, a mirror and a glass sphere in a row
// under a single luminous sphere
func newSpheresScene() (*Scene, CameraSpec) {
	s := New()

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.Plaster()),
		geometry.NewSphere(core.NewVec3(-1.2, 0, 0), 0.5, material.Mirror()),
		geometry.NewSphere(core.NewVec3(1.2, 0, 0), 0.5, material.Glass()),
		geometry.NewSphere(core.NewVec3(0, -100.5, 0), 100, material.Plaster()),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5, material.Luminous()),
	)
	s.BuildBVH()

	return s, CameraSpec{
		LookFrom:    core.NewVec3(0, 0, 4),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFov: 60,
		FocalLength: 4,
		LensRadius:  0,
	}
}

// newCornellScene builds a box from triangle pairs with a luminous panel
// in the ceiling and two spheres inside
func newCornellScene() (*Scene, CameraSpec) {
	s := New()

	white := material.Plaster()
	red := material.Plaster()
	red.Diffuse = core.NewVec3(0.65, 0.05, 0.05)
	green := material.Plaster()
	green.Diffuse = core.NewVec3(0.12, 0.45, 0.15)

	// Box corners, 2 units on a side, open toward the camera
	nearBL := core.NewVec3(-1, -1, 1)
	nearBR := core.NewVec3(1, -1, 1)
	nearTL := core.NewVec3(-1, 1, 1)
	nearTR := core.NewVec3(1, 1, 1)
	farBL := core.NewVec3(-1, -1, -1)
	farBR := core.NewVec3(1, -1, -1)
	farTL := core.NewVec3(-1, 1, -1)
	farTR := core.NewVec3(1, 1, -1)

	s.Add(quad(farBL, farBR, farTR, farTL, white)...)   // back wall
	s.Add(quad(nearBL, farBL, farTL, nearTL, red)...)   // left wall
	s.Add(quad(farBR, nearBR, nearTR, farTR, green)...) // right wall
	s.Add(quad(nearBL, nearBR, farBR, farBL, white)...) // floor
	s.Add(quad(nearTL, nearTR, farTR, farTL, white)...) // ceiling

	// Light panel just below the ceiling
	s.Add(quad(
		core.NewVec3(-0.3, 0.999, -0.3),
		core.NewVec3(0.3, 0.999, -0.3),
		core.NewVec3(0.3, 0.999, 0.3),
		core.NewVec3(-0.3, 0.999, 0.3),
		material.Luminous(),
	)...)

	s.Add(
		geometry.NewSphere(core.NewVec3(-0.4, -0.7, -0.4), 0.3, material.Mirror()),
		geometry.NewSphere(core.NewVec3(0.45, -0.7, 0.2), 0.3, material.Glass()),
	)
	s.BuildBVH()

	return s, CameraSpec{
		LookFrom:    core.NewVec3(0, 0, 3.8),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFov: 40,
		FocalLength: 3.8,
		LensRadius:  0,
	}
}

// quad splits a quadrilateral into two triangles sharing a diagonal
func quad(a, b, c, d core.Vec3, mat material.Material) []geometry.Primitive {
	return []geometry.Primitive{
		geometry.NewTriangle(a, b, c, mat),
		geometry.NewTriangle(a, c, d, mat),
	}
}
