// Package scene describes the renderer input: primitives, point lights, a
// pinhole camera, and a background color, together with the acceleration
// tree built over the primitives.
package scene

import (
	"github.com/HuynhNguyenPhuc/laurel/pkg/bvh"
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
)

// Scene owns the primitives and lights; everything is immutable once built
// and may be shared freely between render workers.
type Scene struct {
	Primitives     []geometry.Primitive
	Lights         []core.Light
	CameraPosition core.Vec3
	FOV            float32 // Vertical field of view in degrees
	Background     core.Vec3
	Tree           *bvh.Tree
}

// New creates a scene and builds the acceleration tree over its primitives
func New(primitives []geometry.Primitive, lights []core.Light, cameraPosition core.Vec3, fov float32, background core.Vec3) *Scene {
	return &Scene{
		Primitives:     primitives,
		Lights:         lights,
		CameraPosition: cameraPosition,
		FOV:            fov,
		Background:     background,
		Tree:           bvh.Build(primitives),
	}
}
