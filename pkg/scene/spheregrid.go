package scene

import (
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// The 4x4 sphere grid shared by the whitted and path scenes
var (
	gridColors = []core.Vec3{
		core.NewVec3(1.0, 0.0, 0.0), core.NewVec3(0.0, 1.0, 0.0), core.NewVec3(0.0, 0.0, 1.0), core.NewVec3(1.0, 1.0, 0.0),
		core.NewVec3(1.0, 0.0, 1.0), core.NewVec3(0.0, 1.0, 1.0), core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1.0, 0.5, 0.0),
		core.NewVec3(0.5, 0.0, 1.0), core.NewVec3(0.0, 0.5, 1.0), core.NewVec3(1.0, 0.5, 0.5), core.NewVec3(0.5, 1.0, 0.5),
		core.NewVec3(0.5, 0.5, 1.0), core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.3, 0.7, 0.4),
	}

	gridRadii = []float32{0.7, 0.8, 0.9, 1.0, 0.6, 0.9, 0.7, 0.8, 1.0, 0.6, 0.7, 0.8, 0.9, 1.0, 0.7, 0.8}

	gridKinds = []material.Kind{
		material.Mirror, material.Dielectric, material.Matte, material.Mirror,
		material.Dielectric, material.Matte, material.Mirror, material.Dielectric,
		material.Matte, material.Mirror, material.Dielectric, material.Matte,
		material.Mirror, material.Dielectric, material.Matte, material.Mirror,
	}
)

const gridSpacing float32 = 2.2

func sphereGrid() []geometry.Primitive {
	primitives := make([]geometry.Primitive, 0, 17)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			index := i*4 + j
			kind := gridKinds[index]

			var kt float32
			if kind == material.Dielectric {
				kt = 0.8
			}
			mat := material.NewMaterial(gridColors[index], 1.0, 0.3, 0.5, 0.5, kt, 1.5, 32.0, kind)

			position := core.NewVec3(-3.5+float32(j)*gridSpacing, -1.5, -8.0+float32(i)*gridSpacing)
			primitives = append(primitives, geometry.NewSphere(position, gridRadii[index], mat))
		}
	}
	return primitives
}

// NewWhittedScene builds the sphere grid over a gray ground plane, lit by a
// single point light, for the Whitted integrator
func NewWhittedScene(background core.Vec3) *Scene {
	primitives := sphereGrid()

	ground := material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), 1.0, 0.3, 0.5, 0.5, 0.0, 1.0, 16.0, material.Matte)
	primitives = append(primitives, geometry.NewPlane(core.NewVec3(0.0, 0.75, 0.0), 2.0, ground))

	lights := []core.Light{
		core.NewLight(core.NewVec3(0.0, 0.0, 5.0), core.NewVec3(0.0, 0.0, -1.0), 2.0),
	}

	return New(primitives, lights, core.NewVec3(0.0, 0.0, 2.0), 90.0, background)
}

// NewPathScene builds the sphere grid variant lit by two bright point lights
// for the path integrator
func NewPathScene() *Scene {
	primitives := sphereGrid()

	ground := material.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), 1.0, 1.0, 1.0, 1.0, 0.0, 1.0, 16.0, material.Matte)
	primitives = append(primitives, geometry.NewPlane(core.NewVec3(0.0, 0.75, 0.0), 2.0, ground))

	lights := []core.Light{
		core.NewLight(core.NewVec3(0.0, 10.0, 10.0), core.NewVec3(1.0, 1.0, 1.0), 1000.0),
		core.NewLight(core.NewVec3(0.0, 10.0, -10.0), core.NewVec3(1.0, 1.0, 1.0), 1000.0),
	}

	return New(primitives, lights, core.NewVec3(0.0, 0.0, 3.0), 90.0, core.NewVec3(0, 0, 0))
}
