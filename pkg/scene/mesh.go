package scene

import (
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
	"github.com/HuynhNguyenPhuc/laurel/pkg/loaders"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// NewMeshScene loads a wavefront OBJ mesh and its texture and wraps them in
// a scene lit by a single point light above the camera
func NewMeshScene(meshPath, texturePath string, textureWidth, textureHeight int) (*Scene, error) {
	stream, err := loaders.LoadOBJ(meshPath)
	if err != nil {
		return nil, err
	}

	texture, err := loaders.LoadTexture(texturePath, textureWidth, textureHeight)
	if err != nil {
		return nil, err
	}

	mat := material.NewMatte(core.NewVec3(1.0, 0.0, 0.0), 0.2, 0.8, 0.3, 16.0)
	mat.Texture = texture

	triangles := loaders.BuildTriangles(stream, mat)
	primitives := make([]geometry.Primitive, len(triangles))
	for i, tri := range triangles {
		primitives[i] = tri
	}

	lights := []core.Light{
		core.NewLight(core.NewVec3(0.0, 0.75, 1.5), core.NewVec3(1.0, 1.0, 1.0), 5.0),
	}

	return New(primitives, lights, core.NewVec3(0.0, 0.5, 1.0), 90.0, core.NewVec3(0.1, 0.1, 0.1)), nil
}
