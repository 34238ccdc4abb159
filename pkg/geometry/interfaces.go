package geometry

import (
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// Hit describes a ray-primitive intersection. U and V are the barycentric
// weights of the hit (meaningful for triangles, zero otherwise); passing the
// Hit back into NormalAt or TexCoordAt keeps primitives free of mutable
// per-hit state, so they can be shared across render workers.
type Hit struct {
	T float32 // Ray parameter of the intersection
	U float32 // Barycentric weight of the second vertex
	V float32 // Barycentric weight of the third vertex
}

// Primitive is implemented by every shape the acceleration tree indexes
type Primitive interface {
	// Intersect tests the ray against the primitive. On a hit the returned
	// parameter is non-negative (triangles also reject t <= 1e-6); the BVH
	// traversal applies its own minimum distance.
	Intersect(ray core.Ray) (Hit, bool)

	// NormalAt returns the unit surface normal for a point produced by a
	// previous Intersect call
	NormalAt(point core.Vec3, hit Hit) core.Vec3

	// BoundingBox returns the axis-aligned bounds of the primitive
	BoundingBox() core.AABB

	// Material returns the primitive's material, owned by the scene
	Material() *material.Material
}
