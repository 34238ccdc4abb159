package geometry

import (
	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// Plane represents an infinite plane satisfying normal·p + d = 0
type Plane struct {
	Normal core.Vec3
	D      float32
	mat    *material.Material
}

// NewPlane creates a new plane. The normal is normalized at construction.
func NewPlane(normal core.Vec3, d float32, mat *material.Material) *Plane {
	return &Plane{Normal: normal.Normalize(), D: d, mat: mat}
}

// Intersect tests the ray against the plane
func (p *Plane) Intersect(ray core.Ray) (Hit, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math32.Abs(denom) < 1e-6 {
		return Hit{}, false
	}
	t := -(p.Normal.Dot(ray.Origin) + p.D) / denom
	if t < 0 {
		return Hit{}, false
	}
	return Hit{T: t}, true
}

// NormalAt returns the plane normal
func (p *Plane) NormalAt(_ core.Vec3, _ Hit) core.Vec3 {
	return p.Normal
}

// BoundingBox returns the whole space; an infinite plane has no finite bounds
func (p *Plane) BoundingBox() core.AABB {
	inf := math32.Inf(1)
	return core.NewAABB(
		core.NewVec3(-inf, -inf, -inf),
		core.NewVec3(inf, inf, inf),
	)
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.mat
}
