package geometry

import (
	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center core.Vec3
	Radius float32
	mat    *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, mat *material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, mat: mat}
}

// Intersect tests the ray against the sphere and returns the near root
func (s *Sphere) Intersect(ray core.Ray) (Hit, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	t := (-b - math32.Sqrt(discriminant)) / (2.0 * a)
	if t < 0 {
		return Hit{}, false
	}
	return Hit{T: t}, true
}

// IntersectSpan returns both roots of the ray-sphere intersection. When the
// ray starts inside the sphere the entry parameter is replaced by the exit.
func (s *Sphere) IntersectSpan(ray core.Ray) (tNear, tFar float32, ok bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math32.Sqrt(discriminant)
	tNear = (-b - sqrtD) / (2.0 * a)
	tFar = (-b + sqrtD) / (2.0 * a)
	if tFar < 0 {
		return 0, 0, false
	}
	if tNear < 0 {
		tNear = tFar
	}
	return tNear, tFar, true
}

// NormalAt returns the outward unit normal at a surface point
func (s *Sphere) NormalAt(point core.Vec3, _ Hit) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// BoundingBox returns the axis-aligned bounds of the sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.mat
}
