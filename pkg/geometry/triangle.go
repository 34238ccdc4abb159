package geometry

import (
	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

const triangleEpsilon = 1e-6

// Triangle represents a triangle with per-vertex shading normals and texture
// coordinates. Barycentric weights of a hit travel in the Hit value instead of
// being stored on the triangle, so one triangle can serve many workers.
type Triangle struct {
	P0, P1, P2 core.Vec3 // Vertices
	N0, N1, N2 core.Vec3 // Per-vertex shading normals, unit length
	ST0        core.Vec2 // Per-vertex texture coordinates
	ST1        core.Vec2
	ST2        core.Vec2
	mat        *material.Material
	faceNormal core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a triangle whose shading normals all equal the face normal
func NewTriangle(p0, p1, p2 core.Vec3, mat *material.Material) *Triangle {
	t := &Triangle{P0: p0, P1: p1, P2: p2, mat: mat}
	t.faceNormal = p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	t.N0, t.N1, t.N2 = t.faceNormal, t.faceNormal, t.faceNormal
	t.bbox = core.NewAABBFromPoints(p0, p1, p2)
	return t
}

// NewMeshTriangle creates a triangle with per-vertex normals and texture
// coordinates, as produced by the OBJ loader. Vertex normals are normalized;
// a zero-length normal falls back to the face normal.
func NewMeshTriangle(p0, p1, p2, n0, n1, n2 core.Vec3, st0, st1, st2 core.Vec2, mat *material.Material) *Triangle {
	t := &Triangle{
		P0: p0, P1: p1, P2: p2,
		ST0: st0, ST1: st1, ST2: st2,
		mat: mat,
	}
	t.faceNormal = p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	t.N0 = normalOrFallback(n0, t.faceNormal)
	t.N1 = normalOrFallback(n1, t.faceNormal)
	t.N2 = normalOrFallback(n2, t.faceNormal)
	t.bbox = core.NewAABBFromPoints(p0, p1, p2)
	return t
}

func normalOrFallback(n, fallback core.Vec3) core.Vec3 {
	if n.IsZero() {
		return fallback
	}
	return n.Normalize()
}

// Intersect tests the ray against the triangle using Möller-Trumbore.
// The returned Hit carries the barycentric weights of the second and third
// vertices; the first vertex weight is 1-u-v.
func (t *Triangle) Intersect(ray core.Ray) (Hit, bool) {
	edge1 := t.P1.Subtract(t.P0)
	edge2 := t.P2.Subtract(t.P0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleEpsilon && a < triangleEpsilon {
		return Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.P0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Hit{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= triangleEpsilon {
		return Hit{}, false
	}

	return Hit{T: tParam, U: u, V: v}, true
}

// NormalAt returns the barycentric-interpolated shading normal
func (t *Triangle) NormalAt(_ core.Vec3, hit Hit) core.Vec3 {
	w0 := 1.0 - hit.U - hit.V
	return t.N0.Multiply(w0).
		Add(t.N1.Multiply(hit.U)).
		Add(t.N2.Multiply(hit.V)).
		Normalize()
}

// FaceNormal returns the geometric normal of the triangle plane
func (t *Triangle) FaceNormal() core.Vec3 {
	return t.faceNormal
}

// TexCoordAt returns the interpolated texture coordinates of a hit, wrapped
// into [0,1) by taking fractional parts
func (t *Triangle) TexCoordAt(hit Hit) core.Vec2 {
	w0 := 1.0 - hit.U - hit.V
	st := t.ST0.Multiply(w0).
		Add(t.ST1.Multiply(hit.U)).
		Add(t.ST2.Multiply(hit.V))
	return core.NewVec2(wrapUnit(st.X), wrapUnit(st.Y))
}

func wrapUnit(v float32) float32 {
	return v - math32.Floor(v)
}

// BoundingBox returns the axis-aligned bounds of the triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Material returns the triangle's material
func (t *Triangle) Material() *material.Material {
	return t.mat
}
