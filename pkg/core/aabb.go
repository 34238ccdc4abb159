package core

import "github.com/chewxy/math32"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewEmptyAABB creates the empty sentinel box (min=+Inf, max=-Inf) so that
// the first ExpandPoint or Union populates it correctly.
func NewEmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	aabb := NewEmptyAABB()
	for _, point := range points {
		aabb = aabb.ExpandPoint(point)
	}
	return aabb
}

// ExpandPoint returns an AABB grown to contain the given point
func (aabb AABB) ExpandPoint(p Vec3) AABB {
	return AABB{
		Min: Vec3{
			X: math32.Min(aabb.Min.X, p.X),
			Y: math32.Min(aabb.Min.Y, p.Y),
			Z: math32.Min(aabb.Min.Z, p.Z),
		},
		Max: Vec3{
			X: math32.Max(aabb.Max.X, p.X),
			Y: math32.Max(aabb.Max.Y, p.Y),
			Z: math32.Max(aabb.Max.Z, p.Z),
		},
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math32.Min(aabb.Min.X, other.Min.X),
			Y: math32.Min(aabb.Min.Y, other.Min.Y),
			Z: math32.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math32.Max(aabb.Max.X, other.Max.X),
			Y: math32.Max(aabb.Max.Y, other.Max.Y),
			Z: math32.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Centroid returns the center point of the AABB
func (aabb AABB) Centroid() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float32 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid reports whether min <= max on all axes (false for the empty sentinel)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Intersect tests the ray against the box using the slab method and returns
// the entry and exit parameters. The hit condition is tExit > tEntry; a box
// with infinite corners (an unbounded plane) still orders the slabs correctly.
func (aabb AABB) Intersect(ray Ray) (tEntry, tExit float32, ok bool) {
	tEntry = math32.Inf(-1)
	tExit = math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.At(axis)
		t0 := (aabb.Min.At(axis) - ray.Origin.At(axis)) * invD
		t1 := (aabb.Max.At(axis) - ray.Origin.At(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		tEntry = math32.Max(tEntry, t0)
		tExit = math32.Min(tExit, t1)

		if tExit <= tEntry {
			return 0, 0, false
		}
	}

	return tEntry, tExit, true
}
