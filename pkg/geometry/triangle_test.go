package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

func unitTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(-1, -1, -3),
		core.NewVec3(1, -1, -3),
		core.NewVec3(0, 1, -3),
		testMatte(),
	)
}

func TestTriangle_Intersect(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name      string
		ray       core.Ray
		wantHit   bool
		expectedT float32
	}{
		{
			name:      "through the centroid",
			ray:       core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1)),
			wantHit:   true,
			expectedT: 3.0,
		},
		{
			name:    "outside the edges",
			ray:     core.NewRay(core.NewVec3(2, 2, 0), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
		{
			name:    "parallel to the plane",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "behind the origin",
			ray:     core.NewRay(core.NewVec3(0, -1.0/3.0, -5), core.NewVec3(0, 0, -1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tri.Intersect(tt.ray)
			if ok != tt.wantHit {
				t.Fatalf("expected hit=%t, got %t", tt.wantHit, ok)
			}
			if !tt.wantHit {
				return
			}
			if math32.Abs(hit.T-tt.expectedT) > 1e-4 {
				t.Errorf("expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestTriangle_BarycentricsAtHit(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name   string
		origin core.Vec3
	}{
		{"centroid", core.NewVec3(0, -1.0/3.0, 0)},
		{"near first vertex", core.NewVec3(-0.8, -0.9, 0)},
		{"near third vertex", core.NewVec3(0, 0.8, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			hit, ok := tri.Intersect(ray)
			if !ok {
				t.Fatal("expected hit")
			}

			w0 := 1 - hit.U - hit.V
			if hit.U < 0 || hit.U > 1 || hit.V < 0 || hit.V > 1 || w0 < 0 || w0 > 1 {
				t.Errorf("barycentrics out of range: w0=%f u=%f v=%f", w0, hit.U, hit.V)
			}
			if math32.Abs(w0+hit.U+hit.V-1) > 1e-5 {
				t.Errorf("barycentrics do not sum to 1: %f", w0+hit.U+hit.V)
			}
		})
	}
}

func TestTriangle_NormalInterpolation(t *testing.T) {
	// Vertex normals tilt in opposite directions; the interpolated normal
	// near a vertex must approach that vertex's normal.
	tri := NewMeshTriangle(
		core.NewVec3(-1, -1, -3), core.NewVec3(1, -1, -3), core.NewVec3(0, 1, -3),
		core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1), core.NewVec3(0, 0, 1),
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0.5, 1),
		testMatte(),
	)

	// Hit near the third vertex: normal approaches n2 = (0,0,1)
	ray := core.NewRay(core.NewVec3(0, 0.98, 0), core.NewVec3(0, 0, -1))
	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("expected hit")
	}

	normal := tri.NormalAt(ray.At(hit.T), hit)
	if math32.Abs(normal.Length()-1) > 1e-5 {
		t.Errorf("expected unit normal, got length %f", normal.Length())
	}
	if normal.Dot(core.NewVec3(0, 0, 1)) < 0.99 {
		t.Errorf("expected normal near (0,0,1), got %v", normal)
	}
}

func TestTriangle_TexCoordWrapping(t *testing.T) {
	// Texture coordinates outside [0,1) wrap by fractional part
	tri := NewMeshTriangle(
		core.NewVec3(-1, -1, -3), core.NewVec3(1, -1, -3), core.NewVec3(0, 1, -3),
		core.Vec3{}, core.Vec3{}, core.Vec3{},
		core.NewVec2(1.25, -0.25), core.NewVec2(1.25, -0.25), core.NewVec2(1.25, -0.25),
		testMatte(),
	)

	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1))
	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("expected hit")
	}

	st := tri.TexCoordAt(hit)
	if math32.Abs(st.X-0.25) > 1e-4 || math32.Abs(st.Y-0.75) > 1e-4 {
		t.Errorf("expected wrapped (0.25, 0.75), got (%f, %f)", st.X, st.Y)
	}
}

func TestTriangle_ZeroNormalsFallBackToFaceNormal(t *testing.T) {
	tri := NewMeshTriangle(
		core.NewVec3(-1, -1, -3), core.NewVec3(1, -1, -3), core.NewVec3(0, 1, -3),
		core.Vec3{}, core.Vec3{}, core.Vec3{},
		core.Vec2{}, core.Vec2{}, core.Vec2{},
		testMatte(),
	)

	if !tri.N0.ApproxEqual(tri.FaceNormal()) {
		t.Errorf("expected face normal fallback, got %v", tri.N0)
	}
	if math32.Abs(tri.FaceNormal().Length()-1) > 1e-5 {
		t.Errorf("expected unit face normal, got length %f", tri.FaceNormal().Length())
	}
}
