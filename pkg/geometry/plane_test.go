package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	// Ground plane y = -1: normal (0,1,0), offset 1
	plane := NewPlane(core.NewVec3(0, 1, 0), 1.0, testMatte())

	tests := []struct {
		name      string
		ray       core.Ray
		wantHit   bool
		expectedT float32
	}{
		{
			name:      "straight down",
			ray:       core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)),
			wantHit:   true,
			expectedT: 3.0,
		},
		{
			name:    "parallel ray misses",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "plane behind the ray",
			ray:     core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := plane.Intersect(tt.ray)
			if ok != tt.wantHit {
				t.Fatalf("expected hit=%t, got %t", tt.wantHit, ok)
			}
			if tt.wantHit && math32.Abs(hit.T-tt.expectedT) > 1e-5 {
				t.Errorf("expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestPlane_NormalIsNormalizedAtConstruction(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0.75, 0), 2.0, testMatte())
	if math32.Abs(plane.Normal.Length()-1) > 1e-6 {
		t.Errorf("expected unit normal, got length %f", plane.Normal.Length())
	}
}

func TestPlane_BoundingBoxIsUnbounded(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), 1.0, testMatte())
	box := plane.BoundingBox()

	if !math32.IsInf(box.Min.X, -1) || !math32.IsInf(box.Max.Z, 1) {
		t.Errorf("expected unbounded box, got %v..%v", box.Min, box.Max)
	}
}
