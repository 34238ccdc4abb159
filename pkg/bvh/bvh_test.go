package bvh

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

func testMatte() *material.Material {
	return material.NewMatte(core.NewVec3(1, 1, 1), 0.3, 0.5, 0.5, 32.0)
}

func randomSpheres(n int, random *rand.Rand) []geometry.Primitive {
	prims := make([]geometry.Primitive, n)
	for i := range prims {
		center := core.NewVec3(
			random.Float32()*20-10,
			random.Float32()*20-10,
			random.Float32()*20-30,
		)
		prims[i] = geometry.NewSphere(center, 0.2+random.Float32(), testMatte())
	}
	return prims
}

// bruteForceNearest is the oracle: test every primitive individually
func bruteForceNearest(prims []geometry.Primitive, ray core.Ray) (geometry.Primitive, float32, bool) {
	var best geometry.Primitive
	bestT := math32.Inf(1)
	for _, p := range prims {
		if hit, ok := p.Intersect(ray); ok && hit.T > traverseEpsilon && hit.T < bestT {
			bestT = hit.T
			best = p
		}
	}
	return best, bestT, best != nil
}

func TestTree_OracleAgreement(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	prims := randomSpheres(200, random)
	tree := Build(prims)

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			random.Float32()*4-2,
			random.Float32()*4-2,
			random.Float32()*4-2,
		)
		direction := core.NewVec3(
			random.Float32()*2-1,
			random.Float32()*2-1,
			-random.Float32()-0.1,
		)
		ray := core.NewRay(origin, direction)

		wantPrim, wantT, wantHit := bruteForceNearest(prims, ray)
		hit, gotPrim, gotHit := tree.NearestHit(ray)

		if gotHit != wantHit {
			t.Fatalf("ray %d: expected hit=%t, got %t", i, wantHit, gotHit)
		}
		if !wantHit {
			continue
		}
		if gotPrim != wantPrim {
			t.Fatalf("ray %d: traversal returned a different primitive (t=%f, oracle t=%f)",
				i, hit.T, wantT)
		}
		if math32.Abs(hit.T-wantT) > 1e-5 {
			t.Fatalf("ray %d: expected t=%f, got t=%f", i, wantT, hit.T)
		}
	}
}

func TestTree_NearestAmongOccluders(t *testing.T) {
	// Two spheres centered on the same ray: the nearer one must win
	far := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, testMatte())
	near := geometry.NewSphere(core.NewVec3(0, 0, -3), 0.5, testMatte())
	tree := Build([]geometry.Primitive{far, near})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, prim, ok := tree.NearestHit(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if prim != near {
		t.Error("expected the nearer sphere to win")
	}
	if math32.Abs(hit.T-2.5) > 1e-4 {
		t.Errorf("expected t=2.5, got %f", hit.T)
	}
}

func TestTree_LeafPartition(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	prims := randomSpheres(100, random)
	tree := Build(prims)

	// Every leaf range must be non-empty, disjoint, and cover [0, N) exactly
	covered := make([]int, len(prims))
	for _, nd := range tree.nodes {
		if nd.left >= 0 {
			continue
		}
		if nd.end <= nd.start {
			t.Fatalf("empty leaf range [%d, %d)", nd.start, nd.end)
		}
		for i := nd.start; i < nd.end; i++ {
			covered[i]++
		}
	}
	for i, count := range covered {
		if count != 1 {
			t.Fatalf("primitive slot %d covered %d times", i, count)
		}
	}
}

func TestTree_InternalNodesContainChildren(t *testing.T) {
	random := rand.New(rand.NewSource(13))
	prims := randomSpheres(64, random)
	tree := Build(prims)

	for _, nd := range tree.nodes {
		if nd.left < 0 {
			continue
		}
		for _, child := range []int32{nd.left, nd.right} {
			cb := tree.nodes[child].bounds
			union := nd.bounds.Union(cb)
			if !union.Min.ApproxEqual(nd.bounds.Min) || !union.Max.ApproxEqual(nd.bounds.Max) {
				t.Fatalf("child bounds %v..%v escape parent %v..%v",
					cb.Min, cb.Max, nd.bounds.Min, nd.bounds.Max)
			}
		}
	}
}

func TestTree_SmallInputsBecomeLeaves(t *testing.T) {
	random := rand.New(rand.NewSource(17))
	prims := randomSpheres(minLeafSize, random)
	tree := Build(prims)

	stats := tree.Stats()
	if stats.Nodes != 1 || stats.Leaves != 1 {
		t.Errorf("expected a single leaf for %d primitives, got %d nodes / %d leaves",
			minLeafSize, stats.Nodes, stats.Leaves)
	}
}

func TestTree_HandlesUnboundedPlane(t *testing.T) {
	// A plane's infinite bounds poison the SAH cost; the tree must still
	// resolve hits correctly.
	prims := []geometry.Primitive{
		geometry.NewPlane(core.NewVec3(0, 1, 0), 1.0, testMatte()),
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, testMatte()),
		geometry.NewSphere(core.NewVec3(3, 0, -5), 1.0, testMatte()),
		geometry.NewSphere(core.NewVec3(-3, 0, -5), 1.0, testMatte()),
		geometry.NewSphere(core.NewVec3(0, 3, -5), 1.0, testMatte()),
		geometry.NewSphere(core.NewVec3(0, -3, -8), 1.0, testMatte()),
	}
	tree := Build(prims)

	t.Run("sphere in front of plane", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
		hit, _, ok := tree.NearestHit(ray)
		if !ok {
			t.Fatal("expected hit")
		}
		if math32.Abs(hit.T-4) > 1e-4 {
			t.Errorf("expected t=4, got %f", hit.T)
		}
	})

	t.Run("plane below", func(t *testing.T) {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
		hit, _, ok := tree.NearestHit(ray)
		if !ok {
			t.Fatal("expected plane hit")
		}
		if math32.Abs(hit.T-1) > 1e-4 {
			t.Errorf("expected t=1, got %f", hit.T)
		}
	})
}

func TestTree_EmptyInput(t *testing.T) {
	tree := Build(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, _, ok := tree.NearestHit(ray); ok {
		t.Error("expected no hit from an empty tree")
	}
}
