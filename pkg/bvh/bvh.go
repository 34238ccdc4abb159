// Package bvh implements the spatial acceleration tree over scene primitives:
// a binary BVH built with a full-sweep Surface Area Heuristic and traversed
// nearest-hit first.
package bvh

import (
	"sort"
	"time"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/log"
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
)

const (
	// Leaves are emitted once a range shrinks to this many primitives
	minLeafSize = 4
	// Hard recursion limit regardless of SAH outcome
	maxTreeDepth = 20
	// Area below which a node box is considered degenerate and forced to a leaf
	degenerateArea = 1e-12
	// Minimum accepted hit parameter during traversal
	traverseEpsilon = 1e-4
)

// node is either a leaf holding a [start,end) range into the shared primitive
// permutation, or an internal node holding two child indices. left < 0 marks
// a leaf.
type node struct {
	bounds      core.AABB
	left, right int32
	start, end  int32
}

// Tree is an SAH-built bounding volume hierarchy. It borrows the primitive
// slice handed to Build and owns only the permutation order; readers share
// the tree freely once built.
type Tree struct {
	nodes []node
	prims []geometry.Primitive
	stats BuildStats
}

// BuildStats describes the shape of a built tree
type BuildStats struct {
	Nodes     int
	Leaves    int
	MaxDepth  int
	BuildTime time.Duration
}

var logger = log.New("bvh")

// Build constructs a tree over the given primitives. The slice is reshuffled
// in place; no primitives are copied.
func Build(prims []geometry.Primitive) *Tree {
	t := &Tree{prims: prims}
	if len(prims) == 0 {
		return t
	}

	start := time.Now()
	t.build(0, len(prims), 0)
	t.stats.BuildTime = time.Since(start)
	logger.Debugf("built tree over %d primitives: %d nodes, %d leaves, depth %d in %s",
		len(prims), t.stats.Nodes, t.stats.Leaves, t.stats.MaxDepth, t.stats.BuildTime)
	return t
}

// Stats returns statistics recorded while building the tree
func (t *Tree) Stats() BuildStats {
	return t.stats
}

// build emits the node covering prims[start:end) and returns its index
func (t *Tree) build(start, end, depth int) int32 {
	if depth > t.stats.MaxDepth {
		t.stats.MaxDepth = depth
	}

	bounds := core.NewEmptyAABB()
	for _, p := range t.prims[start:end] {
		bounds = bounds.Union(p.BoundingBox())
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{bounds: bounds, left: -1, right: -1})
	t.stats.Nodes++

	n := end - start
	if n <= minLeafSize || depth >= maxTreeDepth {
		t.makeLeaf(idx, start, end)
		return idx
	}

	axis, split, cost := t.bestSplit(start, end, bounds)
	if axis < 0 || cost >= float32(n) {
		t.makeLeaf(idx, start, end)
		return idx
	}

	// Partition by the winning axis. A full sort gives nth-element semantics;
	// relative order within each half is irrelevant.
	t.sortByCentroid(start, end, axis)
	mid := start + split + 1

	left := t.build(start, mid, depth+1)
	right := t.build(mid, end, depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

func (t *Tree) makeLeaf(idx int32, start, end int) {
	t.nodes[idx].start = int32(start)
	t.nodes[idx].end = int32(end)
	t.stats.Leaves++
}

// bestSplit sweeps every candidate split on every axis with nonzero centroid
// extent and returns the cheapest one. The cost of splitting at index i is
//
//	1 + SA(L)/SA * (i+1) + SA(R)/SA * (n-i-1)
//
// relative to a leaf cost of n. Ties keep the first axis and smallest index
// found. A degenerate node area forces the leaf cost.
func (t *Tree) bestSplit(start, end int, bounds core.AABB) (bestAxis, bestSplit int, bestCost float32) {
	n := end - start
	nodeArea := bounds.SurfaceArea()

	centroids := core.NewEmptyAABB()
	for _, p := range t.prims[start:end] {
		centroids = centroids.ExpandPoint(p.BoundingBox().Centroid())
	}
	extent := centroids.Size()

	bestAxis, bestSplit = -1, -1
	bestCost = math32.Inf(1)

	suffix := make([]core.AABB, n)
	for axis := 0; axis < 3; axis++ {
		if extent.At(axis) <= 0 {
			continue
		}

		t.sortByCentroid(start, end, axis)

		suffix[n-1] = t.prims[end-1].BoundingBox()
		for i := n - 2; i >= 0; i-- {
			suffix[i] = suffix[i+1].Union(t.prims[start+i].BoundingBox())
		}

		left := core.NewEmptyAABB()
		for i := 0; i < n-1; i++ {
			left = left.Union(t.prims[start+i].BoundingBox())

			var cost float32
			if nodeArea <= degenerateArea {
				cost = float32(n)
			} else {
				cost = 1 +
					left.SurfaceArea()/nodeArea*float32(i+1) +
					suffix[i+1].SurfaceArea()/nodeArea*float32(n-i-1)
			}
			if cost < bestCost {
				bestAxis, bestSplit, bestCost = axis, i, cost
			}
		}
	}
	return bestAxis, bestSplit, bestCost
}

func (t *Tree) sortByCentroid(start, end, axis int) {
	prims := t.prims[start:end]
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].BoundingBox().Centroid().At(axis) < prims[j].BoundingBox().Centroid().At(axis)
	})
}

// NearestHit returns the closest intersection along the ray, descending into
// the nearer child first and pruning subtrees whose boxes start beyond the
// best hit found so far.
func (t *Tree) NearestHit(ray core.Ray) (geometry.Hit, geometry.Primitive, bool) {
	if len(t.nodes) == 0 {
		return geometry.Hit{}, nil, false
	}

	tr := traversal{tree: t, ray: ray, bestT: math32.Inf(1)}
	if entry, _, ok := t.nodes[0].bounds.Intersect(ray); ok {
		tr.visit(0, entry)
	}
	if tr.best == nil {
		return geometry.Hit{}, nil, false
	}
	return tr.hit, tr.best, true
}

type traversal struct {
	tree  *Tree
	ray   core.Ray
	bestT float32
	best  geometry.Primitive
	hit   geometry.Hit
}

func (tr *traversal) visit(idx int32, entry float32) {
	if entry >= tr.bestT {
		return
	}
	nd := &tr.tree.nodes[idx]

	if nd.left < 0 {
		for _, p := range tr.tree.prims[nd.start:nd.end] {
			if hit, ok := p.Intersect(tr.ray); ok && hit.T > traverseEpsilon && hit.T < tr.bestT {
				tr.bestT = hit.T
				tr.best = p
				tr.hit = hit
			}
		}
		return
	}

	leftEntry, _, leftOK := tr.tree.nodes[nd.left].bounds.Intersect(tr.ray)
	rightEntry, _, rightOK := tr.tree.nodes[nd.right].bounds.Intersect(tr.ray)

	near, far := nd.left, nd.right
	nearEntry, farEntry := leftEntry, rightEntry
	nearOK, farOK := leftOK, rightOK
	if rightOK && (!leftOK || rightEntry < leftEntry) {
		near, far = nd.right, nd.left
		nearEntry, farEntry = rightEntry, leftEntry
		nearOK, farOK = rightOK, leftOK
	}

	if nearOK {
		tr.visit(near, nearEntry)
	}
	if farOK && farEntry < tr.bestT {
		tr.visit(far, farEntry)
	}
}
