package geometry

import (
	"math"
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Leaf threshold: nodes with this many or fewer primitives become leaves
// and are intersected by linear scan
const leafThreshold = 5

// BVHNode is a node of the bounding-volume hierarchy. Internal nodes own
// exactly two children; leaf nodes hold a small primitive list and have
// nil children. The tree is built once per scene and never mutated.
type BVHNode struct {
	Left, Right *BVHNode
	Primitives  []Primitive // non-nil only for leaves
	Bounds      core.AABB
}

// NewBVH builds a BVH over the given primitives using the surface-area
// heuristic. The input slice is copied so the caller's ordering is left
// untouched. Returns nil for an empty primitive set.
func NewBVH(primitives []Primitive) *BVHNode {
	if len(primitives) == 0 {
		return nil
	}
	work := make([]Primitive, len(primitives))
	copy(work, primitives)
	return buildBVH(work)
}

// buildBVH recursively partitions primitives top-down. For every axis the
// primitives are sorted by bounding-box minimum and all n-1 split
// positions are scored in two linear passes: a backward pass accumulating
// suffix costs and a forward pass combining them with prefix costs. The
// cheapest (axis, split) pair over all three axes wins. Each level costs
// three sorts plus linear scans, which is acceptable for a once-per-scene
// build.
func buildBVH(primitives []Primitive) *BVHNode {
	if len(primitives) <= leafThreshold {
		bounds := primitives[0].BoundingBox()
		for _, p := range primitives[1:] {
			bounds = bounds.Merge(p.BoundingBox())
		}
		return &BVHNode{Primitives: primitives, Bounds: bounds}
	}

	n := len(primitives)
	bestAxis := 0
	bestSplit := 0
	bestCost := math.Inf(1)

	// suffix[i] holds halfSA(primitives[i..n-1]) * (n-i) for the current axis
	suffix := make([]float64, n)

	for axis := 0; axis < 3; axis++ {
		sortByAxisMin(primitives, axis)

		box := primitives[n-1].BoundingBox()
		suffix[n-1] = box.HalfSurfaceArea()
		for i := n - 2; i >= 1; i-- {
			box = box.Merge(primitives[i].BoundingBox())
			suffix[i] = box.HalfSurfaceArea() * float64(n-i)
		}

		box = primitives[0].BoundingBox()
		for i := 0; i < n-1; i++ {
			if i > 0 {
				box = box.Merge(primitives[i].BoundingBox())
			}
			cost := box.HalfSurfaceArea()*float64(i+1) + suffix[i+1]
			if cost < bestCost {
				bestAxis, bestSplit, bestCost = axis, i, cost
			}
		}
	}

	// Re-sort by the winning axis and split into two contiguous groups
	sortByAxisMin(primitives, bestAxis)
	left := buildBVH(primitives[:bestSplit+1])
	right := buildBVH(primitives[bestSplit+1:])

	return &BVHNode{
		Left:   left,
		Right:  right,
		Bounds: left.Bounds.Merge(right.Bounds),
	}
}

// sortByAxisMin sorts primitives by the minimum coordinate of their
// bounding box along the given axis
func sortByAxisMin(primitives []Primitive, axis int) {
	sort.Slice(primitives, func(i, j int) bool {
		return primitives[i].BoundingBox().Min.Axis(axis) <
			primitives[j].BoundingBox().Min.Axis(axis)
	})
}

// Hit returns the nearest intersection in [tMin, tMax), or (nil, false).
// The left child is traversed first and its result tightens the interval
// for the right child; this prunes work but the nearer hit wins regardless
// of traversal order.
func (node *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.Bounds.Hit(ray) {
		return nil, false
	}

	if node.Primitives != nil {
		var closest *material.HitRecord
		closestT := tMax
		for _, p := range node.Primitives {
			if hit, ok := p.Hit(ray, tMin, closestT); ok {
				closest = hit
				closestT = hit.T
			}
		}
		return closest, closest != nil
	}

	closest, _ := node.Left.Hit(ray, tMin, tMax)
	closestT := tMax
	if closest != nil {
		closestT = closest.T
	}
	if hit, ok := node.Right.Hit(ray, tMin, closestT); ok {
		closest = hit
	}
	return closest, closest != nil
}

// bvhStats describes the shape of a built tree, for build-time logging
type bvhStats struct {
	nodes      int
	leaves     int
	primitives int
	maxDepth   int
}

// Stats walks the tree and returns its node, leaf, primitive and depth counts
func (node *BVHNode) Stats() (nodes, leaves, primitives, maxDepth int) {
	var stats bvhStats
	node.collectStats(0, &stats)
	return stats.nodes, stats.leaves, stats.primitives, stats.maxDepth
}

func (node *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.nodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}
	if node.Primitives != nil {
		stats.leaves++
		stats.primitives += len(node.Primitives)
		return
	}
	node.Left.collectStats(depth+1, stats)
	node.Right.collectStats(depth+1, stats)
}
