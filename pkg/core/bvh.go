package core

import (
	"math"
	"sort"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Surfaces    []Surface // Leaf surfaces (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-surface queries
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: if we have this many or fewer surfaces, store them in a leaf node
const leafThreshold = 8

// bboxPadding keeps axis-aligned flat surfaces inside a box with volume
const bboxPadding = 1e-6

// NewBVH constructs a BVH from a slice of surfaces
func NewBVH(surfaces []Surface) *BVH {
	if len(surfaces) == 0 {
		return &BVH{Root: nil}
	}

	// Sorting happens in place, keep the caller's slice order intact
	surfacesCopy := make([]Surface, len(surfaces))
	copy(surfacesCopy, surfaces)

	return &BVH{
		Root: buildBVH(surfacesCopy, 0),
	}
}

// buildBVH recursively builds the BVH using a median split along the longest axis
func buildBVH(surfaces []Surface, depth int) *BVHNode {
	boundingBox := surfaces[0].BoundingBox().Pad(bboxPadding)
	for i := 1; i < len(surfaces); i++ {
		boundingBox = boundingBox.Union(surfaces[i].BoundingBox().Pad(bboxPadding))
	}

	if len(surfaces) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Surfaces:    surfaces,
		}
	}

	axis := boundingBox.LongestAxis()
	sortSurfacesByAxis(surfaces, axis)

	mid := len(surfaces) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(surfaces[:mid], depth+1),
		Right:       buildBVH(surfaces[mid:], depth+1),
	}
}

// sortSurfacesByAxis sorts surfaces by their bounding box center along the specified axis
func sortSurfacesByAxis(surfaces []Surface, axis int) {
	sort.Slice(surfaces, func(i, j int) bool {
		centerI := surfaces[i].BoundingBox().Center()
		centerJ := surfaces[j].BoundingBox().Center()

		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Nearest returns the surface with the smallest positive intersection
// distance, or nil when nothing is hit
func (bvh *BVH) Nearest(ray Ray) (Surface, float64) {
	if bvh.Root == nil {
		return nil, 0
	}
	return bvh.nearestNode(bvh.Root, ray, math.MaxFloat64)
}

func (bvh *BVH) nearestNode(node *BVHNode, ray Ray, closest float64) (Surface, float64) {
	if !node.BoundingBox.Hit(ray, 0, closest) {
		return nil, 0
	}

	if node.Surfaces != nil {
		var nearest Surface
		for _, surface := range node.Surfaces {
			if t := surface.Intersect(ray); t > 0 && t < closest {
				closest = t
				nearest = surface
			}
		}
		return nearest, closest
	}

	var nearest Surface
	if hit, t := bvh.nearestNode(node.Left, ray, closest); hit != nil {
		nearest, closest = hit, t
	}
	if hit, t := bvh.nearestNode(node.Right, ray, closest); hit != nil {
		nearest, closest = hit, t
	}
	return nearest, closest
}

// AnyHit reports whether some surface accepted by include is hit at a
// distance strictly inside (tMin, tMax)
func (bvh *BVH) AnyHit(ray Ray, tMin, tMax float64, include func(Surface) bool) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.anyHitNode(bvh.Root, ray, tMin, tMax, include)
}

func (bvh *BVH) anyHitNode(node *BVHNode, ray Ray, tMin, tMax float64, include func(Surface) bool) bool {
	if !node.BoundingBox.Hit(ray, 0, tMax) {
		return false
	}

	if node.Surfaces != nil {
		for _, surface := range node.Surfaces {
			if !include(surface) {
				continue
			}
			if t := surface.Intersect(ray); t > tMin && t < tMax {
				return true
			}
		}
		return false
	}

	return bvh.anyHitNode(node.Left, ray, tMin, tMax, include) ||
		bvh.anyHitNode(node.Right, ray, tMin, tMax, include)
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes    int
	leafNodes     int
	maxDepth      int
	totalSurfaces int
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		bvh.collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	stats.maxDepth = max(stats.maxDepth, depth)

	if node.Surfaces != nil {
		stats.leafNodes++
		stats.totalSurfaces += len(node.Surfaces)
		return
	}
	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
