package geometry

import (
	"sort"

	"raytracer/pkg/core"
	"raytracer/pkg/material"
)

// Leaf threshold: nodes with this many or fewer objects stay leaves and
// are scanned linearly.
const leafThreshold = 8

// BVHNode represents a node in the bounding volume hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Hittable // leaf objects (nil for internal nodes)
}

// BVH is an optional spatial index over a fixed set of objects. It prunes
// subtrees with the slab test but leaves still run the shrinking-interval
// scan, so the nearest hit is identical to a linear scan of the same
// objects.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of objects
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil}
	}

	// Copy so sorting does not reorder the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively builds the hierarchy with a median split along the
// longest axis
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		boundingBox = boundingBox.Union(obj.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Objects:     objects,
		}
	}

	axis := boundingBox.LongestAxis()
	sortByAxis(objects, axis)

	mid := len(objects) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(objects[:mid]),
		Right:       buildBVH(objects[mid:]),
	}
}

// sortByAxis sorts objects by their bounding box center along an axis
func sortByAxis(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		centerI := objects[i].BoundingBox().Center()
		centerJ := objects[j].BoundingBox().Center()
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

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tRange core.Interval) (*material.Hit, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tRange)
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *BVHNode, ray core.Ray, tRange core.Interval) (*material.Hit, bool) {
	if !node.BoundingBox.Hit(ray, tRange.Start, tRange.End) {
		return nil, false
	}

	if node.Objects != nil {
		var closestHit *material.Hit
		tMax := tRange.End
		for _, obj := range node.Objects {
			if hit, ok := obj.Hit(ray, core.NewInterval(tRange.Start, tMax)); ok {
				tMax = hit.T
				closestHit = hit
			}
		}
		return closestHit, closestHit != nil
	}

	leftHit, leftOk := hitNode(node.Left, ray, tRange)
	if leftOk {
		// Only accept right-side hits that are closer than the left one
		tRange = core.NewInterval(tRange.Start, leftHit.T)
	}
	rightHit, rightOk := hitNode(node.Right, ray, tRange)
	if rightOk {
		return rightHit, true
	}
	return leftHit, leftOk
}
