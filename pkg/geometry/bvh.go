package geometry

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/example/go-ray-tracer/pkg/core"
)

// ErrEmptyBVH is returned when constructing a BVH from no objects
var ErrEmptyBVH = errors.New("geometry: cannot build BVH from empty object list")

// BVHNode is a node in a bounding volume hierarchy. Internal nodes hold two
// children (each another node or a primitive); the union box of the subtree
// is computed once at construction and cached.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// NewBVH builds a bounding volume hierarchy over the given objects for the
// time interval [time0, time1]. The input slice is not modified.
func NewBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Copy so sorting during construction cannot disturb the caller's slice
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	if len(objectsCopy) == 1 {
		object := objectsCopy[0]
		return &BVHNode{
			Left:  object,
			Right: object,
			Box:   object.BoundingBox(time0, time1),
		}, nil
	}

	node := buildBVH(objectsCopy, time0, time1, random).(*BVHNode)
	return node, nil
}

// buildBVH recursively splits objects at the median along a random axis.
// A single object becomes a leaf directly; two objects become the children
// of one node with no further nesting.
func buildBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) core.Hittable {
	if len(objects) == 1 {
		return objects[0]
	}

	axis := random.Intn(3)
	sortObjectsByAxis(objects, axis, time0, time1)

	var left, right core.Hittable
	if len(objects) == 2 {
		left = objects[0]
		right = objects[1]
	} else {
		mid := len(objects) / 2
		left = buildBVH(objects[:mid], time0, time1, random)
		right = buildBVH(objects[mid:], time0, time1, random)
	}

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   left.BoundingBox(time0, time1).Union(right.BoundingBox(time0, time1)),
	}
}

// sortObjectsByAxis sorts objects by the minimum corner of their bounding box
// along the specified axis
func sortObjectsByAxis(objects []core.Hittable, axis int, time0, time1 float64) {
	sort.SliceStable(objects, func(i, j int) bool {
		minI := objects[i].BoundingBox(time0, time1).Min
		minJ := objects[j].BoundingBox(time0, time1).Min
		return minI.Axis(axis) < minJ.Axis(axis)
	})
}

// Hit tests the ray against the subtree, pruning on the cached box. The
// nearer child hit narrows tMax for the second child's test.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closestHit, hitLeft := n.Left.Hit(ray, tMin, tMax, random)
	if hitLeft {
		tMax = closestHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, random); hitRight {
		return rightHit, true
	}

	return closestHit, hitLeft
}

// BoundingBox returns the cached union box of the subtree
func (n *BVHNode) BoundingBox(time0, time1 float64) core.AABB {
	return n.Box
}
