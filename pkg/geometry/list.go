package geometry

import (
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
)

// HittableList aggregates a group of hittables with linear-scan intersection.
// It is used for small groups and as the designated light list for
// importance sampling.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the nearest intersection across all objects in the list
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar, random); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member bounding boxes
func (l *HittableList) BoundingBox(time0, time1 float64) core.AABB {
	if len(l.Objects) == 0 {
		return core.AABB{}
	}

	box := l.Objects[0].BoundingBox(time0, time1)
	for _, object := range l.Objects[1:] {
		box = box.Union(object.BoundingBox(time0, time1))
	}
	return box
}

// PDFValue returns the mean density over the sampleable members of the list
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range l.Objects {
		if target, ok := object.(core.Sampleable); ok {
			sum += target.PDFValue(origin, direction)
		}
	}
	return sum / float64(len(l.Objects))
}

// RandomToward returns a direction toward a uniformly chosen member
func (l *HittableList) RandomToward(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	object := l.Objects[random.Intn(len(l.Objects))]
	if target, ok := object.(core.Sampleable); ok {
		return target.RandomToward(origin, random)
	}
	return core.NewVec3(1, 0, 0)
}
