package geometry

import (
	"math"
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
)

// Translate wraps a hittable, offsetting it by a fixed vector
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated instance of the given object
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit tests the ray against the object in its local frame
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	movedRay := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Object.Hit(movedRay, tMin, tMax, random)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	hit.SetFaceNormal(movedRay, hit.Normal)

	return hit, true
}

// BoundingBox returns the wrapped object's box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) core.AABB {
	box := t.Object.BoundingBox(time0, time1)
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// RotateY wraps a hittable, rotating it about the Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY creates an instance of the object rotated by angle degrees
// about the Y axis. The bounding box is computed once from the rotated
// corners of the object's box over [time0, time1].
func NewRotateY(object core.Hittable, angle, time0, time1 float64) *RotateY {
	radians := angle * math.Pi / 180.0
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box := object.BoundingBox(time0, time1)

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	return &RotateY{
		Object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABB(min, max),
	}
}

// Hit rotates the ray into the object's local frame, tests it, and rotates
// the hit point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	origin := core.NewVec3(
		r.cosTheta*ray.Origin.X-r.sinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.sinTheta*ray.Origin.X+r.cosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.cosTheta*ray.Direction.X-r.sinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.sinTheta*ray.Direction.X+r.cosTheta*ray.Direction.Z,
	)
	rotatedRay := core.NewRayAt(origin, direction, ray.Time)

	hit, isHit := r.Object.Hit(rotatedRay, tMin, tMax, random)
	if !isHit {
		return nil, false
	}

	hit.Point = core.NewVec3(
		r.cosTheta*hit.Point.X+r.sinTheta*hit.Point.Z,
		hit.Point.Y,
		-r.sinTheta*hit.Point.X+r.cosTheta*hit.Point.Z,
	)
	normal := core.NewVec3(
		r.cosTheta*hit.Normal.X+r.sinTheta*hit.Normal.Z,
		hit.Normal.Y,
		-r.sinTheta*hit.Normal.X+r.cosTheta*hit.Normal.Z,
	)
	hit.SetFaceNormal(rotatedRay, normal)

	return hit, true
}

// BoundingBox returns the rotated bounding box computed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) core.AABB {
	return r.bbox
}

// FlipFace wraps a hittable and inverts its front-face orientation, letting
// one-sided lights emit in the opposite direction
type FlipFace struct {
	Object core.Hittable
}

// NewFlipFace creates a face-flipped instance of the given object
func NewFlipFace(object core.Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates to the wrapped object and inverts the front-face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	hit, isHit := f.Object.Hit(ray, tMin, tMax, random)
	if !isHit {
		return nil, false
	}

	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the wrapped object's box
func (f *FlipFace) BoundingBox(time0, time1 float64) core.AABB {
	return f.Object.BoundingBox(time0, time1)
}

// PDFValue delegates to the wrapped object if it supports sampling
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	if target, ok := f.Object.(core.Sampleable); ok {
		return target.PDFValue(origin, direction)
	}
	return 0
}

// RandomToward delegates to the wrapped object if it supports sampling
func (f *FlipFace) RandomToward(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if target, ok := f.Object.(core.Sampleable); ok {
		return target.RandomToward(origin, random)
	}
	return core.NewVec3(1, 0, 0)
}
