package core

import (
	"math"
	"math/rand"
)

// RandomCosineDirection generates a cosine-weighted direction in the local
// hemisphere around +Z
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := math.Sqrt(1.0 - r2)

	phi := 2.0 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)

	return NewVec3(x, y, z)
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64()
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(-1, 1, random)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// RandomToSphere generates a direction toward a sphere of the given radius at
// distanceSquared from the origin, uniform over the subtended solid angle.
// The direction is in the local frame where +Z points at the sphere center.
func RandomToSphere(radius, distanceSquared float64, random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := 1.0 + r2*(math.Sqrt(1.0-radius*radius/distanceSquared)-1.0)

	phi := 2.0 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1.0-z*z)
	y := math.Sin(phi) * math.Sqrt(1.0-z*z)

	return NewVec3(x, y, z)
}
