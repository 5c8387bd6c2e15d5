package material

import (
	"math"
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds precomputed noise tables: 256 random unit vectors, 256 random
// scalars, and an independent permutation of [0,255] per axis. The tables are
// generated once from a seed at construction and are read-only afterward, so
// a single Perlin can be shared across render workers.
type Perlin struct {
	ranVec   [perlinPointCount]core.Vec3
	ranFloat [perlinPointCount]float64
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

// NewPerlin generates noise tables from the given seed. Equal seeds produce
// bit-identical tables.
func NewPerlin(seed int64) *Perlin {
	random := rand.New(rand.NewSource(seed))

	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.ranFloat[i] = random.Float64()
		p.ranVec[i] = core.RandomVec3(-1, 1, random).Normalize()
	}

	generatePermutation(random, &p.permX)
	generatePermutation(random, &p.permY)
	generatePermutation(random, &p.permZ)

	return p
}

// generatePermutation fills perm with a random permutation of [0,255]
func generatePermutation(random *rand.Rand, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// hash combines the three axis permutations for lattice point (i, j, k)
func (p *Perlin) hash(i, j, k int) int {
	return p.permX[i&255] ^ p.permY[j&255] ^ p.permZ[k&255]
}

// NoiseUnfiltered returns the raw scalar at the nearest lattice point,
// producing a blocky appearance
func (p *Perlin) NoiseUnfiltered(point core.Vec3) float64 {
	i := int(4 * point.X)
	j := int(4 * point.Y)
	k := int(4 * point.Z)
	return p.ranFloat[p.hash(i, j, k)]
}

// NoiseTrilinear linearly interpolates the scalars at the 8 surrounding
// lattice points
func (p *Perlin) NoiseTrilinear(point core.Vec3) float64 {
	return p.noiseScalar(point, false)
}

// NoiseSmoothed is trilinear interpolation with a Hermite cubic applied to
// the fractional coordinates, removing the grid artifacts
func (p *Perlin) NoiseSmoothed(point core.Vec3) float64 {
	return p.noiseScalar(point, true)
}

func (p *Perlin) noiseScalar(point core.Vec3, smooth bool) float64 {
	i := math.Floor(point.X)
	j := math.Floor(point.Y)
	k := math.Floor(point.Z)

	u := point.X - i
	v := point.Y - j
	w := point.Z - k
	if smooth {
		u = u * u * (3 - 2*u)
		v = v * v * (3 - 2*v)
		w = w * w * (3 - 2*w)
	}

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranFloat[p.hash(int(i)+di, int(j)+dj, int(k)+dk)]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// Noise returns classic Perlin noise: Hermite-smoothed interpolation of
// dot products between lattice unit vectors and the offset vector.
// The result is in [-1, 1].
func (p *Perlin) Noise(point core.Vec3) float64 {
	i := math.Floor(point.X)
	j := math.Floor(point.Y)
	k := math.Floor(point.Z)

	u := point.X - i
	v := point.Y - j
	w := point.Z - k

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranVec[p.hash(int(i)+di, int(j)+dj, int(k)+dk)]
			}
		}
	}

	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				weight := core.NewVec3(u-float64(di), v-float64(dj), w-float64(dk))
				accum += (float64(di)*uu + float64(1-di)*(1-uu)) *
					(float64(dj)*vv + float64(1-dj)*(1-vv)) *
					(float64(dk)*ww + float64(1-dk)*(1-ww)) *
					c[di][dj][dk].Dot(weight)
			}
		}
	}

	return accum
}

// Turbulence sums noise at geometrically increasing frequencies and halving
// amplitudes, returning the absolute value
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}

	return math.Abs(accum)
}

// trilinearInterp blends the 8 corner values by the fractional coordinates
func trilinearInterp(c [2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				accum += (float64(i)*u + float64(1-i)*(1-u)) *
					(float64(j)*v + float64(1-j)*(1-v)) *
					(float64(k)*w + float64(1-k)*(1-w)) *
					c[i][j][k]
			}
		}
	}
	return accum
}
