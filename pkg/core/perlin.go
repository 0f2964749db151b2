package core

import "math/rand"

const perlinPointCount = 256

// Perlin is a fixed-size table of random unit-cube vectors and three
// independent permutations (one per axis), immutable after
// construction. It backs the Noise and Marble textures.
type Perlin struct {
	randVec [perlinPointCount]Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a Perlin noise table from the given RNG.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = RandomInUnitCube(random)
	}
	perlinGeneratePerm(random, p.permX[:])
	perlinGeneratePerm(random, p.permY[:])
	perlinGeneratePerm(random, p.permZ[:])
	return p
}

func perlinGeneratePerm(random *rand.Rand, perm []int) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
}

// Noise evaluates trilinearly-interpolated gradient noise at p.
func (p *Perlin) Noise(point Vec3) float64 {
	u := point.X - floor(point.X)
	v := point.Y - floor(point.Y)
	w := point.Z - floor(point.Z)

	i := int(floor(point.X))
	j := int(floor(point.Y))
	k := int(floor(point.Z))

	var c [2][2][2]Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

func perlinInterpolate(c [2][2][2]Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				weightV := Vec3{u - float64(di), v - float64(dj), w - float64(dk)}
				fi := lerpWeight(di, uu)
				fj := lerpWeight(dj, vv)
				fk := lerpWeight(dk, ww)
				accum += fi * fj * fk * c[di][dj][dk].Dot(weightV)
			}
		}
	}
	return accum
}

func lerpWeight(d int, t float64) float64 {
	if d == 0 {
		return 1 - t
	}
	return t
}

// Turbulence sums depth octaves of noise magnitude with halving
// amplitude and doubling frequency, returning a non-negative value.
func (p *Perlin) Turbulence(point Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * abs(p.Noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return abs(accum)
}

func floor(x float64) float64 {
	i := int(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return float64(i)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
