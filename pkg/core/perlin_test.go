package core

import (
	"math"
	"math/rand"
	"testing"
)

// Property 7: Perlin permutations are bijections on [0, 256).
func TestPerlinPermutationsAreBijections(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	p := NewPerlin(random)

	for _, perm := range [][perlinPointCount]int{p.permX, p.permY, p.permZ} {
		seen := make(map[int]bool, perlinPointCount)
		for _, v := range perm {
			if v < 0 || v >= perlinPointCount {
				t.Fatalf("permutation value %d out of range", v)
			}
			if seen[v] {
				t.Fatalf("permutation value %d repeated", v)
			}
			seen[v] = true
		}
	}
}

// Property 8: noise and turbulence are finite, turbulence is non-negative.
func TestPerlinNoiseAndTurbulenceFinite(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	p := NewPerlin(random)

	points := []Vec3{
		{0, 0, 0},
		{1.5, -2.25, 3.75},
		{-100, 100, -100},
	}
	for _, pt := range points {
		n := p.Noise(pt)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			t.Fatalf("Noise(%v) = %v, want finite", pt, n)
		}
		turb := p.Turbulence(pt, 7)
		if math.IsNaN(turb) || math.IsInf(turb, 0) {
			t.Fatalf("Turbulence(%v) = %v, want finite", pt, turb)
		}
		if turb < 0 {
			t.Fatalf("Turbulence(%v) = %v, want non-negative", pt, turb)
		}
	}
}
