package core

import (
	"math/rand"
	"testing"
)

func TestRandomInUnitSphereBounded(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %v outside unit sphere", p)
		}
	}
}

func TestRandomInUnitDiskZ(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %v outside unit disk", p)
		}
		if p.Z != 0 {
			t.Fatalf("point %v has nonzero Z", p)
		}
	}
}

func TestRandomInUnitCubeBounds(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitCube(random)
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 || p.Z < -1 || p.Z > 1 {
			t.Fatalf("point %v outside unit cube", p)
		}
	}
}
