package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kjhsato/pathtrace/pkg/core"
)

func TestCameraGetRayOriginWithoutLens(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.Vec3{X: 0, Y: 0, Z: 0},
		LookAt:        core.Vec3{X: 0, Y: 0, Z: -1},
		VUp:           core.Vec3{X: 0, Y: 1, Z: 0},
		VFovDegrees:   90,
		AspectRatio:   1,
		Aperture:      0,
		FocusDistance: 1,
		Time0:         0,
		Time1:         0,
	})

	random := rand.New(rand.NewSource(1))
	ray := cam.GetRay(0.5, 0.5, random)

	if ray.Origin != cam.Origin {
		t.Errorf("with zero aperture, ray origin should equal camera origin; got %v", ray.Origin)
	}
}

func TestCameraGetRayTimeWithinShutter(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.Vec3{X: 0, Y: 0, Z: 0},
		LookAt:        core.Vec3{X: 0, Y: 0, Z: -1},
		VUp:           core.Vec3{X: 0, Y: 1, Z: 0},
		VFovDegrees:   90,
		AspectRatio:   1,
		Aperture:      0,
		FocusDistance: 1,
		Time0:         0.25,
		Time1:         0.75,
	})

	random := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		ray := cam.GetRay(0.5, 0.5, random)
		if ray.Time < 0.25 || ray.Time > 0.75 {
			t.Fatalf("ray.Time = %v, outside shutter interval [0.25, 0.75]", ray.Time)
		}
	}
}

func TestCameraBasisIsOrthonormal(t *testing.T) {
	cam := New(Config{
		LookFrom:      core.Vec3{X: 3, Y: 2, Z: 1},
		LookAt:        core.Vec3{X: 0, Y: 0, Z: 0},
		VUp:           core.Vec3{X: 0, Y: 1, Z: 0},
		VFovDegrees:   40,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 10,
	})

	tolerance := 1e-9
	if math.Abs(cam.U.Length()-1) > tolerance || math.Abs(cam.V.Length()-1) > tolerance || math.Abs(cam.W.Length()-1) > tolerance {
		t.Errorf("basis vectors not unit length: u=%v v=%v w=%v", cam.U.Length(), cam.V.Length(), cam.W.Length())
	}
	if math.Abs(cam.U.Dot(cam.V)) > tolerance || math.Abs(cam.V.Dot(cam.W)) > tolerance || math.Abs(cam.U.Dot(cam.W)) > tolerance {
		t.Error("basis vectors are not mutually orthogonal")
	}
}
