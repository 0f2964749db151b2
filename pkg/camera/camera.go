// Package camera implements the thin-lens camera: primary ray
// generation with defocus blur and shutter-time motion blur.
package camera

import (
	"math"
	"math/rand"

	"github.com/kjhsato/pathtrace/pkg/core"
)

// Camera is immutable after construction. The lower-left viewport
// corner and the horizontal/vertical viewport basis vectors are
// pre-scaled by the focus distance; u, v, w form an
// orthonormal basis with w pointing from LookAt back to LookFrom.
type Camera struct {
	Origin          core.Vec3
	LowerLeftCorner core.Vec3
	Horizontal      core.Vec3
	Vertical        core.Vec3
	U, V, W         core.Vec3
	LensRadius      float64
	Time0, Time1    float64
}

// Config bundles the construction parameters for a Camera.
type Config struct {
	LookFrom, LookAt core.Vec3
	VUp              core.Vec3
	VFovDegrees      float64
	AspectRatio      float64
	Aperture         float64
	FocusDistance    float64
	Time0, Time1     float64
}

// New builds a Camera from a Config.
func New(cfg Config) *Camera {
	theta := cfg.VFovDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(viewportWidth * cfg.FocusDistance)
	vertical := v.Multiply(viewportHeight * cfg.FocusDistance)
	lowerLeft := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDistance))

	return &Camera{
		Origin:          origin,
		LowerLeftCorner: lowerLeft,
		Horizontal:      horizontal,
		Vertical:        vertical,
		U:               u,
		V:               v,
		W:               w,
		LensRadius:      cfg.Aperture / 2,
		Time0:           cfg.Time0,
		Time1:           cfg.Time1,
	}
}

// GetRay draws a primary ray through viewport coordinates (s, t) in
// [0,1], jittering the origin across the lens disk for defocus blur
// and drawing a shutter time uniformly in [Time0, Time1] for motion
// blur.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.LensRadius)
	offset := c.U.Multiply(rd.X).Add(c.V.Multiply(rd.Y))

	time := c.Time0 + random.Float64()*(c.Time1-c.Time0)

	origin := c.Origin.Add(offset)
	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Multiply(s)).
		Add(c.Vertical.Multiply(t)).
		Subtract(c.Origin).
		Subtract(offset)

	return core.NewRayAtTime(origin, direction, time)
}
