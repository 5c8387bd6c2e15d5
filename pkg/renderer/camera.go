package renderer

import (
	"errors"
	"math"
	"math/rand"

	"github.com/example/go-ray-tracer/pkg/core"
)

// ErrDegenerateCamera is returned when the up vector is parallel to the
// viewing direction, leaving no usable basis
var ErrDegenerateCamera = errors.New("renderer: camera up vector is parallel to view direction")

// CameraConfig describes a camera placement and lens
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye point
	LookAt        core.Vec3 // Point the camera faces
	Up            core.Vec3 // World-space up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 = pinhole
	FocusDistance float64   // Distance to the plane of perfect focus
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates primary rays with depth of field and motion blur
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera derives the camera basis and viewport from the config. It fails
// if the up vector is parallel to the viewing direction.
func NewCamera(config CameraConfig) (*Camera, error) {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	uCross := config.Up.Cross(w)
	if uCross.NearZero() {
		return nil, ErrDegenerateCamera
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
		time0:           config.Time0,
		time1:           config.Time1,
	}, nil
}

// GetRay generates a ray for normalized screen coordinates (s, t) in [0,1)².
// The origin is jittered on the lens disk for depth of field and the time is
// drawn uniformly from the shutter interval.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + random.Float64()*(c.time1-c.time0)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRayAt(c.origin.Add(offset), direction, time)
}
