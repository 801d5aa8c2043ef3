package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Spherical expresses an offset from an orbit target in spherical coordinates.
// Polar is measured from +Y (0 = straight above, π/2 = on the horizon) and Azimuth
// around +Y starting at +Z, matching the orbit conventions used by the camera package.
type Spherical struct {
	Radius  float32
	Polar   float32
	Azimuth float32
}

// SphericalFromVector converts a cartesian offset to spherical coordinates.
//
// Parameters:
//   - v: offset from the orbit target
//
// Returns:
//   - Spherical: the equivalent spherical coordinates (zero angles for a zero vector)
func SphericalFromVector(v mgl32.Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius:  r,
		Polar:   float32(math.Acos(float64(mgl32.Clamp(v[1]/r, -1, 1)))),
		Azimuth: float32(math.Atan2(float64(v[0]), float64(v[2]))),
	}
}

// Vector converts the spherical coordinates back to a cartesian offset.
//
// Returns:
//   - mgl32.Vec3: offset from the orbit target
func (s Spherical) Vector() mgl32.Vec3 {
	sinPolar := float32(math.Sin(float64(s.Polar)))
	return mgl32.Vec3{
		s.Radius * sinPolar * float32(math.Sin(float64(s.Azimuth))),
		s.Radius * float32(math.Cos(float64(s.Polar))),
		s.Radius * sinPolar * float32(math.Cos(float64(s.Azimuth))),
	}
}
