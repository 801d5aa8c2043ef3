package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp linearly interpolates between a and b.
// t=0 returns a and t=1 returns b exactly; t is not clamped.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpVec3 interpolates each component of a and b independently with Lerp.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// Sign returns -1, 0 or 1 according to the sign of v. NaN maps to 0.
//
// Parameters:
//   - v: the value to inspect
//
// Returns:
//   - float32: -1, 0 or 1
func Sign(v float64) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// EaseInOutQuad is the quadratic ease-in-out curve: 2p² below one half,
// 1-((-2p+2)²)/2 above. Input is clamped to [0, 1]; 1 maps to exactly 1.
//
// Parameters:
//   - p: linear progress
//
// Returns:
//   - float32: eased progress
func EaseInOutQuad(p float32) float32 {
	p = mgl32.Clamp(p, 0, 1)
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

// HorizontalYaw returns the yaw angle (rotation about +Y) that turns a node's +Z axis
// toward the point `to`, using only the XZ projection of the direction from `from`.
// ok is false when the projection is degenerate (points stacked vertically).
//
// Parameters:
//   - from: the node's world position
//   - to: the point to face
//
// Returns:
//   - yaw: angle in radians in (-π, π]
//   - ok: false if the horizontal direction has no length
func HorizontalYaw(from, to mgl32.Vec3) (yaw float32, ok bool) {
	dx := float64(to[0] - from[0])
	dz := float64(to[2] - from[2])
	if dx*dx+dz*dz < 1e-12 {
		return 0, false
	}
	return float32(math.Atan2(dx, dz)), true
}

// LookAtRotation computes the Euler rotation (pitch X, yaw Y, roll Z = 0) of a camera at eye
// whose -Z axis points at target. The result is consistent with RotationMatrix.
// If eye and target coincide the zero rotation is returned.
//
// Parameters:
//   - eye: camera position
//   - target: point to look at
//
// Returns:
//   - mgl32.Vec3: Euler angles in radians
func LookAtRotation(eye, target mgl32.Vec3) mgl32.Vec3 {
	back := eye.Sub(target)
	l := back.Len()
	if l < 1e-8 {
		return mgl32.Vec3{}
	}
	back = back.Mul(1 / l)
	pitch := float32(math.Asin(float64(mgl32.Clamp(-back[1], -1, 1))))
	yaw := float32(math.Atan2(float64(back[0]), float64(back[2])))
	return mgl32.Vec3{pitch, yaw, 0}
}

// RotationMatrix builds the rotation R = Ry * Rx * Rz (yaw-pitch-roll) from Euler angles.
//
// Parameters:
//   - rot: Euler angles in radians (x = pitch, y = yaw, z = roll)
//
// Returns:
//   - mgl32.Mat4: homogeneous rotation matrix (column-major)
func RotationMatrix(rot mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(rot[1]).
		Mul4(mgl32.HomogRotate3DX(rot[0])).
		Mul4(mgl32.HomogRotate3DZ(rot[2]))
}

// BuildModelMatrix constructs a model matrix T * R * S from position, Euler rotation and a
// uniform scale.
//
// Parameters:
//   - pos: translation in world space
//   - rot: Euler rotation (see RotationMatrix)
//   - scale: uniform scale factor
//
// Returns:
//   - mgl32.Mat4: the model matrix
func BuildModelMatrix(pos, rot mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(RotationMatrix(rot)).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
