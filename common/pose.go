package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a position, an Euler rotation and a uniform scale.
// Rotation uses the RotationMatrix convention (x = pitch, y = yaw, z = roll, radians).
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    float32
}

// Equal reports whether p and o are bit-for-bit the same pose (no tolerance).
//
// Parameters:
//   - o: the pose to compare with
//
// Returns:
//   - bool: true if every component is equal
func (p Pose) Equal(o Pose) bool {
	return p.Position == o.Position && p.Rotation == o.Rotation && p.Scale == o.Scale
}

func (p Pose) String() string {
	return fmt.Sprintf("pos(%.3f, %.3f, %.3f) rot(%.3f, %.3f, %.3f) scale %.3f",
		p.Position[0], p.Position[1], p.Position[2],
		p.Rotation[0], p.Rotation[1], p.Rotation[2],
		p.Scale)
}

// LerpPose interpolates position, each rotation axis and scale between a and b.
// At t == 1 the result is exactly b.
//
// Parameters:
//   - a: start pose
//   - b: end pose
//   - t: interpolation factor
//
// Returns:
//   - Pose: the interpolated pose
func LerpPose(a, b Pose, t float32) Pose {
	if t == 1 {
		return b
	}
	return Pose{
		Position: LerpVec3(a.Position, b.Position, t),
		Rotation: LerpVec3(a.Rotation, b.Rotation, t),
		Scale:    Lerp(a.Scale, b.Scale, t),
	}
}
