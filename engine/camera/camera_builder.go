package camera

import (
	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the camera's initial Euler rotation in radians.
//
// Parameters:
//   - pitch, yaw, roll: rotation angles in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's rotation
func WithRotation(pitch, yaw, roll float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = mgl32.Vec3{pitch, yaw, roll}
	}
}

// WithLookAt orients the camera toward a target point.
// Options apply in order, so this must follow WithPosition.
//
// Parameters:
//   - x, y, z: world-space point to look at
//
// Returns:
//   - CameraBuilderOption: a function that orients the camera
func WithLookAt(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = common.LookAtRotation(c.position, mgl32.Vec3{x, y, z})
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}
