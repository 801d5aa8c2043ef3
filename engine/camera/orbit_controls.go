package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControls defines the rotate-around-target capability driving a Camera.
// The controls keep no copy of the camera position: every Update reads the camera's
// current offset from the target, applies the pending (damped) rotation, clamps the polar
// angle and distance, writes the new position and re-orients the camera toward the target.
// Panning is not offered. Zoom is left to the caller.
type OrbitControls interface {
	// Enabled reports whether the controls accept input and update the camera.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled enables or disables the controls. Disabling discards any pending
	// inertial rotation so the camera stays frozen where it is.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Target returns the orbit pivot point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target
	Target() mgl32.Vec3

	// SetTarget moves the orbit pivot point. The camera is not moved until the next Update.
	//
	// Parameters:
	//   - target: world-space target
	SetTarget(target mgl32.Vec3)

	// RotateAroundTarget queues a rotation around the target. With damping enabled the
	// rotation is applied gradually over the following updates.
	// Ignored while disabled.
	//
	// Parameters:
	//   - deltaAzimuth: horizontal angle in radians (positive = counter-clockwise seen from above)
	//   - deltaPolar: vertical angle in radians (positive = toward the horizon)
	RotateAroundTarget(deltaAzimuth, deltaPolar float32)

	// Update applies pending rotation to the camera and re-orients it toward the target.
	// Change callbacks run after the camera has been written, and only when pending rotation
	// was applied and the position or rotation moved by more than a small epsilon.
	// Does nothing while disabled or when no camera is attached.
	//
	// Returns:
	//   - bool: true if the camera changed, including a pure re-aim
	Update() bool

	// Pending reports whether queued rotation remains to be applied.
	//
	// Returns:
	//   - bool: true while rotation or damped inertia is pending
	Pending() bool

	// OnChange registers a callback fired whenever Update applies rotation that moves the camera.
	//
	// Parameters:
	//   - callback: function to call after a change
	//
	// Returns:
	//   - func(): removes the callback
	OnChange(callback func()) func()

	// MinPolarAngle returns the lower polar bound in radians (measured from +Y).
	MinPolarAngle() float32

	// MaxPolarAngle returns the upper polar bound in radians (measured from +Y).
	MaxPolarAngle() float32

	// MinDistance returns the minimum camera-to-target distance.
	MinDistance() float32

	// MaxDistance returns the maximum camera-to-target distance.
	MaxDistance() float32

	// DampingFactor returns the fraction of pending rotation applied per update.
	// Zero disables damping and applies rotation immediately.
	DampingFactor() float32

	// RotateSpeed returns the multiplier applied to pointer-driven rotation.
	RotateSpeed() float32
}
