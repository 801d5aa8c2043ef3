package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControlsOption is a functional option for configuring OrbitControls.
type OrbitControlsOption func(*orbitControlsImpl)

// WithTarget sets the orbit pivot point.
//
// Parameters:
//   - x, y, z: world-space coordinates of the target
//
// Returns:
//   - OrbitControlsOption: functional option to set the target position
func WithTarget(x, y, z float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.target = mgl32.Vec3{x, y, z}
	}
}

// WithPolarBounds sets the minimum and maximum polar angle, measured from +Y.
//
// Parameters:
//   - min: minimum polar angle in radians (limits looking down from above)
//   - max: maximum polar angle in radians (π/2 keeps the camera above the horizon)
//
// Returns:
//   - OrbitControlsOption: functional option to set polar bounds
func WithPolarBounds(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minPolar = min
		oc.maxPolar = max
	}
}

// WithDistanceBounds sets the minimum and maximum camera-to-target distance.
//
// Parameters:
//   - min: minimum distance
//   - max: maximum distance
//
// Returns:
//   - OrbitControlsOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minDistance = min
		oc.maxDistance = max
	}
}

// WithDampingFactor sets the inertial damping factor.
//
// Parameters:
//   - factor: fraction of pending rotation applied per update (0 disables damping)
//
// Returns:
//   - OrbitControlsOption: functional option to set the damping factor
func WithDampingFactor(factor float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.dampingFactor = factor
	}
}

// WithRotateSpeed sets the pointer rotation speed multiplier.
//
// Parameters:
//   - speed: multiplier for pointer-driven rotation
//
// Returns:
//   - OrbitControlsOption: functional option to set rotate speed
func WithRotateSpeed(speed float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.rotateSpeed = speed
	}
}

// WithEnabled sets the initial enabled state.
//
// Parameters:
//   - enabled: true to start enabled
//
// Returns:
//   - OrbitControlsOption: functional option to set the enabled state
func WithEnabled(enabled bool) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enabled = enabled
	}
}
