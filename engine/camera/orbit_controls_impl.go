package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/go-gl/mathgl/mgl32"
)

// changeEpsilon is the squared movement below which an update is not reported as a change.
const changeEpsilon = 1e-6

// settleEpsilon is the pending rotation (radians) below which damping is considered finished.
const settleEpsilon = 1e-5

// orbitControlsImpl is the single implementation of OrbitControls.
// Pending rotation accumulates in deltaAzimuth/deltaPolar and is drained by Update.
type orbitControlsImpl struct {
	mu *sync.Mutex

	cam    Camera
	target mgl32.Vec3

	enabled bool

	// Pending rotation (radians)
	deltaAzimuth float32
	deltaPolar   float32

	// Constraints
	minPolar    float32
	maxPolar    float32
	minDistance float32
	maxDistance float32

	dampingFactor float32
	rotateSpeed   float32

	nextCallbackID int
	callbacks      map[int]func()
}

// Compile-time interface compliance check
var _ OrbitControls = &orbitControlsImpl{}

// NewOrbitControls creates orbit controls for cam. Defaults: target at the origin,
// polar angle unrestricted, distance in [0, +Inf), damping 0.05, rotate speed 1, disabled.
// A nil camera is accepted; Update is then a no-op until the host supplies one.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controls
//
// Returns:
//   - OrbitControls: the newly created controls
func NewOrbitControls(cam Camera, options ...OrbitControlsOption) OrbitControls {
	oc := &orbitControlsImpl{
		mu:            &sync.Mutex{},
		cam:           cam,
		minPolar:      0,
		maxPolar:      math.Pi,
		minDistance:   0,
		maxDistance:   float32(math.Inf(1)),
		dampingFactor: 0.05,
		rotateSpeed:   1.0,
		callbacks:     make(map[int]func()),
	}

	for _, option := range options {
		option(oc)
	}
	return oc
}

func (oc *orbitControlsImpl) Enabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enabled
}

func (oc *orbitControlsImpl) SetEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enabled = enabled
	if !enabled {
		oc.deltaAzimuth = 0
		oc.deltaPolar = 0
	}
}

func (oc *orbitControlsImpl) Target() mgl32.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControlsImpl) SetTarget(target mgl32.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = target
}

func (oc *orbitControlsImpl) RotateAroundTarget(deltaAzimuth, deltaPolar float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return
	}
	oc.deltaAzimuth += deltaAzimuth
	oc.deltaPolar += deltaPolar
}

func (oc *orbitControlsImpl) Update() bool {
	oc.mu.Lock()
	if !oc.enabled || oc.cam == nil {
		oc.mu.Unlock()
		return false
	}

	before := oc.cam.Pose()
	sph := common.SphericalFromVector(before.Position.Sub(oc.target))

	applyAzimuth, applyPolar := oc.deltaAzimuth, oc.deltaPolar
	if oc.dampingFactor > 0 {
		applyAzimuth *= oc.dampingFactor
		applyPolar *= oc.dampingFactor
	}
	oc.deltaAzimuth -= applyAzimuth
	oc.deltaPolar -= applyPolar
	if abs32(oc.deltaAzimuth) < settleEpsilon && abs32(oc.deltaPolar) < settleEpsilon {
		oc.deltaAzimuth = 0
		oc.deltaPolar = 0
	}
	rotated := applyAzimuth != 0 || applyPolar != 0

	sph.Azimuth += applyAzimuth
	sph.Polar += applyPolar
	sph.Polar = mgl32.Clamp(sph.Polar, oc.minPolar, oc.maxPolar)
	sph.Radius = mgl32.Clamp(sph.Radius, oc.minDistance, oc.maxDistance)

	oc.cam.SetPosition(oc.target.Add(sph.Vector()))
	oc.cam.LookAt(oc.target)
	after := oc.cam.Pose()

	moved := after.Position.Sub(before.Position).LenSqr() > changeEpsilon ||
		after.Rotation.Sub(before.Rotation).LenSqr() > changeEpsilon

	// Re-aiming alone is not a user change.
	var notify []func()
	if moved && rotated {
		notify = make([]func(), 0, len(oc.callbacks))
		for id := 0; id < oc.nextCallbackID; id++ {
			if cb, ok := oc.callbacks[id]; ok {
				notify = append(notify, cb)
			}
		}
	}
	oc.mu.Unlock()

	// Callbacks run unlocked so they may query the controls.
	for _, cb := range notify {
		cb()
	}
	return moved
}

func (oc *orbitControlsImpl) Pending() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.deltaAzimuth != 0 || oc.deltaPolar != 0
}

func (oc *orbitControlsImpl) OnChange(callback func()) func() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	id := oc.nextCallbackID
	oc.nextCallbackID++
	oc.callbacks[id] = callback
	return func() {
		oc.mu.Lock()
		defer oc.mu.Unlock()
		delete(oc.callbacks, id)
	}
}

func (oc *orbitControlsImpl) MinPolarAngle() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minPolar
}

func (oc *orbitControlsImpl) MaxPolarAngle() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.maxPolar
}

func (oc *orbitControlsImpl) MinDistance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minDistance
}

func (oc *orbitControlsImpl) MaxDistance() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.maxDistance
}

func (oc *orbitControlsImpl) DampingFactor() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.dampingFactor
}

func (oc *orbitControlsImpl) RotateSpeed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.rotateSpeed
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
