package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	rotation mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32
}

// Camera defines the interface for the showcase camera.
// The camera owns its world pose (position and Euler rotation) directly; controls and
// animations write the pose and renderers derive view/projection matrices from it on demand.
// Rotation uses the common.RotationMatrix convention and the camera looks down its local -Z axis.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position without changing its rotation.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the camera's Euler rotation in radians.
	//
	// Returns:
	//   - mgl32.Vec3: pitch (x), yaw (y), roll (z)
	Rotation() mgl32.Vec3

	// SetRotation sets the camera's Euler rotation in radians.
	//
	// Parameters:
	//   - r: pitch (x), yaw (y), roll (z)
	SetRotation(r mgl32.Vec3)

	// Pose returns position and rotation as a common.Pose with unit scale.
	//
	// Returns:
	//   - common.Pose: the current pose
	Pose() common.Pose

	// SetPose writes position and rotation from p. The scale component is ignored.
	// Values are stored exactly as given so a pose read back compares Equal.
	//
	// Parameters:
	//   - p: the pose to apply
	SetPose(p common.Pose)

	// LookAt re-orients the camera so its forward axis points at target.
	// Roll is reset to zero. No-op if target coincides with the camera position.
	//
	// Parameters:
	//   - target: world-space point to look at
	LookAt(target mgl32.Vec3)

	// DistanceTo returns the euclidean distance from the camera to target.
	//
	// Parameters:
	//   - target: world-space point
	//
	// Returns:
	//   - float32: the distance
	DistanceTo(target mgl32.Vec3) float32

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// ViewMatrix returns the world-to-view matrix derived from the current pose.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// Project maps a world-space point to viewport pixel coordinates (origin top-left).
	//
	// Parameters:
	//   - world: the point to project
	//   - width, height: viewport size in pixels
	//
	// Returns:
	//   - mgl32.Vec2: pixel coordinates
	//   - bool: false if the point lies behind the camera
	Project(world mgl32.Vec3, width, height int) (mgl32.Vec2, bool)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    1000.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Rotation() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) SetRotation(r mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = r
}

func (c *cameraImpl) Pose() common.Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Pose{Position: c.position, Rotation: c.rotation, Scale: 1}
}

func (c *cameraImpl) SetPose(p common.Pose) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p.Position
	c.rotation = p.Rotation
}

func (c *cameraImpl) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.position.Sub(target).Len() < 1e-8 {
		return
	}
	c.rotation = common.LookAtRotation(c.position, target)
}

func (c *cameraImpl) DistanceTo(target mgl32.Vec3) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position.Sub(target).Len()
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *cameraImpl) Project(world mgl32.Vec3, width, height int) (mgl32.Vec2, bool) {
	c.mu.Lock()
	viewProj := mgl32.Perspective(c.fov, c.aspect, c.near, c.far).Mul4(c.viewMatrix())
	c.mu.Unlock()

	clip := viewProj.Mul4x1(world.Vec4(1))
	if clip[3] <= 0 {
		return mgl32.Vec2{}, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return mgl32.Vec2{
		(ndcX + 1) / 2 * float32(width),
		(1 - ndcY) / 2 * float32(height),
	}, true
}

// viewMatrix inverts the camera's rigid world transform: V = Rᵀ * T(-p).
// Caller must hold the mutex.
func (c *cameraImpl) viewMatrix() mgl32.Mat4 {
	return common.RotationMatrix(c.rotation).Transpose().
		Mul4(mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]))
}
