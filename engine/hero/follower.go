package hero

import (
	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine/camera"
	"github.com/Carmen-Shannon/oxy-hero/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// OrientationFollower turns the focal node toward the camera while hovered and relaxes it to a
// rest pose otherwise.
type OrientationFollower interface {
	// Frame moves the node one smoothing step toward its target rotation and scale.
	// The step is a fixed fraction per frame, so convergence speed depends on frame rate.
	// No-op while the node is missing or disabled, or the camera is missing.
	Frame()

	// Target returns the rotation and scale the node is currently moving toward.
	//
	// Returns:
	//   - mgl32.Vec3: target Euler rotation
	//   - float32: target scale
	//   - bool: false if the node or camera is unavailable
	Target() (mgl32.Vec3, float32, bool)
}

type orientationFollower struct {
	node  game_object.GameObject
	cam   camera.Camera
	state *InteractionState
	cfg   FollowerConfig

	restRotation mgl32.Vec3
}

var _ OrientationFollower = &orientationFollower{}

// NewOrientationFollower creates a follower for node as seen from cam.
//
// Parameters:
//   - node: the focal node (may be nil until the scene is ready)
//   - cam: the camera to face
//   - state: shared interaction state providing the hover flag
//   - cfg: smoothing and scale tuning
//
// Returns:
//   - OrientationFollower: the new follower
func NewOrientationFollower(node game_object.GameObject, cam camera.Camera, state *InteractionState, cfg FollowerConfig) OrientationFollower {
	return &orientationFollower{
		node:         node,
		cam:          cam,
		state:        state,
		cfg:          cfg,
		restRotation: mgl32.Vec3{0, mgl32.DegToRad(cfg.RestYawDegrees), 0},
	}
}

func (f *orientationFollower) Frame() {
	target, targetScale, ok := f.Target()
	if !ok {
		return
	}
	alpha := f.cfg.RestDamping
	if f.state.Hovered() {
		alpha = f.cfg.HoverDamping
	}
	f.node.SetRotation(common.LerpVec3(f.node.Rotation(), target, alpha))
	f.node.SetScale(common.Lerp(f.node.Scale(), targetScale, f.cfg.ScaleDamping))
}

func (f *orientationFollower) Target() (mgl32.Vec3, float32, bool) {
	if f.node == nil || f.cam == nil || !f.node.Enabled() {
		return mgl32.Vec3{}, 0, false
	}
	if !f.state.Hovered() {
		return f.restRotation, f.cfg.RestScale, true
	}
	yaw, ok := common.HorizontalYaw(f.node.WorldPosition(), f.cam.Position())
	if !ok {
		// Camera directly above or below: keep facing the current way.
		yaw = f.node.Rotation()[1]
	}
	return mgl32.Vec3{0, yaw, 0}, f.cfg.HoverScale, true
}
