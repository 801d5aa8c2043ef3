package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Edge is a line segment in an object's local space, used by wireframe hosts.
type Edge [2]mgl32.Vec3

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	name    string
	enabled atomic.Bool

	parent GameObject

	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    float32

	boundingRadius float32
	edges          []Edge
}

// GameObject defines the interface for a scene-graph node.
// A node has a local transform (position, Euler rotation, uniform scale) relative to an
// optional parent; world-space queries compose the parent chain.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's display name.
	Name() string

	// Enabled returns whether this object is ready to be driven and drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is ready to be driven and drawn.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Parent returns the parent node, or nil for a root node.
	Parent() GameObject

	// SetParent attaches the node under parent. Pass nil to detach.
	//
	// Parameters:
	//   - parent: the new parent, or nil
	SetParent(parent GameObject)

	// Position returns the local position relative to the parent.
	//
	// Returns:
	//   - mgl32.Vec3: local position
	Position() mgl32.Vec3

	// SetPosition sets the local position relative to the parent.
	//
	// Parameters:
	//   - p: local position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the local Euler rotation in radians.
	//
	// Returns:
	//   - mgl32.Vec3: pitch (x), yaw (y), roll (z)
	Rotation() mgl32.Vec3

	// SetRotation sets the local Euler rotation in radians.
	//
	// Parameters:
	//   - r: pitch (x), yaw (y), roll (z)
	SetRotation(r mgl32.Vec3)

	// Scale returns the local uniform scale.
	//
	// Returns:
	//   - float32: scale factor
	Scale() float32

	// SetScale sets the local uniform scale.
	//
	// Parameters:
	//   - s: scale factor
	SetScale(s float32)

	// LocalMatrix returns T * R * S for the local transform.
	//
	// Returns:
	//   - mgl32.Mat4: the local model matrix
	LocalMatrix() mgl32.Mat4

	// WorldMatrix returns the local matrix composed with every ancestor's local matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the world model matrix
	WorldMatrix() mgl32.Mat4

	// WorldPosition returns the node origin in world space.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	WorldPosition() mgl32.Vec3

	// BoundingRadius returns the radius of a local-space sphere enclosing the node's geometry.
	BoundingRadius() float32

	// Edges returns the node's wireframe in local space. The slice must not be modified.
	Edges() []Edge
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject at the origin with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:             &sync.Mutex{},
		scale:          1,
		boundingRadius: 1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Parent() GameObject {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.parent
}

func (g *gameObject) SetParent(parent GameObject) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.parent = parent
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
}

func (g *gameObject) Rotation() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) SetRotation(r mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = r
}

func (g *gameObject) Scale() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) SetScale(s float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = s
}

func (g *gameObject) LocalMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return common.BuildModelMatrix(g.position, g.rotation, g.scale)
}

func (g *gameObject) WorldMatrix() mgl32.Mat4 {
	local := g.LocalMatrix()
	if parent := g.Parent(); parent != nil {
		return parent.WorldMatrix().Mul4(local)
	}
	return local
}

func (g *gameObject) WorldPosition() mgl32.Vec3 {
	return g.WorldMatrix().Col(3).Vec3()
}

func (g *gameObject) BoundingRadius() float32 {
	return g.boundingRadius
}

func (g *gameObject) Edges() []Edge {
	return g.edges
}
