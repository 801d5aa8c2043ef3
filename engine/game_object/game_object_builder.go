package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject starts enabled.
//
// Parameters:
//   - enabled: true to drive and draw the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithParent attaches the GameObject under a parent node.
//
// Parameters:
//   - parent: the parent node
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the parent
func WithParent(parent GameObject) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.parent = parent
	}
}

// WithPosition sets the initial local position of the GameObject.
//
// Parameters:
//   - x, y, z: local position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial local Euler rotation of the GameObject in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = mgl32.Vec3{rx, ry, rz}
	}
}

// WithScale sets the initial local uniform scale of the GameObject.
//
// Parameters:
//   - s: scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(s float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = s
	}
}

// WithBoundingRadius sets the local-space bounding sphere radius used for hover picking.
//
// Parameters:
//   - radius: bounding sphere radius
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the bounding radius
func WithBoundingRadius(radius float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.boundingRadius = radius
	}
}

// WithEdges sets the local-space wireframe drawn by wireframe hosts.
//
// Parameters:
//   - edges: line segments in local space
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the wireframe
func WithEdges(edges ...Edge) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.edges = edges
	}
}

// BoxEdges returns the twelve edges of an axis-aligned box centered at the origin.
//
// Parameters:
//   - w, h, d: box extents along X, Y and Z
//
// Returns:
//   - []Edge: the box wireframe
func BoxEdges(w, h, d float32) []Edge {
	x, y, z := w/2, h/2, d/2
	c := [8]mgl32.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // sides
	}
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{c[p[0]], c[p[1]]}
	}
	return edges
}
