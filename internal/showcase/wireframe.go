package showcase

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SegmentKind tells a host how to style a projected segment.
type SegmentKind int

const (
	SegmentGrid SegmentKind = iota
	SegmentTarget
	SegmentHero
)

// Segment is a line in viewport pixels.
type Segment struct {
	Kind SegmentKind
	From mgl32.Vec2
	To   mgl32.Vec2
}

const (
	gridHalfExtent = 10
	gridSpacing    = 2
	targetArm      = 0.5
)

// Segments projects the scene wireframe into the current viewport: a floor grid under the
// focal group, a cross at the orbit target and the hero node's edges. Segments with an
// endpoint behind the camera are skipped.
//
// Returns:
//   - []Segment: the visible segments in draw order
func (s *Showcase) Segments() []Segment {
	width, height := s.Viewport()
	out := make([]Segment, 0, 64)
	add := func(kind SegmentKind, a, b mgl32.Vec3) {
		pa, okA := s.cam.Project(a, width, height)
		pb, okB := s.cam.Project(b, width, height)
		if okA && okB {
			out = append(out, Segment{Kind: kind, From: pa, To: pb})
		}
	}

	floor := s.cfg.Scene.FocalPosition[1] - s.cfg.Scene.FocalRadius
	for i := -gridHalfExtent; i <= gridHalfExtent; i += gridSpacing {
		f := float32(i)
		add(SegmentGrid, mgl32.Vec3{f, floor, -gridHalfExtent}, mgl32.Vec3{f, floor, gridHalfExtent})
		add(SegmentGrid, mgl32.Vec3{-gridHalfExtent, floor, f}, mgl32.Vec3{gridHalfExtent, floor, f})
	}

	target := s.cfg.Orbit.TargetVec()
	add(SegmentTarget, target.Sub(mgl32.Vec3{targetArm, 0, 0}), target.Add(mgl32.Vec3{targetArm, 0, 0}))
	add(SegmentTarget, target.Sub(mgl32.Vec3{0, targetArm, 0}), target.Add(mgl32.Vec3{0, targetArm, 0}))
	add(SegmentTarget, target.Sub(mgl32.Vec3{0, 0, targetArm}), target.Add(mgl32.Vec3{0, 0, targetArm}))

	world := s.node.WorldMatrix()
	for _, e := range s.node.Edges() {
		add(SegmentHero,
			world.Mul4x1(e[0].Vec4(1)).Vec3(),
			world.Mul4x1(e[1].Vec4(1)).Vec3(),
		)
	}
	return out
}
