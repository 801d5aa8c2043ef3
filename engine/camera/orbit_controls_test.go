package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/go-gl/mathgl/mgl32"
)

func newHomeCamera() Camera {
	return NewCamera(WithPosition(0, 0, 15), WithLookAt(0, 0, 0))
}

func polarOf(v mgl32.Vec3) float32 {
	return float32(math.Acos(float64(v[1] / v.Len())))
}

func TestOrbitDisabledIsNoop(t *testing.T) {
	cam := newHomeCamera()
	oc := NewOrbitControls(cam, WithDampingFactor(0))
	changes := 0
	oc.OnChange(func() { changes++ })

	oc.RotateAroundTarget(1, 0)
	if oc.Update() {
		t.Error("disabled controls reported a change")
	}
	oc.SetEnabled(true)
	if oc.Update() {
		t.Error("rotation queued while disabled should have been dropped")
	}
	if changes != 0 || !vecNear(cam.Position(), mgl32.Vec3{0, 0, 15}, 1e-4) {
		t.Errorf("camera moved: %v (changes %d)", cam.Position(), changes)
	}
}

func TestOrbitRotateUndamped(t *testing.T) {
	cam := newHomeCamera()
	oc := NewOrbitControls(cam, WithDampingFactor(0), WithEnabled(true))
	changes := 0
	remove := oc.OnChange(func() { changes++ })

	oc.RotateAroundTarget(math.Pi/2, 0)
	if !oc.Update() {
		t.Fatal("expected a change")
	}
	if !vecNear(cam.Position(), mgl32.Vec3{15, 0, 0}, 1e-3) {
		t.Errorf("position = %v, want (15, 0, 0)", cam.Position())
	}
	forward := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !vecNear(forward, mgl32.Vec3{0, 0, -15}, 1e-3) {
		t.Errorf("camera no longer looks at the target: %v", forward)
	}
	if changes != 1 {
		t.Errorf("changes = %d, want 1", changes)
	}

	remove()
	remove()
	oc.RotateAroundTarget(0.5, 0)
	oc.Update()
	if changes != 1 {
		t.Error("removed callback still invoked")
	}
}

func TestOrbitDampingSpreadsRotation(t *testing.T) {
	cam := newHomeCamera()
	oc := NewOrbitControls(cam, WithDampingFactor(0.05), WithEnabled(true))
	oc.RotateAroundTarget(1, 0)

	oc.Update()
	first := float32(math.Atan2(float64(cam.Position()[0]), float64(cam.Position()[2])))
	if math.Abs(float64(first-0.05)) > 1e-4 {
		t.Errorf("first damped step = %v, want 0.05", first)
	}
	for i := 0; i < 500; i++ {
		oc.Update()
	}
	total := float32(math.Atan2(float64(cam.Position()[0]), float64(cam.Position()[2])))
	if math.Abs(float64(total-1)) > 1e-3 {
		t.Errorf("total rotation = %v, want 1", total)
	}
}

func TestOrbitReaimIsNotAChange(t *testing.T) {
	cam := newHomeCamera()
	oc := NewOrbitControls(cam, WithEnabled(true))
	changes := 0
	oc.OnChange(func() { changes++ })

	// A pose that is off the look-at rotation, as mid-animation poses are.
	cam.SetPose(common.Pose{Position: mgl32.Vec3{0, 3, 12}, Rotation: mgl32.Vec3{-0.1, 0.2, 0}})
	if !oc.Update() {
		t.Fatal("update should re-aim the camera")
	}
	if changes != 0 {
		t.Errorf("changes = %d, want 0", changes)
	}

	oc.RotateAroundTarget(0.5, 0)
	oc.Update()
	if changes != 1 {
		t.Errorf("changes = %d after queued rotation, want 1", changes)
	}
}

func TestOrbitPendingSettles(t *testing.T) {
	cam := newHomeCamera()
	oc := NewOrbitControls(cam, WithDampingFactor(0.05), WithEnabled(true))
	if oc.Pending() {
		t.Fatal("fresh controls should have nothing pending")
	}

	oc.RotateAroundTarget(1, 0)
	if !oc.Pending() {
		t.Fatal("queued rotation should be pending")
	}
	for i := 0; i < 400 && oc.Pending(); i++ {
		oc.Update()
	}
	if oc.Pending() {
		t.Error("damped rotation never settled")
	}

	oc.RotateAroundTarget(1, 0)
	oc.SetEnabled(false)
	if oc.Pending() {
		t.Error("disabling should drop pending rotation")
	}
}

func TestOrbitClampsPolarAndDistance(t *testing.T) {
	minPolar, maxPolar := float32(math.Pi/5), float32(math.Pi/2)
	cam := NewCamera(WithPosition(0, 0, 30), WithLookAt(0, 0, 0))
	oc := NewOrbitControls(cam,
		WithPolarBounds(minPolar, maxPolar),
		WithDistanceBounds(5, 20),
		WithDampingFactor(0),
		WithEnabled(true),
	)

	oc.Update()
	if d := cam.DistanceTo(oc.Target()); math.Abs(float64(d-20)) > 1e-4 {
		t.Errorf("distance = %v, want clamped to 20", d)
	}

	oc.RotateAroundTarget(0, -10)
	oc.Update()
	if p := polarOf(cam.Position()); math.Abs(float64(p-minPolar)) > 1e-4 {
		t.Errorf("polar = %v, want clamped to %v", p, minPolar)
	}

	oc.RotateAroundTarget(0, 10)
	oc.Update()
	if p := polarOf(cam.Position()); math.Abs(float64(p-maxPolar)) > 1e-4 {
		t.Errorf("polar = %v, want clamped to %v", p, maxPolar)
	}
}

func TestOrbitTarget(t *testing.T) {
	cam := NewCamera(WithPosition(0, 0, 10))
	oc := NewOrbitControls(cam, WithTarget(0, -3.5, 0), WithDampingFactor(0), WithEnabled(true))
	changes := 0
	oc.OnChange(func() { changes++ })
	if !oc.Update() {
		t.Fatal("camera should turn toward the new target")
	}
	if changes != 0 {
		t.Errorf("re-aiming without queued rotation fired %d change callbacks", changes)
	}
	inView := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, -3.5, 0, 1}).Vec3()
	if math.Abs(float64(inView[0])) > 1e-4 || math.Abs(float64(inView[1])) > 1e-4 {
		t.Errorf("target off the view axis: %v", inView)
	}
}

func TestOrbitNilCamera(t *testing.T) {
	oc := NewOrbitControls(nil, WithEnabled(true))
	oc.RotateAroundTarget(1, 1)
	if oc.Update() {
		t.Error("update without a camera should report no change")
	}
}
