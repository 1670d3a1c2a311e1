package camera

import (
	"math"
	"testing"
)

func near32(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestControllerStartsOnPositiveZ(t *testing.T) {
	cc := NewCameraController(WithRadius(5), WithTarget(0, 0, 0))
	x, y, z := cc.Position()
	if !near32(x, 0, 1e-6) || !near32(y, 0, 1e-6) || !near32(z, 5, 1e-6) {
		t.Fatalf("position = (%v,%v,%v), want (0,0,5)", x, y, z)
	}
}

func TestRotateIsAppliedOnUpdate(t *testing.T) {
	cc := NewCameraController(WithRadius(5), WithMouseSensitivity(0.01))
	cc.Rotate(-100, 0)

	if cc.Azimuth() != 0 {
		t.Fatal("Rotate changed azimuth before Update")
	}
	if !cc.Update() {
		t.Fatal("Update reported no movement")
	}
	if !near32(cc.Azimuth(), 1.0, 1e-6) {
		t.Errorf("azimuth = %v, want 1", cc.Azimuth())
	}
	if cc.Update() {
		t.Error("second Update moved without new input")
	}
}

func TestElevationIsClamped(t *testing.T) {
	cc := NewCameraController(WithElevationBounds(-0.5, 0.5), WithMouseSensitivity(1))
	cc.Rotate(0, 10)
	cc.Update()
	if cc.Elevation() != 0.5 {
		t.Errorf("elevation = %v, want 0.5", cc.Elevation())
	}
	cc.SetElevation(-3)
	if cc.Elevation() != -0.5 {
		t.Errorf("elevation = %v, want -0.5", cc.Elevation())
	}
}

func TestDollyRespectsRadiusBounds(t *testing.T) {
	cc := NewCameraController(WithRadius(5), WithRadiusBounds(1, 40))
	cc.Dolly(1)
	cc.Update()
	if !near32(cc.Radius(), 4.75, 1e-5) {
		t.Errorf("radius after one dolly step = %v, want 4.75", cc.Radius())
	}
	cc.Dolly(1000)
	cc.Update()
	if cc.Radius() != 1 {
		t.Errorf("radius = %v, want clamped to 1", cc.Radius())
	}
	cc.Dolly(-10000)
	cc.Update()
	if cc.Radius() != 40 {
		t.Errorf("radius = %v, want clamped to 40", cc.Radius())
	}
}

func TestDampingCarriesInputOver(t *testing.T) {
	cc := NewCameraController(WithDamping(0.5), WithOrbitSpeed(1))
	cc.OrbitRight()
	cc.Update()
	if !near32(cc.Azimuth(), 0.5, 1e-6) {
		t.Fatalf("azimuth after first update = %v, want 0.5", cc.Azimuth())
	}
	cc.Update()
	if !near32(cc.Azimuth(), 0.75, 1e-6) {
		t.Errorf("azimuth after second update = %v, want 0.75", cc.Azimuth())
	}
}

func TestCameraFollowsController(t *testing.T) {
	cc := NewCameraController(WithRadius(5))
	cam := NewCamera(WithController(cc), WithAspect(16.0/9.0))

	if p := cam.Position(); !near32(p[2], 5, 1e-6) {
		t.Fatalf("camera position = %v", p)
	}

	// The view matrix moves the eye to the origin.
	view := cam.ViewMatrix()
	if !near32(view[14], -5, 1e-5) {
		t.Errorf("view translation z = %v, want -5", view[14])
	}

	cc.SetAzimuth(float32(math.Pi / 2))
	cam.Update()
	if p := cam.Position(); !near32(p[0], 5, 1e-5) {
		t.Errorf("camera position after orbit = %v, want x=5", p)
	}
}

func TestSetAspectIgnoresInvalid(t *testing.T) {
	cam := NewCamera()
	cam.SetAspect(0)
	cam.SetAspect(float32(math.NaN()))
	if cam.Aspect() != 1 {
		t.Errorf("aspect = %v, want 1", cam.Aspect())
	}
	cam.SetAspect(2)
	if cam.Aspect() != 2 {
		t.Errorf("aspect = %v, want 2", cam.Aspect())
	}
	proj := cam.ProjectionMatrix()
	if !near32(proj[0]*2, proj[5], 1e-6) {
		t.Errorf("projection does not reflect aspect: %v %v", proj[0], proj[5])
	}
}

func TestGPUCameraUniformSize(t *testing.T) {
	u := NewGPUCameraUniform(NewCamera())
	if u.Size() != 96 || len(u.Marshal()) != 96 {
		t.Fatalf("uniform size = %d/%d, want 96", u.Size(), len(u.Marshal()))
	}
}

func TestWithUpOverridesDefault(t *testing.T) {
	if x, y, z := NewCamera().Up(); x != 0 || y != 1 || z != 0 {
		t.Errorf("default up = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}
	if x, y, z := NewCamera(WithUp(0, 0, 1)).Up(); x != 0 || y != 0 || z != 1 {
		t.Errorf("up = (%v, %v, %v), want (0, 0, 1)", x, y, z)
	}
}
