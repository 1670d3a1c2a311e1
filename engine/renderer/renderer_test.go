package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/geometry"
	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
)

type failingBackend struct {
	*HeadlessBackend
	err error
}

func (b *failingBackend) SubmitFrame(*Frame) error {
	return b.err
}

func testCamera() camera.Camera {
	return camera.NewCamera(camera.WithController(camera.NewCameraController(camera.WithRadius(5))))
}

func testScene() scene.Scene {
	tex := texture.NewTexture("shared", 1, 1, []byte{255, 255, 255, 255})
	shared := material.NewMaterial(material.WithTexture(material.SlotColor, tex))
	glass := material.NewMaterial(material.WithTransparent(true), material.WithTexture(material.SlotAlpha, tex))

	hidden := scene.NewEntity("hidden", scene.WithMesh(geometry.Box(1, 1, 1), shared),
		scene.WithChildren(scene.NewEntity("under-hidden", scene.WithMesh(geometry.Box(1, 1, 1), shared))))
	hidden.SetVisible(false)

	return scene.NewScene("test",
		scene.WithFog([3]float32{0.1, 0.2, 0.3}, 0.1),
		scene.WithEntities(
			scene.NewEntity("sky", scene.WithMesh(geometry.Sphere(1, 32, 15), material.NewMaterial(material.WithSky(material.SkyParameters{Turbidity: 10})))),
			scene.NewEntity("box", scene.WithMesh(geometry.Box(1, 1, 1), shared), scene.WithShadow(true, true)),
			scene.NewEntity("near-glass", scene.WithMesh(geometry.Plane(1, 1, 1, 1), glass), scene.WithPosition(0, 0, 3)),
			scene.NewEntity("far-glass", scene.WithMesh(geometry.Plane(1, 1, 1, 1), glass), scene.WithPosition(0, 0, -3)),
			scene.NewEntity("bare", scene.WithMesh(geometry.Box(1, 1, 1), nil)),
			hidden,
			scene.NewEntity("ambient", scene.WithLight(light.NewLight(light.LightTypeAmbient, light.WithColor(1, 0.5, 0), light.WithIntensity(0.5)))),
			scene.NewEntity("moon", scene.WithPosition(0, 10, 0), scene.WithLight(light.NewLight(light.LightTypeDirectional, light.WithCastsShadows(true)))),
			scene.NewEntity("lamp", scene.WithPosition(1, 1, 1), scene.WithLight(light.NewLight(light.LightTypePoint))),
			scene.NewEntity("ghost", scene.WithPosition(2, 1, 0), scene.WithLight(light.NewLight(light.LightTypePoint, light.WithCastsShadows(true), light.WithShadowMapSize(256, 256)))),
		),
	)
}

func TestBuildFrameSortsDrawItems(t *testing.T) {
	f := BuildFrame(testScene(), testCamera(), 800, 600)

	if len(f.Background) != 1 || f.Background[0].Entity.Name() != "sky" {
		t.Fatalf("background = %d items, want the sky", len(f.Background))
	}
	if len(f.Opaque) != 2 {
		t.Fatalf("opaque = %d items, want 2", len(f.Opaque))
	}
	if f.Opaque[1].Material.Name() != "default" {
		t.Errorf("mesh without material drew with %q, want default", f.Opaque[1].Material.Name())
	}
	if !f.Opaque[0].CastShadow || !f.Opaque[0].ReceiveShadow {
		t.Error("shadow flags not carried into draw item")
	}
	if len(f.Transparent) != 2 || f.Transparent[0].Entity.Name() != "far-glass" {
		t.Errorf("transparent items not back to front: %v", f.Transparent)
	}
	if f.DrawCount() != 5 {
		t.Errorf("DrawCount = %d, want 5", f.DrawCount())
	}
	if len(f.Textures) != 1 {
		t.Errorf("textures = %d, want the shared handle once", len(f.Textures))
	}
	if len(f.ShadowCasters()) != 1 {
		t.Errorf("shadow casters = %d, want 1", len(f.ShadowCasters()))
	}
}

func TestBuildFrameFogAndClearColor(t *testing.T) {
	f := BuildFrame(testScene(), testCamera(), 800, 600)
	if f.ClearColor != [4]float64{float64(float32(0.1)), float64(float32(0.2)), float64(float32(0.3)), 1} {
		t.Errorf("clear color = %v", f.ClearColor)
	}
	if f.Camera.FogDensity != 0.1 || f.Camera.FogColor != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("camera fog = %v %v", f.Camera.FogDensity, f.Camera.FogColor)
	}

	bare := BuildFrame(scene.NewScene("bare"), testCamera(), 1, 1)
	if bare.ClearColor != [4]float64{0, 0, 0, 1} || bare.Camera.FogDensity != 0 {
		t.Errorf("scene without fog: clear %v density %v", bare.ClearColor, bare.Camera.FogDensity)
	}
}

func TestBuildFrameLights(t *testing.T) {
	f := BuildFrame(testScene(), testCamera(), 800, 600)

	if f.LightHeader.AmbientColor != [3]float32{0.5, 0.25, 0} {
		t.Errorf("ambient = %v, want (0.5, 0.25, 0)", f.LightHeader.AmbientColor)
	}
	if f.LightHeader.LightCount != 3 || len(f.Lights) != 3 {
		t.Fatalf("light count = %d/%d, want 3", f.LightHeader.LightCount, len(f.Lights))
	}

	moon, lamp, ghost := f.Lights[0], f.Lights[1], f.Lights[2]
	if moon.ShadowIndex != 0 {
		t.Errorf("moon shadow index = %d, want 0", moon.ShadowIndex)
	}
	if lamp.ShadowIndex != light.NoShadow {
		t.Errorf("lamp shadow index = %d, want NoShadow", lamp.ShadowIndex)
	}
	if ghost.ShadowIndex != 1 {
		t.Errorf("ghost shadow index = %d, want 1", ghost.ShadowIndex)
	}
	if ghost.Position != [3]float32{2, 1, 0} {
		t.Errorf("ghost position = %v", ghost.Position)
	}
	if len(f.Shadows) != 7 {
		t.Errorf("shadow records = %d, want 1 + 6", len(f.Shadows))
	}
	if got := f.Shadows[1].TexelSize[0]; math.Abs(float64(got)-1.0/256) > 1e-9 {
		t.Errorf("ghost texel size = %v, want 1/256", got)
	}

	if n := len(f.LightBuffer()); n != 16+3*64 {
		t.Errorf("light buffer = %d bytes", n)
	}
	if n := len(f.ShadowBuffer()); n != 7*80 {
		t.Errorf("shadow buffer = %d bytes", n)
	}
}

func TestHeadlessRendererRecordsFrames(t *testing.T) {
	backend := NewHeadlessBackend()
	r, err := NewRenderer(BackendTypeHeadless, nil, WithSize(640, 480), WithBackend(backend), WithPresentMode(PresentModeVSync))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if backend.Configured() != 1 || backend.PresentMode() != PresentModeVSync {
		t.Fatalf("backend configured %d times, mode %v", backend.Configured(), backend.PresentMode())
	}

	s, cam := testScene(), testCamera()
	for range 3 {
		if err := r.Render(s, cam); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if r.FrameCount() != 3 || backend.Submitted() != 3 {
		t.Errorf("frames = %d/%d, want 3", r.FrameCount(), backend.Submitted())
	}
	if last := backend.Last(); last == nil || last.Index != 3 || last.Width != 640 {
		t.Errorf("last frame = %+v", last)
	}
	if r.LastFrame() != backend.Last() {
		t.Error("renderer and backend disagree on the last frame")
	}
}

func TestRendererSkipsZeroSizedSurface(t *testing.T) {
	backend := NewHeadlessBackend()
	r, err := NewRenderer(BackendTypeHeadless, nil, WithBackend(backend))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if backend.Configured() != 0 {
		t.Error("zero-sized renderer configured the surface")
	}
	if err := r.Render(testScene(), testCamera()); err != nil || backend.Submitted() != 0 {
		t.Fatalf("zero-sized render: err %v, submitted %d", err, backend.Submitted())
	}

	r.Resize(320, 200)
	if w, h := r.Size(); w != 320 || h != 200 {
		t.Errorf("size = %dx%d", w, h)
	}
	if err := r.Render(testScene(), testCamera()); err != nil || backend.Submitted() != 1 {
		t.Errorf("render after resize: err %v, submitted %d", err, backend.Submitted())
	}

	r.Resize(0, 200)
	if err := r.Render(testScene(), testCamera()); err != nil || backend.Submitted() != 1 {
		t.Errorf("render while minimized: err %v, submitted %d", err, backend.Submitted())
	}
}

func TestRendererWrapsBackendErrors(t *testing.T) {
	boom := errors.New("device lost")
	r, err := NewRenderer(BackendTypeHeadless, nil, WithSize(10, 10), WithBackend(&failingBackend{HeadlessBackend: NewHeadlessBackend(), err: boom}))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	err = r.Render(testScene(), testCamera())
	if !errors.Is(err, boom) {
		t.Fatalf("Render error = %v, want wrapped %v", err, boom)
	}
	if r.FrameCount() != 0 {
		t.Error("failed frame was counted")
	}
}

func TestRendererRelease(t *testing.T) {
	backend := NewHeadlessBackend()
	r, _ := NewRenderer(BackendTypeHeadless, nil, WithSize(10, 10), WithBackend(backend))
	r.Release()
	r.Release()
	if !backend.Released() {
		t.Fatal("backend not released")
	}
	if err := r.Render(testScene(), testCamera()); !errors.Is(err, ErrReleased) {
		t.Errorf("Render after Release = %v, want ErrReleased", err)
	}
}

func TestWGPURequiresSurface(t *testing.T) {
	if _, err := NewRenderer(BackendTypeWGPU, nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("NewRenderer without surface = %v, want ErrNoSurface", err)
	}
}
