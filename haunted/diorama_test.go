package haunted

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeSurface struct {
	width, height int
}

func (s fakeSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (s fakeSurface) Width() int                                 { return s.width }
func (s fakeSurface) Height() int                                { return s.height }

func mountHeadless(t *testing.T) (*Diorama, *renderer.HeadlessBackend) {
	t.Helper()
	surface := fakeSurface{width: 800, height: 600}
	backend := renderer.NewHeadlessBackend()
	r, err := renderer.NewRenderer(renderer.BackendTypeHeadless, surface, renderer.WithBackend(backend))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(r.Release)

	d, err := Mount(surface, r, nil, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	return d, backend
}

func TestMountWithoutSurfaceIsNoop(t *testing.T) {
	d, err := Mount(nil, nil, nil)
	if d != nil || err != nil {
		t.Errorf("Mount(nil) = (%v, %v), want (nil, nil)", d, err)
	}
}

func TestMountRequiresRenderer(t *testing.T) {
	_, err := Mount(fakeSurface{width: 1, height: 1}, nil, nil)
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("err = %v, want ErrRendererUnavailable", err)
	}
}

func TestMountBuildsSeededDiorama(t *testing.T) {
	d, _ := mountHeadless(t)

	if d.Seed() != 42 {
		t.Errorf("seed = %d, want 42", d.Seed())
	}
	want, _ := GenerateGraveLayout(GraveCount, GraveInnerRadius, GraveRadiusExtra, NewSeededRand(42))
	got := d.Layout()
	if len(got) != len(want) {
		t.Fatalf("layout = %d graves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("grave %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if n := len(d.Scene().Find(NameGraves).Children()); n != GraveCount {
		t.Errorf("graves in scene = %d, want %d", n, GraveCount)
	}
	if d.AssetErrors() == nil {
		t.Error("mounting without a loader reported no asset errors")
	}
	if p := d.Camera().Position(); p != [3]float32{0, 0, 5} {
		t.Errorf("camera at %v, want (0, 0, 5)", p)
	}
}

func TestZeroTickKeepsGhostsInPlace(t *testing.T) {
	d, backend := mountHeadless(t)

	before := make([][3]float64, 0, 3)
	for _, g := range d.Lighting().Ghosts {
		before = append(before, g.Entity.Transform().Position)
	}
	if err := d.Tick(0); err != nil {
		t.Fatal(err)
	}
	for i, g := range d.Lighting().Ghosts {
		if got := g.Entity.Transform().Position; got != before[i] {
			t.Errorf("ghost %d moved from %v to %v on a zero tick", i, before[i], got)
		}
	}
	if backend.Submitted() != 1 {
		t.Errorf("frames submitted = %d, want 1", backend.Submitted())
	}
}

func TestThousandTicks(t *testing.T) {
	d, backend := mountHeadless(t)

	for i := 0; i < 1000; i++ {
		if err := d.Tick(1.0 / 60); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	elapsed := d.Engine().Elapsed()
	if math.Abs(elapsed-1000.0/60) > 1e-6 {
		t.Errorf("elapsed = %v, want %v", elapsed, 1000.0/60)
	}
	first := d.Lighting().Ghosts[0]
	want := [3]float64{
		math.Cos(0.5*elapsed) * 4,
		math.Sin(0.5*elapsed*2.34) * math.Sin(0.5*elapsed*3.34) * 4,
		math.Sin(0.5*elapsed) * 4,
	}
	if got := first.Entity.Transform().Position; got != want {
		t.Errorf("first ghost at %v, want %v", got, want)
	}
	if backend.Submitted() != 1000 {
		t.Errorf("frames submitted = %d, want 1000", backend.Submitted())
	}
	if f := backend.Last(); f == nil || len(f.Lights) != 5 {
		t.Errorf("last frame lights = %v, want 5 non-ambient lights", f)
	}
}

func TestResizeUpdatesAspect(t *testing.T) {
	d, backend := mountHeadless(t)

	d.Resize(1000, 500)
	if got := d.Camera().Aspect(); got != 2 {
		t.Errorf("aspect = %v, want 2", got)
	}
	if w, h := backend.Size(); w != 1000 || h != 500 {
		t.Errorf("backend size = %dx%d, want 1000x500", w, h)
	}

	d.Resize(0, 0)
	if got := d.Camera().Aspect(); got != 2 {
		t.Errorf("aspect after minimize = %v, want it kept", got)
	}
}
