package engine

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
)

type errBackend struct {
	*renderer.HeadlessBackend
}

var errDeviceLost = errors.New("device lost")

func (errBackend) SubmitFrame(*renderer.Frame) error { return errDeviceLost }

func TestClockAccumulates(t *testing.T) {
	e := NewEngine()
	for range 1000 {
		if err := e.Tick(1.0 / 60.0); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if got := e.Elapsed(); math.Abs(got-1000.0/60.0) > 1e-6 {
		t.Errorf("elapsed = %v, want %v", got, 1000.0/60.0)
	}
}

func TestClockIgnoresNegativeDelta(t *testing.T) {
	var c Clock
	c.Advance(1)
	c.Advance(-5)
	c.Advance(math.NaN())
	c.Advance(math.Inf(1))
	if c.Elapsed() != 1 {
		t.Errorf("elapsed = %v, want 1", c.Elapsed())
	}

	var gotDt float64 = -1
	e := NewEngine(WithTickCallback(func(_, dt float64) { gotDt = dt }))
	_ = e.Tick(-0.5)
	if gotDt != 0 || e.Elapsed() != 0 {
		t.Errorf("negative tick: callback dt %v, elapsed %v", gotDt, e.Elapsed())
	}
}

func TestTickCallbackSeesElapsed(t *testing.T) {
	var seen []float64
	e := NewEngine(WithTickCallback(func(elapsed, _ float64) { seen = append(seen, elapsed) }))
	_ = e.Tick(0.5)
	_ = e.Tick(0.25)
	if len(seen) != 2 || seen[0] != 0.5 || seen[1] != 0.75 {
		t.Errorf("callback elapsed = %v, want [0.5 0.75]", seen)
	}
}

func TestTickIsNotReentrant(t *testing.T) {
	var inner error
	var e Engine
	e = NewEngine(WithTickCallback(func(_, _ float64) {
		inner = e.Tick(1)
	}))
	if err := e.Tick(1); err != nil {
		t.Fatalf("outer Tick: %v", err)
	}
	if !errors.Is(inner, ErrTickInProgress) {
		t.Errorf("nested Tick = %v, want ErrTickInProgress", inner)
	}
	if e.Elapsed() != 1 {
		t.Errorf("elapsed = %v, nested tick must not advance the clock", e.Elapsed())
	}
}

func TestTickUpdatesCameraAndRenders(t *testing.T) {
	ctrl := camera.NewCameraController(camera.WithMouseSensitivity(0.01))
	cam := camera.NewCamera(camera.WithController(ctrl))
	backend := renderer.NewHeadlessBackend()
	r, err := renderer.NewRenderer(renderer.BackendTypeHeadless, nil, renderer.WithSize(64, 64), renderer.WithBackend(backend))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	e := NewEngine(WithScene(scene.NewScene("s")), WithCamera(cam), WithRenderer(r))

	ctrl.Rotate(-100, 0)
	if err := e.Tick(1.0 / 60.0); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if math.Abs(float64(ctrl.Azimuth())-1) > 1e-6 {
		t.Errorf("azimuth = %v, pending input not reconciled", ctrl.Azimuth())
	}
	if backend.Submitted() != 1 {
		t.Errorf("submitted = %d, want 1", backend.Submitted())
	}
	if p := cam.Position(); math.Abs(float64(backend.Last().Camera.CameraPosition[0]-p[0])) > 1e-6 {
		t.Error("frame rendered with a stale camera")
	}
}

func TestTickWrapsRenderError(t *testing.T) {
	r, _ := renderer.NewRenderer(renderer.BackendTypeHeadless, nil, renderer.WithSize(8, 8),
		renderer.WithBackend(errBackend{renderer.NewHeadlessBackend()}))
	e := NewEngine(WithScene(scene.NewScene("s")), WithCamera(camera.NewCamera()), WithRenderer(r))
	if err := e.Tick(0.1); !errors.Is(err, errDeviceLost) {
		t.Fatalf("Tick = %v, want wrapped device lost", err)
	}
	if e.Elapsed() != 0.1 {
		t.Errorf("clock did not advance on a failed render")
	}
}

func TestStartStopRestart(t *testing.T) {
	var ticks atomic.Int64
	e := NewEngine(WithTickRate(500), WithTickCallback(func(_, _ float64) { ticks.Add(1) }))

	e.Stop() // never started
	if e.State() != StateStopped {
		t.Fatalf("state = %v", e.State())
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start = %v, want ErrAlreadyRunning", err)
	}
	if e.State() != StateRunning {
		t.Errorf("state = %v, want running", e.State())
	}
	waitForTicks(t, &ticks, 3)

	e.Stop()
	e.Stop()
	if e.State() != StateStopped {
		t.Fatalf("state after Stop = %v", e.State())
	}
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != after {
		t.Error("ticked after Stop returned")
	}

	if err := e.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	waitForTicks(t, &ticks, after+3)
	e.Stop()
}

func TestLoopRecoversFromPanic(t *testing.T) {
	e := NewEngine(WithTickRate(500), WithTickCallback(func(_, _ float64) { panic("boom") }))
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for e.State() == StateRunning && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if e.State() != StateStopped {
		t.Fatal("engine kept running after a panicking tick")
	}
	e.Stop()
}

func TestSetTickRate(t *testing.T) {
	e := NewEngine()
	if e.TickRate() != time.Second/60 {
		t.Errorf("default rate = %v", e.TickRate())
	}
	e.SetTickRate(120)
	if e.TickRate() != time.Second/120 {
		t.Errorf("rate = %v, want %v", e.TickRate(), time.Second/120)
	}
	e.SetTickRate(-1)
	if e.TickRate() != time.Second/60 {
		t.Errorf("non-positive rate = %v, want 60/s", e.TickRate())
	}
}

func waitForTicks(t *testing.T, ticks *atomic.Int64, n int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < n {
		if time.Now().After(deadline) {
			t.Fatalf("only %d ticks, want %d", ticks.Load(), n)
		}
		time.Sleep(time.Millisecond)
	}
}
