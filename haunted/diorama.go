package haunted

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-haunted/engine"
	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
	"github.com/go-gl/mathgl/mgl64"
)

// Diorama is a mounted haunted house: the assembled scene, its lights and
// camera, and the engine that animates and renders it.
type Diorama struct {
	mu *sync.Mutex

	seed      uint64
	layout    []GravePlacement
	scene     scene.Scene
	lighting  *Lighting
	camera    camera.Camera
	engine    engine.Engine
	renderer  renderer.Renderer
	assetErrs error
}

// MountOption is a functional option for Mount.
type MountOption func(*mountConfig)

type mountConfig struct {
	seed      *uint64
	tickRate  float64
	profiling bool
}

// WithSeed fixes the grave layout seed. Without it the layout is seeded from
// the clock.
//
// Parameters:
//   - seed: the layout seed
//
// Returns:
//   - MountOption: functional option to set the seed
func WithSeed(seed uint64) MountOption {
	return func(c *mountConfig) {
		c.seed = &seed
	}
}

// WithTickRate sets the frame loop rate in ticks per second.
func WithTickRate(fps float64) MountOption {
	return func(c *mountConfig) {
		c.tickRate = fps
	}
}

// WithProfiling enables the per-second profiler log.
func WithProfiling(enabled bool) MountOption {
	return func(c *mountConfig) {
		c.profiling = enabled
	}
}

// Mount builds the diorama on a drawable surface.
//
// A nil surface is a no-op and returns (nil, nil), matching a host that mounts
// before its surface exists. Asset load failures are not fatal: the affected
// surfaces use the default material and the errors are kept in AssetErrors.
//
// Parameters:
//   - surface: the host surface, nil for no-op
//   - r: the renderer drawing into surface
//   - loader: the texture loader, nil for untextured surfaces
//   - opts: variadic list of MountOption functions
//
// Returns:
//   - *Diorama: the mounted diorama, stopped
//   - error: ErrRendererUnavailable, or a *ConfigurationError from the layout
func Mount(surface renderer.Surface, r renderer.Renderer, loader texture.Loader, opts ...MountOption) (*Diorama, error) {
	if surface == nil {
		log.Printf("[Haunted] no surface to mount on")
		return nil, nil
	}
	if r == nil {
		return nil, ErrRendererUnavailable
	}

	cfg := mountConfig{tickRate: 60}
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := uint64(time.Now().UnixNano())
	if cfg.seed != nil {
		seed = *cfg.seed
	}

	layout, err := GenerateGraveLayout(GraveCount, GraveInnerRadius, GraveRadiusExtra, NewSeededRand(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to generate grave layout: %w", err)
	}

	materials, assetErrs := BindMaterials(loader)
	if assetErrs != nil {
		log.Printf("[Haunted] some assets failed to load, using default materials")
	}

	s := AssembleScene(materials, layout)
	lighting := ConfigureLighting(s)

	controller := camera.NewCameraController(
		camera.WithRadius(cameraDistance),
		camera.WithRadiusBounds(cameraMinRadius, cameraMaxRadius),
	)
	camOpts := []camera.CameraBuilderOption{
		camera.WithController(controller),
		camera.WithFov(float32(mgl64.DegToRad(cameraFovDegrees))),
		camera.WithNear(cameraNear),
		camera.WithFar(cameraFar),
	}
	if w, h := surface.Width(), surface.Height(); w > 0 && h > 0 {
		camOpts = append(camOpts, camera.WithAspect(float32(w)/float32(h)))
	}
	cam := camera.NewCamera(camOpts...)

	eng := engine.NewEngine(
		engine.WithScene(s),
		engine.WithCamera(cam),
		engine.WithRenderer(r),
		engine.WithTickRate(cfg.tickRate),
		engine.WithProfiling(cfg.profiling),
		engine.WithTickCallback(func(elapsed, _ float64) {
			UpdateGhosts(lighting.Ghosts, elapsed)
		}),
	)

	log.Printf("[Haunted] mounted %d graves with seed %d", len(layout), seed)

	return &Diorama{
		mu:        &sync.Mutex{},
		seed:      seed,
		layout:    layout,
		scene:     s,
		lighting:  lighting,
		camera:    cam,
		engine:    eng,
		renderer:  r,
		assetErrs: assetErrs,
	}, nil
}

// Start launches the frame loop.
func (d *Diorama) Start() error {
	return d.engine.Start()
}

// Stop halts the frame loop and waits for the in-flight tick.
func (d *Diorama) Stop() {
	d.engine.Stop()
}

// Tick runs one frame step. Hosts that own their frame loop call it instead
// of Start.
func (d *Diorama) Tick(dt float64) error {
	return d.engine.Tick(dt)
}

// Resize forwards a surface size change to the renderer and camera.
//
// Parameters:
//   - width, height: the new surface size in pixels
func (d *Diorama) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.renderer.Resize(width, height)
	if width > 0 && height > 0 {
		d.camera.SetAspect(float32(width) / float32(height))
	}
}

// Scene returns the diorama scene graph.
func (d *Diorama) Scene() scene.Scene { return d.scene }

// Camera returns the viewing camera.
func (d *Diorama) Camera() camera.Camera { return d.camera }

// Controller returns the orbit controller that pointer input feeds.
func (d *Diorama) Controller() camera.CameraController { return d.camera.Controller() }

// Engine returns the engine driving the diorama.
func (d *Diorama) Engine() engine.Engine { return d.engine }

// Lighting returns the configured lights.
func (d *Diorama) Lighting() *Lighting { return d.lighting }

// Seed returns the layout seed, for reproducing a layout.
func (d *Diorama) Seed() uint64 { return d.seed }

// Layout returns a copy of the grave placements.
func (d *Diorama) Layout() []GravePlacement {
	out := make([]GravePlacement, len(d.layout))
	copy(out, d.layout)
	return out
}

// AssetErrors returns the joined asset load errors from mounting, or nil.
func (d *Diorama) AssetErrors() error { return d.assetErrs }
