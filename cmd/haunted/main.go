package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/Carmen-Shannon/oxy-haunted/common"
	"github.com/Carmen-Shannon/oxy-haunted/config"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
	"github.com/Carmen-Shannon/oxy-haunted/engine/window"
	"github.com/Carmen-Shannon/oxy-haunted/haunted"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/profile"
)

func init() {
	// GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

// headlessSurface stands in for a window when rendering without a GPU.
type headlessSurface struct {
	width, height int
}

func (s headlessSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (s headlessSurface) Width() int                                 { return s.width }
func (s headlessSurface) Height() int                                { return s.height }

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	cpuProfile := flag.Bool("cpuprofile", false, "Write a CPU profile to the working directory")
	flag.Parse()

	if *cpuProfile {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("[Haunted] %v", err)
	}

	loader := texture.NewLoader(os.DirFS(filepath.Clean(cfg.Assets.Root)))

	var opts []haunted.MountOption
	opts = append(opts, haunted.WithTickRate(cfg.Engine.TickRate), haunted.WithProfiling(cfg.Engine.Profiling))
	if cfg.Layout.Seed != 0 {
		opts = append(opts, haunted.WithSeed(cfg.Layout.Seed))
	}

	if cfg.Engine.Headless {
		runHeadless(cfg, loader, opts)
		return
	}

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer win.Close()

	presentMode := renderer.PresentModeVSync
	if !cfg.Window.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win, renderer.WithPresentMode(presentMode))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Release()

	d, err := haunted.Mount(win, r, loader, opts...)
	if err != nil {
		log.Fatalf("Failed to mount diorama: %v", err)
	}

	bindInput(win, d, cfg.Engine.Profiling)

	if err := d.Start(); err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}
	defer d.Stop()

	win.ProcessMessages()
}

// bindInput forwards window events to the diorama. Left drag orbits, the
// wheel dollies, arrow keys step the orbit.
func bindInput(win window.Window, d *haunted.Diorama, profiling bool) {
	ctrl := d.Controller()

	win.SetResizeCallback(d.Resize)
	win.SetDragCallback(ctrl.Rotate)
	win.SetScrollCallback(ctrl.Dolly)

	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyLeft:
			ctrl.OrbitLeft()
		case common.KeyRight:
			ctrl.OrbitRight()
		case common.KeyUp:
			ctrl.OrbitUp()
		case common.KeyDown:
			ctrl.OrbitDown()
		}
	})
	win.SetKeyUpCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyR:
			ctrl.SetAzimuth(0)
			ctrl.SetElevation(0)
			ctrl.SetRadius(5)
		case common.KeyP:
			profiling = !profiling
			if profiling {
				d.Engine().EnableProfiler()
			} else {
				d.Engine().DisableProfiler()
			}
		case common.KeySpace:
			if err := d.Start(); err != nil {
				d.Stop()
			}
		}
	})
}

// runHeadless animates the diorama into the headless backend until
// interrupted.
func runHeadless(cfg *config.Config, loader texture.Loader, opts []haunted.MountOption) {
	surface := headlessSurface{width: cfg.Window.Width, height: cfg.Window.Height}
	r, err := renderer.NewRenderer(renderer.BackendTypeHeadless, surface)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Release()

	d, err := haunted.Mount(surface, r, loader, opts...)
	if err != nil {
		log.Fatalf("Failed to mount diorama: %v", err)
	}
	if err := d.Start(); err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	d.Stop()
	log.Printf("[Haunted] rendered %d frames in %.2fs", r.FrameCount(), d.Engine().Elapsed())
}
