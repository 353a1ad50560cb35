// Package bootstrap wires window, graphics context and frame cycle together.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/clearwindow/config"
	"github.com/oliverbestmann/clearwindow/orion"
	"github.com/oliverbestmann/clearwindow/pulse"
	"github.com/pkg/profile"
)

// Run opens the window, initializes the configured backend and runs the
// frame cycle until the window is closed. Setup errors are returned
// before the first frame is drawn.
func Run(cfg config.Config, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	pulse.SetLogLevel(cfg.WGPULogLevel)

	cycleOpts := orion.Options{
		ReconfigureOnResize: cfg.ReconfigureOnResize,
		MaxAcquireRetries:   cfg.MaxAcquireRetries,
		MaxTextureDimension: cfg.MaxTextureDimension,
		Log:                 log,
	}

	if cfg.ClearColor != "" {
		color, err := orion.ParseColor(cfg.ClearColor)
		if err != nil {
			return fmt.Errorf("parse clear color: %w", err)
		}

		cycleOpts.ClearColor = &color
	}

	pulseOpts := pulse.Options{
		PowerPreference:      pulse.PowerPreference(cfg.PowerPreference),
		ForceFallbackAdapter: cfg.ForceFallbackAdapter,
		Log:                  log,
	}

	backend := cfg.Backend
	if backend == config.BackendAuto {
		backend = chooseBackend(pulseOpts, log)
	}

	log.Info("Starting", slog.String("backend", string(backend)))

	switch backend {
	case config.BackendOpenGL:
		return runOpenGL(cfg, cycleOpts, log)
	default:
		return runWebGPU(cfg, pulseOpts, cycleOpts, log)
	}
}

func chooseBackend(opts pulse.Options, log *slog.Logger) config.Backend {
	if err := pulse.Probe(opts); err != nil {
		log.Warn("Webgpu is not available, falling back to OpenGL", slog.Any("err", err))
		return config.BackendOpenGL
	}

	return config.BackendWebGPU
}

func runWebGPU(cfg config.Config, pulseOpts pulse.Options, cycleOpts orion.Options, log *slog.Logger) error {
	win, err := newWindow(cfg, false, log)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), pulseOpts)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view, err := pulse.NewView(ctx, log)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	cycle, err := orion.NewCycle(win, view.GPU(), cycleOpts)
	if err != nil {
		return fmt.Errorf("create frame cycle: %w", err)
	}

	return orion.Run(win, cycle)
}
