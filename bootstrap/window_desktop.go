//go:build !js

package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/clearwindow/config"
	"github.com/oliverbestmann/clearwindow/glimpse/desktop"
	"github.com/oliverbestmann/clearwindow/orion"
	"github.com/oliverbestmann/clearwindow/pulse/opengl"
)

func newWindow(cfg config.Config, withOpenGL bool, log *slog.Logger) (*desktop.Window, error) {
	api := desktop.NoAPI
	if withOpenGL {
		api = desktop.OpenGL
	}

	return desktop.NewWindow(desktop.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		ClientAPI: api,
		Log:       log,
	})
}

func runOpenGL(cfg config.Config, cycleOpts orion.Options, log *slog.Logger) error {
	win, err := newWindow(cfg, true, log)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	ctx, err := opengl.New(win, log)
	if err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}

	cycle, err := orion.NewCycle(win, ctx.GPU(), cycleOpts)
	if err != nil {
		return fmt.Errorf("create frame cycle: %w", err)
	}

	return orion.Run(win, cycle)
}
