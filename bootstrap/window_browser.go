//go:build js

package bootstrap

import (
	"errors"
	"log/slog"

	"github.com/oliverbestmann/clearwindow/config"
	"github.com/oliverbestmann/clearwindow/glimpse/browser"
	"github.com/oliverbestmann/clearwindow/orion"
)

func newWindow(cfg config.Config, withOpenGL bool, log *slog.Logger) (*browser.Window, error) {
	if withOpenGL {
		return nil, errors.New("OpenGL is not available in the browser")
	}

	return browser.NewWindow(cfg.Window.Title)
}

func runOpenGL(cfg config.Config, cycleOpts orion.Options, log *slog.Logger) error {
	return errors.New("OpenGL backend is not available in the browser")
}
