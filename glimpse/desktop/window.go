//go:build !js

// Package desktop implements glimpse.Window on top of glfw.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/clearwindow/glimpse"
)

func init() {
	// glfw must only be used from the main thread
	runtime.LockOSThread()
}

// ClientAPI selects which graphics API the window is prepared for.
type ClientAPI uint8

const (
	// NoAPI creates a plain window, the surface is created by webgpu.
	NoAPI ClientAPI = iota

	// OpenGL creates a window with a current OpenGL 4.1 core context.
	OpenGL
)

type Options struct {
	Width  int
	Height int
	Title  string

	ClientAPI ClientAPI

	Log *slog.Logger
}

type Window struct {
	win        *glfw.Window
	log        *slog.Logger
	dispatcher glimpse.Dispatcher

	interrupts *glimpse.Interrupts
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	switch opts.ClientAPI {
	case OpenGL:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	default:
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	w := &Window{
		win: window,
		log: log,
	}

	// the first iteration always draws a frame
	w.dispatcher.RequestRedraw()

	w.configureCallbacks()

	// SIGINT becomes a close request, queued on the main thread in Run.
	// PostEmptyEvent wakes the main thread if it is blocked in WaitEvents.
	w.interrupts = glimpse.NotifyInterrupts(glfw.PostEmptyEvent)

	return w, nil
}

func (w *Window) FramebufferSize() glimpse.Size[uint32] {
	width, height := w.win.GetFramebufferSize()
	return glimpse.ConvertSize[uint32](glimpse.SizeOf(width, height))
}

func (w *Window) RequestRedraw() {
	w.dispatcher.RequestRedraw()
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

// MakeContextCurrent binds the OpenGL context of this window to the calling thread.
// Only valid for windows created with the OpenGL client api.
func (w *Window) MakeContextCurrent() {
	w.win.MakeContextCurrent()
}

// SwapBuffers presents the back buffer of the OpenGL context.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) Run(handler glimpse.Handler) error {
	for {
		// do not block if we still need to render a frame
		if w.dispatcher.RedrawPending() {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}

		if w.interrupts.Pending() {
			w.log.Info("Interrupted, requesting close")
			w.dispatcher.Push(glimpse.CloseRequested())
		}

		if w.dispatcher.DispatchOnce(handler) == glimpse.Exit {
			return nil
		}
	}
}

func (w *Window) Terminate() {
	// no PostEmptyEvent may run after glfw is terminated
	w.interrupts.Stop()

	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) configureCallbacks() {
	w.win.SetCloseCallback(func(win *glfw.Window) {
		// the cycle decides when we close, not glfw
		win.SetShouldClose(false)
		w.dispatcher.Push(glimpse.CloseRequested())
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}

		key := w.keyOf(glfwKey, scancode)
		w.log.Debug("Key just pressed", slog.String("key", key.String()))

		w.dispatcher.Push(glimpse.KeyPressed(key))
	})

	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		size := glimpse.ConvertSize[uint32](glimpse.SizeOf(width, height))
		w.dispatcher.Push(glimpse.Resized(size.XY()))
	})
}

func (w *Window) keyOf(glfwKey glfw.Key, scancode int) glimpse.Key {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		w.log.Debug(
			"Unknown key code",
			slog.Int("scancode", scancode),
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
		)

		return glimpse.KeyUnknown
	}

	return key
}
