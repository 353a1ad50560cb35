//go:build !js

// Package opengl renders the frame cycle with an OpenGL 4.1 core context.
// Commands are recorded into a list when encoding and executed on the
// context when the queue submits them, in submission order.
package opengl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/oliverbestmann/clearwindow/orion"
)

// Window is the part of a glfw window the backend needs.
type Window interface {
	MakeContextCurrent()
	SwapBuffers()
}

type Context struct {
	window Window
	log    *slog.Logger

	// incremented for every acquired image
	frame uint64
}

var _ orion.Surface = (*Context)(nil)

// New makes the context of the window current and loads the OpenGL functions.
func New(window Window, log *slog.Logger) (*Context, error) {
	if log == nil {
		log = slog.Default()
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	log.Info("OpenGL context ready", slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	return &Context{window: window, log: log}, nil
}

func (c *Context) GPU() orion.GPU {
	return orion.GPU{Surface: c, Device: c, Queue: c}
}

func (c *Context) Configure(width, height uint32) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	return checkError("viewport")
}

// Acquire returns the default framebuffer. It is a new image value for every
// frame, the swap chain behind it is owned by the window system.
func (c *Context) Acquire() (orion.Image, error) {
	c.frame++
	return &image{ctx: c, frame: c.frame}, nil
}

func (c *Context) CreateCommandEncoder(label string) (orion.CommandEncoder, error) {
	return &encoder{label: label}, nil
}

func (c *Context) Submit(buffers ...orion.CommandBuffer) {
	for _, buf := range buffers {
		cmds, ok := buf.(*commandBuffer)
		if !ok {
			panic(fmt.Sprintf("command buffer %T was not recorded by OpenGL", buf))
		}

		for _, cmd := range cmds.commands {
			cmd()
		}

		if err := checkError(cmds.label); err != nil {
			c.log.Warn("Command buffer failed", slog.Any("err", err))
		}
	}

	gl.Flush()
}

type image struct {
	ctx       *Context
	frame     uint64
	presented bool
}

func (i *image) CreateView() (orion.View, error) {
	return &view{image: i}, nil
}

func (i *image) Present() error {
	if i.presented {
		return errors.New("image was already presented")
	}

	i.presented = true
	i.ctx.window.SwapBuffers()
	return nil
}

func (i *image) Release() {}

type view struct {
	image *image
}

func (v *view) Release() {}

type encoder struct {
	label    string
	commands []func()
	finished bool
}

func (e *encoder) BeginRenderPass(desc orion.RenderPassDescriptor) (orion.RenderPass, error) {
	if e.finished {
		return nil, errors.New("encoder is already finished")
	}

	for _, att := range desc.ColorAttachments {
		if _, ok := att.View.(*view); !ok {
			return nil, fmt.Errorf("color attachment %T is not an OpenGL view", att.View)
		}

		if att.LoadOp == orion.LoadOpClear {
			r, g, b, a := att.ClearValue.Components()

			e.commands = append(e.commands, func() {
				gl.ClearColor(float32(r), float32(g), float32(b), float32(a))
				gl.Clear(gl.COLOR_BUFFER_BIT)
			})
		}
	}

	return renderPass{}, nil
}

func (e *encoder) Finish(label string) (orion.CommandBuffer, error) {
	if e.finished {
		return nil, errors.New("encoder is already finished")
	}

	e.finished = true

	return &commandBuffer{label: label, commands: e.commands}, nil
}

func (e *encoder) Release() {
	e.commands = nil
}

// renderPass has nothing to do, clearing is recorded when the pass begins.
type renderPass struct{}

func (renderPass) End() error { return nil }
func (renderPass) Release()   {}

type commandBuffer struct {
	label    string
	commands []func()
}

func (b *commandBuffer) Release() {
	b.commands = nil
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: OpenGL error 0x%x", op, code)
	}

	return nil
}
