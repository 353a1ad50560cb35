package pulse

import (
	"errors"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearwindow/orion"
)

// View is the drawing surface of a Context. It implements orion.Surface.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

var _ orion.Surface = (*View)(nil)

// NewView prepares the default surface configuration of the adapter: the
// preferred format, fifo presentation and the first supported alpha mode.
// The surface is not configured until Configure is called.
func NewView(ctx *Context, log *slog.Logger) (*View, error) {
	if log == nil {
		log = slog.Default()
	}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	log.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.New("surface is not supported by the adapter")
	}

	st := &View{
		Context: ctx,

		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      caps.Formats[0],
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   caps.AlphaModes[0],
		},
	}

	return st, nil
}

// GPU bundles the view with the device and queue of its context.
func (vs *View) GPU() orion.GPU {
	return orion.GPU{
		Surface: vs,
		Device:  device{vs.Device},
		Queue:   queue{vs.Queue},
	}
}

func (vs *View) Configure(width, height uint32) error {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)
	return nil
}

func (vs *View) Acquire() (orion.Image, error) {
	texture, err := currentTexture(vs.Surface)
	if err != nil {
		return nil, err
	}

	return &image{surface: vs.Surface, texture: texture}, nil
}

type image struct {
	surface *wgpu.Surface
	texture *wgpu.Texture
}

func (i *image) CreateView() (orion.View, error) {
	view, err := i.texture.CreateView(nil)
	if err != nil {
		return nil, err
	}

	return &textureView{view: view}, nil
}

func (i *image) Present() error {
	i.surface.Present()

	// we do not need to release the texture if present was successful
	i.texture = nil

	return nil
}

func (i *image) Release() {
	if i.texture != nil {
		i.texture.Release()
		i.texture = nil
	}
}

type textureView struct {
	view *wgpu.TextureView
}

func (v *textureView) Release() {
	v.view.Release()
}
