//go:build js

// Package browser implements glimpse.Window on top of a html canvas.
package browser

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearwindow/glimpse"
)

type Window struct {
	canvas     js.Value
	dispatcher glimpse.Dispatcher
	size       glimpse.Size[uint32]
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(title string) (*Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &Window{canvas: canvas}
	win.size = win.resizeCanvas()

	// first frame is drawn right away
	win.dispatcher.RequestRedraw()

	return win, nil
}

func (w *Window) FramebufferSize() glimpse.Size[uint32] {
	return w.size
}

func (w *Window) RequestRedraw() {
	w.dispatcher.RequestRedraw()
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: w.canvas}
}

func (w *Window) Terminate() {
	// do nothing
}

func (w *Window) Run(handler glimpse.Handler) error {
	done := make(chan struct{})

	onKeyDown := js.FuncOf(func(this js.Value, args []js.Value) any {
		if args[0].Get("key").String() == "Escape" {
			w.dispatcher.Push(glimpse.KeyPressed(glimpse.KeyEscape))
		}

		return nil
	})

	defer onKeyDown.Release()

	js.Global().Call("addEventListener", "keydown", onKeyDown)
	defer js.Global().Call("removeEventListener", "keydown", onKeyDown)

	var onFrame js.Func
	onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if size := w.resizeCanvas(); size != w.size {
			w.size = size
			w.dispatcher.Push(glimpse.Resized(size.XY()))
		}

		if w.dispatcher.DispatchOnce(handler) == glimpse.Exit {
			close(done)
			return nil
		}

		js.Global().Call("requestAnimationFrame", onFrame)
		return nil
	})

	defer onFrame.Release()

	js.Global().Call("requestAnimationFrame", onFrame)

	<-done

	return nil
}

func (w *Window) resizeCanvas() glimpse.Size[uint32] {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	width := uint32(viewWidth * ratio)
	height := uint32(viewHeight * ratio)

	w.canvas.Set("width", width)
	w.canvas.Set("height", height)

	return glimpse.SizeOf(width, height)
}
