package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearwindow/orion"
)

type device struct {
	device *wgpu.Device
}

func (d device) CreateCommandEncoder(label string) (orion.CommandEncoder, error) {
	enc, err := d.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, err
	}

	return &encoder{enc: enc}, nil
}

type encoder struct {
	enc *wgpu.CommandEncoder
}

func (e *encoder) BeginRenderPass(desc orion.RenderPassDescriptor) (orion.RenderPass, error) {
	attachments := make([]wgpu.RenderPassColorAttachment, 0, len(desc.ColorAttachments))

	for _, att := range desc.ColorAttachments {
		view, ok := att.View.(*textureView)
		if !ok {
			return nil, fmt.Errorf("color attachment %T is not a webgpu texture view", att.View)
		}

		attachments = append(attachments, wgpu.RenderPassColorAttachment{
			View:       view.view,
			LoadOp:     loadOpOf(att.LoadOp),
			StoreOp:    storeOpOf(att.StoreOp),
			ClearValue: colorOf(att.ClearValue),
		})
	}

	pass := e.enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: attachments,
	})

	return renderPass{pass: pass}, nil
}

var _ orion.RenderPass = renderPass{}

type renderPass struct {
	pass *wgpu.RenderPassEncoder
}

func (p renderPass) Release() {
	p.pass.Release()
}

func (e *encoder) Finish(label string) (orion.CommandBuffer, error) {
	buf, err := e.enc.Finish(&wgpu.CommandBufferDescriptor{Label: label})
	if err != nil {
		return nil, err
	}

	return buf, nil
}

func (e *encoder) Release() {
	e.enc.Release()
}

type queue struct {
	queue *wgpu.Queue
}

func (q queue) Submit(buffers ...orion.CommandBuffer) {
	wgpuBuffers := make([]*wgpu.CommandBuffer, 0, len(buffers))

	for _, buf := range buffers {
		wgpuBuf, ok := buf.(*wgpu.CommandBuffer)
		if !ok {
			panic(fmt.Sprintf("command buffer %T was not recorded by webgpu", buf))
		}

		wgpuBuffers = append(wgpuBuffers, wgpuBuf)
	}

	q.queue.Submit(wgpuBuffers...)
}

func colorOf(c orion.Color) wgpu.Color {
	r, g, b, a := c.Components()
	return wgpu.Color{R: r, G: g, B: b, A: a}
}

func loadOpOf(op orion.LoadOp) wgpu.LoadOp {
	if op == orion.LoadOpClear {
		return wgpu.LoadOpClear
	}

	return wgpu.LoadOpLoad
}

func storeOpOf(op orion.StoreOp) wgpu.StoreOp {
	if op == orion.StoreOpDiscard {
		return wgpu.StoreOpDiscard
	}

	return wgpu.StoreOpStore
}
