package orion

// The interfaces in this file describe the small part of a graphics backend
// the frame cycle needs. The webgpu implementation lives in package pulse,
// an OpenGL one in pulse/opengl.

// Surface is the drawing surface bound to a window. It hands out one
// presentable image per frame.
type Surface interface {
	// Acquire returns the next presentable image. Backends report
	// status failures as *AcquireError.
	Acquire() (Image, error)

	// Configure (re)configures the surface for the given framebuffer size.
	Configure(width, height uint32) error
}

// Image is a presentable image acquired for exactly one frame.
type Image interface {
	CreateView() (View, error)

	// Present hands the image back to the surface. The image must not
	// be used or released afterwards.
	Present() error

	// Release drops an image that was not presented.
	Release()
}

// View is a transient view onto an Image, used as render pass target.
type View interface {
	Release()
}

type Device interface {
	CreateCommandEncoder(label string) (CommandEncoder, error)
}

type CommandEncoder interface {
	BeginRenderPass(desc RenderPassDescriptor) (RenderPass, error)
	Finish(label string) (CommandBuffer, error)
	Release()
}

type RenderPass interface {
	End() error
	Release()
}

type CommandBuffer interface {
	Release()
}

// Queue executes command buffers in the order they are submitted.
type Queue interface {
	Submit(buffers ...CommandBuffer)
}

// GPU bundles what the frame cycle renders with.
type GPU struct {
	Surface Surface
	Device  Device
	Queue   Queue
}

type LoadOp uint8

const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
)

type StoreOp uint8

const (
	StoreOpStore StoreOp = iota
	StoreOpDiscard
)

type ColorAttachment struct {
	View       View
	LoadOp     LoadOp
	StoreOp    StoreOp
	ClearValue Color
}

// RenderPassDescriptor describes a render pass. There is no depth or
// stencil attachment, nothing drawn by the cycle needs one.
type RenderPassDescriptor struct {
	Label            string
	ColorAttachments []ColorAttachment
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate unless Keep was called before.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
