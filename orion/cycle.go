package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/clearwindow/glimpse"
)

const (
	DefaultMaxAcquireRetries   = 3
	DefaultMaxTextureDimension = 8192
)

// RedrawTarget is the part of a window the cycle talks back to.
type RedrawTarget interface {
	FramebufferSize() glimpse.Size[uint32]
	RequestRedraw()
}

type Options struct {
	// Color to clear each frame to, defaults to DefaultClearColor
	ClearColor *Color

	// Reconfigure the surface on the next frame after the window was resized.
	// Without this, the surface keeps its size until acquiring an image fails.
	ReconfigureOnResize bool

	// Number of consecutive recoverable acquire failures before giving up.
	// Defaults to DefaultMaxAcquireRetries.
	MaxAcquireRetries int

	// Upper bound for the surface size, defaults to DefaultMaxTextureDimension.
	MaxTextureDimension uint32

	Log *slog.Logger

	// used to timestamp frames, defaults to time.Now
	now func() time.Time
}

// Cycle is the per frame event handler. It clears the surface on every
// redraw request and terminates on close or Escape.
type Cycle struct {
	window RedrawTarget
	gpu    GPU
	log    *slog.Logger

	clearColor          Color
	reconfigureOnResize bool
	maxAcquireRetries   int
	maxTextureDimension uint32
	now                 func() time.Time

	configured    bool
	surfaceSize   glimpse.Size[uint32]
	resizePending bool
	failures      int

	stats FrameStats
}

// NewCycle creates the cycle and configures the surface for the current
// framebuffer size of the window.
func NewCycle(window RedrawTarget, gpu GPU, opts Options) (*Cycle, error) {
	c := &Cycle{
		window:              window,
		gpu:                 gpu,
		log:                 opts.Log,
		clearColor:          DefaultClearColor,
		reconfigureOnResize: opts.ReconfigureOnResize,
		maxAcquireRetries:   opts.MaxAcquireRetries,
		maxTextureDimension: opts.MaxTextureDimension,
		now:                 opts.now,
	}

	if opts.ClearColor != nil {
		c.clearColor = *opts.ClearColor
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	if c.maxAcquireRetries <= 0 {
		c.maxAcquireRetries = DefaultMaxAcquireRetries
	}

	if c.maxTextureDimension == 0 {
		c.maxTextureDimension = DefaultMaxTextureDimension
	}

	if c.now == nil {
		c.now = time.Now
	}

	// a minimized window is configured later, on its first visible frame
	if size := window.FramebufferSize(); !size.Empty() {
		if err := c.configure(size); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// SurfaceSize returns the size the surface was last configured with.
func (c *Cycle) SurfaceSize() glimpse.Size[uint32] {
	return c.surfaceSize
}

// Stats returns the frame statistics collected so far.
func (c *Cycle) Stats() FrameStats {
	return c.stats
}

// Handle processes a single event and returns the new state. A non nil
// error is always accompanied by the Terminated state.
func (c *Cycle) Handle(state State, ev glimpse.Event) (State, error) {
	if state == Terminated {
		return Terminated, nil
	}

	switch ev.Kind {
	case glimpse.EventCloseRequested:
		c.log.Info("Window close requested")
		return Terminated, nil

	case glimpse.EventKeyPressed:
		if ev.Key == glimpse.KeyEscape {
			c.log.Info("Escape pressed")
			return Terminated, nil
		}

	case glimpse.EventCleared:
		c.window.RequestRedraw()

	case glimpse.EventRedrawRequested:
		if err := c.Draw(); err != nil {
			return Terminated, err
		}

	case glimpse.EventResized:
		c.log.Debug("Window resized",
			slog.Int("width", int(ev.Size.Width)),
			slog.Int("height", int(ev.Size.Height)),
		)

		if c.reconfigureOnResize {
			c.resizePending = true
		}
	}

	return Running, nil
}

// Draw clears the next surface image and presents it.
func (c *Cycle) Draw() error {
	size := c.window.FramebufferSize()
	if size.Empty() {
		c.log.Debug("Skip frame, framebuffer is empty")
		return nil
	}

	if !c.configured || c.resizePending {
		if err := c.configure(size); err != nil {
			return err
		}
	}

	image, err := c.gpu.Surface.Acquire()
	if err != nil {
		return c.acquireFailed(err)
	}

	c.failures = 0

	imageGuard := NewReleaseGuard(image)
	defer imageGuard.Release()

	view, err := image.CreateView()
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	defer view.Release()

	buf, err := c.recordClear(view)
	if err != nil {
		return err
	}

	defer buf.Release()

	c.gpu.Queue.Submit(buf)

	if err := image.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	// the surface owns the image again
	imageGuard.Keep()

	if report, ok := c.stats.Record(c.now()); ok {
		c.log.Debug("Frame stats", slog.Any("window", report))
	}

	return nil
}

func (c *Cycle) recordClear(view View) (CommandBuffer, error) {
	enc, err := c.gpu.Device.CreateCommandEncoder("Render Encoder")
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass, err := enc.BeginRenderPass(RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []ColorAttachment{
			{
				View:       view,
				LoadOp:     LoadOpClear,
				StoreOp:    StoreOpStore,
				ClearValue: c.clearColor,
			},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("begin render pass: %w", err)
	}

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	// nothing to draw, the pass only clears
	if err := pass.End(); err != nil {
		return nil, fmt.Errorf("end render pass: %w", err)
	}

	passGuard.Release()

	buf, err := enc.Finish("Render Commands")
	if err != nil {
		return nil, fmt.Errorf("finish command encoder: %w", err)
	}

	return buf, nil
}

func (c *Cycle) acquireFailed(err error) error {
	status := StatusUnknown

	var acquireErr *AcquireError
	if errors.As(err, &acquireErr) {
		status = acquireErr.Status
	}

	if status.Fatal() {
		return fmt.Errorf("acquire surface image: %w", err)
	}

	c.failures += 1
	if c.failures > c.maxAcquireRetries {
		return fmt.Errorf("acquire surface image after %d attempts: %w", c.failures, err)
	}

	c.log.Warn("Surface image not available, reconfiguring surface",
		slog.String("status", status.String()),
		slog.Int("attempt", c.failures),
		slog.Any("err", err),
	)

	size := c.window.FramebufferSize()
	if size.Empty() {
		return nil
	}

	// the frame is skipped, the next redraw tries again
	return c.configure(size)
}

func (c *Cycle) configure(size glimpse.Size[uint32]) error {
	size = size.Clamp(1, c.maxTextureDimension)

	c.log.Info("Configure surface",
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	if err := c.gpu.Surface.Configure(size.Width, size.Height); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}

	c.configured = true
	c.surfaceSize = size
	c.resizePending = false

	return nil
}
