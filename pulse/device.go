package pulse

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// SetLogLevel sets the log level of the native webgpu implementation.
// Unknown or empty names leave the level untouched.
func SetLogLevel(name string) {
	switch strings.ToUpper(name) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// PowerPreference maps "low" and "high" to the matching adapter power
// preference. Anything else leaves the choice to the platform.
func PowerPreference(name string) wgpu.PowerPreference {
	switch strings.ToLower(name) {
	case "low":
		return wgpu.PowerPreferenceLowPower
	case "high":
		return wgpu.PowerPreferenceHighPerformance
	default:
		return wgpu.PowerPreferenceUndefined
	}
}

type Options struct {
	PowerPreference      wgpu.PowerPreference
	ForceFallbackAdapter bool

	Log *slog.Logger
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

// New negotiates an adapter and device able to render to the surface
// described by sd. This blocks until the driver answered.
func New(sd *wgpu.SurfaceDescriptor, opts Options) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	// get a Device with the default settings, no optional features
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	log.Info("Webgpu device ready")

	return st, nil
}

// Probe checks if webgpu can provide an adapter at all.
func Probe(opts Options) error {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})

	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}

	adapter.Release()

	return nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
