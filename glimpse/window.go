package glimpse

// Window is the window-system boundary: it owns the platform window and
// the event source feeding it.
type Window interface {
	// FramebufferSize returns the current size of the drawable area in pixels.
	FramebufferSize() Size[uint32]

	// RequestRedraw schedules an EventRedrawRequested.
	RequestRedraw()

	// Run delivers events to the handler until it returns Exit.
	Run(handler Handler) error

	// Terminate destroys the window and releases the window system.
	Terminate()
}
