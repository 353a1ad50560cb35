package glimpse

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind identifies what happened in the window system.
type EventKind uint8

const (
	// EventCloseRequested is sent when the user asks to close the window.
	EventCloseRequested EventKind = iota

	// EventKeyPressed is sent once per key press. Repeats and releases are not reported.
	EventKeyPressed

	// EventResized is sent when the framebuffer size of the window changed.
	EventResized

	// EventCleared is sent after all pending platform events of one
	// iteration have been delivered.
	EventCleared

	// EventRedrawRequested is sent after EventCleared if a redraw was requested.
	EventRedrawRequested
)

// Event is a single input or lifecycle event delivered by a Window.
type Event struct {
	Kind EventKind

	// Key is only set for EventKeyPressed
	Key Key

	// Size is only set for EventResized, it holds the new framebuffer size
	Size Size[uint32]
}

func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}

func KeyPressed(key Key) Event {
	return Event{Kind: EventKeyPressed, Key: key}
}

func Resized(width, height uint32) Event {
	return Event{Kind: EventResized, Size: SizeOf(width, height)}
}

func RedrawRequested() Event {
	return Event{Kind: EventRedrawRequested}
}

func Cleared() Event {
	return Event{Kind: EventCleared}
}
