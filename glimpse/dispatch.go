package glimpse

// ControlFlow is returned by a Handler to tell the event source whether
// it should keep dispatching events.
type ControlFlow uint8

const (
	Continue ControlFlow = iota
	Exit
)

// Handler reacts to a single event.
type Handler func(ev Event) ControlFlow

// Dispatcher collects the events a platform reports while polling and
// delivers them in a fixed order: queued events in arrival order, then
// EventCleared, then EventRedrawRequested if a redraw was requested.
//
// Dispatcher is not safe for concurrent use, it lives on the thread
// owning the window.
type Dispatcher struct {
	pending []Event
	redraw  bool
	exited  bool
}

// Push queues an event for the next call to DispatchOnce.
func (d *Dispatcher) Push(ev Event) {
	if d.exited {
		return
	}

	d.pending = append(d.pending, ev)
}

// RequestRedraw asks for an EventRedrawRequested at the end of the
// current or next dispatch round. Multiple requests are merged.
func (d *Dispatcher) RequestRedraw() {
	d.redraw = true
}

// RedrawPending returns true if the next round will deliver a redraw.
// Event sources use this to decide between polling and waiting.
func (d *Dispatcher) RedrawPending() bool {
	return d.redraw && !d.exited
}

// Exited returns true once a handler returned Exit.
func (d *Dispatcher) Exited() bool {
	return d.exited
}

// DispatchOnce runs one dispatch round. After a handler returned Exit no
// further events are delivered, in this round or any later one.
func (d *Dispatcher) DispatchOnce(handler Handler) ControlFlow {
	if d.exited {
		return Exit
	}

	// the handler may push new events while we are iterating,
	// those are delivered in the next round
	pending := d.pending
	d.pending = nil

	for _, ev := range pending {
		if d.deliver(handler, ev) == Exit {
			return Exit
		}
	}

	if d.deliver(handler, Cleared()) == Exit {
		return Exit
	}

	if d.redraw {
		d.redraw = false

		if d.deliver(handler, RedrawRequested()) == Exit {
			return Exit
		}
	}

	return Continue
}

func (d *Dispatcher) deliver(handler Handler, ev Event) ControlFlow {
	if handler(ev) == Exit {
		d.exited = true
		d.pending = nil
		d.redraw = false
		return Exit
	}

	return Continue
}
