package glimpse

import (
	"slices"
	"testing"
)

type collector struct {
	events []Event

	// exit when this event kind is seen
	exitOn *EventKind

	// request redraw through the dispatcher when EventCleared arrives
	dispatcher *Dispatcher
}

func (c *collector) handle(ev Event) ControlFlow {
	c.events = append(c.events, ev)

	if ev.Kind == EventCleared && c.dispatcher != nil {
		c.dispatcher.RequestRedraw()
	}

	if c.exitOn != nil && *c.exitOn == ev.Kind {
		return Exit
	}

	return Continue
}

func kinds(events []Event) []EventKind {
	var result []EventKind
	for _, ev := range events {
		result = append(result, ev.Kind)
	}

	return result
}

func TestDispatchOrder(t *testing.T) {
	var d Dispatcher
	d.Push(KeyPressed(KeyA))
	d.Push(Resized(10, 20))
	d.RequestRedraw()

	var c collector
	if d.DispatchOnce(c.handle) != Continue {
		t.Fatal("expected Continue")
	}

	want := []Event{KeyPressed(KeyA), Resized(10, 20), Cleared(), RedrawRequested()}
	if !slices.Equal(c.events, want) {
		t.Fatalf("got %v, want %v", c.events, want)
	}
}

func TestDispatchWithoutRedraw(t *testing.T) {
	var d Dispatcher

	var c collector
	d.DispatchOnce(c.handle)

	if got := kinds(c.events); !slices.Equal(got, []EventKind{EventCleared}) {
		t.Fatalf("got %v", got)
	}
}

func TestRedrawRequestedDuringClearedIsDeliveredSameRound(t *testing.T) {
	var d Dispatcher

	c := collector{dispatcher: &d}
	d.DispatchOnce(c.handle)
	d.DispatchOnce(c.handle)

	want := []EventKind{EventCleared, EventRedrawRequested, EventCleared, EventRedrawRequested}
	if got := kinds(c.events); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRedrawRequestsAreMerged(t *testing.T) {
	var d Dispatcher
	d.RequestRedraw()
	d.RequestRedraw()

	if !d.RedrawPending() {
		t.Fatal("expected pending redraw")
	}

	var c collector
	d.DispatchOnce(c.handle)

	want := []EventKind{EventCleared, EventRedrawRequested}
	if got := kinds(c.events); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if d.RedrawPending() {
		t.Fatal("redraw still pending")
	}
}

func TestExitStopsDispatch(t *testing.T) {
	var d Dispatcher
	d.Push(KeyPressed(KeyEscape))
	d.Push(CloseRequested())
	d.Push(KeyPressed(KeyA))
	d.RequestRedraw()

	exitOn := EventCloseRequested
	c := collector{exitOn: &exitOn}

	if d.DispatchOnce(c.handle) != Exit {
		t.Fatal("expected Exit")
	}

	want := []EventKind{EventKeyPressed, EventCloseRequested}
	if got := kinds(c.events); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if !d.Exited() || d.RedrawPending() {
		t.Fatal("dispatcher should be exited without pending redraw")
	}

	// nothing is delivered after exit
	d.Push(CloseRequested())
	d.RequestRedraw()

	if d.DispatchOnce(c.handle) != Exit {
		t.Fatal("expected Exit")
	}

	if len(c.events) != 2 {
		t.Fatalf("events delivered after exit: %v", c.events[2:])
	}
}

func TestExitOnRedraw(t *testing.T) {
	var d Dispatcher
	d.RequestRedraw()

	exitOn := EventRedrawRequested
	c := collector{exitOn: &exitOn}

	if d.DispatchOnce(c.handle) != Exit {
		t.Fatal("expected Exit")
	}

	if !d.Exited() {
		t.Fatal("expected dispatcher to be exited")
	}
}

func TestEventsPushedByHandlerAreDeliveredNextRound(t *testing.T) {
	var d Dispatcher
	d.Push(KeyPressed(KeyA))

	var delivered []EventKind
	handler := func(ev Event) ControlFlow {
		delivered = append(delivered, ev.Kind)
		if ev.Kind == EventKeyPressed && ev.Key == KeyA {
			d.Push(Resized(1, 1))
		}

		return Continue
	}

	d.DispatchOnce(handler)
	d.DispatchOnce(handler)

	want := []EventKind{EventKeyPressed, EventCleared, EventResized, EventCleared}
	if !slices.Equal(delivered, want) {
		t.Fatalf("got %v, want %v", delivered, want)
	}
}
