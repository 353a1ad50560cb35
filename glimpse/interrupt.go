package glimpse

import (
	"os"
	"os/signal"
)

// Interrupts notes process signals for an event loop running on another
// goroutine. Each signal calls wake, which should unblock the event loop.
type Interrupts struct {
	signals chan os.Signal
	pending chan struct{}
	done    chan struct{}
	wake    func()
}

// NotifyInterrupts starts forwarding the given signals, os.Interrupt if none.
func NotifyInterrupts(wake func(), sig ...os.Signal) *Interrupts {
	if len(sig) == 0 {
		sig = []os.Signal{os.Interrupt}
	}

	in := newInterrupts(wake)
	signal.Notify(in.signals, sig...)

	go in.forward()

	return in
}

func newInterrupts(wake func()) *Interrupts {
	return &Interrupts{
		signals: make(chan os.Signal, 1),
		pending: make(chan struct{}, 1),
		done:    make(chan struct{}),
		wake:    wake,
	}
}

func (in *Interrupts) forward() {
	defer close(in.done)

	for range in.signals {
		select {
		case in.pending <- struct{}{}:
		default:
		}

		in.wake()
	}
}

// Pending reports and clears a signal received since the last call.
func (in *Interrupts) Pending() bool {
	select {
	case <-in.pending:
		return true
	default:
		return false
	}
}

// Stop ends the forwarding. wake is not called anymore once Stop returned.
func (in *Interrupts) Stop() {
	signal.Stop(in.signals)
	close(in.signals)

	<-in.done
}
