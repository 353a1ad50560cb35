package orion

import (
	"fmt"

	"github.com/oliverbestmann/clearwindow/glimpse"
)

// Run drives the cycle with the events of the window until it terminates.
// It returns the error that terminated the cycle, if any.
func Run(win glimpse.Window, cycle *Cycle) error {
	state := Running

	var cycleErr error

	err := win.Run(func(ev glimpse.Event) glimpse.ControlFlow {
		state, cycleErr = cycle.Handle(state, ev)
		if state == Terminated {
			return glimpse.Exit
		}

		return glimpse.Continue
	})

	if err != nil {
		return fmt.Errorf("run event loop: %w", err)
	}

	return cycleErr
}
