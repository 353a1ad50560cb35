package orion

//go:generate go tool stringer -type=State

// State is the control flag of the frame cycle. It is owned by whoever
// drives the cycle and passed through every call to Cycle.Handle.
type State uint8

const (
	Running State = iota
	Terminated
)
