package core

// RunState is the simulation's run/pause mode.
type RunState uint8

const (
	// Running advances the board on the tick cadence.
	Running RunState = iota
	// Paused advances the board only on explicit step commands.
	Paused
)

// String returns a lowercase label suitable for the status readout.
func (s RunState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// RunControl is a two-slot run-state machine. Toggling writes the pending
// slot only; Apply commits it at a single point per cycle (frame start),
// so everything inside a cycle sees the state as of the cycle's start.
// Status display reads the pending slot to avoid a one-cycle lag in
// user-visible feedback.
type RunControl struct {
	current RunState
	pending RunState
}

// NewRunControl starts in the Running state.
func NewRunControl() *RunControl { return &RunControl{} }

// Toggle flips the pending state between Running and Paused.
func (r *RunControl) Toggle() {
	if r.pending == Running {
		r.pending = Paused
	} else {
		r.pending = Running
	}
}

// Apply commits the pending state. Call exactly once, at frame start.
func (r *RunControl) Apply() { r.current = r.pending }

// Effective returns the state in force for the current cycle.
func (r *RunControl) Effective() RunState { return r.current }

// Pending returns the state that will hold from the next cycle on.
func (r *RunControl) Pending() RunState { return r.pending }
