package core

// Signal identifies one dirty flag on the bus.
type Signal uint8

const (
	// SignalAdvance requests that the next transition be applied.
	SignalAdvance Signal = iota
	// SignalBoardRedraw marks the board view as stale.
	SignalBoardRedraw
	// SignalStatusRedraw marks the status readout as stale.
	SignalStatusRedraw

	signalCount
)

// SignalBus carries the three dirty flags that decouple "state changed"
// from "state must be reprocessed". Each flag records presence only:
// repeated raises within one cycle collapse into a single drain. Exactly
// one consumer drains each flag per cycle, and the World's linear frame
// order guarantees producers finish raising before any consumer drains.
type SignalBus struct {
	raised [signalCount]bool
}

// NewSignalBus returns a bus with all flags lowered.
func NewSignalBus() *SignalBus { return &SignalBus{} }

// Raise marks the signal as pending. Raising an already-pending signal
// has no further effect.
func (b *SignalBus) Raise(s Signal) { b.raised[s] = true }

// Drain reports whether the signal was raised since the last drain and
// lowers it unconditionally, so a stale flag can never re-trigger.
func (b *SignalBus) Drain(s Signal) bool {
	was := b.raised[s]
	b.raised[s] = false
	return was
}
