package core

import "time"

// DefaultTickInterval is the cadence used when none is configured.
const DefaultTickInterval = 200 * time.Millisecond

// Ticker accumulates wall-clock time and fires once per configured
// interval. It decides only *when* an advance is due; raising the advance
// signal and gating on the run state belong to the World.
type Ticker struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewTicker constructs a Ticker with the given cadence interval.
func NewTicker(interval time.Duration) *Ticker {
	t := &Ticker{now: time.Now}
	t.SetInterval(interval)
	t.accumulator = t.interval
	return t
}

// SetInterval changes the cadence. Safe to call from the main loop.
func (t *Ticker) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	t.interval = interval
}

// Fire reports whether a cadence advance is due. Elapsed time beyond one
// interval carries over so the long-run rate stays steady.
func (t *Ticker) Fire() bool {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator >= t.interval {
		t.accumulator -= t.interval
		return true
	}
	return false
}
