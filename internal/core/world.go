package core

import (
	"log"
	"time"
)

// World owns the simulation state — grid, metadata, run control, signal
// bus, and cadence ticker — and is the only mutation surface external
// input may use. It is single-threaded: the host drives one frame at a
// time in a fixed order (BeginFrame, input mutations, Tick, Advance),
// and that linear order is what stands in for synchronization.
type World struct {
	grid   *Grid
	meta   Metadata
	run    *RunControl
	bus    *SignalBus
	ticker *Ticker

	seeder Seeder
	seed   int64
}

// NewWorld builds a world of the given size, seeds it with the pattern,
// and raises both redraw flags so the first frame paints.
func NewWorld(w, h int, seeder Seeder, seed int64, interval time.Duration) *World {
	wd := &World{
		grid:   NewGrid(w, h),
		run:    NewRunControl(),
		bus:    NewSignalBus(),
		ticker: NewTicker(interval),
		seeder: seeder,
		seed:   seed,
	}
	if wd.seeder != nil {
		wd.seeder(wd.grid, seed)
	}
	wd.bus.Raise(SignalBoardRedraw)
	wd.bus.Raise(SignalStatusRedraw)
	return wd
}

// Grid exposes the board. Renderers must treat it as read-only; all
// writes go through the World so the dirty flags stay truthful.
func (w *World) Grid() *Grid { return w.grid }

// Iterations returns the number of completed transitions.
func (w *World) Iterations() int { return w.meta.Iterations }

// Effective returns the run state in force for this cycle.
func (w *World) Effective() RunState { return w.run.Effective() }

// Pending returns the run state that takes effect next cycle. Status
// display reads this one.
func (w *World) Pending() RunState { return w.run.Pending() }

// Signals exposes the dirty-flag bus so render consumers can drain the
// redraw flags after the frame's producers have run.
func (w *World) Signals() *SignalBus { return w.bus }

// BeginFrame commits a pending run-state change. Call first each frame.
func (w *World) BeginFrame() { w.run.Apply() }

// ToggleCell flips one cell in response to user input. Coordinates must
// already be validated against the board bounds by the input layer.
func (w *World) ToggleCell(x, y int) {
	w.grid.Toggle(x, y)
	w.bus.Raise(SignalBoardRedraw)
	w.bus.Raise(SignalStatusRedraw)
}

// ClearBoard kills every cell. The iteration counter is board-independent
// bookkeeping and is deliberately left alone.
func (w *World) ClearBoard() {
	w.grid.Clear()
	w.bus.Raise(SignalBoardRedraw)
	w.bus.Raise(SignalStatusRedraw)
}

// ToggleRunning requests a run/pause flip that takes effect next frame.
func (w *World) ToggleRunning() {
	w.run.Toggle()
	w.bus.Raise(SignalStatusRedraw)
}

// RequestStep asks for a single advance while paused. While running it is
// a no-op: the cadence already supplies advances.
func (w *World) RequestStep() {
	if w.run.Effective() == Running {
		log.Printf("core: step ignored while running")
		return
	}
	w.bus.Raise(SignalAdvance)
}

// Tick runs the cadence scheduler. The ticker fires in both run states so
// a long pause cannot bank a burst of advances, but only the Running
// state turns a firing into an advance request.
func (w *World) Tick() {
	fired := w.ticker.Fire()
	if fired && w.run.Effective() == Running {
		w.bus.Raise(SignalAdvance)
	}
}

// Advance drains the advance flag and, if it was raised, applies exactly
// one transition: full neighbor count first, then the in-place rewrite.
// Without a raised flag this is a no-op that touches neither the grid
// nor the iteration counter.
func (w *World) Advance() {
	if !w.bus.Drain(SignalAdvance) {
		return
	}
	counts := CountNeighbors(w.grid)
	Transition(w.grid, counts, &w.meta)
	w.bus.Raise(SignalBoardRedraw)
	w.bus.Raise(SignalStatusRedraw)
}

// Reset clears the board, reseeds the configured pattern, and zeroes the
// iteration counter. This is the one operation that resets the clock.
func (w *World) Reset(seed int64) {
	w.seed = seed
	w.grid.Clear()
	if w.seeder != nil {
		w.seeder(w.grid, seed)
	}
	w.meta.Iterations = 0
	w.bus.Raise(SignalBoardRedraw)
	w.bus.Raise(SignalStatusRedraw)
}
