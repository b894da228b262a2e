package core

import (
	"testing"
	"time"
)

func newTestWorld(t *testing.T, seeder Seeder) *World {
	t.Helper()
	w := NewWorld(5, 5, seeder, 0, time.Second)
	// Constructor raises both redraw flags for the first frame; drain
	// them so scenarios observe only their own raises.
	w.Signals().Drain(SignalBoardRedraw)
	w.Signals().Drain(SignalStatusRedraw)
	return w
}

func pause(w *World) {
	w.ToggleRunning()
	w.BeginFrame()
	w.Signals().Drain(SignalStatusRedraw)
}

func TestClearWhilePausedKeepsIterations(t *testing.T) {
	w := newTestWorld(t, seedBlinker)
	pause(w)

	w.RequestStep()
	w.Advance()
	if w.Iterations() != 1 {
		t.Fatalf("iterations = %d, want 1", w.Iterations())
	}
	w.Signals().Drain(SignalBoardRedraw)
	w.Signals().Drain(SignalStatusRedraw)

	w.ClearBoard()
	if w.Grid().AliveCount() != 0 {
		t.Fatalf("alive count = %d after clear, want 0", w.Grid().AliveCount())
	}
	if w.Iterations() != 1 {
		t.Fatalf("clear changed iterations to %d", w.Iterations())
	}
	if !w.Signals().Drain(SignalBoardRedraw) {
		t.Fatalf("clear did not raise the board redraw flag")
	}
	if !w.Signals().Drain(SignalStatusRedraw) {
		t.Fatalf("clear did not raise the status redraw flag")
	}
	if w.Signals().Drain(SignalBoardRedraw) {
		t.Fatalf("board redraw raised more than once")
	}
}

func TestManualStepWhilePaused(t *testing.T) {
	w := newTestWorld(t, seedBlinker)
	pause(w)

	w.RequestStep()
	w.Advance()
	if w.Iterations() != 1 {
		t.Fatalf("iterations = %d after one step, want 1", w.Iterations())
	}
	if !w.Grid().Alive(1, 2) || !w.Grid().Alive(3, 2) {
		t.Fatalf("blinker did not rotate on manual step")
	}

	// No step requested: Advance must be a no-op.
	w.Advance()
	if w.Iterations() != 1 {
		t.Fatalf("iterations = %d without a step request, want 1", w.Iterations())
	}
}

func TestStepWhileRunningIsIgnored(t *testing.T) {
	w := newTestWorld(t, seedBlinker)

	w.RequestStep()
	if w.Signals().Drain(SignalAdvance) {
		t.Fatalf("step while running raised the advance flag")
	}
	w.Advance()
	if w.Iterations() != 0 {
		t.Fatalf("step while running advanced the board")
	}
}

func TestToggleCellRaisesBothRedraws(t *testing.T) {
	w := newTestWorld(t, nil)

	w.ToggleCell(1, 1)
	if w.Grid().AliveCount() != 1 {
		t.Fatalf("alive count = %d, want 1", w.Grid().AliveCount())
	}
	if !w.Signals().Drain(SignalBoardRedraw) || !w.Signals().Drain(SignalStatusRedraw) {
		t.Fatalf("toggle did not raise both redraw flags")
	}
}

func TestPauseTakesEffectNextFrame(t *testing.T) {
	w := newTestWorld(t, seedBlinker)

	w.ToggleRunning()
	if w.Effective() != Running {
		t.Fatalf("pause took effect mid-cycle")
	}
	if w.Pending() != Paused {
		t.Fatalf("pending state = %v, want Paused", w.Pending())
	}

	w.BeginFrame()
	if w.Effective() != Paused {
		t.Fatalf("pause did not take effect at frame start")
	}
}

func TestCadenceAdvancesOnlyWhileRunning(t *testing.T) {
	w := newTestWorld(t, seedBlinker)
	clk := &fakeClock{t: time.Unix(0, 0)}
	w.ticker.now = clk.now
	w.ticker.accumulator = 0

	clk.advance(time.Second)
	w.Tick()
	w.Advance()
	if w.Iterations() != 1 {
		t.Fatalf("iterations = %d after cadence fire, want 1", w.Iterations())
	}

	pause(w)
	clk.advance(time.Second)
	w.Tick()
	w.Advance()
	if w.Iterations() != 1 {
		t.Fatalf("cadence advanced the board while paused")
	}
}

func TestResetZeroesIterations(t *testing.T) {
	w := newTestWorld(t, seedBlinker)
	pause(w)

	w.RequestStep()
	w.Advance()
	w.Reset(0)

	if w.Iterations() != 0 {
		t.Fatalf("iterations = %d after reset, want 0", w.Iterations())
	}
	if w.Grid().AliveCount() != 3 {
		t.Fatalf("reset did not reseed the pattern")
	}
	if !w.Signals().Drain(SignalBoardRedraw) || !w.Signals().Drain(SignalStatusRedraw) {
		t.Fatalf("reset did not raise both redraw flags")
	}
}
