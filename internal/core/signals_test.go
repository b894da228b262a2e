package core

import "testing"

func TestDrainClearsFlag(t *testing.T) {
	bus := NewSignalBus()
	bus.Raise(SignalBoardRedraw)

	if !bus.Drain(SignalBoardRedraw) {
		t.Fatalf("drain should observe the raise")
	}
	if bus.Drain(SignalBoardRedraw) {
		t.Fatalf("second drain should observe nothing")
	}
}

func TestRepeatedRaisesCollapse(t *testing.T) {
	bus := NewSignalBus()
	bus.Raise(SignalAdvance)
	bus.Raise(SignalAdvance)
	bus.Raise(SignalAdvance)

	if !bus.Drain(SignalAdvance) {
		t.Fatalf("drain should observe the raises")
	}
	if bus.Drain(SignalAdvance) {
		t.Fatalf("raises must collapse to a single drain")
	}
}

func TestSignalsAreIndependent(t *testing.T) {
	bus := NewSignalBus()
	bus.Raise(SignalStatusRedraw)

	if bus.Drain(SignalBoardRedraw) {
		t.Fatalf("board flag should be clear")
	}
	if bus.Drain(SignalAdvance) {
		t.Fatalf("advance flag should be clear")
	}
	if !bus.Drain(SignalStatusRedraw) {
		t.Fatalf("status flag should be raised")
	}
}
