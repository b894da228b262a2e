package ui

import (
	"testing"

	"gridlife/internal/core"
)

func TestFormatStatus(t *testing.T) {
	got := FormatStatus(12, 34, core.Paused)
	want := "generation 12 | alive 34 | paused"
	if got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}

	got = FormatStatus(0, 0, core.Running)
	want = "generation 0 | alive 0 | running"
	if got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}
}
