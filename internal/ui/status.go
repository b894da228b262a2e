package ui

import (
	"fmt"

	"gridlife/internal/core"
)

// FormatStatus builds the status readout. The run state shown is the
// pending one, so a pause pressed this frame reads back immediately
// instead of one cycle late.
func FormatStatus(iterations, alive int, pending core.RunState) string {
	return fmt.Sprintf("generation %d | alive %d | %s", iterations, alive, pending)
}

// ControlsHint is the static second line of the status bar.
const ControlsHint = "click: toggle cell  space: pause  n: step  c: clear  r: reseed  q: quit"
