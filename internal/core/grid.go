package core

import "fmt"

// Grid stores a 2D board of cell liveness in row-major order. It is the
// single source of truth for the board: renderers get read access only,
// and every mutator keeps the alive-cell cache consistent.
type Grid struct {
	w, h  int
	cells []bool
	alive int
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// AliveCount returns the cached number of live cells.
func (g *Grid) AliveCount() int { return g.alive }

// InBounds reports whether (x, y) addresses a cell on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Alive reports the liveness of cell (x, y).
func (g *Grid) Alive(x, y int) bool { return g.cells[g.index(x, y)] }

// Toggle flips cell (x, y) and returns its new liveness.
func (g *Grid) Toggle(x, y int) bool {
	i := g.index(x, y)
	g.cells[i] = !g.cells[i]
	if g.cells[i] {
		g.alive++
	} else {
		g.alive--
	}
	return g.cells[i]
}

// Set forces cell (x, y) to the given liveness.
func (g *Grid) Set(x, y int, alive bool) {
	i := g.index(x, y)
	if g.cells[i] == alive {
		return
	}
	g.cells[i] = alive
	if alive {
		g.alive++
	} else {
		g.alive--
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
	g.alive = 0
}
