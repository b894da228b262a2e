package core

// Metadata tracks simulation bookkeeping that lives outside the grid.
// Iterations counts completed transitions; clearing the board does not
// touch it, only an explicit reset does.
type Metadata struct {
	Iterations int
}

// aliveNext applies the life rule to one cell using the previous
// generation's neighbor count: survival on 2 or 3, birth on exactly 3.
func aliveNext(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Transition rewrites the grid in place to the next generation using the
// precomputed counts and charges one iteration to meta. The counts must
// be a complete snapshot of the grid as passed in; Transition never reads
// liveness back from cells it has already written.
func Transition(g *Grid, counts *NeighborCounts, meta *Metadata) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, aliveNext(g.Alive(x, y), counts.At(x, y)))
		}
	}
	meta.Iterations++
}
