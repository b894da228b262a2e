package core

// NeighborCounts holds per-cell live-neighbor totals for one generation.
// It is rebuilt from a grid snapshot before every transition and discarded
// after use; it is never updated alongside the grid it was computed from.
type NeighborCounts struct {
	w, h   int
	counts []uint8
}

// At returns the live-neighbor total for cell (x, y).
func (n *NeighborCounts) At(x, y int) int { return int(n.counts[y*n.w+x]) }

// CountNeighbors tallies the Moore neighborhood of every cell. The board has
// hard edges: out-of-bounds neighbors contribute nothing. The result must be
// complete before any cell write begins, otherwise already-updated neighbors
// would corrupt the counts of cells not yet processed.
func CountNeighbors(g *Grid) *NeighborCounts {
	w, h := g.Width(), g.Height()
	n := &NeighborCounts{w: w, h: h, counts: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c uint8
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if g.Alive(nx, ny) {
						c++
					}
				}
			}
			n.counts[y*w+x] = c
		}
	}
	return n
}
