package core

// Seeder populates a freshly cleared grid with an initial pattern.
// Deterministic seeders ignore the seed argument.
type Seeder func(g *Grid, seed int64)

var patterns = map[string]Seeder{}

// RegisterPattern adds a named seed pattern to the registry.
func RegisterPattern(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	patterns[name] = s
}

// Patterns exposes the registry of available seed patterns.
func Patterns() map[string]Seeder { return patterns }

// RandomDensity is the live-cell probability used by the random seeder.
// Adjustable before the World is constructed; not a runtime control.
var RandomDensity = 0.25

func seedCheckerboard(g *Grid, _ int64) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, (x+y)%2 == 0)
		}
	}
}

func seedRandom(g *Grid, seed int64) {
	rng := NewRNG(seed)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(x, y, rng.Chance(RandomDensity))
		}
	}
}

// seedBlinker drops a vertical period-2 oscillator near the board center.
func seedBlinker(g *Grid, _ int64) {
	cx, cy := g.Width()/2, g.Height()/2
	for dy := -1; dy <= 1; dy++ {
		if g.InBounds(cx, cy+dy) {
			g.Set(cx, cy+dy, true)
		}
	}
}

// seedGlider drops the classic glider in the top-left corner.
func seedGlider(g *Grid, _ int64) {
	cells := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range cells {
		if g.InBounds(c[0], c[1]) {
			g.Set(c[0], c[1], true)
		}
	}
}

func init() {
	RegisterPattern("checkerboard", seedCheckerboard)
	RegisterPattern("empty", func(*Grid, int64) {})
	RegisterPattern("random", seedRandom)
	RegisterPattern("blinker", seedBlinker)
	RegisterPattern("glider", seedGlider)
}
