//go:build ebiten

package app

import (
	"image/color"
	"time"

	"gridlife/internal/core"
	"gridlife/internal/render"
	"gridlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation world to the ebiten.Game interface. Update
// runs the frame's producers in their fixed order; Draw drains the two
// redraw flags and recomputes only what they mark stale.
type Game struct {
	world   *core.World
	painter *render.GridPainter
	status  *ui.StatusBar

	onColor  color.Color
	offColor color.Color

	scale int
	seed  int64
}

// New constructs a Game for the provided world.
func New(world *core.World, scale int, seed int64) *Game {
	g := world.Grid()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(g.Width(), g.Height()),
		status:   ui.NewStatusBar(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Update handles input and advances the simulation. The order is fixed:
// pending run state first, then input mutations, then the cadence tick,
// then the gated transition. Every flag raised here is drained by Draw
// within the same frame.
func (g *Game) Update() error {
	g.world.BeginFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.ClearBoard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.world.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	g.world.Tick()
	g.world.Advance()
	return nil
}

// handleClick maps a cursor position to a cell and toggles it. The core
// panics on out-of-bounds coordinates, so clicks outside the board (the
// status bar, window padding) are filtered here.
func (g *Game) handleClick(px, py int) {
	x, y := px/g.scale, py/g.scale
	if !g.world.Grid().InBounds(x, y) {
		return
	}
	g.world.ToggleCell(x, y)
}

// Draw repaints from the cached board image and status line, rebuilding
// each only when its dirty flag was raised this frame.
func (g *Game) Draw(screen *ebiten.Image) {
	bus := g.world.Signals()
	if bus.Drain(core.SignalBoardRedraw) {
		g.painter.Refresh(g.world.Grid(), g.onColor, g.offColor)
	}
	if bus.Drain(core.SignalStatusRedraw) {
		g.status.Refresh(ui.FormatStatus(g.world.Iterations(), g.world.Grid().AliveCount(), g.world.Pending()))
	}

	g.painter.Draw(screen, g.scale)
	g.status.Draw(screen, g.world.Grid().Height()*g.scale)
}

// Layout returns the logical screen size: the board plus the status bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.world.Grid()
	return grid.Width() * g.scale, grid.Height()*g.scale + ui.Height
}
