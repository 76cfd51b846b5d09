//go:build ebiten

package app

import (
	"image/color"
	"log"

	"cgol/internal/render"
	"cgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface. ebiten drives the
// loop, so each Update finishes the previous frame's step before dispatching
// the next frame's command, and Draw renders in between.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.RGBA
	offColor color.RGBA

	scale int
	w, h  int
	drawn bool
}

// New constructs a Game with a fresh Controller.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	scale := cfg.Scale
	if scale <= 0 {
		scale = defaultScale
	}
	g := &Game{
		painter:  render.NewGridPainter(1, 1),
		hud:      ui.NewHUD(),
		offColor: color.RGBA{A: 0xff},
		scale:    scale,
		w:        1,
		h:        1,
	}
	ctrl, err := NewController(cfg, g, logger)
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	return g, nil
}

// Controller exposes the lifecycle controller.
func (g *Game) Controller() *Controller { return g.ctrl }

// Scale returns the window pixels per grid cell.
func (g *Game) Scale() int { return g.scale }

// SelectColor sets the live cell color from the terminal palette.
func (g *Game) SelectColor(c int) {
	g.onColor = render.PaletteRGBA(c)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.drawn {
		g.ctrl.Step()
		g.ctrl.frame()
		g.drawn = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	action, err := g.ctrl.Dispatch(pollKeys(), g.w, g.h)
	if err != nil {
		g.ctrl.Release()
		return err
	}
	if action == ActionQuit {
		g.ctrl.Release()
		return ebiten.Termination
	}
	g.hud.Update(g.ctrl.Parameters())
	return nil
}

func pollKeys() Command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return CommandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return CommandReset
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			return CommandColorBackward
		}
		return CommandColorForward
	}
	return CommandNone
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.ctrl.Size()
	g.painter.Blit(screen, g.ctrl.Active(), size.W, size.H, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen)
	g.drawn = true
}

// Layout derives the grid size from the window and keeps a 1:1 screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w = max(1, outsideWidth/g.scale)
	g.h = max(1, outsideHeight/g.scale)
	return outsideWidth, outsideHeight
}
