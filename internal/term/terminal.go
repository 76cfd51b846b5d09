package term

import (
	"errors"

	"cgol/internal/app"
	"cgol/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ErrNoColor reports a terminal that cannot show the basic eight colors.
var ErrNoColor = errors.New("terminal doesn't support color")

const minColors = 8

// Terminal draws the grid to a tcell screen and reads commands from it.
// Live cells are a reverse-video blank in the selected color unless a glyph
// is configured, in which case the glyph is drawn in that color.
type Terminal struct {
	screen tcell.Screen
	glyph  rune
	alive  tcell.Style
	dead   tcell.Style
}

// OpenTerminal initializes the controlling terminal.
func OpenTerminal(glyph rune) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminal(screen, glyph)
}

// NewTerminal initializes screen and checks that it supports color. On
// failure the screen is finalized before returning.
func NewTerminal(screen tcell.Screen, glyph rune) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	if screen.Colors() < minColors {
		screen.Fini()
		return nil, ErrNoColor
	}
	screen.HideCursor()
	screen.Clear()
	t := &Terminal{screen: screen, glyph: glyph, dead: tcell.StyleDefault}
	t.SelectColor(0)
	return t, nil
}

// Screen exposes the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) { return t.screen.Size() }

// SelectColor sets the color live cells are drawn in. Indices wrap into the
// 256-color palette.
func (t *Terminal) SelectColor(color int) {
	style := tcell.StyleDefault.Foreground(render.PaletteColor(color))
	if t.glyph == 0 {
		style = style.Reverse(true)
	}
	t.alive = style
}

// Draw paints a row-major w*h grid and shows it.
func (t *Terminal) Draw(cells []uint8, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y*w+x] != 0 {
				t.screen.SetContent(x, y, t.aliveRune(), nil, t.alive)
				continue
			}
			t.screen.SetContent(x, y, ' ', nil, t.dead)
		}
	}
	t.screen.Show()
}

func (t *Terminal) aliveRune() rune {
	if t.glyph == 0 {
		return ' '
	}
	return t.glyph
}

// Poll drains pending events without blocking and returns the first command
// among them. Resize events only trigger a resync; the new size is picked up
// through Size.
func (t *Terminal) Poll() app.Command {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if cmd := commandForKey(ev); cmd != app.CommandNone {
				return cmd
			}
		case nil:
			return app.CommandNone
		}
	}
	return app.CommandNone
}

func commandForKey(ev *tcell.EventKey) app.Command {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyCtrlC:
		return app.CommandQuit
	case tcell.KeyRune:
		return app.CommandForKey(ev.Rune())
	}
	return app.CommandNone
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Clear()
	t.screen.Fini()
}
