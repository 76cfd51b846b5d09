//go:build ebiten

package ui

import (
	"image/color"

	"cgol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 14
	panelWidth   = 200
)

// HUD renders the run parameters in a translucent panel over the grid.
type HUD struct {
	visible    bool
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a hidden HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h.visible }

// Update refreshes the cached text from the snapshot.
func (h *HUD) Update(snap core.ParameterSnapshot) {
	if !h.visible {
		return
	}
	h.lines = Lines(snap)
}

// Draw paints the panel anchored to the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || len(h.lines) == 0 {
		return
	}
	height := panelPadding*2 + lineHeight*len(h.lines)
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(panelWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + lineHeight*(i+1) - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
