//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	px  *Pixels
	img *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{px: NewPixels(w, h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it. The
// backing image is reallocated whenever the grid size changes.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, w, h int, on, off color.RGBA, scale int) {
	if len(cells) != w*h || w <= 0 || h <= 0 {
		return
	}
	if pw, ph := gp.px.Size(); pw != w || ph != h {
		gp.px.Resize(w, h)
		gp.img.Dispose()
		gp.img = ebiten.NewImage(w, h)
	}
	gp.img.WritePixels(gp.px.Fill(cells, on, off))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.px.Size() }
