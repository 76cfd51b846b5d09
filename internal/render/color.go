package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// PaletteColor maps a palette index onto the 256-color terminal palette.
func PaletteColor(idx int) tcell.Color {
	return tcell.PaletteColor(((idx % 256) + 256) % 256)
}

// PaletteRGBA returns the RGB value of a palette index for pixel output.
func PaletteRGBA(idx int) color.RGBA {
	r, g, b := PaletteColor(idx).RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
