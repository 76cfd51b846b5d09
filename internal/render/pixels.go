package render

import "image/color"

// Pixels converts binary cell grids into RGBA bytes, reusing its buffer
// across frames of the same size.
type Pixels struct {
	w, h int
	buf  []byte
}

// NewPixels allocates a pixel buffer for a w*h grid.
func NewPixels(w, h int) *Pixels {
	p := &Pixels{}
	p.Resize(w, h)
	return p
}

// Resize adjusts the buffer to a new grid size.
func (p *Pixels) Resize(w, h int) {
	p.w, p.h = w, h
	if n := 4 * w * h; cap(p.buf) >= n {
		p.buf = p.buf[:n]
	} else {
		p.buf = make([]byte, n)
	}
}

// Size returns the grid dimensions the buffer holds.
func (p *Pixels) Size() (int, int) { return p.w, p.h }

// Fill writes one pixel per cell, on for live cells and off otherwise, and
// returns the buffer. Cells beyond the buffer size are ignored.
func (p *Pixels) Fill(cells []uint8, on, off color.RGBA) []byte {
	n := min(len(cells), p.w*p.h)
	for i, c := range cells[:n] {
		px := p.buf[i*4 : i*4+4]
		col := off
		if c != 0 {
			col = on
		}
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
	return p.buf
}
