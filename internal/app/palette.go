package app

// Palette is a cursor over a list of color indices that wraps in both
// directions.
type Palette struct {
	colors []int
	idx    int
}

// NewPalette returns a Palette positioned at the first color. An empty list
// falls back to DefaultColors.
func NewPalette(colors []int) *Palette {
	if len(colors) == 0 {
		colors = DefaultColors()
	}
	return &Palette{colors: append([]int(nil), colors...)}
}

// Rotate moves the cursor by step positions, wrapping modulo the list length,
// and returns the color now selected.
func (p *Palette) Rotate(step int) int {
	n := len(p.colors)
	p.idx = ((p.idx+step)%n + n) % n
	return p.Current()
}

// Current returns the selected color.
func (p *Palette) Current() int { return p.colors[p.idx] }

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }
