package life

import (
	"math"

	"cgol/internal/core"
)

// Stagnant is the tick count a run is pinned to once a generation repeats
// the last distinct one.
const Stagnant uint64 = math.MaxUint64

// Neighbors counts the live cells in the Moore neighborhood of (x, y).
// Positions outside the w*h grid are skipped, so edge and corner cells see
// fewer than eight neighbors.
func Neighbors(cells []uint8, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

// Rule applies B3/S23: a live cell survives with two or three neighbors, a
// dead one is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the buffers by one generation and reports whether the new
// generation differs from the history grid.
//
// The result is computed into the scratch grid, which then becomes active.
// When nothing changed ticks is set to Stagnant; otherwise it is incremented
// and history receives a copy of the new generation. Only the immediately
// preceding distinct generation is remembered, so oscillators with a period
// above one keep counting.
func Step(b *core.Buffers, ticks *uint64) bool {
	cur := b.Active().Cells()
	nxt := b.Scratch().Cells()
	hist := b.History().Cells()
	size := b.Size()
	w, h := size.W, size.H

	changed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			var state uint8
			if Rule(cur[idx] == 1, Neighbors(cur, w, h, x, y)) {
				state = 1
			}
			if hist[idx] != state {
				changed = true
			}
			nxt[idx] = state
		}
	}
	b.Swap()

	if !changed {
		*ticks = Stagnant
		return false
	}
	*ticks++
	copy(hist, b.Active().Cells())
	return true
}

// Population returns the number of live cells.
func Population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c)
	}
	return n
}
