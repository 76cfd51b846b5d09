package core

import (
	"errors"
	"math"
)

var (
	// ErrAllocation reports that grid storage for the requested dimensions
	// could not be provided.
	ErrAllocation = errors.New("grid allocation failed")
	// ErrReleased reports use of a grid whose storage was already released.
	ErrReleased = errors.New("grid already released")
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H     int
	data     []uint8
	released bool
}

// NewByteGrid allocates a zero-filled grid with the given dimensions.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	n, err := gridLen(w, h)
	if err != nil {
		return nil, err
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, n)}, nil
}

func gridLen(w, h int) (int, error) {
	if w <= 0 || h <= 0 || w > math.MaxInt32 || h > math.MaxInt32/w {
		return 0, ErrAllocation
	}
	return w * h, nil
}

// Reallocate changes the grid dimensions. The contents afterwards are
// unspecified: existing storage is reused when large enough, so stale values
// may remain until the caller fills the grid.
func (g *ByteGrid) Reallocate(w, h int) error {
	if g.released {
		return ErrReleased
	}
	n, err := gridLen(w, h)
	if err != nil {
		return err
	}
	if cap(g.data) >= n {
		g.data = g.data[:n]
	} else {
		g.data = make([]uint8, n)
	}
	g.W, g.H = w, h
	return nil
}

// Release drops the backing storage. It succeeds exactly once.
func (g *ByteGrid) Release() error {
	if g.released {
		return ErrReleased
	}
	g.data = nil
	g.released = true
	return nil
}

// Released reports whether Release has been called.
func (g *ByteGrid) Released() bool { return g.released }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
