package core

import "errors"

// Buffers owns the three equally sized grids a generation step works with:
// the committed state, the generation being computed, and the last
// generation that differed from its predecessor.
type Buffers struct {
	active  *ByteGrid
	scratch *ByteGrid
	history *ByteGrid
}

// NewBuffers allocates three zero-filled grids of the given dimensions.
func NewBuffers(w, h int) (*Buffers, error) {
	grids := make([]*ByteGrid, 3)
	for i := range grids {
		g, err := NewByteGrid(w, h)
		if err != nil {
			for _, prev := range grids[:i] {
				prev.Release()
			}
			return nil, err
		}
		grids[i] = g
	}
	return &Buffers{active: grids[0], scratch: grids[1], history: grids[2]}, nil
}

// Active returns the committed generation.
func (b *Buffers) Active() *ByteGrid { return b.active }

// Scratch returns the grid the next generation is written into.
func (b *Buffers) Scratch() *ByteGrid { return b.scratch }

// History returns the most recent generation that changed.
func (b *Buffers) History() *ByteGrid { return b.history }

// Size returns the shared dimensions.
func (b *Buffers) Size() Size { return b.active.Size() }

// Swap exchanges the active and scratch grids.
func (b *Buffers) Swap() {
	b.active, b.scratch = b.scratch, b.active
}

// Resize reallocates all three grids to w*h. Contents are unspecified
// afterwards. On failure every grid is released.
func (b *Buffers) Resize(w, h int) error {
	for _, g := range b.grids() {
		if err := g.Reallocate(w, h); err != nil {
			b.Release()
			return err
		}
	}
	return nil
}

// Release frees all three grids. Grids already released are skipped, and
// ErrReleased is returned only when every grid had been released before.
func (b *Buffers) Release() error {
	var released int
	for _, g := range b.grids() {
		if err := g.Release(); errors.Is(err, ErrReleased) {
			released++
		}
	}
	if released == 3 {
		return ErrReleased
	}
	return nil
}

func (b *Buffers) grids() [3]*ByteGrid {
	return [3]*ByteGrid{b.active, b.scratch, b.history}
}
