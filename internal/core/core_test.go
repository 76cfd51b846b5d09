package core

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestByteGridClearAndRelease(t *testing.T) {
	g, err := NewByteGrid(4, 3)
	if err != nil {
		t.Fatalf("NewByteGrid: %v", err)
	}
	if g.Len() != 12 {
		t.Fatalf("len = %d, want 12", g.Len())
	}
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d not zero-filled", i)
		}
	}
	g.Cells()[g.Index(3, 2)] = 1
	g.Clear()
	if g.Cells()[11] != 0 {
		t.Fatal("Clear left a live cell")
	}

	if err := g.Release(); err != nil {
		t.Fatalf("first Release: %v", err)
	}
	if err := g.Release(); !errors.Is(err, ErrReleased) {
		t.Fatalf("second Release err = %v, want ErrReleased", err)
	}
	if err := g.Reallocate(2, 2); !errors.Is(err, ErrReleased) {
		t.Fatalf("Reallocate after Release err = %v, want ErrReleased", err)
	}
}

func TestByteGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {math.MaxInt32, 3}} {
		if _, err := NewByteGrid(dims[0], dims[1]); !errors.Is(err, ErrAllocation) {
			t.Fatalf("NewByteGrid(%d,%d) err = %v, want ErrAllocation", dims[0], dims[1], err)
		}
	}
}

func TestBuffersResizeKeepsDimensionsTogether(t *testing.T) {
	b, err := NewBuffers(1, 1)
	if err != nil {
		t.Fatalf("NewBuffers: %v", err)
	}
	for _, dims := range [][2]int{{80, 24}, {10, 5}, {120, 40}} {
		if err := b.Resize(dims[0], dims[1]); err != nil {
			t.Fatalf("Resize(%d,%d): %v", dims[0], dims[1], err)
		}
		want := dims[0] * dims[1]
		for name, g := range map[string]*ByteGrid{"active": b.Active(), "scratch": b.Scratch(), "history": b.History()} {
			if g.Len() != want || g.W != dims[0] || g.H != dims[1] {
				t.Fatalf("%s is %dx%d len %d, want %dx%d len %d", name, g.W, g.H, g.Len(), dims[0], dims[1], want)
			}
		}
	}
}

func TestBuffersResizeFailureReleases(t *testing.T) {
	b, _ := NewBuffers(2, 2)
	if err := b.Resize(0, 4); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Resize err = %v, want ErrAllocation", err)
	}
	if !b.Active().Released() || !b.Scratch().Released() || !b.History().Released() {
		t.Fatal("failed resize must release every grid")
	}
	if err := b.Release(); !errors.Is(err, ErrReleased) {
		t.Fatalf("Release after failure err = %v, want ErrReleased", err)
	}
}

func TestBuffersSwap(t *testing.T) {
	b, _ := NewBuffers(3, 3)
	active, scratch := b.Active(), b.Scratch()
	b.Swap()
	if b.Active() != scratch || b.Scratch() != active {
		t.Fatal("Swap did not exchange active and scratch")
	}
}

func TestPacerDelay(t *testing.T) {
	if d := NewPacer(0).Delay(); d != 0 {
		t.Fatalf("fps 0 delay = %v, want 0", d)
	}
	if d := NewPacer(-3).Delay(); d != 0 {
		t.Fatalf("negative fps delay = %v, want 0", d)
	}
	if d := NewPacer(30).Delay(); d != time.Second/30 {
		t.Fatalf("fps 30 delay = %v", d)
	}

	var slept time.Duration
	p := NewPacer(20)
	p.sleep = func(_ context.Context, d time.Duration) { slept += d }
	p.Wait(context.Background())
	p.Wait(context.Background())
	if slept != 100*time.Millisecond {
		t.Fatalf("slept %v, want 100ms", slept)
	}

	p.SetFPS(0)
	p.Wait(context.Background())
	if slept != 100*time.Millisecond {
		t.Fatal("disabled pacer still slept")
	}
}

func TestPacerWaitHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPacer(1)
	start := time.Now()
	p.Wait(ctx)
	if time.Since(start) > 500*time.Millisecond {
		t.Fatal("Wait ignored a cancelled context")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := s.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("Lookup(z) found a parameter")
	}
}
