package app

import (
	"context"
	"errors"
	"slices"
	"testing"

	"cgol/internal/core"
)

type fakeDisplay struct {
	w, h   int
	frames [][]uint8
	colors []int
	resize map[int][2]int
}

func (d *fakeDisplay) Size() (int, int) {
	if dims, ok := d.resize[len(d.frames)]; ok {
		d.w, d.h = dims[0], dims[1]
	}
	return d.w, d.h
}

func (d *fakeDisplay) SelectColor(color int) { d.colors = append(d.colors, color) }

func (d *fakeDisplay) Draw(cells []uint8, w, h int) {
	if len(cells) != w*h {
		panic("draw called with mismatched dimensions")
	}
	d.frames = append(d.frames, slices.Clone(cells))
}

type scriptedInput struct {
	cmds []Command
}

func (in *scriptedInput) Poll() Command {
	if len(in.cmds) == 0 {
		return CommandNone
	}
	cmd := in.cmds[0]
	in.cmds = in.cmds[1:]
	return cmd
}

func newLoop(t *testing.T, d *fakeDisplay, mutate func(*Config)) *Controller {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 5
	cfg.TickLimit = 0
	if mutate != nil {
		mutate(cfg)
	}
	c, err := NewController(cfg, d, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestRunStopsOnQuitAndReleases(t *testing.T) {
	d := &fakeDisplay{w: 20, h: 10}
	c := newLoop(t, d, nil)
	in := &scriptedInput{cmds: []Command{CommandNone, CommandNone, CommandColorForward, CommandQuit}}

	if err := Run(context.Background(), c, d, in, core.NewPacer(0)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.frames) != 3 {
		t.Fatalf("drew %d frames, want 3", len(d.frames))
	}
	if !slices.Equal(d.colors, []int{0, 1}) {
		t.Fatalf("color selections %v, want [0 1]", d.colors)
	}
	if !c.Buffers().Active().Released() || !c.Buffers().History().Released() {
		t.Fatal("Run returned without releasing buffers")
	}
	if st := c.Stats(); st.Frames != 3 {
		t.Fatalf("frames = %d, want 3", st.Frames)
	}
}

func TestFrameDrawsBeforeStepping(t *testing.T) {
	d := &fakeDisplay{w: 12, h: 12}
	c := newLoop(t, d, nil)
	in := &scriptedInput{}

	if _, err := Frame(c, d, in); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	prev := slices.Clone(c.Active())
	if _, err := Frame(c, d, in); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !slices.Equal(d.frames[1], prev) {
		t.Fatal("second frame did not draw the generation committed by the first step")
	}
}

func TestRunFollowsResize(t *testing.T) {
	d := &fakeDisplay{w: 10, h: 5, resize: map[int][2]int{2: {30, 8}}}
	c := newLoop(t, d, nil)
	in := &scriptedInput{cmds: []Command{CommandNone, CommandNone, CommandNone, CommandQuit}}

	if err := Run(context.Background(), c, d, in, core.NewPacer(0)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.frames[0]) != 50 || len(d.frames[2]) != 240 {
		t.Fatalf("frame sizes %d and %d, want 50 and 240", len(d.frames[0]), len(d.frames[2]))
	}
	if c.Stats().ResizeResets != 2 {
		t.Fatalf("resize resets = %d, want 2", c.Stats().ResizeResets)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d := &fakeDisplay{w: 8, h: 8}
	c := newLoop(t, d, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, c, d, &scriptedInput{}, core.NewPacer(0)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(d.frames) != 0 {
		t.Fatalf("drew %d frames after cancel", len(d.frames))
	}
	if !c.Buffers().Active().Released() {
		t.Fatal("buffers not released after cancel")
	}
}

func TestRunReportsAllocationFailure(t *testing.T) {
	d := &fakeDisplay{w: 0, h: 0}
	c := newLoop(t, d, nil)
	err := Run(context.Background(), c, d, &scriptedInput{}, core.NewPacer(0))
	if !errors.Is(err, core.ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
}
