package app

import (
	"io"
	"log"
	"strconv"

	"cgol/internal/core"
	pkgcore "cgol/pkg/core"
	"cgol/pkg/sims/life"
)

// ColorSelector receives the palette index live cells should be drawn in.
type ColorSelector interface {
	SelectColor(color int)
}

// Stats counts lifecycle events since the controller was created.
type Stats struct {
	Frames       uint64
	Generations  uint64
	ManualResets uint64
	AutoResets   uint64
	ResizeResets uint64
	ColorChanges uint64
}

// Controller drives seeding, warm-up, resets and resize handling for one
// buffer set. It is not safe for concurrent use.
type Controller struct {
	cfg     *Config
	buffers *core.Buffers
	rng     *pkgcore.RNG
	palette *Palette
	colors  ColorSelector
	log     *log.Logger

	ticks    uint64
	stats    Stats
	released bool
}

// NewController allocates 1x1 placeholder buffers and selects the first
// palette color. The first Dispatch against a larger surface reseeds.
func NewController(cfg *Config, colors ColorSelector, logger *log.Logger) (*Controller, error) {
	buffers, err := core.NewBuffers(1, 1)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		cfg:     cfg,
		buffers: buffers,
		rng:     pkgcore.NewRNG(cfg.Seed),
		palette: NewPalette(cfg.Colors),
		colors:  colors,
		log:     logger,
	}
	c.selectColor()
	return c, nil
}

// Dispatch runs at most one lifecycle action for this frame. A size change
// wins over every command; then a reset (requested or due to the tick
// limit), quit, and color rotation follow in that order.
func (c *Controller) Dispatch(cmd Command, w, h int) (Action, error) {
	size := c.buffers.Size()
	switch {
	case size.W != w || size.H != h:
		if err := c.buffers.Resize(w, h); err != nil {
			c.released = true
			return ActionResize, err
		}
		c.reseed()
		c.stats.ResizeResets++
		c.log.Printf("resize %dx%d -> %dx%d", size.W, size.H, w, h)
		return ActionResize, nil

	case cmd == CommandReset || c.limitReached():
		if cmd == CommandReset {
			c.stats.ManualResets++
			c.log.Printf("manual reset at tick %d", c.ticks)
		} else {
			c.stats.AutoResets++
			if c.ticks == life.Stagnant {
				c.log.Printf("stagnated, reseeding")
			} else {
				c.log.Printf("tick limit %d reached, reseeding", c.cfg.TickLimit)
			}
		}
		c.reseed()
		c.rotate(1)
		return ActionReset, nil

	case cmd == CommandQuit:
		return ActionQuit, nil

	case cmd == CommandColorForward:
		c.rotate(1)
		return ActionColor, nil

	case cmd == CommandColorBackward:
		c.rotate(-1)
		return ActionColor, nil
	}
	return ActionNone, nil
}

func (c *Controller) limitReached() bool {
	return c.cfg.TickLimit > 0 && c.ticks > uint64(c.cfg.TickLimit)
}

func (c *Controller) reseed() {
	c.buffers.Active().Clear()
	c.Seed()
	c.WarmUp()
	c.ticks = 0
}

// Seed sets each active cell alive with the configured probability.
func (c *Controller) Seed() {
	pkgcore.FillPercent(c.rng, c.buffers.Active().Cells(), c.cfg.InitProb)
}

// WarmUp advances the configured number of generations without drawing.
func (c *Controller) WarmUp() {
	for i := 0; i < c.cfg.WarmUp; i++ {
		c.Step()
	}
}

// Step advances one generation and reports whether it changed anything.
func (c *Controller) Step() bool {
	c.stats.Generations++
	return life.Step(c.buffers, &c.ticks)
}

func (c *Controller) rotate(step int) {
	c.palette.Rotate(step)
	c.stats.ColorChanges++
	c.selectColor()
}

func (c *Controller) selectColor() {
	if c.colors != nil {
		c.colors.SelectColor(c.palette.Current())
	}
}

// Release frees the buffers. Later calls are no-ops.
func (c *Controller) Release() {
	if c.released {
		return
	}
	c.released = true
	c.buffers.Release()
}

// Ticks returns the generations since the last reset, or life.Stagnant.
func (c *Controller) Ticks() uint64 { return c.ticks }

// Active returns the committed generation.
func (c *Controller) Active() []uint8 { return c.buffers.Active().Cells() }

// Buffers exposes the buffer set for inspection.
func (c *Controller) Buffers() *core.Buffers { return c.buffers }

// Size returns the buffer dimensions.
func (c *Controller) Size() core.Size { return c.buffers.Size() }

// Color returns the selected palette index.
func (c *Controller) Color() int { return c.palette.Current() }

// Stats returns the event counters.
func (c *Controller) Stats() Stats { return c.stats }

func (c *Controller) frame() { c.stats.Frames++ }

// Parameters reports the run state grouped for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.Size()
	generation := "stagnant"
	if c.ticks != life.Stagnant {
		generation = strconv.FormatUint(c.ticks, 10)
	}
	glyph := "reverse"
	if c.cfg.Glyph != 0 {
		glyph = string(c.cfg.Glyph)
	}
	itoa := strconv.Itoa
	utoa := func(v uint64) string { return strconv.FormatUint(v, 10) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeString, Value: generation},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: itoa(life.Population(c.Active()))},
				{Key: "size", Label: "Size", Type: core.ParamTypeString, Value: itoa(size.W) + "x" + itoa(size.H)},
				{Key: "color", Label: "Color", Type: core.ParamTypeInt, Value: itoa(c.Color())},
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				{Key: "ticks_limit", Label: "Tick limit", Type: core.ParamTypeInt, Value: itoa(c.cfg.TickLimit), Description: "0 never reseeds"},
				{Key: "init_ticks", Label: "Warm-up", Type: core.ParamTypeInt, Value: itoa(c.cfg.WarmUp)},
				{Key: "init_prob", Label: "Seed %", Type: core.ParamTypeInt, Value: itoa(c.cfg.InitProb)},
				{Key: "fps", Label: "FPS", Type: core.ParamTypeInt, Value: itoa(c.cfg.FPS)},
				{Key: "char_alive", Label: "Glyph", Type: core.ParamTypeString, Value: glyph},
			},
		},
		{
			Name: "Totals",
			Params: []core.Parameter{
				{Key: "frames", Label: "Frames", Type: core.ParamTypeInt, Value: utoa(c.stats.Frames)},
				{Key: "generations", Label: "Generations", Type: core.ParamTypeInt, Value: utoa(c.stats.Generations)},
				{Key: "resets", Label: "Resets", Type: core.ParamTypeInt, Value: utoa(c.stats.ManualResets + c.stats.AutoResets)},
				{Key: "resizes", Label: "Resizes", Type: core.ParamTypeInt, Value: utoa(c.stats.ResizeResets)},
			},
		},
	}}
}
