package app

import (
	"context"

	"cgol/internal/core"
)

// Run drives the frame loop until a quit command arrives, ctx is cancelled or
// a buffer allocation fails. Each frame polls input, dispatches one lifecycle
// action, draws the active generation, steps once and then waits for the
// pacer. The controller's buffers are released before Run returns.
func Run(ctx context.Context, c *Controller, d Display, in Input, pacer *core.Pacer) error {
	defer c.Release()
	for ctx.Err() == nil {
		if quit, err := Frame(c, d, in); quit || err != nil {
			return err
		}
		pacer.Wait(ctx)
	}
	return nil
}

// Frame runs one iteration of the loop without pacing. It reports whether
// the loop should stop.
func Frame(c *Controller, d Display, in Input) (bool, error) {
	cmd := in.Poll()
	w, h := d.Size()
	action, err := c.Dispatch(cmd, w, h)
	if err != nil {
		return true, err
	}
	if action == ActionQuit {
		return true, nil
	}
	size := c.Size()
	d.Draw(c.Active(), size.W, size.H)
	c.Step()
	c.frame()
	return false, nil
}
