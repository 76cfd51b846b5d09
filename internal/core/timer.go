package core

import (
	"context"
	"time"
)

// Pacer inserts a fixed delay after every frame to hold a steady frame rate.
// A zero Pacer never waits.
type Pacer struct {
	delay time.Duration
	sleep func(context.Context, time.Duration)
}

// NewPacer constructs a Pacer targeting the given frames per second. Rates at
// or below zero disable the delay.
func NewPacer(fps int) *Pacer {
	p := &Pacer{sleep: sleepCtx}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the frame rate. It is safe to call from the main loop.
func (p *Pacer) SetFPS(fps int) {
	if fps <= 0 {
		p.delay = 0
		return
	}
	p.delay = time.Second / time.Duration(fps)
}

// Delay returns the pause inserted after each frame.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait blocks for one frame delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) {
	if p.delay <= 0 {
		return
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	sleep(ctx, p.delay)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
