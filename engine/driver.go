package engine

import (
	"context"
	"log"
	"sync"
	"time"
)

// Driver steps an engine without a display. With a tick rate it paces itself
// on a ticker like a game server loop; with a tick rate of zero it runs as
// fast as possible, which is what simulations want.
type Driver struct {
	engine   *Engine
	tickRate int

	// StopOnGameOver ends Run as soon as a run is lost
	StopOnGameOver bool
	// OnFrame, when set, is called after every step
	OnFrame func(e *Engine)

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewDriver returns a driver for e at tickRate steps per second
func NewDriver(e *Engine, tickRate int) *Driver {
	return &Driver{
		engine:   e,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run steps the engine until maxFrames steps have run, the context is done,
// Stop is called or, with StopOnGameOver, the run ends. A maxFrames of zero
// means no limit. It returns the number of steps taken.
func (d *Driver) Run(ctx context.Context, maxFrames int) int {
	if d.tickRate <= 0 {
		return d.freeRun(ctx, maxFrames)
	}

	ticker := time.NewTicker(time.Second / time.Duration(d.tickRate))
	defer ticker.Stop()

	log.Printf("Driver started at %d ticks/second", d.tickRate)

	frames := 0
	for {
		select {
		case <-ctx.Done():
			return frames
		case <-d.stopChan:
			log.Println("Driver stopped")
			return frames
		case <-ticker.C:
			if d.step() {
				frames++
			}
			if d.done(frames, maxFrames) {
				return frames
			}
		}
	}
}

func (d *Driver) freeRun(ctx context.Context, maxFrames int) int {
	frames := 0
	for {
		select {
		case <-ctx.Done():
			return frames
		case <-d.stopChan:
			return frames
		default:
		}

		if !d.step() {
			// Loop disarmed, nothing left to drive
			return frames
		}
		frames++
		if d.done(frames, maxFrames) {
			return frames
		}
	}
}

func (d *Driver) step() bool {
	if !d.engine.Update() {
		return false
	}
	if d.OnFrame != nil {
		d.OnFrame(d.engine)
	}
	return true
}

func (d *Driver) done(frames, maxFrames int) bool {
	if maxFrames > 0 && frames >= maxFrames {
		return true
	}
	return d.StopOnGameOver && d.engine.GameOver()
}

// Stop ends Run. Safe to call more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
}
