package host

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/universal-elevators/internal/game"
)

// TickFunc is called after every driven tick, outside the host lock.
type TickFunc func(snap game.StateSnapshot, report game.TickReport)

// Driver advances a host at a fixed rate. Commands queued between two
// ticks are merged and applied together on the next one.
type Driver struct {
	host     *Host
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	pending game.Command
	onTick  []TickFunc
}

// NewDriver creates a driver running tickRate ticks per second.
func NewDriver(h *Host, tickRate int, logger *log.Logger) *Driver {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Driver{
		host:     h,
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
	}
}

// OnTick registers a callback run after every tick, in registration order.
func (d *Driver) OnTick(fn TickFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onTick = append(d.onTick, fn)
}

// Queue adds cmd's flags to the next tick.
func (d *Driver) Queue(cmd game.Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = d.pending.Merge(cmd)
}

// Tick applies the queued command immediately.
func (d *Driver) Tick() game.TickReport {
	report, _ := d.Apply(game.Command{})
	return report
}

// Apply runs one tick with cmd merged into the queued command, then runs
// the callbacks. The queue is drained.
func (d *Driver) Apply(cmd game.Command) (game.TickReport, game.StateSnapshot) {
	d.mu.Lock()
	cmd = d.pending.Merge(cmd)
	d.pending = game.Command{}
	callbacks := d.onTick
	d.mu.Unlock()

	report, snap := d.host.StepSnapshot(cmd)
	if len(report.Purchased) > 0 || report.Collected > 0 {
		d.logger.Debug("player action", "tick", report.Tick, "collected", report.Collected, "purchased", report.Purchased)
	}
	for _, fn := range callbacks {
		fn(snap, report)
	}
	return report, snap
}

// Run ticks until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("driver started", "run", d.host.ID(), "interval", d.interval)
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("driver stopped", "run", d.host.ID())
			return nil
		case <-ticker.C:
			d.Tick()
		}
	}
}
