// Package worker runs the background tick loop. It scans active game
// instances and resolves ticks whose interval has elapsed, forcing
// resolution once a party has been unresponsive for too long.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/orchestrators/tick"
	"github.com/crawlhq/crawl-api/internal/pkg/clock"
	"github.com/crawlhq/crawl-api/internal/repositories/instance"
)

// Config holds the dependencies for the worker
type Config struct {
	InstanceRepo instance.Repository
	TickService  tick.Service

	// PollInterval is how often active instances are scanned.
	PollInterval time.Duration

	// ForceAfter is how long past an instance's tick interval the worker
	// waits before force-resolving with partial submissions.
	ForceAfter time.Duration

	// TickTimeout bounds each ProcessTick invocation. Optional; defaults
	// to DefaultTickTimeout.
	TickTimeout time.Duration

	Clock clock.Clock
}

// DefaultTickTimeout bounds a single tick resolution when the config
// does not say otherwise. A timed-out tick persists nothing; the guarded
// instance update means a later attempt starts clean.
const DefaultTickTimeout = 30 * time.Second

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InstanceRepo == nil {
		vb.RequiredField("InstanceRepo")
	}
	if c.TickService == nil {
		vb.RequiredField("TickService")
	}
	if c.PollInterval <= 0 {
		vb.InvalidField("PollInterval", "must be positive")
	}
	if c.ForceAfter <= 0 {
		vb.InvalidField("ForceAfter", "must be positive")
	}

	return vb.Build()
}

// Worker drives tick processing for instances whose players have gone
// quiet. API-triggered ticks and worker-triggered ticks race safely: the
// instance repository's guarded update lets only one commit per tick.
type Worker struct {
	instanceRepo instance.Repository
	tickService  tick.Service
	pollInterval time.Duration
	forceAfter   time.Duration
	tickTimeout  time.Duration
	clock        clock.Clock
}

// New creates a worker with the provided dependencies
func New(cfg *Config) (*Worker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	tickTimeout := cfg.TickTimeout
	if tickTimeout <= 0 {
		tickTimeout = DefaultTickTimeout
	}

	return &Worker{
		instanceRepo: cfg.InstanceRepo,
		tickService:  cfg.TickService,
		pollInterval: cfg.PollInterval,
		forceAfter:   cfg.ForceAfter,
		tickTimeout:  tickTimeout,
		clock:        clk,
	}, nil
}

// Run polls until the context is canceled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("tick worker started",
		"poll_interval", w.pollInterval.String(),
		"force_after", w.forceAfter.String(),
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick worker stopped")
			return
		case <-ticker.C:
			w.PollOnce(ctx)
		}
	}
}

// PollOnce scans active instances and processes every due tick.
func (w *Worker) PollOnce(ctx context.Context) {
	active, err := w.instanceRepo.ListActive(ctx, instance.ListActiveInput{})
	if err != nil {
		slog.Error("failed to list active instances", "error", err.Error())
		return
	}

	now := w.clock.Now()
	for _, inst := range active.Instances {
		elapsed := now.Sub(inst.LastActivityAt)
		if elapsed < inst.TickInterval {
			continue
		}
		w.processInstance(ctx, inst.ID, elapsed >= inst.TickInterval+w.forceAfter)
	}
}

// processInstance resolves one due tick. Transient storage failures are
// retried; a lost commit race is treated as done since the tick advanced
// either way.
func (w *Worker) processInstance(ctx context.Context, instanceID string, force bool) {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		tickCtx, cancel := context.WithTimeout(ctx, w.tickTimeout)
		defer cancel()

		output, err := w.tickService.ProcessTick(tickCtx, &tick.ProcessTickInput{
			GameInstanceID: instanceID,
			Force:          force,
		})
		switch {
		case err == nil:
			if !output.Waiting {
				slog.Info("worker resolved tick",
					"game_instance_id", instanceID,
					"tick", output.Tick,
					"forced", force,
					"game_state", string(output.GameState),
				)
			}
			return nil
		case errors.IsAborted(err):
			// Another invocation committed this tick first
			return nil
		case errors.IsUnavailable(err) || errors.IsInternal(err):
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err != nil {
		slog.Error("failed to process tick",
			"game_instance_id", instanceID,
			"error", err.Error(),
		)
	}
}
