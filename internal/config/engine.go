package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tatianab/kira-suspicion/internal/engine"
	"github.com/tatianab/kira-suspicion/internal/narrator"
	"github.com/tatianab/kira-suspicion/internal/observe"
)

// NewEngine wires the tuning file, narrator chain and random source described
// by c into an engine. Missing narrator credentials are not an error: the
// engine then plays with offline narration. The returned func releases the
// narrator's clients.
func (c *Config) NewEngine(ctx context.Context, logger *slog.Logger, metrics *observe.Metrics) (*engine.Engine, func(), error) {
	tuning, err := LoadTuning(c.TuningFile)
	if err != nil {
		return nil, nil, err
	}
	if c.NarrationTimeout > 0 {
		tuning.NarrationTimeout = c.NarrationTimeout
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []engine.Option{
		engine.WithTuning(tuning),
		engine.WithRandom(engine.NewRandom(seed)),
		engine.WithLogger(logger),
		engine.WithMetrics(metrics),
	}

	cleanup := func() {}
	chain, err := narrator.New(ctx, c.NarratorSettings(tuning.NarrationTimeout), logger)
	switch {
	case errors.Is(err, narrator.ErrNoCredentials):
		logger.Warn("no narrator credentials configured, narration will be offline")
	case err != nil:
		return nil, nil, fmt.Errorf("create narrator: %w", err)
	default:
		opts = append(opts, engine.WithNarrator(chain))
		cleanup = func() {
			if err := chain.Close(); err != nil {
				logger.Warn("close narrator", "err", err)
			}
		}
	}

	logger.Info("engine ready", "seed", seed, "tuning_file", c.TuningFile)
	return engine.New(opts...), cleanup, nil
}
