package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/tatianab/kira-suspicion/internal/engine"
)

func TestScriptedSessionsFinish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for seed := range int64(5) {
		eng := engine.New(engine.WithRandom(engine.NewRandom(seed)), engine.WithLogger(logger))
		got := playSession(context.Background(), eng, &scriptedPlayer{plan: scriptedPlan}, maxTurns)
		if !strings.HasPrefix(got, "Game Ended") {
			t.Errorf("seed %d: expected the session to end within %d turns, got %q", seed, maxTurns, got)
		}
	}
}
