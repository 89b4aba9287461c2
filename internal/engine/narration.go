package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tatianab/kira-suspicion/internal/models"
)

// ErrNarrationUnavailable is returned when no narration could be produced,
// whether the narrator is missing, failed, or ran out of time.
var ErrNarrationUnavailable = errors.New("narration unavailable")

// Narrator writes prose for a turn from a one-line state digest, the action
// label and the player's raw input.
type Narrator interface {
	Narrate(ctx context.Context, digest, action, input string) (string, error)
}

// NarratorFunc adapts a plain function to Narrator.
type NarratorFunc func(ctx context.Context, digest, action, input string) (string, error)

// Narrate implements Narrator.
func (f NarratorFunc) Narrate(ctx context.Context, digest, action, input string) (string, error) {
	return f(ctx, digest, action, input)
}

// Digest serializes the fields the narrator needs into a single line.
func Digest(s *models.GameState) string {
	return fmt.Sprintf("location=%s, suspicion_L=%d, suspicion_task_force=%d, suspicion_public=%d, "+
		"notebook_hidden=%t, l_investigation_progress=%d, cameras_at_home=%t, "+
		"tv_target_ready=%t, second_kira_revealed=%t, second_kira_friend=%t",
		s.Location, s.SuspicionL, s.SuspicionTaskForce, s.SuspicionPublic,
		s.NotebookHidden, s.LInvestigationProgress, s.CamerasAtHome,
		s.Flags.TVTargetReady, s.Flags.SecondKiraRevealed, s.Flags.SecondKiraFriend,
	)
}

// narrate always returns something to show: the narrator's text behind the
// marker, or an offline fallback that still carries the numbers.
func (e *Engine) narrate(ctx context.Context, t *turn) string {
	text, err := e.requestNarration(ctx, t)
	if err != nil {
		e.logger.Warn("narration failed, using fallback", "action", t.label, "err", err)
		return fallbackNarration(t)
	}

	out := e.tuning.NarrationMarker + "\n" + text
	if e.tuning.AppendSummary {
		out += "\n\n" + Summary(t.state)
	}
	return out
}

func (e *Engine) requestNarration(ctx context.Context, t *turn) (string, error) {
	if e.narrator == nil {
		e.metrics.RecordNarrationFailure(ctx, "absent")
		return "", ErrNarrationUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, e.tuning.NarrationTimeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	digest := Digest(t.state)
	start := time.Now()
	go func() {
		text, err := e.narrator.Narrate(ctx, digest, string(t.label), t.raw)
		done <- result{text, err}
	}()

	var r result
	select {
	case r = <-done:
	case <-ctx.Done():
		r.err = ctx.Err()
	}
	e.metrics.RecordNarrationDuration(ctx, time.Since(start))

	if r.err == nil && strings.TrimSpace(r.text) == "" {
		r.err = errors.New("empty response")
	}
	if r.err != nil {
		reason := "error"
		if errors.Is(r.err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		e.metrics.RecordNarrationFailure(ctx, reason)
		return "", fmt.Errorf("%w: %w", ErrNarrationUnavailable, r.err)
	}
	return strings.TrimSpace(r.text), nil
}

func fallbackNarration(t *turn) string {
	verb := strings.ReplaceAll(string(t.label), "_", " ")
	return fmt.Sprintf("[OFFLINE] The narrator is silent. You act (%s) and the city keeps watching.\n\n", verb) +
		Summary(t.state)
}
