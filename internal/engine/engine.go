package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatianab/kira-suspicion/internal/models"
	"github.com/tatianab/kira-suspicion/internal/observe"
)

const tracerName = "github.com/tatianab/kira-suspicion/internal/engine"

// Engine applies player turns to a GameState. It holds no session state of
// its own; callers own the GameState and must not run two turns on the same
// state concurrently.
type Engine struct {
	tuning   Tuning
	rng      Random
	narrator Narrator
	logger   *slog.Logger
	metrics  *observe.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithTuning replaces the default rule constants.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithRandom sets the source used for every probabilistic event.
func WithRandom(r Random) Option {
	return func(e *Engine) { e.rng = r }
}

// WithNarrator sets the text-generation backend. Without one every turn uses
// the offline fallback.
func WithNarrator(n Narrator) Option {
	return func(e *Engine) { e.narrator = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the metric instruments.
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New builds an Engine. Defaults: DefaultTuning, a time-seeded random source,
// no narrator and the default slog logger.
func New(opts ...Option) *Engine {
	e := &Engine{tuning: DefaultTuning()}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(time.Now().UnixNano())
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Tuning returns the constants the engine plays with.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// RunStep plays one player turn against state and returns it along with the
// text to display. Once narration is requested the turn's mutations are
// committed; a failed or slow narrator only changes the text.
func (e *Engine) RunStep(ctx context.Context, state *models.GameState, input string) (*models.GameState, string) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "engine.RunStep",
		trace.WithAttributes(attribute.String("location", string(state.Location))))
	defer span.End()

	if state.Location.IsTerminal() {
		return state, concludedText(state.Location)
	}

	raw := strings.TrimSpace(input)
	if raw == "" {
		return state, emptyInputText
	}

	state.Turn++
	state.AddHistory(models.SpeakerUser, raw)

	if state.Location == models.LocationIntro {
		state.Location = models.LocationHome
		e.metrics.RecordTurn(ctx, string(models.LocationIntro))
		return e.finish(state, introText)
	}

	t := &turn{state: state, label: Classify(Normalize(raw)), raw: raw}
	defer func() {
		span.SetAttributes(attribute.String("action", string(t.label)))
		e.metrics.RecordTurn(ctx, string(t.label))
	}()

	switch t.label {
	case ActionStatus:
		return e.finish(state, Summary(state))
	case ActionHelp:
		return e.finish(state, helpText)
	case ActionLookAround:
		return e.finish(state, lookAroundText(state.Location))
	case ActionDiscoverLName:
		out := e.resolveDiscovery(t)
		return e.finish(state, e.conclude(ctx, t, out))
	}

	e.apply(t)
	e.revealCameras(t)

	if out, over := e.checkTerminal(state); over {
		return e.finish(state, e.conclude(ctx, t, out))
	}

	narration := e.narrate(ctx, t)
	out := strings.Join(append(t.events, narration), "\n\n")

	if t.consumeTV {
		state.Flags.TVTargetReady = false
	}

	e.logger.Debug("turn played",
		"turn", state.Turn,
		"action", t.label,
		"location", state.Location,
		"suspicion_l", state.SuspicionL,
		"suspicion_task_force", state.SuspicionTaskForce,
	)
	return e.finish(state, out)
}

// conclude logs and counts a turn that may have ended the session.
func (e *Engine) conclude(ctx context.Context, t *turn, out string) string {
	if t.state.Location.IsTerminal() {
		e.metrics.RecordOutcome(ctx, string(t.state.Location))
		e.logger.Info("session concluded",
			"outcome", t.state.Location,
			"turn", t.state.Turn,
			"action", t.label,
		)
	}
	return out
}

func (e *Engine) finish(state *models.GameState, out string) (*models.GameState, string) {
	state.AddHistory(models.SpeakerSystem, out)
	return state, out
}
