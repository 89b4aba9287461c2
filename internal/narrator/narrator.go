// Package narrator implements the text-generation backends that turn a game
// state digest into prose. Every backend satisfies engine.Narrator.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"
)

//go:embed prompts/system.txt
var systemPrompt string

//go:embed prompts/turn.txt
var turnPromptText string

var turnTemplate = template.Must(template.New("turn").Parse(turnPromptText))

// Generation parameters shared by every backend.
const (
	temperature = 0.8
	maxTokens   = 350
)

// ErrNoCredentials is returned by New when no backend has an API key.
var ErrNoCredentials = errors.New("narrator: no credentials configured")

// SystemPrompt returns the fixed style directive sent with every request.
func SystemPrompt() string {
	return systemPrompt
}

// TurnPrompt renders the per-turn user message.
func TurnPrompt(digest, action, input string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Digest string
		Action string
		Input  string
	}{
		Digest: digest,
		Action: action,
		Input:  input,
	}
	if err := turnTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render turn prompt: %w", err)
	}
	return buf.String(), nil
}

// Backend is a named narrator.
type Backend interface {
	Name() string
	Narrate(ctx context.Context, digest, action, input string) (string, error)
}

// Chain tries each backend in order and returns the first non-empty
// narration.
type Chain struct {
	backends []Backend
	logger   *slog.Logger
}

// NewChain builds a Chain. It panics if no backends are given.
func NewChain(logger *slog.Logger, backends ...Backend) *Chain {
	if len(backends) == 0 {
		panic("narrator: NewChain needs at least one backend")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{backends: backends, logger: logger}
}

// Names lists the backends in the order they are tried.
func (c *Chain) Names() []string {
	names := make([]string, len(c.backends))
	for i, b := range c.backends {
		names[i] = b.Name()
	}
	return names
}

// Narrate implements engine.Narrator.
func (c *Chain) Narrate(ctx context.Context, digest, action, input string) (string, error) {
	var lastErr error
	for _, b := range c.backends {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := b.Narrate(ctx, digest, action, input)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if err == nil {
			err = errors.New("empty response")
		}
		lastErr = fmt.Errorf("%s: %w", b.Name(), err)
		c.logger.Warn("narrator backend failed, trying next", "backend", b.Name(), "err", err)
	}
	return "", lastErr
}

// Close closes every backend that holds resources.
func (c *Chain) Close() error {
	var errs []error
	for _, b := range c.backends {
		if cl, ok := b.(interface{ Close() error }); ok {
			errs = append(errs, cl.Close())
		}
	}
	return errors.Join(errs...)
}

// Settings selects and configures backends.
type Settings struct {
	// Order lists backend names to try: "gemini", "openai", "anyllm".
	Order []string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	AnyLLMProvider string
	AnyLLMAPIKey   string
	AnyLLMModel    string
	AnyLLMBaseURL  string

	// Timeout bounds each HTTP request a backend makes.
	Timeout time.Duration
}

// New builds a Chain from every backend in s.Order that has credentials.
// Backends without a key are skipped; if none remain it returns
// ErrNoCredentials.
func New(ctx context.Context, s Settings, logger *slog.Logger) (*Chain, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var backends []Backend
	for _, name := range s.Order {
		b, err := newBackend(ctx, name, s)
		if errors.Is(err, ErrNoCredentials) {
			logger.Debug("narrator backend skipped, no credentials", "backend", name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("narrator: create %q: %w", name, err)
		}
		logger.Info("narrator backend created", "backend", name)
		backends = append(backends, b)
	}
	if len(backends) == 0 {
		return nil, ErrNoCredentials
	}
	return NewChain(logger, backends...), nil
}

func newBackend(ctx context.Context, name string, s Settings) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gemini":
		return NewGemini(ctx, s.GeminiAPIKey, s.GeminiModel)
	case "openai":
		return NewOpenAI(s.OpenAIAPIKey, s.OpenAIModel, s.OpenAIBaseURL, s.Timeout)
	case "anyllm":
		return NewAnyLLM(s.AnyLLMProvider, s.AnyLLMModel, s.AnyLLMAPIKey, s.AnyLLMBaseURL)
	default:
		return nil, fmt.Errorf("unsupported backend %q; supported: gemini, openai, anyllm", name)
	}
}
