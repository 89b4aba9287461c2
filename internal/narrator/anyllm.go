package narrator

import (
	"context"
	"fmt"
	"strings"

	anyllmlib "github.com/mozilla-ai/any-llm-go"
	"github.com/mozilla-ai/any-llm-go/providers/anthropic"
	"github.com/mozilla-ai/any-llm-go/providers/deepseek"
	"github.com/mozilla-ai/any-llm-go/providers/mistral"
	"github.com/mozilla-ai/any-llm-go/providers/ollama"
)

// AnyLLM narrates through any-llm-go, covering providers without a dedicated
// backend here (anthropic, ollama, mistral, deepseek).
type AnyLLM struct {
	provider string
	backend  anyllmlib.Provider
	model    string
}

// NewAnyLLM creates an any-llm backend. An empty provider yields
// ErrNoCredentials, as does a missing apiKey for hosted providers; ollama runs
// locally and needs none.
func NewAnyLLM(provider, model, apiKey, baseURL string) (*AnyLLM, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" || (apiKey == "" && provider != "ollama") {
		return nil, ErrNoCredentials
	}
	if model == "" {
		return nil, fmt.Errorf("anyllm: model must not be empty")
	}

	var opts []anyllmlib.Option
	if apiKey != "" {
		opts = append(opts, anyllmlib.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, anyllmlib.WithBaseURL(baseURL))
	}

	var (
		backend anyllmlib.Provider
		err     error
	)
	switch provider {
	case "anthropic":
		backend, err = anthropic.New(opts...)
	case "ollama":
		backend, err = ollama.New(opts...)
	case "mistral":
		backend, err = mistral.New(opts...)
	case "deepseek":
		backend, err = deepseek.New(opts...)
	default:
		return nil, fmt.Errorf("anyllm: unsupported provider %q; supported: anthropic, ollama, mistral, deepseek", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("anyllm: create %q backend: %w", provider, err)
	}

	return &AnyLLM{provider: provider, backend: backend, model: model}, nil
}

// Name implements Backend.
func (a *AnyLLM) Name() string { return "anyllm/" + a.provider }

// Narrate implements Backend.
func (a *AnyLLM) Narrate(ctx context.Context, digest, action, input string) (string, error) {
	prompt, err := TurnPrompt(digest, action, input)
	if err != nil {
		return "", err
	}

	t := float64(temperature)
	mt := maxTokens
	resp, err := a.backend.Completion(ctx, anyllmlib.CompletionParams{
		Model: a.model,
		Messages: []anyllmlib.Message{
			{Role: anyllmlib.RoleSystem, Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: &t,
		MaxTokens:   &mt,
	})
	if err != nil {
		return "", fmt.Errorf("anyllm: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("anyllm: empty choices in response")
	}
	return resp.Choices[0].Message.ContentString(), nil
}
