package narrator

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini narrates with Google's Gemini models.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a Gemini backend. An empty apiKey yields ErrNoCredentials.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNoCredentials
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	m := client.GenerativeModel(model)
	m.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	m.SetTemperature(temperature)
	m.SetMaxOutputTokens(maxTokens)

	return &Gemini{
		client: client,
		model:  m,
	}, nil
}

// Name implements Backend.
func (g *Gemini) Name() string { return "gemini" }

// Narrate implements Backend.
func (g *Gemini) Narrate(ctx context.Context, digest, action, input string) (string, error) {
	prompt, err := TurnPrompt(digest, action, input)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return string(text), nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}
