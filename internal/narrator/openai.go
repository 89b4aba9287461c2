package narrator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

// OpenAI narrates through the OpenAI chat completions API.
type OpenAI struct {
	client oai.Client
	model  string
}

// NewOpenAI creates an OpenAI backend. An empty apiKey yields
// ErrNoCredentials. baseURL and timeout are optional.
func NewOpenAI(apiKey, model, baseURL string, timeout time.Duration) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrNoCredentials
	}
	if model == "" {
		model = "gpt-4.1-mini"
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		reqOpts = append(reqOpts, option.WithHTTPClient(&http.Client{
			Timeout: timeout,
		}))
	}

	return &OpenAI{client: oai.NewClient(reqOpts...), model: model}, nil
}

// Name implements Backend.
func (p *OpenAI) Name() string { return "openai" }

// Narrate implements Backend.
func (p *OpenAI) Narrate(ctx context.Context, digest, action, input string) (string, error) {
	prompt, err := TurnPrompt(digest, action, input)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt),
			oai.UserMessage(prompt),
		},
		Temperature:         param.NewOpt(temperature),
		MaxCompletionTokens: param.NewOpt(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
