package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/tatianab/kira-suspicion/internal/narrator"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4.1-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	AnyLLMProvider string `env:"ANYLLM_PROVIDER"`
	AnyLLMAPIKey   string `env:"ANYLLM_API_KEY"`
	AnyLLMModel    string `env:"ANYLLM_MODEL"`
	AnyLLMBaseURL  string `env:"ANYLLM_BASE_URL"`

	// NarratorOrder lists narrator backends in the order they are tried.
	NarratorOrder []string `env:"KIRA_NARRATOR_ORDER" envDefault:"openai,gemini,anyllm" envSeparator:","`

	// NarrationTimeout overrides the tuning file's narration timeout when set.
	NarrationTimeout time.Duration `env:"KIRA_NARRATION_TIMEOUT"`

	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `env:"KIRA_SEED"`

	TuningFile string `env:"KIRA_TUNING_FILE"`

	HTTPAddr string `env:"KIRA_HTTP_ADDR" envDefault:":8080"`

	// OTLPEndpoint enables span export from the HTTP server.
	OTLPEndpoint string `env:"KIRA_OTEL_ENDPOINT"`

	LogLevel  string `env:"KIRA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"KIRA_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("KIRA_LOG_FORMAT %q is invalid; valid values: text, json", cfg.LogFormat)
	}
	return cfg, nil
}

// NarratorSettings maps the configuration onto narrator.Settings.
func (c *Config) NarratorSettings(timeout time.Duration) narrator.Settings {
	return narrator.Settings{
		Order:          c.NarratorOrder,
		GeminiAPIKey:   c.GeminiAPIKey,
		GeminiModel:    c.GeminiModel,
		OpenAIAPIKey:   c.OpenAIAPIKey,
		OpenAIModel:    c.OpenAIModel,
		OpenAIBaseURL:  c.OpenAIBaseURL,
		AnyLLMProvider: c.AnyLLMProvider,
		AnyLLMAPIKey:   c.AnyLLMAPIKey,
		AnyLLMModel:    c.AnyLLMModel,
		AnyLLMBaseURL:  c.AnyLLMBaseURL,
		Timeout:        timeout,
	}
}

// NewLogger builds the slog logger described by the configuration.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("KIRA_LOG_LEVEL %q is invalid; valid values: debug, info, warn, error", s)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
