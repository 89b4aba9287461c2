package config

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tatianab/kira-suspicion/internal/engine"
	"github.com/tatianab/kira-suspicion/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "KIRA_NARRATOR_ORDER", "KIRA_SEED", "KIRA_LOG_LEVEL", "KIRA_LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if got := strings.Join(cfg.NarratorOrder, ","); got != "openai,gemini,anyllm" {
		t.Errorf("Unexpected narrator order %q", got)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("KIRA_NARRATOR_ORDER", "gemini")
	t.Setenv("KIRA_SEED", "42")
	t.Setenv("KIRA_NARRATION_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.NarrationTimeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %s", cfg.NarrationTimeout)
	}

	s := cfg.NarratorSettings(3 * time.Second)
	if s.GeminiAPIKey != "g-key" || len(s.Order) != 1 || s.Timeout != 3*time.Second {
		t.Errorf("Unexpected narrator settings %+v", s)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"KIRA_SEED":       "not-a-number",
		"KIRA_LOG_LEVEL":  "loud",
		"KIRA_LOG_FORMAT": "xml",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("Expected error for %s=%s", k, v)
			}
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	var buf bytes.Buffer
	cfg.NewLogger(&buf).Debug("hello", "turn", 3)
	if !strings.Contains(buf.String(), `"turn":3`) {
		t.Errorf("Expected JSON debug output, got %q", buf.String())
	}
}

func TestDecodeTuningOverrides(t *testing.T) {
	input := `
tv_target_probability: 0.5
win_min_public: 80
narration_timeout: 3s
deltas:
  lay_low:
    l: -5
    public: 2
`
	got, err := DecodeTuning(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTuning: %v", err)
	}
	def := engine.DefaultTuning()

	if got.TVTargetProbability != 0.5 {
		t.Errorf("Expected probability 0.5, got %v", got.TVTargetProbability)
	}
	if got.WinMinPublic != 80 {
		t.Errorf("Expected win_min_public 80, got %d", got.WinMinPublic)
	}
	if got.NarrationTimeout != 3*time.Second {
		t.Errorf("Expected 3s, got %s", got.NarrationTimeout)
	}
	if d := got.Delta(engine.ActionLayLow); d != (engine.Delta{L: -5, Public: 2}) {
		t.Errorf("Unexpected lay_low delta %+v", d)
	}
	if got.Delta(engine.ActionAlibi) != def.Delta(engine.ActionAlibi) {
		t.Errorf("Expected alibi delta untouched, got %+v", got.Delta(engine.ActionAlibi))
	}
	if got.InvestigateFailureProbability != def.InvestigateFailureProbability {
		t.Errorf("Expected failure probability untouched, got %v", got.InvestigateFailureProbability)
	}
}

func TestDecodeTuningEmpty(t *testing.T) {
	got, err := DecodeTuning(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeTuning: %v", err)
	}
	if got.TVTargetProbability != engine.DefaultTuning().TVTargetProbability {
		t.Errorf("Expected defaults for empty input")
	}
}

func TestDecodeTuningRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   "suspicion_multiplier: 2\n",
		"bad probability": "tv_target_probability: 1.5\n",
		"no names":        "criminal_names: []\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeTuning(strings.NewReader(input)); err == nil {
				t.Fatal("Expected error")
			}
		})
	}
}

func TestLoadTuningEmptyPath(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.CameraThreshold != 50 {
		t.Errorf("Expected default camera threshold, got %d", got.CameraThreshold)
	}
}

func TestNewEngineOffline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("narration_timeout: 9s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{
		NarratorOrder:    []string{"gemini", "openai"},
		NarrationTimeout: 2 * time.Second,
		Seed:             1,
		TuningFile:       path,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, cleanup, err := cfg.NewEngine(context.Background(), logger, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer cleanup()

	if got := e.Tuning().NarrationTimeout; got != 2*time.Second {
		t.Errorf("Expected env timeout to win, got %s", got)
	}

	s := models.NewGameState()
	s, _ = e.RunStep(context.Background(), s, "begin")
	_, out := e.RunStep(context.Background(), s, "lay low")
	if !strings.HasPrefix(out, "[OFFLINE]") {
		t.Errorf("Expected offline narration, got %q", out)
	}
}

func TestNewEngineBadTuningFile(t *testing.T) {
	cfg := &Config{TuningFile: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, _, err := cfg.NewEngine(context.Background(), slog.Default(), nil); err == nil {
		t.Fatal("Expected error for missing tuning file")
	}
}
