package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/kira-suspicion/internal/config"
	"github.com/tatianab/kira-suspicion/internal/engine"
	"github.com/tatianab/kira-suspicion/internal/models"
)

const maxTurns = 40

// scriptedPlan is played in a loop when no player model is available. It
// aims for the L-name ending.
var scriptedPlan = []string{
	"go to task force hq",
	"investigate l",
	"cooperate with the investigation",
	"investigate l",
	"create an alibi",
	"befriend second kira",
	"lay low",
	"investigate l",
	"find l's name",
	"go downtown",
	"write the name",
	"lay low",
}

type player interface {
	Next(ctx context.Context, s *models.GameState, lastOutput string) string
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	eng, cleanup, err := cfg.NewEngine(ctx, logger, nil)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer cleanup()

	var p player = &scriptedPlayer{plan: scriptedPlan}
	if cfg.GeminiAPIKey != "" {
		playerClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer playerClient.Close()
		p = &llmPlayer{model: playerClient.GenerativeModel(cfg.GeminiModel)}
		fmt.Println("Player: Gemini")
	} else {
		fmt.Println("Player: scripted")
	}

	fmt.Println(playSession(ctx, eng, p, maxTurns))
}

// playSession runs turns until the session ends or maxTurns is reached and
// returns a one-line result.
func playSession(ctx context.Context, eng *engine.Engine, p player, maxTurns int) string {
	s := models.NewGameState()
	s, out := eng.RunStep(ctx, s, "begin")

	for turn := 1; turn <= maxTurns && !s.Location.IsTerminal(); turn++ {
		action := p.Next(ctx, s, out)
		fmt.Printf("--- Turn %d ---\n", s.Turn+1)
		fmt.Printf("Player Action: %s\n", action)

		s, out = eng.RunStep(ctx, s, action)
		fmt.Printf("Outcome:\n%s\n", out)
		fmt.Printf("Meters: L=%d TaskForce=%d Public=%d Progress=%d Location=%s\n\n",
			s.SuspicionL, s.SuspicionTaskForce, s.SuspicionPublic, s.LInvestigationProgress, s.Location)
	}

	switch s.Location {
	case models.LocationVictory:
		return fmt.Sprintf("Game Ended: Kira wins on turn %d", s.Turn)
	case models.LocationCaught:
		return fmt.Sprintf("Game Ended: Kira caught on turn %d", s.Turn)
	}
	return fmt.Sprintf("Game Unfinished after %d turns", s.Turn)
}

type scriptedPlayer struct {
	plan []string
	next int
}

func (p *scriptedPlayer) Next(ctx context.Context, s *models.GameState, lastOutput string) string {
	action := p.plan[p.next%len(p.plan)]
	p.next++
	return action
}

type llmPlayer struct {
	model *genai.GenerativeModel
}

func (p *llmPlayer) Next(ctx context.Context, s *models.GameState, lastOutput string) string {
	prompt := fmt.Sprintf(`You are playing a text game as Light, secretly Kira, working alongside L's Task Force.
Keep suspicion below 100 while using the notebook, or learn L's real name.

Last game output:
%s

Current state:
%s

Useful commands: watch tv, write the name, create an alibi, cooperate with the investigation,
lay low, hide the notebook, go home, go to school, go to task force hq, go downtown,
investigate l, befriend second kira, find l's name.

What is your next action? Return ONLY the action string, no extra commentary.`,
		lastOutput,
		engine.Digest(s),
	)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "lay low"
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "look around"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}
