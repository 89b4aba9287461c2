package main

import (
	"context"
	"os"

	"github.com/tatianab/kira-suspicion/internal/config"
	"github.com/tatianab/kira-suspicion/internal/tui"
)

const logFile = "kira-game.log"

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}

	// The alt screen owns the terminal, so logs go to a file.
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		config.Exitf("Error opening log file: %v", err)
	}
	defer f.Close()
	logger := cfg.NewLogger(f)

	eng, cleanup, err := cfg.NewEngine(ctx, logger, nil)
	if err != nil {
		config.Exitf("Error creating engine: %v", err)
	}
	defer cleanup()

	if err := tui.Run(eng); err != nil {
		config.Exitf("Error running TUI: %v", err)
	}
}
