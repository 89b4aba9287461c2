package models

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ExportDir is where transcript exports are written.
const ExportDir = ".transcripts"

// Snapshot is the flat view of a GameState handed to presentation layers.
// History is deliberately left out.
type Snapshot struct {
	Turn                    int      `yaml:"turn" json:"turn"`
	Location                Location `yaml:"location" json:"location"`
	SuspicionL              int      `yaml:"suspicion_L" json:"suspicion_L"`
	SuspicionTaskForce      int      `yaml:"suspicion_task_force" json:"suspicion_task_force"`
	SuspicionPublic         int      `yaml:"suspicion_public" json:"suspicion_public"`
	NotebookHidden          bool     `yaml:"notebook_hidden" json:"notebook_hidden"`
	LInvestigationProgress  int      `yaml:"l_investigation_progress" json:"l_investigation_progress"`
	CamerasAtHome           bool     `yaml:"cameras_at_home" json:"cameras_at_home"`
	CamerasRevealedToPlayer bool     `yaml:"cameras_revealed_to_player" json:"cameras_revealed_to_player"`
	Flags                   Flags    `yaml:"flags" json:"flags"`
}

// Snapshot returns the serializable scalar view of s.
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		Turn:                    s.Turn,
		Location:                s.Location,
		SuspicionL:              s.SuspicionL,
		SuspicionTaskForce:      s.SuspicionTaskForce,
		SuspicionPublic:         s.SuspicionPublic,
		NotebookHidden:          s.NotebookHidden,
		LInvestigationProgress:  s.LInvestigationProgress,
		CamerasAtHome:           s.CamerasAtHome,
		CamerasRevealedToPlayer: s.CamerasRevealedToPlayer,
		Flags:                   s.Flags,
	}
}

type transcript struct {
	State   Snapshot       `yaml:"state"`
	History []HistoryEntry `yaml:"history"`
}

// ExportTranscript writes the snapshot and full history of s as YAML.
func (s *GameState) ExportTranscript(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(transcript{State: s.Snapshot(), History: s.History}); err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	return enc.Close()
}

// SaveTranscript exports s to <ExportDir>/<name>.yaml and returns the path.
func (s *GameState) SaveTranscript(name string) (string, error) {
	if err := os.MkdirAll(ExportDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(ExportDir, name+".yaml")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := s.ExportTranscript(f); err != nil {
		return "", err
	}
	return path, nil
}
