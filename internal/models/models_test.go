package models

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewGameStateDefaults(t *testing.T) {
	s := NewGameState()

	if s.Turn != 0 {
		t.Errorf("Expected turn 0, got %d", s.Turn)
	}
	if s.Location != LocationIntro {
		t.Errorf("Expected location intro, got %s", s.Location)
	}
	if !s.NotebookHidden {
		t.Error("Expected notebook to start hidden")
	}
	if s.CamerasAtHome || s.CamerasRevealedToPlayer {
		t.Error("Expected no cameras at start")
	}
	if s.Flags != (Flags{}) {
		t.Errorf("Expected zero flags, got %+v", s.Flags)
	}

	if !reflect.DeepEqual(s, NewGameState()) {
		t.Error("Expected two fresh states to be identical")
	}
}

func TestAdjustSuspicionClamps(t *testing.T) {
	s := NewGameState()
	s.SuspicionL = 99
	s.SuspicionTaskForce = 2

	s.AdjustSuspicion(8, -6, 150)

	if s.SuspicionL != 100 {
		t.Errorf("Expected L clamped to 100, got %d", s.SuspicionL)
	}
	if s.SuspicionTaskForce != 0 {
		t.Errorf("Expected task force clamped to 0, got %d", s.SuspicionTaskForce)
	}
	if s.SuspicionPublic != 100 {
		t.Errorf("Expected public clamped to 100, got %d", s.SuspicionPublic)
	}
}

func TestAdvanceInvestigationCaps(t *testing.T) {
	s := NewGameState()
	for range 5 {
		s.AdvanceInvestigation(1)
	}
	if s.LInvestigationProgress != MaxLInvestigation {
		t.Errorf("Expected progress %d, got %d", MaxLInvestigation, s.LInvestigationProgress)
	}
}

func TestLocationIsTerminal(t *testing.T) {
	terminal := map[Location]bool{
		LocationIntro:       false,
		LocationHome:        false,
		LocationSchool:      false,
		LocationTaskForceHQ: false,
		LocationDowntown:    false,
		LocationCaught:      true,
		LocationVictory:     true,
	}
	for loc, want := range terminal {
		if got := loc.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", loc, got, want)
		}
	}
}

func TestExportTranscript(t *testing.T) {
	s := NewGameState()
	s.Turn = 2
	s.Location = LocationSchool
	s.SuspicionL = 12
	s.Flags.TVTargetReady = true
	s.AddHistory(SpeakerUser, "go to school")
	s.AddHistory(SpeakerSystem, "You walk to class.")

	var buf bytes.Buffer
	if err := s.ExportTranscript(&buf); err != nil {
		t.Fatalf("ExportTranscript: %v", err)
	}

	var got struct {
		State   Snapshot       `yaml:"state"`
		History []HistoryEntry `yaml:"history"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Failed to parse transcript: %v", err)
	}

	if got.State != s.Snapshot() {
		t.Errorf("Expected snapshot %+v, got %+v", s.Snapshot(), got.State)
	}
	if len(got.History) != 2 || got.History[1].Speaker != SpeakerSystem {
		t.Errorf("Unexpected history: %+v", got.History)
	}
	if !strings.Contains(buf.String(), "suspicion_L: 12") {
		t.Errorf("Expected suspicion_L key in transcript, got:\n%s", buf.String())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewGameState()
	s.AddHistory(SpeakerUser, "watch tv")

	c := s.Clone()
	c.AddHistory(SpeakerSystem, "You watch.")
	c.SuspicionL = 40
	c.Flags.TVTargetReady = true

	if len(s.History) != 1 || s.SuspicionL != 0 || s.Flags.TVTargetReady {
		t.Errorf("Expected original untouched, got %+v", s)
	}
	if !reflect.DeepEqual(s.Clone(), s) {
		t.Error("Expected clone to equal original")
	}
}
