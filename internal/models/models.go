package models

// Location is where the player currently is. Caught and Victory are absorbing.
type Location string

const (
	LocationIntro       Location = "intro"
	LocationHome        Location = "home"
	LocationSchool      Location = "school"
	LocationTaskForceHQ Location = "task_force_hq"
	LocationDowntown    Location = "downtown"
	LocationCaught      Location = "caught"
	LocationVictory     Location = "victory"
)

// IsTerminal reports whether the session has ended.
func (l Location) IsTerminal() bool {
	return l == LocationCaught || l == LocationVictory
}

// Meter bounds.
const (
	MinSuspicion      = 0
	MaxSuspicion      = 100
	MaxLInvestigation = 3
)

// Flags holds the story switches that gate actions and events.
type Flags struct {
	TVTargetReady      bool `yaml:"tv_target_ready" json:"tv_target_ready"`
	SecondKiraRevealed bool `yaml:"second_kira_revealed" json:"second_kira_revealed"`
	SecondKiraFriend   bool `yaml:"second_kira_friend" json:"second_kira_friend"`
	LNameKnown         bool `yaml:"l_name_known" json:"l_name_known"`
}

// Speakers used in history entries.
const (
	SpeakerUser   = "user"
	SpeakerSystem = "system"
)

// HistoryEntry is a single line of the session transcript.
type HistoryEntry struct {
	Speaker string `yaml:"speaker" json:"speaker"`
	Text    string `yaml:"text" json:"text"`
}

// GameState is the whole mutable session. It is owned by a single caller and
// replaced wholesale on reset.
type GameState struct {
	Turn     int      `yaml:"turn"`
	Location Location `yaml:"location"`

	SuspicionL         int `yaml:"suspicion_l"`
	SuspicionTaskForce int `yaml:"suspicion_task_force"`
	SuspicionPublic    int `yaml:"suspicion_public"`

	NotebookHidden         bool `yaml:"notebook_hidden"`
	LInvestigationProgress int  `yaml:"l_investigation_progress"`

	CamerasAtHome           bool `yaml:"cameras_at_home"`
	CamerasRevealedToPlayer bool `yaml:"cameras_revealed_to_player"`

	Flags   Flags          `yaml:"flags"`
	History []HistoryEntry `yaml:"history"`
}

// NewGameState returns the state every session starts from.
func NewGameState() *GameState {
	return &GameState{
		Turn:           0,
		Location:       LocationIntro,
		NotebookHidden: true,
		History:        []HistoryEntry{},
	}
}

// Clone returns a deep copy of s.
func (s *GameState) Clone() *GameState {
	c := *s
	c.History = append([]HistoryEntry(nil), s.History...)
	return &c
}

// AddHistory appends one transcript line.
func (s *GameState) AddHistory(speaker, text string) {
	s.History = append(s.History, HistoryEntry{Speaker: speaker, Text: text})
}

// AdjustSuspicion applies deltas to the three meters and clamps each of them.
func (s *GameState) AdjustSuspicion(l, taskForce, public int) {
	s.SuspicionL = Clamp(s.SuspicionL+l, MinSuspicion, MaxSuspicion)
	s.SuspicionTaskForce = Clamp(s.SuspicionTaskForce+taskForce, MinSuspicion, MaxSuspicion)
	s.SuspicionPublic = Clamp(s.SuspicionPublic+public, MinSuspicion, MaxSuspicion)
}

// AdvanceInvestigation adds n to the L-investigation progress, capped.
func (s *GameState) AdvanceInvestigation(n int) {
	s.LInvestigationProgress = Clamp(s.LInvestigationProgress+n, 0, MaxLInvestigation)
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi int) int {
	return max(lo, min(hi, x))
}
