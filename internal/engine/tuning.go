package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tatianab/kira-suspicion/internal/models"
)

// Delta is a signed change to each suspicion meter.
type Delta struct {
	L         int `yaml:"l"`
	TaskForce int `yaml:"task_force"`
	Public    int `yaml:"public"`
}

// Tuning collects every numeric rule constant so alternate balances can be
// loaded without touching the rules themselves.
type Tuning struct {
	// Deltas is the base meter change per action label. Labels without an
	// entry leave the meters alone.
	Deltas map[ActionLabel]Delta `yaml:"deltas"`

	// CameraWriteExtra is added on top of write_name when writing at home
	// while cameras are installed.
	CameraWriteExtra Delta `yaml:"camera_write_extra"`
	CameraThreshold  int   `yaml:"camera_threshold"`

	TVTargetProbability float64  `yaml:"tv_target_probability"`
	CriminalNames       []string `yaml:"criminal_names"`

	InvestigateFailureProbability float64 `yaml:"investigate_failure_probability"`
	InvestigateFailure            Delta   `yaml:"investigate_failure"`
	InvestigateSuccess            Delta   `yaml:"investigate_success"`

	Befriend Delta `yaml:"befriend"`

	DiscoverMinProgress int   `yaml:"discover_min_progress"`
	DiscoverMinTurn     int   `yaml:"discover_min_turn"`
	DiscoverMaxL        int   `yaml:"discover_max_l"`
	DiscoverFailure     Delta `yaml:"discover_failure"`

	WinMaxL         int `yaml:"win_max_l"`
	WinMaxTaskForce int `yaml:"win_max_task_force"`
	WinMinTurn      int `yaml:"win_min_turn"`

	// WinMinPublic additionally requires public support at or above this
	// value. Zero disables the check.
	WinMinPublic int `yaml:"win_min_public"`

	NarrationTimeout time.Duration `yaml:"narration_timeout"`
	NarrationMarker  string        `yaml:"narration_marker"`

	// AppendSummary adds the numeric status block after successful narration.
	AppendSummary bool `yaml:"append_summary"`
}

// DefaultTuning returns the canonical balance.
func DefaultTuning() Tuning {
	return Tuning{
		Deltas: map[ActionLabel]Delta{
			ActionWriteName:          {L: 8, TaskForce: 5},
			ActionWriteNameWithoutTV: {L: 1},
			ActionWatchTV:            {L: 1, TaskForce: 1},
			ActionAlibi:              {L: 2, TaskForce: -6},
			ActionCooperate:          {L: 3, TaskForce: -4},
			ActionHideNotebook:       {L: 1},
			ActionLayLow:             {L: -2, TaskForce: -1},
			ActionMoveHome:           {L: -1, TaskForce: -1},
			ActionMoveSchool:         {TaskForce: -1},
			ActionMoveTaskForceHQ:    {L: 2, TaskForce: -2},
			ActionMoveDowntown:       {},
			ActionOther:              {L: 1},
		},
		CameraWriteExtra: Delta{L: 10, TaskForce: 10},
		CameraThreshold:  50,

		TVTargetProbability: 0.35,
		CriminalNames: []string{
			"Hideo Takahashi",
			"Mika Tanaka",
			"Daisuke Mori",
			"Ryoji Nakamura",
			"Kazuo Arai",
		},

		InvestigateFailureProbability: 0.5,
		InvestigateFailure:            Delta{L: 30},
		InvestigateSuccess:            Delta{L: 5, TaskForce: 3},

		Befriend: Delta{L: 4, TaskForce: 2},

		DiscoverMinProgress: 3,
		DiscoverMinTurn:     6,
		DiscoverMaxL:        70,
		DiscoverFailure:     Delta{L: 12, TaskForce: 8},

		WinMaxL:         40,
		WinMaxTaskForce: 40,
		WinMinTurn:      10,

		NarrationTimeout: 20 * time.Second,
		NarrationMarker:  "[NARRATOR]",
	}
}

// Delta returns the base meter change for a label.
func (t Tuning) Delta(a ActionLabel) Delta {
	return t.Deltas[a]
}

// Validate reports every inconsistent value in t.
func (t Tuning) Validate() error {
	var errs []error
	checkProbability := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s %v is outside [0,1]", name, p))
		}
	}
	checkProbability("tv_target_probability", t.TVTargetProbability)
	checkProbability("investigate_failure_probability", t.InvestigateFailureProbability)

	if len(t.CriminalNames) == 0 {
		errs = append(errs, errors.New("criminal_names must not be empty"))
	}
	if t.NarrationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("narration_timeout %s must be positive", t.NarrationTimeout))
	}
	if t.DiscoverMinProgress < 0 || t.DiscoverMinProgress > models.MaxLInvestigation {
		errs = append(errs, fmt.Errorf("discover_min_progress %d is outside [0,%d]", t.DiscoverMinProgress, models.MaxLInvestigation))
	}
	return errors.Join(errs...)
}
