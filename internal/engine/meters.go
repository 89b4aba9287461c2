package engine

import "github.com/tatianab/kira-suspicion/internal/models"

// turn accumulates what a single RunStep produces before narration.
type turn struct {
	state *models.GameState
	label ActionLabel
	raw   string

	// events are one-shot messages shown ahead of the narration.
	events []string

	// consumeTV clears the TV target once narration has been produced.
	consumeTV bool
}

func (t *turn) emit(msg string) {
	t.events = append(t.events, msg)
}

var destinations = map[ActionLabel]models.Location{
	ActionMoveHome:        models.LocationHome,
	ActionMoveSchool:      models.LocationSchool,
	ActionMoveTaskForceHQ: models.LocationTaskForceHQ,
	ActionMoveDowntown:    models.LocationDowntown,
}

func applyDelta(s *models.GameState, d Delta) {
	s.AdjustSuspicion(d.L, d.TaskForce, d.Public)
}

// apply runs the mutation and events for every label except discovery,
// which resolves straight to an ending.
func (e *Engine) apply(t *turn) {
	s := t.state

	switch {
	case t.label == ActionWriteName:
		e.writeName(t)
	case t.label == ActionWatchTV:
		s.Flags.TVTargetReady = true
		applyDelta(s, e.tuning.Delta(t.label))
	case t.label == ActionHideNotebook:
		s.NotebookHidden = true
		applyDelta(s, e.tuning.Delta(t.label))
	case t.label.IsMove():
		s.Location = destinations[t.label]
		applyDelta(s, e.tuning.Delta(t.label))
		e.maybeGrantTVTarget(t)
	case t.label == ActionInvestigateL:
		e.investigateL(t)
	case t.label == ActionBefriendSecondKira:
		e.befriendSecondKira(t)
	default:
		applyDelta(s, e.tuning.Delta(t.label))
	}
}

// writeName kills only with a fresh TV target; otherwise the label degrades
// to write_name_without_tv.
func (e *Engine) writeName(t *turn) {
	s := t.state
	if !s.Flags.TVTargetReady {
		t.label = ActionWriteNameWithoutTV
		applyDelta(s, e.tuning.Delta(t.label))
		t.emit(writeWithoutTVEvent)
		return
	}

	applyDelta(s, e.tuning.Delta(ActionWriteName))
	if s.Location == models.LocationHome && s.CamerasAtHome {
		applyDelta(s, e.tuning.CameraWriteExtra)
	}
	t.consumeTV = true
}
