package engine

import "github.com/tatianab/kira-suspicion/internal/models"

// maybeGrantTVTarget gives the player a broadcast target after a move, with
// TVTargetProbability, unless one is already held.
func (e *Engine) maybeGrantTVTarget(t *turn) {
	s := t.state
	if s.Flags.TVTargetReady {
		return
	}
	if e.rng.Float64() >= e.tuning.TVTargetProbability {
		return
	}

	s.Flags.TVTargetReady = true
	name := e.tuning.CriminalNames[e.rng.IntN(len(e.tuning.CriminalNames))]
	t.emit(tvTargetEvent(s.Location, name))
}

func (e *Engine) investigateL(t *turn) {
	s := t.state
	if s.Location != models.LocationTaskForceHQ {
		t.emit(investigateOffSiteEvent)
		return
	}

	if e.rng.Float64() < e.tuning.InvestigateFailureProbability {
		applyDelta(s, e.tuning.InvestigateFailure)
		t.emit(investigateBackfireEvent)
		return
	}

	s.AdvanceInvestigation(1)
	applyDelta(s, e.tuning.InvestigateSuccess)

	if !s.Flags.SecondKiraRevealed {
		s.Flags.SecondKiraRevealed = true
		t.emit(secondKiraRevealEvent)
	}
}

func (e *Engine) befriendSecondKira(t *turn) {
	s := t.state
	switch {
	case !s.Flags.SecondKiraRevealed:
		t.emit(befriendUnknownEvent)
	case s.Flags.SecondKiraFriend:
		t.emit(befriendAlreadyEvent)
	default:
		s.Flags.SecondKiraFriend = true
		s.AdvanceInvestigation(1)
		applyDelta(s, e.tuning.Befriend)
		t.emit(befriendSuccessEvent)
	}
}

// revealCameras is the standing trap at home: once L's suspicion crosses the
// threshold, cameras go in and the player notices them. Checked every turn
// regardless of the action taken.
func (e *Engine) revealCameras(t *turn) {
	s := t.state
	if s.Location != models.LocationHome || s.CamerasAtHome {
		return
	}
	if s.SuspicionL < e.tuning.CameraThreshold {
		return
	}
	s.CamerasAtHome = true
	s.CamerasRevealedToPlayer = true
	t.emit(camerasEvent)
}
