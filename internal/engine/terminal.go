package engine

import "github.com/tatianab/kira-suspicion/internal/models"

// resolveDiscovery settles an attempt to learn L's name. It always ends the
// turn without narration: either a win, a loss, or a static rebuke.
func (e *Engine) resolveDiscovery(t *turn) string {
	s := t.state
	tn := e.tuning

	if s.LInvestigationProgress >= tn.DiscoverMinProgress &&
		s.Turn >= tn.DiscoverMinTurn &&
		s.SuspicionL <= tn.DiscoverMaxL {
		s.Flags.LNameKnown = true
		s.Location = models.LocationVictory
		return Summary(s) + discoverWinText
	}

	applyDelta(s, tn.DiscoverFailure)
	if out, over := e.checkLoss(s); over {
		return out
	}
	return Summary(s) + discoverFailText
}

// checkTerminal evaluates the loss and low-suspicion win conditions after a
// mutating action.
func (e *Engine) checkTerminal(s *models.GameState) (string, bool) {
	if out, over := e.checkLoss(s); over {
		return out, true
	}
	return e.checkLowSuspicionWin(s)
}

func (e *Engine) checkLoss(s *models.GameState) (string, bool) {
	if s.SuspicionL < models.MaxSuspicion && s.SuspicionTaskForce < models.MaxSuspicion {
		return "", false
	}
	s.Location = models.LocationCaught
	return Summary(s) + caughtText, true
}

func (e *Engine) checkLowSuspicionWin(s *models.GameState) (string, bool) {
	tn := e.tuning
	if s.SuspicionL > tn.WinMaxL || s.SuspicionTaskForce > tn.WinMaxTaskForce || s.Turn < tn.WinMinTurn {
		return "", false
	}
	if tn.WinMinPublic > 0 && s.SuspicionPublic < tn.WinMinPublic {
		return "", false
	}
	s.Location = models.LocationVictory
	return Summary(s) + lowSuspicionWinText, true
}

func concludedText(loc models.Location) string {
	if loc == models.LocationCaught {
		return caughtAgainText
	}
	return victoryAgainText
}
