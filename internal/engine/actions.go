package engine

import (
	"slices"
	"strings"
)

// ActionLabel is the discrete meaning assigned to a player's free-text input.
type ActionLabel string

const (
	ActionStatus             ActionLabel = "status"
	ActionLookAround         ActionLabel = "look_around"
	ActionWriteName          ActionLabel = "write_name"
	ActionWriteNameWithoutTV ActionLabel = "write_name_without_tv"
	ActionWatchTV            ActionLabel = "watch_tv"
	ActionAlibi              ActionLabel = "alibi"
	ActionCooperate          ActionLabel = "cooperate"
	ActionHideNotebook       ActionLabel = "hide_notebook"
	ActionLayLow             ActionLabel = "lay_low"
	ActionMoveHome           ActionLabel = "move_home"
	ActionMoveSchool         ActionLabel = "move_school"
	ActionMoveTaskForceHQ    ActionLabel = "move_task_force_hq"
	ActionMoveDowntown       ActionLabel = "move_downtown"
	ActionInvestigateL       ActionLabel = "investigate_L"
	ActionBefriendSecondKira ActionLabel = "befriend_second_kira"
	ActionDiscoverLName      ActionLabel = "discover_L_name"
	ActionHelp               ActionLabel = "help"
	ActionOther              ActionLabel = "other"
)

// IsMove reports whether the label changes the player's location.
func (a ActionLabel) IsMove() bool {
	switch a {
	case ActionMoveHome, ActionMoveSchool, ActionMoveTaskForceHQ, ActionMoveDowntown:
		return true
	}
	return false
}

// IsInformational reports whether the label only reports on the session.
func (a ActionLabel) IsInformational() bool {
	return a == ActionStatus || a == ActionHelp || a == ActionLookAround
}

var (
	lookAroundPhrases = []string{"look", "look around", "look around the room", "where can i go"}

	watchTVPhrases = []string{
		"watch tv", "watch the tv", "turn on tv", "turn on the tv",
		"watch the news", "watch news", "check the news",
		"look at the tv", "look at tv", "look at the screen",
		"watch the screen", "watch a screen",
	}

	alibiKeywords = []string{"alibi", "cover", "lie", "excuse"}

	layLowPhrases = []string{"lay low", "do nothing", "stay quiet"}

	moveHomePhrases      = []string{"go home", "return home", "back home", "to my room", "to my house"}
	moveSchoolPhrases    = []string{"go to school", "go to class", "go to campus", "to school"}
	moveTaskForcePhrases = []string{"task force hq", "go to hq", "go to task force", "meet the task force", "go to police"}
	moveDowntownPhrases  = []string{"go downtown", "go outside", "go into the city", "walk around town", "go out"}

	investigatePhrases = []string{
		"investigate l", "study l", "research l",
		"analyze l", "look into l", "learn about l",
	}

	befriendPhrases = []string{
		"befriend second kira", "ally with second kira", "ally with the second kira",
		"contact second kira", "meet second kira", "work with second kira",
	}

	discoverPhrases = []string{
		"l's real name", "l's true name", "find l's name", "learn l's name",
		"discover l's name", "figure out l's name", "know l's name",
	}
)

// Normalize lower-cases and trims raw player input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Classify maps normalized text to an action label. Rules are checked in a
// fixed order and the first match wins, so "write his name and go home" is a
// write, not a move.
func Classify(text string) ActionLabel {
	switch {
	case text == "status":
		return ActionStatus
	case slices.Contains(lookAroundPhrases, text):
		return ActionLookAround
	case strings.Contains(text, "write") && strings.Contains(text, "name"):
		return ActionWriteName
	case containsAny(text, watchTVPhrases):
		return ActionWatchTV
	case containsAny(text, alibiKeywords):
		return ActionAlibi
	case strings.Contains(text, "cooperate"),
		strings.Contains(text, "help") && strings.Contains(text, "investigation"):
		return ActionCooperate
	case strings.Contains(text, "hide"),
		strings.Contains(text, "move the notebook"),
		strings.Contains(text, "relocate"):
		return ActionHideNotebook
	case containsAny(text, layLowPhrases):
		return ActionLayLow
	case containsAny(text, moveHomePhrases):
		return ActionMoveHome
	case containsAny(text, moveSchoolPhrases):
		return ActionMoveSchool
	case containsAny(text, moveTaskForcePhrases):
		return ActionMoveTaskForceHQ
	case containsAny(text, moveDowntownPhrases):
		return ActionMoveDowntown
	case containsAny(text, investigatePhrases):
		return ActionInvestigateL
	case containsAny(text, befriendPhrases):
		return ActionBefriendSecondKira
	case containsAny(text, discoverPhrases):
		return ActionDiscoverLName
	case text == "help":
		return ActionHelp
	}
	return ActionOther
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
