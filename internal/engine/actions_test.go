package engine

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  ActionLabel
	}{
		{"status", ActionStatus},
		{"  STATUS ", ActionStatus},
		{"look", ActionLookAround},
		{"look around", ActionLookAround},
		{"where can i go", ActionLookAround},
		{"write a criminal's name", ActionWriteName},
		{"write his name and then go home", ActionWriteName},
		{"write the name while I watch tv", ActionWriteName},
		{"watch the news", ActionWatchTV},
		{"look at the tv", ActionWatchTV},
		{"create an alibi", ActionAlibi},
		{"cover my tracks", ActionAlibi},
		{"discover l's name", ActionAlibi}, // "cover" is checked first
		{"cooperate with the investigation", ActionCooperate},
		{"help with the investigation", ActionCooperate},
		{"hide the notebook", ActionHideNotebook},
		{"move the notebook", ActionHideNotebook},
		{"relocate it under the floor", ActionHideNotebook},
		{"lay low", ActionLayLow},
		{"do nothing today", ActionLayLow},
		{"go home", ActionMoveHome},
		{"head back home", ActionMoveHome},
		{"go to school", ActionMoveSchool},
		{"go to class", ActionMoveSchool},
		{"go to task force hq", ActionMoveTaskForceHQ},
		{"meet the task force", ActionMoveTaskForceHQ},
		{"go downtown", ActionMoveDowntown},
		{"walk around town", ActionMoveDowntown},
		{"investigate l", ActionInvestigateL},
		{"learn about l", ActionInvestigateL},
		{"befriend second kira", ActionBefriendSecondKira},
		{"ally with the second kira", ActionBefriendSecondKira},
		{"find l's name", ActionDiscoverLName},
		{"figure out l's name", ActionDiscoverLName},
		{"help", ActionHelp},
		{"eat a potato chip", ActionOther},
		{"status report", ActionOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(Normalize(tt.input)); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyWritePrecedesMovement(t *testing.T) {
	moves := []string{"go home", "go to school", "go to task force hq", "go downtown"}
	for _, m := range moves {
		input := "write the name, then " + m
		if got := Classify(Normalize(input)); got != ActionWriteName {
			t.Errorf("Classify(%q) = %s, want %s", input, got, ActionWriteName)
		}
	}
}

func TestActionLabelKinds(t *testing.T) {
	for label := range destinations {
		if !label.IsMove() {
			t.Errorf("%s should be a move", label)
		}
	}
	if ActionInvestigateL.IsMove() {
		t.Error("investigate_L should not be a move")
	}
	for _, l := range []ActionLabel{ActionStatus, ActionHelp, ActionLookAround} {
		if !l.IsInformational() {
			t.Errorf("%s should be informational", l)
		}
	}
	if ActionWatchTV.IsInformational() {
		t.Error("watch_tv should not be informational")
	}
}
