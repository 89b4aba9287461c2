package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/kira-suspicion/internal/models"
)

const introText = "Welcome to the Kira Suspicion Simulator.\n\n" +
	"You are secretly Kira, using a supernatural notebook that can kill.\n" +
	"Publicly, you have just agreed to work with L and the Task Force to help\n" +
	"catch 'Kira', without letting anyone realize that Kira is you.\n\n" +
	"In this version of the story, you can only write a name after you've\n" +
	"recently watched a TV or public screen and seen someone's face and name.\n\n" +
	"Type what you want to do each turn. For example:\n" +
	"- 'watch tv' or 'watch the news'\n" +
	"- 'write a criminal's name' (after watching a screen)\n" +
	"- 'look around' to see where you can move\n" +
	"- 'cooperate with the investigation'\n" +
	"- 'create an alibi'\n" +
	"- 'lay low'\n" +
	"- 'investigate L'\n" +
	"- move: 'go home', 'go to school', 'go to task force hq', 'go downtown'\n" +
	"- 'status' to see location and suspicion levels\n\n" +
	"Your goal is to use the notebook without letting suspicion reach 100,\n" +
	"or to uncover the detective's true name before he catches you."

const helpText = "Commands you can try:\n" +
	"- 'watch tv' or 'watch the news' to get a target\n" +
	"- 'write a name' to use the notebook (only after watching a screen)\n" +
	"- 'look around' to see where you can move\n" +
	"- 'create an alibi' or 'cover my tracks'\n" +
	"- 'cooperate with the investigation'\n" +
	"- 'lay low' or 'do nothing'\n" +
	"- 'hide the notebook'\n" +
	"- 'investigate L' at task force hq to build progress (may reveal a second Kira, " +
	"but sometimes backfires and sharply raises L's suspicion)\n" +
	"- after the TV reveal: 'befriend second kira' to try forming an alliance\n" +
	"- move: 'go home', 'go to school', 'go to task force hq', 'go downtown'\n" +
	"- later: try to find L's name when you think you're ready\n" +
	"- 'status' to see location, cameras, and suspicion levels\n"

const (
	caughtAgainText = "You have already been exposed as Kira.\n" +
		"Use the Reset button to start a new timeline."
	victoryAgainText = "You have already reshaped this timeline according to your will.\n" +
		"Use the Reset button if you want to attempt a different path."
	emptyInputText = "Say or do something first."
)

const (
	lowSuspicionWinText = "\nThe world tilts in your favor.\n" +
		"Deaths continue to follow the pattern you choose, but L and the Task\n" +
		"Force never quite manage to pin them on you. You remain their ally\n" +
		"on paper and their god in secret.\n" +
		"Use Reset if you want to attempt a different path."
	caughtText = "\nThe pieces finally line up.\n" +
		"Your movements, alibis, and timing all converge on one conclusion.\n" +
		"You are confronted with the evidence and quietly cornered.\n" +
		"You have been exposed as Kira. Game over.\n" +
		"Use Reset to start a new timeline."
	discoverWinText = "\nThrough careful investigation and controlled risks, " +
		"you finally piece together the detective's true identity.\n" +
		"With his real name in your hands, the one person who could " +
		"truly corner you is no longer untouchable.\n" +
		"This timeline now belongs to Kira.\n" +
		"Use Reset if you want to explore a different path."
	discoverFailText = "\nYou reach too far, too soon.\n" +
		"Your attempts to uncover L's identity run into fake records " +
		"and suddenly watchful eyes.\n" +
		"If you want his name, you need more groundwork first."
)

const (
	writeWithoutTVEvent = "You reach for the notebook, but you have no fresh name and face from a broadcast.\n" +
		"In this timeline, the notebook only answers when your target has just been paraded " +
		"across a screen. For now, the pages stay still."
	investigateOffSiteEvent = "You try to piece together information about L from here, " +
		"but without direct access to the Task Force data at headquarters " +
		"it's mostly rumors and guesswork.\n" +
		"If you want to truly investigate L, you should go to task force hq first."
	investigateBackfireEvent = "At headquarters, you push a little too hard for details about L himself.\n" +
		"Your questions linger in the air a bit too long, and you catch the way " +
		"L's eyes rest on you.\n" +
		"This attempt to investigate him backfires. His suspicion of you spikes sharply."
	secondKiraRevealEvent = "While you're reviewing case files with the Task Force, a breaking-news banner " +
		"cuts across the TV in the corner.\n" +
		"A distorted voice claiming to be 'Kira' appears, demanding to speak directly " +
		"with L. The style is theatrical and reckless, nothing like the careful pattern " +
		"you've established.\n" +
		"On screen and in the room, people start whispering about a 'second Kira' who " +
		"may share your power but not your caution.\n" +
		"If you can quietly befriend this second Kira, they might help you read how L " +
		"reacts to new threats.\n" +
		"Try commands like 'befriend second kira' or 'ally with the second kira'."
	befriendUnknownEvent = "You hear nothing but rumors. If there is a second Kira, you haven't seen enough " +
		"to reach them yet. Maybe you should investigate L at task force hq first."
	befriendAlreadyEvent = "Your fragile alliance with the second Kira is already in place. For now you both " +
		"keep your distance and watch how L responds."
	befriendSuccessEvent = "Through carefully coded messages, you manage to reach the second Kira.\n" +
		"They are impulsive and eager to please, willing to act just to see how L reacts.\n" +
		"By nudging their actions, you gain a clearer view of L's methods and timing.\n" +
		"Your understanding of L deepens (+1 L-investigation progress), but the " +
		"case also becomes stranger and harder to hide."
	camerasEvent = "When you settle back into your room, something feels wrong.\n" +
		"A faint click from the ceiling, a lens glint near the bookshelf: " +
		"someone has installed hidden cameras in your home.\n" +
		"Using the notebook here is now extremely risky."
)

// tvPlaces flavors the TV-target event by where the player ends up.
var tvPlaces = map[models.Location]string{
	models.LocationHome:        "a news report on the living room TV",
	models.LocationSchool:      "a TV left on in the school hallway",
	models.LocationTaskForceHQ: "a muted news feed playing in the Task Force's lobby",
	models.LocationDowntown:    "a row of bright TVs in a shop window",
}

func tvTargetEvent(loc models.Location, name string) string {
	place, ok := tvPlaces[loc]
	if !ok {
		place = tvPlaces[models.LocationDowntown]
	}
	return fmt.Sprintf("As you move, %s catches your eye.\n"+
		"The anchors repeat the name and show the face of a wanted criminal: %s.\n"+
		"You now have a clear name and face in mind. You could write this person in the notebook.",
		place, name)
}

func lookAroundText(loc models.Location) string {
	return fmt.Sprintf("You look around. Right now you are at: %s.\n\n", loc) +
		"From here, you can move to:\n" +
		"- home\n" +
		"- school\n" +
		"- task force hq\n" +
		"- downtown\n\n" +
		"Use commands like 'go home', 'go to school', " +
		"'go to task force hq', or 'go downtown'."
}

// Summary is the status block shown for "status", at endings and in
// offline narration.
func Summary(s *models.GameState) string {
	camera := "no known cameras at home"
	if s.CamerasRevealedToPlayer {
		camera = "hidden cameras detected at home"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current location: %s\n", s.Location)
	fmt.Fprintf(&b, "Home security: %s\n", camera)
	b.WriteString("Suspicion levels:\n")
	fmt.Fprintf(&b, "- L: %d/100\n", s.SuspicionL)
	fmt.Fprintf(&b, "- Task Force: %d/100\n", s.SuspicionTaskForce)
	if s.SuspicionPublic > 0 {
		fmt.Fprintf(&b, "- Public: %d/100\n", s.SuspicionPublic)
	}
	fmt.Fprintf(&b, "L-investigation progress: %d/%d\n", s.LInvestigationProgress, models.MaxLInvestigation)
	return b.String()
}
