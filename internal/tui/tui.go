package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/kira-suspicion/internal/engine"
	"github.com/tatianab/kira-suspicion/internal/models"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateThinking
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	game      *models.GameState
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D7875F")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D70000")).
			Bold(true).
			Underline(true)
)

const welcome = "A notebook lies on your desk. Type anything to begin."

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return model{
		state:     statePlaying,
		engine:    eng,
		game:      models.NewGameState(),
		textInput: ti,
		viewport:  viewport.New(80, 20),
		gameLog:   noticeStyle.Render(welcome) + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type turnPlayedMsg struct {
	game    *models.GameState
	outcome string
}

type exportedMsg struct {
	path string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			action := strings.TrimSpace(m.textInput.Value())
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()

			switch action {
			case "/quit":
				return m, tea.Quit
			case "/reset":
				m.game = models.NewGameState()
				m.gameLog = noticeStyle.Render("The timeline resets. "+welcome) + "\n\n"
				m.refresh()
				return m, nil
			case "/export":
				return m, m.export()
			}

			m.gameLog += userStyle.Width(m.logWidth()).Render("> "+action) + "\n\n"
			m.refresh()
			m.state = stateThinking
			return m, m.playTurn(action)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.refresh()

	case turnPlayedMsg:
		m.game = msg.game
		m.state = statePlaying
		m.gameLog += gameStyle.Width(m.logWidth()).Render(msg.outcome) + "\n\n"
		m.refresh()
		return m, nil

	case exportedMsg:
		note := "Transcript saved to " + msg.path
		if msg.err != nil {
			note = fmt.Sprintf("Export failed: %v", msg.err)
		}
		m.gameLog += noticeStyle.Render(note) + "\n\n"
		m.refresh()
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) refresh() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.72)
}

func (m model) View() string {
	logView := m.viewport.View()
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, logView, m.renderState())

	input := m.textInput.View()
	if m.state == stateThinking {
		input = helpStyle.Render("The city reacts...")
	}
	help := helpStyle.Render("Commands: /reset, /export, /quit, 'help', or just type what you want to do.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+input,
		"\n"+help,
	) + "\n"
}

func (m model) renderState() string {
	g := m.game

	location := titleStyle.Render("LOCATION") + "\n" + string(g.Location) + "\n"
	location += fmt.Sprintf("Turn %d\n\n", g.Turn)

	meters := titleStyle.Render("SUSPICION") + "\n"
	meters += meterLine("L", g.SuspicionL)
	meters += meterLine("Task Force", g.SuspicionTaskForce)
	if g.SuspicionPublic > 0 {
		meters += meterLine("Public", g.SuspicionPublic)
	}
	meters += "\n"

	investigation := titleStyle.Render("INVESTIGATION") + "\n"
	investigation += fmt.Sprintf("L progress: %d/%d\n\n", g.LInvestigationProgress, models.MaxLInvestigation)

	notes := titleStyle.Render("NOTES") + "\n"
	notes += checkLine("Notebook hidden", g.NotebookHidden)
	notes += checkLine("Cameras at home", g.CamerasRevealedToPlayer)
	notes += checkLine("TV target ready", g.Flags.TVTargetReady)
	if g.Flags.SecondKiraRevealed {
		notes += checkLine("Second Kira ally", g.Flags.SecondKiraFriend)
	}

	content := location + meters + investigation + notes

	stateWidth := int(float64(m.width) * 0.25)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func meterLine(name string, v int) string {
	const cells = 10
	filled := models.Clamp(v/cells, 0, cells)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", cells-filled)
	return fmt.Sprintf("%-10s %s %3d\n", name, bar, v)
}

func checkLine(name string, ok bool) string {
	mark := "[ ]"
	if ok {
		mark = "[x]"
	}
	return mark + " " + name + "\n"
}

// playTurn runs the step on a copy so View never reads state mid-mutation.
func (m model) playTurn(action string) tea.Cmd {
	next := m.game.Clone()
	return func() tea.Msg {
		played, outcome := m.engine.RunStep(context.Background(), next, action)
		return turnPlayedMsg{game: played, outcome: outcome}
	}
}

func (m model) export() tea.Cmd {
	snapshot := m.game.Clone()
	return func() tea.Msg {
		path, err := snapshot.SaveTranscript(time.Now().Format("20060102-150405"))
		return exportedMsg{path: path, err: err}
	}
}

func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
