package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// introInterval is the delay between reveal steps of the splash.
const introInterval = 90 * time.Millisecond

// introHoldSteps keeps the full logo on screen before the site opens.
const introHoldSteps = 12

type introTickMsg struct{}

func introTick() tea.Cmd {
	return tea.Tick(introInterval, func(time.Time) tea.Msg { return introTickMsg{} })
}

// IntroModel is the splash screen: the wordmark is revealed letter by
// letter, then the tagline appears. Any key skips it.
type IntroModel struct {
	name    string
	tagline string
	step    int
	done    bool

	Width  int
	Height int
}

// NewIntroModel creates the splash for the given wordmark and tagline.
func NewIntroModel(name, tagline string) IntroModel {
	return IntroModel{name: name, tagline: tagline}
}

// Init starts the reveal.
func (m IntroModel) Init() tea.Cmd {
	return introTick()
}

// Done reports whether the splash has finished or was skipped.
func (m IntroModel) Done() bool { return m.done }

func (m IntroModel) totalSteps() int {
	return len([]rune(m.name)) + introHoldSteps
}

// Update advances the reveal.
func (m IntroModel) Update(msg tea.Msg) (IntroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case introTickMsg:
		if m.done {
			return m, nil
		}
		m.step++
		if m.step >= m.totalSteps() {
			m.done = true
			return m, nil
		}
		return m, introTick()
	case tea.KeyMsg:
		m.done = true
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.done = true
		}
	}
	return m, nil
}

// View renders the splash centered on the screen.
func (m IntroModel) View() string {
	runes := []rune(m.name)
	shown := m.step
	if shown > len(runes) {
		shown = len(runes)
	}

	letters := make([]string, len(runes))
	for i, r := range runes {
		if i < shown {
			letters[i] = string(r)
		} else {
			letters[i] = "·"
		}
	}
	logo := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 4).
		Render(strings.Join(letters, " "))

	tagline := ""
	if shown == len(runes) {
		tagline = lipgloss.NewStyle().Foreground(AccentColor).Italic(true).Render(m.tagline)
	}
	hint := SubtitleStyle.Render("press any key to skip")

	body := lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline, "", hint)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, body)
}
