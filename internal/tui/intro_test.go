package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestIntroRevealsThenFinishes(t *testing.T) {
	m := NewIntroModel("ORB", "Designed to Build. Built to Scale.")
	m.Width, m.Height = 80, 24
	require.NotNil(t, m.Init())

	require.NotContains(t, m.View(), "Designed to Build")

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(introTickMsg{})
		require.NotNil(t, cmd)
	}
	require.Contains(t, m.View(), "O R B")
	require.Contains(t, m.View(), "Designed to Build")
	require.False(t, m.Done())

	for !m.Done() {
		m, _ = m.Update(introTickMsg{})
	}
	require.Equal(t, m.totalSteps(), m.step)

	_, cmd := m.Update(introTickMsg{})
	require.Nil(t, cmd, "finished intro stops ticking")
}

func TestIntroSkip(t *testing.T) {
	m := NewIntroModel("ORB", "tag")
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionMotion})
	require.False(t, m.Done(), "mouse motion does not skip")

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Done())

	m = NewIntroModel("ORB", "tag")
	m, _ = m.Update(runes("s"))
	require.True(t, m.Done())
}
