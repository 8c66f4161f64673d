package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestRenderApplicationContainerFillsTerminal(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{120, 40},
		{80, 24},
		{100, 10},
	}

	for _, tt := range tests {
		out := RenderApplicationContainer("hello", strings.Repeat("help ", 60), tt.width, tt.height)
		require.Equal(t, tt.height, lipgloss.Height(out), "%dx%d", tt.width, tt.height)
		require.Equal(t, tt.width, lipgloss.Width(out), "%dx%d", tt.width, tt.height)
		require.Contains(t, out, AppName)
		require.Contains(t, out, WebsiteURL)
		require.Contains(t, out, "hello")
	}
}

func TestContentDimensions(t *testing.T) {
	require.Equal(t, 116, ContentWidth(120))
	require.Equal(t, MinTerminalWidth-4, ContentWidth(10))
	require.Equal(t, 34, ContentHeight(40))
	require.Equal(t, 1, ContentHeight(3))
	require.Equal(t, 32, PageHeight(40))
	require.Equal(t, 1, PageHeight(7))
}

func TestSafeModalWidth(t *testing.T) {
	tests := []struct {
		requested, terminal, want int
	}{
		{56, 120, 56},
		{56, 50, 46},
		{56, 20, MinModalWidth},
		{20, 20, 20},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, SafeModalWidth(tt.requested, tt.terminal), "%+v", tt)
	}
}

func TestRenderButtonStates(t *testing.T) {
	require.Contains(t, RenderButton("Send", true, true), "▸ Send")
	require.NotContains(t, RenderButton("Send", false, true), "▸")
	require.NotContains(t, RenderButton("Send", true, false), "▸")
}
