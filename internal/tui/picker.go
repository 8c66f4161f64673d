package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orbytrixx/orbytrixx/internal/content"
	"github.com/orbytrixx/orbytrixx/internal/logging"
	"github.com/orbytrixx/orbytrixx/internal/selector"
)

// focusSearchMsg asks the picker with the matching id to focus its search
// input. It is scheduled FocusDelay after a desktop panel opens.
type focusSearchMsg struct {
	id string
}

const (
	// pickerPanelWidth is the outer width of the desktop dropdown.
	pickerPanelWidth = 44
	// pickerDesktopRows is the number of list rows shown in the dropdown.
	pickerDesktopRows = 8
	// pickerSheetTitle is the heading of the compact bottom sheet.
	pickerSheetTitle = "Select Country"
)

// PickerModel renders a dial-code selector: a trigger line and, while open,
// either an anchored dropdown (desktop) or a full-screen sheet (compact).
// All state transitions are delegated to the wrapped selector.Selector.
type PickerModel struct {
	id     string
	sel    *selector.Selector
	search textinput.Model

	// offset is the index of the first visible row of the filtered list.
	offset int

	width  int
	height int
}

// NewPickerModel wraps sel. id routes focusSearchMsg when several pickers
// live in one program.
func NewPickerModel(id string, sel *selector.Selector) PickerModel {
	search := textinput.New()
	search.Placeholder = "Search country or code"
	search.Prompt = "⌕ "
	search.CharLimit = 40
	search.Width = pickerPanelWidth - 6

	return PickerModel{
		id:     id,
		sel:    sel,
		search: search,
	}
}

// Selector returns the wrapped selector state.
func (m PickerModel) Selector() *selector.Selector { return m.sel }

// IsOpen reports whether the panel is showing.
func (m PickerModel) IsOpen() bool { return m.sel.IsOpen() }

// SearchFocused reports whether the search input has focus.
func (m PickerModel) SearchFocused() bool { return m.search.Focused() }

// SetSize records the terminal size and recomputes the layout.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.sel.Resize(width)
	m.search.Width = m.panelWidth() - 6
	m.clampOffset()
}

// SetValue replaces the committed dial code without invoking onChange.
func (m *PickerModel) SetValue(code string) {
	m.sel.SetValue(code)
}

// Close closes the panel without committing.
func (m *PickerModel) Close() {
	m.sel.Close()
	m.search.Blur()
}

// Blur closes the panel and reports focus loss to the selector owner.
func (m *PickerModel) Blur() {
	m.Close()
	m.sel.Blur()
}

func (m *PickerModel) open() tea.Cmd {
	focus := m.sel.Open()
	m.afterOpen()
	if focus {
		return focusSearchAfter(m.id, selector.FocusDelay)
	}
	return nil
}

func (m *PickerModel) afterOpen() {
	m.search.SetValue("")
	m.search.Blur()
	m.offset = 0
	logging.LogSelector("open", m.sel.Value())
}

func focusSearchAfter(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return focusSearchMsg{id: id}
	})
}

// Update handles messages other than key and mouse input.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case focusSearchMsg:
		if msg.id == m.id && m.sel.IsOpen() {
			cmd := m.search.Focus()
			return m, cmd
		}
		return m, nil
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// HandleKey applies a key press. It reports whether the key was consumed;
// unconsumed keys belong to the surrounding form.
func (m PickerModel) HandleKey(msg tea.KeyMsg) (PickerModel, tea.Cmd, bool) {
	if !m.sel.IsOpen() {
		switch msg.String() {
		case "enter", "down", " ":
			cmd := m.open()
			return m, cmd, true
		}
		return m, nil, false
	}

	before := m.sel.Value()
	switch msg.String() {
	case "up", "ctrl+p":
		m.sel.HandleKey(selector.KeyUp)
		m.clampOffset()
		return m, nil, true
	case "down", "ctrl+n":
		m.sel.HandleKey(selector.KeyDown)
		m.clampOffset()
		return m, nil, true
	case "enter":
		m.sel.HandleKey(selector.KeyEnter)
		if !m.sel.IsOpen() {
			m.search.Blur()
			logging.LogSelector("select", m.sel.Value())
		}
		return m, nil, true
	case "esc":
		m.sel.HandleKey(selector.KeyEscape)
		m.search.Blur()
		logging.LogSelector("dismiss", before)
		return m, nil, true
	case "tab", "shift+tab":
		// Leaving the field closes the panel; the form moves focus.
		m.Close()
		return m, nil, false
	}

	if !m.search.Focused() {
		switch msg.String() {
		case "x":
			if m.sel.Compact() {
				m.Close()
				logging.LogSelector("dismiss", before)
				return m, nil, true
			}
		case "/":
			cmd := m.search.Focus()
			return m, cmd, true
		}
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeyBackspace {
			return m, nil, true
		}
		focusCmd := m.search.Focus()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.sel.SetSearch(m.search.Value())
		m.clampOffset()
		return m, tea.Batch(focusCmd, cmd), true
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.sel.SetSearch(m.search.Value())
	m.clampOffset()
	return m, cmd, true
}

// HandleMouse applies a mouse event whose coordinates are relative to the
// top-left corner of the open panel.
func (m PickerModel) HandleMouse(msg tea.MouseMsg, x, y int) PickerModel {
	if !m.sel.IsOpen() {
		return m
	}

	insidePanel := x >= 0 && x < m.panelWidth() && y >= 0 && y < m.panelHeight()
	row := y - m.rowsTop()
	start, end := m.window()
	onRow := insidePanel && x > 0 && x < m.panelWidth()-1 && row >= 0 && row < end-start

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.sel.HandleKey(selector.KeyUp)
		m.clampOffset()
	case msg.Button == tea.MouseButtonWheelDown:
		m.sel.HandleKey(selector.KeyDown)
		m.clampOffset()
	case msg.Action == tea.MouseActionMotion:
		if onRow {
			m.sel.Hover(start + row)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		switch {
		case onRow:
			if m.sel.Choose(start + row) {
				m.search.Blur()
				logging.LogSelector("select", m.sel.Value())
			}
		case !insidePanel:
			m.sel.ClickOutside()
			m.search.Blur()
			logging.LogSelector("dismiss", m.sel.Value())
		case m.sel.Compact() && y == 1 && x >= m.panelWidth()-closeLabelWidth()-2:
			m.Close()
		}
	}
	return m
}

// panelWidth is the outer width of the open panel.
func (m PickerModel) panelWidth() int {
	if m.sel.Compact() {
		return ContentWidth(m.width)
	}
	return SafeModalWidth(pickerPanelWidth, m.width)
}

// visibleRows is the number of list rows the panel shows.
func (m PickerModel) visibleRows() int {
	if !m.sel.Compact() {
		return pickerDesktopRows
	}
	rows := PageHeight(m.height) - m.rowsTop() - 1
	if rows < 3 {
		rows = 3
	}
	return rows
}

// rowsTop is the panel row of the first list entry: border, optional sheet
// title, search input and divider.
func (m PickerModel) rowsTop() int {
	if m.sel.Compact() {
		return 4
	}
	return 3
}

func (m PickerModel) panelHeight() int {
	return m.rowsTop() + m.visibleRows() + 1
}

// window returns the [start, end) slice of the filtered list on screen.
func (m PickerModel) window() (int, int) {
	n := len(m.sel.Filtered())
	end := m.offset + m.visibleRows()
	if end > n {
		end = n
	}
	return m.offset, end
}

// clampOffset scrolls the list so the highlighted row stays visible.
func (m *PickerModel) clampOffset() {
	n := len(m.sel.Filtered())
	rows := m.visibleRows()
	h := m.sel.Highlighted()
	if h < m.offset {
		m.offset = h
	}
	if h >= m.offset+rows {
		m.offset = h - rows + 1
	}
	if maxOffset := n - rows; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func closeLabelWidth() int {
	return lipgloss.Width(closeLabel)
}

const closeLabel = "✕ close"

// TriggerView renders the closed-state control: flag, code and chevron.
func (m PickerModel) TriggerView(focused bool) string {
	e := m.sel.Selected()
	chevron := "▾"
	if m.sel.IsOpen() {
		chevron = "▴"
	}
	text := e.Flag + " " + m.sel.Value() + " " + chevron
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Padding(0, 1)
	if focused {
		style = style.BorderForeground(AccentColor)
	}
	return style.Render(text)
}

// PanelView renders the open panel, or "" while closed.
func (m PickerModel) PanelView() string {
	if !m.sel.IsOpen() {
		return ""
	}

	width := m.panelWidth()
	inner := width - 2

	var lines []string
	if m.sel.Compact() {
		title := lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true).Render(pickerSheetTitle)
		closeBtn := lipgloss.NewStyle().Foreground(SubtleColor).Render(closeLabel)
		gap := inner - lipgloss.Width(title) - lipgloss.Width(closeBtn)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, title+strings.Repeat(" ", gap)+closeBtn)
	}
	lines = append(lines, m.search.View())
	lines = append(lines, lipgloss.NewStyle().Foreground(SubtleColor).Render(strings.Repeat("─", inner)))

	filtered := m.sel.Filtered()
	rows := m.visibleRows()
	if len(filtered) == 0 {
		lines = append(lines, SubtitleStyle.Render(selector.NoMatchesText))
		rows--
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			e := filtered[i]
			mark := "  "
			if e.DialCode == m.sel.Value() {
				mark = CheckStyle.Render("✓ ")
			}
			label := content.Truncate(e.Label(), inner-3)
			if i == m.sel.Highlighted() {
				lines = append(lines, mark+HighlightedRowStyle.Width(inner-2).Render(label))
			} else {
				lines = append(lines, mark+RowStyle.Render(label))
			}
		}
		rows -= end - start
	}
	for ; rows > 0; rows-- {
		lines = append(lines, "")
	}

	return PanelStyle.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
