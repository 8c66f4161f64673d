package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/orbytrixx/orbytrixx/internal/selector"
)

func newTestPicker(t *testing.T, width int, opts ...selector.Option) PickerModel {
	t.Helper()
	p := NewPickerModel("test", selector.New("+91", opts...))
	p.SetSize(width, 40)
	return p
}

func pickerKey(t *testing.T, p PickerModel, msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	t.Helper()
	p, cmd, handled := p.HandleKey(msg)
	require.True(t, handled, "key %q not handled", msg.String())
	return p, cmd
}

func TestPickerOpenSchedulesFocusOnDesktop(t *testing.T) {
	p := newTestPicker(t, 120)

	p, cmd := pickerKey(t, p, keyOf(tea.KeyEnter))
	require.True(t, p.IsOpen())
	require.NotNil(t, cmd, "desktop open schedules search focus")
	require.False(t, p.SearchFocused())

	p, _ = p.Update(focusSearchMsg{id: "other"})
	require.False(t, p.SearchFocused(), "focus for another picker is ignored")

	p, _ = p.Update(focusSearchMsg{id: "test"})
	require.True(t, p.SearchFocused())
}

func TestPickerCompactSheet(t *testing.T) {
	p := newTestPicker(t, 80)

	p, cmd := pickerKey(t, p, keyOf(tea.KeyDown))
	require.True(t, p.IsOpen())
	require.Nil(t, cmd, "compact open does not schedule focus")
	require.Contains(t, p.PanelView(), pickerSheetTitle)

	p, _ = pickerKey(t, p, runes("x"))
	require.False(t, p.IsOpen())
	require.Equal(t, "+91", p.Selector().Value())
}

func TestPickerSearchAndCommit(t *testing.T) {
	var committed string
	p := newTestPicker(t, 120, selector.WithOnChange(func(code string) { committed = code }))

	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	p, _ = pickerKey(t, p, runes("japan"))
	require.True(t, p.SearchFocused(), "typing focuses the search input")
	require.Equal(t, "japan", p.Selector().Search())
	require.Len(t, p.Selector().Filtered(), 1)

	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	require.False(t, p.IsOpen())
	require.Equal(t, "+81", committed)
	require.Contains(t, p.TriggerView(false), "+81")
}

func TestPickerNoMatches(t *testing.T) {
	p := newTestPicker(t, 120)
	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	p, _ = pickerKey(t, p, runes("zzzz"))

	require.Contains(t, p.PanelView(), selector.NoMatchesText)

	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	require.True(t, p.IsOpen(), "enter with no matches keeps the panel open")
}

func TestPickerEscapeDoesNotCommit(t *testing.T) {
	p := newTestPicker(t, 120)
	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	p, _ = pickerKey(t, p, keyOf(tea.KeyDown))
	p, _ = pickerKey(t, p, keyOf(tea.KeyEsc))

	require.False(t, p.IsOpen())
	require.Equal(t, "+91", p.Selector().Value())
}

func TestPickerClosedIgnoresOtherKeys(t *testing.T) {
	p := newTestPicker(t, 120)
	_, _, handled := p.HandleKey(keyOf(tea.KeyUp))
	require.False(t, handled)
	_, _, handled = p.HandleKey(keyOf(tea.KeyTab))
	require.False(t, handled)
}

func TestPickerScrollKeepsHighlightVisible(t *testing.T) {
	p := newTestPicker(t, 120)
	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))

	for i := 0; i < pickerDesktopRows+2; i++ {
		p, _ = pickerKey(t, p, keyOf(tea.KeyDown))
	}
	start, end := p.window()
	h := p.Selector().Highlighted()
	require.GreaterOrEqual(t, h, start)
	require.Less(t, h, end)

	p, _ = pickerKey(t, p, keyOf(tea.KeyUp))
	require.Equal(t, start, p.offset, "moving up inside the window does not scroll")
}

func TestPickerMouse(t *testing.T) {
	p := newTestPicker(t, 120)
	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	top := p.rowsTop()

	p = p.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 3, top+1)
	require.Equal(t, 1, p.Selector().Highlighted())

	want := p.Selector().Filtered()[2].DialCode
	p = p.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 3, top+2)
	require.False(t, p.IsOpen())
	require.Equal(t, want, p.Selector().Value())

	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	p = p.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, pickerPanelWidth+5, 2)
	require.False(t, p.IsOpen(), "click outside closes")
	require.Equal(t, want, p.Selector().Value())
}

func TestPickerCompactIgnoresHover(t *testing.T) {
	p := newTestPicker(t, 80)
	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))

	p = p.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 3, p.rowsTop()+2)
	require.Equal(t, 0, p.Selector().Highlighted())
}

func TestPickerCheckMarksCurrentValue(t *testing.T) {
	p := newTestPicker(t, 120)
	p, _ = pickerKey(t, p, keyOf(tea.KeyEnter))
	p, _ = pickerKey(t, p, runes("india"))

	require.Contains(t, p.PanelView(), "✓")
}
