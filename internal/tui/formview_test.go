package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/orbytrixx/orbytrixx/internal/form"
	"github.com/orbytrixx/orbytrixx/internal/submission"
)

func newTestForm(t *testing.T, session *form.Session, sub form.Submitter, width int) FormModel {
	t.Helper()
	m := NewFormModel(FormOptions{
		Session:   session,
		Submitter: sub,
		Copy: FormCopy{
			Title:        "Apply",
			SubmitLabel:  "Submit",
			SuccessTitle: "Logged",
			SuccessBody:  "We will be in touch.",
			ResetLabel:   "Again",
		},
		Info: NewPageModel("# Info", newMarkdownRenderer("notty")),
	})
	m.SetSize(ContentWidth(width), PageHeight(40), width, 40)
	return m
}

func formKeys(t *testing.T, m FormModel, msgs ...tea.KeyMsg) (FormModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

// collect runs cmd and any batched commands, returning messages of type T.
func collect[T any](cmd tea.Cmd) []T {
	if cmd == nil {
		return nil
	}
	var out []T
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect[T](c)...)
		}
	case T:
		out = append(out, msg)
	}
	return out
}

func validCareers() *form.Session {
	s := form.NewCareers()
	s.SetField(form.FieldName, "Grace Hopper")
	s.SetField(form.FieldEmail, "grace@navy.mil")
	s.SetField(form.FieldPhone, "5551234567")
	s.SetField(form.FieldCompany, "US Navy")
	s.SetField(form.FieldRole, "AI ARCHITECT")
	s.SetField(form.FieldPortfolio, "https://github.com/grace")
	s.SetField(form.FieldSummary, "Compilers.")
	return s
}

func TestCareersSubmitSuccess(t *testing.T) {
	var got form.Values
	sub := form.SubmitterFunc(func(_ context.Context, v form.Values) error {
		got = v
		return nil
	})
	m := newTestForm(t, validCareers(), sub, 120)

	m, cmd := formKeys(t, m, keyOf(tea.KeyEnter), tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, form.Submitting, m.Session().Outcome())
	require.Contains(t, m.View(), "Transmitting")

	// A second submit while in flight is ignored.
	m, again := formKeys(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, again)

	done := collect[submitCompleteMsg](cmd)
	require.Len(t, done, 1)
	require.Equal(t, "Grace Hopper", got[form.FieldName])

	m, _ = m.Update(done[0])
	require.Equal(t, form.Submitted, m.Session().Outcome())
	require.Empty(t, m.Alert())
	require.Contains(t, m.View(), "Logged")
}

func TestCareersSubmitFailureAlert(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		alert string
	}{
		{"rejected", submission.NewRejectedError(200, "invalid access key"), submission.AlertRejected},
		{"network", errors.New("dial tcp: connection refused"), submission.AlertNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := form.SubmitterFunc(func(context.Context, form.Values) error { return tt.err })
			m := newTestForm(t, validCareers(), sub, 120)

			m, cmd := formKeys(t, m, keyOf(tea.KeyEnter), tea.KeyMsg{Type: tea.KeyCtrlS})
			done := collect[submitCompleteMsg](cmd)
			require.Len(t, done, 1)

			m, _ = m.Update(done[0])
			require.Equal(t, form.Failed, m.Session().Outcome())
			require.Equal(t, tt.alert, m.Alert())
			require.True(t, m.Captures())
			require.Contains(t, m.AlertView(120), tt.alert)

			m, _ = formKeys(t, m, keyOf(tea.KeyEsc))
			require.Empty(t, m.Alert())
			require.Equal(t, form.NotSubmitted, m.Session().Outcome())
			require.Equal(t, "Grace Hopper", m.Session().Value(form.FieldName), "values survive a failure")
		})
	}
}

func TestSubmitDisabledWhileInvalid(t *testing.T) {
	called := false
	sub := form.SubmitterFunc(func(context.Context, form.Values) error {
		called = true
		return nil
	})
	m := newTestForm(t, form.NewCareers(), sub, 120)

	m, cmd := formKeys(t, m, keyOf(tea.KeyEnter), tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
	require.False(t, called)
	require.Equal(t, form.NotSubmitted, m.Session().Outcome())
	require.Equal(t, "Please select a role", m.Session().VisibleError(form.FieldRole))
}

func TestRoleCycles(t *testing.T) {
	m := newTestForm(t, form.NewCareers(), nil, 120)
	m, _ = formKeys(t, m, keyOf(tea.KeyEnter))
	for m.FocusedField() != form.FieldRole {
		m, _ = formKeys(t, m, keyOf(tea.KeyTab))
	}

	m, _ = formKeys(t, m, keyOf(tea.KeyRight))
	require.Equal(t, form.Roles[1], m.Session().Value(form.FieldRole))

	m, _ = formKeys(t, m, keyOf(tea.KeyLeft), keyOf(tea.KeyLeft))
	require.Equal(t, form.Roles[len(form.Roles)-1], m.Session().Value(form.FieldRole))
}

func TestChoosingCountryCodeTouchesPhone(t *testing.T) {
	m := newTestForm(t, form.NewContact(), nil, 120)
	m, _ = formKeys(t, m, keyOf(tea.KeyEnter), keyOf(tea.KeyTab), keyOf(tea.KeyTab))
	require.Equal(t, form.FieldCountryCode, m.FocusedField())

	m, _ = formKeys(t, m, keyOf(tea.KeyEnter))
	require.True(t, m.Picker().IsOpen())
	require.True(t, m.Captures())
	require.Contains(t, m.View(), "earch country")

	m, _ = formKeys(t, m, runes("44"), keyOf(tea.KeyEnter))
	require.False(t, m.Picker().IsOpen())
	require.Equal(t, "+44", m.Session().Value(form.FieldCountryCode))
	require.Equal(t, "Phone number is required", m.Session().VisibleError(form.FieldPhone))
	require.Equal(t, form.FieldCountryCode, m.FocusedField(), "choosing keeps focus on the trigger")
}

func TestPhoneInputIsNormalized(t *testing.T) {
	m := newTestForm(t, form.NewContact(), nil, 120)
	m, _ = formKeys(t, m, keyOf(tea.KeyEnter))
	for m.FocusedField() != form.FieldPhone {
		m, _ = formKeys(t, m, keyOf(tea.KeyTab))
	}

	m, _ = formKeys(t, m, runes("(555) 123-4567 ext 89"))
	require.Equal(t, "5551234567", m.Session().Value(form.FieldPhone))
}

func TestCompactFormShowsInfoUntilFocused(t *testing.T) {
	m := newTestForm(t, form.NewContact(), nil, 80)
	require.Contains(t, m.View(), "fill in the form")

	m, _ = formKeys(t, m, keyOf(tea.KeyEnter))
	require.Contains(t, m.View(), "FULL NAME")
}

func TestResetRestoresDefaults(t *testing.T) {
	session := form.NewContact(
		form.WithDefault(form.FieldCountryCode, "+44"),
		form.WithInitial(form.FieldMessage, "Video & AI Ads – Project Inquiry"),
	)
	m := newTestForm(t, session, nil, 120)

	session.SetField(form.FieldName, "Ada")
	session.SetField(form.FieldEmail, "ada@example.com")
	session.SetField(form.FieldPhone, "9876543210")
	m, _ = formKeys(t, m, keyOf(tea.KeyEnter), tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, form.Submitted, session.Outcome())

	m, _ = formKeys(t, m, runes("r"))
	require.Equal(t, form.NotSubmitted, session.Outcome())
	require.Empty(t, session.Value(form.FieldMessage))
	require.Equal(t, "+44", session.Value(form.FieldCountryCode))
	require.Empty(t, session.Value(form.FieldName))
	require.False(t, m.Focused())
}

func TestClickOnTriggerOpensPicker(t *testing.T) {
	m := newTestForm(t, form.NewContact(), nil, 120)
	fx, _ := m.formOrigin()
	code := m.blocks[2]
	require.Equal(t, form.FieldCountryCode, m.fields[2])

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := m.HandleMouse(click, fx+1, code[0]+1)
	require.Equal(t, form.FieldCountryCode, m.FocusedField())
	require.True(t, m.Picker().IsOpen())
	require.NotNil(t, cmd, "desktop open schedules search focus")

	m, _ = m.HandleMouse(click, 0, 0)
	require.False(t, m.Picker().IsOpen(), "click outside the panel closes it")
	require.Equal(t, "+91", m.Session().Value(form.FieldCountryCode))
}

func TestClickOnInfoColumnDoesNotFocus(t *testing.T) {
	m := newTestForm(t, form.NewContact(), nil, 120)
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := m.HandleMouse(click, 2, 3)
	require.Nil(t, cmd)
	require.False(t, m.Focused())
}
