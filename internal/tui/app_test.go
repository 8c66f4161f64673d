package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/orbytrixx/orbytrixx/internal/content"
	"github.com/orbytrixx/orbytrixx/internal/form"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newTestApp(t *testing.T, opts Options) AppModel {
	t.Helper()
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = "notty"
	}
	m, err := NewAppModel(opts)
	require.NoError(t, err)
	return updateApp(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func updateApp(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok, "Update must return AppModel")
	return app
}

func press(t *testing.T, m AppModel, msgs ...tea.KeyMsg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		m = updateApp(t, m, msg)
	}
	return m
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in      string
		want    Page
		wantErr bool
	}{
		{"home", PageHome, false},
		{"Services", PageServices, false},
		{"why-us", PageWhyUs, false},
		{"Why Us", PageWhyUs, false},
		{" contact ", PageContact, false},
		{"blog", PageHome, true},
	}

	for _, tt := range tests {
		got, err := ParsePage(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestNumberKeysAndTabNavigate(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})
	require.Equal(t, PageHome, m.Page())

	m = press(t, m, runes("3"))
	require.Equal(t, PageAbout, m.Page())

	m = press(t, m, runes("6"))
	require.Equal(t, PageContact, m.Page())

	m = press(t, m, keyOf(tea.KeyTab))
	require.Equal(t, PageHome, m.Page(), "tab wraps to the first page")

	m = press(t, m, keyOf(tea.KeyShiftTab))
	require.Equal(t, PageContact, m.Page(), "shift+tab wraps to the last page")
}

func TestQuitKey(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestIntroSkippedByAnyKey(t *testing.T) {
	m := newTestApp(t, Options{})
	require.True(t, m.ShowingIntro())
	require.Contains(t, m.View(), "skip")

	m = press(t, m, runes("x"))
	require.False(t, m.ShowingIntro())
	require.Equal(t, PageHome, m.Page(), "the skipping key is not forwarded")
}

func TestContactStartPageSkipsIntro(t *testing.T) {
	m := newTestApp(t, Options{StartPage: PageContact})
	require.False(t, m.ShowingIntro())
	require.Equal(t, PageContact, m.Page())
}

func TestServiceDeepLinkSeedsContact(t *testing.T) {
	m := newTestApp(t, Options{Service: "data-analysis"})

	require.False(t, m.ShowingIntro())
	require.Equal(t, PageContact, m.Page())

	want := content.InquirySubject("Data Analysis")
	session := m.Contact().Session()
	require.Equal(t, want, session.Value(form.FieldMessage))

	session.SetField(form.FieldMessage, "something else")
	session.Reset()
	require.Empty(t, session.Value(form.FieldMessage), "reset clears the deep-link message")
}

func TestServiceDeepLinkOpensCarouselDetail(t *testing.T) {
	m := newTestApp(t, Options{StartPage: PageServices, Service: "autonomous-ai", SkipIntro: true})

	require.Equal(t, PageServices, m.Page())
	require.Equal(t, "autonomous-ai", m.Services().Current().Slug)
	require.True(t, m.Services().ShowingDetail())
	require.Empty(t, m.Contact().Session().Value(form.FieldMessage), "contact is not seeded")
}

func TestUnknownServiceDeepLink(t *testing.T) {
	_, err := NewAppModel(Options{Service: "time-travel", MarkdownStyle: "notty"})
	require.Error(t, err)
}

func TestFocusedFormCapturesNavigationKeys(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})
	m = press(t, m, runes("6"), keyOf(tea.KeyEnter))
	require.Equal(t, form.FieldName, m.Contact().FocusedField())

	m = press(t, m, runes("R2"), runes("3"))
	require.Equal(t, PageContact, m.Page())
	require.Equal(t, "R23", m.Contact().Session().Value(form.FieldName))

	m = press(t, m, keyOf(tea.KeyEsc))
	require.False(t, m.Contact().Focused())
	require.True(t, m.Contact().Session().Touched(form.FieldName), "leaving a field touches it")

	m = press(t, m, runes("1"))
	require.Equal(t, PageHome, m.Page())
}

func TestContactSubmitCompletesLocally(t *testing.T) {
	called := false
	sub := form.SubmitterFunc(func(context.Context, form.Values) error {
		called = true
		return nil
	})
	m := newTestApp(t, Options{SkipIntro: true, Submitter: sub})
	m = press(t, m,
		runes("6"), keyOf(tea.KeyEnter),
		runes("Ada Lovelace"), keyOf(tea.KeyTab),
		runes("ada@example.com"), keyOf(tea.KeyTab),
		keyOf(tea.KeyTab), // country code keeps +91
		runes("98765-43210"), keyOf(tea.KeyTab),
		keyOf(tea.KeyTab), // company is optional
		runes("A new storefront"),
	)

	session := m.Contact().Session()
	require.Equal(t, "9876543210", session.Value(form.FieldPhone))
	require.True(t, session.IsValid(), "errors: %v", session.Errors())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, form.Submitted, session.Outcome())
	require.False(t, called, "contact never calls the submitter")
	require.Contains(t, m.View(), m.site.Contact.SuccessTitle)

	m = press(t, m, keyOf(tea.KeyEnter))
	require.Equal(t, form.NotSubmitted, session.Outcome())
	require.Empty(t, session.Value(form.FieldName))
}

func TestInvalidSubmitRevealsErrors(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})
	m = press(t, m, runes("6"), keyOf(tea.KeyEnter), tea.KeyMsg{Type: tea.KeyCtrlS})

	session := m.Contact().Session()
	require.Equal(t, form.NotSubmitted, session.Outcome())
	require.NotEmpty(t, session.VisibleError(form.FieldEmail))
	require.NotEmpty(t, session.VisibleError(form.FieldMessage))
}

func TestStartProjectFromServices(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})
	m = press(t, m, runes("2"), keyOf(tea.KeyRight))

	svc := m.Services().Current()
	require.Equal(t, m.site.Services[1].Title, svc.Title)

	next, cmd := m.Update(runes("p"))
	m = next.(AppModel)
	require.NotNil(t, cmd)

	m = updateApp(t, m, cmd())
	require.Equal(t, PageContact, m.Page())
	require.Equal(t, svc.Inquiry(), m.Contact().Session().Value(form.FieldMessage))
}

func TestViewFillsTerminal(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})

	for _, key := range []string{"1", "2", "3", "4", "5", "6"} {
		m = press(t, m, runes(key))
		view := m.View()
		require.Equal(t, 40, lipgloss.Height(view), "page %s", m.Page())
		require.Contains(t, view, AppName)
	}
}

func TestFooterFollowsFocus(t *testing.T) {
	m := newTestApp(t, Options{SkipIntro: true})
	m = press(t, m, runes("6"))
	require.Contains(t, m.footerText(), "pages")

	m = press(t, m, keyOf(tea.KeyEnter))
	require.Contains(t, m.footerText(), "next field")
}
