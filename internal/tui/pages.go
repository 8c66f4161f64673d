package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/orbytrixx/orbytrixx/internal/content"
	"github.com/orbytrixx/orbytrixx/internal/logging"
)

// startProjectMsg asks the app to open Contact with the service inquiry
// pre-filled.
type startProjectMsg struct {
	service content.Service
}

// markdownRenderer caches a glamour renderer for the current wrap width.
// It is shared by every page of one program.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// newMarkdownRenderer creates a renderer. An empty style picks the style
// from the terminal background.
func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{style: style}
}

// Render renders md wrapped to width. On renderer errors the raw markdown is
// returned so the page still shows its copy.
func (r *markdownRenderer) Render(md string, width int) string {
	if width < 20 {
		width = 20
	}
	if r.renderer == nil || r.width != width {
		styleOpt := glamour.WithAutoStyle()
		if r.style != "" {
			styleOpt = glamour.WithStylePath(r.style)
		}
		tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width-2))
		if err != nil {
			logging.Warn("Markdown renderer unavailable", zap.Error(err))
			return md
		}
		r.renderer = tr
		r.width = width
	}

	out, err := r.renderer.Render(md)
	if err != nil {
		logging.Warn("Markdown render failed", zap.Error(err))
		return md
	}
	return strings.Trim(out, "\n")
}

// PageModel is a scrollable markdown page.
type PageModel struct {
	markdown string
	renderer *markdownRenderer
	viewport viewport.Model
}

// NewPageModel creates a page for md.
func NewPageModel(md string, renderer *markdownRenderer) PageModel {
	vp := viewport.New(0, 0)
	return PageModel{
		markdown: md,
		renderer: renderer,
		viewport: vp,
	}
}

// SetSize re-wraps the markdown for the new page area.
func (m *PageModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetMarkdown replaces the page copy and scrolls to the top.
func (m *PageModel) SetMarkdown(md string) {
	m.markdown = md
	m.render()
	m.viewport.GotoTop()
}

func (m *PageModel) render() {
	if m.viewport.Width <= 0 {
		return
	}
	m.viewport.SetContent(m.renderer.Render(m.markdown, m.viewport.Width))
}

// Markdown returns the unrendered page copy.
func (m PageModel) Markdown() string { return m.markdown }

// Update scrolls the page.
func (m PageModel) Update(msg tea.Msg) (PageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the page.
func (m PageModel) View() string {
	return m.viewport.View()
}

// ServicesModel is the services carousel with a detail view per service.
type ServicesModel struct {
	services []content.Service
	carousel *content.Carousel
	detail   bool
	page     PageModel

	width  int
	height int
}

// NewServicesModel creates the carousel positioned on the first service.
func NewServicesModel(services []content.Service, renderer *markdownRenderer) ServicesModel {
	return ServicesModel{
		services: services,
		carousel: content.NewCarousel(len(services)),
		page:     NewPageModel("", renderer),
	}
}

// SetSize records the page area.
func (m *ServicesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.page.SetSize(width, height-2)
}

// Current returns the service in focus.
func (m ServicesModel) Current() content.Service {
	if len(m.services) == 0 {
		return content.Service{}
	}
	return m.services[m.carousel.Index()]
}

// ShowingDetail reports whether the detail view is open.
func (m ServicesModel) ShowingDetail() bool { return m.detail }

// Focus moves the carousel to service i and opens its detail.
func (m *ServicesModel) Focus(i int) {
	if m.carousel.Set(i) {
		m.openDetail()
	}
}

func (m *ServicesModel) openDetail() {
	if len(m.services) == 0 {
		return
	}
	m.detail = true
	m.page.SetMarkdown(content.ServiceMarkdown(m.Current()))
}

// Update handles carousel and detail keys.
func (m ServicesModel) Update(msg tea.Msg) (ServicesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.detail {
			var cmd tea.Cmd
			m.page, cmd = m.page.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.detail {
		switch keyMsg.String() {
		case "esc", "backspace":
			m.detail = false
			return m, nil
		case "p", "enter":
			return m, m.startProject()
		case "left", "h":
			m.carousel.Prev()
			m.openDetail()
			return m, nil
		case "right", "l":
			m.carousel.Next()
			m.openDetail()
			return m, nil
		}
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "left", "h":
		m.carousel.Prev()
	case "right", "l":
		m.carousel.Next()
	case "enter", " ":
		m.openDetail()
	case "p":
		return m, m.startProject()
	}
	return m, nil
}

func (m ServicesModel) startProject() tea.Cmd {
	svc := m.Current()
	if svc.ComingSoon || svc.Title == "" {
		return nil
	}
	return func() tea.Msg { return startProjectMsg{service: svc} }
}

// View renders the carousel or the open detail.
func (m ServicesModel) View() string {
	if len(m.services) == 0 {
		return SubtitleStyle.Render("No services listed.")
	}

	if m.detail {
		hint := SubtitleStyle.Render("← → browse · enter start a project · esc back")
		if m.Current().ComingSoon {
			hint = SubtitleStyle.Render("← → browse · coming soon · esc back")
		}
		return lipgloss.JoinVertical(lipgloss.Left, m.page.View(), "", hint)
	}

	compact := m.width < 3*serviceCardWidth+4
	var cards string
	if compact {
		cards = renderServiceCard(m.Current(), true)
	} else {
		prev, next := m.carousel.Neighbors()
		cards = lipgloss.JoinHorizontal(lipgloss.Center,
			renderServiceCard(m.services[prev], false),
			"  ",
			renderServiceCard(m.Current(), true),
			"  ",
			renderServiceCard(m.services[next], false),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Our Services."),
		cards,
		"",
		m.dots(),
		"",
		SubtitleStyle.Render("← → browse · enter details · p start a project"),
	)
}

const serviceCardWidth = 30

func renderServiceCard(svc content.Service, active bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Width(serviceCardWidth).
		Height(7).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Foreground(SubtleColor).Bold(true)
	if active {
		style = style.BorderForeground(PrimaryColor)
		titleStyle = titleStyle.Foreground(AccentColor)
	}

	lines := []string{titleStyle.Render(svc.Title), "", content.Truncate(svc.Short, 3*(serviceCardWidth-2))}
	if svc.ComingSoon {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(WarningColor).Render("COMING SOON"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m ServicesModel) dots() string {
	var b strings.Builder
	for i := 0; i < m.carousel.Len(); i++ {
		if i == m.carousel.Index() {
			b.WriteString(lipgloss.NewStyle().Foreground(PrimaryColor).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(SubtleColor).Render("○"))
		}
		if i < m.carousel.Len()-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
